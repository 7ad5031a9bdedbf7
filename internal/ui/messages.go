package ui

import (
	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/search"
)

// Data fetched messages
type MeLoadedMsg struct {
	Me  *model.Operator
	Err error
}

type OperatorsLoadedMsg struct {
	Operators model.OperatorDirectory
	Err       error
}

type LinesLoadedMsg struct {
	Lines []model.Line
	Err   error
}

type QueuesLoadedMsg struct {
	Queues   map[string]model.Queue
	Stats    model.QueueStats
	Err      error
	StatsErr error
}

type QueueCallsLoadedMsg struct {
	Page    *model.QueueCallsPage
	PageNum int
	Err     error
}

type PhonebookLoadedMsg struct {
	Page    *model.PhonebookPage
	PageNum int
	Err     error
}

type NotificationsLoadedMsg struct {
	Notifications []model.Notification
	Err           error
}

// Live event messages
type NotificationMsg struct {
	Notification model.Notification
}

type PresenceMsg struct {
	Username string
	Presence string
}

type EventsStatusMsg struct {
	Connected bool
}

// SearchStateMsg carries a global search state from the pipeline.
type SearchStateMsg struct {
	State search.State
}

// Requests from views to the app
type DialMsg struct {
	Number string
}

type ShowOperatorMsg struct {
	Operator model.Operator
}

type ShowContactMsg struct {
	Contact model.Contact
}

type CreateContactMsg struct {
	Number string
}

type PageRequestMsg struct {
	Page int
}

// Action result messages
// ActionResultMsg reports a finished user action. Summary is shown in the
// status bar on success.
type ActionResultMsg struct {
	Action  string
	Summary string
	Err     error
}

type CallsTickMsg struct{}

type StatusMsg struct {
	Text string
}

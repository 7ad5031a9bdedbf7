package model

import "time"

type QueueMember struct {
	Member   string `json:"member"`
	Name     string `json:"name"`
	Queue    string `json:"queue"`
	LoggedIn bool   `json:"loggedIn"`
	Paused   bool   `json:"paused"`
	Type     string `json:"type,omitempty"`
}

type Queue struct {
	Queue   string                 `json:"queue"`
	Name    string                 `json:"name"`
	Members map[string]QueueMember `json:"members"`
	Waiting []any                  `json:"waitingCallers,omitempty"`
}

// Member returns the queue member with extension ext.
func (q Queue) Member(ext string) (QueueMember, bool) {
	m, ok := q.Members[ext]
	return m, ok
}

// QueueCall is one entry of the queue recall list.
type QueueCall struct {
	Time      int64  `json:"time"`
	QueueName string `json:"queuename"`
	Direction string `json:"direction"`
	Event     string `json:"event"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	CID       string `json:"cid"`
	Action    string `json:"action,omitempty"`
}

var positiveOutcomes = map[string]bool{
	"ANSWERED":       true,
	"DONE":           true,
	"COMPLETEAGENT":  true,
	"COMPLETECALLER": true,
	"CONNECT":        true,
	"ENTERQUEUE":     true,
}

// Answered reports whether the call outcome is a positive one.
func (c QueueCall) Answered() bool { return positiveOutcomes[c.Event] }

func (c QueueCall) When() time.Time { return time.Unix(c.Time, 0) }

type QueueCallsPage struct {
	Count      int         `json:"count"`
	Rows       []QueueCall `json:"rows"`
	TotalPages int         `json:"-"`
}

// QueueAgentStats is the per-queue entry of /astproxy/queue_astats.
type QueueAgentStats struct {
	LastLoginTime  int64 `json:"last_login_time"`
	LastLogoutTime int64 `json:"last_logout_time"`
	LastCallTime   int64 `json:"last_call_time"`
	CallsTaken     int   `json:"calls_taken"`
	NoAnswerCalls  int   `json:"no_answer_calls"`
}

// QueueStatsResponse is the decoded stats payload: per-queue entries plus
// the global call duration totals.
type QueueStatsResponse struct {
	Queues           map[string]QueueAgentStats
	DurationOutgoing int64
	DurationIncoming int64
}

// QueueStats is the aggregate shown in the queues dashboard.
type QueueStats struct {
	LastLogin     time.Time
	LastLogout    time.Time
	LastCall      time.Time
	AnsweredCalls int
	MissedCalls   int
	TimeAtPhone   time.Duration
}

package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/api"
	"github.com/altinukshini/cti-tui/internal/clock"
	"github.com/altinukshini/cti-tui/internal/config"
	"github.com/altinukshini/cti-tui/internal/logging"
	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/prefs"
	"github.com/altinukshini/cti-tui/internal/search"
	"github.com/altinukshini/cti-tui/internal/tui/callsview"
	"github.com/altinukshini/cti-tui/internal/tui/confirm"
	"github.com/altinukshini/cti-tui/internal/tui/contactform"
	"github.com/altinukshini/cti-tui/internal/tui/details"
	"github.com/altinukshini/cti-tui/internal/tui/filteroverlay"
	"github.com/altinukshini/cti-tui/internal/tui/linesview"
	"github.com/altinukshini/cti-tui/internal/tui/logview"
	"github.com/altinukshini/cti-tui/internal/tui/notifications"
	"github.com/altinukshini/cti-tui/internal/tui/phonebookview"
	"github.com/altinukshini/cti-tui/internal/tui/queuesview"
	"github.com/altinukshini/cti-tui/internal/tui/searchview"
	"github.com/altinukshini/cti-tui/internal/ui"
)

type View int

const (
	ViewLines View = iota
	ViewQueues
	ViewCalls
	ViewPhonebook
)

// Confirm dialog actions.
const (
	actionBulkQueue = "bulk-queue"
)

// directory is the operator map shared with the search pipeline, which
// reads it from the debounce goroutine. Published maps are never mutated;
// updates swap in a copy.
type directory struct {
	mu  sync.RWMutex
	ops model.OperatorDirectory
}

func (d *directory) Get() model.OperatorDirectory {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ops
}

func (d *directory) Set(ops model.OperatorDirectory) {
	d.mu.Lock()
	d.ops = ops
	d.mu.Unlock()
}

// SetPresence records a presence change and returns the updated operator.
func (d *directory) SetPresence(username, presence string) (model.Operator, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	op, ok := d.ops[username]
	if !ok {
		return model.Operator{}, false
	}
	op.Presence = presence
	op.MainPresence = presence
	next := make(model.OperatorDirectory, len(d.ops))
	for k, v := range d.ops {
		next[k] = v
	}
	next[username] = op
	d.ops = next
	return op, true
}

// Deps are the collaborators the app needs.
type Deps struct {
	Ctx    context.Context
	Config config.Config
	Client *api.Client
	Prefs  *prefs.Store
	Relay  *Relay
	Logger *slog.Logger
	Clock  clock.Clock
}

type App struct {
	ctx      context.Context
	cfg      config.Config
	client   *api.Client
	store    *prefs.Store
	relay    *Relay
	logger   *slog.Logger
	clock    clock.Clock
	pipeline *search.Pipeline
	dir      *directory
	prefs    prefs.Preferences

	// Views
	linesView     linesview.Model
	queuesView    queuesview.Model
	callsView     callsview.Model
	phonebookView phonebookview.Model

	// Drawers and overlays
	searchView    searchview.Model
	notifications notifications.Model
	detailsView   details.Model
	activityLog   logview.Model
	contactForm   contactform.Model
	filterOverlay filteroverlay.Model
	confirmDialog confirm.Model

	// State
	me           *model.Operator
	currentView  View
	width        int
	height       int
	status       string
	connected    bool
	queuesLoaded bool
	showHelp     bool
}

func NewApp(d Deps) App {
	ctx := d.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	relay := d.Relay
	if relay == nil {
		relay = NewRelay()
	}
	clk := d.Clock
	if clk == nil {
		clk = clock.Real()
	}

	p := prefs.Defaults()
	if d.Prefs != nil {
		loaded, err := d.Prefs.Load(d.Config.Username)
		if err != nil {
			logger.Warn("cannot load preferences", "error", err)
		} else {
			p = loaded
		}
	}

	dir := &directory{}
	pipeline := search.New(search.Config{
		Operators: dir.Get,
		Phonebook: d.Client,
		OnState:   func(st search.State) { relay.Send(ui.SearchStateMsg{State: st}) },
		Clock:     clk,
		Delay:     d.Config.SearchDelay,
		Logger:    logger,
	})

	region := d.Config.Region
	pbFilter := filteroverlay.FilterResult{Kind: p.PhonebookKind, Sort: p.PhonebookSortBy}

	return App{
		ctx:           ctx,
		cfg:           d.Config,
		client:        d.Client,
		store:         d.Prefs,
		relay:         relay,
		logger:        logger,
		clock:         clk,
		pipeline:      pipeline,
		dir:           dir,
		prefs:         p,
		linesView:     linesview.New(p.LinesSortBy),
		queuesView:    queuesview.New(d.Config.Extension, p.ExpandedQueues),
		callsView:     callsview.New(region, p.QueuesOutcomeFilter, d.Config.PageSize),
		phonebookView: phonebookview.New(region, pbFilter),
		searchView:    searchview.New(region),
		notifications: notifications.New(region, clk.Now),
		detailsView:   details.New(region),
		activityLog:   logview.New(),
		currentView:   ViewLines,
		status:        "Connecting...",
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.fetchMe(),
		a.fetchOperators(),
		a.fetchLines(),
		a.fetchPhonebook(1),
		a.fetchNotifications(),
		a.scheduleCallsRefresh(),
	)
}

// mainExt is the extension used for queue membership and calls.
func (a App) mainExt() string {
	if a.cfg.Extension != "" {
		return a.cfg.Extension
	}
	if a.me != nil {
		return a.me.MainExtension()
	}
	return ""
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	// --- Data ---

	case ui.MeLoadedMsg:
		if msg.Err != nil {
			a.logger.Error("cannot load user", "error", msg.Err)
			a.status = "Error: cannot load user: " + msg.Err.Error()
			return &a, nil
		}
		a.me = msg.Me
		a.queuesView.SetExtension(a.mainExt())
		a.status = "Ready"
		return &a, a.fetchQueues()

	case ui.OperatorsLoadedMsg:
		if msg.Err != nil {
			a.logger.Warn("cannot load operators", "error", msg.Err)
			return &a, nil
		}
		a.dir.Set(msg.Operators)
		return &a, nil

	case ui.LinesLoadedMsg:
		if msg.Err != nil {
			a.logger.Warn("cannot load lines", "error", msg.Err)
		}
		var cmd tea.Cmd
		a.linesView, cmd = a.linesView.Update(msg)
		return &a, cmd

	case ui.QueuesLoadedMsg:
		if msg.Err != nil {
			a.logger.Warn("cannot load queues", "error", msg.Err)
		}
		if msg.StatsErr != nil {
			a.logger.Debug("cannot load queue stats", "error", msg.StatsErr)
		}
		var cmd tea.Cmd
		a.queuesView, cmd = a.queuesView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			a.queuesLoaded = true
			cmds = append(cmds, a.fetchCalls(a.callsView.Page()))
		}
		return &a, tea.Batch(cmds...)

	case ui.QueueCallsLoadedMsg:
		if msg.Err != nil {
			a.logger.Warn("cannot load queue calls", "error", msg.Err)
		}
		var cmd tea.Cmd
		a.callsView, cmd = a.callsView.Update(msg)
		return &a, cmd

	case ui.PhonebookLoadedMsg:
		if msg.Err != nil {
			a.logger.Warn("cannot load phonebook", "error", msg.Err)
		}
		var cmd tea.Cmd
		a.phonebookView, cmd = a.phonebookView.Update(msg)
		return &a, cmd

	case ui.NotificationsLoadedMsg:
		if msg.Err != nil {
			a.logger.Warn("cannot load notifications", "error", msg.Err)
			return &a, nil
		}
		items := make([]model.Notification, len(msg.Notifications))
		for i, n := range msg.Notifications {
			n.IsRead = n.IsRead || a.prefs.IsRead(n.ID)
			items[i] = n
		}
		a.notifications.SetNotifications(items)
		return &a, nil

	case ui.CallsTickMsg:
		if a.queuesLoaded {
			cmds = append(cmds, a.fetchCalls(a.callsView.Page()))
		}
		cmds = append(cmds, a.scheduleCallsRefresh())
		return &a, tea.Batch(cmds...)

	// --- Live events ---

	case ui.NotificationMsg:
		n := msg.Notification
		n.IsRead = n.IsRead || a.prefs.IsRead(n.ID)
		a.notifications.Add(n)
		if !n.IsRead {
			a.status = "New notification from " + n.Name
		}
		return &a, nil

	case ui.PresenceMsg:
		if op, ok := a.dir.SetPresence(msg.Username, msg.Presence); ok {
			a.detailsView.UpdateOperator(op)
			if a.me != nil && a.me.Username == op.Username {
				me := *a.me
				me.Presence = op.Presence
				me.MainPresence = op.MainPresence
				a.me = &me
			}
		}
		return &a, nil

	case ui.EventsStatusMsg:
		a.connected = msg.Connected
		return &a, nil

	case logging.RecordMsg:
		a.status = msg.Summary
		a.activityLog.Append(logview.Entry{Time: a.clock.Now(), Level: msg.Level, Text: msg.Summary})
		return &a, nil

	case ui.StatusMsg:
		a.status = msg.Text
		return &a, nil

	// --- Search ---

	case searchview.QueryChangedMsg:
		a.pipeline.Submit(msg.Query)
		return &a, nil

	case ui.SearchStateMsg:
		if a.searchView.IsActive() {
			a.searchView.SetState(msg.State)
		}
		return &a, nil

	case searchview.SelectMsg:
		return a.selectResult(msg.Result)

	case searchview.ClosedMsg:
		a.pipeline.Dismiss()
		return &a, nil

	// --- View requests ---

	case ui.DialMsg:
		a.closeDrawers()
		a.status = "Calling " + msg.Number + "..."
		return &a, a.doCall(msg.Number)

	case ui.ShowOperatorMsg:
		a.detailsView.SetOperator(msg.Operator)
		return &a, nil

	case ui.ShowContactMsg:
		a.detailsView.SetContact(msg.Contact)
		return &a, nil

	case ui.CreateContactMsg:
		return &a, a.openContactForm(msg.Number)

	case ui.PageRequestMsg:
		switch a.currentView {
		case ViewCalls:
			return &a, a.fetchCalls(msg.Page)
		case ViewPhonebook:
			return &a, a.fetchPhonebook(msg.Page)
		}
		return &a, nil

	case linesview.SortChangedMsg:
		by := msg.SortBy
		return &a, a.updatePrefs(func(p *prefs.Preferences) { p.LinesSortBy = by })

	case callsview.OutcomeChangedMsg:
		outcome := msg.Outcome
		cmds = append(cmds,
			a.updatePrefs(func(p *prefs.Preferences) { p.QueuesOutcomeFilter = outcome }),
			a.fetchCalls(1))
		return &a, tea.Batch(cmds...)

	case queuesview.ExpandedChangedMsg:
		expanded := msg.Expanded
		return &a, a.updatePrefs(func(p *prefs.Preferences) { p.ExpandedQueues = expanded })

	case queuesview.ActionMsg:
		a.status = fmt.Sprintf("Queue %s: %s...", msg.Queue, msg.Action)
		return &a, a.doQueueAction(msg.Queue, msg.Action)

	case queuesview.BulkMsg:
		title, label := "Logout from all queues", "Logout"
		if msg.Action == api.QueuePause {
			title, label = "Pause from all queues", "Pause"
		}
		n := len(a.queuesView.All())
		a.confirmDialog = confirm.New(title,
			fmt.Sprintf("%s extension %s on %d queues?", label, a.mainExt(), n),
			actionBulkQueue, msg.Action)
		a.confirmDialog.ConfirmLabel = label
		a.confirmDialog.SetSize(a.width, a.height-3)
		return &a, nil

	case confirm.ResultMsg:
		if msg.Confirmed {
			switch msg.Action {
			case actionBulkQueue:
				action, _ := msg.Data.(api.QueueAction)
				a.status = fmt.Sprintf("Running %s on all queues...", action)
				cmds = append(cmds, a.doBulkQueueAction(action))
			}
		}
		return &a, tea.Batch(cmds...)

	case phonebookview.OpenFilterMsg:
		a.filterOverlay = filteroverlay.New(msg.Current)
		a.filterOverlay.SetSize(a.width, a.height-3)
		return &a, nil

	case filteroverlay.ResultMsg:
		if msg.Applied {
			f := msg.Filter
			a.phonebookView.SetFilter(f)
			cmds = append(cmds,
				a.updatePrefs(func(p *prefs.Preferences) {
					p.PhonebookKind = f.Kind
					p.PhonebookSortBy = f.Sort
				}),
				a.fetchPhonebook(1))
		}
		return &a, tea.Batch(cmds...)

	case contactform.SubmitMsg:
		a.status = "Saving contact..."
		return &a, a.doCreateContact(msg.Contact)

	case contactform.CancelMsg, details.ClosedMsg, notifications.ClosedMsg, logview.ClosedMsg:
		return &a, nil

	case notifications.ReadMsg:
		ids, read := msg.IDs, msg.Read
		cmds = append(cmds,
			a.updatePrefs(func(p *prefs.Preferences) {
				for _, id := range ids {
					p.SetRead(id, read)
				}
			}),
			a.markNotificationsRead(ids, read))
		return &a, tea.Batch(cmds...)

	case ui.ActionResultMsg:
		if msg.Err != nil {
			a.logger.Warn(msg.Action+" failed", "error", msg.Err)
			a.status = fmt.Sprintf("Error: %s failed: %v", msg.Action, msg.Err)
		} else {
			a.status = msg.Summary
		}
		switch msg.Action {
		case "queue", "bulk":
			cmds = append(cmds, a.fetchQueues())
		case "contact":
			if msg.Err == nil {
				cmds = append(cmds, a.fetchPhonebook(a.phonebookView.Page()))
			}
		}
		return &a, tea.Batch(cmds...)
	}

	// Remaining messages (cursor blinks, list filter results) go to the
	// focused component.
	return a.forward(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Modal overlays own the keyboard.
	switch {
	case a.confirmDialog.IsActive():
		a.confirmDialog, cmd = a.confirmDialog.Update(msg)
		return &a, cmd
	case a.filterOverlay.IsActive():
		a.filterOverlay, cmd = a.filterOverlay.Update(msg)
		return &a, cmd
	case a.contactForm.IsActive():
		a.contactForm, cmd = a.contactForm.Update(msg)
		return &a, cmd
	case a.showHelp:
		a.showHelp = false
		return &a, nil
	}

	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	// ctrl+f reaches the search from anywhere else, even while a list
	// filter is being typed.
	if msg.String() == "ctrl+f" {
		return &a, a.openSearch()
	}

	switch {
	case a.searchView.IsActive():
		a.searchView, cmd = a.searchView.Update(msg)
		return &a, cmd
	case a.notifications.IsActive():
		a.notifications, cmd = a.notifications.Update(msg)
		return &a, cmd
	case a.detailsView.IsActive():
		a.detailsView, cmd = a.detailsView.Update(msg)
		return &a, cmd
	case a.activityLog.IsActive():
		a.activityLog, cmd = a.activityLog.Update(msg)
		return &a, cmd
	}

	// Let an active list filter consume keys (including q and digits).
	if a.isListFiltering() {
		return a.forward(msg)
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return a.quit()
	case key.Matches(msg, ui.Keys.Help):
		a.showHelp = true
		return &a, nil
	case key.Matches(msg, ui.Keys.GlobalSearch):
		return &a, a.openSearch()
	case key.Matches(msg, ui.Keys.Notifications):
		a.notifications.Open()
		return &a, nil
	case key.Matches(msg, ui.Keys.ActivityLog):
		a.activityLog.Open()
		return &a, nil
	case key.Matches(msg, ui.Keys.Refresh):
		return &a, a.refreshCurrent()
	}

	switch msg.String() {
	case "1":
		a.currentView = ViewLines
		return &a, nil
	case "2":
		a.currentView = ViewQueues
		return &a, nil
	case "3":
		a.currentView = ViewCalls
		return &a, nil
	case "4":
		a.currentView = ViewPhonebook
		return &a, nil
	}

	return a.forward(msg)
}

// forward passes msg to the component that currently has focus.
func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case a.confirmDialog.IsActive():
		a.confirmDialog, cmd = a.confirmDialog.Update(msg)
	case a.filterOverlay.IsActive():
		a.filterOverlay, cmd = a.filterOverlay.Update(msg)
	case a.contactForm.IsActive():
		a.contactForm, cmd = a.contactForm.Update(msg)
	case a.searchView.IsActive():
		a.searchView, cmd = a.searchView.Update(msg)
	case a.detailsView.IsActive():
		a.detailsView, cmd = a.detailsView.Update(msg)
	case a.activityLog.IsActive():
		a.activityLog, cmd = a.activityLog.Update(msg)
	default:
		switch a.currentView {
		case ViewLines:
			a.linesView, cmd = a.linesView.Update(msg)
		case ViewQueues:
			a.queuesView, cmd = a.queuesView.Update(msg)
		case ViewCalls:
			a.callsView, cmd = a.callsView.Update(msg)
		case ViewPhonebook:
			a.phonebookView, cmd = a.phonebookView.Update(msg)
		}
	}
	return &a, cmd
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.pipeline.Close()
	return &a, tea.Quit
}

func (a *App) openSearch() tea.Cmd {
	a.closeDrawers()
	if a.searchView.IsActive() {
		return nil
	}
	a.pipeline.Dismiss()
	return a.searchView.Activate()
}

func (a *App) closeDrawers() {
	a.notifications.Close()
	a.detailsView.Close()
	a.activityLog.Close()
}

func (a *App) openContactForm(number string) tea.Cmd {
	a.closeDrawers()
	a.contactForm = contactform.New(number)
	a.contactForm.SetSize(a.width, a.height-3)
	return a.contactForm.Init()
}

// selectResult runs the action bound to a global search result and closes
// the search.
func (a App) selectResult(r model.SearchResult) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	a.searchView.Deactivate()
	a.pipeline.Select(r, search.Actions{
		Dial: func(number string) {
			a.status = "Calling " + number + "..."
			cmds = append(cmds, a.doCall(number))
		},
		CreateContact: func(number string) {
			cmds = append(cmds, a.openContactForm(number))
		},
		ShowOperator: func(op model.Operator) {
			a.detailsView.SetOperator(op)
		},
		ShowContact: func(c model.Contact) {
			a.detailsView.SetContact(c)
		},
	})
	return &a, tea.Batch(cmds...)
}

func (a App) refreshCurrent() tea.Cmd {
	switch a.currentView {
	case ViewLines:
		return a.fetchLines()
	case ViewQueues:
		return a.fetchQueues()
	case ViewCalls:
		return a.fetchCalls(a.callsView.Page())
	case ViewPhonebook:
		return a.fetchPhonebook(a.phonebookView.Page())
	}
	return nil
}

// updatePrefs applies fn to the in-memory preferences now and to the
// stored file in the background.
func (a *App) updatePrefs(fn func(*prefs.Preferences)) tea.Cmd {
	fn(&a.prefs)
	if a.store == nil {
		return nil
	}
	store, user, logger := a.store, a.cfg.Username, a.logger
	return func() tea.Msg {
		if _, err := store.Update(user, fn); err != nil {
			logger.Warn("cannot save preferences", "error", err)
		}
		return nil
	}
}

func (a App) isListFiltering() bool {
	switch a.currentView {
	case ViewLines:
		return a.linesView.IsFiltering()
	case ViewQueues:
		return a.queuesView.IsFiltering()
	case ViewCalls:
		return a.callsView.IsFiltering()
	case ViewPhonebook:
		return a.phonebookView.IsFiltering()
	}
	return false
}

func (a *App) propagateSize() {
	// header(1) + tabs(1) + status(1) + pane border(2)
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}
	size := tea.WindowSizeMsg{Width: a.width - 4, Height: contentH}

	a.linesView, _ = a.linesView.Update(size)
	a.queuesView, _ = a.queuesView.Update(size)
	a.callsView, _ = a.callsView.Update(size)
	a.phonebookView, _ = a.phonebookView.Update(size)
	a.searchView, _ = a.searchView.Update(size)
	a.notifications, _ = a.notifications.Update(size)
	a.detailsView, _ = a.detailsView.Update(size)
	a.activityLog, _ = a.activityLog.Update(size)
	a.confirmDialog.SetSize(a.width, a.height-3)
	a.filterOverlay.SetSize(a.width, a.height-3)
	a.contactForm.SetSize(a.width, a.height-3)
}

// --- View ---

func (a App) View() string {
	header := RenderHeader(a.headerInfo(), a.width)
	tabs := a.renderTabs()

	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}
	pane := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)

	var body string
	switch {
	case a.searchView.IsActive():
		body = a.searchView.View()
	case a.notifications.IsActive():
		body = a.notifications.View()
	case a.detailsView.IsActive():
		body = a.detailsView.View()
	case a.activityLog.IsActive():
		body = a.activityLog.View()
	default:
		switch a.currentView {
		case ViewLines:
			body = a.linesView.View()
		case ViewQueues:
			body = a.queuesView.View()
		case ViewCalls:
			body = a.callsView.View()
		case ViewPhonebook:
			body = a.phonebookView.View()
		}
	}
	content := pane.Render(body)

	if a.showHelp {
		content = a.renderHelp()
	} else if a.confirmDialog.IsActive() {
		content = a.confirmDialog.View()
	} else if a.filterOverlay.IsActive() {
		content = a.filterOverlay.View()
	} else if a.contactForm.IsActive() {
		content = a.contactForm.View()
	}

	statusBar := RenderStatusBar(a.status, a.contextHints(), a.width)

	maxContentLines := a.height - 3
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			content = strings.Join(lines[:maxContentLines], "\n")
		}
	}

	return header + "\n" + tabs + "\n" + content + "\n" + statusBar
}

func (a App) headerInfo() HeaderInfo {
	info := HeaderInfo{
		Username:  a.cfg.Username,
		Extension: a.mainExt(),
		Unread:    a.notifications.UnreadCount(),
		Connected: a.connected,
	}
	if a.me != nil {
		info.Name = a.me.Name
		info.Presence = a.me.PresenceStatus()
	}
	return info
}

func (a App) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeTab := tabStyle.Bold(true).Foreground(ui.ColorPrimary)
	inactiveTab := tabStyle.Foreground(ui.ColorMuted)

	phonebookLabel := "[4] Phonebook"
	if s := a.phonebookView.Filter().Summary(); s != "" {
		phonebookLabel = fmt.Sprintf("[4] Phonebook (%s)", s)
	}
	labels := []struct {
		view  View
		label string
	}{
		{ViewLines, "[1] Lines"},
		{ViewQueues, "[2] Queues"},
		{ViewCalls, "[3] Calls"},
		{ViewPhonebook, phonebookLabel},
	}

	tabs := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.view == a.currentView {
			tabs = append(tabs, activeTab.Render(l.label))
		} else {
			tabs = append(tabs, inactiveTab.Render(l.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) contextHints() string {
	switch {
	case a.confirmDialog.IsActive():
		return "y:confirm  n:cancel"
	case a.filterOverlay.IsActive():
		return "j/k:field  enter:change  a:apply  esc:cancel"
	case a.contactForm.IsActive():
		return "tab:next field  ctrl+s:save  esc:cancel"
	case a.searchView.IsActive():
		return "up/down:select  enter:open  esc:close"
	case a.notifications.IsActive():
		return "space:read  A:all read  c:call back  esc:close"
	case a.detailsView.IsActive():
		return "c:call  esc:close"
	case a.activityLog.IsActive():
		return "/:search  n/N:match  g/G:top/bottom  esc:close"
	}

	switch a.currentView {
	case ViewLines:
		return "f:filter  s:sort  r:refresh  /:search  ?:help"
	case ViewQueues:
		return "space:expand  E:all  i:login  p:pause  L/P:all queues  f:filter  ?:help"
	case ViewCalls:
		return "<-/->:page  o:outcome  c:call  f:filter  ?:help"
	case ViewPhonebook:
		return "enter:details  c:call  a:add  S:filter  <-/->:page  ?:help"
	}
	return "?:help  q:quit"
}

func (a App) renderHelp() string {
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("1-4", "Switch tab: Lines, Queues, Calls, Phonebook"))
	b.WriteString(row("ctrl+f  /", "Search operators, contacts and numbers"))
	b.WriteString(row("n", "Notifications"))
	b.WriteString(row("v", "Activity log"))
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("r", "Refresh"))
	b.WriteString(row("f", "Filter list"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Lines") + "\n\n")
	b.WriteString(row("s", "Sort by name / number"))

	b.WriteString("\n" + bold.Render("  Queues") + "\n\n")
	b.WriteString(row("space", "Expand / collapse queue"))
	b.WriteString(row("E", "Expand / collapse all"))
	b.WriteString(row("i", "Login / logout selected queue"))
	b.WriteString(row("p", "Pause / unpause selected queue"))
	b.WriteString(row("L", "Logout from all queues"))
	b.WriteString(row("P", "Pause from all queues"))

	b.WriteString("\n" + bold.Render("  Calls") + "\n\n")
	b.WriteString(row("<- / ->", "Previous / next page"))
	b.WriteString(row("o", "Cycle outcome filter"))
	b.WriteString(row("c", "Call back"))

	b.WriteString("\n" + bold.Render("  Phonebook") + "\n\n")
	b.WriteString(row("S", "Search, type and sort"))
	b.WriteString(row("a", "Add contact"))
	b.WriteString(row("enter", "Contact details"))
	b.WriteString(row("c", "Call primary number"))

	b.WriteString("\n" + bold.Render("  Notifications") + "\n\n")
	b.WriteString(row("space", "Toggle read"))
	b.WriteString(row("A", "Mark all read"))
	b.WriteString(row("c", "Call back a missed call"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}

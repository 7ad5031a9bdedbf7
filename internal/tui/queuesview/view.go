package queuesview

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/api"
	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/ops"
	"github.com/altinukshini/cti-tui/internal/ui"
)

const ErrorMessage = "Cannot retrieve queues"

// ExpandedChangedMsg carries the expanded queue ids after a toggle.
type ExpandedChangedMsg struct {
	Expanded []string
}

// ActionMsg asks the app to change the user's membership of one queue.
type ActionMsg struct {
	Queue  string
	Action api.QueueAction
}

// BulkMsg asks the app to apply an action to every queue, after
// confirmation.
type BulkMsg struct {
	Action api.QueueAction
}

type Model struct {
	queues    map[string]model.Queue
	visible   []model.Queue
	stats     model.QueueStats
	statsErr  error
	expanded  map[string]bool
	ext       string
	cursor    int
	filter    textinput.Model
	filtering bool
	width     int
	height    int
	loading   bool
	err       error
}

// New creates the view for the user's main extension ext with the
// previously expanded queues.
func New(ext string, expanded []string) Model {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.CharLimit = 64

	exp := make(map[string]bool, len(expanded))
	for _, q := range expanded {
		exp[q] = true
	}
	return Model{
		expanded: exp,
		ext:      ext,
		filter:   ti,
		loading:  true,
	}
}

func (m *Model) SetExtension(ext string) { m.ext = ext }

// Queues returns the queues currently listed, filter applied.
func (m Model) Queues() []model.Queue { return m.visible }

// All returns every loaded queue.
func (m Model) All() []model.Queue {
	return ops.FilterQueues(m.queues, "")
}

func (m Model) Stats() model.QueueStats { return m.stats }

func (m Model) SelectedQueue() *model.Queue {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.visible[m.cursor]
}

func (m Model) IsFiltering() bool { return m.filtering }

func (m Model) Expanded() []string {
	out := make([]string, 0, len(m.expanded))
	for q, ok := range m.expanded {
		if ok {
			out = append(out, q)
		}
	}
	sort.Strings(out)
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.QueuesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.queues = msg.Queues
		m.stats = msg.Stats
		m.statsErr = msg.StatsErr
		m.applyFilter()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filter.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.Keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, ui.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, ui.Keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, ui.Keys.Toggle), key.Matches(msg, ui.Keys.Enter):
		if q := m.SelectedQueue(); q != nil {
			m.expanded[q.Queue] = !m.expanded[q.Queue]
			return m, m.expandedChanged()
		}
	case key.Matches(msg, ui.Keys.ToggleAll):
		all := !m.allExpanded()
		for _, q := range m.visible {
			m.expanded[q.Queue] = all
		}
		return m, m.expandedChanged()
	case key.Matches(msg, ui.Keys.QueueLogin):
		if q := m.SelectedQueue(); q != nil {
			action := api.QueueLogin
			if mem, ok := q.Member(m.ext); ok && mem.LoggedIn {
				action = api.QueueLogout
			}
			return m, actionCmd(q.Queue, action)
		}
	case key.Matches(msg, ui.Keys.QueuePause):
		if q := m.SelectedQueue(); q != nil {
			mem, ok := q.Member(m.ext)
			if !ok || !mem.LoggedIn {
				return m, nil
			}
			action := api.QueuePause
			if mem.Paused {
				action = api.QueueUnpause
			}
			return m, actionCmd(q.Queue, action)
		}
	case key.Matches(msg, ui.Keys.LogoutAll):
		return m, func() tea.Msg { return BulkMsg{Action: api.QueueLogout} }
	case key.Matches(msg, ui.Keys.PauseAll):
		return m, func() tea.Msg { return BulkMsg{Action: api.QueuePause} }
	}
	return m, nil
}

func actionCmd(queue string, action api.QueueAction) tea.Cmd {
	return func() tea.Msg { return ActionMsg{Queue: queue, Action: action} }
}

func (m Model) expandedChanged() tea.Cmd {
	expanded := m.Expanded()
	return func() tea.Msg { return ExpandedChangedMsg{Expanded: expanded} }
}

func (m Model) allExpanded() bool {
	for _, q := range m.visible {
		if !m.expanded[q.Queue] {
			return false
		}
	}
	return len(m.visible) > 0
}

func (m *Model) applyFilter() {
	m.visible = ops.FilterQueues(m.queues, m.filter.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// --- View ---

func (m Model) View() string {
	if m.loading {
		return "\n  Loading queues..."
	}
	if m.err != nil {
		return "\n  Error: " + ErrorMessage
	}

	var b strings.Builder
	b.WriteString(m.renderStats() + "\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n")
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		if len(m.queues) == 0 {
			b.WriteString("  You are not a member of any queue")
		} else {
			b.WriteString("  No queues match the filter")
		}
		return b.String()
	}

	lines, cursorLine := m.renderQueues()
	b.WriteString(strings.Join(window(lines, cursorLine, m.height-5), "\n"))
	return b.String()
}

func (m Model) renderStats() string {
	if m.statsErr != nil {
		return ui.StyleMuted.Render("  Statistics unavailable")
	}
	s := m.stats
	cell := func(label, value string) string {
		return ui.StyleMuted.Render(label+" ") + value
	}
	parts := []string{
		cell("Last login", formatTime(s.LastLogin)),
		cell("Last logout", formatTime(s.LastLogout)),
		cell("Last call", formatTime(s.LastCall)),
		cell("Answered", ui.StyleSuccess.Render(fmt.Sprint(s.AnsweredCalls))),
		cell("Missed", ui.StyleFailure.Render(fmt.Sprint(s.MissedCalls))),
		cell("At phone", formatDuration(s.TimeAtPhone)),
	}
	return "  " + strings.Join(parts, "   ")
}

func (m Model) renderQueues() ([]string, int) {
	var lines []string
	cursorLine := 0
	for i, q := range m.visible {
		arrow := "▸"
		if m.expanded[q.Queue] {
			arrow = "▾"
		}

		logged := 0
		for _, mem := range q.Members {
			if mem.LoggedIn {
				logged++
			}
		}

		line := fmt.Sprintf(" %s %s %s  %s  %s  %s",
			arrow,
			ui.StyleBold.Render(q.Queue),
			q.Name,
			ui.StyleMuted.Render(fmt.Sprintf("%d/%d logged in", logged, len(q.Members))),
			ui.StyleMuted.Render(fmt.Sprintf("%d waiting", len(q.Waiting))),
			m.myStatus(q))
		if i == m.cursor {
			cursorLine = len(lines)
			line = lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.width).Render(line)
		}
		lines = append(lines, line)

		if m.expanded[q.Queue] {
			lines = append(lines, renderMembers(q)...)
		}
	}
	return lines, cursorLine
}

func (m Model) myStatus(q model.Queue) string {
	mem, ok := q.Member(m.ext)
	switch {
	case !ok:
		return ""
	case !mem.LoggedIn:
		return ui.StyleMuted.Render("[logged out]")
	case mem.Paused:
		return ui.StyleWarning.Render("[paused]")
	default:
		return ui.StyleSuccess.Render("[logged in]")
	}
}

func renderMembers(q model.Queue) []string {
	members := make([]model.QueueMember, 0, len(q.Members))
	for _, mem := range q.Members {
		members = append(members, mem)
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Name != members[j].Name {
			return members[i].Name < members[j].Name
		}
		return members[i].Member < members[j].Member
	})

	if len(members) == 0 {
		return []string{ui.StyleMuted.Render("      no members")}
	}
	out := make([]string, 0, len(members))
	for _, mem := range members {
		status := ui.StyleMuted.Render("logged out")
		switch {
		case mem.LoggedIn && mem.Paused:
			status = ui.StyleWarning.Render("paused")
		case mem.LoggedIn:
			status = ui.StyleSuccess.Render("logged in")
		}
		out = append(out, fmt.Sprintf("      %s %s  %s", mem.Name, ui.StyleMuted.Render(mem.Member), status))
	}
	return out
}

// window keeps the line at cursor visible in a view of height rows.
func window(lines []string, cursor, height int) []string {
	if height < 1 || len(lines) <= height {
		return lines
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01 15:04")
}

func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	mins := int(d.Minutes()) % 60
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, mins, secs)
}

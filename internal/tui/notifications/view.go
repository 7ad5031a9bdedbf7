package notifications

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/phone"
	"github.com/altinukshini/cti-tui/internal/ui"
)

// ReadMsg reports read state changes to persist and send upstream.
type ReadMsg struct {
	IDs  []string
	Read bool
}

// ClosedMsg is emitted when the drawer is dismissed.
type ClosedMsg struct{}

type Model struct {
	items  []model.Notification
	cursor int
	region string
	now    func() time.Time
	active bool
	width  int
	height int
}

func New(region string, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{region: region, now: now}
}

func (m *Model) Open() {
	m.active = true
	m.cursor = 0
}

func (m *Model) Close() { m.active = false }

func (m Model) IsActive() bool { return m.active }

func (m Model) Items() []model.Notification { return m.items }

// SetNotifications replaces the list, newest first.
func (m *Model) SetNotifications(items []model.Notification) {
	m.items = append([]model.Notification(nil), items...)
	m.sort()
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

// Add inserts n, replacing an existing notification with the same id.
func (m *Model) Add(n model.Notification) {
	for i := range m.items {
		if m.items[i].ID == n.ID {
			m.items[i] = n
			m.sort()
			return
		}
	}
	m.items = append(m.items, n)
	m.sort()
}

func (m *Model) sort() {
	sort.SliceStable(m.items, func(i, j int) bool {
		return m.items[i].Timestamp.After(m.items[j].Timestamp)
	})
}

func (m Model) UnreadCount() int {
	n := 0
	for _, it := range m.items {
		if !it.IsRead {
			n++
		}
	}
	return n
}

func (m Model) Selected() *model.Notification {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case key.Matches(msg, ui.Keys.Back), key.Matches(msg, ui.Keys.Notifications):
			m.active = false
			return m, func() tea.Msg { return ClosedMsg{} }
		case key.Matches(msg, ui.Keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, ui.Keys.Toggle):
			if n := m.Selected(); n != nil {
				n.IsRead = !n.IsRead
				return m, readCmd([]string{n.ID}, n.IsRead)
			}
		case key.Matches(msg, ui.Keys.Enter):
			if n := m.Selected(); n != nil && !n.IsRead {
				n.IsRead = true
				return m, readCmd([]string{n.ID}, true)
			}
		case key.Matches(msg, ui.Keys.MarkAllRead):
			var ids []string
			for i := range m.items {
				if !m.items[i].IsRead {
					m.items[i].IsRead = true
					ids = append(ids, m.items[i].ID)
				}
			}
			if len(ids) > 0 {
				return m, readCmd(ids, true)
			}
		case key.Matches(msg, ui.Keys.Call):
			if n := m.Selected(); n != nil && n.Type == model.NotificationMissedCall && n.Number != "" {
				number := n.Number
				return m, func() tea.Msg { return ui.DialMsg{Number: number} }
			}
		}
	}
	return m, nil
}

func readCmd(ids []string, read bool) tea.Cmd {
	return func() tea.Msg { return ReadMsg{IDs: ids, Read: read} }
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).
		Render(fmt.Sprintf(" Notifications (%d unread)", m.UnreadCount()))
	hints := ui.StyleMuted.Render("  space:read/unread  A:mark all read  c:call back  esc:close")

	var b strings.Builder
	b.WriteString(title + hints + "\n\n")
	if len(m.items) == 0 {
		b.WriteString("  No notifications")
		return b.String()
	}

	rows := (m.height - 3) / 2
	start := 0
	if rows > 0 && m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := len(m.items)
	if rows > 0 && start+rows < end {
		end = start + rows
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderItem(i, m.items[i]) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderItem(i int, n model.Notification) string {
	dot := " "
	if !n.IsRead {
		dot = ui.StyleInfo.Render("●")
	}

	icon, detail := "✉", n.Message
	switch n.Type {
	case model.NotificationMissedCall:
		icon = ui.StyleFailure.Render("☎")
		detail = phone.Display(n.Number, m.region)
	case model.NotificationChat:
		icon = ui.StyleInfo.Render("✉")
	}

	titleText := n.Name
	if titleText == "" {
		titleText = "Unknown"
	}
	line1 := fmt.Sprintf(" %s %s %s", dot, icon, ui.StyleBold.Render(titleText))
	if n.Queue != "" {
		line1 += " " + ui.StyleBadge.Render(n.Queue)
	}
	line1 += "  " + ui.StyleMuted.Render(ui.FormatAgo(m.now().Sub(n.Timestamp)))
	line2 := "      " + ui.StyleMuted.Render(detail)

	if i == m.cursor {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.width)
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}
	return line1 + "\n" + line2
}

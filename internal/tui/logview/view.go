package logview

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/ui"
)

// MaxEntries bounds the kept history; older entries are dropped first.
const MaxEntries = 500

// ClosedMsg is emitted when the drawer is dismissed.
type ClosedMsg struct{}

// Entry is one warning or error surfaced to the operator.
type Entry struct {
	Time  time.Time
	Level slog.Level
	Text  string
}

// Model is the activity log drawer: a scrollable history of the records
// shown in the status bar, with in-log search.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	content  string
	width    int
	height   int
	ready    bool
	active   bool

	searchInput textinput.Model
	searching   bool
	searchQuery string
	matchLines  []int // 0-based line indices of matches
	matchIndex  int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search in log..."
	ti.CharLimit = 256
	return Model{searchInput: ti}
}

func (m *Model) Open() {
	m.active = true
	if m.ready {
		m.viewport.GotoBottom()
	}
}

func (m *Model) Close() {
	m.active = false
	m.searching = false
	m.searchInput.Blur()
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Entries() []Entry { return m.entries }

// Append adds e and keeps following the tail when the view is at the
// bottom.
func (m *Model) Append(e Entry) {
	m.entries = append(m.entries, e)
	if len(m.entries) > MaxEntries {
		m.entries = append([]Entry(nil), m.entries[len(m.entries)-MaxEntries:]...)
	}
	m.content = m.render()
	if m.searchQuery != "" {
		m.findMatches()
	}
	if !m.ready {
		return
	}
	wasAtBottom := m.viewport.AtBottom()
	prevOffset := m.viewport.YOffset
	m.viewport.SetContent(m.applyHighlights())
	if wasAtBottom {
		m.viewport.GotoBottom()
	} else {
		m.viewport.SetYOffset(prevOffset)
	}
}

func (m Model) render() string {
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = fmt.Sprintf("%s %s %s", e.Time.Format("15:04:05"), levelTag(e.Level), e.Text)
	}
	return strings.Join(lines, "\n")
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return ui.StyleFailure.Render("ERROR")
	case l >= slog.LevelWarn:
		return ui.StyleWarning.Render("WARN ")
	case l >= slog.LevelInfo:
		return ui.StyleInfo.Render("INFO ")
	}
	return ui.StyleMuted.Render("DEBUG")
}

func (m Model) IsSearching() bool { return m.searching }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searchQuery = m.searchInput.Value()
				m.findMatches()
				m.viewport.SetContent(m.applyHighlights())
				if len(m.matchLines) > 0 {
					m.matchIndex = 0
					m.viewport.SetYOffset(m.matchLines[0])
				}
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, ui.Keys.Back), key.Matches(msg, ui.Keys.ActivityLog):
			m.Close()
			return m, func() tea.Msg { return ClosedMsg{} }
		}
		switch msg.String() {
		case "/":
			m.searching = true
			m.searchInput.SetValue("")
			return m, m.searchInput.Focus()
		case "n":
			if len(m.matchLines) > 0 {
				m.matchIndex = (m.matchIndex + 1) % len(m.matchLines)
				m.viewport.SetContent(m.applyHighlights())
				m.viewport.SetYOffset(m.matchLines[m.matchIndex])
			}
			return m, nil
		case "N":
			if len(m.matchLines) > 0 {
				m.matchIndex = (m.matchIndex - 1 + len(m.matchLines)) % len(m.matchLines)
				m.viewport.SetContent(m.applyHighlights())
				m.viewport.SetYOffset(m.matchLines[m.matchIndex])
			}
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// title + search line
		h := msg.Height - 2
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
			m.viewport.SetContent(m.applyHighlights())
			m.viewport.GotoBottom()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		return m, nil
	}

	if !m.active || !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) findMatches() {
	m.matchLines = nil
	if m.searchQuery == "" {
		return
	}
	query := strings.ToLower(m.searchQuery)
	for i, e := range m.entries {
		if strings.Contains(strings.ToLower(e.Text), query) {
			m.matchLines = append(m.matchLines, i)
		}
	}
	if m.matchIndex >= len(m.matchLines) {
		m.matchIndex = 0
	}
}

// applyHighlights returns the content with matching lines highlighted.
func (m Model) applyHighlights() string {
	if m.searchQuery == "" || len(m.matchLines) == 0 {
		return m.content
	}

	matchSet := make(map[int]bool, len(m.matchLines))
	for _, idx := range m.matchLines {
		matchSet[idx] = true
	}
	currentMatchLine := -1
	if m.matchIndex >= 0 && m.matchIndex < len(m.matchLines) {
		currentMatchLine = m.matchLines[m.matchIndex]
	}

	highlight := lipgloss.NewStyle().Background(lipgloss.Color("#374151"))
	current := lipgloss.NewStyle().Background(lipgloss.Color("#92400E")).Bold(true)

	lines := strings.Split(m.content, "\n")
	for i, line := range lines {
		if i == currentMatchLine {
			lines[i] = current.Render(line)
		} else if matchSet[i] {
			lines[i] = highlight.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	if !m.active {
		return ""
	}
	if len(m.entries) == 0 {
		return "\n  No activity yet"
	}

	title := fmt.Sprintf(" Activity (%d)", len(m.entries))
	if m.ready {
		title += fmt.Sprintf("  %3.f%%", m.viewport.ScrollPercent()*100)
	}
	if m.searchQuery != "" && len(m.matchLines) > 0 {
		title += fmt.Sprintf("  [%d/%d matches]", m.matchIndex+1, len(m.matchLines))
	} else if m.searchQuery != "" {
		title += "  [no matches]"
	}
	header := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(title)

	searchLine := ""
	if m.searching {
		searchLine = "  /" + m.searchInput.View()
	}
	return header + "\n" + searchLine + "\n" + m.viewport.View()
}

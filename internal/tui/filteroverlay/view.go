package filteroverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/ui"
)

// ---------------------------------------------------------------------------
// Filter result
// ---------------------------------------------------------------------------

// FilterResult holds the phonebook filter chosen by the user.
type FilterResult struct {
	Query string
	Kind  string // all | person | company
	Sort  string // name | company
}

// IsEmpty returns true when the filter matches the default listing.
func (f FilterResult) IsEmpty() bool {
	return f.Query == "" && (f.Kind == "" || f.Kind == "all") && (f.Sort == "" || f.Sort == "name")
}

// Summary returns a short human-readable summary suitable for a tab label.
func (f FilterResult) Summary() string {
	var parts []string
	if f.Query != "" {
		parts = append(parts, fmt.Sprintf("%q", f.Query))
	}
	if f.Kind != "" && f.Kind != "all" {
		parts = append(parts, "type:"+f.Kind)
	}
	if f.Sort != "" && f.Sort != "name" {
		parts = append(parts, "sort:"+f.Sort)
	}
	return strings.Join(parts, " ")
}

// ResultMsg is emitted when the user applies or cancels the filter.
type ResultMsg struct {
	Applied bool
	Filter  FilterResult
}

// ---------------------------------------------------------------------------
// Fields
// ---------------------------------------------------------------------------

type field int

const (
	fieldQuery field = iota
	fieldKind
	fieldSort
	fieldCount
)

var (
	KindOptions = []string{"all", "person", "company"}
	SortOptions = []string{"name", "company"}
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the phonebook filter overlay.
type Model struct {
	active  bool
	focused field
	query   textinput.Model
	kindIdx int
	sortIdx int
	width   int
	height  int
}

// New creates an active overlay pre-populated with current.
func New(current FilterResult) Model {
	q := textinput.New()
	q.Placeholder = "name, company or number"
	q.CharLimit = 128
	q.Width = 30
	q.SetValue(current.Query)

	return Model{
		active:  true,
		query:   q,
		kindIdx: indexOf(KindOptions, current.Kind),
		sortIdx: indexOf(SortOptions, current.Sort),
	}
}

func (m Model) IsActive() bool { return m.active }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return nil }

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// A focused text input keeps most keys for itself.
	if m.query.Focused() {
		switch msgKey.String() {
		case "esc":
			m.active = false
			return m, emitResult(false, FilterResult{})
		case "enter":
			m.active = false
			return m, emitResult(true, m.buildFilterResult())
		case "up", "down", "tab", "shift+tab":
			m.query.Blur()
			if msgKey.String() == "up" || msgKey.String() == "shift+tab" {
				m.moveFocus(-1)
			} else {
				m.moveFocus(1)
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.query, cmd = m.query.Update(msg)
			return m, cmd
		}
	}

	switch msgKey.String() {
	case "j", "down", "tab":
		m.moveFocus(1)
	case "k", "up", "shift+tab":
		m.moveFocus(-1)

	case "enter", "right", "l":
		switch m.focused {
		case fieldQuery:
			m.query.Focus()
			return m, textinput.Blink
		case fieldKind:
			m.kindIdx = (m.kindIdx + 1) % len(KindOptions)
		case fieldSort:
			m.sortIdx = (m.sortIdx + 1) % len(SortOptions)
		}

	case "left", "h":
		switch m.focused {
		case fieldKind:
			m.kindIdx = (m.kindIdx + len(KindOptions) - 1) % len(KindOptions)
		case fieldSort:
			m.sortIdx = (m.sortIdx + len(SortOptions) - 1) % len(SortOptions)
		}

	case "a":
		m.active = false
		return m, emitResult(true, m.buildFilterResult())

	case "c":
		m.query.SetValue("")
		m.kindIdx = 0
		m.sortIdx = 0

	case "esc":
		m.active = false
		return m, emitResult(false, FilterResult{})
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if !m.active {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Width(10).Foreground(ui.ColorMuted)
	focusedLabelStyle := lipgloss.NewStyle().Width(10).Bold(true).Foreground(ui.ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))

	rows := make([]string, 0, int(fieldCount))
	for f := field(0); f < fieldCount; f++ {
		ls := labelStyle
		if f == m.focused {
			ls = focusedLabelStyle
		}

		var label, value string
		switch f {
		case fieldQuery:
			label = "Search:"
			value = m.query.View()
		case fieldKind:
			label = "Type:"
			value = valueStyle.Render(KindOptions[m.kindIdx])
		case fieldSort:
			label = "Sort by:"
			value = valueStyle.Render(SortOptions[m.sortIdx])
		}

		cursor := "  "
		if f == m.focused {
			cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, ls.Render(label), value))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		MarginBottom(1).
		Render("Phonebook Filter")

	help := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1).
		Render("a: apply  c: clear  esc: cancel")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(rows, "\n"),
		help,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(56).
		Render(body)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (m *Model) moveFocus(delta int) {
	next := (int(m.focused) + delta + int(fieldCount)) % int(fieldCount)
	m.focused = field(next)
}

func (m Model) buildFilterResult() FilterResult {
	return FilterResult{
		Query: strings.TrimSpace(m.query.Value()),
		Kind:  KindOptions[m.kindIdx],
		Sort:  SortOptions[m.sortIdx],
	}
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return 0
}

func emitResult(applied bool, f FilterResult) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Applied: applied, Filter: f}
	}
}

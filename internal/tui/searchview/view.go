package searchview

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/phone"
	"github.com/altinukshini/cti-tui/internal/search"
	"github.com/altinukshini/cti-tui/internal/ui"
)

// QueryChangedMsg is emitted whenever the text in the search box changes.
type QueryChangedMsg struct {
	Query string
}

// SelectMsg is emitted when the user picks a result.
type SelectMsg struct {
	Result model.SearchResult
}

// ClosedMsg is emitted when the user dismisses the search.
type ClosedMsg struct{}

var (
	keyNext = key.NewBinding(key.WithKeys("down", "ctrl+n", "tab"))
	keyPrev = key.NewBinding(key.WithKeys("up", "ctrl+p", "shift+tab"))
)

type Model struct {
	input  textinput.Model
	state  search.State
	region string
	cursor int
	width  int
	height int
	active bool
}

func New(region string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search operators, contacts or numbers"
	ti.CharLimit = 128
	ti.Prompt = "Search: "
	return Model{input: ti, region: region}
}

func (m *Model) Activate() tea.Cmd {
	m.active = true
	return m.input.Focus()
}

// Deactivate closes the search box and clears the query.
func (m *Model) Deactivate() {
	m.active = false
	m.input.Blur()
	m.input.SetValue("")
	m.state = search.State{}
	m.cursor = 0
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Query() string { return m.input.Value() }

func (m Model) State() search.State { return m.state }

// SetState replaces the rendered search state. The cursor is kept when it
// still points at a result.
func (m *Model) SetState(st search.State) {
	m.state = st
	if m.cursor >= len(st.Results) {
		m.cursor = 0
	}
}

func (m Model) Selected() (model.SearchResult, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Results) {
		return model.SearchResult{}, false
	}
	return m.state.Results[m.cursor], true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 4
		return m, nil

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case key.Matches(msg, ui.Keys.Back):
			m.Deactivate()
			return m, func() tea.Msg { return ClosedMsg{} }
		case key.Matches(msg, keyNext):
			if m.cursor < len(m.state.Results)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, keyPrev):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, ui.Keys.Enter):
			r, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return SelectMsg{Result: r} }
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.cursor = 0
			changed := func() tea.Msg { return QueryChangedMsg{Query: after} }
			return m, tea.Batch(cmd, changed)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + m.input.View() + "\n\n")

	st := m.state
	trimmed := strings.TrimSpace(m.input.Value())
	switch {
	case trimmed == "":
		b.WriteString(ui.StyleMuted.Render("  Type a name, extension or phone number"))
		return b.String()
	case st.Phase == search.PhaseIdle && utf8.RuneCountInString(trimmed) <= model.MinSearchLength:
		b.WriteString(ui.StyleMuted.Render("  Type at least 3 characters"))
		return b.String()
	}

	if st.Err != "" {
		b.WriteString("  " + ui.StyleErrorBanner.Render(st.Err) + "\n\n")
	}

	busy := st.Phase == search.PhaseDebouncing || st.Phase == search.PhaseFetching
	if len(st.Results) == 0 {
		if busy {
			b.WriteString("  Searching...")
		} else if st.Phase == search.PhaseLoaded || st.Phase == search.PhaseError {
			b.WriteString("  No results")
		}
		return b.String()
	}

	start, end := m.window(len(st.Results))
	for i := start; i < end; i++ {
		b.WriteString(m.renderResult(i, st.Results[i]) + "\n")
	}
	footer := fmt.Sprintf("  %d results", len(st.Results))
	if busy {
		footer += "  searching..."
	}
	b.WriteString(ui.StyleMuted.Render(footer))
	return b.String()
}

// window returns the slice of rows that fits the view around the cursor.
func (m Model) window(n int) (int, int) {
	rows := m.height - 6
	if rows < 1 || rows >= n {
		return 0, n
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

func (m Model) renderResult(i int, r model.SearchResult) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}
	line := fmt.Sprintf("%s%s %s", cursor, r.Icon(), m.label(r))
	if detail := m.detail(r); detail != "" {
		line += "  " + ui.StyleMuted.Render(detail)
	}
	if i == m.cursor {
		line = ui.StyleSelected.Render(line)
	}
	return line
}

func (m Model) label(r model.SearchResult) string {
	switch r.Kind {
	case model.ResultCallPhoneNumber:
		return "Call " + ui.StyleBold.Render(phone.Display(r.PhoneNumber, m.region))
	case model.ResultAddToPhonebook:
		return "Add " + ui.StyleBold.Render(r.PhoneNumber) + " to phonebook"
	}
	return r.Label()
}

func (m Model) detail(r model.SearchResult) string {
	switch r.Kind {
	case model.ResultOperator:
		if r.Operator == nil {
			return ""
		}
		op := *r.Operator
		return ui.PresenceIcon(op.PresenceStatus()) + " " + op.MainExtension()
	case model.ResultContact:
		if r.Contact == nil {
			return ""
		}
		parts := []string{}
		if r.Contact.Kind() == model.ContactPerson && r.Contact.Company != "" {
			parts = append(parts, r.Contact.Company)
		}
		if n := r.Contact.PrimaryNumber(); n != "" {
			parts = append(parts, n)
		}
		return strings.Join(parts, " · ")
	}
	return ""
}

package details

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/phone"
	"github.com/altinukshini/cti-tui/internal/ui"
)

// ClosedMsg is emitted when the drawer is dismissed.
type ClosedMsg struct{}

// Model is the operator / contact detail drawer.
type Model struct {
	operator *model.Operator
	contact  *model.Contact
	region   string
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	active   bool
}

func New(region string) Model {
	return Model{region: region}
}

func (m *Model) SetOperator(op model.Operator) {
	m.operator = &op
	m.contact = nil
	m.open()
}

func (m *Model) SetContact(c model.Contact) {
	m.contact = &c
	m.operator = nil
	m.open()
}

// UpdateOperator refreshes the shown operator when it is the same user,
// e.g. after a presence change.
func (m *Model) UpdateOperator(op model.Operator) {
	if m.operator == nil || m.operator.Username != op.Username {
		return
	}
	m.operator = &op
	if m.ready {
		m.viewport.SetContent(m.render())
	}
}

func (m *Model) open() {
	m.active = true
	if m.ready {
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
	}
}

func (m *Model) Close() { m.active = false }

func (m Model) IsActive() bool { return m.active }

// Number returns the number dialled by the call key.
func (m Model) Number() string {
	switch {
	case m.operator != nil:
		return m.operator.MainExtension()
	case m.contact != nil:
		return m.contact.PrimaryNumber()
	}
	return ""
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerH)
			m.ready = true
			m.viewport.SetContent(m.render())
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerH
		}
		return m, nil

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case key.Matches(msg, ui.Keys.Back):
			m.active = false
			return m, func() tea.Msg { return ClosedMsg{} }
		case key.Matches(msg, ui.Keys.Call):
			if n := m.Number(); n != "" {
				return m, func() tea.Msg { return ui.DialMsg{Number: n} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.active {
		return ""
	}
	if m.operator == nil && m.contact == nil {
		return "\n  Nothing selected"
	}

	title := "Contact"
	if m.operator != nil {
		title = "Operator"
	}
	hints := ui.StyleMuted.Render("  c:call  j/k:scroll  esc:close")
	headerLine := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(" "+title) + hints

	body := m.render()
	if m.ready {
		body = m.viewport.View()
	}
	return headerLine + "\n" + body
}

func (m Model) render() string {
	switch {
	case m.operator != nil:
		return m.renderOperator(*m.operator)
	case m.contact != nil:
		return m.renderContact(*m.contact)
	}
	return ""
}

func (m Model) renderOperator(op model.Operator) string {
	var b strings.Builder
	b.WriteString("\n  " + ui.StyleBold.Render(op.Name) + "\n\n")
	row(&b, "Username", op.Username)
	row(&b, "Extension", op.MainExtension())
	presence := op.PresenceStatus()
	row(&b, "Presence", ui.PresenceIcon(presence)+" "+presence)
	for _, e := range op.Endpoints.Cellphone {
		row(&b, "Mobile", phone.Display(e.ID, m.region))
	}
	for _, e := range op.Endpoints.Email {
		row(&b, "Email", e.ID)
	}
	return b.String()
}

func (m Model) renderContact(c model.Contact) string {
	var b strings.Builder
	b.WriteString("\n  " + ui.StyleBold.Render(c.DisplayName()) + "\n\n")
	if c.Kind() == model.ContactPerson && c.Company != "" {
		row(&b, "Company", c.Company)
	}
	numbers := []struct{ label, value string }{
		{"Extension", c.Extension},
		{"Work", c.WorkPhone},
		{"Mobile", c.CellPhone},
		{"Home", c.HomePhone},
	}
	for _, n := range numbers {
		if n.value != "" {
			row(&b, n.label, phone.Display(n.value, m.region))
		}
	}
	if e := c.Email(); e != "" {
		row(&b, "Email", e)
	}
	if c.Notes != "" {
		b.WriteString("\n  " + ui.StyleMuted.Render(c.Notes) + "\n")
	}
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-10s %s\n", label+":", value)
}

package contactform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/ui"
)

var validate = validator.New()

// SubmitMsg carries the contact to create.
type SubmitMsg struct {
	Contact model.NewContact
}

// CancelMsg is emitted when the form is dismissed.
type CancelMsg struct{}

const (
	fieldName = iota
	fieldCompany
	fieldWorkPhone
	fieldCellPhone
	fieldEmail
	fieldCount
)

var labels = [fieldCount]string{"Name:", "Company:", "Phone:", "Mobile:", "Email:"}

// Model is the create-contact form.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focused int
	errMsg  string
	active  bool
	width   int
	height  int
}

// New opens the form with the work phone pre-filled.
func New(number string) Model {
	var m Model
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 32
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Placeholder = "Full name"
	m.inputs[fieldCompany].Placeholder = "Company"
	m.inputs[fieldEmail].Placeholder = "name@example.com"
	m.inputs[fieldWorkPhone].SetValue(number)
	m.inputs[fieldName].Focus()
	m.active = true
	return m
}

func (m Model) IsActive() bool { return m.active }

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.active = false
		return m, func() tea.Msg { return CancelMsg{} }
	case "tab", "down":
		m.focus(m.focused + 1)
		return m, nil
	case "shift+tab", "up":
		m.focus(m.focused - 1)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focused == fieldCount-1 {
			return m.submit()
		}
		m.focus(m.focused + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m *Model) focus(i int) {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

// Contact returns the form values.
func (m Model) Contact() model.NewContact {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	c := model.NewContact{
		Type:      "private",
		Name:      v(fieldName),
		Company:   v(fieldCompany),
		WorkPhone: v(fieldWorkPhone),
		CellPhone: v(fieldCellPhone),
		WorkEmail: v(fieldEmail),
	}
	return c
}

func (m Model) submit() (Model, tea.Cmd) {
	c := m.Contact()
	if c.Name == "" && c.Company == "" {
		m.errMsg = "Name or company is required"
		return m, nil
	}
	if c.WorkPhone == "" && c.CellPhone == "" && c.WorkEmail == "" {
		m.errMsg = "Enter at least a phone number or an email"
		return m, nil
	}
	if err := validate.Var(c.WorkEmail, "omitempty,email"); err != nil {
		m.errMsg = "Email address is not valid"
		return m, nil
	}
	m.active = false
	return m, func() tea.Msg { return SubmitMsg{Contact: c} }
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	label := lipgloss.NewStyle().Width(10).Foreground(ui.ColorMuted)
	focusedLabel := lipgloss.NewStyle().Width(10).Bold(true).Foreground(ui.ColorPrimary)

	rows := make([]string, 0, fieldCount)
	for i := range m.inputs {
		ls := label
		cursor := "  "
		if i == m.focused {
			ls = focusedLabel
			cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, ls.Render(labels[i]), m.inputs[i].View()))
	}

	parts := []string{
		lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).MarginBottom(1).Render("New Contact"),
		strings.Join(rows, "\n"),
	}
	if m.errMsg != "" {
		parts = append(parts, "\n"+ui.StyleFailure.Render(m.errMsg))
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(ui.ColorMuted).MarginTop(1).
		Render("tab: next  ctrl+s: save  esc: cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(56).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

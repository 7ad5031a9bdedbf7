package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/ui"
)

type ResultMsg struct {
	Confirmed bool
	Action    string
	Data      any
}

type Model struct {
	Title        string
	Message      string
	Action       string
	Data         any
	ConfirmLabel string
	active       bool
	selected     bool // true = confirm selected
	width        int
	height       int
}

func New(title, message, action string, data any) Model {
	return Model{
		Title:        title,
		Message:      message,
		Action:       action,
		Data:         data,
		ConfirmLabel: "Yes",
		active:       true,
	}
}

func (m Model) IsActive() bool { return m.active }

// SetSize lets the dialog centre itself in the content area.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return m.finish(true)
		case "n", "N", "esc":
			return m.finish(false)
		case "enter":
			return m.finish(m.selected)
		case "tab", "left", "right", "h", "l":
			m.selected = !m.selected
		}
	}
	return m, nil
}

func (m Model) finish(confirmed bool) (Model, tea.Cmd) {
	m.active = false
	res := ResultMsg{Confirmed: confirmed, Action: m.Action, Data: m.Data}
	return m, func() tea.Msg { return res }
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(50)

	title := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorWarning).
		Render(m.Title)

	yesStyle := lipgloss.NewStyle().Padding(0, 1)
	noStyle := lipgloss.NewStyle().Padding(0, 1)

	if m.selected {
		yesStyle = yesStyle.Bold(true).Background(ui.ColorSuccess).Foreground(lipgloss.Color("#F9FAFB"))
		noStyle = noStyle.Foreground(ui.ColorMuted)
	} else {
		yesStyle = yesStyle.Foreground(ui.ColorMuted)
		noStyle = noStyle.Bold(true).Background(ui.ColorFailure).Foreground(lipgloss.Color("#F9FAFB"))
	}

	label := m.ConfirmLabel
	if label == "" {
		label = "Yes"
	}
	content := fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\ny/n to confirm, esc to cancel",
		title, m.Message,
		yesStyle.Render(label), noStyle.Render("Cancel"))

	box := style.Render(content)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

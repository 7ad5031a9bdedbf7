package callsview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/phone"
	"github.com/altinukshini/cti-tui/internal/ui"
)

// ErrorMessage is shown when the recall list cannot be loaded.
const ErrorMessage = "Cannot retrieve calls"

// OutcomeOptions are the recall outcome filters, in cycle order.
var OutcomeOptions = []string{"lost", "done", "all"}

// OutcomeChangedMsg asks the app to reload with a new outcome filter.
type OutcomeChangedMsg struct {
	Outcome string
}

// --- Delegate ---

type callDelegate struct {
	region string
}

func (d callDelegate) Height() int                              { return 1 }
func (d callDelegate) Spacing() int                             { return 0 }
func (d callDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d callDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(callItem)
	if !ok {
		return
	}
	c := ci.call

	when := ui.StyleMuted.Render(c.When().Format("02/01 15:04"))
	queue := ui.StyleInfo.Render(c.QueueName)
	line := fmt.Sprintf(" %s %s  %s  %s  %s", ui.CallIcon(c), when, callerLabel(c, d.region), queue, ui.StyleMuted.Render(c.Event))

	if index == m.Index() {
		line = lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width()).Render(line)
	}
	fmt.Fprint(w, line)
}

func callerLabel(c model.QueueCall, region string) string {
	var parts []string
	if c.Name != "" && c.Name != "-" {
		parts = append(parts, c.Name)
	}
	if c.Company != "" && c.Company != "-" {
		parts = append(parts, ui.StyleMuted.Render(c.Company))
	}
	parts = append(parts, phone.Display(c.CID, region))
	return strings.Join(parts, " ")
}

// --- Item ---

type callItem struct {
	call model.QueueCall
}

func (c callItem) FilterValue() string {
	return c.call.Name + " " + c.call.Company + " " + c.call.CID + " " + c.call.QueueName
}

// --- Model ---

type Model struct {
	list       list.Model
	calls      []model.QueueCall
	page       int
	totalPages int
	count      int
	pageSize   int
	outcome    string
	width      int
	height     int
	loading    bool
	err        error
}

func New(region, outcome string, pageSize int) Model {
	l := list.New(nil, callDelegate{region: region}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	// l/h/left/right page through the backend, not the list.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev page"))
	l.DisableQuitKeybindings()

	if outcome == "" {
		outcome = OutcomeOptions[0]
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return Model{
		list:     l,
		page:     1,
		pageSize: pageSize,
		outcome:  outcome,
		loading:  true,
	}
}

func (m Model) Page() int { return m.page }

func (m Model) Outcome() string { return m.outcome }

func (m Model) SelectedCall() *model.QueueCall {
	if item, ok := m.list.SelectedItem().(callItem); ok {
		return &item.call
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.QueueCallsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		page := msg.Page
		if page == nil {
			page = &model.QueueCallsPage{}
		}
		if msg.PageNum > 0 {
			m.page = msg.PageNum
		}
		m.calls = page.Rows
		m.count = page.Count
		m.totalPages = page.TotalPages
		items := make([]list.Item, len(page.Rows))
		for i, c := range page.Rows {
			items[i] = callItem{call: c}
		}
		cmd := m.list.SetItems(items)
		if m.list.Index() >= len(items) {
			m.list.Select(0)
		}
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "f" && !m.IsFiltering() && len(m.list.Items()) > 0 {
			m.list.KeyMap.Filter.SetEnabled(true)
		}
		if !m.IsFiltering() {
			switch {
			case key.Matches(msg, ui.Keys.NextPage):
				if m.page < m.totalPages {
					next := m.page + 1
					return m, func() tea.Msg { return ui.PageRequestMsg{Page: next} }
				}
				return m, nil
			case key.Matches(msg, ui.Keys.PrevPage):
				if m.page > 1 {
					prev := m.page - 1
					return m, func() tea.Msg { return ui.PageRequestMsg{Page: prev} }
				}
				return m, nil
			case key.Matches(msg, ui.Keys.Outcome):
				m.outcome = nextOption(OutcomeOptions, m.outcome)
				m.page = 1
				outcome := m.outcome
				return m, func() tea.Msg { return OutcomeChangedMsg{Outcome: outcome} }
			case key.Matches(msg, ui.Keys.Call):
				if c := m.SelectedCall(); c != nil && c.CID != "" {
					number := c.CID
					return m, func() tea.Msg { return ui.DialMsg{Number: number} }
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Showing returns the "Showing a - b of n calls" footer text.
func (m Model) Showing() string {
	if m.count == 0 {
		return "No calls"
	}
	from := (m.page-1)*m.pageSize + 1
	to := from + len(m.calls) - 1
	return fmt.Sprintf("Showing %d - %d of %d calls", from, to, m.count)
}

func (m Model) View() string {
	if m.loading {
		return "\n  Loading calls..."
	}
	if m.err != nil {
		return "\n  Error: " + ErrorMessage
	}

	footer := ui.StyleMuted.Render(fmt.Sprintf("  %s  page %d/%d  outcome: %s",
		m.Showing(), m.page, max(m.totalPages, 1), m.outcome))
	if len(m.calls) == 0 {
		return "\n  No calls\n" + footer
	}
	return m.list.View() + "\n" + footer
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func nextOption(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

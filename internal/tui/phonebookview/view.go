package phonebookview

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
	"github.com/altinukshini/cti-tui/internal/tui/filteroverlay"
	"github.com/altinukshini/cti-tui/internal/ui"
)

const ErrorMessage = "Cannot retrieve phonebook"

// OpenFilterMsg asks the app to show the phonebook filter overlay.
type OpenFilterMsg struct {
	Current filteroverlay.FilterResult
}

// --- Delegate ---

type contactDelegate struct {
	region string
}

func (d contactDelegate) Height() int                              { return 2 }
func (d contactDelegate) Spacing() int                             { return 0 }
func (d contactDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d contactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(contactItem)
	if !ok {
		return
	}
	c := ci.contact

	icon := "◉"
	if c.Kind() == model.ContactCompany {
		icon = "▣"
	}
	line1 := fmt.Sprintf(" %s %s", ui.StyleInfo.Render(icon), ui.StyleBold.Render(c.DisplayName()))
	if c.Kind() == model.ContactPerson && c.Company != "" {
		line1 += "  " + ui.StyleMuted.Render(c.Company)
	}

	var numbers []string
	for _, n := range c.Numbers() {
		numbers = append(numbers, phone.Display(n, d.region))
	}
	if e := c.Email(); e != "" {
		numbers = append(numbers, e)
	}
	line2 := "    " + ui.StyleMuted.Render(strings.Join(numbers, "  "))

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}
	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// --- Item ---

type contactItem struct {
	contact model.Contact
}

func (c contactItem) FilterValue() string {
	return c.contact.Name + " " + c.contact.Company + " " + strings.Join(c.contact.Numbers(), " ")
}

// --- Model ---

type Model struct {
	list       list.Model
	contacts   []model.Contact
	filter     filteroverlay.FilterResult
	page       int
	totalPages int
	count      int
	width      int
	height     int
	loading    bool
	err        error
}

func New(region string, filter filteroverlay.FilterResult) Model {
	l := list.New(nil, contactDelegate{region: region}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev page"))
	l.DisableQuitKeybindings()

	return Model{list: l, filter: filter, page: 1, loading: true}
}

func (m Model) Page() int { return m.page }

func (m Model) Filter() filteroverlay.FilterResult { return m.filter }

// SetFilter replaces the server-side filter and resets to the first page.
func (m *Model) SetFilter(f filteroverlay.FilterResult) {
	m.filter = f
	m.page = 1
	m.loading = true
}

func (m Model) SelectedContact() *model.Contact {
	if item, ok := m.list.SelectedItem().(contactItem); ok {
		return &item.contact
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.PhonebookLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		page := msg.Page
		if page == nil {
			page = &model.PhonebookPage{}
		}
		if msg.PageNum > 0 {
			m.page = msg.PageNum
		}
		m.contacts = page.Rows
		m.count = page.Count
		m.totalPages = page.TotalPages
		items := make([]list.Item, len(page.Rows))
		for i, c := range page.Rows {
			items[i] = contactItem{contact: c}
		}
		cmd := m.list.SetItems(items)
		m.list.Select(0)
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
			case key.Matches(msg, ui.Keys.ServerFilter):
				current := m.filter
				return m, func() tea.Msg { return OpenFilterMsg{Current: current} }
			case key.Matches(msg, ui.Keys.NewContact):
				return m, func() tea.Msg { return ui.CreateContactMsg{} }
			case key.Matches(msg, ui.Keys.Enter):
				if c := m.SelectedContact(); c != nil {
					contact := *c
					return m, func() tea.Msg { return ui.ShowContactMsg{Contact: contact} }
				}
				return m, nil
			case key.Matches(msg, ui.Keys.Call):
				if c := m.SelectedContact(); c != nil && c.PrimaryNumber() != "" {
					number := c.PrimaryNumber()
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

func (m Model) View() string {
	if m.loading {
		return "\n  Loading phonebook..."
	}
	if m.err != nil {
		return "\n  Error: " + ErrorMessage
	}

	info := fmt.Sprintf("  %d contacts  page %d/%d", m.count, m.page, max(m.totalPages, 1))
	if s := m.filter.Summary(); s != "" {
		info += "  filter: " + s
	}
	footer := ui.StyleMuted.Render(info)
	if len(m.contacts) == 0 {
		return "\n  No contacts\n" + footer
	}
	return m.list.View() + "\n" + footer
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

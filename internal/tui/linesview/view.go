package linesview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/ui"
)

const (
	ErrorMessage = "Cannot retrieve lines"

	SortDescription = "description"
	SortNumber      = "calledIdNum"

	// MaxFiltered caps the rows shown while a text filter is applied.
	MaxFiltered = 10
)

// SortChangedMsg reports a new sort column so the app can persist it.
type SortChangedMsg struct {
	SortBy string
}

// --- Delegate ---

type lineDelegate struct{}

func (d lineDelegate) Height() int                              { return 1 }
func (d lineDelegate) Spacing() int                             { return 0 }
func (d lineDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(lineItem)
	if !ok {
		return
	}
	l := li.line

	name := lipgloss.NewStyle().Width(28).Render(truncate(l.Description, 27))
	number := l.CalledIDNum
	if l.Destination != "" {
		number += ui.StyleMuted.Render(" / " + l.Destination)
	}
	number = lipgloss.NewStyle().Width(24).Render(number)
	conf := lipgloss.NewStyle().Width(26).Render(configStyle(l).Render(l.Configuration()))
	line := fmt.Sprintf(" %s %s %s %s", name, number, conf, ui.StyleMuted.Render(l.Rule()))

	if index == m.Index() {
		line = lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width()).Render(line)
	}
	fmt.Fprint(w, line)
}

func configStyle(l model.Line) lipgloss.Style {
	if l.Configuration() == "-" {
		return ui.StyleMuted
	}
	return ui.StyleWarning
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// --- Item ---

type lineItem struct {
	line model.Line
}

func (l lineItem) FilterValue() string { return l.line.Description }

// Filter keeps the lines whose description contains term, ignoring case,
// and returns at most MaxFiltered of them in list order.
func Filter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	var ranks []list.Rank
	for i, t := range targets {
		pos := strings.Index(strings.ToLower(t), term)
		if pos < 0 {
			continue
		}
		matched := make([]int, 0, len(term))
		for j := range len(term) {
			matched = append(matched, pos+j)
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
		if len(ranks) == MaxFiltered {
			break
		}
	}
	return ranks
}

// SortLines orders lines in place by the given column.
func SortLines(lines []model.Line, by string) {
	sort.SliceStable(lines, func(i, j int) bool {
		if by == SortNumber {
			return lines[i].CalledIDNum < lines[j].CalledIDNum
		}
		return strings.ToLower(lines[i].Description) < strings.ToLower(lines[j].Description)
	})
}

// --- Model ---

type Model struct {
	list    list.Model
	lines   []model.Line
	sortBy  string
	width   int
	height  int
	loading bool
	err     error
}

func New(sortBy string) Model {
	l := list.New(nil, lineDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("line", "lines")
	l.SetFilteringEnabled(true)
	l.Filter = Filter
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.DisableQuitKeybindings()

	if sortBy != SortNumber {
		sortBy = SortDescription
	}
	return Model{list: l, sortBy: sortBy, loading: true}
}

func (m Model) SortBy() string { return m.sortBy }

func (m Model) SelectedLine() *model.Line {
	if item, ok := m.list.SelectedItem().(lineItem); ok {
		return &item.line
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.LinesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.lines = append([]model.Line(nil), msg.Lines...)
		return m, m.refresh()

	case tea.KeyMsg:
		if msg.String() == "f" && !m.IsFiltering() && len(m.list.Items()) > 0 {
			m.list.KeyMap.Filter.SetEnabled(true)
		}
		if !m.IsFiltering() && key.Matches(msg, ui.Keys.Sort) {
			if m.sortBy == SortDescription {
				m.sortBy = SortNumber
			} else {
				m.sortBy = SortDescription
			}
			by := m.sortBy
			return m, tea.Batch(m.refresh(), func() tea.Msg { return SortChangedMsg{SortBy: by} })
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

func (m *Model) refresh() tea.Cmd {
	SortLines(m.lines, m.sortBy)
	items := make([]list.Item, len(m.lines))
	for i, l := range m.lines {
		items[i] = lineItem{line: l}
	}
	return m.list.SetItems(items)
}

func (m Model) View() string {
	if m.loading {
		return "\n  Loading lines..."
	}
	if m.err != nil {
		return "\n  Error: " + ErrorMessage
	}
	if len(m.lines) == 0 {
		return "\n  No lines"
	}
	header := ui.StyleMuted.Render(fmt.Sprintf(" %-28s %-24s %-26s %s   sort: %s",
		"Name", "Number", "Configuration", "Rule", m.sortBy))
	return header + "\n" + m.list.View()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

package phonebookview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/tui/filteroverlay"
	"github.com/altinukshini/cti-tui/internal/ui"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, pageNum, totalPages int) Model {
	t.Helper()
	m := New("IT", filteroverlay.FilterResult{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = m.Update(ui.PhonebookLoadedMsg{
		PageNum: pageNum,
		Page: &model.PhonebookPage{
			Count:      totalPages * 10,
			TotalPages: totalPages,
			Rows: []model.Contact{
				{ID: 1, Name: "Anna Bianchi", Company: "ACME", CellPhone: "3331234567"},
				{ID: 2, Company: "Globex", WorkPhone: "0721405516"},
			},
		},
	})
	return m
}

func TestRendersContacts(t *testing.T) {
	m := loaded(t, 1, 2)
	view := m.View()
	for _, want := range []string{"Anna Bianchi", "ACME", "Globex", "page 1/2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEnterShowsContactAndCallDials(t *testing.T) {
	m := loaded(t, 1, 1)
	m, _ = m.Update(runes("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	show, ok := cmd().(ui.ShowContactMsg)
	if !ok || show.Contact.ID != 2 {
		t.Fatalf("expected ShowContactMsg for contact 2, got %#v", cmd())
	}

	_, cmd = m.Update(runes("c"))
	if dial := cmd().(ui.DialMsg); dial.Number != "0721405516" {
		t.Errorf("unexpected number %q", dial.Number)
	}
}

func TestPaging(t *testing.T) {
	m := loaded(t, 1, 2)
	if _, cmd := m.Update(runes("h")); cmd != nil {
		t.Error("prev page should be disabled on page 1")
	}
	_, cmd := m.Update(runes("l"))
	if req := cmd().(ui.PageRequestMsg); req.Page != 2 {
		t.Errorf("expected page 2, got %d", req.Page)
	}
}

func TestOverlayAndNewContactRequests(t *testing.T) {
	m := loaded(t, 1, 1)
	m.SetFilter(filteroverlay.FilterResult{Kind: "company"})
	if m.Page() != 1 || m.View() != "\n  Loading phonebook..." {
		t.Errorf("SetFilter should reset and reload, got page %d view %q", m.Page(), m.View())
	}

	_, cmd := m.Update(runes("S"))
	if open := cmd().(OpenFilterMsg); open.Current.Kind != "company" {
		t.Errorf("overlay should open with current filter, got %+v", open.Current)
	}
	_, cmd = m.Update(runes("a"))
	if _, ok := cmd().(ui.CreateContactMsg); !ok {
		t.Error("expected CreateContactMsg")
	}
}

func TestEmptyAndError(t *testing.T) {
	m := New("IT", filteroverlay.FilterResult{})
	m, _ = m.Update(ui.PhonebookLoadedMsg{Page: &model.PhonebookPage{}})
	if !strings.Contains(m.View(), "No contacts") {
		t.Errorf("expected empty state:\n%s", m.View())
	}
	m, _ = m.Update(ui.PhonebookLoadedMsg{Err: errTest{}})
	if !strings.Contains(m.View(), ErrorMessage) {
		t.Errorf("expected error:\n%s", m.View())
	}
}

func TestFilterKey(t *testing.T) {
	m := loaded(t, 1, 1)
	m, _ = m.Update(runes("f"))
	if m.list.FilterState() != list.Filtering {
		t.Fatalf("expected filtering, got %v", m.list.FilterState())
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }

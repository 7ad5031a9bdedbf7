package filteroverlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestApplyCyclesKindAndSort(t *testing.T) {
	m := New(FilterResult{})
	// down to kind, cycle twice to company; down to sort, cycle once.
	m, cmd := press(m, "down", "enter", "enter", "down", "enter", "a")
	if cmd == nil {
		t.Fatal("expected result command")
	}
	res := cmd().(ResultMsg)
	if !res.Applied {
		t.Fatal("expected applied filter")
	}
	if res.Filter.Kind != "company" || res.Filter.Sort != "company" {
		t.Errorf("unexpected filter %+v", res.Filter)
	}
	if m.IsActive() {
		t.Error("overlay should close after apply")
	}
}

func TestQueryInputKeepsLetters(t *testing.T) {
	m := New(FilterResult{Kind: "person"})
	m, _ = press(m, "enter") // focus query
	m, _ = press(m, "a", "c", "m", "e")
	m, cmd := press(m, "enter")
	res := cmd().(ResultMsg)
	if res.Filter.Query != "acme" {
		t.Errorf("expected query acme, got %q", res.Filter.Query)
	}
	if res.Filter.Kind != "person" {
		t.Errorf("current kind should be kept, got %q", res.Filter.Kind)
	}
	if m.IsActive() {
		t.Error("overlay should close")
	}
}

func TestEscCancels(t *testing.T) {
	m := New(FilterResult{Query: "x"})
	_, cmd := press(m, "esc")
	if res := cmd().(ResultMsg); res.Applied {
		t.Error("esc should cancel")
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		f    FilterResult
		want string
	}{
		{FilterResult{}, ""},
		{FilterResult{Kind: "all", Sort: "name"}, ""},
		{FilterResult{Query: "acme", Kind: "company"}, `"acme" type:company`},
		{FilterResult{Sort: "company"}, "sort:company"},
	}
	for _, tt := range tests {
		if got := tt.f.Summary(); got != tt.want {
			t.Errorf("Summary(%+v) = %q, want %q", tt.f, got, tt.want)
		}
		if (tt.want == "") != tt.f.IsEmpty() {
			t.Errorf("IsEmpty(%+v) mismatch", tt.f)
		}
	}
}

package details

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/ui"
)

var callKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}

func TestOperatorDetails(t *testing.T) {
	m := New("IT")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.SetOperator(model.Operator{
		Username: "mrossi",
		Name:     "Mario Rossi",
		Presence: model.PresenceDND,
		Endpoints: model.Endpoints{
			MainExtension: []model.Endpoint{{ID: "201"}},
		},
	})

	view := m.View()
	for _, want := range []string{"Operator", "Mario Rossi", "mrossi", "201", "dnd"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	_, cmd := m.Update(callKey)
	if cmd == nil {
		t.Fatal("expected dial command")
	}
	if dial, ok := cmd().(ui.DialMsg); !ok || dial.Number != "201" {
		t.Errorf("expected dial 201, got %#v", cmd())
	}
}

func TestContactDetailsAndNoNumber(t *testing.T) {
	m := New("IT")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.SetContact(model.Contact{Company: "ACME Srl", WorkEmail: "info@acme.example"})

	view := m.View()
	if !strings.Contains(view, "ACME Srl") || !strings.Contains(view, "info@acme.example") {
		t.Errorf("unexpected view:\n%s", view)
	}

	if _, cmd := m.Update(callKey); cmd != nil {
		t.Error("contact without numbers should not dial")
	}
}

func TestEscClosesDrawer(t *testing.T) {
	m := New("IT")
	m.SetContact(model.Contact{Name: "Anna"})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsActive() {
		t.Fatal("drawer should be closed")
	}
	if _, ok := cmd().(ClosedMsg); !ok {
		t.Error("expected ClosedMsg")
	}
	if m.View() != "" {
		t.Error("closed drawer renders nothing")
	}
}

func TestUpdateOperatorOnlyTouchesSameUser(t *testing.T) {
	m := New("IT")
	m.SetOperator(model.Operator{Username: "mrossi", Name: "Mario Rossi"})
	m.UpdateOperator(model.Operator{Username: "abianchi", Name: "Anna Bianchi"})
	if strings.Contains(m.View(), "Anna") {
		t.Error("other operator must not replace the shown one")
	}
	m.UpdateOperator(model.Operator{Username: "mrossi", Name: "Mario Rossi", Presence: model.PresenceBusy})
	if !strings.Contains(m.View(), "busy") {
		t.Errorf("presence should refresh:\n%s", m.View())
	}
}

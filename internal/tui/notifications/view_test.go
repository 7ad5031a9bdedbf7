package notifications

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/ui"
)

var now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel() Model {
	m := New("IT", func() time.Time { return now })
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.SetNotifications([]model.Notification{
		{ID: "n1", Type: model.NotificationChat, Name: "Anna", Message: "call me", Timestamp: now.Add(-3 * time.Hour), IsRead: true},
		{ID: "n2", Type: model.NotificationMissedCall, Name: "Mario", Number: "0721405516", Queue: "401", Timestamp: now.Add(-5 * time.Minute)},
	})
	m.Open()
	return m
}

func TestRenderNewestFirst(t *testing.T) {
	m := testModel()
	if m.Selected().ID != "n2" {
		t.Fatalf("newest notification should be first, got %s", m.Selected().ID)
	}
	view := m.View()
	for _, want := range []string{"1 unread", "Mario", "401", "5m ago", "Anna", "call me", "3h ago"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestToggleRead(t *testing.T) {
	m := testModel()
	m, cmd := m.Update(runes(" "))
	msg := cmd().(ReadMsg)
	if !msg.Read || len(msg.IDs) != 1 || msg.IDs[0] != "n2" {
		t.Errorf("unexpected read msg %+v", msg)
	}
	if m.UnreadCount() != 0 {
		t.Errorf("expected 0 unread, got %d", m.UnreadCount())
	}

	_, cmd = m.Update(runes(" "))
	if msg := cmd().(ReadMsg); msg.Read {
		t.Error("second toggle should mark unread")
	}
}

func TestMarkAllRead(t *testing.T) {
	m := testModel()
	m.Add(model.Notification{ID: "n3", Type: model.NotificationChat, Name: "Luca", Timestamp: now})
	m, cmd := m.Update(runes("A"))
	msg := cmd().(ReadMsg)
	if strings.Join(msg.IDs, ",") != "n3,n2" {
		t.Errorf("unexpected ids %v", msg.IDs)
	}
	if m.UnreadCount() != 0 {
		t.Error("all should be read")
	}
	if _, cmd := m.Update(runes("A")); cmd != nil {
		t.Error("nothing left to mark")
	}
}

func TestAddReplacesSameID(t *testing.T) {
	m := testModel()
	m.Add(model.Notification{ID: "n1", Type: model.NotificationChat, Name: "Anna", Message: "updated", Timestamp: now})
	if len(m.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.Items()))
	}
	if m.Items()[0].Message != "updated" {
		t.Errorf("updated notification should move to the top, got %+v", m.Items()[0])
	}
}

func TestCallBackMissedCall(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(runes("c"))
	if dial := cmd().(ui.DialMsg); dial.Number != "0721405516" {
		t.Errorf("unexpected number %q", dial.Number)
	}

	m, _ = m.Update(runes("j"))
	if _, cmd := m.Update(runes("c")); cmd != nil {
		t.Error("chat notifications cannot be called back")
	}
}

func TestEmptyAndClose(t *testing.T) {
	m := New("IT", nil)
	m.Open()
	if !strings.Contains(m.View(), "No notifications") {
		t.Errorf("expected empty state:\n%s", m.View())
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsActive() {
		t.Error("esc should close")
	}
	if _, ok := cmd().(ClosedMsg); !ok {
		t.Error("expected ClosedMsg")
	}
}

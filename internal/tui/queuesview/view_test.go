package queuesview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/cti-tui/internal/api"
	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/ui"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testQueues() map[string]model.Queue {
	return map[string]model.Queue{
		"402": {Queue: "402", Name: "Sales", Members: map[string]model.QueueMember{
			"201": {Member: "201", Name: "Mario Rossi", Queue: "402", LoggedIn: true, Paused: true},
		}},
		"401": {Queue: "401", Name: "Support Team", Members: map[string]model.QueueMember{
			"201": {Member: "201", Name: "Mario Rossi", Queue: "401", LoggedIn: true},
			"202": {Member: "202", Name: "Anna Bianchi", Queue: "401"},
		}},
		"403": {Queue: "403", Name: "Night", Members: map[string]model.QueueMember{
			"201": {Member: "201", Name: "Mario Rossi", Queue: "403"},
		}},
	}
}

func loaded(t *testing.T, expanded ...string) Model {
	t.Helper()
	m := New("201", expanded)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = m.Update(ui.QueuesLoadedMsg{
		Queues: testQueues(),
		Stats: model.QueueStats{
			AnsweredCalls: 12,
			MissedCalls:   3,
			TimeAtPhone:   90 * time.Minute,
		},
	})
	return m
}

func queueIDs(m Model) string {
	var ids []string
	for _, q := range m.Queues() {
		ids = append(ids, q.Queue)
	}
	return strings.Join(ids, ",")
}

func TestLoadedOrderAndStats(t *testing.T) {
	m := loaded(t)
	if got := queueIDs(m); got != "401,402,403" {
		t.Errorf("unexpected order %s", got)
	}
	view := m.View()
	for _, want := range []string{"Answered", "12", "Missed", "01:30:00", "Support Team", "[paused]", "[logged out]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFilterStripsPunctuation(t *testing.T) {
	m := loaded(t)
	m, _ = m.Update(runes("f"))
	if !m.IsFiltering() {
		t.Fatal("expected filtering")
	}
	for _, r := range "support-team" {
		m, _ = m.Update(runes(string(r)))
	}
	if got := queueIDs(m); got != "401" {
		t.Errorf("expected only 401, got %s", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsFiltering() || queueIDs(m) != "401,402,403" {
		t.Errorf("esc should clear the filter, got %s", queueIDs(m))
	}
}

func TestExpandToggle(t *testing.T) {
	m := loaded(t)
	m, cmd := m.Update(runes(" "))
	if cmd == nil {
		t.Fatal("expected expanded change")
	}
	if msg := cmd().(ExpandedChangedMsg); strings.Join(msg.Expanded, ",") != "401" {
		t.Errorf("unexpected expanded %v", msg.Expanded)
	}
	if !strings.Contains(m.View(), "Anna Bianchi") {
		t.Errorf("members should be listed when expanded:\n%s", m.View())
	}

	m, cmd = m.Update(runes("E"))
	if msg := cmd().(ExpandedChangedMsg); strings.Join(msg.Expanded, ",") != "401,402,403" {
		t.Errorf("E should expand all, got %v", msg.Expanded)
	}
	m, cmd = m.Update(runes("E"))
	if msg := cmd().(ExpandedChangedMsg); len(msg.Expanded) != 0 {
		t.Errorf("E again should collapse all, got %v", msg.Expanded)
	}
	if strings.Contains(m.View(), "Anna Bianchi") {
		t.Error("members should be hidden when collapsed")
	}
}

func TestRestoresExpanded(t *testing.T) {
	m := loaded(t, "402")
	if got := strings.Join(m.Expanded(), ","); got != "402" {
		t.Errorf("unexpected expanded %s", got)
	}
}

func TestQueueActions(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		key   string
		want  api.QueueAction
		queue string
		noCmd bool
	}{
		{"logout logged in queue", 0, "i", api.QueueLogout, "401", false},
		{"pause logged in queue", 0, "p", api.QueuePause, "401", false},
		{"unpause paused queue", 1, "p", api.QueueUnpause, "402", false},
		{"login logged out queue", 2, "i", api.QueueLogin, "403", false},
		{"pause ignored when logged out", 2, "p", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t)
			for range tt.moves {
				m, _ = m.Update(runes("j"))
			}
			_, cmd := m.Update(runes(tt.key))
			if tt.noCmd {
				if cmd != nil {
					t.Fatal("expected no command")
				}
				return
			}
			msg := cmd().(ActionMsg)
			if msg.Queue != tt.queue || msg.Action != tt.want {
				t.Errorf("got %+v, want %s on %s", msg, tt.want, tt.queue)
			}
		})
	}
}

func TestBulkKeys(t *testing.T) {
	m := loaded(t)
	_, cmd := m.Update(runes("L"))
	if msg := cmd().(BulkMsg); msg.Action != api.QueueLogout {
		t.Errorf("L should request logout, got %s", msg.Action)
	}
	_, cmd = m.Update(runes("P"))
	if msg := cmd().(BulkMsg); msg.Action != api.QueuePause {
		t.Errorf("P should request pause, got %s", msg.Action)
	}
}

func TestEmptyAndError(t *testing.T) {
	m := New("201", nil)
	m, _ = m.Update(ui.QueuesLoadedMsg{Queues: map[string]model.Queue{}})
	if !strings.Contains(m.View(), "not a member of any queue") {
		t.Errorf("unexpected view:\n%s", m.View())
	}

	m, _ = m.Update(ui.QueuesLoadedMsg{Err: errTest{}})
	if !strings.Contains(m.View(), ErrorMessage) {
		t.Errorf("expected error:\n%s", m.View())
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }

package ops

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/altinukshini/cti-tui/internal/api"
	"github.com/altinukshini/cti-tui/internal/model"
)

type fakeActioner struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeActioner) QueueMemberAction(ctx context.Context, queue, ext string, action api.QueueAction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, queue+"/"+ext+"/"+string(action))
	if f.fail[queue] {
		return errors.New("backend refused")
	}
	return nil
}

func memberQueues() []model.Queue {
	return []model.Queue{
		{Queue: "401", Members: map[string]model.QueueMember{"201": {LoggedIn: true}}},
		{Queue: "402", Members: map[string]model.QueueMember{"201": {LoggedIn: true, Paused: true}}},
		{Queue: "403", Members: map[string]model.QueueMember{"201": {LoggedIn: false}}},
		{Queue: "404", Members: map[string]model.QueueMember{"202": {LoggedIn: true}}},
	}
}

func TestBulkQueueAction(t *testing.T) {
	tests := []struct {
		name      string
		action    api.QueueAction
		completed int
		skipped   int
	}{
		{"logout logged in queues", api.QueueLogout, 2, 2},
		{"pause only unpaused", api.QueuePause, 1, 3},
		{"login logged out", api.QueueLogin, 1, 3},
		{"unpause paused", api.QueueUnpause, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeActioner{}
			var progress []int
			var mu sync.Mutex
			res, err := BulkQueueAction(context.Background(), client, memberQueues(), "201", tt.action, func(done, total int) {
				mu.Lock()
				progress = append(progress, done)
				mu.Unlock()
			})
			if err != nil {
				t.Fatalf("BulkQueueAction() error = %v", err)
			}
			if res.Completed != tt.completed || res.Skipped != tt.skipped {
				t.Errorf("completed/skipped = %d/%d, want %d/%d", res.Completed, res.Skipped, tt.completed, tt.skipped)
			}
			if len(progress) != tt.completed {
				t.Errorf("progress called %d times, want %d", len(progress), tt.completed)
			}
		})
	}
}

func TestBulkQueueActionCollectsFailures(t *testing.T) {
	client := &fakeActioner{fail: map[string]bool{"401": true}}
	res, err := BulkQueueAction(context.Background(), client, memberQueues(), "201", api.QueueLogout, nil)
	if err != nil {
		t.Fatalf("BulkQueueAction() error = %v", err)
	}
	if res.Completed != 1 || res.Failed != 1 || len(res.Errors) != 1 {
		t.Errorf("got %+v", res)
	}
	if got := res.Summary(); got != "logout: 1 done, 2 skipped, 1 failed" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestBulkQueueActionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &fakeActioner{}
	_, err := BulkQueueAction(ctx, client, memberQueues(), "201", api.QueueLogout, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("expected no calls, got %v", client.calls)
	}
}

package ops

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/altinukshini/cti-tui/internal/api"
	"github.com/altinukshini/cti-tui/internal/model"
)

const bulkConcurrency = 3

// QueueActioner is the subset of the API client bulk actions need.
type QueueActioner interface {
	QueueMemberAction(ctx context.Context, queue, ext string, action api.QueueAction) error
}

type BulkResult struct {
	Action    api.QueueAction
	Completed int
	Failed    int
	Skipped   int
	Errors    []error
}

func (r BulkResult) Summary() string {
	s := fmt.Sprintf("%s: %d done", r.Action, r.Completed)
	if r.Skipped > 0 {
		s += fmt.Sprintf(", %d skipped", r.Skipped)
	}
	if r.Failed > 0 {
		s += fmt.Sprintf(", %d failed", r.Failed)
	}
	return s
}

// needsAction reports whether member m is in a state the action changes.
func needsAction(m model.QueueMember, action api.QueueAction) bool {
	switch action {
	case api.QueueLogin:
		return !m.LoggedIn
	case api.QueueLogout:
		return m.LoggedIn
	case api.QueuePause:
		return m.LoggedIn && !m.Paused
	case api.QueueUnpause:
		return m.Paused
	}
	return false
}

// BulkQueueAction applies action for ext on every queue it is a member of
// and whose member state it would change. Failures are collected; the
// run stops early only when ctx is cancelled.
func BulkQueueAction(ctx context.Context, client QueueActioner, queues []model.Queue, ext string, action api.QueueAction, onProgress func(completed, total int)) (*BulkResult, error) {
	result := &BulkResult{Action: action}

	var targets []string
	for _, q := range queues {
		m, ok := q.Member(ext)
		if !ok || !needsAction(m, action) {
			result.Skipped++
			continue
		}
		targets = append(targets, q.Queue)
	}
	sort.Strings(targets)

	var mu sync.Mutex
	done := 0
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)
	for _, queue := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := client.QueueMemberAction(gctx, queue, ext, action)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, err)
			} else {
				result.Completed++
			}
			done++
			if onProgress != nil {
				onProgress(done, len(targets))
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return result, err
}

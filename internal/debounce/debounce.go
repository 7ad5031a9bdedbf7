// Package debounce implements a trailing-edge debounce gate.
package debounce

import (
	"sync"
	"time"

	"github.com/altinukshini/cti-tui/internal/clock"
)

const DefaultDelay = 400 * time.Millisecond

// Debouncer runs only the last function passed to Trigger once the delay
// has elapsed without another Trigger. Earlier functions are dropped.
type Debouncer struct {
	clock clock.Clock
	delay time.Duration

	mu    sync.Mutex
	timer clock.Timer
	seq   uint64
}

func New(c clock.Clock, delay time.Duration) *Debouncer {
	if c == nil {
		c = clock.Real()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{clock: c, delay: delay}
}

func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger schedules fn after the delay and supersedes any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A Trigger or Cancel that raced the real timer wins.
		if seq != d.seq || d.timer == nil {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending call, if any. A call that already started
// keeps running.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

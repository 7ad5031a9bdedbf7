package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Relay forwards messages from background goroutines into the program in
// order. Send never blocks, so it is safe to call from Update, where a
// direct Program.Send would deadlock. Messages sent before Attach are
// queued.
type Relay struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []tea.Msg
	stopped bool
}

func NewRelay() *Relay {
	r := &Relay{}
	r.cond = sync.NewCond(&r.mu)
	return r
}

func (r *Relay) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.queue = append(r.queue, msg)
	r.cond.Signal()
}

// Attach starts delivering queued and future messages to p.
func (r *Relay) Attach(p interface{ Send(tea.Msg) }) {
	go r.pump(p)
}

// Stop drops pending messages and ends delivery.
func (r *Relay) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.queue = nil
	r.mu.Unlock()
	r.cond.Broadcast()
}

// Drain returns and clears the queued messages. Used when no program is
// attached.
func (r *Relay) Drain() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.queue
	r.queue = nil
	return out
}

func (r *Relay) pump(p interface{ Send(tea.Msg) }) {
	for {
		r.mu.Lock()
		for len(r.queue) == 0 && !r.stopped {
			r.cond.Wait()
		}
		if r.stopped {
			r.mu.Unlock()
			return
		}
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		p.Send(msg)
	}
}

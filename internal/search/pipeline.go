package search

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/altinukshini/cti-tui/internal/clock"
	"github.com/altinukshini/cti-tui/internal/debounce"
	"github.com/altinukshini/cti-tui/internal/model"
)

// PhonebookErrorMessage is shown when the remote lookup fails.
const PhonebookErrorMessage = "Cannot retrieve phonebook contacts"

type PhonebookSearcher interface {
	SearchPhonebook(ctx context.Context, page int, query, kind, sort string) ([]model.Contact, error)
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDebouncing
	PhaseFetching
	PhaseLoaded
	// PhaseError is a loaded state whose phonebook lookup failed.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseFetching:
		return "fetching"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

type State struct {
	Phase   Phase
	Query   model.SearchQuery
	Results []model.SearchResult
	// Err is the user-facing message of a failed phonebook lookup.
	Err  string
	Open bool
}

type Config struct {
	Operators func() model.OperatorDirectory
	Phonebook PhonebookSearcher
	OnState   func(State)
	Clock     clock.Clock
	Delay     time.Duration
	Logger    *slog.Logger
}

// Pipeline turns keystrokes into search states. Results always reflect
// the most recently completed cycle, so a slow earlier cycle that
// finishes last wins.
type Pipeline struct {
	operators func() model.OperatorDirectory
	phonebook PhonebookSearcher
	onState   func(State)
	debouncer *debounce.Debouncer
	logger    *slog.Logger

	mu     sync.Mutex
	last   State
	closed bool
}

func New(cfg Config) *Pipeline {
	p := &Pipeline{
		operators: cfg.Operators,
		phonebook: cfg.Phonebook,
		onState:   cfg.OnState,
		debouncer: debounce.New(cfg.Clock, cfg.Delay),
		logger:    cfg.Logger,
	}
	if p.operators == nil {
		p.operators = func() model.OperatorDirectory { return nil }
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p.logger = p.logger.With("component", "search")
	return p
}

// Submit records a keystroke. The search runs once input has been quiet
// for the debounce delay; an empty input clears immediately.
func (p *Pipeline) Submit(raw string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	prev := p.last.Results
	p.mu.Unlock()

	q := Normalize(raw)
	if q.Trimmed == "" {
		p.debouncer.Cancel()
		p.emit(State{Phase: PhaseIdle, Query: q})
		return
	}
	p.emit(State{Phase: PhaseDebouncing, Query: q, Results: prev, Open: true})
	p.debouncer.Trigger(func() {
		p.Run(context.Background(), raw)
	})
}

// Run executes one search cycle and returns its final state.
func (p *Pipeline) Run(ctx context.Context, raw string) State {
	q := Normalize(raw)
	if !q.Searchable() {
		st := State{Phase: PhaseIdle, Query: q}
		p.emit(st)
		return st
	}

	p.mu.Lock()
	prev := p.last.Results
	p.mu.Unlock()
	p.emit(State{Phase: PhaseFetching, Query: q, Results: prev, Open: true})

	operators := MatchOperators(p.operators(), q)

	var contacts []model.Contact
	failed := false
	if p.phonebook != nil {
		var err error
		contacts, err = p.phonebook.SearchPhonebook(ctx, 1, q.Trimmed, "all", "name")
		if err != nil {
			p.logger.Warn("phonebook search failed", "query", q.Trimmed, "error", err)
			contacts = nil
			failed = true
		}
	}

	st := State{
		Phase:   PhaseLoaded,
		Query:   q,
		Results: Merge(q, operators, contacts, failed),
		Open:    true,
	}
	if failed {
		st.Phase = PhaseError
		st.Err = PhonebookErrorMessage
	}
	p.logger.Debug("search completed", "query", q.Trimmed, "results", len(st.Results), "phase", st.Phase.String())
	p.emit(st)
	return st
}

// Select dispatches r and closes the search.
func (p *Pipeline) Select(r model.SearchResult, a Actions) bool {
	ok := Dispatch(r, a)
	p.Dismiss()
	return ok
}

// Dismiss drops any pending search and closes the results.
func (p *Pipeline) Dismiss() {
	p.debouncer.Cancel()
	p.emit(State{Phase: PhaseIdle})
}

// Last returns the most recently emitted state.
func (p *Pipeline) Last() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Pending reports whether a debounced search is waiting to run.
func (p *Pipeline) Pending() bool { return p.debouncer.Pending() }

// Close cancels the pending search. Lookups already running complete and
// still report their state.
func (p *Pipeline) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.debouncer.Cancel()
}

func (p *Pipeline) emit(st State) {
	p.mu.Lock()
	p.last = st
	onState := p.onState
	p.mu.Unlock()
	if onState != nil {
		onState(st)
	}
}

// Package events subscribes to the backend's websocket event stream and
// reconnects with backoff when the connection drops.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/altinukshini/cti-tui/internal/clock"
	"github.com/altinukshini/cti-tui/internal/model"
)

const (
	TypeNotification = "notification"
	TypePresence     = "presence"

	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

type PresenceChange struct {
	Username string `json:"username"`
	Presence string `json:"presence"`
}

// Event is a decoded message. Exactly one payload field is set.
type Event struct {
	Type         string
	Notification *model.Notification
	Presence     *PresenceChange
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Decode parses one websocket frame. Unknown types return an Event with
// only Type set.
func Decode(data []byte, now time.Time) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	ev := Event{Type: env.Type}
	switch env.Type {
	case TypeNotification:
		var n model.Notification
		if err := json.Unmarshal(env.Data, &n); err != nil {
			return Event{}, fmt.Errorf("decode notification: %w", err)
		}
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if n.Timestamp.IsZero() {
			n.Timestamp = now
		}
		ev.Notification = &n
	case TypePresence:
		var p PresenceChange
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return Event{}, fmt.Errorf("decode presence: %w", err)
		}
		ev.Presence = &p
	}
	return ev, nil
}

type Options struct {
	URL      string
	Username string
	Token    string
	Clock    clock.Clock
	Logger   *slog.Logger
	Dialer   *websocket.Dialer

	// OnEvent receives every decoded event.
	OnEvent func(Event)
	// OnStatus is called with true after connecting and false after the
	// connection is lost.
	OnStatus func(connected bool)
}

type Subscriber struct {
	opts   Options
	header http.Header
}

func NewSubscriber(opts Options) *Subscriber {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts.Logger = opts.Logger.With("component", "events")
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	h := http.Header{}
	h.Set("Authorization", opts.Username+":"+opts.Token)
	return &Subscriber{opts: opts, header: h}
}

// Run keeps the subscription alive until ctx is done.
func (s *Subscriber) Run(ctx context.Context) error {
	backoff := minBackoff
	for {
		connected, err := s.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			backoff = minBackoff
		}
		s.opts.Logger.Warn("event stream disconnected", "error", err, "retry_in", backoff)
		if err := s.sleep(ctx, backoff); err != nil {
			return err
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

// session dials once and reads until the connection fails. It reports
// whether the dial succeeded.
func (s *Subscriber) session(ctx context.Context) (bool, error) {
	conn, resp, err := s.opts.Dialer.DialContext(ctx, s.opts.URL, s.header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return false, fmt.Errorf("dial %s: %w", s.opts.URL, err)
	}
	defer conn.Close()
	s.status(true)
	defer s.status(false)

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return true, errors.New("closed by server")
			}
			return true, err
		}
		ev, err := Decode(data, s.opts.Clock.Now())
		if err != nil {
			s.opts.Logger.Debug("skipping malformed event", "error", err)
			continue
		}
		if s.opts.OnEvent != nil {
			s.opts.OnEvent(ev)
		}
	}
}

func (s *Subscriber) status(connected bool) {
	if s.opts.OnStatus != nil {
		s.opts.OnStatus(connected)
	}
}

func (s *Subscriber) sleep(ctx context.Context, d time.Duration) error {
	done := make(chan struct{})
	t := s.opts.Clock.AfterFunc(d, func() { close(done) })
	select {
	case <-ctx.Done():
		t.Stop()
		return ctx.Err()
	case <-done:
		return nil
	}
}

package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// RecordMsg carries a log record to the status bar.
type RecordMsg struct {
	Summary string
	Level   slog.Level
}

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// StatusHandler routes records at or above its level into the bubbletea
// program as RecordMsg. Records are dropped until SetSender is called.
// Handlers derived via WithAttrs/WithGroup share the sender.
type StatusHandler struct {
	level  slog.Level
	sender *atomic.Pointer[Sender]
	attrs  []slog.Attr
	group  string
}

func NewStatusHandler(level slog.Level) *StatusHandler {
	return &StatusHandler{level: level, sender: &atomic.Pointer[Sender]{}}
}

func (h *StatusHandler) SetSender(s Sender) {
	h.sender.Store(&s)
}

func (h *StatusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *StatusHandler) Handle(_ context.Context, r slog.Record) error {
	s := h.sender.Load()
	if s == nil {
		return nil
	}

	var parts []string
	for _, a := range h.attrs {
		parts = append(parts, h.qualify(a.Key)+"="+a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, h.qualify(a.Key)+"="+a.Value.String())
		return true
	})

	summary := r.Message
	if len(parts) > 0 {
		summary = fmt.Sprintf("%s (%s)", summary, strings.Join(parts, ", "))
	}
	(*s).Send(RecordMsg{Summary: summary, Level: r.Level})
	return nil
}

func (h *StatusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	qualified := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		qualified[i] = slog.Attr{Key: h.qualify(a.Key), Value: a.Value}
	}
	return &StatusHandler{
		level:  h.level,
		sender: h.sender,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), qualified...),
		group:  h.group,
	}
}

func (h *StatusHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &StatusHandler{
		level:  h.level,
		sender: h.sender,
		attrs:  h.attrs,
		group:  h.qualify(name),
	}
}

func (h *StatusHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

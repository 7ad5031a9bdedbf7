package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("phonebook search", "query", "ali")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "phonebook search", rec["msg"])
	assert.Equal(t, "ali", rec["query"])
}

func TestNewCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cti.log")
	logger, closer, err := New(Options{File: path})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestStatusHandlerDropsBeforeSender(t *testing.T) {
	h := NewStatusHandler(slog.LevelWarn)
	logger := slog.New(h)
	logger.Error("dropped")

	rec := &recorder{}
	h.SetSender(rec)
	logger.Info("below level")
	logger.With("component", "search").Warn("phonebook failed", "status", 500)

	require.Len(t, rec.msgs, 1)
	msg := rec.msgs[0].(RecordMsg)
	assert.Equal(t, slog.LevelWarn, msg.Level)
	assert.Equal(t, "phonebook failed (component=search, status=500)", msg.Summary)
}

func TestStatusHandlerGroups(t *testing.T) {
	h := NewStatusHandler(slog.LevelWarn)
	rec := &recorder{}
	h.SetSender(rec)

	slog.New(h).WithGroup("api").Error("request failed", "path", "/user/me")

	require.Len(t, rec.msgs, 1)
	assert.Equal(t, "request failed (api.path=/user/me)", rec.msgs[0].(RecordMsg).Summary)
}

func TestTeeFansOut(t *testing.T) {
	var buf bytes.Buffer
	file := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	status := NewStatusHandler(slog.LevelWarn)
	rec := &recorder{}
	status.SetSender(rec)

	logger := slog.New(Tee(file, status))
	logger.Debug("debug only")
	logger.Warn("both")

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Len(t, rec.msgs, 1)
}

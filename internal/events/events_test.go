package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/cti-tui/internal/model"
)

func TestDecodeNotification(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ev, err := Decode([]byte(`{"type":"notification","data":{"type":"missedCall","name":"Ann","number":"555"}}`), now)
	require.NoError(t, err)
	require.NotNil(t, ev.Notification)
	assert.Equal(t, model.NotificationMissedCall, ev.Notification.Type)
	assert.NotEmpty(t, ev.Notification.ID)
	assert.Equal(t, now, ev.Notification.Timestamp)
}

func TestDecodeKeepsID(t *testing.T) {
	ev, err := Decode([]byte(`{"type":"notification","data":{"id":"n1","type":"chat","message":"hi"}}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "n1", ev.Notification.ID)
}

func TestDecodePresenceAndUnknown(t *testing.T) {
	ev, err := Decode([]byte(`{"type":"presence","data":{"username":"bob","presence":"busy"}}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, &PresenceChange{Username: "bob", Presence: "busy"}, ev.Presence)

	ev, err = Decode([]byte(`{"type":"queueUpdate","data":{}}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "queueUpdate", ev.Type)
	assert.Nil(t, ev.Notification)

	_, err = Decode([]byte(`not json`), time.Now())
	assert.Error(t, err)
}

func TestSubscriberDeliversEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	var mu sync.Mutex
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotAuth = r.Header.Get("Authorization")
		mu.Unlock()
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteMessage(websocket.TextMessage, []byte(`garbage`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"presence","data":{"username":"bob","presence":"dnd"}}`))
		// Hold the connection until the client goes away.
		conn.ReadMessage()
	}))
	defer srv.Close()

	var events []Event
	var statuses []bool
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := NewSubscriber(Options{
		URL:      "ws" + strings.TrimPrefix(srv.URL, "http"),
		Username: "alice",
		Token:    "secret",
		OnEvent: func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
		OnStatus: func(c bool) {
			mu.Lock()
			statuses = append(statuses, c)
			mu.Unlock()
		},
	})

	errc := make(chan error, 1)
	go func() { errc <- sub.Run(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "alice:secret", gotAuth)
	assert.Equal(t, "dnd", events[0].Presence.Presence)
	assert.Equal(t, []bool{true, false}, statuses)
}

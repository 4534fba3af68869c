package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFor(t *testing.T) {
	cases := []struct {
		event any
		want  string
	}{
		{events.ToyAdded{ToyID: "1", Slug: "robot"}, "toy_added"},
		{events.ToyUpdated{ToyID: "1"}, "toy_updated"},
		{events.ToyReplaced{ToyID: "1", Created: true}, "toy_replaced"},
		{events.ToyDeleted{ToyID: "1"}, "toy_deleted"},
		{events.CategoryAdded{CategoryID: 4, Slug: "puzzles"}, "category_added"},
	}

	for _, tc := range cases {
		msg, ok := messageFor(tc.event)
		require.True(t, ok)
		assert.Equal(t, tc.want, msg.EventType)
		assert.Equal(t, tc.event, msg.Data)
	}

	_, ok := messageFor("not an event")
	assert.False(t, ok)
}

func TestHandleWebSocketStreamsEvents(t *testing.T) {
	bus := events.NewEventBus[any]()
	h := NewHandler(hclog.NewNullLogger(), bus)

	server := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The handler subscribes after the upgrade completes, so publish until
	// the first event arrives
	received := make(chan []byte, 1)
	go func() {
		_, payload, err := conn.ReadMessage()
		if err == nil {
			received <- payload
		}
	}()

	deadline := time.After(2 * time.Second)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case payload := <-received:
			var msg struct {
				EventType string          `json:"event-type"`
				Data      events.ToyAdded `json:"data"`
			}
			require.NoError(t, json.Unmarshal(payload, &msg))
			assert.Equal(t, "toy_added", msg.EventType)
			assert.Equal(t, "super-robot", msg.Data.Slug)
			return
		case <-ticker.C:
			bus.Publish(events.ToyAdded{ToyID: "abc", Slug: "super-robot"})
		case <-deadline:
			t.Fatal("no event received")
		}
	}
}

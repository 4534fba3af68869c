package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/events"
)

type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
}

type Message struct {
	EventType string `json:"event-type"`
	Data      any    `json:"data"`
}

func NewHandler(log hclog.Logger, eventBus *events.EventBus[any]) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The stream is read-only and public
				return true
			},
		},
		Log:      log,
		EventBus: eventBus,
	}
}

// messageFor maps a catalog event to its wire message. ok is false for
// events the stream does not carry.
func messageFor(event any) (msg Message, ok bool) {
	switch e := event.(type) {
	case events.ToyAdded:
		return Message{EventType: "toy_added", Data: e}, true
	case events.ToyUpdated:
		return Message{EventType: "toy_updated", Data: e}, true
	case events.ToyReplaced:
		return Message{EventType: "toy_replaced", Data: e}, true
	case events.ToyDeleted:
		return Message{EventType: "toy_deleted", Data: e}, true
	case events.CategoryAdded:
		return Message{EventType: "category_added", Data: e}, true
	}
	return Message{}, false
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	// Closed by readPump once the client goes away
	done := make(chan struct{})

	go h.readPump(conn, done)

	for {
		select {
		case event, open := <-subscriber:
			if !open {
				return
			}

			message, ok := messageFor(event)
			if !ok {
				h.Log.Warn("Unknown event type", "event", event)
				continue
			}

			payload, err := json.Marshal(message)
			if err != nil {
				h.Log.Error("Error marshalling message", "error", err)
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.Log.Error("Error writing message to WebSocket", "error", err)
				return
			}
		case <-done:
			h.Log.Info("WebSocket connection closed by the client")
			return
		}
	}
}

func (h *Handler) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.Error("Error reading message", "error", err)
			}
			break
		}
	}
}

package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event types broadcast when a store changes.
const (
	EventFriendAdded      = "friend_added"
	EventRequestCreated   = "request_created"
	EventRequestApproved  = "request_approved"
	EventRequestDenied    = "request_denied"
	EventRequestCancelled = "request_cancelled"
	EventItemReturned     = "item_returned"
	EventListingAdded     = "listing_added"
	EventListingRemoved   = "listing_removed"
	EventUsersChanged     = "users_changed"
)

// Event is a store-change notification pushed to connected clients.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	ItemID    string      `json:"item_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// EventHub manages WebSocket connections and fans store-change events out
// to all of them.
type EventHub struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

// NewEventHub creates a new event hub.
func NewEventHub() *EventHub {
	return &EventHub{
		connections: make(map[string]*websocket.Conn),
	}
}

// Register adds a connection and returns its id.
func (h *EventHub) Register(conn *websocket.Conn) string {
	id := uuid.New().String()

	h.mu.Lock()
	h.connections[id] = conn
	h.mu.Unlock()

	log.Info().Str("conn_id", id).Msg("Event stream connected")
	return id
}

// Unregister removes and closes a connection.
func (h *EventHub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.connections[id]; exists {
		conn.Close()
		delete(h.connections, id)
		log.Info().Str("conn_id", id).Msg("Event stream disconnected")
	}
}

// ConnectionCount returns the number of connected clients.
func (h *EventHub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast sends an event to every connected client. Failed connections
// are dropped.
func (h *EventHub) Broadcast(eventType, itemID string, data interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		ItemID:    itemID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to marshal event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.connections {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Error().Err(err).Str("conn_id", id).Msg("Failed to push event, dropping connection")
			conn.Close()
			delete(h.connections, id)
		}
	}

	log.Debug().Str("type", eventType).Str("item_id", itemID).Msg("Event broadcast")
}

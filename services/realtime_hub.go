package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event kinds pushed to dashboard clients. The UI re-runs its aggregation
// queries when one arrives; the payload carries the record that changed.
const (
	EventFoodLogged     = "food.logged"
	EventGoalUpdated    = "goal.updated"
	EventScheduleLogged = "schedule.logged"
	EventAlertCreated   = "alert.created"
)

type Event struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu sync.Mutex
}

// Write sends one frame. gorilla/websocket allows a single concurrent
// writer per connection, and both the hub and the controller's keepalive
// ping write to the same conn, so every write goes through this lock.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans events out to every open dashboard connection of a user.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Publish(userID uint, ev Event) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}

var _hub *RealtimeHub

// InitRealtime wires the hub for the package-level PublishEvent helper.
func InitRealtime(h *RealtimeHub) { _hub = h }

// PublishEvent is safe to call anywhere, including before InitRealtime.
func PublishEvent(userID uint, kind string, payload any) {
	if _hub == nil {
		return
	}
	_hub.Publish(userID, Event{Kind: kind, Payload: payload})
}

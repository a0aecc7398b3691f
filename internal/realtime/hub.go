package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"autocare-api/internal/domain/user"
	"autocare-api/internal/events"

	"github.com/google/uuid"
)

// Client is one live connection. Send is buffered; the hub drops rather than
// blocks when a client cannot keep up.
type Client struct {
	ID     string
	UserID uuid.UUID
	Role   user.Role
	Send   chan []byte
}

// Hub owns the subscriber table for the notification fan-out. It is
// constructed once at process start and handed to the realtime endpoint by
// reference; there is no package-level connection state.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	close(client.Send)
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast forwards one event to every connection its audience covers:
// the appointment's customer, the affected employee, or any connected
// admin. Connection identity is used for delivery filtering only, never for
// authorizing mutations.
func (h *Hub) Broadcast(ev events.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("marshal event", "event", ev.Name, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !allowed(client, ev.Audience) {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			slog.Warn("drop event for slow client", "client", client.ID, "event", ev.Name)
		}
	}
}

func allowed(client *Client, aud events.Audience) bool {
	if aud.Admins && client.Role == user.RoleAdmin {
		return true
	}
	if aud.CustomerID != nil && client.UserID == *aud.CustomerID {
		return true
	}
	if aud.EmployeeID != nil && client.UserID == *aud.EmployeeID {
		return true
	}
	return false
}

// FanOut pumps the event bus into the hub. Run exits when the subscription
// channel closes (bus shutdown).
type FanOut struct {
	hub *Hub
	sub *events.Subscription
}

func NewFanOut(hub *Hub, bus *events.Bus) *FanOut {
	return &FanOut{hub: hub, sub: bus.SubscribeAll()}
}

func (f *FanOut) Run() {
	for ev := range f.sub.C() {
		f.hub.Broadcast(ev)
	}
}

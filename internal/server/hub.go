package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Event is the wire format on the push channel: an event name plus payload,
// mirroring what the web client expects (initial_data, jobs_updated).
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan Event
}

// Hub fans events out to all connected websocket clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	logger  zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		logger:  logger,
	}
}

// Broadcast queues an event for every connected client. Slow clients that
// cannot keep up are dropped rather than blocking the broadcast.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- ev:
		default:
			h.logger.Warn().Str("client", c.id).Msg("dropping slow websocket client")
			go h.remove(c.id)
		}
	}
}

// Send queues an event for a single client. A no-op when the client is
// already gone. All sends on a client channel go through the hub lock:
// remove closes the channel under the same lock, so a send can never hit a
// closed channel.
func (h *Hub) Send(id string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[id]
	if !ok {
		return
	}
	select {
	case c.send <- ev:
	default:
		h.logger.Warn().Str("client", id).Msg("dropping slow websocket client")
		go h.remove(id)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	h.logger.Info().Str("client", c.id).Msg("websocket client connected")
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		//closed under the lock so Broadcast can never send on a closed channel
		close(c.send)
	}
	h.mu.Unlock()
	if ok {
		c.conn.Close()
		h.logger.Info().Str("client", id).Msg("websocket client disconnected")
	}
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan Event, 8),
	}
}

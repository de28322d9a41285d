package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// client wraps a websocket connection with a per-connection write lock;
// gorilla connections allow only one concurrent writer.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Hub tracks connected observers and fans out JSON payloads to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*client
	logger  zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*client),
		logger:  log.With().Str("component", "ws_hub").Logger(),
	}
}

// Register adds a connection and returns its client ID.
func (h *Hub) Register(conn *websocket.Conn) uuid.UUID {
	id := uuid.New()

	h.mu.Lock()
	h.clients[id] = &client{conn: conn}
	h.mu.Unlock()

	h.logger.Debug().Str("client_id", id.String()).Msg("Client registered")
	return id
}

// Unregister drops a connection.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()

	h.logger.Debug().Str("client_id", id.String()).Msg("Client unregistered")
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends one JSON payload to every connected client. Write
// failures are logged and otherwise ignored; the read loop notices the
// dead connection and unregisters it.
func (h *Hub) Broadcast(v interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.clients {
		c.writeMu.Lock()
		err := c.conn.WriteJSON(v)
		c.writeMu.Unlock()
		if err != nil {
			h.logger.Debug().
				Str("client_id", id.String()).
				Err(err).
				Msg("Broadcast write failed")
		}
	}
}

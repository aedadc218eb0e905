package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Hub holds one websocket per browser client and pushes feed snapshots to it.
type Hub struct {
	connections map[string]*hubConn
	mutex       sync.RWMutex
}

// hubConn serialises writes; gorilla allows a single concurrent writer.
type hubConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*hubConn),
	}
}

// Register replaces (and closes) any earlier connection of the client.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[clientID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.connections[clientID] = &hubConn{conn: conn}
}

// Unregister drops conn if it is still the client's current connection.
func (h *Hub) Unregister(clientID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if current, exists := h.connections[clientID]; exists && current.conn == conn {
		_ = current.conn.Close()
		delete(h.connections, clientID)
	}
}

// CloseClient closes whatever connection the client has open.
func (h *Hub) CloseClient(clientID string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	hc, exists := h.connections[clientID]
	if !exists {
		return false
	}
	_ = hc.conn.Close()
	delete(h.connections, clientID)
	return true
}

func (h *Hub) SendToClient(clientID string, message interface{}) bool {
	h.mutex.RLock()
	hc, exists := h.connections[clientID]
	h.mutex.RUnlock()

	if !exists || hc == nil {
		return false
	}

	hc.mu.Lock()
	_ = hc.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := hc.conn.WriteJSON(message)
	hc.mu.Unlock()

	if err != nil {
		h.Unregister(clientID, hc.conn)
		return false
	}
	return true
}

// Ping writes a ping control frame to the client's connection.
func (h *Hub) Ping(clientID string) error {
	h.mutex.RLock()
	hc, exists := h.connections[clientID]
	h.mutex.RUnlock()

	if !exists || hc == nil {
		return websocket.ErrCloseSent
	}

	hc.mu.Lock()
	defer hc.mu.Unlock()
	return hc.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (h *Hub) IsOnline(clientID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[clientID]
	return exists
}

func (h *Hub) Count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) CloseAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, hc := range h.connections {
		_ = hc.conn.Close()
		delete(h.connections, id)
	}
}

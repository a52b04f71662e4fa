package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans activity events out to every open tab a user has connected.
type Hub struct {
	mu    sync.RWMutex
	users map[uint]map[*websocket.Conn]bool
	log   *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		users: make(map[uint]map[*websocket.Conn]bool),
		log:   log,
	}
}

func (h *Hub) AddConnection(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.users[userID] == nil {
		h.users[userID] = make(map[*websocket.Conn]bool)
	}
	h.users[userID][conn] = true
	h.log.Debug("ws: client connected", "user_id", userID, "total", len(h.users[userID]))
}

func (h *Hub) RemoveConnection(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.users[userID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.users, userID)
		}
		h.log.Debug("ws: client disconnected", "user_id", userID)
	}
}

func (h *Hub) Broadcast(userID uint, message Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.users[userID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error("ws: marshal error", "error", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("ws: write error", "error", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

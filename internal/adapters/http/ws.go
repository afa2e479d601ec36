package httpserver

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/topiclens/topiclens/internal/utils"
)

var wsUpgrader = websocket.Upgrader{
	// TODO: tighten CORS/origin as needed. For now allow all to simplify local usage.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// refreshEvent is pushed to every connected client after a successful mutation.
type refreshEvent struct {
	Event string `json:"event"`
}

// Hub broadcasts tree-refresh events to connected WebSocket clients. It
// implements console.Explorer: Refresh is fire-and-forget and clients that
// fail to receive are dropped.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Serve upgrades the request and registers the client until it disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Logger.Error("websocket upgrade failed", "err", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	// Reads are discarded; the read loop only detects disconnects.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				utils.Logger.Info("websocket client disconnected", "err", err)
				return
			}
		}
	}()
}

// Refresh notifies every connected client that the cluster tree changed.
func (h *Hub) Refresh() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(refreshEvent{Event: "refresh"}); err != nil {
			utils.Logger.Info("websocket write failed, dropping client", "err", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	conn.Close()
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

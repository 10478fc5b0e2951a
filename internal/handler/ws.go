package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/za-dev/roomfinder-service/internal/model"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1 << 10,
	WriteBufferSize: 1 << 10,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Hub fans the current booking list out to websocket subscribers after
// every commit.
type Hub struct {
	log *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:   log.Named("ws"),
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (hub *Hub) Broadcast(rooms []model.BookedRoom) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	for conn := range hub.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(rooms); err != nil {
			hub.log.Debug("drop subscriber", zap.Error(err))
			_ = conn.Close()
			delete(hub.conns, conn)
		}
	}
}

func (hub *Hub) add(conn *websocket.Conn) {
	hub.mu.Lock()
	hub.conns[conn] = struct{}{}
	hub.mu.Unlock()
}

func (hub *Hub) remove(conn *websocket.Conn) {
	hub.mu.Lock()
	if _, ok := hub.conns[conn]; ok {
		_ = conn.Close()
		delete(hub.conns, conn)
	}
	hub.mu.Unlock()
}

// Subscribe upgrades the connection, sends the current booking list and
// keeps the subscriber registered until the peer goes away.
func (h *Handler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.hub.add(conn)

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(h.bookingSvc.BookedRooms(c.Request().Context())); err != nil {
		h.hub.remove(conn)
		return nil
	}

	// Reads are discarded; the loop only detects the close.
	go func() {
		defer h.hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}

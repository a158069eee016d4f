package devserver

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/smartbytes/canteen/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dev only; the real backend enforces origins.
	CheckOrigin: func(*http.Request) bool { return true },
}

// event is one broadcast message on /ws/events.
type event struct {
	Message string `json:"message"`
}

// hub fans events out to every connected websocket client.
type hub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan event
}

func newHub() *hub {
	return &hub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan event, 16),
	}
}

func (h *hub) run() {
	conns := make(map[*websocket.Conn]struct{})
	for {
		select {
		case c := <-h.register:
			conns[c] = struct{}{}
		case c := <-h.unregister:
			if _, ok := conns[c]; ok {
				delete(conns, c)
				c.Close()
			}
		case ev := <-h.broadcast:
			for c := range conns {
				if err := c.WriteJSON(ev); err != nil {
					delete(conns, c)
					c.Close()
				}
			}
		}
	}
}

// publish queues an event; a full queue drops it rather than blocking a
// handler.
func (h *hub) publish(message string) {
	select {
	case h.broadcast <- event{Message: message}:
	default:
	}
}

func (h *hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("devserver: websocket upgrade", "error", err)
		return
	}
	h.register <- conn

	// Drain client frames so pings are answered; unregister on close.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

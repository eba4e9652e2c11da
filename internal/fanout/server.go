// Package fanout streams rendered frames to remote matrix clients over
// WebSocket, so the unit can drive displays that are not attached to this
// process. Slow clients drop frames rather than backing up the render loop.
package fanout

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"fly-the-w/internal/animation"
	"fly-the-w/internal/logging"
)

const (
	clientSendBuf = 8
	writeDeadline = 5 * time.Second
	pongWait      = 30 * time.Second
	pingInterval  = 20 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

type matrixClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Server fans rendered frames out to connected WebSocket clients.
type Server struct {
	logger  *slog.Logger
	mu      sync.Mutex
	clients map[*matrixClient]struct{}
}

func NewServer(logger *slog.Logger) *Server {
	return &Server{
		logger:  logger,
		clients: make(map[*matrixClient]struct{}),
	}
}

// PublishFrame serializes the frame once and enqueues it to every client
// (non-blocking; a full client queue drops the frame for that client).
func (s *Server) PublishFrame(frame animation.Frame, now time.Time) {
	data, err := MarshalFrame(frame.Width, frame.Height, frame.Pix, now)
	if err != nil {
		logging.Warn(s.logger, "fanout frame marshal failed", "error", err)
		return
	}
	s.broadcast(data)
}

// PublishIdle tells clients there is nothing to show.
func (s *Server) PublishIdle(now time.Time) {
	data, err := MarshalIdle(now)
	if err != nil {
		return
	}
	s.broadcast(data)
}

// ClientCount reports the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Frame dropped for a slow client; the next one supersedes it anyway.
		}
	}
}

// HandleWS is the HTTP handler for WebSocket upgrade requests.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(s.logger, "fanout upgrade failed", "error", err)
		return
	}

	c := &matrixClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, clientSendBuf),
	}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	logging.Info(s.logger, "matrix client connected", "client_id", c.id)

	go s.writePump(c)
	go s.readPump(c)
}

// writePump drains the client's send channel and writes to the connection.
// It owns the client lifecycle: on exit it removes the client from the map
// and closes the connection.
func (s *Server) writePump(c *matrixClient) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		s.removeClient(c)
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound messages (the protocol is one-way) and keeps
// the pong deadline fresh.
func (s *Server) readPump(c *matrixClient) {
	defer c.conn.Close()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) removeClient(c *matrixClient) {
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
	logging.Info(s.logger, "matrix client disconnected", "client_id", c.id)
}

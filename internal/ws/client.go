package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10 // must be < pongWait
	maxMessageSize = 512
	sendBufferSize = 64
)

// clientConn is one live websocket session. Every outbound frame goes
// through the buffered send channel so that a slow or dead reader never
// blocks event handling for other connections.
type clientConn struct {
	id      string
	rawConn *websocket.Conn
	send    chan []byte

	closeOnce sync.Once
}

func newClientConn(id string, rawConn *websocket.Conn) *clientConn {
	return &clientConn{
		id:      id,
		rawConn: rawConn,
		send:    make(chan []byte, sendBufferSize),
	}
}

// enqueue hands a frame to the write pump without blocking. When the buffer
// is full the frame is dropped; delivery is best-effort.
func (c *clientConn) enqueue(data []byte) {
	select {
	case c.send <- data:
	default:
		zap.L().Debug("ws.send_buffer_full", zap.String("conn", c.id))
	}
}

// writePump drains the send channel onto the wire and keeps the connection
// alive with periodic pings. One pump per connection.
func (c *clientConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.rawConn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.rawConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.rawConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.rawConn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.rawConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.rawConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// close shuts the connection down and releases the write pump. Called only
// after the broadcaster has detached the connection, so nothing can enqueue
// onto the closed send channel.
func (c *clientConn) close() {
	c.closeOnce.Do(func() {
		_ = c.rawConn.Close()
		close(c.send)
	})
}

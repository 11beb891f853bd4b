package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const dispatchTimeout = 1900 * time.Millisecond

// WsServer accepts websocket connections and feeds their event streams into
// the Broadcaster through the typed Router.
type WsServer struct {
	broadcaster *Broadcaster
	router      *Router
	upgrader    websocket.Upgrader
}

func NewWsServer(b *Broadcaster) *WsServer {
	srv := &WsServer{
		broadcaster: b,
		router:      NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true }, // dev-only
		},
	}
	srv.registerHandlers() // ← all WS events configured here
	return srv
}

// ---------------------------------------------------------------------------
//  Public: Gin entry-point
// ---------------------------------------------------------------------------

func (s *WsServer) Handle(ginCtx *gin.Context) {
	rawConn, err := s.upgrader.Upgrade(ginCtx.Writer, ginCtx.Request, nil)
	if err != nil {
		zap.L().Warn("ws.upgrade", zap.Error(err))
		return
	}

	// ─────────────────── Client connected ────────────────────────
	c := newClientConn(uuid.NewString(), rawConn)
	zap.L().Debug("ws.connected", zap.String("conn", c.id))

	s.broadcaster.Connect(c)

	go c.writePump()
	go s.reader(c)
}

// ---------------------------------------------------------------------------
//  Private helpers
// ---------------------------------------------------------------------------

func (s *WsServer) registerHandlers() {
	Register(s.router, evtEnterRoom,
		func(_ context.Context, c *clientConn, req EnterRoomBody) error {
			s.broadcaster.EnterRoom(c, req.Name, req.Room)
			return nil
		},
	)
	Register(s.router, evtMessage,
		func(_ context.Context, c *clientConn, req MessageBody) error {
			s.broadcaster.Message(c, req.Name, req.Text)
			return nil
		},
	)
	// activity carries the typing user's name as a bare JSON string.
	Register(s.router, evtActivity,
		func(_ context.Context, c *clientConn, name string) error {
			s.broadcaster.Activity(c, name)
			return nil
		},
	)
}

func (s *WsServer) reader(c *clientConn) {
	defer func() {
		s.broadcaster.Disconnect(c)
		c.close()
		zap.L().Debug("ws.disconnected", zap.String("conn", c.id))
	}()

	c.rawConn.SetReadLimit(maxMessageSize)
	_ = c.rawConn.SetReadDeadline(time.Now().Add(pongWait))
	c.rawConn.SetPongHandler(func(string) error {
		return c.rawConn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env Envelope
		if err := c.rawConn.ReadJSON(&env); err != nil {
			return // client closed or errored
		}

		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		err := s.router.dispatch(ctx, c, env)
		cancel()

		// Malformed and unknown events are dropped; nothing here ever
		// surfaces an error to the peer.
		if err != nil {
			zap.L().Debug("ws.dispatch", zap.String("event", env.Event), zap.Error(err))
		}
	}
}

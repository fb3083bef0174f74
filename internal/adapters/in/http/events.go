package http

import (
	"net/http"
	"sync"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	eventBufferSize = 32
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
	maxMessageSize  = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// StreamOrderEvents handles GET /api/v1/order/events - streams the order
// events of a session over a websocket. The session comes from the sessionId
// query parameter or, failing that, the X-Session-ID header. A client that
// cannot keep up is disconnected and is expected to reload the order and
// reconnect.
func (s *Server) StreamOrderEvents(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := c.QueryParam(sessionQueryParam)
	if sessionID == "" {
		sessionID = c.Request().Header.Get(SessionHeader)
	}

	orderContext, err := s.contexts.Open(ctx, sessionID)
	if err != nil {
		return err
	}

	events := make(chan order.Event, eventBufferSize)
	overflow := make(chan struct{})
	var once sync.Once
	unsubscribe := orderContext.Subscribe(func(e order.Event) {
		select {
		case events <- e:
		default:
			once.Do(func() { close(overflow) })
		}
	})
	defer unsubscribe()

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already replied
		s.logger.WarnContext(ctx, "Websocket upgrade failed", "session", sessionID, "error", err)
		return nil
	}
	defer conn.Close()

	closed := make(chan struct{})
	go drain(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(newOrderEvent(e)); err != nil {
				s.logger.InfoContext(ctx, "Order event stream closed", "session", sessionID, "error", err)
				return nil
			}
		case <-overflow:
			s.logger.WarnContext(ctx, "Order event subscriber too slow", "session", sessionID)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "event buffer overflow"),
				time.Now().Add(writeWait))
			return nil
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		case <-closed:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// drain reads until the peer goes away. Clients send nothing but control
// frames.
func drain(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

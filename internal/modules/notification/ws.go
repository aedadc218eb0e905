package notification

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"smarthub/internal/feed"
	"smarthub/internal/middleware"
	"smarthub/internal/session"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// SessionSource reads the client's current identity.
type SessionSource interface {
	Current(ctx context.Context, clientID string) (*session.Session, bool)
}

// WSHandler pushes feed snapshots to the browser and accepts feed commands.
type WSHandler struct {
	service  *Service
	hub      *feed.Hub
	sessions SessionSource
	upgrader websocket.Upgrader
}

// NewWSHandler accepts upgrades from allowedOrigins; an empty list allows
// any origin.
func NewWSHandler(service *Service, hub *feed.Hub, sessions SessionSource, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WSHandler{
		service:  service,
		hub:      hub,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
	}
}

func (h *WSHandler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/ws/notifications", middleware.RequireRole(session.RoleUser, session.RoleProvider), h.HandleWebSocket)
}

// HandleWebSocket serves GET /ws/notifications. The client cookie identifies
// the browser, so no token travels in the query string.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	clientID := middleware.ClientID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed client_id=%s error=%q", clientID, err)
		return
	}

	h.hub.Register(clientID, conn)
	log.Printf("ws_connected client_id=%s user_id=%d", clientID, sess.ID)

	defer func() {
		h.hub.Unregister(clientID, conn)
		log.Printf("ws_disconnected client_id=%s user_id=%d", clientID, sess.ID)
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		h.service.Touch(clientID)
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.pingLoop(ctx, clientID)

	// first frame: current state
	h.run(ctx, clientID, sess, ClientMessage{Type: MsgRefresh})

	h.readLoop(ctx, conn, clientID, sess)
}

func (h *WSHandler) pingLoop(ctx context.Context, clientID string) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := h.hub.Ping(clientID); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, clientID string, sess *session.Session) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws_error client_id=%s error=%q", clientID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.sendError(clientID, "INVALID_JSON", "Failed to parse message")
			continue
		}

		// a logout may have happened since the upgrade
		cur, ok := h.sessions.Current(ctx, clientID)
		if !ok || cur.ID != sess.ID || cur.Role != sess.Role {
			log.Printf("ws_session_ended client_id=%s user_id=%d", clientID, sess.ID)
			h.service.Drop(clientID)
			return
		}

		h.service.Touch(clientID)
		h.run(ctx, clientID, cur, msg)
	}
}

// run executes one command. Successful feed changes reach the browser as
// snapshot pushes from the feed itself.
func (h *WSHandler) run(ctx context.Context, clientID string, sess *session.Session, msg ClientMessage) {
	var err error
	switch msg.Type {
	case MsgRefresh:
		var snap feed.Snapshot
		snap, err = h.service.Refresh(ctx, clientID, sess)
		if err != nil {
			// a failed refresh publishes nothing; still show what we have
			h.hub.SendToClient(clientID, feed.Message{Type: feed.MessageSnapshot, Data: snap})
		}
	case MsgRead:
		_, err = h.service.MarkRead(ctx, clientID, sess, msg.NotificationID)
	case MsgReadAll:
		_, err = h.service.MarkAllRead(ctx, clientID, sess)
	case MsgAccept:
		_, err = h.service.Accept(ctx, clientID, sess, msg.BookingID, msg.NotificationID)
	case MsgReject:
		_, err = h.service.Reject(ctx, clientID, sess, msg.BookingID, msg.NotificationID)
	case MsgPing:
		h.hub.SendToClient(clientID, ServerMessage{Type: MsgPong})
	default:
		h.sendError(clientID, "UNKNOWN_TYPE", "Unknown message type: "+msg.Type)
	}

	if err != nil {
		code, message := "FEED_ERROR", "Something went wrong. Please try again."
		switch {
		case errors.Is(err, ErrNoFeed), errors.Is(err, feed.ErrNotProvider):
			code, message = "FORBIDDEN", err.Error()
		case errors.Is(err, feed.ErrNotActionable):
			code, message = "BOOKING_NOT_PENDING", "This booking has already been handled"
		case errors.Is(err, feed.ErrDecisionFailed):
			code, message = "DECISION_FAILED", "Failed to update booking. Please try again."
		}
		h.sendError(clientID, code, message)
	}
}

func (h *WSHandler) sendError(clientID, code, message string) {
	h.hub.SendToClient(clientID, ServerMessage{Type: MsgError, Code: code, Message: message})
}

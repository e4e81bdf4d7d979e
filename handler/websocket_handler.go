package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"match-chat-api/config/logger"
	"match-chat-api/dto/req"
	"match-chat-api/usecase"
	"match-chat-api/ws"
)

// clientFrame is an inbound socket frame; Data is decoded per event.
type clientFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type WebSocketHandler struct {
	*ws.Lifecycle
	usecase.MessageUsecase
	Log          *logger.AppLogger
	PingInterval time.Duration
	PongWait     time.Duration
}

func NewWebSocketHandler(lifecycle *ws.Lifecycle, messageUsecase usecase.MessageUsecase, log *logger.AppLogger, pingInterval, pongWait time.Duration) *WebSocketHandler {
	return &WebSocketHandler{
		Lifecycle:      lifecycle,
		MessageUsecase: messageUsecase,
		Log:            log,
		PingInterval:   pingInterval,
		PongWait:       pongWait,
	}
}

// Upgrade rejects plain HTTP requests on the websocket route.
func (handler *WebSocketHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()
	client := ws.NewClient(c)

	session, err := handler.Lifecycle.Connect(ctx, client, c.Query("token"))
	if err != nil {
		return
	}
	defer session.Close()

	// a missed pong lets the read deadline expire, which ends the read loop
	_ = c.SetReadDeadline(time.Now().Add(handler.PongWait))
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(handler.PongWait))
	})
	go client.KeepAlive(handler.PingInterval)

	for {
		var frame clientFrame
		if err := c.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				handler.Log.WS.Warning.Warn().Err(err).Str("userId", session.UserID).Msg("read error")
			}
			return
		}
		_ = c.SetReadDeadline(time.Now().Add(handler.PongWait))
		handler.dispatch(ctx, session.UserID, frame)
	}
}

func (handler *WebSocketHandler) dispatch(ctx context.Context, userID string, frame clientFrame) {
	switch frame.Event {
	case ws.EventMessage:
		var payload req.RelayMessageRequest
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			handler.Log.WS.Warning.Warn().Err(err).Str("userId", userID).Msg("malformed relay frame")
			return
		}
		if err := handler.MessageUsecase.RelayMessage(ctx, userID, &payload); err != nil {
			handler.Log.WS.Warning.Warn().Err(err).Str("userId", userID).Msg("relay rejected")
		}
	default:
		handler.Log.WS.Trace.Trace().Str("userId", userID).Str("event", frame.Event).Msg("ignored client frame")
	}
}

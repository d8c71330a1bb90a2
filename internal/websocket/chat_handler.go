package websocket

import (
	"context"

	"keelie-chatbot-be/internal/dto"
	"keelie-chatbot-be/internal/pkg/logger"
	"keelie-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ChatHandler serves the widget's websocket transport: one frame in, a pair
// of status frames plus one reply frame out.
type ChatHandler struct {
	service service.IChatService
	delay   DelayStrategy
	logger  logger.ILogger
}

func NewChatHandler(chatService service.IChatService, delay DelayStrategy, wsLogger logger.ILogger) *ChatHandler {
	if delay == nil {
		delay = NoDelay()
	}
	return &ChatHandler{service: chatService, delay: delay, logger: wsLogger}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/chat/v1/ws", h.ServeWs)
}

type inboundFrame struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
}

type statusFrame struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

type sessionFrame struct {
	Type      string `json:"type"`
	SessionId string `json:"session_id"`
}

type replyFrame struct {
	Type string `json:"type"`
	*dto.SendMessageResponse
}

// ServeWs upgrades the connection and runs the read loop. The widget is
// anonymous, there is no auth handshake here.
func (h *ChatHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatHandler", "Starting WebSocket session", nil)
		h.readLoop(conn)
		h.logger.Info("ChatHandler", "WebSocket session ended", nil)
	})(c)
}

func (h *ChatHandler) readLoop(conn *websocket.Conn) {
	ctx := context.Background()
	for {
		var in inboundFrame
		if err := conn.ReadJSON(&in); err != nil {
			return
		}

		if in.SessionId == "" {
			created, err := h.service.CreateSession(ctx)
			if err != nil {
				h.logger.Error("ChatHandler", "Failed to create session", map[string]interface{}{"error": err.Error()})
				continue
			}
			in.SessionId = created.SessionId
			if err := conn.WriteJSON(sessionFrame{Type: "session", SessionId: in.SessionId}); err != nil {
				return
			}
		}

		if service.IsEmptyMessage(in.Message) {
			continue
		}

		if err := conn.WriteJSON(statusFrame{Type: "status", Status: "thinking"}); err != nil {
			return
		}
		h.delay.ThinkingPause()

		res, err := h.service.Respond(ctx, &dto.SendMessageRequest{
			SessionId: in.SessionId,
			Message:   in.Message,
		})
		if err != nil {
			h.logger.Error("ChatHandler", "Failed to handle message", map[string]interface{}{
				"session_id": in.SessionId,
				"error":      err.Error(),
			})
			continue
		}

		if err := conn.WriteJSON(statusFrame{Type: "status", Status: "typing"}); err != nil {
			return
		}
		h.delay.TypingPause(len(res.Reply))

		if err := conn.WriteJSON(replyFrame{Type: "reply", SendMessageResponse: res}); err != nil {
			return
		}
	}
}

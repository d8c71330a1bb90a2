package controller

import (
	"keelie-chatbot-be/internal/dto"
	"keelie-chatbot-be/internal/pkg/serverutils"
	"keelie-chatbot-be/internal/service"
	"keelie-chatbot-be/pkg/dialogue/reply"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	texts   *reply.Texts
}

func NewChatController(chatService service.IChatService, texts *reply.Texts) IChatController {
	return &chatController{service: chatService, texts: texts}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/session", c.CreateSession)
	h.Post("/message", c.SendMessage)
	h.Get("/health", c.Health)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Blank input never reaches the pipeline.
	if service.IsEmptyMessage(req.Message) {
		return ctx.JSON(serverutils.SuccessResponse("Message handled", &dto.SendMessageResponse{
			SessionId: req.SessionId,
			Reply:     c.texts.EmptyMessage(),
		}))
	}

	res, err := c.service.Respond(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message handled", res))
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Health", c.service.Health(ctx.Context())))
}

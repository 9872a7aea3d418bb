package handlers

import (
	"github.com/gofiber/fiber/v2"
	"tao_health_backend/models"
	"tao_health_backend/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// AskMaster handles POST /api/chat.
func (h *ChatHandler) AskMaster(c *fiber.Ctx) error {
	var req models.ChatReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRes{Error: msgInvalidBody, Details: err.Error()})
	}
	content, err := h.chatService.Reply(c.UserContext(), requestID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(models.ChatRes{Content: content})
}

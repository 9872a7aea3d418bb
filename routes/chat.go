package routes

import (
	"github.com/gofiber/fiber/v2"
	"tao_health_backend/handlers"
)

func RegisterChatRoutes(api fiber.Router, chatHandler *handlers.ChatHandler) {
	api.Post("/chat", chatHandler.AskMaster)
}

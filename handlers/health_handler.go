package handlers

import (
	"github.com/gofiber/fiber/v2"
	"tao_health_backend/config"
	"tao_health_backend/services"
)

type HealthHandler struct {
	cfg              *config.Config
	diagnosisService *services.DiagnosisService
	chatService      *services.ChatService
}

func NewHealthHandler(cfg *config.Config, diagnosisService *services.DiagnosisService, chatService *services.ChatService) *HealthHandler {
	return &HealthHandler{cfg: cfg, diagnosisService: diagnosisService, chatService: chatService}
}

// Health reports liveness and whether the upstream credential is set.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "ok",
		"configured":      h.cfg.Configured(),
		"diagnosisModels": h.diagnosisService.Models(),
		"chatModels":      h.chatService.Models(),
	})
}

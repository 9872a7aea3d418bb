package routes

import (
	"github.com/gofiber/fiber/v2"
	"tao_health_backend/handlers"
)

func RegisterHealthRoutes(api fiber.Router, handler *handlers.HealthHandler) {
	api.Get("/health", handler.Health)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"tao_health_backend/handlers"
)

func RegisterDiagnosisRoutes(api fiber.Router, handler *handlers.DiagnosisHandler) {
	api.Post("/analyze", handler.Analyze)
}

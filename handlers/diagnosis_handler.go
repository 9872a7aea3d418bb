package handlers

import (
	"github.com/gofiber/fiber/v2"
	"tao_health_backend/models"
	"tao_health_backend/services"
)

type DiagnosisHandler struct {
	diagnosisService *services.DiagnosisService
}

func NewDiagnosisHandler(diagnosisService *services.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{diagnosisService: diagnosisService}
}

// Analyze handles POST /api/analyze.
func (h *DiagnosisHandler) Analyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRes{Error: msgInvalidBody, Details: err.Error()})
	}
	result, err := h.diagnosisService.Analyze(c.UserContext(), requestID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}

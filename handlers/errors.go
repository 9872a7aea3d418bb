package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"tao_health_backend/models"
	"tao_health_backend/pkg/logging"
	"tao_health_backend/services"
)

const (
	requestIDKey     = "requestid"
	msgInvalidBody   = "Solicitud inválida"
	msgInternalError = "Error interno del servidor"
)

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// writeError answers with {error, details?} and the status of the failure.
func writeError(c *fiber.Ctx, err error) error {
	var pe *services.PipelineError
	if errors.As(err, &pe) {
		log := logging.Logger.With("path", c.Path(), "requestID", requestID(c), "kind", pe.Kind.String())
		if pe.Kind == services.KindBadRequest {
			log.Warn("rejected request", "error", pe.Message)
		} else {
			log.Error("pipeline failed", "error", pe.Error())
		}
		return c.Status(pe.StatusCode()).JSON(models.ErrorRes{Error: pe.Message, Details: pe.Details})
	}
	logging.Logger.Error("unclassified handler error", "path", c.Path(), "requestID", requestID(c), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorRes{Error: msgInternalError, Details: err.Error()})
}

// ErrorHandler renders errors escaping handlers (404, body limit, panics
// turned into errors by the recover middleware) in the same JSON shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgInternalError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		logging.Logger.Error("request failed", "path", c.Path(), "requestID", requestID(c), "error", err)
	}
	return c.Status(code).JSON(models.ErrorRes{Error: msg})
}

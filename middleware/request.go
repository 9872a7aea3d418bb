package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every request with a uuid, stored in Locals("requestid")
// and echoed in X-Request-ID. A client supplied id is kept.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	})
}

// Recover turns handler panics into 500 answers instead of crashing.
func Recover() fiber.Handler {
	return recover.New(recover.Config{EnableStackTrace: true})
}

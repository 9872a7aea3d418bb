package bootstrap

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"tao_health_backend/handlers"
	"tao_health_backend/middleware"
	"tao_health_backend/routes"
)

// NewServer builds the Fiber app with middleware and every /api route.
func NewServer(app *App) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:      "tao-health-backend",
		BodyLimit:    app.Cfg.BodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handlers.ErrorHandler,
	})

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.Logger(app.Cfg.AppEnv))
	server.Use(middleware.CORS(app.Cfg.AllowOrigins))

	api := server.Group("/api")
	routes.RegisterDiagnosisRoutes(api, app.Handlers.DiagnosisHandler)
	routes.RegisterChatRoutes(api, app.Handlers.ChatHandler)
	routes.RegisterHealthRoutes(api, app.Handlers.HealthHandler)
	return server
}

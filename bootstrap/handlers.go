package bootstrap

import (
	"tao_health_backend/config"
	"tao_health_backend/handlers"
)

type Handlers struct {
	DiagnosisHandler *handlers.DiagnosisHandler
	ChatHandler      *handlers.ChatHandler
	HealthHandler    *handlers.HealthHandler
}

func NewHandlers(cfg *config.Config, services *Services) *Handlers {
	return &Handlers{
		DiagnosisHandler: handlers.NewDiagnosisHandler(services.DiagnosisService),
		ChatHandler:      handlers.NewChatHandler(services.ChatService),
		HealthHandler:    handlers.NewHealthHandler(cfg, services.DiagnosisService, services.ChatService),
	}
}

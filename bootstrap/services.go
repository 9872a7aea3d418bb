package bootstrap

import (
	"tao_health_backend/config"
	"tao_health_backend/prompts"
	"tao_health_backend/services"
)

type Services struct {
	DiagnosisService *services.DiagnosisService
	ChatService      *services.ChatService
}

func NewServices(cfg *config.Config, catalog *prompts.Catalog, infra *Infrastructure) *Services {
	return &Services{
		DiagnosisService: services.NewDiagnosisService(infra.LLM, cfg, catalog),
		ChatService:      services.NewChatService(infra.LLM, cfg, catalog),
	}
}

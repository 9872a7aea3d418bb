package bootstrap

import (
	"tao_health_backend/config"
	"tao_health_backend/pkg/logging"
	"tao_health_backend/prompts"
)

type App struct {
	Cfg            *config.Config
	Catalog        *prompts.Catalog
	Infrastructure *Infrastructure
	Services       *Services
	Handlers       *Handlers
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Cfg: cfg}
	catalog, err := prompts.Load()
	if err != nil {
		logging.Logger.Error("fail prompts.Load", "error", err)
		return nil, err
	}
	app.Catalog = catalog

	infra := NewInfrastructure(cfg)
	app.Infrastructure = infra

	// services
	services := NewServices(cfg, catalog, infra)
	app.Services = services

	handlers := NewHandlers(cfg, services)
	app.Handlers = handlers

	if !cfg.Configured() {
		logging.Logger.Warn("OPENROUTER_API_KEY is not set, pipelines will answer 500 until it is configured")
	} else {
		logging.Logger.Info("OpenRouter configured",
			"baseURL", cfg.BaseURL,
			"apiKey", logging.MaskAPIKey(cfg.APIKey),
			"diagnosisModels", services.DiagnosisService.Models(),
			"chatModels", services.ChatService.Models(),
		)
	}
	return app, nil
}

// Shutdown infra
func (a *App) Shutdown() error {
	if a == nil || a.Infrastructure == nil {
		return nil
	}
	return a.Infrastructure.Shutdown()
}

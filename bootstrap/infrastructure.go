package bootstrap

import (
	"tao_health_backend/config"
	"tao_health_backend/platform/openrouter"
)

type Infrastructure struct {
	LLM *openrouter.Client
}

func NewInfrastructure(cfg *config.Config) *Infrastructure {
	return &Infrastructure{
		LLM: openrouter.NewClient(cfg),
	}
}

func (infra *Infrastructure) Shutdown() error {
	infra.LLM.CloseIdleConnections()
	return nil
}

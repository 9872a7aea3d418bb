package services

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"tao_health_backend/config"
	"tao_health_backend/models"
	"tao_health_backend/pkg/logging"
	"tao_health_backend/prompts"
)

const (
	msgMissingChatData = "Faltan datos para el chat"
	msgChatFailed      = "El Maestro Kong no puede conectarse en este momento."
)

type ChatService struct {
	completer Completer
	cfg       *config.Config
	catalog   *prompts.Catalog
}

func NewChatService(completer Completer, cfg *config.Config, catalog *prompts.Catalog) *ChatService {
	return &ChatService{
		completer: completer,
		cfg:       cfg,
		catalog:   catalog,
	}
}

func (s *ChatService) Models() []string {
	if len(s.cfg.ChatModels) > 0 {
		return s.cfg.ChatModels
	}
	return s.catalog.Chat.Models
}

// Reply runs the conversational pipeline and returns the raw model text.
func (s *ChatService) Reply(ctx context.Context, requestID string, req models.ChatReq) (string, error) {
	if req.Message == "" || req.Diagnosis == nil {
		return "", badRequest(msgMissingChatData)
	}
	if !s.cfg.Configured() {
		logging.Logger.Error("OPENROUTER_API_KEY not found", "pipeline", "chat", "requestID", requestID)
		return "", notConfigured()
	}

	messages := s.BuildMessages(req)
	plan := fallbackPlan{
		Pipeline:       "chat",
		RequestID:      requestID,
		Models:         s.Models(),
		Timeout:        s.cfg.ChatTimeout,
		FailureMessage: msgChatFailed,
	}
	return runFallback(ctx, plan, func(ctx context.Context, model string) (string, error) {
		content, err := s.completer.Complete(ctx, s.cfg.APIKey, model, messages)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(content) == "" {
			return "", errEmptyContent
		}
		return content, nil
	})
}

// BuildMessages lays out system prompt, relayed history and the new user turn.
func (s *ChatService) BuildMessages(req models.ChatReq) []openai.ChatCompletionMessage {
	var chatCtx prompts.ChatContext
	if req.Diagnosis != nil {
		chatCtx = prompts.ChatContext{
			OrganoAfectado:    req.Diagnosis.OrganoAfectado,
			ElementoDominante: req.Diagnosis.ElementoDominante,
		}
	}
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: s.catalog.ChatSystemPrompt(chatCtx),
	})
	for _, m := range req.History {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Message,
	})
}

package services

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/sashabaranov/go-openai"
	"tao_health_backend/config"
	"tao_health_backend/models"
	"tao_health_backend/pkg/logging"
	"tao_health_backend/prompts"
)

const (
	msgMissingImages   = "Faltan las imágenes de las manos"
	msgDiagnosisFailed = "No se pudo obtener una respuesta de los modelos de IA"
)

type DiagnosisService struct {
	completer Completer
	cfg       *config.Config
	catalog   *prompts.Catalog
	validate  *validator.Validate
}

func NewDiagnosisService(completer Completer, cfg *config.Config, catalog *prompts.Catalog) *DiagnosisService {
	return &DiagnosisService{
		completer: completer,
		cfg:       cfg,
		catalog:   catalog,
		validate:  newResultValidator(),
	}
}

// Models is the fallback order: the configured override, else the catalog.
func (s *DiagnosisService) Models() []string {
	if len(s.cfg.DiagnosisModels) > 0 {
		return s.cfg.DiagnosisModels
	}
	return s.catalog.Diagnosis.Models
}

// Analyze runs the diagnosis pipeline for both hands.
func (s *DiagnosisService) Analyze(ctx context.Context, requestID string, req models.AnalyzeRequest) (*models.DiagnosisResult, error) {
	if strings.TrimSpace(req.LeftHand) == "" || strings.TrimSpace(req.RightHand) == "" {
		return nil, badRequest(msgMissingImages)
	}
	if !s.cfg.Configured() {
		logging.Logger.Error("OPENROUTER_API_KEY not found", "pipeline", "diagnosis", "requestID", requestID)
		return nil, notConfigured()
	}

	messages := s.buildMessages(req)
	plan := fallbackPlan{
		Pipeline:       "diagnosis",
		RequestID:      requestID,
		Models:         s.Models(),
		Timeout:        s.cfg.DiagnosisTimeout,
		FailureMessage: msgDiagnosisFailed,
	}
	return runFallback(ctx, plan, func(ctx context.Context, model string) (*models.DiagnosisResult, error) {
		content, err := s.completer.Complete(ctx, s.cfg.APIKey, model, messages)
		if err != nil {
			return nil, err
		}
		result, err := s.ParseResult(content)
		if err != nil {
			logging.Logger.Warn("fail ParseResult", "model", model, "requestID", requestID, "error", err)
			return nil, errMalformedContent
		}
		return result, nil
	})
}

func (s *DiagnosisService) buildMessages(req models.AnalyzeRequest) []openai.ChatCompletionMessage {
	user := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if s.cfg.DiagnosisAttachImages {
		user.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: s.catalog.Diagnosis.User},
			imagePart(req.LeftHand),
			imagePart(req.RightHand),
		}
	} else {
		user.Content = s.catalog.Diagnosis.User
	}
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: s.catalog.Diagnosis.System},
		user,
	}
}

func imagePart(image string) openai.ChatMessagePart {
	return openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeImageURL,
		ImageURL: &openai.ChatMessageImageURL{
			URL:    imageURL(image),
			Detail: openai.ImageURLDetailAuto,
		},
	}
}

// ParseResult decodes model output into a DiagnosisResult. Code fences are
// stripped first; every field of the result must be present.
func (s *DiagnosisService) ParseResult(content string) (*models.DiagnosisResult, error) {
	cleaned := StripCodeFence(content)
	if cleaned == "" {
		return nil, errEmptyContent
	}
	var result models.DiagnosisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.validate.Struct(&result); err != nil {
		return nil, fmt.Errorf("incomplete diagnosis: %w", err)
	}
	return &result, nil
}

// StripCodeFence removes an optional ``` or ```json wrapper around content.
func StripCodeFence(content string) string {
	cleaned := strings.TrimSpace(content)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```")
	if len(cleaned) >= 4 && strings.EqualFold(cleaned[:4], "json") {
		cleaned = cleaned[4:]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// newResultValidator reports failing fields by their JSON names.
func newResultValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

package services

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// Completer sends one chat-completion request to a single model.
// Non-success HTTP answers should carry an HTTPStatus() int method.
type Completer interface {
	Complete(ctx context.Context, apiKey, model string, messages []openai.ChatCompletionMessage) (string, error)
}

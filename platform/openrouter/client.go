package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sashabaranov/go-openai"
	"tao_health_backend/config"
	"tao_health_backend/pkg/logging"
)

// StatusError is a non-success HTTP answer from the upstream API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openrouter error: status %d", e.Code)
	}
	return e.Message
}

// HTTPStatus exposes the upstream status to callers that classify failures.
func (e *StatusError) HTTPStatus() int {
	return e.Code
}

// Client is a chat-completion client for an OpenAI-compatible endpoint.
// The credential is passed per call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	headers := http.Header{}
	if cfg.Referer != "" {
		headers.Set("HTTP-Referer", cfg.Referer)
	}
	if cfg.Title != "" {
		headers.Set("X-Title", cfg.Title)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: &HeaderTransport{
				Origin:  http.DefaultTransport,
				Headers: headers,
			},
		},
	}
}

// Complete sends one chat-completion request for model and returns
// choices[0].message.content, or "" when the answer carries no choices.
func (c *Client) Complete(ctx context.Context, apiKey, model string, messages []openai.ChatCompletionMessage) (string, error) {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = c.httpClient
	client := openai.NewClientWithConfig(cfg)

	logging.Logger.Debug("openrouter request", "model", model, "messages", len(messages))
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", translateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// CloseIdleConnections releases pooled upstream connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// translateError maps go-openai's status errors onto *StatusError. Failures
// without a status (transport, timeout) are wrapped and keep no status.
func translateError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.HTTPStatusCode)
		}
		return &StatusError{Code: apiErr.HTTPStatusCode, Message: msg}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &StatusError{Code: reqErr.HTTPStatusCode, Message: errorMessage(reqErr.HTTPStatusCode, reqErr.Body)}
	}
	return fmt.Errorf("request failed: %w", err)
}

// errorMessage reads error.message from bodies go-openai could not decode,
// falling back to the status text.
func errorMessage(code int, body []byte) string {
	var payload struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return http.StatusText(code)
}

// HeaderTransport is an http.RoundTripper that adds Headers to each request.
type HeaderTransport struct {
	Origin  http.RoundTripper
	Headers http.Header
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	for key, values := range t.Headers {
		for _, value := range values {
			cloned.Header.Add(key, value)
		}
	}
	origin := t.Origin
	if origin == nil {
		origin = http.DefaultTransport
	}
	return origin.RoundTrip(cloned)
}

func (t *HeaderTransport) CloseIdleConnections() {
	closeIdle(t.Origin)
}

func closeIdle(rt http.RoundTripper) {
	if c, ok := rt.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}

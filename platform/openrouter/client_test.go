package openrouter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tao_health_backend/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.Config{
		BaseURL: url + "/",
		Referer: "https://example.test",
		Title:   "Tao Test",
	})
}

func TestClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "https://example.test", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Tao Test", r.Header.Get("X-Title"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "hola", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"El río fluye."}}]}`))
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).Complete(context.Background(), "sk-test", "meta-llama/llama-3.1-8b-instruct",
		[]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "sistema"},
			{Role: openai.ChatMessageRoleUser, Content: "hola"},
		})
	require.NoError(t, err)
	assert.Equal(t, "El río fluye.", content)
}

func TestClientCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).Complete(context.Background(), "sk-test", "m", nil)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestClientCompleteStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"json error body", http.StatusTooManyRequests, `{"error":{"message":"Rate limit exceeded","code":429}}`, "Rate limit exceeded"},
		{"plain text body", http.StatusBadGateway, `upstream down`, "Bad Gateway"},
		{"client error", http.StatusUnauthorized, `{"error":{"message":"No auth credentials found","code":401}}`, "No auth credentials found"},
		{"plain text client error", http.StatusPaymentRequired, `insufficient credits`, "Payment Required"},
		{"json without error object", http.StatusServiceUnavailable, `{}`, "Service Unavailable"},
		{"error object without message", http.StatusInternalServerError, `{"error":{"code":500}}`, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Complete(context.Background(), "sk-test", "m", nil)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr), "expected StatusError, got %v", err)
			assert.Equal(t, tt.status, statusErr.HTTPStatus())
			assert.Equal(t, tt.message, statusErr.Error())
		})
	}
}

func TestClientCompleteTimeoutHasNoStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()
	defer server.CloseClientConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server.URL).Complete(ctx, "sk-test", "m", nil)
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHeaderTransportDoesNotMutateRequest(t *testing.T) {
	var seen http.Header
	transport := &HeaderTransport{
		Origin: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r.Header
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		}),
		Headers: http.Header{"X-Title": []string{"Tao"}},
	}
	req, err := http.NewRequest(http.MethodGet, "http://example.test", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tao", seen.Get("X-Title"))
	assert.Empty(t, req.Header.Get("X-Title"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

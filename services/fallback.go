package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"tao_health_backend/pkg/logging"
)

// fallbackPlan describes one pipeline invocation: which models to try, in
// order, how long each attempt may take, and the message shown when the
// whole plan fails.
type fallbackPlan struct {
	Pipeline       string
	RequestID      string
	Models         []string
	Timeout        time.Duration
	FailureMessage string
}

type attemptFunc[T any] func(ctx context.Context, model string) (T, error)

// statusCoder is implemented by upstream errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

// isRetryable reports whether a failed attempt should move on to the next
// model. HTTP 429 and 5xx are retryable, any other status is fatal and
// errors without a status (transport, timeout, bad content) are retryable.
func isRetryable(err error) bool {
	var sc statusCoder
	if !errors.As(err, &sc) {
		return true
	}
	code := sc.HTTPStatus()
	return code == http.StatusTooManyRequests || code >= 500
}

// runFallback tries plan.Models strictly in order and returns the first
// successful result. Only the latest failure is kept.
func runFallback[T any](ctx context.Context, plan fallbackPlan, attempt attemptFunc[T]) (T, error) {
	var zero T
	requestID := plan.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := logging.Logger.With("pipeline", plan.Pipeline, "requestID", requestID)

	var lastErr error
	for i, model := range plan.Models {
		log.Info("trying model", "model", model, "attempt", i+1, "of", len(plan.Models))

		result, err := runAttempt(ctx, plan.Timeout, model, attempt)
		if err == nil {
			log.Info("model answered", "model", model, "attempt", i+1)
			return result, nil
		}

		if !isRetryable(err) {
			log.Error("fatal upstream failure", "model", model, "error", err)
			return zero, &PipelineError{
				Kind:    KindFatal,
				Message: plan.FailureMessage,
				Details: err.Error(),
				Err:     err,
			}
		}
		log.Warn("model failed, falling back", "model", model, "error", err)
		lastErr = err

		if ctx.Err() != nil {
			log.Warn("request cancelled, abandoning remaining models", "error", ctx.Err())
			break
		}
	}

	details := msgUnknownError
	if lastErr != nil {
		details = lastErr.Error()
	}
	log.Error("all models failed", "models", len(plan.Models), "lastError", details)
	return zero, &PipelineError{
		Kind:    KindExhausted,
		Message: plan.FailureMessage,
		Details: details,
		Err:     lastErr,
	}
}

func runAttempt[T any](ctx context.Context, timeout time.Duration, model string, attempt attemptFunc[T]) (T, error) {
	if timeout <= 0 {
		return attempt(ctx, model)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return attempt(attemptCtx, model)
}

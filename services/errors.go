package services

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindBadRequest ErrorKind = iota + 1
	KindNotConfigured
	KindFatal
	KindExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotConfigured:
		return "not_configured"
	case KindFatal:
		return "fatal"
	case KindExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// PipelineError is every failure a pipeline surfaces to its caller.
// Retryable failures never leave the fallback loop on their own.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Details string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// StatusCode maps the kind onto the status the endpoints answer with.
func (e *PipelineError) StatusCode() int {
	if e.Kind == KindBadRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

const (
	msgNotConfigured = "API Key no configurada"
	msgUnknownError  = "Error desconocido"
)

var (
	errMalformedContent = errors.New("La IA no respondió en el formato místico correcto.")
	errEmptyContent     = errors.New("Respuesta vacía del modelo")
)

func badRequest(msg string) *PipelineError {
	return &PipelineError{Kind: KindBadRequest, Message: msg}
}

func notConfigured() *PipelineError {
	return &PipelineError{Kind: KindNotConfigured, Message: msgNotConfigured}
}

// IsKind reports whether err is a PipelineError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PipelineError
	return errors.As(err, &pe) && pe.Kind == kind
}

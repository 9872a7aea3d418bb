package services

import (
	"context"
	"sync"

	"github.com/sashabaranov/go-openai"
	"tao_health_backend/config"
	"tao_health_backend/platform/openrouter"
	"tao_health_backend/prompts"
)

const validDiagnosisJSON = `{
  "mensaje_maestro": "El agua que corre no se pudre.",
  "diagnostico_wang": {
    "observacion_visual": "Tono azulado en el monte de Marte de la mano derecha.",
    "organo_afectado": "Hígado",
    "significado_mtc": "Estancamiento del Qi de Hígado."
  },
  "niveles_radar": {"fuego": 40, "tierra": 55, "metal": 0, "agua": 70, "madera": 85},
  "cuadrantes_integral": {
    "yo": {"titulo": "Mente (Yo)", "detalle": "Tensión contenida."},
    "ello": {"titulo": "Cuerpo (Ello)", "detalle": "Fatiga muscular."},
    "nosotros": {"titulo": "Ancestros (Nosotros)", "detalle": "Linaje de trabajo duro."},
    "ellos": {"titulo": "Entorno (Ellos)", "detalle": "Presión laboral."}
  }
}`

// reply is the scripted outcome of one Complete call.
type reply struct {
	content string
	err     error
	block   bool // wait for the attempt context to end
}

type fakeCompleter struct {
	mu       sync.Mutex
	replies  map[string]reply
	calls    []string
	messages [][]openai.ChatCompletionMessage
	apiKeys  []string
}

func newFakeCompleter(replies map[string]reply) *fakeCompleter {
	return &fakeCompleter{replies: replies}
}

func (f *fakeCompleter) Complete(ctx context.Context, apiKey, model string, messages []openai.ChatCompletionMessage) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, model)
	f.messages = append(f.messages, messages)
	f.apiKeys = append(f.apiKeys, apiKey)
	r := f.replies[model]
	f.mu.Unlock()

	if r.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return r.content, r.err
}

func (f *fakeCompleter) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func statusErr(code int, msg string) error {
	return &openrouter.StatusError{Code: code, Message: msg}
}

func testConfig(models ...string) *config.Config {
	return &config.Config{
		APIKey:                "sk-test-key-123456",
		DiagnosisModels:       models,
		ChatModels:            models,
		DiagnosisAttachImages: true,
	}
}

func testCatalog() *prompts.Catalog {
	return prompts.MustLoad()
}

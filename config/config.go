package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort          = "3000"
	defaultBaseURL       = "https://openrouter.ai/api/v1"
	defaultReferer       = "https://tao-health-scanner.vercel.app"
	defaultTitle         = "Tao Health Scanner"
	defaultBodyLimitMB   = 12
	defaultDiagnosisWait = 30 * time.Second
	defaultChatWait      = 25 * time.Second
	defaultShutdownWait  = 10 * time.Second
)

type Config struct {
	HttpPort     string
	AppEnv       string
	LogLevel     string
	AllowOrigins string
	BodyLimit    int // bytes

	// OpenRouter
	APIKey  string
	BaseURL string
	Referer string
	Title   string

	// pipelines; empty model lists fall back to the prompt catalog
	DiagnosisModels       []string
	ChatModels            []string
	DiagnosisTimeout      time.Duration
	ChatTimeout           time.Duration
	DiagnosisAttachImages bool

	ShutdownTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		HttpPort:              getEnv("PORT", defaultPort),
		AppEnv:                os.Getenv("APP_ENV"),
		LogLevel:              os.Getenv("LOG_LEVEL"),
		AllowOrigins:          getEnv("ALLOWORIGINS", "*"),
		BodyLimit:             getInt("BODY_LIMIT_MB", defaultBodyLimitMB) * 1024 * 1024,
		APIKey:                strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		BaseURL:               getEnv("OPENROUTER_BASE_URL", defaultBaseURL),
		Referer:               getEnv("OPENROUTER_REFERER", defaultReferer),
		Title:                 getEnv("OPENROUTER_TITLE", defaultTitle),
		DiagnosisModels:       getList("DIAGNOSIS_MODELS"),
		ChatModels:            getList("CHAT_MODELS"),
		DiagnosisTimeout:      getDuration("DIAGNOSIS_TIMEOUT", defaultDiagnosisWait),
		ChatTimeout:           getDuration("CHAT_TIMEOUT", defaultChatWait),
		DiagnosisAttachImages: getBool("DIAGNOSIS_ATTACH_IMAGES", true),
		ShutdownTimeout:       getDuration("SHUTDOWN_TIMEOUT", defaultShutdownWait),
	}
}

// Configured reports whether the upstream credential is present.
func (c *Config) Configured() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go durations ("30s") or plain seconds ("30").
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getList(key string) []string {
	var res []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

// Package prompts holds the prompt texts and default model lists of both
// pipelines. The texts are data, loaded from an embedded YAML catalog.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var catalogYAML []byte

type Catalog struct {
	Diagnosis DiagnosisPrompts `yaml:"diagnosis"`
	Chat      ChatPrompts      `yaml:"chat"`
}

type DiagnosisPrompts struct {
	Models []string `yaml:"models"`
	System string   `yaml:"system"`
	User   string   `yaml:"user"`
}

type ChatPrompts struct {
	Models   []string    `yaml:"models"`
	Defaults ChatContext `yaml:"defaults"`
	System   string      `yaml:"system"`
}

// ChatContext is the diagnosis context interpolated into the chat prompt.
type ChatContext struct {
	OrganoAfectado    string `yaml:"organo_afectado"`
	ElementoDominante string `yaml:"elemento_dominante"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document and checks that nothing required is empty.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse prompt catalog: %w", err)
	}
	switch {
	case strings.TrimSpace(c.Diagnosis.System) == "":
		return nil, fmt.Errorf("prompt catalog: diagnosis.system is empty")
	case strings.TrimSpace(c.Diagnosis.User) == "":
		return nil, fmt.Errorf("prompt catalog: diagnosis.user is empty")
	case strings.TrimSpace(c.Chat.System) == "":
		return nil, fmt.Errorf("prompt catalog: chat.system is empty")
	case len(c.Diagnosis.Models) == 0 || len(c.Chat.Models) == 0:
		return nil, fmt.Errorf("prompt catalog: model lists must not be empty")
	}
	return &c, nil
}

// MustLoad is Load that panics on a broken catalog. The catalog is embedded,
// so a failure here is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// ChatSystemPrompt renders the chat system prompt for ctx. Blank fields
// take the catalog defaults. Each placeholder is replaced once.
func (c *Catalog) ChatSystemPrompt(ctx ChatContext) string {
	organo := strings.TrimSpace(ctx.OrganoAfectado)
	if organo == "" {
		organo = c.Chat.Defaults.OrganoAfectado
	}
	elemento := strings.TrimSpace(ctx.ElementoDominante)
	if elemento == "" {
		elemento = c.Chat.Defaults.ElementoDominante
	}
	prompt := strings.Replace(c.Chat.System, "{organo_afectado}", organo, 1)
	return strings.Replace(prompt, "{elemento_dominante}", elemento, 1)
}

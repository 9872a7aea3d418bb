package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatDiagnosis is the slice of a previous diagnosis the chat prompt needs.
type ChatDiagnosis struct {
	OrganoAfectado    string `json:"organo_afectado"`
	ElementoDominante string `json:"elemento_dominante"`
}

type ChatReq struct {
	Message   string         `json:"message"`
	Diagnosis *ChatDiagnosis `json:"diagnosis"`
	History   []ChatMessage  `json:"history,omitempty"`
}

type ChatRes struct {
	Content string `json:"content"`
}

type ErrorRes struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

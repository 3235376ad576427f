package types

import "encoding/json"

// ChatKit session bridge types
type SessionRequest struct {
	User json.RawMessage `json:"user"`
}

type SessionResponse struct {
	ClientSecret json.RawMessage `json:"client_secret"`
}

// ErrorResponse carries either a plain error message or a verbatim
// upstream error payload (json.RawMessage).
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

// Chat proxy types
type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []interface{} `json:"conversation_history,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

type ChatError struct {
	Detail string `json:"detail"`
}

// Health probe types
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}

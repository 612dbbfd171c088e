package models

// ChatMessage represents a single turn in a conversation. Role is
// free-form; clients normally send "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. Everything except
// Message is optional; missing keys decode to zero values.
type ChatRequest struct {
	Message    string        `json:"message"`
	History    []ChatMessage `json:"history"`
	Profile    Profile       `json:"profile"`
	IntentHint string        `json:"intentHint"`
}

// ChatResponse is the reply from the assistant. Error is only set when the
// model call itself failed.
type ChatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"fitness-ai-backend/internal/models"
	"fitness-ai-backend/internal/prompt"
)

// modelClient is the one capability the chat handler needs from the model
// service. Kept narrow so tests can substitute a deterministic fake.
type modelClient interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

const (
	emptyMessageReply = "Please type a message."
	emptyModelReply   = "Sorry, I couldn't generate a response."
	modelFailureReply = "Something went wrong calling the model."
)

type ChatHandler struct {
	model modelClient
}

func NewChatHandler(model modelClient) *ChatHandler {
	return &ChatHandler{model: model}
}

// Chat handles POST /api/chat: guard empty messages, build the prompt,
// make one model call, translate the result into the response contract.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	// Best-effort decode: a malformed body becomes an empty request and is
	// answered by the guard below, never rejected.
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = models.ChatRequest{}
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusOK, models.ChatResponse{Reply: emptyMessageReply})
		return
	}

	preamble := prompt.Preamble(req.Profile)
	p := prompt.Build(req.History, message, preamble, req.IntentHint)

	text, err := h.model.GenerateReply(r.Context(), p)
	if err != nil {
		log.Printf("Model error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ChatResponse{
			Reply: modelFailureReply,
			Error: err.Error(),
		})
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = emptyModelReply
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: text})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

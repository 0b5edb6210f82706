package intelligence

import (
	"encoding/json"
	"strings"

	"schedly/models"
)

// wireIntent is the JSON shape the model is instructed to produce.
type wireIntent struct {
	Message    string                      `json:"message"`
	Action     string                      `json:"action"`
	Parameters models.BookingParams        `json:"parameters"`
	Context    *models.ConversationContext `json:"context"`
}

const fallbackChatMessage = "I'm not sure I caught that. Could you rephrase?"

// DecodeIntent parses raw model output into an Intent. Non-JSON or
// schema-mismatched output degrades to general chat carrying the raw text as
// the message, with the prior context passed through untouched.
func DecodeIntent(raw string, prior models.ConversationContext) *models.Intent {
	cleaned := stripCodeFence(raw)

	var wire wireIntent
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		message := strings.TrimSpace(raw)
		if message == "" {
			message = fallbackChatMessage
		}
		return &models.Intent{
			Message: message,
			Action:  models.ActionGeneralChat,
			Context: prior,
		}
	}

	intent := &models.Intent{
		Message:    wire.Message,
		Action:     models.ParseAction(wire.Action),
		Parameters: wire.Parameters,
		Context:    prior,
	}
	if wire.Context != nil {
		intent.Context = *wire.Context
	}
	if intent.Message == "" {
		intent.Message = fallbackChatMessage
	}
	return intent
}

// stripCodeFence removes a surrounding markdown code fence, which Gemini
// likes to wrap JSON responses in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

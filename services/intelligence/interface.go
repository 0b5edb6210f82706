package intelligence

import (
	"context"

	"schedly/models"
)

// Extractor turns a raw user utterance plus the prior conversation context
// into a structured intent. Output that cannot be parsed into the expected
// schema degrades to a general-chat intent; it never fails the turn.
type Extractor interface {
	Extract(ctx context.Context, userMessage string, conv models.ConversationContext) (*models.Intent, error)
}

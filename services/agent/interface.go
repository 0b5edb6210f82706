package agent

import (
	"context"
	"time"

	"schedly/models"
	"schedly/services/booking"
	"schedly/services/calendar"
	"schedly/services/intelligence"
)

// Service processes one conversation turn. Every code path returns a
// well-formed TurnResult; failures become apologetic messages, never panics
// or errors surfaced to the caller.
type Service interface {
	ProcessMessage(ctx context.Context, userMessage string, conv models.ConversationContext) *models.TurnResult
}

// DefaultAgentService implements Service. It holds no per-conversation state:
// context flows in from the caller and back out on every turn.
type DefaultAgentService struct {
	Extractor intelligence.Extractor
	Backend   calendar.Backend
	Engine    booking.SchedulingEngine
}

var _ Service = (*DefaultAgentService)(nil)

// parseDateTime parses the canonical wire formats: YYYY-MM-DD with an
// optional 24-hour HH:MM. Without a time, the result is midnight of the date.
func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	if timeStr != "" {
		return time.Parse("2006-01-02 15:04", dateStr+" "+timeStr)
	}
	return time.Parse("2006-01-02", dateStr)
}

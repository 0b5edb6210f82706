// File: services/intelligence/local.go
package intelligence

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"schedly/models"
	"schedly/utils"
)

// KeywordExtractor is the deterministic local fallback used when no Gemini
// API key is configured. Intent comes from keyword matching; parameters come
// from the minimal parsers in utils.
type KeywordExtractor struct {
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

var chatResponses = []string{
	"How can I help you today?",
	"I'm here to assist with your calendar. What do you need?",
	"Thanks for your message. How can I help?",
}

var quotedTitlePattern = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

func (k *KeywordExtractor) now() time.Time {
	if k.Now != nil {
		return k.Now()
	}
	return time.Now()
}

// Extract keyword-matches the action and recovers scheduling parameters from
// the utterance. The prior context always passes through unchanged.
func (k *KeywordExtractor) Extract(_ context.Context, userMessage string, conv models.ConversationContext) (*models.Intent, error) {
	lower := strings.ToLower(userMessage)
	now := k.now()

	var action models.Action
	switch {
	case strings.Contains(lower, "book") || strings.Contains(lower, "schedule"):
		action = models.ActionBookAppointment
	case strings.Contains(lower, "suggest") || strings.Contains(lower, "recommend") ||
		strings.Contains(lower, "what times") || strings.Contains(lower, "open slots"):
		action = models.ActionSuggestTimes
	case strings.Contains(lower, "availab") || strings.Contains(lower, "free") ||
		strings.Contains(lower, "busy"):
		action = models.ActionCheckAvailability
	default:
		action = models.ActionGeneralChat
	}

	if action == models.ActionGeneralChat {
		return &models.Intent{
			Message: chatResponses[rand.Intn(len(chatResponses))],
			Action:  models.ActionGeneralChat,
			Context: conv,
		}, nil
	}

	details := utils.ExtractAppointmentDetails(userMessage, now)
	params := models.BookingParams{
		Date:            details.Date,
		Time:            details.Time,
		DurationMinutes: details.DurationMinutes,
	}
	if params.Time == "" {
		if t := utils.NormalizeTimeInput(lower); t != lower {
			params.Time = t
		}
	}
	if m := quotedTitlePattern.FindStringSubmatch(userMessage); m != nil {
		if m[1] != "" {
			params.Title = m[1]
		} else {
			params.Title = m[2]
		}
	}

	return &models.Intent{
		Action:     action,
		Parameters: params,
		Context:    conv,
	}, nil
}

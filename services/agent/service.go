package agent

import (
	"context"

	"go.uber.org/zap"

	"schedly/models"
	"schedly/utils"
)

// ProcessMessage runs one turn: extract an intent, dispatch it, and fold the
// outcome into the context the caller carries forward.
func (s *DefaultAgentService) ProcessMessage(ctx context.Context, userMessage string, conv models.ConversationContext) *models.TurnResult {
	logger := utils.GetLogger()

	intent, err := s.Extractor.Extract(ctx, userMessage, conv)
	if err != nil {
		logger.Warn("intent extraction failed", zap.Error(err))
		return &models.TurnResult{
			Message: "I'm having trouble understanding right now. Please try again.",
			Action:  models.ActionGeneralChat,
			Context: conv,
		}
	}

	// General chat has no side effects: return the extractor's reply as-is.
	if intent.Action == models.ActionGeneralChat {
		return &models.TurnResult{
			Message: intent.Message,
			Action:  models.ActionGeneralChat,
			Context: intent.Context,
		}
	}

	result := s.dispatch(ctx, intent)
	result.Action = intent.Action
	return result
}

// dispatch routes a validated intent to its action handler.
func (s *DefaultAgentService) dispatch(ctx context.Context, intent *models.Intent) *models.TurnResult {
	switch intent.Action {
	case models.ActionCheckAvailability:
		return s.checkAvailability(ctx, intent)
	case models.ActionBookAppointment:
		return s.bookAppointment(ctx, intent)
	case models.ActionSuggestTimes:
		return s.suggestTimes(ctx, intent)
	default:
		return &models.TurnResult{
			Message: intent.Message,
			Context: intent.Context,
		}
	}
}

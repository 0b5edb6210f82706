package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"schedly/models"
	"schedly/utils"
)

// displaySuggestions caps how many suggested slots are shown to the user.
// The engine itself may return up to booking.MaxSuggestions.
const displaySuggestions = 5

// checkAvailability queries the backend for the requested date (and optional
// time) and records the outcome in the context.
func (s *DefaultAgentService) checkAvailability(ctx context.Context, intent *models.Intent) *models.TurnResult {
	params := intent.Parameters
	conv := intent.Context

	if params.Date == "" {
		return &models.TurnResult{
			Message: "I need a specific date to check availability. What date are you thinking about?",
			Context: conv,
		}
	}

	start, err := parseDateTime(params.Date, params.Time)
	if err != nil {
		return &models.TurnResult{
			Message: "I had trouble understanding that date or time. Please use YYYY-MM-DD for dates and HH:MM for times.",
			Context: conv,
		}
	}

	available, err := s.Backend.CheckAvailability(ctx, start, params.DurationOrDefault())
	if err != nil {
		utils.GetLogger().Error("availability check failed", zap.Error(err))
		return &models.TurnResult{
			Message: "I had trouble checking your calendar. Please try again.",
			Context: conv,
		}
	}

	var message string
	if available {
		message = fmt.Sprintf("Great! You're available on %s", params.Date)
		if params.Time != "" {
			message += fmt.Sprintf(" at %s", params.Time)
		}
		message += ". Would you like me to book an appointment?"
	} else {
		message = fmt.Sprintf("You have a conflict on %s", params.Date)
		if params.Time != "" {
			message += fmt.Sprintf(" at %s", params.Time)
		}
		message += ". Would you like me to suggest some alternative times?"
	}

	conv.LastAvailabilityCheck = &models.AvailabilityCheck{
		Date:      params.Date,
		Time:      params.Time,
		Available: available,
	}
	return &models.TurnResult{Message: message, Context: conv}
}

// bookAppointment merges any pending booking stashed on a previous turn with
// this turn's parameters, validates the result, re-checks availability and
// only then creates the event.
func (s *DefaultAgentService) bookAppointment(ctx context.Context, intent *models.Intent) *models.TurnResult {
	conv := intent.Context

	params := intent.Parameters
	if conv.PendingBooking != nil {
		// This turn's fields override the stashed partial booking.
		params = conv.PendingBooking.Merge(intent.Parameters)
	}

	if missing := params.MissingForBooking(); len(missing) > 0 {
		verr := &ValidationError{MissingFields: missing}
		utils.GetLogger().Debug("booking incomplete", zap.Error(verr))

		conv.PendingBooking = &params
		return &models.TurnResult{
			Message: fmt.Sprintf("I need more information to book the appointment. Please provide: %s",
				strings.Join(missing, ", ")),
			Context: conv,
		}
	}

	start, err := parseDateTime(params.Date, params.Time)
	if err != nil {
		return &models.TurnResult{
			Message: "I had trouble understanding that date or time. Please use YYYY-MM-DD for dates and HH:MM for times.",
			Context: intent.Context,
		}
	}
	duration := params.DurationOrDefault()

	// Always re-check right before creating; a check from an earlier turn is
	// stale. Check-then-create is still not atomic across sessions (see
	// DESIGN.md), but within a turn no booking skips this gate.
	available, err := s.Backend.CheckAvailability(ctx, start, duration)
	if err != nil {
		utils.GetLogger().Error("pre-booking availability check failed", zap.Error(err))
		return &models.TurnResult{
			Message: "I had trouble checking your calendar before booking. Please try again.",
			Context: intent.Context,
		}
	}
	if !available {
		cerr := &ConflictError{Date: params.Date, Time: params.Time}
		utils.GetLogger().Debug("booking conflict", zap.Error(cerr))
		return &models.TurnResult{
			Message: fmt.Sprintf("There's a conflict at %s on %s. Would you like me to suggest alternative times?",
				params.Time, params.Date),
			Context: intent.Context,
		}
	}

	eventID, err := s.Backend.CreateEvent(ctx, params.Title, start, duration, params.Description)
	if err != nil {
		utils.GetLogger().Error("event creation failed", zap.Error(err))
		return &models.TurnResult{
			Message: "I encountered an error while booking. Please try again.",
			Context: intent.Context,
		}
	}

	message := fmt.Sprintf("Perfect! I've booked '%s' for %s at %s.", params.Title, params.Date, params.Time)
	if duration != models.DefaultDurationMinutes {
		message += fmt.Sprintf(" Duration: %s.", utils.FormatDuration(duration))
	}
	message += fmt.Sprintf(" Event ID: %s", eventID)

	conv.PendingBooking = nil
	conv.LastBooking = &models.BookingRecord{
		EventID:  eventID,
		Title:    params.Title,
		DateTime: params.Date + " " + params.Time,
	}
	return &models.TurnResult{Message: message, Context: conv}
}

// suggestTimes runs the slot engine for the requested date and formats up to
// five results as a numbered list.
func (s *DefaultAgentService) suggestTimes(ctx context.Context, intent *models.Intent) *models.TurnResult {
	params := intent.Parameters
	conv := intent.Context

	if params.Date == "" {
		return &models.TurnResult{
			Message: "What date would you like me to check for available times?",
			Context: conv,
		}
	}

	date, err := parseDateTime(params.Date, "")
	if err != nil {
		return &models.TurnResult{
			Message: "I had trouble understanding that date. Please use YYYY-MM-DD.",
			Context: conv,
		}
	}

	slots, err := s.Engine.Suggest(ctx, date, params.DurationOrDefault())
	if err != nil {
		utils.GetLogger().Error("slot suggestion failed", zap.Error(err))
		return &models.TurnResult{
			Message: "I had trouble finding available times. Please try again.",
			Context: conv,
		}
	}

	if len(slots) == 0 {
		return &models.TurnResult{
			Message: fmt.Sprintf("I couldn't find any available slots on %s. Would you like to try a different date?", params.Date),
			Context: conv,
		}
	}

	shown := slots
	if len(shown) > displaySuggestions {
		shown = shown[:displaySuggestions]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are some available times on %s:\n", params.Date)
	times := make([]string, 0, len(shown))
	for i, slot := range shown {
		formatted := slot.Start.Format("15:04")
		fmt.Fprintf(&sb, "%d. %s\n", i+1, formatted)
		times = append(times, formatted)
	}
	sb.WriteString("\nWhich time works best for you?")

	conv.SuggestedTimes = times
	return &models.TurnResult{Message: sb.String(), Context: conv}
}

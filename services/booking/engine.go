package booking

import (
	"context"
	"time"

	"schedly/models"
	"schedly/services/calendar"
)

// MaxSuggestions caps how many free slots a scan returns.
const MaxSuggestions = 10

// SchedulingEngine computes conflict-free candidate slots for a date.
type SchedulingEngine interface {
	Suggest(ctx context.Context, date time.Time, durationMinutes int) ([]models.TimeSlot, error)
}

// DefaultSchedulingEngine enumerates a fixed 30-minute grid across the day's
// hour range and keeps the slots the calendar backend reports free. The
// backend owns true conflict detection; the engine only owns enumeration
// policy (grid, bounds, ordering, cap), which keeps it deterministic.
type DefaultSchedulingEngine struct {
	Backend calendar.Backend

	// BusinessHoursOnly restricts the scan to [9,17); otherwise [8,20).
	BusinessHoursOnly bool

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// Suggest returns up to MaxSuggestions free slots on the given date in
// ascending order. A date entirely in the past, or a fully booked day, yields
// an empty result rather than an error.
func (se *DefaultSchedulingEngine) Suggest(ctx context.Context, date time.Time, durationMinutes int) ([]models.TimeSlot, error) {
	startHour, endHour := 8, 20
	if se.BusinessHoursOnly {
		startHour, endHour = 9, 17
	}

	now := se.now()
	var suggestions []models.TimeSlot

	for hour := startHour; hour < endHour; hour++ {
		for _, minute := range []int{0, 30} {
			candidate := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())

			// No past slots.
			if candidate.Before(now) {
				continue
			}

			available, err := se.Backend.CheckAvailability(ctx, candidate, durationMinutes)
			if err != nil {
				return nil, err
			}
			if available {
				suggestions = append(suggestions, models.TimeSlot{
					Start:           candidate,
					DurationMinutes: durationMinutes,
				})
			}

			if len(suggestions) >= MaxSuggestions {
				return suggestions, nil
			}
		}
	}

	return suggestions, nil
}

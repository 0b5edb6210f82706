package calendar

import (
	"context"
	"time"

	"schedly/models"
)

// Backend is the system of record for events. Two implementations exist: the
// live Google Calendar backend and an in-memory fake with an identical
// contract. The choice is made once at startup; everything downstream is
// implementation-agnostic.
type Backend interface {
	// CheckAvailability reports whether [start, start+duration) is free of
	// conflicting events. It never mutates backend state.
	CheckAvailability(ctx context.Context, start time.Time, durationMinutes int) (bool, error)

	// CreateEvent unconditionally creates an event and returns its
	// backend-assigned id. Callers are responsible for checking availability
	// first; a busy slot is never an error here.
	CreateEvent(ctx context.Context, title string, start time.Time, durationMinutes int, description string) (string, error)

	// ListEvents returns events in the inclusive [start, end] range sorted
	// by start time.
	ListEvents(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error)
}

package models

import "time"

// TimeSlot is a candidate appointment interval of fixed duration.
type TimeSlot struct {
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
}

// End returns the exclusive end of the slot's interval.
func (s TimeSlot) End() time.Time {
	return s.Start.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// Overlaps reports whether two half-open intervals [start, end) intersect.
// Back-to-back slots sharing a boundary do not overlap.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Start.Before(o.End()) && o.Start.Before(s.End())
}

// CalendarEvent is an event owned by the calendar backend.
type CalendarEvent struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
	Description     string    `json:"description,omitempty"`
}

// Slot returns the interval the event occupies.
func (e CalendarEvent) Slot() TimeSlot {
	return TimeSlot{Start: e.Start, DurationMinutes: e.DurationMinutes}
}

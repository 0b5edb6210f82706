package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"schedly/models"
)

// InMemoryBackend is a deterministic stand-in used when Google credentials
// are unavailable. Any slot starting at 14:xx reads as permanently busy,
// which gives development and tests a fixed conflict to exercise; everything
// else is checked against the stored event list.
type InMemoryBackend struct {
	mu     sync.Mutex
	events []models.CalendarEvent
	nextID int
}

// NewInMemoryBackend returns an empty fake backend.
func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{nextID: 1}
}

// CheckAvailability evaluates overlap against stored events. The 2 PM hour is
// always busy.
func (b *InMemoryBackend) CheckAvailability(_ context.Context, start time.Time, durationMinutes int) (bool, error) {
	if start.Hour() == 14 {
		return false, nil
	}

	candidate := models.TimeSlot{Start: start, DurationMinutes: durationMinutes}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ev := range b.events {
		if candidate.Overlaps(ev.Slot()) {
			return false, nil
		}
	}
	return true, nil
}

// CreateEvent stores the event and hands back a synthetic id.
func (b *InMemoryBackend) CreateEvent(_ context.Context, title string, start time.Time, durationMinutes int, description string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := fmt.Sprintf("fake-event-%d", b.nextID)
	b.nextID++

	b.events = append(b.events, models.CalendarEvent{
		ID:              id,
		Title:           title,
		Start:           start,
		DurationMinutes: durationMinutes,
		Description:     description,
	})
	return id, nil
}

// ListEvents returns stored events whose start falls in [start, end],
// sorted by start time.
func (b *InMemoryBackend) ListEvents(_ context.Context, start, end time.Time) ([]models.CalendarEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.CalendarEvent
	for _, ev := range b.events {
		if !ev.Start.Before(start) && !ev.Start.After(end) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

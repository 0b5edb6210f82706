package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedly/services/calendar"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSuggestBusinessHoursGrid(t *testing.T) {
	backend := calendar.NewInMemoryBackend()
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	engine := &DefaultSchedulingEngine{
		Backend:           backend,
		BusinessHoursOnly: true,
		Now:               fixedClock(now),
	}

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	slots, err := engine.Suggest(context.Background(), date, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.LessOrEqual(t, len(slots), MaxSuggestions)
	for i, slot := range slots {
		assert.Equal(t, 60, slot.DurationMinutes)
		// On the 30-minute grid within business hours.
		assert.Zero(t, slot.Start.Second())
		assert.Contains(t, []int{0, 30}, slot.Start.Minute())
		assert.GreaterOrEqual(t, slot.Start.Hour(), 9)
		assert.Less(t, slot.Start.Hour(), 17)
		// Strictly ascending.
		if i > 0 {
			assert.True(t, slots[i-1].Start.Before(slot.Start))
		}
		// The fake marks 2 PM permanently busy, so it never shows up.
		assert.NotEqual(t, 14, slot.Start.Hour())
		// Every returned slot independently passes an availability check.
		available, err := backend.CheckAvailability(context.Background(), slot.Start, slot.DurationMinutes)
		require.NoError(t, err)
		assert.True(t, available)
	}
}

func TestSuggestCapsAtTen(t *testing.T) {
	backend := calendar.NewInMemoryBackend()
	now := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	engine := &DefaultSchedulingEngine{
		Backend: backend,
		Now:     fixedClock(now),
	}

	// Extended hours [8,20) offer far more than ten free candidates.
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	slots, err := engine.Suggest(context.Background(), date, 30)
	require.NoError(t, err)
	assert.Len(t, slots, MaxSuggestions)
}

func TestSuggestSkipsPastSlots(t *testing.T) {
	backend := calendar.NewInMemoryBackend()
	now := time.Date(2025, 3, 10, 15, 10, 0, 0, time.UTC)
	engine := &DefaultSchedulingEngine{
		Backend:           backend,
		BusinessHoursOnly: true,
		Now:               fixedClock(now),
	}

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	slots, err := engine.Suggest(context.Background(), date, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		assert.False(t, slot.Start.Before(now), "no slot may start in the past")
	}
	// 15:30, 16:00, 16:30 remain (hour 14 already passed anyway).
	assert.Len(t, slots, 3)
}

func TestSuggestPastDateReturnsEmpty(t *testing.T) {
	backend := calendar.NewInMemoryBackend()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	engine := &DefaultSchedulingEngine{
		Backend:           backend,
		BusinessHoursOnly: true,
		Now:               fixedClock(now),
	}

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	slots, err := engine.Suggest(context.Background(), date, 60)
	require.NoError(t, err, "a past date is empty, not an error")
	assert.Empty(t, slots)
}

func TestSuggestFullyBookedDayReturnsEmpty(t *testing.T) {
	backend := calendar.NewInMemoryBackend()
	ctx := context.Background()

	// Block the whole extended range with one long event.
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := backend.CreateEvent(ctx, "offsite", date.Add(8*time.Hour), 12*60, "")
	require.NoError(t, err)

	engine := &DefaultSchedulingEngine{
		Backend: backend,
		Now:     fixedClock(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)),
	}

	slots, err := engine.Suggest(ctx, date, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

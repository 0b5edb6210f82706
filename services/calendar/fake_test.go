package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryBackendTwoPMAlwaysBusy(t *testing.T) {
	backend := NewInMemoryBackend()
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	available, err := backend.CheckAvailability(ctx, start, 60)
	require.NoError(t, err)
	assert.False(t, available)

	halfPast := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	available, err = backend.CheckAvailability(ctx, halfPast, 30)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestInMemoryBackendOverlapDetection(t *testing.T) {
	backend := NewInMemoryBackend()
	ctx := context.Background()

	booked := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	id, err := backend.CreateEvent(ctx, "Sync", booked, 60, "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	tests := []struct {
		name      string
		start     time.Time
		duration  int
		available bool
	}{
		{"same slot", booked, 60, false},
		{"overlapping tail", booked.Add(30 * time.Minute), 60, false},
		{"overlapping head", booked.Add(-30 * time.Minute), 60, false},
		{"back-to-back after", booked.Add(60 * time.Minute), 60, true},
		{"back-to-back before", booked.Add(-60 * time.Minute), 60, true},
		{"later in the day", booked.Add(3 * time.Hour), 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := backend.CheckAvailability(ctx, tt.start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.available, available)
		})
	}
}

func TestInMemoryBackendCheckAvailabilityIsReadOnly(t *testing.T) {
	backend := NewInMemoryBackend()
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		available, err := backend.CheckAvailability(ctx, start, 60)
		require.NoError(t, err)
		assert.True(t, available)
	}

	events, err := backend.ListEvents(ctx, start.AddDate(0, 0, -1), start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestInMemoryBackendListEventsSortedInclusive(t *testing.T) {
	backend := NewInMemoryBackend()
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	late := day.Add(16 * time.Hour)
	early := day.Add(9 * time.Hour)
	mid := day.Add(11 * time.Hour)

	for _, ev := range []struct {
		title string
		start time.Time
	}{
		{"late", late},
		{"early", early},
		{"mid", mid},
	} {
		_, err := backend.CreateEvent(ctx, ev.title, ev.start, 30, "")
		require.NoError(t, err)
	}

	events, err := backend.ListEvents(ctx, early, late)
	require.NoError(t, err)
	require.Len(t, events, 3, "range bounds are inclusive")
	assert.Equal(t, "early", events[0].Title)
	assert.Equal(t, "mid", events[1].Title)
	assert.Equal(t, "late", events[2].Title)
}

func TestInMemoryBackendDistinctEventIDs(t *testing.T) {
	backend := NewInMemoryBackend()
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	first, err := backend.CreateEvent(ctx, "a", start, 30, "")
	require.NoError(t, err)
	second, err := backend.CreateEvent(ctx, "b", start.Add(time.Hour), 30, "")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

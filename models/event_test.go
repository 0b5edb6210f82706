package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a, b     TimeSlot
		overlaps bool
	}{
		{
			name:     "identical slots",
			a:        TimeSlot{Start: base, DurationMinutes: 60},
			b:        TimeSlot{Start: base, DurationMinutes: 60},
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        TimeSlot{Start: base, DurationMinutes: 60},
			b:        TimeSlot{Start: base.Add(30 * time.Minute), DurationMinutes: 60},
			overlaps: true,
		},
		{
			name:     "back-to-back does not conflict",
			a:        TimeSlot{Start: base, DurationMinutes: 60},
			b:        TimeSlot{Start: base.Add(60 * time.Minute), DurationMinutes: 60},
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        TimeSlot{Start: base, DurationMinutes: 30},
			b:        TimeSlot{Start: base.Add(2 * time.Hour), DurationMinutes: 30},
			overlaps: false,
		},
		{
			name:     "containment",
			a:        TimeSlot{Start: base, DurationMinutes: 120},
			b:        TimeSlot{Start: base.Add(30 * time.Minute), DurationMinutes: 30},
			overlaps: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a), "overlap is symmetric")
		})
	}
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC) // a Monday

	tests := []struct {
		input string
		want  string
	}{
		{"today", "2025-03-10"},
		{"Tomorrow", "2025-03-11"},
		{"next week", "2025-03-17"},
		{"friday", "2025-03-14"},
		{"monday", "2025-03-17"}, // same weekday rolls to next week
		{"2025-04-01", "2025-04-01"},
		{"gibberish", "gibberish"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDateInput(tt.input, now))
		})
	}
}

func TestNormalizeTimeInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"morning", "09:00"},
		{"Afternoon", "14:00"},
		{"evening", "18:00"},
		{"noon", "12:00"},
		{"10:30", "10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTimeInput(tt.input))
		})
	}
}

func TestValidateDateTimeStrings(t *testing.T) {
	assert.True(t, ValidateDateTimeStrings("2025-03-10", "10:30"))
	assert.True(t, ValidateDateTimeStrings("2025-03-10", ""))
	assert.False(t, ValidateDateTimeStrings("03/10/2025", "10:30"))
	assert.False(t, ValidateDateTimeStrings("2025-03-10", "10:30pm"))
	assert.False(t, ValidateDateTimeStrings("", ""))
}

func TestExtractAppointmentDetails(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) // a Monday

	tests := []struct {
		name string
		text string
		want AppointmentDetails
	}{
		{
			"clock time and iso date",
			"book me on 2025-03-12 at 10:30",
			AppointmentDetails{Date: "2025-03-12", Time: "10:30"},
		},
		{
			"meridiem pm",
			"tomorrow at 2pm",
			AppointmentDetails{Date: "2025-03-11", Time: "14:00"},
		},
		{
			"meridiem 12am",
			"today at 12am",
			AppointmentDetails{Date: "2025-03-10", Time: "00:00"},
		},
		{
			"us date",
			"on 3/12/2025 please",
			AppointmentDetails{Date: "2025-03-12"},
		},
		{
			"weekday and hours duration",
			"friday for 2 hours",
			AppointmentDetails{Date: "2025-03-14", DurationMinutes: 120},
		},
		{
			"minutes duration",
			"a 45 min call",
			AppointmentDetails{DurationMinutes: 45},
		},
		{
			"nothing",
			"hello there",
			AppointmentDetails{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAppointmentDetails(tt.text, now))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "30 minutes", FormatDuration(30))
	assert.Equal(t, "1 hour", FormatDuration(60))
	assert.Equal(t, "1 hour 30 minutes", FormatDuration(90))
	assert.Equal(t, "2 hours", FormatDuration(120))
	assert.Equal(t, "2 hours 15 minutes", FormatDuration(135))
}

func TestBusinessHours(t *testing.T) {
	hours := BusinessHours()

	assert.Len(t, hours, 16)
	assert.Equal(t, "09:00", hours[0])
	assert.Equal(t, "16:30", hours[len(hours)-1])
	assert.NotContains(t, hours, "17:00")
}

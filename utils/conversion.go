package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout and TimeLayout are the canonical wire formats for scheduling
// parameters: dates are YYYY-MM-DD, times are 24-hour HH:MM.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NormalizeDateInput resolves common relative-date words ("today", "tomorrow",
// "next week", weekday names) to YYYY-MM-DD relative to now. Anything it does
// not recognize is returned unchanged for strict parsing downstream.
func NormalizeDateInput(input string, now time.Time) string {
	s := strings.ToLower(strings.TrimSpace(input))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case strings.Contains(s, "today"):
		return today.Format(DateLayout)
	case strings.Contains(s, "tomorrow"):
		return today.AddDate(0, 0, 1).Format(DateLayout)
	case strings.Contains(s, "next week"):
		return today.AddDate(0, 0, 7).Format(DateLayout)
	}

	for name, wd := range weekdays {
		if strings.Contains(s, name) {
			daysAhead := int(wd - today.Weekday())
			if daysAhead <= 0 {
				daysAhead += 7
			}
			return today.AddDate(0, 0, daysAhead).Format(DateLayout)
		}
	}

	return input
}

// NormalizeTimeInput resolves day-part words ("morning", "afternoon",
// "evening", "noon") to HH:MM. Unrecognized input is returned unchanged.
func NormalizeTimeInput(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	switch {
	case strings.Contains(s, "morning"):
		return "09:00"
	case strings.Contains(s, "afternoon"):
		return "14:00"
	case strings.Contains(s, "evening"):
		return "18:00"
	case strings.Contains(s, "noon"):
		return "12:00"
	}
	return input
}

// ValidateDateTimeStrings reports whether dateStr (and timeStr, when present)
// are in the canonical formats.
func ValidateDateTimeStrings(dateStr, timeStr string) bool {
	if _, err := time.Parse(DateLayout, dateStr); err != nil {
		return false
	}
	if timeStr != "" {
		if _, err := time.Parse(TimeLayout, timeStr); err != nil {
			return false
		}
	}
	return true
}

var (
	timePattern     = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	meridiemPattern = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	isoDatePattern  = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	usDatePattern   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	relDatePattern  = regexp.MustCompile(`\b(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	durationPattern = regexp.MustCompile(`\b(\d+)\s*(minutes?|mins?|hours?|hrs?)\b`)
)

// AppointmentDetails carries scheduling parameters recovered from free text by
// the deterministic fallback extractor.
type AppointmentDetails struct {
	Date            string
	Time            string
	DurationMinutes int
}

// ExtractAppointmentDetails scans free text for date, time and duration
// phrases. It is deliberately minimal: the LLM extractor handles the general
// case and this only backs the keyword fallback path.
func ExtractAppointmentDetails(text string, now time.Time) AppointmentDetails {
	var details AppointmentDetails
	lower := strings.ToLower(text)

	if m := timePattern.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 24 && minute < 60 {
			details.Time = fmt.Sprintf("%02d:%02d", hour, minute)
		}
	} else if m := meridiemPattern.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if m[2] == "pm" && hour < 12 {
			hour += 12
		}
		if m[2] == "am" && hour == 12 {
			hour = 0
		}
		if hour < 24 {
			details.Time = fmt.Sprintf("%02d:00", hour)
		}
	}

	if m := isoDatePattern.FindStringSubmatch(lower); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		details.Date = fmt.Sprintf("%s-%02d-%02d", m[1], month, day)
	} else if m := usDatePattern.FindStringSubmatch(lower); m != nil {
		// MM/DD/YYYY
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		details.Date = fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
	} else if m := relDatePattern.FindStringSubmatch(lower); m != nil {
		details.Date = NormalizeDateInput(m[1], now)
	}

	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		value, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "h") {
			value *= 60
		}
		details.DurationMinutes = value
	}

	return details
}

// FormatDuration renders a minute count as a human-readable phrase.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	plural := ""
	if hours > 1 {
		plural = "s"
	}
	if rem == 0 {
		return fmt.Sprintf("%d hour%s", hours, plural)
	}
	return fmt.Sprintf("%d hour%s %d minutes", hours, plural, rem)
}

// BusinessHours lists the half-hour grid of business-hour start times (9 AM
// through 4:30 PM) in HH:MM format.
func BusinessHours() []string {
	var hours []string
	for hour := 9; hour < 17; hour++ {
		for _, minute := range []int{0, 30} {
			hours = append(hours, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return hours
}

package models

// Action identifies what the assistant should do for a turn.
type Action string

const (
	ActionCheckAvailability Action = "check_availability"
	ActionBookAppointment   Action = "book_appointment"
	ActionSuggestTimes      Action = "suggest_times"
	ActionGeneralChat       Action = "general_chat"
)

// DefaultDurationMinutes applies whenever the extractor omits a duration.
const DefaultDurationMinutes = 60

// ParseAction maps the extractor's action tag onto a known Action. Unknown or
// empty tags degrade to general chat rather than failing the turn.
func ParseAction(s string) Action {
	switch Action(s) {
	case ActionCheckAvailability, ActionBookAppointment, ActionSuggestTimes:
		return Action(s)
	default:
		return ActionGeneralChat
	}
}

// BookingParams carries the scheduling parameters extracted from a user
// utterance. All fields are optional at extraction time; each action handler
// validates the subset it requires.
type BookingParams struct {
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	DurationMinutes int    `json:"duration,omitempty"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
}

// DurationOrDefault returns the requested duration, defaulting to 60 minutes.
func (p BookingParams) DurationOrDefault() int {
	if p.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return p.DurationMinutes
}

// MissingForBooking lists the required booking fields that are absent, in a
// fixed order so clarifying questions are stable.
func (p BookingParams) MissingForBooking() []string {
	var missing []string
	if p.Date == "" {
		missing = append(missing, "date")
	}
	if p.Time == "" {
		missing = append(missing, "time")
	}
	if p.Title == "" {
		missing = append(missing, "title")
	}
	return missing
}

// Merge overlays non-empty fields of other onto p, so a partial booking
// stashed on a previous turn can be completed incrementally.
func (p BookingParams) Merge(other BookingParams) BookingParams {
	if other.Date != "" {
		p.Date = other.Date
	}
	if other.Time != "" {
		p.Time = other.Time
	}
	if other.DurationMinutes > 0 {
		p.DurationMinutes = other.DurationMinutes
	}
	if other.Title != "" {
		p.Title = other.Title
	}
	if other.Description != "" {
		p.Description = other.Description
	}
	return p
}

// Intent is the structured, validated interpretation of a user utterance.
type Intent struct {
	Message    string              `json:"message"`
	Action     Action              `json:"action"`
	Parameters BookingParams       `json:"parameters"`
	Context    ConversationContext `json:"context"`
}

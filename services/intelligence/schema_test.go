package intelligence

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedly/models"
)

func TestDecodeIntentWellFormed(t *testing.T) {
	raw := `{
		"message": "Booking it now.",
		"action": "book_appointment",
		"parameters": {"date": "2025-03-10", "time": "10:00", "duration": 30, "title": "Sync"},
		"context": {"user_intent": "book"}
	}`

	intent := DecodeIntent(raw, models.ConversationContext{})

	assert.Equal(t, models.ActionBookAppointment, intent.Action)
	assert.Equal(t, "Booking it now.", intent.Message)
	assert.Equal(t, "2025-03-10", intent.Parameters.Date)
	assert.Equal(t, 30, intent.Parameters.DurationMinutes)
	assert.JSONEq(t, `"book"`, string(intent.Context.Extra["user_intent"]))
}

func TestDecodeIntentNonJSONDegradesToChat(t *testing.T) {
	prior := models.ConversationContext{SuggestedTimes: []string{"09:00"}}

	intent := DecodeIntent("Sure, happy to help with whatever you need!", prior)

	assert.Equal(t, models.ActionGeneralChat, intent.Action)
	assert.Equal(t, "Sure, happy to help with whatever you need!", intent.Message)
	assert.Equal(t, prior.SuggestedTimes, intent.Context.SuggestedTimes, "prior context passes through")
}

func TestDecodeIntentUnknownActionDegradesToChat(t *testing.T) {
	intent := DecodeIntent(`{"message": "hm", "action": "launch_rocket"}`, models.ConversationContext{})
	assert.Equal(t, models.ActionGeneralChat, intent.Action)
}

func TestDecodeIntentStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"message\": \"ok\", \"action\": \"suggest_times\", \"parameters\": {\"date\": \"2025-03-10\"}}\n```"

	intent := DecodeIntent(raw, models.ConversationContext{})

	assert.Equal(t, models.ActionSuggestTimes, intent.Action)
	assert.Equal(t, "2025-03-10", intent.Parameters.Date)
}

func TestDecodeIntentMissingContextKeepsPrior(t *testing.T) {
	prior := models.ConversationContext{
		PendingBooking: &models.BookingParams{Date: "2025-03-10"},
		Extra:          map[string]json.RawMessage{"note": json.RawMessage(`"x"`)},
	}

	intent := DecodeIntent(`{"message": "ok", "action": "general_chat"}`, prior)

	require.NotNil(t, intent.Context.PendingBooking)
	assert.Equal(t, "2025-03-10", intent.Context.PendingBooking.Date)
}

func TestDecodeIntentEmptyOutput(t *testing.T) {
	intent := DecodeIntent("", models.ConversationContext{})
	assert.Equal(t, models.ActionGeneralChat, intent.Action)
	assert.NotEmpty(t, intent.Message)
}

package models

import "encoding/json"

// AvailabilityCheck summarizes the most recent availability query.
type AvailabilityCheck struct {
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Available bool   `json:"available"`
}

// BookingRecord summarizes the most recent successful booking.
type BookingRecord struct {
	EventID  string `json:"event_id"`
	Title    string `json:"title"`
	DateTime string `json:"datetime"`
}

// ConversationContext is the caller-carried state threaded through each turn.
// The agent only ever reads the prior turn's value and returns a new one; it
// never stores context itself. Extra preserves keys this server does not
// interpret (the extractor is free to stash its own notes there) so they
// survive JSON round trips.
type ConversationContext struct {
	PendingBooking        *BookingParams     `json:"-"`
	LastAvailabilityCheck *AvailabilityCheck `json:"-"`
	LastBooking           *BookingRecord     `json:"-"`
	SuggestedTimes        []string           `json:"-"`
	Extra                 map[string]json.RawMessage
}

const (
	ctxKeyPendingBooking    = "pending_booking"
	ctxKeyAvailabilityCheck = "last_availability_check"
	ctxKeyLastBooking       = "last_booking"
	ctxKeySuggestedTimes    = "suggested_times"
)

// MarshalJSON flattens the known fields and the passthrough bucket into a
// single JSON object. Known fields win on key collisions.
func (c ConversationContext) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.Extra)+4)
	for k, v := range c.Extra {
		out[k] = v
	}

	set := func(key string, v interface{}) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}

	if c.PendingBooking != nil {
		if err := set(ctxKeyPendingBooking, c.PendingBooking); err != nil {
			return nil, err
		}
	}
	if c.LastAvailabilityCheck != nil {
		if err := set(ctxKeyAvailabilityCheck, c.LastAvailabilityCheck); err != nil {
			return nil, err
		}
	}
	if c.LastBooking != nil {
		if err := set(ctxKeyLastBooking, c.LastBooking); err != nil {
			return nil, err
		}
	}
	if len(c.SuggestedTimes) > 0 {
		if err := set(ctxKeySuggestedTimes, c.SuggestedTimes); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON splits a JSON object into the known fields and the
// passthrough bucket.
func (c *ConversationContext) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = ConversationContext{}

	if v, ok := raw[ctxKeyPendingBooking]; ok {
		if err := json.Unmarshal(v, &c.PendingBooking); err != nil {
			return err
		}
		delete(raw, ctxKeyPendingBooking)
	}
	if v, ok := raw[ctxKeyAvailabilityCheck]; ok {
		if err := json.Unmarshal(v, &c.LastAvailabilityCheck); err != nil {
			return err
		}
		delete(raw, ctxKeyAvailabilityCheck)
	}
	if v, ok := raw[ctxKeyLastBooking]; ok {
		if err := json.Unmarshal(v, &c.LastBooking); err != nil {
			return err
		}
		delete(raw, ctxKeyLastBooking)
	}
	if v, ok := raw[ctxKeySuggestedTimes]; ok {
		if err := json.Unmarshal(v, &c.SuggestedTimes); err != nil {
			return err
		}
		delete(raw, ctxKeySuggestedTimes)
	}

	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

package agent

import (
	"fmt"
	"strings"
)

// ValidationError reports required parameters missing from an intent.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// ConflictError reports a requested slot that is already taken.
type ConflictError struct {
	Date string
	Time string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflictError: slot at %s on %s is unavailable", e.Time, e.Date)
}

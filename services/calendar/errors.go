package calendar

import "fmt"

const (
	// CodeUnavailable marks transport-level failures reaching the backend.
	CodeUnavailable = "backendUnavailable"
	// CodeRejected marks auth or validation failures reported by the backend.
	CodeRejected = "backendRejected"
)

// BackendError wraps transport and auth failures from the calendar backend.
// A busy slot is never a BackendError; that is a caller-side check.
type BackendError struct {
	Code    string
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewUnavailableError reports that the backend could not be reached.
func NewUnavailableError(msg string, err error) error {
	return &BackendError{Code: CodeUnavailable, Message: msg, Err: err}
}

// NewRejectedError reports that the backend refused the request.
func NewRejectedError(msg string, err error) error {
	return &BackendError{Code: CodeRejected, Message: msg, Err: err}
}

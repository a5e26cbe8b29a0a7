package availability

import "fmt"

// EngineError is a typed engine failure with a stable code for callers.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidInput covers malformed dates, durations that are not a
	// multiple of the base unit, and out-of-window queries.
	ErrInvalidInput = &EngineError{Code: "invalidInput", Message: "invalid input"}

	// ErrUpstreamFetchFailed means the commitment store could not be read.
	// Individual malformed records are skipped, never surfaced as this error.
	ErrUpstreamFetchFailed = &EngineError{Code: "upstreamFetchFailed", Message: "commitment store fetch failed"}
)

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func upstreamFetchf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUpstreamFetchFailed}, args...)...)
}

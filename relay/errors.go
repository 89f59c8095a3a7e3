package relay

import "fmt"

var (
	// ErrConversationClosed is returned when a message is submitted to a
	// conversation whose active flag is false. Nothing is appended and no
	// upstream call is made.
	ErrConversationClosed = fmt.Errorf("the chat session has ended")
)

// ValidationError reports a malformed or missing request field. It is raised
// before any side effect occurs.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// UpstreamError wraps any failure from the completion provider (transport,
// authentication, quota, malformed response). The user-turn append made prior
// to the failed call is retained.
type UpstreamError struct {
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream completion error: %v", e.Err)
}

// Unwrap exposes the underlying provider failure.
func (e *UpstreamError) Unwrap() error { return e.Err }

package core

import "fmt"

var (
	// ErrNotFound is returned when a conversation for the given id does not
	// exist in the underlying store.
	ErrNotFound = fmt.Errorf("conversation not found")
)

// ConversationStore persists conversations and their evolving histories. All
// implementations own their internal synchronization; callers never coordinate
// access themselves.
type ConversationStore interface {
	// GetOrCreate returns a snapshot of the conversation for id, creating it
	// lazily on first reference. It never fails for in-memory backends.
	GetOrCreate(id string) (*Conversation, error)

	// Append adds a message to the conversation, creating it if necessary.
	Append(id string, msg Message) error

	// History returns a copy of the ordered message history.
	// Returns ErrNotFound for unknown ids.
	History(id string) ([]Message, error)

	// Close marks the conversation as ended.
	// Returns ErrNotFound for unknown ids.
	Close(id string) error
}

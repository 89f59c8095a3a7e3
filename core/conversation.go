package core

import (
	"sync"
	"time"
)

// Conversation is a single logical chat keyed by a caller-supplied identifier.
// It holds the ordered message history plus an active flag and is safe for
// concurrent access.
//
// Contract:
//   - The history always begins with exactly one system-role message inserted
//     at construction and never removed
//   - Active starts true; it only transitions to false via Close
//   - Messages returns a defensive copy to avoid external mutation
//   - Appends update the Updated timestamp
type Conversation struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
	Active   bool      `json:"active"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	mu       sync.RWMutex
}

// NewConversation creates a conversation seeded with the given system prompt.
func NewConversation(id, systemPrompt string) *Conversation {
	now := time.Now().UTC()
	return &Conversation{
		ID:       id,
		Messages: []Message{{Role: RoleSystem, Content: systemPrompt}},
		Active:   true,
		Created:  now,
		Updated:  now,
	}
}

// Append adds a message to the history updating the Updated timestamp.
func (c *Conversation) Append(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, msg)
	c.Updated = time.Now().UTC()
}

// History returns a copy of the full message slice to prevent callers from
// mutating internal state.
func (c *Conversation) History() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	messages := make([]Message, len(c.Messages))
	copy(messages, c.Messages)
	return messages
}

// Len reports the current history length.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Messages)
}

// IsActive reports whether the conversation still accepts messages.
func (c *Conversation) IsActive() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Active
}

// Close marks the conversation as ended. Further submissions are rejected by
// the relay; the history itself is retained.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Active = false
	c.Updated = time.Now().UTC()
}

// Clone returns a deep copy of the conversation safe for independent mutation.
func (c *Conversation) Clone() *Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	clone := &Conversation{
		ID:       c.ID,
		Messages: make([]Message, len(c.Messages)),
		Active:   c.Active,
		Created:  c.Created,
		Updated:  c.Updated,
	}
	copy(clone.Messages, c.Messages)
	return clone
}

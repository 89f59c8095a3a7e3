package session

import (
	"sync"

	"github.com/krishnasingh-28/chatbot/core"
)

// DefaultSystemPrompt seeds every newly created conversation.
const DefaultSystemPrompt = "You are a useful AI assistant."

// Options configure the in-memory store.
type Options struct {
	// SystemPrompt is inserted as the first message of every conversation.
	SystemPrompt string
}

// InMemoryStore is a volatile ConversationStore keeping conversations in a
// process-local map. It is safe for concurrent access: the store-level mutex
// guards the map and each conversation serializes its own history mutations.
// Conversations live for the process lifetime; there is no eviction and no
// size bound.
type InMemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*core.Conversation
	systemPrompt  string
}

// NewInMemoryStore constructs an empty in-memory conversation store.
func NewInMemoryStore(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{SystemPrompt: DefaultSystemPrompt}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &InMemoryStore{
		conversations: make(map[string]*core.Conversation),
		systemPrompt:  opts.SystemPrompt,
	}
}

// GetOrCreate returns a snapshot of an existing conversation or creates a new
// one lazily. The returned clone prevents external mutation of internal state.
func (s *InMemoryStore) GetOrCreate(id string) (*core.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok := s.conversations[id]; ok {
		return conv.Clone(), nil
	}
	return s.createLocked(id).Clone(), nil
}

// Append adds a message to an existing or newly created conversation.
func (s *InMemoryStore) Append(id string, msg core.Message) error {
	s.mu.Lock()
	conv, ok := s.conversations[id]
	if !ok {
		conv = s.createLocked(id)
	}
	s.mu.Unlock()
	conv.Append(msg)
	return nil
}

// History returns a copy of the conversation's ordered message history.
func (s *InMemoryStore) History(id string) ([]core.Message, error) {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	s.mu.RUnlock()
	if !ok {
		return nil, core.ErrNotFound
	}
	return conv.History(), nil
}

// Close marks the conversation as ended; its history is retained.
func (s *InMemoryStore) Close(id string) error {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	s.mu.RUnlock()
	if !ok {
		return core.ErrNotFound
	}
	conv.Close()
	return nil
}

// Size reports the number of tracked conversations. Not part of the
// ConversationStore contract; used by tests and diagnostics.
func (s *InMemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

// createLocked allocates and stores a new conversation; caller must already
// hold the write lock.
func (s *InMemoryStore) createLocked(id string) *core.Conversation {
	conv := core.NewConversation(id, s.systemPrompt)
	s.conversations[id] = conv
	return conv
}

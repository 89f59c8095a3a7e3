package core

// Conversation roles understood by the relay. Callers may supply other role
// strings; they are stored verbatim and forwarded to the provider unchanged.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single (role, content) turn in a conversation. Messages are
// immutable once appended; ownership transfers to the owning Conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewUserMessage is a convenience constructor for a user-authored turn.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage is a convenience constructor for an assistant turn.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

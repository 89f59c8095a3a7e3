package relay

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/krishnasingh-28/chatbot/core"
	"github.com/krishnasingh-28/chatbot/logging"
	"github.com/krishnasingh-28/chatbot/model"
)

// Options holds dependency overrides passed to New().
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// SubmitRequest is one inbound chat turn.
type SubmitRequest struct {
	ConversationID string
	Role           string // defaults to "user" when empty
	Content        string
}

// SubmitResult carries the assembled reply for a successful turn.
type SubmitResult struct {
	ConversationID string
	Response       string
}

// Relay mediates one request/response cycle with the completion provider per
// inbound message while maintaining per-conversation history in the injected
// store. Public methods are safe for concurrent use; isolation across
// conversation keys is guaranteed by the store's internal locking.
type Relay struct {
	store  core.ConversationStore
	model  model.Model
	logger logging.Logger
}

// New constructs a Relay with optional overrides.
func New(store core.ConversationStore, mdl model.Model, optFns ...func(o *Options)) *Relay {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Relay{store: store, model: mdl, logger: opts.Logger}
}

// SubmitMessage runs one full relay cycle.
//
// Validation happens before any side effect. A closed conversation is
// rejected before mutation. The user turn appended before the provider call
// is retained even when the call fails.
func (r *Relay) SubmitMessage(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if req.ConversationID == "" {
		return nil, &ValidationError{Field: "conversation_id", Reason: "required"}
	}
	if req.Content == "" {
		return nil, &ValidationError{Field: "message", Reason: "required"}
	}
	role := req.Role
	if role == "" {
		role = core.RoleUser
	}

	requestID := uuid.NewString()
	logger := r.logger

	conv, err := r.store.GetOrCreate(req.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conv.IsActive() {
		logger.Warn("message rejected, conversation closed",
			"conversation_id", req.ConversationID, "request_id", requestID)
		return nil, ErrConversationClosed
	}

	if err := r.store.Append(req.ConversationID, core.Message{Role: role, Content: req.Content}); err != nil {
		return nil, err
	}

	history, err := r.store.History(req.ConversationID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := r.complete(ctx, history)
	if err != nil {
		logger.Error("completion failed",
			"conversation_id", req.ConversationID,
			"request_id", requestID,
			"model", r.model.Info().Name,
			"duration", time.Since(start),
			"error", err)
		return nil, &UpstreamError{Err: err}
	}
	logger.Info("completion succeeded",
		"conversation_id", req.ConversationID,
		"request_id", requestID,
		"model", r.model.Info().Name,
		"duration", time.Since(start),
		"history_len", len(history))

	if err := r.store.Append(req.ConversationID, core.NewAssistantMessage(text)); err != nil {
		return nil, err
	}

	return &SubmitResult{ConversationID: req.ConversationID, Response: text}, nil
}

// complete invokes the provider with the full history and buffers the
// fragment stream into one string. Fragments are concatenated in arrival
// order; the first provider error terminates the call.
func (r *Relay) complete(ctx context.Context, history []core.Message) (string, error) {
	respCh, errCh := r.model.Generate(ctx, model.Request{Messages: history, Stream: true})

	var b strings.Builder
	for respCh != nil || errCh != nil {
		select {
		case resp, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			b.WriteString(resp.Text)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				return "", err
			}
		}
	}
	return b.String(), nil
}

// EndConversation marks the conversation as ended; subsequent submissions
// fail with ErrConversationClosed. The history is retained.
func (r *Relay) EndConversation(id string) error {
	if id == "" {
		return &ValidationError{Field: "conversation_id", Reason: "required"}
	}
	return r.store.Close(id)
}

// History returns a copy of the conversation's ordered message history.
func (r *Relay) History(id string) ([]core.Message, error) {
	if id == "" {
		return nil, &ValidationError{Field: "conversation_id", Reason: "required"}
	}
	return r.store.History(id)
}

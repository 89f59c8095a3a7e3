// Package chatbot provides a high-level façade over the relay and its service
// abstractions (conversation store, completion model, logging) enabling rapid
// construction of the chat backend. Most applications interact with this
// package by:
//  1. Creating a Chatbot via New() (optionally overriding default in-memory services)
//  2. Submitting messages (Submit) or mounting the HTTP surface themselves
//
// All defaults are safe for local development and testing; production
// deployments supply a real provider model and a structured logger.
package chatbot

import (
	"context"

	"github.com/krishnasingh-28/chatbot/core"
	"github.com/krishnasingh-28/chatbot/logging"
	"github.com/krishnasingh-28/chatbot/model"
	"github.com/krishnasingh-28/chatbot/relay"
	"github.com/krishnasingh-28/chatbot/session"
)

// Options configures the Chatbot instance.
type Options struct {
	// Store keeps per-conversation history (defaults to in-memory).
	Store core.ConversationStore

	// Model is the completion provider (defaults to a deterministic mock,
	// suitable only for tests and local development).
	Model model.Model

	// SystemPrompt seeds new conversations when the default store is used.
	SystemPrompt string

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Chatbot is the high-level façade aggregating the relay and its services.
type Chatbot struct {
	opts  Options
	relay *relay.Relay
}

// New creates a new Chatbot instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Chatbot {
	opts := Options{
		SystemPrompt: session.DefaultSystemPrompt,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore(func(o *session.Options) {
			o.SystemPrompt = opts.SystemPrompt
		})
	}
	if opts.Model == nil {
		opts.Model = model.NewMockModel("mock", "mock")
	}

	r := relay.New(opts.Store, opts.Model, func(o *relay.Options) {
		o.Logger = opts.Logger
	})

	return &Chatbot{opts: opts, relay: r}
}

// Relay exposes the underlying relay for transport layers.
func (c *Chatbot) Relay() *relay.Relay { return c.relay }

// Submit relays one user turn and returns the buffered assistant reply.
func (c *Chatbot) Submit(ctx context.Context, conversationID, role, message string) (string, error) {
	res, err := c.relay.SubmitMessage(ctx, relay.SubmitRequest{
		ConversationID: conversationID,
		Role:           role,
		Content:        message,
	})
	if err != nil {
		return "", err
	}
	return res.Response, nil
}

// End marks a conversation as ended.
func (c *Chatbot) End(conversationID string) error {
	return c.relay.EndConversation(conversationID)
}

// History returns a copy of a conversation's ordered message history.
func (c *Chatbot) History(conversationID string) ([]core.Message, error) {
	return c.relay.History(conversationID)
}

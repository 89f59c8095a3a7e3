package model

import (
	"context"
	"fmt"

	"github.com/krishnasingh-28/chatbot/core"
)

// Request captures the normalized model input: the full conversation history
// in insertion order. Stream requests incremental fragment delivery where the
// provider supports it; providers that do not stream emit a single fragment.
type Request struct {
	Messages []core.Message `json:"messages"`
	Stream   bool           `json:"stream,omitempty"`
}

// Response is one fragment of generated text. Partial marks incremental
// deltas; the terminal fragment carries FinishReason and may have empty Text.
// Concatenating every fragment's Text in arrival order yields the full reply.
type Response struct {
	Text         string `json:"text"`
	Partial      bool   `json:"partial"`
	FinishReason string `json:"finish_reason,omitempty"` // "stop", "length", etc.
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "groq", "anthropic", "mock", etc.
}

// Model is the minimal interface the relay requires to drive generation.
// Generate returns a finite, non-restartable fragment stream plus an error
// channel; any transport, authentication or malformed-response condition
// surfaces as a single error. Both channels are closed when generation ends.
type Model interface {
	Generate(ctx context.Context, req Request) (<-chan Response, <-chan error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
type MockModel struct {
	info      Info
	responses map[string]string
}

// NewMockModel constructs a MockModel.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Generate implements Model; emits optional streaming char fragments then a
// terminal fragment.
func (m *MockModel) Generate(ctx context.Context, req Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(respCh)
		defer close(errCh)
		if len(req.Messages) == 0 {
			errCh <- fmt.Errorf("no messages provided")
			return
		}
		last := req.Messages[len(req.Messages)-1]
		full := m.responses[last.Content]
		if full == "" {
			full = fmt.Sprintf("Mock response to: %s", last.Content)
		}
		if req.Stream {
			for _, r := range full {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case respCh <- Response{Text: string(r), Partial: true}:
				}
			}
			respCh <- Response{Partial: false, FinishReason: "stop"}
			return
		}
		respCh <- Response{Text: full, Partial: false, FinishReason: "stop"}
	}()
	return respCh, errCh
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }

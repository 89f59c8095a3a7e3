package model

import (
	"context"
	"strings"
	"testing"

	"github.com/krishnasingh-28/chatbot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, respCh <-chan Response, errCh <-chan error) (string, error) {
	t.Helper()
	var b strings.Builder
	for respCh != nil || errCh != nil {
		select {
		case r, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			b.WriteString(r.Text)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				return b.String(), err
			}
		}
	}
	return b.String(), nil
}

func TestMockModel_StreamingFragmentsConcatenate(t *testing.T) {
	m := NewMockModel("test", "mock")
	m.AddResponse("hi", "Hello there")

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{core.NewUserMessage("hi")},
		Stream:   true,
	})

	text, err := collect(t, respCh, errCh)
	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)
}

func TestMockModel_NonStreamingSingleFragment(t *testing.T) {
	m := NewMockModel("test", "mock")

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{core.NewUserMessage("unknown prompt")},
	})

	text, err := collect(t, respCh, errCh)
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: unknown prompt", text)
}

func TestMockModel_EmptyRequestFails(t *testing.T) {
	m := NewMockModel("test", "mock")

	respCh, errCh := m.Generate(context.Background(), Request{})

	_, err := collect(t, respCh, errCh)
	assert.Error(t, err)
}

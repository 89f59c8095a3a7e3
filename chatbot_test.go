package chatbot

import (
	"context"
	"testing"

	"github.com/krishnasingh-28/chatbot/model"
	"github.com/krishnasingh-28/chatbot/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbot_DefaultsAreUsable(t *testing.T) {
	bot := New()

	reply, err := bot.Submit(context.Background(), "s1", "", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)

	history, err := bot.History("s1")
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestChatbot_CustomSystemPromptAndModel(t *testing.T) {
	mock := model.NewMockModel("m", "mock")
	mock.AddResponse("ping", "pong")

	bot := New(func(o *Options) {
		o.Model = mock
		o.SystemPrompt = "Answer with one word."
	})

	reply, err := bot.Submit(context.Background(), "s1", "", "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", reply)

	history, err := bot.History("s1")
	require.NoError(t, err)
	assert.Equal(t, "Answer with one word.", history[0].Content)
}

func TestChatbot_EndBlocksFurtherTurns(t *testing.T) {
	bot := New()

	_, err := bot.Submit(context.Background(), "s1", "", "hello")
	require.NoError(t, err)
	require.NoError(t, bot.End("s1"))

	_, err = bot.Submit(context.Background(), "s1", "", "still there?")
	assert.ErrorIs(t, err, relay.ErrConversationClosed)
}

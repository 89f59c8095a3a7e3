package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGroq, cfg.Provider)
	assert.Empty(t, cfg.Model, "provider default applies when LLM_MODEL is unset")
	assert.Equal(t, float64(1), cfg.Temperature)
	assert.Equal(t, int64(1024), cfg.MaxTokens)
	assert.Equal(t, float64(1), cfg.TopP)
	assert.Equal(t, "You are a useful AI assistant.", cfg.SystemPrompt)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestLoad_MissingCredentialIsFatal(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestLoad_AnthropicProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")

	_, err := Load()
	require.Error(t, err, "anthropic provider needs its own credential")

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "acme")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM_PROVIDER")
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

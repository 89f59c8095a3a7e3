// Package config loads service configuration from the process environment.
// A missing provider credential is a fatal startup condition, not a
// per-request error.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	// Provider selection + credentials
	Provider        string `env:"LLM_PROVIDER" envDefault:"groq"`
	GroqAPIKey      string `env:"GROQ_API_KEY"`
	GroqBaseURL     string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// Generation parameters. Model falls back to the selected provider's
	// default (e.g. llama-3.1-8b-instant for groq) when unset.
	Model       string  `env:"LLM_MODEL"`
	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"1"`
	MaxTokens   int64   `env:"LLM_MAX_TOKENS" envDefault:"1024"`
	TopP        float64 `env:"LLM_TOP_P" envDefault:"1"`

	// Conversation seeding
	SystemPrompt string `env:"SYSTEM_PROMPT" envDefault:"You are a useful AI assistant."`

	// Server
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8000"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses and validates configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the provider-dependent credential requirement.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGroq:
		if c.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when LLM_PROVIDER=%s", ProviderGroq)
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER=%s", ProviderAnthropic)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Command chatbotd runs the chat relay service: a single HTTP endpoint that
// forwards conversation history to a completion provider and returns the
// buffered reply.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/krishnasingh-28/chatbot"
	"github.com/krishnasingh-28/chatbot/api"
	"github.com/krishnasingh-28/chatbot/config"
	"github.com/krishnasingh-28/chatbot/logging"
	"github.com/krishnasingh-28/chatbot/model"
	anthropicmodel "github.com/krishnasingh-28/chatbot/model/anthropic"
	"github.com/krishnasingh-28/chatbot/model/groq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, false)

	mdl, err := buildModel(cfg)
	if err != nil {
		logger.Error("failed to build completion model", "error", err)
		os.Exit(1)
	}

	bot := chatbot.New(func(o *chatbot.Options) {
		o.Model = mdl
		o.SystemPrompt = cfg.SystemPrompt
		o.Logger = logger.WithComponent("relay")
	})

	server := api.NewServer(bot.Relay(), func(o *api.Options) {
		o.Logger = logger.WithComponent("api")
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("chat relay listening",
			"addr", cfg.Addr(),
			"provider", mdl.Info().Provider,
			"model", mdl.Info().Name)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}

// buildModel selects the completion provider from configuration.
func buildModel(cfg *config.Config) (model.Model, error) {
	switch cfg.Provider {
	case config.ProviderGroq:
		return groq.NewModel(func(o *groq.Options) {
			o.APIKey = cfg.GroqAPIKey
			o.BaseURL = cfg.GroqBaseURL
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			o.Temperature = cfg.Temperature
			o.MaxTokens = cfg.MaxTokens
			o.TopP = cfg.TopP
		}), nil
	case config.ProviderAnthropic:
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			o.APIKey = cfg.AnthropicAPIKey
			if cfg.Model != "" {
				o.Model = anthropic.Model(cfg.Model)
			}
			o.Temperature = cfg.Temperature
			o.MaxTokens = cfg.MaxTokens
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

package openai

import (
	"context"
	"log/slog"

	"github.com/maddiravi/academia-analyzer-agent/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Completer implements ai.Completer using OpenAI-compatible chat APIs.
type Completer struct {
	client llms.Model
	logger *slog.Logger
}

// newCompleter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newCompleter(config *ai.Config) (*Completer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat completions
	client, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Completer{
		client: client,
		logger: slog.Default().With("component", "openai-completer"),
	}, nil
}

// NewCompleter creates a new completion service using the provided configuration.
//
// Returns ai.Completer interface to enforce abstraction.
func NewCompleter(config *ai.Config) (ai.Completer, error) {
	return newCompleter(config)
}

// Complete sends a single prompt to the chat model and returns the raw
// response text. It issues exactly one request; retrying is left to callers
// that want it.
func (c *Completer) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	c.logger.Debug("requesting completion", "promptLength", len(prompt), "temperature", temperature)

	response, err := llms.GenerateFromSinglePrompt(ctx, c.client, prompt,
		llms.WithTemperature(temperature))
	if err != nil {
		c.logger.Error("completion request failed", "err", err)
		return "", err
	}

	return response, nil
}

package ai

import (
	"errors"
	"strings"
)

// ErrAPIKeyRequired is returned when no API credential is configured.
// Callers must treat this as a startup-time fatal condition and check it
// before any pipeline is invoked.
var ErrAPIKeyRequired = errors.New("ai config: APIKey is required")

// Config holds configuration for AI service providers.
type Config struct {
	// BaseURL is the base URL of the OpenAI-compatible API endpoint.
	// Example: "https://openrouter.ai/api/v1"
	BaseURL string

	// APIKey authenticates requests against the provider. Required.
	APIKey string

	// ChatModel is the model identifier used for completions.
	// Example: "openai/gpt-3.5-turbo"
	ChatModel string

	// EmbeddingModel is the model identifier used for text embeddings.
	// Example: "text-embedding-3-small"
	EmbeddingModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBaseURL sets the API endpoint base URL.
func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithAPIKey sets the API credential.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithChatModel sets the completion model identifier.
func WithChatModel(model string) ConfigOption {
	return func(c *Config) {
		c.ChatModel = model
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// DefaultConfig returns a Config with defaults for the OpenRouter endpoint.
// The APIKey has no default and must be supplied by the caller.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://openrouter.ai/api/v1",
		ChatModel:      "openai/gpt-3.5-turbo",
		EmbeddingModel: "text-embedding-3-small",
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := NewConfig(
//	    WithAPIKey(key),
//	    WithChatModel("openai/gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the base URL if missing, which is
// required by most OpenAI-compatible APIs (OpenRouter, Ollama, vLLM, etc).
func (c *Config) Normalize() {
	if c.BaseURL != "" && !strings.HasSuffix(c.BaseURL, "/v1") {
		c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
		c.BaseURL = c.BaseURL + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	if c.BaseURL == "" {
		return errors.New("ai config: BaseURL is required")
	}
	if c.ChatModel == "" {
		return errors.New("ai config: ChatModel is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	return nil
}

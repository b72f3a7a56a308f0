package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
	assert.Equal(t, "openai/gpt-3.5-turbo", cfg.ChatModel)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Empty(t, cfg.APIKey)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
		assert.Equal(t, "openai/gpt-3.5-turbo", cfg.ChatModel)
	})

	t.Run("with custom base url", func(t *testing.T) {
		cfg := NewConfig(WithBaseURL("http://localhost:11434/v1"))

		assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithChatModel("openai/gpt-4o-mini"),
			WithEmbeddingModel("embeddinggemma"),
		)

		assert.Equal(t, "openai/gpt-4o-mini", cfg.ChatModel)
		assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	})

	t.Run("with api key", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-or-test"))

		assert.Equal(t, "sk-or-test", cfg.APIKey)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithBaseURL("https://openrouter.ai/api"))
		cfg.Normalize()

		assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
	})

	t.Run("strips trailing slash before adding v1", func(t *testing.T) {
		cfg := NewConfig(WithBaseURL("http://localhost:11434/"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	})

	t.Run("leaves canonical url alone", func(t *testing.T) {
		cfg := NewConfig(WithBaseURL("http://localhost:11434/v1"))
		cfg.Normalize()

		assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-or-test"))

		require.NoError(t, cfg.Validate())
	})

	t.Run("missing api key is fatal", func(t *testing.T) {
		cfg := NewConfig()

		assert.ErrorIs(t, cfg.Validate(), ErrAPIKeyRequired)
	})

	t.Run("missing chat model", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-or-test"), WithChatModel(""))

		assert.Error(t, cfg.Validate())
	})

	t.Run("missing embedding model", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-or-test"), WithEmbeddingModel(""))

		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-or-test"), WithBaseURL("https://openrouter.ai/api"))

		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
	})
}

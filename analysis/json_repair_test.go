package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	t.Run("valid JSON unchanged", func(t *testing.T) {
		in := `{"key": "value", "other": 1}`
		assert.Equal(t, in, repairJSON(in))
	})

	t.Run("fixes missing opening quote on key", func(t *testing.T) {
		in := `{key": "value"}`
		assert.Equal(t, `{"key": "value"}`, repairJSON(in))
	})

	t.Run("fixes missing opening quote after comma", func(t *testing.T) {
		in := `{"a": 1, b": 2}`
		assert.Equal(t, `{"a": 1, "b": 2}`, repairJSON(in))
	})

	t.Run("leaves string values alone", func(t *testing.T) {
		in := `{"a": "text with, comma"}`
		assert.Equal(t, in, repairJSON(in))
	})
}

func TestParseStructured(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("plain JSON", func(t *testing.T) {
		var p payload
		require.NoError(t, parseStructured(`{"name": "x"}`, &p))
		assert.Equal(t, "x", p.Name)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		var p payload
		require.NoError(t, parseStructured("```json\n{\"name\": \"y\"}\n```", &p))
		assert.Equal(t, "y", p.Name)
	})

	t.Run("bare fence", func(t *testing.T) {
		var p payload
		require.NoError(t, parseStructured("```\n{\"name\": \"z\"}\n```", &p))
		assert.Equal(t, "z", p.Name)
	})

	t.Run("non-JSON fails", func(t *testing.T) {
		var p payload
		assert.Error(t, parseStructured("sorry, no", &p))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("short input unchanged", func(t *testing.T) {
		assert.Equal(t, "abc", truncate("abc", 10))
	})

	t.Run("cuts at limit", func(t *testing.T) {
		assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	})

	t.Run("respects rune boundaries", func(t *testing.T) {
		// "héllo" has a two-byte é starting at index 1.
		out := truncate("héllo", 2)
		assert.Equal(t, "h", out)
	})
}

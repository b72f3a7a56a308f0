package ingestion

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distinctWords builds space-separated unique tokens so every window resolves
// to a unique source offset.
func distinctWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	return strings.Join(words, " ")
}

func TestNewSplitter(t *testing.T) {
	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := NewSplitter(0, 0)
		assert.ErrorIs(t, err, ErrInvalidChunking)
	})

	t.Run("rejects negative overlap", func(t *testing.T) {
		_, err := NewSplitter(100, -1)
		assert.ErrorIs(t, err, ErrInvalidChunking)
	})

	t.Run("rejects overlap not smaller than size", func(t *testing.T) {
		_, err := NewSplitter(100, 100)
		assert.ErrorIs(t, err, ErrInvalidChunking)
	})

	t.Run("accepts defaults", func(t *testing.T) {
		s, err := NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}

func TestSplit(t *testing.T) {
	t.Run("small content yields one chunk", func(t *testing.T) {
		s, err := NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
		require.NoError(t, err)

		chunks, err := s.Split("a fifty word document fits easily inside one window")
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, 0, chunks[0].Ordinal)
		assert.Equal(t, 0, chunks[0].Start)
		assert.Equal(t, "a fifty word document fits easily inside one window", chunks[0].Text)
	})

	t.Run("prefers paragraph boundaries", func(t *testing.T) {
		s, err := NewSplitter(100, 20)
		require.NoError(t, err)

		para1 := strings.Repeat("alpha ", 13) + "alpha" // 83 chars
		para2 := strings.Repeat("omega ", 13) + "omega"
		chunks, err := s.Split(para1 + "\n\n" + para2)
		require.NoError(t, err)

		require.Len(t, chunks, 2)
		assert.Equal(t, para1, chunks[0].Text)
		assert.Equal(t, para2, chunks[1].Text)
	})

	t.Run("unbroken text splits with overlap and progress", func(t *testing.T) {
		s, err := NewSplitter(100, 20)
		require.NoError(t, err)

		text := distinctWords(80) // ~480 chars, no paragraph breaks
		chunks, err := s.Split(text)
		require.NoError(t, err)
		require.Greater(t, len(chunks), 1)

		for i, chunk := range chunks {
			assert.Equal(t, i, chunk.Ordinal)
			assert.LessOrEqual(t, len(chunk.Text), 100)
			assert.Equal(t, chunk.Text, text[chunk.Start:chunk.End], "offsets resolve to source")

			if i == 0 {
				continue
			}
			prev := chunks[i-1]
			assert.Greater(t, chunk.Start, prev.Start, "windows progress")
			assert.Less(t, chunk.Start, prev.End, "consecutive windows overlap")
		}

		assert.Equal(t, 0, chunks[0].Start)
		assert.Equal(t, len(text), chunks[len(chunks)-1].End)
	})

	t.Run("default parameters bound the overlap", func(t *testing.T) {
		s, err := NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
		require.NoError(t, err)

		// ~4000 characters with no paragraph breaks.
		text := distinctWords(667)
		chunks, err := s.Split(text)
		require.NoError(t, err)
		require.Greater(t, len(chunks), 1)

		for i := 1; i < len(chunks); i++ {
			prev := chunks[i-1]
			cur := chunks[i]
			assert.Less(t, cur.Start, prev.End, "windows overlap")
			assert.LessOrEqual(t, prev.End-cur.Start, DefaultChunkOverlap,
				"each window starts at most the overlap before the previous window's end")
		}
	})

	t.Run("order matches source", func(t *testing.T) {
		s, err := NewSplitter(60, 10)
		require.NoError(t, err)

		chunks, err := s.Split(distinctWords(40))
		require.NoError(t, err)

		for i := 1; i < len(chunks); i++ {
			assert.Greater(t, chunks[i].Start, chunks[i-1].Start)
		}
	})
}

func TestJoinChunks(t *testing.T) {
	s, err := NewSplitter(100, 20)
	require.NoError(t, err)

	chunks, err := s.Split(distinctWords(50))
	require.NoError(t, err)

	joined := JoinChunks(chunks)
	parts := strings.Split(joined, "\n")
	require.Len(t, parts, len(chunks))
	for i, chunk := range chunks {
		assert.Equal(t, chunk.Text, parts[i])
	}
}

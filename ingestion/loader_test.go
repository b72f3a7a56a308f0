package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoader(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		loader, err := NewLoader(filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, loader)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "doc.docx", "content")
		loader, err := NewLoader(path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Nil(t, loader)
	})

	t.Run("existence checked before extension", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "nope.docx"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("accepts txt md and pdf", func(t *testing.T) {
		for _, name := range []string{"a.txt", "b.md", "c.pdf", "d.TXT"} {
			path := writeFile(t, name, "content")
			loader, err := NewLoader(path)
			assert.NoError(t, err, name)
			assert.NotNil(t, loader, name)
		}
	})
}

func TestLoaderLoad(t *testing.T) {
	t.Run("text file yields single unit", func(t *testing.T) {
		path := writeFile(t, "doc.txt", "line one\nline two")
		loader, err := NewLoader(path)
		require.NoError(t, err)

		docs, err := loader.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "line one\nline two", docs[0].PageContent)
	})

	t.Run("markdown loads as plain text", func(t *testing.T) {
		path := writeFile(t, "doc.md", "# Heading\n\nbody text")
		loader, err := NewLoader(path)
		require.NoError(t, err)

		docs, err := loader.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Contains(t, docs[0].PageContent, "# Heading")
	})
}

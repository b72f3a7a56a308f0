package badger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/maddiravi/academia-analyzer-agent/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCache(t.TempDir(), false)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	ctx := context.Background()
	key := core.IDFromContent("some chunk text")
	vector := []float32{0.1, 0.2, 0.3}

	require.NoError(t, cache.Put(ctx, key, vector))

	got, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, vector, got)
}

func TestCacheMiss(t *testing.T) {
	cache, err := OpenCache("", true)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	got, ok, err := cache.Get(context.Background(), core.IDFromContent("never stored"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCacheOverwrite(t *testing.T) {
	cache, err := OpenCache("", true)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	ctx := context.Background()
	key := core.IDFromContent("chunk")

	require.NoError(t, cache.Put(ctx, key, []float32{1}))
	require.NoError(t, cache.Put(ctx, key, []float32{2}))

	got, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float32{2}, got)
}

func TestCachePersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	ctx := context.Background()
	key := core.IDFromContent("persisted chunk")
	vector := []float32{0.5, -0.5}

	cache, err := OpenCache(dir, false)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, key, vector))
	require.NoError(t, cache.Close())

	reopened, err := OpenCache(dir, false)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	got, ok, err := reopened.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, vector, got)
}

func TestOpenCacheRejectsFilePath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := OpenCache(file, false)
	assert.Error(t, err)
}

package storage

import (
	"context"

	"github.com/maddiravi/academia-analyzer-agent/core"
)

// VectorCache persists embedding vectors keyed by content identity, so that
// repeated analyses of overlapping documents can skip recomputing them.
// A cache is strictly an optimization: retrieval semantics never depend on
// whether a vector came from the cache or from the embedding service.
type VectorCache interface {
	// Get returns the cached vector for key. The second return value is false
	// when the key is absent; that is not an error.
	Get(ctx context.Context, key core.ID) ([]float32, bool, error)

	// Put stores the vector under key, overwriting any previous value.
	Put(ctx context.Context, key core.ID, vector []float32) error

	// Close releases resources held by the cache.
	Close() error
}

package retrieval

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrNoChunks is returned when an index build receives no chunks.
	// No partial index is ever returned.
	ErrNoChunks = errors.New("no chunks to index")
)

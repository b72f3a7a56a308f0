package retrieval

import (
	"context"

	"github.com/maddiravi/academia-analyzer-agent/core"
)

// Retriever returns the chunks most similar to a free-text query, most
// similar first. It is the only surface downstream stages see; the index
// structure behind it stays an implementation detail.
type Retriever interface {
	// Retrieve embeds the query and returns the top-ranked chunks by
	// embedding similarity. Ties are broken by original chunk order.
	Retrieve(ctx context.Context, query string) ([]core.Chunk, error)
}

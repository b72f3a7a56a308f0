package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/maddiravi/academia-analyzer-agent/ai"
	"github.com/maddiravi/academia-analyzer-agent/core"
	"github.com/maddiravi/academia-analyzer-agent/storage"
)

// DefaultTopK is the number of chunks returned per query.
const DefaultTopK = 4

// Index is an in-memory nearest-neighbor structure over embedded chunks.
// Vectors are unit-normalized at build time so similarity reduces to a dot
// product. An Index is immutable after BuildIndex returns and safe for
// concurrent queries.
type Index struct {
	embedder   ai.Embedder
	chunks     []core.Chunk
	vectors    [][]float32
	topK       int
	cache      storage.VectorCache // optional; consulted only during the build
	cacheModel string
	logger     *slog.Logger
}

var _ Retriever = (*Index)(nil)

// Option configures index construction.
type Option func(*Index)

// WithTopK sets the number of chunks returned per query.
// Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(idx *Index) {
		if k > 0 {
			idx.topK = k
		}
	}
}

// WithCache consults a persistent vector cache before embedding each chunk.
// Keys combine the embedding model identifier with the chunk content, so
// switching models never serves stale vectors.
func WithCache(cache storage.VectorCache, model string) Option {
	return func(idx *Index) {
		idx.cache = cache
		idx.cacheModel = model
	}
}

// BuildIndex embeds every chunk and builds a similarity-search structure over
// them. An empty chunk sequence or an embedding failure fails the whole
// build; no partial index is returned.
func BuildIndex(ctx context.Context, embedder ai.Embedder, chunks []core.Chunk, opts ...Option) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}

	idx := &Index{
		embedder: embedder,
		chunks:   chunks,
		topK:     DefaultTopK,
		logger:   slog.Default().With("component", "index"),
	}
	for _, opt := range opts {
		opt(idx)
	}

	vectors, err := idx.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	for i := range vectors {
		vectors[i] = normalize(vectors[i])
	}
	idx.vectors = vectors

	idx.logger.Debug("index built", "chunks", len(chunks))
	return idx, nil
}

func (idx *Index) cacheKey(text string) core.ID {
	return core.IDFromContent(idx.cacheModel + "\x00" + text)
}

// embedChunks returns one vector per chunk, consulting the cache when one is
// configured and batch-embedding only the misses.
func (idx *Index) embedChunks(ctx context.Context, chunks []core.Chunk) ([][]float32, error) {
	if idx.cache == nil {
		texts := make([]string, len(chunks))
		for i, chunk := range chunks {
			texts[i] = chunk.Text
		}
		return idx.embedder.EmbedTexts(ctx, texts)
	}

	vectors := make([][]float32, len(chunks))
	var missTexts []string
	var missAt []int
	for i, chunk := range chunks {
		vector, ok, err := idx.cache.Get(ctx, idx.cacheKey(chunk.Text))
		if err != nil {
			return nil, fmt.Errorf("reading vector cache: %w", err)
		}
		if ok {
			vectors[i] = vector
			continue
		}
		missTexts = append(missTexts, chunk.Text)
		missAt = append(missAt, i)
	}

	idx.logger.Debug("vector cache consulted",
		"hits", len(chunks)-len(missTexts),
		"misses", len(missTexts))

	if len(missTexts) == 0 {
		return vectors, nil
	}

	embedded, err := idx.embedder.EmbedTexts(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(missTexts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(embedded), len(missTexts))
	}

	for j, vector := range embedded {
		i := missAt[j]
		vectors[i] = vector
		if err := idx.cache.Put(ctx, idx.cacheKey(chunks[i].Text), vector); err != nil {
			// A write failure degrades the cache, not the build.
			idx.logger.Warn("failed to write vector cache", "err", err)
		}
	}

	return vectors, nil
}

// Retrieve embeds the query and returns up to topK chunks ranked by cosine
// similarity, most similar first. Equal scores preserve original chunk order.
func (idx *Index) Retrieve(ctx context.Context, query string) ([]core.Chunk, error) {
	queryVector, err := idx.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	queryVector = normalize(queryVector)

	order := make([]int, len(idx.vectors))
	scores := make([]float32, len(idx.vectors))
	for i, vector := range idx.vectors {
		order[i] = i
		scores[i] = dot(vector, queryVector)
	}

	// Stable sort keeps document order for equal scores.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	k := idx.topK
	if k > len(order) {
		k = len(order)
	}

	results := make([]core.Chunk, 0, k)
	for _, i := range order[:k] {
		results = append(results, idx.chunks[i])
	}
	return results, nil
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func normalize(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	if sumSquares == 0 {
		return v
	}
	norm := float32(1 / math.Sqrt(sumSquares))
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x * norm
	}
	return out
}

package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maddiravi/academia-analyzer-agent/core"
)

// Ingestor loads a source document and divides it into overlapping chunks.
// It has no side effects beyond reading the source file.
type Ingestor struct {
	splitter *Splitter
	logger   *slog.Logger
}

// Option configures an Ingestor.
type Option func(*ingestorConfig)

type ingestorConfig struct {
	chunkSize    int
	chunkOverlap int
	logger       *slog.Logger
}

// WithChunking overrides the default window size and overlap.
func WithChunking(chunkSize, chunkOverlap int) Option {
	return func(c *ingestorConfig) {
		c.chunkSize = chunkSize
		c.chunkOverlap = chunkOverlap
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *ingestorConfig) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewIngestor creates an ingestor with the given options.
func NewIngestor(opts ...Option) (*Ingestor, error) {
	cfg := &ingestorConfig{
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
		logger:       slog.Default().With("component", "ingestor"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	splitter, err := NewSplitter(cfg.chunkSize, cfg.chunkOverlap)
	if err != nil {
		return nil, err
	}

	return &Ingestor{
		splitter: splitter,
		logger:   cfg.logger,
	}, nil
}

// LoadAndSplit reads the document at path and divides it into overlapping
// chunks in document order. The returned full text is the chunks rejoined
// with a newline separator, a lossy best-effort reconstruction used by the
// extraction stage.
func (ing *Ingestor) LoadAndSplit(ctx context.Context, path string) ([]core.Chunk, string, error) {
	loader, err := NewLoader(path)
	if err != nil {
		return nil, "", err
	}

	docs, err := loader.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", path, err)
	}

	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(doc.PageContent)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return nil, "", fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}

	chunks, err := ing.splitter.Split(sb.String())
	if err != nil {
		return nil, "", err
	}
	ing.logger.Debug("split document", "path", path, "chunks", len(chunks))

	return chunks, JoinChunks(chunks), nil
}

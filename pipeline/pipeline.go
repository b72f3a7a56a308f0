package pipeline

import (
	"context"
	"log/slog"

	"github.com/maddiravi/academia-analyzer-agent/ai"
	"github.com/maddiravi/academia-analyzer-agent/analysis"
	"github.com/maddiravi/academia-analyzer-agent/core"
	"github.com/maddiravi/academia-analyzer-agent/ingestion"
	"github.com/maddiravi/academia-analyzer-agent/retrieval"
	"github.com/maddiravi/academia-analyzer-agent/storage"
)

// Pipeline drives a document through ingestion, extraction, and synthesis.
// Stages within one run execute sequentially; a Pipeline itself is safe for
// concurrent Run calls.
type Pipeline struct {
	provider   ai.Provider
	ingestor   *ingestion.Ingestor
	extractor  *analysis.Extractor
	topK       int
	cache      storage.VectorCache
	cacheModel string
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*pipelineConfig)

type pipelineConfig struct {
	chunkSize    int
	chunkOverlap int
	topK         int
	cache        storage.VectorCache
	cacheModel   string
	logger       *slog.Logger
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *pipelineConfig) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// WithChunking overrides the default chunk window size and overlap.
func WithChunking(chunkSize, chunkOverlap int) Option {
	return func(c *pipelineConfig) {
		c.chunkSize = chunkSize
		c.chunkOverlap = chunkOverlap
	}
}

// WithTopK sets how many chunks ground the synthesis stage.
func WithTopK(k int) Option {
	return func(c *pipelineConfig) {
		if k > 0 {
			c.topK = k
		}
	}
}

// WithVectorCache reuses previously computed chunk embeddings across runs.
// The model identifier keys the cache so a model switch never serves stale
// vectors.
func WithVectorCache(cache storage.VectorCache, model string) Option {
	return func(c *pipelineConfig) {
		c.cache = cache
		c.cacheModel = model
	}
}

// New creates a pipeline backed by the given AI provider.
func New(provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	cfg := &pipelineConfig{
		chunkSize:    ingestion.DefaultChunkSize,
		chunkOverlap: ingestion.DefaultChunkOverlap,
		topK:         retrieval.DefaultTopK,
		logger:       slog.Default().With("component", "pipeline"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ingestor, err := ingestion.NewIngestor(
		ingestion.WithChunking(cfg.chunkSize, cfg.chunkOverlap),
		ingestion.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	extractor, err := analysis.NewExtractor(provider.Completer())
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		provider:   provider,
		ingestor:   ingestor,
		extractor:  extractor,
		topK:       cfg.topK,
		cache:      cfg.cache,
		cacheModel: cfg.cacheModel,
		logger:     cfg.logger,
	}, nil
}

// runState carries the intermediate products of one run between stages.
type runState struct {
	chunks    []core.Chunk
	fullText  string
	retriever retrieval.Retriever
}

// Run analyzes the document at path and returns the complete outcome. It
// never returns an error value; every failure mode is recorded in the Result
// so callers see partial progress. Ingestion and indexing failures are
// run-fatal and skip the analysis stages; an extraction failure is recorded
// but synthesis still runs grounded in the retrieved context alone.
func (p *Pipeline) Run(ctx context.Context, path string) *Result {
	result := &Result{Path: path, Phase: PhaseInit}
	state := &runState{}

	p.runIngestion(ctx, path, result, state)
	p.runExtraction(ctx, result, state)
	p.runSynthesis(ctx, result, state)

	p.logger.Info("run finished",
		"path", path,
		"phase", result.Phase.String(),
		"ingestion", result.Ingestion.String(),
		"extraction", result.Extraction.String(),
		"synthesis", result.Synthesis.String())
	return result
}

// runIngestion loads and splits the document, then embeds the chunks into a
// similarity index. Either failure is run-fatal.
func (p *Pipeline) runIngestion(ctx context.Context, path string, result *Result, state *runState) {
	chunks, fullText, err := p.ingestor.LoadAndSplit(ctx, path)
	if err != nil {
		p.logger.Error("ingestion failed", "path", path, "err", err)
		result.Err = err
		result.Phase = PhaseFailed
		result.Ingestion = StatusFailed
		return
	}
	state.chunks = chunks
	state.fullText = fullText
	result.ChunkCount = len(chunks)
	result.Ingestion = StatusOK
	result.Phase = PhaseIngested

	opts := []retrieval.Option{retrieval.WithTopK(p.topK)}
	if p.cache != nil {
		opts = append(opts, retrieval.WithCache(p.cache, p.cacheModel))
	}
	index, err := retrieval.BuildIndex(ctx, p.provider.Embedder(), chunks, opts...)
	if err != nil {
		p.logger.Error("indexing failed", "path", path, "err", err)
		result.Err = err
		result.Phase = PhaseFailed
		result.Ingestion = StatusFailed
		return
	}
	state.retriever = index
}

// runExtraction asks the model for the thesis record. A failure here does not
// stop the run; synthesis can still produce a grounded summary.
func (p *Pipeline) runExtraction(ctx context.Context, result *Result, state *runState) {
	if result.Err != nil || state.fullText == "" {
		result.Extraction = StatusSkipped
		return
	}

	thesis, err := p.extractor.Extract(ctx, state.fullText)
	result.Phase = PhaseExtracted
	if err != nil {
		p.logger.Warn("extraction failed, continuing to synthesis", "err", err)
		result.ThesisErr = err
		result.Extraction = StatusFailed
		return
	}
	result.Thesis = thesis
	result.Extraction = StatusOK
}

func (p *Pipeline) runSynthesis(ctx context.Context, result *Result, state *runState) {
	if result.Err != nil || state.retriever == nil {
		result.Synthesis = StatusSkipped
		return
	}

	synthesizer, err := analysis.NewSynthesizer(p.provider.Completer(), state.retriever)
	if err != nil {
		result.SummaryErr = err
		result.Synthesis = StatusFailed
		return
	}

	summary, err := synthesizer.Synthesize(ctx, result.Thesis)
	result.Phase = PhaseSynthesized
	if err != nil {
		p.logger.Warn("synthesis failed", "err", err)
		result.SummaryErr = err
		result.Synthesis = StatusFailed
		return
	}
	result.Summary = summary
	result.Synthesis = StatusOK
}

package analysis

import (
	"context"
	"log/slog"

	"github.com/maddiravi/academia-analyzer-agent/ai"
	"github.com/maddiravi/academia-analyzer-agent/core"
)

const (
	// maxExtractionChars bounds the document prefix sent to the model so the
	// prompt stays inside the model's context budget. The cut is a raw
	// character count, not token-aware, and may land mid-sentence.
	maxExtractionChars = 5000

	// extractionTemperature favors determinism over creativity for factual
	// extraction.
	extractionTemperature = 0.1
)

// Extractor asks a language model for the structured thesis data of a paper.
type Extractor struct {
	completer ai.Completer
	maxChars  int
	logger    *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxInputChars overrides the truncation budget.
func WithMaxInputChars(max int) ExtractorOption {
	return func(e *Extractor) {
		if max > 0 {
			e.maxChars = max
		}
	}
}

// NewExtractor creates a thesis extractor backed by the given completion
// service.
func NewExtractor(completer ai.Completer, opts ...ExtractorOption) (*Extractor, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}

	e := &Extractor{
		completer: completer,
		maxChars:  maxExtractionChars,
		logger:    slog.Default().With("component", "extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract issues exactly one structured-output request over a deterministic
// prefix of fullText and parses the response into a Thesis. On any request,
// parse, or validation failure it returns an *ExtractionError carrying the
// truncated input; it never retries and never returns a partially filled
// record.
func (e *Extractor) Extract(ctx context.Context, fullText string) (*core.Thesis, error) {
	content := truncate(fullText, e.maxChars)
	e.logger.Debug("extracting thesis data", "inputLength", len(content), "truncated", len(content) < len(fullText))

	response, err := e.completer.Complete(ctx, buildExtractionPrompt(content), extractionTemperature)
	if err != nil {
		e.logger.Error("thesis extraction request failed", "err", err)
		return nil, &ExtractionError{Input: content, Err: err}
	}

	var thesis core.Thesis
	if err := parseStructured(response, &thesis); err != nil {
		e.logger.Warn("thesis response is not valid JSON", "err", err)
		return nil, &ExtractionError{Input: content, Err: err}
	}
	if err := thesis.Validate(); err != nil {
		e.logger.Warn("thesis response failed validation", "err", err)
		return nil, &ExtractionError{Input: content, Err: err}
	}

	return &thesis, nil
}

package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/maddiravi/academia-analyzer-agent/ai"
	"github.com/maddiravi/academia-analyzer-agent/core"
	"github.com/maddiravi/academia-analyzer-agent/retrieval"
)

const (
	// synthesisQuery is the fixed retrieval query that selects grounding
	// passages for the summary.
	synthesisQuery = "synthesize the main argument, methodology, and key results of the document"

	// contextSeparator joins retrieved passages in the prompt context.
	contextSeparator = "\n---\n"

	// synthesisTemperature trades some determinism for fluency; synthesis
	// runs warmer than extraction.
	synthesisTemperature = 0.3
)

// Synthesizer generates the final structured summary of a paper, grounded in
// passages retrieved from the document index.
type Synthesizer struct {
	completer ai.Completer
	retriever retrieval.Retriever
	logger    *slog.Logger
}

// NewSynthesizer creates a synthesizer bound to a retriever. Both the
// completion service and the retriever are required; a nil retriever fails
// closed here rather than producing an ungrounded summary later.
func NewSynthesizer(completer ai.Completer, retriever retrieval.Retriever) (*Synthesizer, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}

	return &Synthesizer{
		completer: completer,
		retriever: retriever,
		logger:    slog.Default().With("component", "synthesizer"),
	}, nil
}

// Synthesize retrieves grounding context with the fixed synthesis query,
// issues exactly one structured-output request embedding the thesis data and
// the retrieved passages, and parses the response into a Summary. Failures
// return a *SynthesisError; there is no retry. The thesis may be nil when the
// extraction stage failed; synthesis then relies on the retrieved context
// alone.
func (s *Synthesizer) Synthesize(ctx context.Context, thesis *core.Thesis) (*core.Summary, error) {
	retrieved, err := s.retriever.Retrieve(ctx, synthesisQuery)
	if err != nil {
		s.logger.Error("grounding retrieval failed", "err", err)
		return nil, &SynthesisError{Err: err}
	}

	parts := make([]string, len(retrieved))
	for i, chunk := range retrieved {
		parts[i] = chunk.Text
	}
	retrievedContext := strings.Join(parts, contextSeparator)
	s.logger.Debug("retrieved grounding context", "passages", len(retrieved), "contextLength", len(retrievedContext))

	thesisJSON := []byte("{}")
	if thesis != nil {
		thesisJSON, err = json.Marshal(thesis)
		if err != nil {
			return nil, &SynthesisError{Err: err}
		}
	}

	response, err := s.completer.Complete(ctx,
		buildSynthesisPrompt(string(thesisJSON), retrievedContext), synthesisTemperature)
	if err != nil {
		s.logger.Error("synthesis request failed", "err", err)
		return nil, &SynthesisError{Err: err}
	}

	var summary core.Summary
	if err := parseStructured(response, &summary); err != nil {
		s.logger.Warn("summary response is not valid JSON", "err", err)
		return nil, &SynthesisError{Err: err}
	}
	if err := summary.Validate(); err != nil {
		s.logger.Warn("summary response failed validation", "err", err)
		return nil, &SynthesisError{Err: err}
	}

	return &summary, nil
}

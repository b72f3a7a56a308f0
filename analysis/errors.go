package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrCompleterRequired is returned when a completion service is not provided.
	ErrCompleterRequired = errors.New("completer required")

	// ErrRetrieverRequired is returned when a synthesizer is constructed
	// without a bound retriever. Synthesis fails closed rather than running
	// ungrounded.
	ErrRetrieverRequired = errors.New("retriever required")
)

// ExtractionError reports a failed thesis extraction. It carries the
// truncated input that was sent to the model for diagnostics.
type ExtractionError struct {
	Input string // the truncated document prefix sent to the model
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("thesis extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SynthesisError reports a failed summary synthesis.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("summary synthesis failed: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

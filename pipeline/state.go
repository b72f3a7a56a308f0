package pipeline

import "github.com/maddiravi/academia-analyzer-agent/core"

// Phase marks how far a run progressed. Phases advance monotonically; a run
// that fails during ingestion stays at PhaseFailed and later stages never
// execute.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseIngested
	PhaseExtracted
	PhaseSynthesized
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseIngested:
		return "ingested"
	case PhaseExtracted:
		return "extracted"
	case PhaseSynthesized:
		return "synthesized"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status records the outcome of one stage. A skipped stage never ran; its
// output and error are both absent.
type Status int

const (
	StatusOK Status = iota
	StatusSkipped
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the complete outcome of one pipeline run. Stage errors are kept
// separate so a failed extraction still leaves a usable summary and vice
// versa; Err is set only for run-fatal failures (ingestion or indexing).
type Result struct {
	Path       string
	Phase      Phase
	ChunkCount int

	// Err is the run-fatal error, set when the document never became
	// analyzable. When Err is non-nil the analysis stages were skipped.
	Err error

	Thesis    *core.Thesis
	ThesisErr error

	Summary    *core.Summary
	SummaryErr error

	Ingestion  Status
	Extraction Status
	Synthesis  Status
}

// Package analysis holds the two language-model stages of the pipeline.
//
// The Extractor sends a truncated document prefix to the model at low
// temperature and parses the structured thesis data out of the response. The
// Synthesizer retrieves grounding passages through a bound Retriever and asks
// the model, slightly warmer, for the final structured summary. Both stages
// issue exactly one request, parse-or-fail with no retry, and never return
// partially filled records.
package analysis

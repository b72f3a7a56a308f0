// Package pipeline orchestrates the three analysis stages over a single
// document: ingest and chunk the source file, extract the structured thesis
// record, and synthesize the final summary grounded in retrieved passages.
//
// A run never aborts with a bare error. Ingestion or indexing failures mark
// the run failed and skip the model stages; an extraction failure is recorded
// in the result while synthesis still runs. Callers inspect the Result to see
// exactly which stages produced output.
package pipeline

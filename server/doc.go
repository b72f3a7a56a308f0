// Package server exposes the analysis pipeline over HTTP. A single upload
// endpoint accepts a document, runs the full pipeline on a bounded worker
// pool, and returns the structured outcome including any per-stage errors.
package server

// Package ingestion turns a source document into retrieval-ready chunks.
//
// The Loader reads a file by extension (.pdf, .txt, .md) into raw text units;
// the Splitter divides the text into overlapping fixed-size windows that
// prefer paragraph boundaries; the Ingestor ties both together and reports
// the rejoined full text alongside the chunk sequence. Missing files and
// unrecognized extensions fail before any content is read.
package ingestion

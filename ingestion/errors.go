package ingestion

import "errors"

var (
	// ErrNotFound is returned when the source path does not exist.
	// It is raised before any file content is read.
	ErrNotFound = errors.New("document not found")

	// ErrUnsupportedFormat is returned when the source file carries an
	// unrecognized extension. It is raised before any file content is read.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrInvalidChunking is returned when the splitter is configured with a
	// non-positive chunk size or an overlap that is not smaller than the
	// chunk size.
	ErrInvalidChunking = errors.New("invalid chunking parameters")

	// ErrEmptyDocument is returned when a loaded document contains no text.
	ErrEmptyDocument = errors.New("document contains no text")
)

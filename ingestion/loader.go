package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

// Loader reads a source document into raw text units, routing by file
// extension: .pdf to the PDF loader, .txt and .md to the plain text loader.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a loader for the document at path. The file must exist
// and carry a recognized extension; both conditions are checked up front,
// before any file content is read.
func NewLoader(path string) (*Loader, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf", ".txt", ".md":
	default:
		return nil, fmt.Errorf("%w: %q (only .pdf, .txt or .md supported)", ErrUnsupportedFormat, ext)
	}

	return &Loader{
		path:   path,
		logger: slog.Default().With("component", "loader"),
	}, nil
}

// Load reads the document and returns its raw text units. PDF documents yield
// one unit per page; plain text documents yield a single unit. The source file
// is only read, never mutated.
func (l *Loader) Load(ctx context.Context) ([]schema.Document, error) {
	l.logger.Debug("loading document", "path", l.path)

	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".pdf":
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		return documentloaders.NewPDF(f, info.Size()).Load(ctx)
	default: // .txt, .md
		return documentloaders.NewText(f).Load(ctx)
	}
}

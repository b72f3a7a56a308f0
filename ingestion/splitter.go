package ingestion

import (
	"fmt"
	"strings"

	"github.com/maddiravi/academia-analyzer-agent/core"
	"github.com/tmc/langchaingo/textsplitter"
)

const (
	// DefaultChunkSize and DefaultChunkOverlap are tuned for academic text
	// density.
	DefaultChunkSize    = 1500
	DefaultChunkOverlap = 250

	// chunkJoinSeparator rejoins windows into the full text handed to the
	// extraction stage.
	chunkJoinSeparator = "\n"
)

// windowSeparators is the boundary preference order: paragraph, line, space,
// hard character cut.
var windowSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter divides raw text into overlapping fixed-size windows that prefer
// to break at paragraph boundaries, falling back to line, space, and finally
// hard character boundaries.
type Splitter struct {
	splitter textsplitter.TextSplitter
}

// NewSplitter creates a splitter producing windows of at most chunkSize
// characters with chunkOverlap characters of overlap between consecutive
// windows. The overlap must be smaller than the window size so the sequence
// always progresses.
func NewSplitter(chunkSize, chunkOverlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrInvalidChunking, chunkSize)
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be non-negative and smaller than chunk size %d",
			ErrInvalidChunking, chunkOverlap, chunkSize)
	}

	ts := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
		textsplitter.WithSeparators(windowSeparators),
	)

	return &Splitter{splitter: ts}, nil
}

// Split divides text into ordered chunks annotated with best-effort source
// offsets. Chunk order always matches document order.
func (s *Splitter) Split(text string) ([]core.Chunk, error) {
	pieces, err := s.splitter.SplitText(text)
	if err != nil {
		return nil, err
	}

	chunks := make([]core.Chunk, 0, len(pieces))
	searchFrom := 0
	for i, piece := range pieces {
		// The splitter trims separators, so locate each window in the source
		// starting from the previous window's position. Offsets are
		// best-effort when a window does not appear verbatim.
		start := strings.Index(text[searchFrom:], piece)
		if start < 0 {
			start = 0
		}
		start += searchFrom

		chunks = append(chunks, core.Chunk{
			Ordinal: i,
			Text:    piece,
			Start:   start,
			End:     start + len(piece),
		})

		if start+1 > searchFrom {
			searchFrom = start + 1
		}
	}

	return chunks, nil
}

// JoinChunks rejoins windows with a single separator. Because consecutive
// windows overlap, the result is a lossy, best-effort reconstruction of the
// original document; callers must not assume byte-exact round-tripping.
func JoinChunks(chunks []core.Chunk) string {
	parts := make([]string, len(chunks))
	for i, chunk := range chunks {
		parts[i] = chunk.Text
	}
	return strings.Join(parts, chunkJoinSeparator)
}

package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a deterministic identifier derived from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID, which makes IDs usable as
// content-addressed cache keys.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Chunk is a bounded contiguous span of source text used as a retrieval and
// embedding unit. Chunks are ordered by Ordinal, matching document order.
type Chunk struct {
	Ordinal int    // position in document order, starting at 0
	Text    string // the window's text content
	Start   int    // best-effort byte offset of the window in the source text
	End     int    // best-effort byte offset one past the window's last byte
}

// ID returns the content-derived identifier of the chunk text.
func (c *Chunk) ID() ID {
	return IDFromContent(c.Text)
}

// Thesis holds the structured data extracted from a paper: the central claim,
// the methods used, and the single most important result. A Thesis is only
// valid as a whole; partially filled records are rejected by Validate.
type Thesis struct {
	Hypothesis          string   `json:"primary_hypothesis"`
	MethodologyKeywords []string `json:"methodology_keywords"`
	KeyFindings         string   `json:"key_findings"`
}

// Summary holds the final structured synthesis of a paper.
type Summary struct {
	Title            string   `json:"novel_title"`
	ExecutiveSummary string   `json:"executive_summary"`
	DiscussionPoints []string `json:"discussion_points"`
}

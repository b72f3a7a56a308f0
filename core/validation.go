package core

import (
	"fmt"
	"strings"
)

const (
	// MinMethodologyKeywords and MaxMethodologyKeywords bound the keyword list
	// of a valid Thesis.
	MinMethodologyKeywords = 5
	MaxMethodologyKeywords = 7

	// MinDiscussionPoints and MaxDiscussionPoints bound the discussion point
	// list of a valid Summary.
	MinDiscussionPoints = 3
	MaxDiscussionPoints = 5
)

// Validate checks that the thesis is complete. Model output that leaves any
// field empty or out of bounds invalidates the whole record; callers never see
// a partially filled Thesis.
func (t *Thesis) Validate() error {
	if strings.TrimSpace(t.Hypothesis) == "" {
		return fmt.Errorf("%w: empty hypothesis", ErrInvalidThesis)
	}
	if strings.TrimSpace(t.KeyFindings) == "" {
		return fmt.Errorf("%w: empty key findings", ErrInvalidThesis)
	}
	if n := len(t.MethodologyKeywords); n < MinMethodologyKeywords || n > MaxMethodologyKeywords {
		return fmt.Errorf("%w: got %d methodology keywords, want %d-%d",
			ErrInvalidThesis, n, MinMethodologyKeywords, MaxMethodologyKeywords)
	}
	for i, keyword := range t.MethodologyKeywords {
		if strings.TrimSpace(keyword) == "" {
			return fmt.Errorf("%w: empty methodology keyword at index %d", ErrInvalidThesis, i)
		}
	}
	return nil
}

// Validate checks that the summary is complete, mirroring the all-or-nothing
// contract of Thesis.Validate.
func (s *Summary) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidSummary)
	}
	if strings.TrimSpace(s.ExecutiveSummary) == "" {
		return fmt.Errorf("%w: empty executive summary", ErrInvalidSummary)
	}
	if n := len(s.DiscussionPoints); n < MinDiscussionPoints || n > MaxDiscussionPoints {
		return fmt.Errorf("%w: got %d discussion points, want %d-%d",
			ErrInvalidSummary, n, MinDiscussionPoints, MaxDiscussionPoints)
	}
	for i, point := range s.DiscussionPoints {
		if strings.TrimSpace(point) == "" {
			return fmt.Errorf("%w: empty discussion point at index %d", ErrInvalidSummary, i)
		}
	}
	return nil
}

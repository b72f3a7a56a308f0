package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validThesis() *Thesis {
	return &Thesis{
		Hypothesis:          "Sparse attention preserves accuracy at a fraction of the cost",
		MethodologyKeywords: []string{"transformer", "sparse attention", "ablation study", "perplexity", "distillation"},
		KeyFindings:         "Accuracy within 0.4% of the dense baseline at 38% of the FLOPs",
	}
}

func validSummary() *Summary {
	return &Summary{
		Title:            "Doing More With Less Attention",
		ExecutiveSummary: "The paper shows that sparse attention patterns retain model quality while cutting compute substantially.",
		DiscussionPoints: []string{
			"How does sparsity interact with long-context retrieval?",
			"Whether the gains hold for multilingual corpora",
			"Hardware support for block-sparse kernels",
		},
	}
}

func TestThesisValidate(t *testing.T) {
	t.Run("valid thesis", func(t *testing.T) {
		require.NoError(t, validThesis().Validate())
	})

	t.Run("empty hypothesis", func(t *testing.T) {
		thesis := validThesis()
		thesis.Hypothesis = "  "
		assert.ErrorIs(t, thesis.Validate(), ErrInvalidThesis)
	})

	t.Run("empty key findings", func(t *testing.T) {
		thesis := validThesis()
		thesis.KeyFindings = ""
		assert.ErrorIs(t, thesis.Validate(), ErrInvalidThesis)
	})

	t.Run("too few keywords", func(t *testing.T) {
		thesis := validThesis()
		thesis.MethodologyKeywords = thesis.MethodologyKeywords[:3]
		assert.ErrorIs(t, thesis.Validate(), ErrInvalidThesis)
	})

	t.Run("too many keywords", func(t *testing.T) {
		thesis := validThesis()
		thesis.MethodologyKeywords = append(thesis.MethodologyKeywords,
			"benchmark", "pruning", "quantization")
		assert.ErrorIs(t, thesis.Validate(), ErrInvalidThesis)
	})

	t.Run("blank keyword entry", func(t *testing.T) {
		thesis := validThesis()
		thesis.MethodologyKeywords[2] = " "
		assert.ErrorIs(t, thesis.Validate(), ErrInvalidThesis)
	})
}

func TestSummaryValidate(t *testing.T) {
	t.Run("valid summary", func(t *testing.T) {
		require.NoError(t, validSummary().Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		summary := validSummary()
		summary.Title = ""
		assert.ErrorIs(t, summary.Validate(), ErrInvalidSummary)
	})

	t.Run("empty executive summary", func(t *testing.T) {
		summary := validSummary()
		summary.ExecutiveSummary = "\n"
		assert.ErrorIs(t, summary.Validate(), ErrInvalidSummary)
	})

	t.Run("too few discussion points", func(t *testing.T) {
		summary := validSummary()
		summary.DiscussionPoints = summary.DiscussionPoints[:2]
		assert.ErrorIs(t, summary.Validate(), ErrInvalidSummary)
	})

	t.Run("too many discussion points", func(t *testing.T) {
		summary := validSummary()
		summary.DiscussionPoints = append(summary.DiscussionPoints,
			"a", "b", "c")
		assert.ErrorIs(t, summary.Validate(), ErrInvalidSummary)
	})
}

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("same text"), IDFromContent("same text"))
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("one"), IDFromContent("two"))
	})
}

func TestChunkID(t *testing.T) {
	a := &Chunk{Ordinal: 0, Text: "window"}
	b := &Chunk{Ordinal: 7, Text: "window", Start: 100, End: 106}

	// Identity follows content only, not position.
	assert.Equal(t, a.ID(), b.ID())
}

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readalong/alignkit/textnorm"
)

// TestExtractWords verifies index alignment between display and normalized
// forms, including tokens that normalize away entirely.
func TestExtractWords(t *testing.T) {
	tokens := textnorm.ExtractWords(`"Stop!" he said — gonna run.`)
	require.Len(t, tokens, 6)

	assert.Equal(t, `"Stop!"`, tokens[0].Display)
	assert.Equal(t, "stop", tokens[0].Normalized)
	assert.Equal(t, 0, tokens[0].Position)

	assert.Equal(t, "—", tokens[3].Display)
	assert.Equal(t, "", tokens[3].Normalized, "pure punctuation keeps its position with empty normalization")

	assert.Equal(t, "gonna", tokens[4].Display)
	assert.Equal(t, "going to", tokens[4].Normalized, "a display token may normalize to several words")

	assert.Equal(t, 5, tokens[5].Position)
}

// TestExtractWords_Empty verifies the zero-token cases.
func TestExtractWords_Empty(t *testing.T) {
	assert.Empty(t, textnorm.ExtractWords(""))
	assert.Empty(t, textnorm.ExtractWords("   \n\t "))
}

// TestExtractSentences covers terminal runs, trailing fragments and
// punctuation retention.
func TestExtractSentences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			"simple",
			"One sentence. Another one! A third?",
			[]string{"One sentence.", "Another one!", "A third?"},
		},
		{
			"terminal run",
			"Wait... what? Really?!  Yes.",
			[]string{"Wait...", "what?", "Really?!", "Yes."},
		},
		{
			"trailing fragment kept",
			"Finished thought. and a dangling one",
			[]string{"Finished thought.", "and a dangling one"},
		},
		{
			"no terminator",
			"just one fragment",
			[]string{"just one fragment"},
		},
		{
			"empty",
			"",
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textnorm.ExtractSentences(tc.in))
		})
	}
}

// TestSimilarity covers the exact, empty and Jaccard branches.
func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, textnorm.Similarity("Mere Metaphor", "mere metaphor!"), "normalized-equal texts score 1.0")
	assert.Equal(t, 0.0, textnorm.Similarity("words here", ""), "an empty side scores 0.0")
	assert.Equal(t, 1.0, textnorm.Similarity("—", "..."), "both empty after normalization hits the exact branch first")

	// {the,cat,sat} vs {the,cat,ran}: 2 common of 4 distinct.
	assert.InDelta(t, 0.5, textnorm.Similarity("the cat sat", "the cat ran"), 1e-12)
}

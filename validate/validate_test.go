package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readalong/alignkit/align"
	"github.com/readalong/alignkit/validate"
)

// content builds content tokens from display words.
func content(words ...string) []align.ContentToken {
	toks := make([]align.ContentToken, len(words))
	for i, w := range words {
		toks[i] = align.ContentToken{Text: w, Position: i}
	}

	return toks
}

// transcript builds transcript tokens 0.4s apart, a comfortable narration
// pace for the speaking-rate check.
func transcript(words ...string) []align.TranscriptToken {
	toks := make([]align.TranscriptToken, len(words))
	for i, w := range words {
		start := 0.4 * float64(i)
		toks[i] = align.TranscriptToken{Text: w, Start: start, End: start + 0.4, Index: i}
	}

	return toks
}

// TestAlignment_CleanRun verifies that a full-coverage, high-confidence
// alignment earns a valid, Excellent report.
func TestAlignment_CleanRun(t *testing.T) {
	cw := content("it", "was", "the", "best", "of", "times")
	tw := transcript("it", "was", "the", "best", "of", "times")
	res, err := align.Align(cw, tw, nil)
	require.NoError(t, err)

	report := validate.Alignment(res, tw, nil)
	assert.True(t, report.IsValid)
	assert.Equal(t, validate.LabelExcellent, report.Label)
	assert.Equal(t, 100.0, report.Score)
	assert.Equal(t, []string{"no action needed"}, report.Recommendations)
}

// TestAlignment_EmptyTranscription verifies the degraded-not-thrown
// contract: an empty transcription reports coverage errors as data.
func TestAlignment_EmptyTranscription(t *testing.T) {
	cw := content("words", "with", "no", "audio")
	res, err := align.Align(cw, nil, nil)
	require.NoError(t, err, "an empty side is never an error")

	report := validate.Alignment(res, nil, nil)
	assert.False(t, report.IsValid)

	var coverageErrors int
	for _, f := range report.Findings {
		if f.Severity == validate.SeverityError && f.Category == validate.CategoryCoverage {
			coverageErrors++
		}
	}
	assert.Equal(t, 2, coverageErrors, "both sides report a coverage error")
}

// TestAlignment_NoMatches verifies the zero-match report: invalid, scored
// down by accumulated error penalties, labeled Poor.
func TestAlignment_NoMatches(t *testing.T) {
	res := &align.Result{} // empty alignment, zero stats

	report := validate.Alignment(res, nil, nil)
	assert.False(t, report.IsValid)
	assert.Equal(t, validate.LabelPoor, report.Label)
	// Three errors: no matches plus both coverage floors.
	assert.Equal(t, 55.0, report.Score)
	assert.NotEmpty(t, report.Recommendations)
}

// TestAlignment_LowConfidenceShare verifies the low-confidence proportion
// warning with a custom threshold bundle.
func TestAlignment_LowConfidenceShare(t *testing.T) {
	res := &align.Result{
		Edges: []align.Edge{
			{Kind: align.Match, ContentIndex: 0, TranscriptIndex: 0, Confidence: 0.95},
			{Kind: align.Match, ContentIndex: 1, TranscriptIndex: 1, Confidence: 0.65},
			{Kind: align.Match, ContentIndex: 2, TranscriptIndex: 2, Confidence: 0.66},
		},
		Stats: align.Stats{Matches: 3, ContentCoverage: 1, TranscriptCoverage: 1},
	}
	tw := transcript("one", "two", "three")

	th := validate.DefaultThresholds()
	th.MinMeanConfidence = 0.7
	report := validate.Alignment(res, tw, &th)

	var lowShareWarned bool
	for _, f := range report.Findings {
		if f.Severity == validate.SeverityWarning && f.Category == validate.CategoryConfidence {
			lowShareWarned = true
		}
	}
	assert.True(t, lowShareWarned, "two of three matches are low-confidence")
}

// TestAlignment_BackwardsMatches verifies the monotonicity error.
func TestAlignment_BackwardsMatches(t *testing.T) {
	res := &align.Result{
		Edges: []align.Edge{
			{Kind: align.Match, ContentIndex: 0, TranscriptIndex: 2, Confidence: 0.9},
			{Kind: align.Match, ContentIndex: 1, TranscriptIndex: 0, Confidence: 0.9},
			{Kind: align.Match, ContentIndex: 2, TranscriptIndex: 1, Confidence: 0.9},
		},
		Stats: align.Stats{Matches: 3, ContentCoverage: 1, TranscriptCoverage: 1},
	}
	tw := transcript("a", "b", "c")

	report := validate.Alignment(res, tw, nil)
	assert.False(t, report.IsValid)

	var monotonicityError bool
	for _, f := range report.Findings {
		if f.Severity == validate.SeverityError && f.Category == validate.CategoryMonotonicity {
			monotonicityError = true
		}
	}
	assert.True(t, monotonicityError)
}

// TestAlignment_SpeakingRate verifies the rate warning on implausibly slow
// narration.
func TestAlignment_SpeakingRate(t *testing.T) {
	// Two matched words spanning a full minute: 2 wpm.
	tw := []align.TranscriptToken{
		{Text: "first", Start: 0, End: 1, Index: 0},
		{Text: "last", Start: 59, End: 60, Index: 1},
	}
	res := &align.Result{
		Edges: []align.Edge{
			{Kind: align.Match, ContentIndex: 0, TranscriptIndex: 0, Confidence: 1},
			{Kind: align.Match, ContentIndex: 1, TranscriptIndex: 1, Confidence: 1},
		},
		Stats: align.Stats{Matches: 2, ContentCoverage: 1, TranscriptCoverage: 1},
	}

	report := validate.Alignment(res, tw, nil)

	var rateWarned bool
	for _, f := range report.Findings {
		if f.Severity == validate.SeverityWarning && f.Category == validate.CategoryRate {
			rateWarned = true
		}
	}
	assert.True(t, rateWarned, "2 wpm is far outside 120–200")
}

// TestScoreAndLabels pins the score formula through the Words entry point.
func TestScoreAndLabels(t *testing.T) {
	// No findings at all: full score.
	clean := validate.Words(nil, nil)
	assert.Equal(t, 100.0, clean.Score)
	assert.Equal(t, validate.LabelExcellent, clean.Label)
	assert.True(t, clean.IsValid)
}

// TestRender verifies the table rendering carries findings and the label.
func TestRender(t *testing.T) {
	res := &align.Result{}
	report := validate.Alignment(res, nil, nil)

	out := report.Render()
	assert.True(t, strings.Contains(out, "Poor"), "title carries the label")
	assert.True(t, strings.Contains(out, "SEVERITY") || strings.Contains(out, "Severity"))
	assert.True(t, strings.Contains(out, "coverage"))
}

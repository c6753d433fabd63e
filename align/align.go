package align

import (
	"fmt"
	"sort"

	"github.com/readalong/alignkit/similarity"
	"github.com/readalong/alignkit/textnorm"
)

// DP backtrace moves.
const (
	moveDiag byte = iota + 1 // consume one word on each side
	moveUp                   // consume one content word (skip)
	moveLeft                 // consume one transcript word (skip)
)

// Align computes the global alignment of content against transcript under
// the given options. A nil opts aligns with DefaultOptions(Balanced).
//
// Align returns an error only for structurally invalid input or options;
// a poor-quality alignment is reported through confidence and statistics,
// never as an error. Empty inputs yield an empty Result with confidence 0.
//
// The call is deterministic and self-contained: it owns its DP scratch
// memory and holds no state across calls, so independent alignments may
// run concurrently.
func Align(content []ContentToken, transcript []TranscriptToken, opts *Options) (*Result, error) {
	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions(Balanced)
	}
	if o.Weights == (similarity.Weights{}) {
		o.Weights = similarity.DefaultWeights()
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validateTranscript(transcript); err != nil {
		return nil, err
	}

	n, m := len(content), len(transcript)
	result := &Result{}
	if n == 0 || m == 0 {
		return result, nil
	}

	scorer, err := similarity.NewScorer(o.Weights, o.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOptions, err)
	}

	sim := scoreMatrix(content, transcript, scorer)
	moves := fillGrid(sim, n, m, o.SkipPenalty)
	ops := backtrace(moves, n, m)

	result.Edges = emitEdges(ops, sim, &o)
	result.Edges = filterGaps(result.Edges, &o)
	orderMatches(result.Edges)
	result.Stats = summarize(result.Edges, n, m)
	result.Confidence = overallConfidence(result.Edges, result.Stats.Matches)

	return result, nil
}

// validateContent rejects tokens the aligner cannot place.
func validateContent(tokens []ContentToken) error {
	for i, t := range tokens {
		if t.Text == "" {
			return fmt.Errorf("%w: index %d has empty text", ErrBadContentToken, i)
		}
		if t.Position < 0 {
			return fmt.Errorf("%w: index %d has negative position", ErrBadContentToken, i)
		}
	}

	return nil
}

// validateTranscript rejects tokens with missing or inconsistent timing.
// Timestamps must be non-negative, each word's End at or after its Start,
// and word starts non-decreasing across the sequence.
func validateTranscript(tokens []TranscriptToken) error {
	for i, t := range tokens {
		if t.Text == "" {
			return fmt.Errorf("%w: index %d has empty text", ErrBadTranscriptToken, i)
		}
		if t.Index < 0 {
			return fmt.Errorf("%w: index %d has negative original index", ErrBadTranscriptToken, i)
		}
		if t.Start < 0 || t.End < t.Start {
			return fmt.Errorf("%w: index %d has invalid timing [%g, %g]", ErrBadTranscriptToken, i, t.Start, t.End)
		}
		if i > 0 && t.Start < tokens[i-1].Start {
			return fmt.Errorf("%w: index %d starts before its predecessor", ErrBadTranscriptToken, i)
		}
	}

	return nil
}

// scoreMatrix builds the N×M pairwise similarity matrix. Each cell draws
// positional context from its token's own sequence.
func scoreMatrix(content []ContentToken, transcript []TranscriptToken, scorer *similarity.Scorer) [][]float64 {
	aSeq := make([]string, len(content))
	for i, t := range content {
		aSeq[i] = normalized(t.Text, t.Normalized)
	}
	bSeq := make([]string, len(transcript))
	for j, t := range transcript {
		bSeq[j] = normalized(t.Text, t.Normalized)
	}

	sim := make([][]float64, len(aSeq))
	for i := range aSeq {
		sim[i] = make([]float64, len(bSeq))
		for j := range bSeq {
			sim[i][j] = scorer.ScoreAt(aSeq, i, bSeq, j)
		}
	}

	return sim
}

// normalized falls back to textnorm when the caller omitted the field.
func normalized(text, norm string) string {
	if norm != "" {
		return norm
	}

	return textnorm.ForMatching(text)
}

// fillGrid runs the DP over an (N+1)×(M+1) grid and returns the move
// matrix for the backtrace. Score ties resolve diag > up > left so the
// sequences stay synchronized when signals agree.
func fillGrid(sim [][]float64, n, m int, penalty float64) [][]byte {
	dp := make([][]float64, n+1)
	moves := make([][]byte, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		moves[i] = make([]byte, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = -float64(i) * penalty
		moves[i][0] = moveUp
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = -float64(j) * penalty
		moves[0][j] = moveLeft
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diag := dp[i-1][j-1] + sim[i-1][j-1]
			up := dp[i-1][j] - penalty
			left := dp[i][j-1] - penalty
			switch {
			case diag >= up && diag >= left:
				dp[i][j] = diag
				moves[i][j] = moveDiag
			case up >= left:
				dp[i][j] = up
				moves[i][j] = moveUp
			default:
				dp[i][j] = left
				moves[i][j] = moveLeft
			}
		}
	}

	return moves
}

// op is one backtraced alignment step over input positions (i, j).
type op struct {
	move byte
	i, j int
}

// backtrace walks the move matrix from (n,m) to (0,0) and returns the
// operations in original (forward) order.
func backtrace(moves [][]byte, n, m int) []op {
	ops := make([]op, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch moves[i][j] {
		case moveDiag:
			ops = append(ops, op{moveDiag, i - 1, j - 1})
			i--
			j--
		case moveUp:
			ops = append(ops, op{moveUp, i - 1, -1})
			i--
		default:
			ops = append(ops, op{moveLeft, -1, j - 1})
			j--
		}
	}
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}

// emitEdges converts backtraced operations into alignment edges.
//
// An align step below MinConfidence consumes one index on each side, so it
// becomes one SkipContent plus one SkipTranscript edge; dropping it instead
// would leave those indices unaccounted for. Plain skip steps emit edges
// only when the strategy allows skips.
func emitEdges(ops []op, sim [][]float64, o *Options) []Edge {
	edges := make([]Edge, 0, len(ops))
	for _, s := range ops {
		switch s.move {
		case moveDiag:
			conf := sim[s.i][s.j]
			if conf >= o.MinConfidence {
				edges = append(edges, Edge{Kind: Match, ContentIndex: s.i, TranscriptIndex: s.j, Confidence: conf})
			} else if o.AllowSkips {
				edges = append(edges,
					Edge{Kind: SkipContent, ContentIndex: s.i, TranscriptIndex: -1},
					Edge{Kind: SkipTranscript, ContentIndex: -1, TranscriptIndex: s.j},
				)
			}
		case moveUp:
			if o.AllowSkips {
				edges = append(edges, Edge{Kind: SkipContent, ContentIndex: s.i, TranscriptIndex: -1})
			}
		default:
			if o.AllowSkips {
				edges = append(edges, Edge{Kind: SkipTranscript, ContentIndex: -1, TranscriptIndex: s.j})
			}
		}
	}

	return edges
}

// filterGaps drops matches whose index gap from the previous kept match
// exceeds MaxSkipDistance on either side. A match with confidence above
// RescueConfidence survives as an isolated anchor; under Strict the rescue
// is disabled so transcript indices stay strictly increasing.
func filterGaps(edges []Edge, o *Options) []Edge {
	rescueEnabled := o.Strategy != Strict
	out := make([]Edge, 0, len(edges))
	lastC, lastT := -1, -1
	for _, e := range edges {
		if e.Kind != Match {
			out = append(out, e)
			continue
		}
		if lastC >= 0 {
			gapC := e.ContentIndex - lastC
			gapT := e.TranscriptIndex - lastT
			tooFar := gapC > o.MaxSkipDistance || gapT > o.MaxSkipDistance
			rescued := rescueEnabled && e.Confidence > o.RescueConfidence
			if tooFar && !rescued {
				continue
			}
		}
		lastC, lastT = e.ContentIndex, e.TranscriptIndex
		out = append(out, e)
	}

	return out
}

// orderMatches re-sorts the match edges, in place within their slots, by
// transcript index. Downstream playback walks matches in transcription-time
// order, so the output order is made monotone even when a rescued anchor
// was admitted out of sequence.
func orderMatches(edges []Edge) {
	slots := make([]int, 0, len(edges))
	for i, e := range edges {
		if e.Kind == Match {
			slots = append(slots, i)
		}
	}
	matches := make([]Edge, len(slots))
	for k, i := range slots {
		matches[k] = edges[i]
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].TranscriptIndex < matches[b].TranscriptIndex
	})
	for k, i := range slots {
		edges[i] = matches[k]
	}
}

// summarize computes edge counts, coverage ratios and the confidence
// histogram.
func summarize(edges []Edge, n, m int) Stats {
	var st Stats
	for _, e := range edges {
		switch e.Kind {
		case Match:
			st.Matches++
			switch {
			case e.Confidence > 0.9:
				st.HighConfidence++
			case e.Confidence > 0.7:
				st.MediumConfidence++
			default:
				st.LowConfidence++
			}
		case SkipContent:
			st.ContentSkips++
		case SkipTranscript:
			st.TranscriptSkips++
		}
	}
	if n > 0 {
		st.ContentCoverage = float64(st.Matches) / float64(n)
	}
	if m > 0 {
		st.TranscriptCoverage = float64(st.Matches) / float64(m)
	}

	return st
}

// overallConfidence is the mean match confidence plus a volume bonus of
// min(matches/50, 0.2), clipped to [0,1]. Zero matches mean zero confidence.
func overallConfidence(edges []Edge, matches int) float64 {
	if matches == 0 {
		return 0
	}
	var sum float64
	for _, e := range edges {
		if e.Kind == Match {
			sum += e.Confidence
		}
	}
	mean := sum / float64(matches)
	bonus := float64(matches) / 50
	if bonus > 0.2 {
		bonus = 0.2
	}
	conf := mean + bonus
	if conf > 1 {
		conf = 1
	}
	if conf < 0 {
		conf = 0
	}

	return conf
}

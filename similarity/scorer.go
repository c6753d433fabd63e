package similarity

import "errors"

// ErrBadWeights indicates a Weights value that cannot be normalized:
// a negative component, or all components zero.
var ErrBadWeights = errors.New("similarity: weights must be non-negative with a positive sum")

// Weights mixes the four similarity signals. The defaults were tuned
// empirically against real audiobook transcriptions; they are configuration,
// not derived invariants, and individual components may be zeroed to switch
// a signal off.
type Weights struct {
	// Levenshtein weighs the edit-distance signal.
	Levenshtein float64

	// JaroWinkler weighs the prefix-boosted Jaro signal.
	JaroWinkler float64

	// Phonetic weighs the sound-alike signal.
	Phonetic float64

	// Context weighs the neighboring-window signal.
	Context float64
}

// DefaultWeights returns the tuned production mix: 0.3 Levenshtein,
// 0.4 Jaro-Winkler, 0.1 Phonetic, 0.2 Context.
func DefaultWeights() Weights {
	return Weights{
		Levenshtein: 0.3,
		JaroWinkler: 0.4,
		Phonetic:    0.1,
		Context:     0.2,
	}
}

// Validate reports ErrBadWeights when any component is negative or the sum
// is not positive.
func (w Weights) Validate() error {
	if w.Levenshtein < 0 || w.JaroWinkler < 0 || w.Phonetic < 0 || w.Context < 0 {
		return ErrBadWeights
	}
	if w.Levenshtein+w.JaroWinkler+w.Phonetic+w.Context <= 0 {
		return ErrBadWeights
	}

	return nil
}

// Scorer combines the four signals into one token-pair score.
// The zero value is not usable; construct with NewScorer or DefaultScorer.
type Scorer struct {
	weights Weights
	window  int
}

// NewScorer builds a Scorer from weights and a context window size.
// A non-positive window falls back to DefaultWindowSize.
func NewScorer(w Weights, window int) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if window <= 0 {
		window = DefaultWindowSize
	}

	return &Scorer{weights: w, window: window}, nil
}

// DefaultScorer builds a Scorer with DefaultWeights and DefaultWindowSize.
func DefaultScorer() *Scorer {
	s, _ := NewScorer(DefaultWeights(), DefaultWindowSize)

	return s
}

// Score rates a single token pair without positional context. The Context
// weight is redistributed over the remaining signals, so Score(a,b) and
// ScoreAt with agreeing neighborhoods are comparable.
//
// Exact equality of non-empty tokens short-circuits to 1.0; an empty token
// on either side scores 0.
func (s *Scorer) Score(a, b string) float64 {
	if a == b && a != "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	w := s.weights
	total := w.Levenshtein + w.JaroWinkler + w.Phonetic
	if total <= 0 {
		return 0.0
	}
	raw := w.Levenshtein*LevenshteinSimilarity(a, b) +
		w.JaroWinkler*JaroWinkler(a, b) +
		w.Phonetic*PhoneticSimilarity(a, b)

	return clamp01(raw / total)
}

// ScoreAt rates the pair (aSeq[i], bSeq[j]) with all four signals, the
// contextual one drawn from each token's own sequence.
func (s *Scorer) ScoreAt(aSeq []string, i int, bSeq []string, j int) float64 {
	a, b := aSeq[i], bSeq[j]
	if a == b && a != "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	w := s.weights
	total := w.Levenshtein + w.JaroWinkler + w.Phonetic + w.Context
	raw := w.Levenshtein*LevenshteinSimilarity(a, b) +
		w.JaroWinkler*JaroWinkler(a, b) +
		w.Phonetic*PhoneticSimilarity(a, b) +
		w.Context*ContextScore(aSeq, i, bSeq, j, s.window)

	return clamp01(raw / total)
}

// WindowSize reports the configured context window.
func (s *Scorer) WindowSize() int { return s.window }

// clamp01 clips v into [0,1] against floating-point drift.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

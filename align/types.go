package align

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/readalong/alignkit/similarity"
)

// Sentinel errors for alignment input and option validation.
var (
	// ErrBadContentToken indicates a content token with empty text or a
	// negative position.
	ErrBadContentToken = errors.New("align: bad content token")

	// ErrBadTranscriptToken indicates a transcript token with empty text,
	// invalid timing, or timestamps out of order.
	ErrBadTranscriptToken = errors.New("align: bad transcript token")

	// ErrBadOptions indicates an Options value that cannot be used.
	ErrBadOptions = errors.New("align: bad options")
)

// ContentToken is one word from the written text side.
type ContentToken struct {
	// Text is the display form as extracted from the source.
	Text string

	// Normalized is the textnorm.ForMatching form. When empty, Align
	// derives it from Text.
	Normalized string

	// Position is the zero-based index of the word in its source text.
	Position int
}

// TranscriptToken is one word from the speech-to-text side, carrying the
// ground-truth audio timing.
type TranscriptToken struct {
	// Text is the word as emitted by the engine.
	Text string

	// Normalized is the textnorm.ForMatching form. When empty, Align
	// derives it from Text.
	Normalized string

	// Start and End are the word's audio timestamps in seconds.
	Start float64
	End   float64

	// Index is the word's position in the original transcription record.
	Index int
}

// EdgeKind discriminates the three alignment edge variants.
type EdgeKind int

const (
	// Match pairs one content word with one transcription word.
	Match EdgeKind = iota

	// SkipContent marks a content word with no transcription counterpart.
	SkipContent

	// SkipTranscript marks a transcription word with no content counterpart.
	SkipTranscript
)

// String returns the persisted name of the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case Match:
		return "match"
	case SkipContent:
		return "skip_content"
	case SkipTranscript:
		return "skip_transcription"
	default:
		return "unknown"
	}
}

// MarshalJSON persists the kind by name, matching String.
func (k EdgeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts the persisted names.
func (k *EdgeKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "match":
		*k = Match
	case "skip_content":
		*k = SkipContent
	case "skip_transcription":
		*k = SkipTranscript
	default:
		return fmt.Errorf("align: unknown edge kind %q", name)
	}

	return nil
}

// Edge is one unit of correspondence. ContentIndex and TranscriptIndex are
// positions in the input slices; the side a skip edge does not reference
// holds -1. Confidence is meaningful only on Match edges.
type Edge struct {
	Kind            EdgeKind `json:"kind"`
	ContentIndex    int      `json:"contentIndex"`
	TranscriptIndex int      `json:"transcriptionIndex"`
	Confidence      float64  `json:"confidence,omitempty"`
}

// Strategy names a threshold bundle trading precision for recall.
type Strategy string

const (
	// Strict keeps only high-confidence matches and emits no skip edges.
	Strict Strategy = "strict"

	// Balanced is the default precision/recall trade-off.
	Balanced Strategy = "balanced"

	// Permissive keeps every plausible match; use for noisy transcriptions.
	Permissive Strategy = "permissive"
)

// ParseStrategy maps a strategy name to its constant. Unknown names fall
// back to Balanced.
func ParseStrategy(s string) Strategy {
	switch Strategy(s) {
	case Strict, Balanced, Permissive:
		return Strategy(s)
	default:
		return Balanced
	}
}

// Default tuning constants. Empirically chosen against real audiobook
// alignments; exported so callers can reason about them.
const (
	// DefaultSkipPenalty is the DP cost of skipping one word on either side.
	DefaultSkipPenalty = 0.05

	// DefaultMaxSkipDistance is the largest index gap between consecutive
	// kept matches before the later match is dropped.
	DefaultMaxSkipDistance = 5

	// DefaultRescueConfidence is the confidence above which a match
	// survives the gap filter as an isolated anchor.
	DefaultRescueConfidence = 0.9

	// StrictMinConfidence, BalancedMinConfidence and PermissiveMinConfidence
	// are the per-strategy match thresholds.
	StrictMinConfidence     = 0.85
	BalancedMinConfidence   = 0.70
	PermissiveMinConfidence = 0.50
)

// Options configures one alignment run. Construct with DefaultOptions and
// override fields as needed.
type Options struct {
	// Strategy names the threshold bundle. It also decides whether the
	// rescue rule is active: Strict disables it.
	Strategy Strategy

	// MinConfidence is the similarity a pair must reach to become a Match.
	MinConfidence float64

	// AllowSkips controls whether skip edges are emitted at all.
	AllowSkips bool

	// SkipPenalty is subtracted by the DP for every skipped word.
	SkipPenalty float64

	// MaxSkipDistance bounds the index gap between consecutive matches.
	MaxSkipDistance int

	// RescueConfidence lets isolated high-confidence matches survive the
	// gap filter.
	RescueConfidence float64

	// Weights mixes the similarity signals; zero value means defaults.
	Weights similarity.Weights

	// WindowSize is the contextual window; non-positive means default.
	WindowSize int
}

// DefaultOptions returns the tuned options for a strategy. Unknown strategy
// names fall back to Balanced.
func DefaultOptions(s Strategy) Options {
	o := Options{
		Strategy:         ParseStrategy(string(s)),
		SkipPenalty:      DefaultSkipPenalty,
		MaxSkipDistance:  DefaultMaxSkipDistance,
		RescueConfidence: DefaultRescueConfidence,
		Weights:          similarity.DefaultWeights(),
		WindowSize:       similarity.DefaultWindowSize,
	}
	switch o.Strategy {
	case Strict:
		o.MinConfidence = StrictMinConfidence
		o.AllowSkips = false
	case Permissive:
		o.MinConfidence = PermissiveMinConfidence
		o.AllowSkips = true
	default:
		o.MinConfidence = BalancedMinConfidence
		o.AllowSkips = true
	}

	return o
}

// Validate reports ErrBadOptions for parameter values the aligner cannot
// honor.
func (o *Options) Validate() error {
	if o.MinConfidence < 0 || o.MinConfidence > 1 {
		return ErrBadOptions
	}
	if o.SkipPenalty < 0 {
		return ErrBadOptions
	}
	if o.MaxSkipDistance < 1 {
		return ErrBadOptions
	}
	if o.RescueConfidence < 0 || o.RescueConfidence > 1 {
		return ErrBadOptions
	}
	// The zero value stands for DefaultWeights and is substituted by Align.
	if o.Weights != (similarity.Weights{}) {
		if err := o.Weights.Validate(); err != nil {
			return ErrBadOptions
		}
	}

	return nil
}

// Stats summarizes one alignment result.
type Stats struct {
	// Matches, ContentSkips and TranscriptSkips count edges by kind.
	Matches         int `json:"matches"`
	ContentSkips    int `json:"contentSkips"`
	TranscriptSkips int `json:"transcriptionSkips"`

	// ContentCoverage and TranscriptCoverage are the fractions of each
	// side's words participating in a Match edge, in [0,1].
	ContentCoverage    float64 `json:"contentCoverage"`
	TranscriptCoverage float64 `json:"transcriptionCoverage"`

	// Confidence tier histogram over match edges:
	// High > 0.9, Medium in (0.7, 0.9], Low ≤ 0.7.
	HighConfidence   int `json:"highConfidence"`
	MediumConfidence int `json:"mediumConfidence"`
	LowConfidence    int `json:"lowConfidence"`
}

// Result is the output of one Align call.
type Result struct {
	// Edges is the ordered alignment; match edges are ordered by
	// transcript index so playback can walk them in time order.
	Edges []Edge `json:"alignment"`

	// Confidence is the overall alignment confidence in [0,1].
	Confidence float64 `json:"confidence"`

	// Stats carries counts, coverage ratios and the confidence histogram.
	Stats Stats `json:"statistics"`
}

// Matches returns only the match edges, in emitted order.
func (r *Result) Matches() []Edge {
	out := make([]Edge, 0, r.Stats.Matches)
	for _, e := range r.Edges {
		if e.Kind == Match {
			out = append(out, e)
		}
	}

	return out
}

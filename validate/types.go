package validate

// Severity grades a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Finding is one observation about alignment or entity quality.
type Finding struct {
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
}

// Finding categories.
const (
	CategoryStructure    = "structure"
	CategoryWord         = "word"
	CategoryTiming       = "timing"
	CategorySentence     = "sentence"
	CategoryCoverage     = "coverage"
	CategoryConfidence   = "confidence"
	CategoryMonotonicity = "monotonicity"
	CategoryRate         = "speaking_rate"
)

// Label is the human-readable quality grade derived from the score.
type Label string

const (
	LabelExcellent  Label = "Excellent"
	LabelGood       Label = "Good"
	LabelAcceptable Label = "Acceptable"
	LabelFair       Label = "Fair"
	LabelPoor       Label = "Poor"
)

// Report is the outcome of a validation pass: ordered findings, a numeric
// score, a quality label, recommendations and an overall verdict.
type Report struct {
	Findings        []Finding `json:"findings"`
	Score           float64   `json:"score"`
	Label           Label     `json:"label"`
	Recommendations []string  `json:"recommendations,omitempty"`
	IsValid         bool      `json:"isValid"`
}

// Severity weights and label boundaries for the score formula.
const (
	errorPenalty   = 15
	warningPenalty = 5
	infoPenalty    = 1
	successBonus   = 2

	excellentScore  = 90
	goodScore       = 80
	acceptableScore = 70
	fairScore       = 60
)

// Thresholds bundles every tunable limit the checks compare against.
// Construct with DefaultThresholds and override fields as needed.
type Thresholds struct {
	// MinWordDuration and MaxWordDuration bound a plausible spoken word,
	// in seconds.
	MinWordDuration float64
	MaxWordDuration float64

	// MinCoverage is the error floor for per-side coverage;
	// AcceptableCoverage is the warning floor above it.
	MinCoverage        float64
	AcceptableCoverage float64

	// MinMonotonicRatio is the error floor for the fraction of consecutive
	// match pairs whose transcript indices increase.
	MinMonotonicRatio float64

	// MinMeanConfidence is the error floor for mean match confidence, and
	// also the bar below which a single match counts as low-confidence.
	MinMeanConfidence float64

	// MaxLowConfidenceShare is the warning ceiling for the proportion of
	// low-confidence matches.
	MaxLowConfidenceShare float64

	// MinSpeakingRate and MaxSpeakingRate bound a plausible narration
	// speed, in words per minute.
	MinSpeakingRate float64
	MaxSpeakingRate float64

	// MaxSectionWarnings is how many warnings a section may accumulate
	// before roll-up surfaces it at chapter level.
	MaxSectionWarnings int
}

// DefaultThresholds returns the tuned production limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinWordDuration:       0.05,
		MaxWordDuration:       3.0,
		MinCoverage:           0.6,
		AcceptableCoverage:    0.75,
		MinMonotonicRatio:     0.9,
		MinMeanConfidence:     0.7,
		MaxLowConfidenceShare: 0.3,
		MinSpeakingRate:       120,
		MaxSpeakingRate:       200,
		MaxSectionWarnings:    5,
	}
}

package validate

import (
	"github.com/readalong/alignkit/align"
)

// Alignment validates an aligner result against the transcript sequence it
// was computed from. A nil th means DefaultThresholds. Findings are
// returned as data, never as an error.
func Alignment(res *align.Result, transcript []align.TranscriptToken, th *Thresholds) *Report {
	t := DefaultThresholds()
	if th != nil {
		t = *th
	}

	var findings []Finding
	matches := res.Matches()

	if len(matches) == 0 {
		findings = append(findings, finding(SeverityError, CategoryConfidence,
			"alignment produced no match edges"))
	}

	findings = append(findings, coverageFindings("content", res.Stats.ContentCoverage, &t)...)
	findings = append(findings, coverageFindings("transcription", res.Stats.TranscriptCoverage, &t)...)
	findings = append(findings, monotonicityFindings(matches, &t)...)
	findings = append(findings, confidenceFindings(matches, &t)...)
	findings = append(findings, rateFindings(matches, transcript, &t)...)

	return newReport(findings)
}

// coverageFindings grades one side's coverage against the tiered floors.
func coverageFindings(side string, coverage float64, t *Thresholds) []Finding {
	switch {
	case coverage < t.MinCoverage:
		return []Finding{finding(SeverityError, CategoryCoverage,
			"%s coverage %.1f%% is below the %.0f%% minimum", side, coverage*100, t.MinCoverage*100)}
	case coverage < t.AcceptableCoverage:
		return []Finding{finding(SeverityWarning, CategoryCoverage,
			"%s coverage %.1f%% is below the %.0f%% target", side, coverage*100, t.AcceptableCoverage*100)}
	default:
		return []Finding{finding(SeveritySuccess, CategoryCoverage,
			"%s coverage %.1f%%", side, coverage*100)}
	}
}

// monotonicityFindings measures how often consecutive matches advance the
// transcript index.
func monotonicityFindings(matches []align.Edge, t *Thresholds) []Finding {
	if len(matches) < 2 {
		return nil
	}
	var increasing int
	for i := 1; i < len(matches); i++ {
		if matches[i].TranscriptIndex > matches[i-1].TranscriptIndex {
			increasing++
		}
	}
	ratio := float64(increasing) / float64(len(matches)-1)
	if ratio < t.MinMonotonicRatio {
		return []Finding{finding(SeverityError, CategoryMonotonicity,
			"only %.1f%% of consecutive matches advance in time (minimum %.0f%%)",
			ratio*100, t.MinMonotonicRatio*100)}
	}

	return []Finding{finding(SeveritySuccess, CategoryMonotonicity,
		"%.1f%% of consecutive matches advance in time", ratio*100)}
}

// confidenceFindings grades mean confidence and the low-confidence share.
func confidenceFindings(matches []align.Edge, t *Thresholds) []Finding {
	if len(matches) == 0 {
		return nil
	}
	var sum float64
	var low int
	for _, m := range matches {
		sum += m.Confidence
		if m.Confidence <= t.MinMeanConfidence {
			low++
		}
	}
	mean := sum / float64(len(matches))
	share := float64(low) / float64(len(matches))

	var out []Finding
	if mean < t.MinMeanConfidence {
		out = append(out, finding(SeverityError, CategoryConfidence,
			"mean match confidence %.2f is below the %.2f minimum", mean, t.MinMeanConfidence))
	} else {
		out = append(out, finding(SeveritySuccess, CategoryConfidence,
			"mean match confidence %.2f", mean))
	}
	if share > t.MaxLowConfidenceShare {
		out = append(out, finding(SeverityWarning, CategoryConfidence,
			"%.1f%% of matches are low-confidence (ceiling %.0f%%)", share*100, t.MaxLowConfidenceShare*100))
	}

	return out
}

// rateFindings derives the implied narration speed from matched transcript
// words: matches per minute over the spanned audio.
func rateFindings(matches []align.Edge, transcript []align.TranscriptToken, t *Thresholds) []Finding {
	if len(matches) == 0 || len(transcript) == 0 {
		return nil
	}
	minStart, maxEnd := -1.0, -1.0
	for _, m := range matches {
		if m.TranscriptIndex < 0 || m.TranscriptIndex >= len(transcript) {
			continue
		}
		w := transcript[m.TranscriptIndex]
		if minStart < 0 || w.Start < minStart {
			minStart = w.Start
		}
		if w.End > maxEnd {
			maxEnd = w.End
		}
	}
	minutes := (maxEnd - minStart) / 60
	if minutes <= 0 {
		return nil
	}
	wpm := float64(len(matches)) / minutes
	if wpm < t.MinSpeakingRate || wpm > t.MaxSpeakingRate {
		return []Finding{finding(SeverityWarning, CategoryRate,
			"implied speaking rate %.0f wpm is outside the %.0f–%.0f range",
			wpm, t.MinSpeakingRate, t.MaxSpeakingRate)}
	}

	return []Finding{finding(SeverityInfo, CategoryRate, "implied speaking rate %.0f wpm", wpm)}
}

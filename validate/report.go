package validate

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// newReport finalizes a findings list into a scored, labeled report.
func newReport(findings []Finding) *Report {
	var errs, warns, infos, successes int
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warns++
		case SeverityInfo:
			infos++
		case SeveritySuccess:
			successes++
		}
	}

	score := 100.0 - float64(errorPenalty*errs) - float64(warningPenalty*warns) -
		float64(infoPenalty*infos) + float64(successBonus*successes)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &Report{
		Findings:        findings,
		Score:           score,
		Label:           labelFor(score),
		Recommendations: recommend(findings),
		IsValid:         errs == 0,
	}
}

// labelFor maps a score onto its quality grade.
func labelFor(score float64) Label {
	switch {
	case score >= excellentScore:
		return LabelExcellent
	case score >= goodScore:
		return LabelGood
	case score >= acceptableScore:
		return LabelAcceptable
	case score >= fairScore:
		return LabelFair
	default:
		return LabelPoor
	}
}

// recommend derives free-text advice from the categories of non-success
// findings. One recommendation per category, in a fixed order.
func recommend(findings []Finding) []string {
	advice := map[string]string{
		CategoryCoverage:     "coverage is low: re-run with a more permissive strategy or review the source text for unspoken material",
		CategoryConfidence:   "many matches are uncertain: review low-confidence words manually or relax the similarity weights",
		CategoryMonotonicity: "matches jump backwards in time: check for chapter/audio mismatches or duplicated passages",
		CategoryTiming:       "implausible word durations: verify the transcription's timestamps against the audio",
		CategoryRate:         "speaking rate is outside the expected range: confirm the audio actually narrates this text",
		CategoryStructure:    "structural problems in the content entities: fix missing or duplicated identifiers before aligning",
		CategoryWord:         "invalid word records: repair the extraction output before re-running",
		CategorySentence:     "sentences disagree with their word lists: re-extract the affected sections",
	}
	order := []string{
		CategoryStructure, CategoryWord, CategorySentence, CategoryCoverage,
		CategoryConfidence, CategoryMonotonicity, CategoryTiming, CategoryRate,
	}

	flagged := map[string]bool{}
	for _, f := range findings {
		if f.Severity == SeverityError || f.Severity == SeverityWarning {
			flagged[f.Category] = true
		}
	}

	var recs []string
	for _, cat := range order {
		if flagged[cat] {
			recs = append(recs, advice[cat])
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "no action needed")
	}

	return recs
}

// Render formats the report as a review-friendly table.
func (r *Report) Render() string {
	t := table.NewWriter()
	t.SetTitle("Alignment quality: %s (%.0f/100)", r.Label, r.Score)
	t.AppendHeader(table.Row{"Severity", "Category", "Message"})
	for _, f := range r.Findings {
		t.AppendRow(table.Row{f.Severity, f.Category, f.Message})
	}
	for _, rec := range r.Recommendations {
		t.AppendFooter(table.Row{"", "recommend", rec})
	}

	return t.Render()
}

// countSeverity tallies findings of one severity.
func countSeverity(findings []Finding, s Severity) int {
	var n int
	for _, f := range findings {
		if f.Severity == s {
			n++
		}
	}

	return n
}

// finding is a small constructor keeping call sites one-line.
func finding(s Severity, category, format string, args ...any) Finding {
	return Finding{Severity: s, Category: category, Message: fmt.Sprintf(format, args...)}
}

package validate

import (
	"strings"

	"github.com/readalong/alignkit/book"
	"github.com/readalong/alignkit/textnorm"
)

// sentenceTextAgreement is the textnorm similarity below which a sentence's
// text and its word list are considered to disagree.
const sentenceTextAgreement = 0.8

// Words validates a word sequence: non-empty text and a well-formed,
// plausible timing on every mapped word.
func Words(words []book.Word, th *Thresholds) *Report {
	t := DefaultThresholds()
	if th != nil {
		t = *th
	}

	return newReport(wordFindings(words, &t))
}

func wordFindings(words []book.Word, t *Thresholds) []Finding {
	var findings []Finding
	for i := range words {
		w := &words[i]
		if w.Text == "" {
			findings = append(findings, finding(SeverityError, CategoryWord,
				"word %d has empty text", i))
		}
		if w.TranscriptIndex != nil && *w.TranscriptIndex < 0 {
			findings = append(findings, finding(SeverityError, CategoryWord,
				"word %d has negative transcription index %d", i, *w.TranscriptIndex))
		}
		if w.Timing == nil {
			continue
		}
		if err := w.Timing.Validate(); err != nil {
			findings = append(findings, finding(SeverityError, CategoryTiming,
				"word %d (%q) has invalid timing [%g, %g]", i, w.Text, w.Timing.Start, w.Timing.End))
			continue
		}
		if d := w.Timing.Duration(); d < t.MinWordDuration || d > t.MaxWordDuration {
			findings = append(findings, finding(SeverityWarning, CategoryTiming,
				"word %d (%q) lasts %.2fs, outside [%.2fs, %.2fs]",
				i, w.Text, d, t.MinWordDuration, t.MaxWordDuration))
		}
	}

	return findings
}

// Sentence validates one sentence: structure, its words, and agreement
// between the sentence text and the word list.
func Sentence(s *book.Sentence, th *Thresholds) *Report {
	t := DefaultThresholds()
	if th != nil {
		t = *th
	}

	return newReport(sentenceFindings(s, &t))
}

func sentenceFindings(s *book.Sentence, t *Thresholds) []Finding {
	var findings []Finding
	if s.ID == "" {
		findings = append(findings, finding(SeverityError, CategoryStructure,
			"sentence has no ID"))
	}
	if s.Text == "" {
		findings = append(findings, finding(SeverityError, CategoryStructure,
			"sentence %s has no source text", s.ID))
	}
	findings = append(findings, wordFindings(s.Words, t)...)

	if s.Text != "" {
		extracted := textnorm.ExtractWords(s.Text)
		if len(extracted) != len(s.Words) {
			findings = append(findings, finding(SeverityWarning, CategorySentence,
				"sentence %s text has %d words but carries %d", s.ID, len(extracted), len(s.Words)))
		}
		texts := make([]string, len(s.Words))
		for i := range s.Words {
			texts[i] = s.Words[i].Text
		}
		if sim := textnorm.Similarity(s.Text, strings.Join(texts, " ")); sim < sentenceTextAgreement {
			findings = append(findings, finding(SeverityWarning, CategorySentence,
				"sentence %s text and word list agree only %.0f%%", s.ID, sim*100))
		}
	}

	return findings
}

// Section validates a section and rolls up its sentences' findings.
func Section(sec *book.Section, th *Thresholds) *Report {
	t := DefaultThresholds()
	if th != nil {
		t = *th
	}

	return newReport(sectionFindings(sec, &t))
}

func sectionFindings(sec *book.Section, t *Thresholds) []Finding {
	var findings []Finding
	if sec.ID == "" {
		findings = append(findings, finding(SeverityError, CategoryStructure,
			"section has no ID"))
	}
	seen := map[string]bool{}
	for _, s := range sec.Sentences {
		if s.ID != "" && seen[s.ID] {
			findings = append(findings, finding(SeverityError, CategoryStructure,
				"duplicate sentence ID %s in section %s", s.ID, sec.ID))
		}
		seen[s.ID] = true
		findings = append(findings, sentenceFindings(s, t)...)
	}

	return findings
}

// Chapter validates a chapter. Sentence- and section-level findings roll up
// selectively: only errors propagate, plus one warning per section whose
// own warning count exceeds Thresholds.MaxSectionWarnings.
func Chapter(ch *book.Chapter, th *Thresholds) *Report {
	t := DefaultThresholds()
	if th != nil {
		t = *th
	}

	return newReport(chapterFindings(ch, &t))
}

func chapterFindings(ch *book.Chapter, t *Thresholds) []Finding {
	var findings []Finding
	if ch.ID == "" {
		findings = append(findings, finding(SeverityError, CategoryStructure,
			"chapter has no ID"))
	}
	if ch.Title == "" {
		findings = append(findings, finding(SeverityError, CategoryStructure,
			"chapter %s has no title", ch.ID))
	}
	seen := map[string]bool{}
	for _, sec := range ch.Sections {
		if sec.ID != "" && seen[sec.ID] {
			findings = append(findings, finding(SeverityError, CategoryStructure,
				"duplicate section ID %s in chapter %s", sec.ID, ch.ID))
		}
		seen[sec.ID] = true

		secFindings := sectionFindings(sec, t)
		for _, f := range secFindings {
			if f.Severity == SeverityError {
				findings = append(findings, f)
			}
		}
		if warns := countSeverity(secFindings, SeverityWarning); warns > t.MaxSectionWarnings {
			findings = append(findings, finding(SeverityWarning, CategoryStructure,
				"section %s accumulated %d warnings", sec.ID, warns))
		}
	}

	return findings
}

// Book validates the whole hierarchy with the same selective roll-up as
// Chapter, applied at every level.
func Book(b *book.Book, th *Thresholds) *Report {
	t := DefaultThresholds()
	if th != nil {
		t = *th
	}

	var findings []Finding
	if b.Title == "" {
		findings = append(findings, finding(SeverityError, CategoryStructure,
			"book has no title"))
	}
	if b.Author == "" {
		findings = append(findings, finding(SeverityError, CategoryStructure,
			"book has no author"))
	}
	for _, sec := range b.Cover {
		for _, f := range sectionFindings(sec, &t) {
			if f.Severity == SeverityError {
				findings = append(findings, f)
			}
		}
	}
	seen := map[string]bool{}
	for _, ch := range b.Chapters {
		if ch.ID != "" && seen[ch.ID] {
			findings = append(findings, finding(SeverityError, CategoryStructure,
				"duplicate chapter ID %s", ch.ID))
		}
		seen[ch.ID] = true
		findings = append(findings, chapterFindings(ch, &t)...)
	}

	return newReport(findings)
}

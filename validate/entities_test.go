package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readalong/alignkit/book"
	"github.com/readalong/alignkit/validate"
)

// timing is a pointer helper for building mapped words by hand.
func timing(start, end float64) *book.AudioTiming {
	return &book.AudioTiming{Start: start, End: end}
}

// TestWords_Findings drives the per-word checks: empty text, negative
// index, reversed timing, implausible duration.
func TestWords_Findings(t *testing.T) {
	neg := -1
	words := []book.Word{
		{Text: "fine", Timing: timing(0, 0.4)},
		{Text: ""},
		{Text: "backwards", Timing: timing(2, 1)},
		{Text: "marathon", Timing: timing(0, 5)},
		{Text: "glitch", TranscriptIndex: &neg},
	}

	report := validate.Words(words, nil)
	assert.False(t, report.IsValid)

	bySeverity := map[validate.Severity]int{}
	for _, f := range report.Findings {
		bySeverity[f.Severity]++
	}
	assert.Equal(t, 3, bySeverity[validate.SeverityError], "empty text, reversed timing, negative index")
	assert.Equal(t, 1, bySeverity[validate.SeverityWarning], "five-second word")
}

// TestSentence_Agreement verifies the text/word-list consistency warnings.
func TestSentence_Agreement(t *testing.T) {
	ok := book.NewSentence("All words present here.")
	assert.True(t, validate.Sentence(ok, nil).IsValid)

	mismatch := book.NewSentence("All words present here.")
	mismatch.Words = mismatch.Words[:2]
	report := validate.Sentence(mismatch, nil)
	assert.True(t, report.IsValid, "a count mismatch is a warning, not an error")

	var warned bool
	for _, f := range report.Findings {
		if f.Severity == validate.SeverityWarning && f.Category == validate.CategorySentence {
			warned = true
		}
	}
	assert.True(t, warned)
}

// TestSentence_MissingID verifies the structural completeness error.
func TestSentence_MissingID(t *testing.T) {
	s := &book.Sentence{Text: "no id"}
	s.Words = book.NewSentence("no id").Words

	report := validate.Sentence(s, nil)
	assert.False(t, report.IsValid)
}

// TestSection_DuplicateSentenceIDs verifies sibling uniqueness.
func TestSection_DuplicateSentenceIDs(t *testing.T) {
	a := book.NewSentence("First.")
	b := book.NewSentence("Second.")
	b.ID = a.ID
	sec := &book.Section{ID: "sec-1", Type: book.SectionParagraph, Sentences: []*book.Sentence{a, b}}

	report := validate.Section(sec, nil)
	assert.False(t, report.IsValid)

	var dup bool
	for _, f := range report.Findings {
		if f.Severity == validate.SeverityError && f.Category == validate.CategoryStructure {
			dup = true
		}
	}
	assert.True(t, dup)
}

// TestChapter_RollUp verifies selective propagation: sentence errors reach
// the chapter report, leaf warnings do not, and a warning-heavy section
// surfaces as one chapter-level warning.
func TestChapter_RollUp(t *testing.T) {
	noisy := &book.Section{ID: "noisy", Type: book.SectionParagraph}
	for i := 0; i < 7; i++ {
		s := book.NewSentence("word")
		// A too-long mapped word: one warning per sentence.
		s.Words[0].Timing = timing(0, 4)
		noisy.Sentences = append(noisy.Sentences, s)
	}
	broken := &book.Section{ID: "broken", Type: book.SectionParagraph,
		Sentences: []*book.Sentence{{ID: "s-err", Text: "x", Words: []book.Word{{Text: ""}}}}}

	ch := book.NewChapter("Chapter One")
	ch.Sections = []*book.Section{noisy, broken}

	report := validate.Chapter(ch, nil)
	assert.False(t, report.IsValid, "the word error propagates")

	var sectionWarning, leafWarning bool
	for _, f := range report.Findings {
		if f.Severity == validate.SeverityWarning {
			if f.Category == validate.CategoryStructure {
				sectionWarning = true
			}
			if f.Category == validate.CategoryTiming {
				leafWarning = true
			}
		}
	}
	assert.True(t, sectionWarning, "seven warnings exceed the roll-up ceiling")
	assert.False(t, leafWarning, "individual timing warnings stay at section level")
}

// TestBook_Structure verifies root-level required fields and chapter ID
// uniqueness.
func TestBook_Structure(t *testing.T) {
	b := &book.Book{} // no title, no author
	report := validate.Book(b, nil)
	assert.False(t, report.IsValid)

	c1 := book.NewChapter("One")
	c2 := book.NewChapter("Two")
	c2.ID = c1.ID
	dup := &book.Book{Title: "T", Author: "A", Chapters: []*book.Chapter{c1, c2}}
	report = validate.Book(dup, nil)
	assert.False(t, report.IsValid)

	ok := &book.Book{Title: "T", Author: "A", Chapters: []*book.Chapter{book.NewChapter("Solo")}}
	report = validate.Book(ok, nil)
	assert.True(t, report.IsValid)
	assert.Equal(t, validate.LabelExcellent, report.Label)
}

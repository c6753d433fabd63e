package book

import (
	"errors"

	"github.com/google/uuid"

	"github.com/readalong/alignkit/textnorm"
)

// Sentinel errors for the data model.
var (
	// ErrBadTiming indicates an AudioTiming with a negative start or an
	// end before its start.
	ErrBadTiming = errors.New("book: invalid audio timing")

	// ErrEmptyWord indicates a Word constructed with empty text.
	ErrEmptyWord = errors.New("book: word text is empty")

	// ErrIndexOutOfRange indicates an alignment edge referencing a word
	// outside the sequences it is being applied to.
	ErrIndexOutOfRange = errors.New("book: alignment edge index out of range")
)

// AudioTiming is a half-open span of audio, in seconds.
type AudioTiming struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns End − Start.
func (t AudioTiming) Duration() float64 { return t.End - t.Start }

// Validate reports ErrBadTiming unless 0 ≤ Start ≤ End.
func (t AudioTiming) Validate() error {
	if t.Start < 0 || t.End < t.Start {
		return ErrBadTiming
	}

	return nil
}

// Word is one content word. Text is the display form; Normalized is derived
// at construction and never serialized. TranscriptIndex, Timing and
// Confidence stay nil until an alignment is applied.
type Word struct {
	Text            string         `json:"text"`
	Normalized      string         `json:"-"`
	TranscriptIndex *int           `json:"transcriptionIndex,omitempty"`
	Timing          *AudioTiming   `json:"timing,omitempty"`
	Confidence      *float64       `json:"confidence,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// NewWord builds a Word with its derived normalized form.
func NewWord(text string) (Word, error) {
	if text == "" {
		return Word{}, ErrEmptyWord
	}

	return Word{Text: text, Normalized: textnorm.ForMatching(text)}, nil
}

// IsMapped reports whether an alignment has assigned this word a
// transcription index.
func (w *Word) IsMapped() bool { return w.TranscriptIndex != nil }

// Sentence is an ordered sequence of words plus the source text they came
// from.
type Sentence struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Words []Word `json:"words"`
}

// NewSentence tokenizes text into words and assigns a fresh ID.
func NewSentence(text string) *Sentence {
	tokens := textnorm.ExtractWords(text)
	words := make([]Word, len(tokens))
	for i, tok := range tokens {
		words[i] = Word{Text: tok.Display, Normalized: tok.Normalized}
	}

	return &Sentence{ID: uuid.NewString(), Text: text, Words: words}
}

// SectionType tags the structural role of a section.
type SectionType string

const (
	SectionParagraph SectionType = "paragraph"
	SectionQuote     SectionType = "quote"
	SectionHeading   SectionType = "heading"
	SectionEpigraph  SectionType = "epigraph"
	SectionFootnote  SectionType = "footnote"
)

// Section is an ordered sequence of sentences of one structural type.
type Section struct {
	ID        string      `json:"id"`
	Type      SectionType `json:"type"`
	Sentences []*Sentence `json:"sentences"`
}

// NewSection splits text into sentences and assigns a fresh ID.
func NewSection(typ SectionType, text string) *Section {
	raw := textnorm.ExtractSentences(text)
	sentences := make([]*Sentence, len(raw))
	for i, s := range raw {
		sentences[i] = NewSentence(s)
	}

	return &Section{ID: uuid.NewString(), Type: typ, Sentences: sentences}
}

// Chapter is an ordered sequence of sections, optionally tied to an audio
// file and its transcription.
type Chapter struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Type           string     `json:"type,omitempty"`
	Sections       []*Section `json:"sections"`
	AudioFile      string     `json:"audioFile,omitempty"`
	TranscriptFile string     `json:"transcriptionFile,omitempty"`
}

// NewChapter builds an empty titled chapter with a fresh ID.
func NewChapter(title string) *Chapter {
	return &Chapter{ID: uuid.NewString(), Title: title}
}

// Book is the root of the content hierarchy.
type Book struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Author   string     `json:"author"`
	Cover    []*Section `json:"cover,omitempty"`
	Chapters []*Chapter `json:"chapters"`
}

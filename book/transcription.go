package book

import (
	"github.com/readalong/alignkit/align"
	"github.com/readalong/alignkit/textnorm"
)

// TranscriptWord is one word of speech-to-text output with its timing.
type TranscriptWord struct {
	Word       string   `json:"word"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Transcription is the complete speech-to-text record for one audio file —
// the ground truth for audio timing.
type Transcription struct {
	Text     string           `json:"text"`
	Duration float64          `json:"duration"`
	Language string           `json:"language"`
	Model    string           `json:"model,omitempty"`
	Words    []TranscriptWord `json:"words"`
}

// Tokens converts the transcription into the aligner's input form,
// deriving normalized forms as it goes.
func (t *Transcription) Tokens() []align.TranscriptToken {
	tokens := make([]align.TranscriptToken, len(t.Words))
	for i, w := range t.Words {
		tokens[i] = align.TranscriptToken{
			Text:       w.Word,
			Normalized: textnorm.ForMatching(w.Word),
			Start:      w.Start,
			End:        w.End,
			Index:      i,
		}
	}

	return tokens
}

// ContentTokens converts content words into the aligner's input form.
// Words constructed outside NewWord get their normalized form derived here.
func ContentTokens(words []Word) []align.ContentToken {
	tokens := make([]align.ContentToken, len(words))
	for i := range words {
		norm := words[i].Normalized
		if norm == "" {
			norm = textnorm.ForMatching(words[i].Text)
		}
		tokens[i] = align.ContentToken{
			Text:       words[i].Text,
			Normalized: norm,
			Position:   i,
		}
	}

	return tokens
}

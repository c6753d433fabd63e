package book

import (
	"fmt"

	"github.com/readalong/alignkit/align"
)

// ApplyAlignment writes match edges back onto content words: each matched
// word receives the transcription index, the target word's timing, and the
// edge's confidence. Skip edges leave words untouched.
//
// This is the only path that mutates a Word's mapping state. An edge
// referencing an index outside either sequence fails with
// ErrIndexOutOfRange before any mutation is applied.
func ApplyAlignment(words []Word, transcript []TranscriptWord, edges []align.Edge) error {
	for _, e := range edges {
		if e.Kind != align.Match {
			continue
		}
		if e.ContentIndex < 0 || e.ContentIndex >= len(words) {
			return fmt.Errorf("%w: content index %d of %d words", ErrIndexOutOfRange, e.ContentIndex, len(words))
		}
		if e.TranscriptIndex < 0 || e.TranscriptIndex >= len(transcript) {
			return fmt.Errorf("%w: transcription index %d of %d words", ErrIndexOutOfRange, e.TranscriptIndex, len(transcript))
		}
	}

	for _, e := range edges {
		if e.Kind != align.Match {
			continue
		}
		w := &words[e.ContentIndex]
		src := transcript[e.TranscriptIndex]

		idx := e.TranscriptIndex
		conf := e.Confidence
		w.TranscriptIndex = &idx
		w.Timing = &AudioTiming{Start: src.Start, End: src.End}
		w.Confidence = &conf
	}

	return nil
}

// Align runs the aligner over the sentence's words against a transcription
// and applies the result, returning it for inspection.
func (s *Sentence) Align(t *Transcription, opts *align.Options) (*align.Result, error) {
	res, err := align.Align(ContentTokens(s.Words), t.Tokens(), opts)
	if err != nil {
		return nil, err
	}
	if err := ApplyAlignment(s.Words, t.Words, res.Edges); err != nil {
		return nil, err
	}

	return res, nil
}

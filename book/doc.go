// Package book models the content hierarchy an alignment run reads from and
// writes back onto: Word → Sentence → Section → Chapter → Book on the text
// side, and the Transcription record that carries ground-truth audio timing
// on the speech side.
//
// Words are created during content extraction or transcription ingestion;
// their TranscriptIndex, Timing and Confidence fields are mutated only by
// applying an aligner's output (ApplyAlignment). Every level of the
// hierarchy rolls up mapping statistics so progress can be reported per
// sentence, section, chapter or whole book.
//
// The JSON struct tags define the serialization contract shared with the
// surrounding system: a transcription record
//
//	{text, duration, language, words:[{word, start, end, confidence}]}
//
// and a structured book record with chapters, sections, sentences and words
// carrying {text, transcriptionIndex, timing:{start,end}, confidence}.
//
// Entity IDs are UUIDs generated at construction; the validate package
// treats missing or duplicated IDs as structural errors.
package book

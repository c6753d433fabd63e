// Package textnorm canonicalizes word tokens so that text extracted from a
// book and text produced by a speech-to-text engine become comparable.
//
// Two independent renderings of the same spoken sentence rarely agree
// byte-for-byte: the book says “can’t” where the engine hears "cannot",
// the book spells "seven" where the engine emits "7", and only one side
// carries typographic quotes and accents. textnorm collapses all of that
// into a single matching form while keeping the display form untouched.
//
// ✨ Key operations:
//   - ForMatching  — lowercase, fold accents, expand contractions and
//     speech variants, substitute spelled-out numbers, strip punctuation,
//     collapse whitespace. Idempotent.
//   - ForDisplay   — whitespace collapse only; case and punctuation kept.
//   - ExtractWords — whitespace tokenization into {Display, Normalized,
//     Position} triples aligned by index.
//   - ExtractSentences — split on sentence-terminal punctuation runs.
//   - Similarity   — Jaccard similarity over normalized word sets.
//
// Ordering inside ForMatching is significant: multi-word expansions must
// run before punctuation stripping removes the apostrophes they key on.
//
// Complexity: every operation is a single pass over the input, O(len(s)).
package textnorm

// Package alignkit aligns words extracted from written text with words
// produced by a speech-to-text engine, so every content word can carry an
// audio timestamp and drive word-by-word playback highlighting.
//
// 🚀 What is alignkit?
//
//	A pure-computation library that brings together:
//		• Text normalization: contractions, speech variants, number words,
//		  accent folding — one canonical form for comparison
//		• Multi-signal similarity: Levenshtein, Jaro–Winkler, phonetic
//		  encoding and positional context, weighted into one [0,1] score
//		• Global sequence alignment: O(N·M) dynamic programming with
//		  strategy-controlled thresholds, skip penalties and rescue rules
//		• Quality validation: severity-tagged findings, a 0–100 score,
//		  quality labels and plain-text recommendations
//		• A book data model: Word → Sentence → Section → Chapter → Book,
//		  plus the transcription record that carries ground-truth timing
//
// ✨ Why choose alignkit?
//
//   - Deterministic – same inputs, same alignment, every time
//   - Pure Go, no I/O – consumes word sequences, returns data
//   - Reentrant – no shared state; align chapters concurrently as you like
//   - Tunable – every empirically chosen weight and threshold is a named,
//     overridable option, never a buried literal
//
// Everything is organized under five subpackages:
//
//	textnorm/   — canonicalization, tokenization and sentence splitting
//	similarity/ — token-pair scoring (edit distance, phonetic, context)
//	align/      — the dynamic-programming sequence aligner
//	validate/   — post-hoc quality reports over alignments and books
//	book/       — content, transcription and mapping entities
//
// Data flows left to right:
//
//	textnorm ──► similarity ──► align ──► validate
//	                 ▲                        │
//	                 └──────── book ◄─────────┘
//
// Dive into each package's doc.go for algorithm outlines, invariants and
// worked examples.
package alignkit

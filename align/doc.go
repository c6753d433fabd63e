// Package align computes a word-level correspondence between a content-word
// sequence (extracted from written text) and a transcription-word sequence
// (produced by a speech-to-text engine), using global dynamic-programming
// alignment over a multi-signal similarity matrix.
//
// 🚀 What is sequence alignment here?
//
//	The two sequences describe the same spoken content but disagree in
//	detail: the engine substitutes words it misheard, drops asides, and
//	splits contractions the text keeps whole. Global alignment finds the
//	correspondence that maximizes total similarity while charging a small
//	penalty for every word either side must skip.
//
// Algorithm Outline:
//  1. Let N = len(content), M = len(transcript). Score every pair through
//     similarity.Scorer.ScoreAt, so each cell also sees the k-word windows
//     around its tokens in their own sequences.
//  2. Run DP over an (N+1)×(M+1) grid:
//     dp[i][j] = max(dp[i-1][j-1] + sim[i-1][j-1],   // align
//     dp[i-1][j]   − SkipPenalty,       // skip content word
//     dp[i][j-1]   − SkipPenalty)       // skip transcript word
//     Ties resolve align > skip-content > skip-transcript, keeping the two
//     sequences synchronized when scores agree.
//  3. Backtrace from (N,M) to (0,0), recovering align/skip operations in
//     original order.
//  4. Emit a Match edge for every align step whose similarity clears the
//     strategy's MinConfidence; a below-threshold align step becomes one
//     SkipContent plus one SkipTranscript edge, so every consumed index is
//     accounted for. Plain skips emit edges only when the strategy allows.
//  5. Post-filter: a kept match whose content or transcript gap from the
//     previous kept match exceeds MaxSkipDistance is dropped, unless its
//     own confidence exceeds RescueConfidence — isolated high-confidence
//     anchors survive. Match edges are then ordered by transcript index so
//     consumers may walk them in playback order. Strict strategy disables
//     the rescue, preserving strictly increasing transcript indices.
//
// Strategies:
//   - Strict     — MinConfidence 0.85, no skip edges, no rescue
//   - Balanced   — MinConfidence 0.70, skips allowed (the default)
//   - Permissive — MinConfidence 0.50, skips allowed
//
// Complexity:
//
//	Time   = O(N·M) cells, each scoring two length-L tokens
//	Memory = O(N·M) for the similarity, score and move matrices
//
// Book-scale inputs should be chunked per chapter or section by the caller;
// independent calls share no state and may run concurrently.
//
// Errors:
//   - ErrBadContentToken    — empty text or negative position.
//   - ErrBadTranscriptToken — empty text, negative or reversed timing, or
//     timestamps out of order.
//   - ErrBadOptions         — unusable weights or negative thresholds.
//
// Empty inputs are not errors: N=0 or M=0 yields an empty alignment with
// confidence 0.
package align

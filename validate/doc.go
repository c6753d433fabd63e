// Package validate turns alignment output and book entities into
// severity-tagged quality reports.
//
// Alignment is inherently approximate, so quality concerns are data, never
// errors: a batch run over many chapters must sail past one badly aligned
// chapter and flag it in its report. Every check appends findings with a
// severity (error, warning, info, success) and a category; the report then
// carries a 0–100 score, a quality label and plain-text recommendations.
//
// Scoring: score = clamp(100 − 15·errors − 5·warnings − 1·infos +
// 2·successes, 0, 100). Labels: Excellent ≥ 90, Good ≥ 80, Acceptable ≥ 70,
// Fair ≥ 60, otherwise Poor. A report is valid when it contains no
// error-severity finding.
//
// Checks over an alignment result: per-side coverage against tiered
// thresholds, match monotonicity, mean confidence and the share of
// low-confidence matches, and the implied speaking rate. Checks over book
// entities: structural completeness (non-empty unique IDs), per-word
// validity, word-duration bounds, and sentence text/word agreement.
//
// Roll-ups from sentence to section, chapter and book propagate only
// error-severity findings, plus a warning for any section whose own warning
// count is excessive — book-level reports stay readable instead of
// repeating every leaf finding.
//
// All thresholds live in Thresholds with named defaults; they are tuned
// configuration, not derived invariants.
package validate

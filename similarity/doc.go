// Package similarity scores how alike two normalized word tokens are, on a
// [0,1] scale, by combining four independent signals.
//
// 🚀 Why four signals?
//
//	No single measure survives real transcription noise. Edit distance
//	catches typos but not homophones; phonetic encoding catches homophones
//	but not truncations; and neither knows that the token before and after
//	both matched, which is often the strongest hint of all.
//
// ✨ The signals:
//   - Levenshtein  — (maxLen − editDistance) / maxLen
//   - Jaro–Winkler — Jaro similarity plus an up-to-4-rune common-prefix
//     bonus at scale 0.1
//   - Phonetic     — ordered letter-substitution rules (ph→f, gh→f, ck→k,
//     c[eiy]→s, c→k, q→k, x→ks, z→s; vowel clusters collapse to one
//     symbol), then Jaro–Winkler over the encodings
//   - Contextual   — the k-word windows around each token's position in
//     its own sequence, preceding window weighted 0.6, following 0.4
//
// A Scorer mixes the signals with named, overridable Weights (defaults
// 0.3/0.4/0.1/0.2) and short-circuits to 1.0 on exact normalized equality.
// The contextual signal is intentionally asymmetric in its sequence inputs;
// the other three are symmetric.
//
// Complexity: Levenshtein is O(|a|·|b|) with two-row storage; the rest are
// linear in token length. Scoring an N×M matrix is therefore O(N·M·L²) for
// tokens of length L.
package similarity

package similarity

import "strings"

// vowelSymbol is the single rune every vowel cluster collapses to, so
// "Bredensteiner" and "Bradenstiner" encode identically where only the
// vowels disagree.
const vowelSymbol = 'a'

// Phonetic encodes s into a coarse phonetic form by applying ordered
// letter-substitution rules:
//
//	ph → f,  gh → f,  ck → k,  c[eiy] → s,  c → k,
//	q  → k,  x  → ks, z  → s,  vowel cluster → one symbol
//
// Non-letter runes are dropped. The encoding is deliberately lossy: words
// that sound alike should collide.
func Phonetic(s string) string {
	rs := []rune(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(rs))

	for i := 0; i < len(rs); {
		r := rs[i]
		var next rune
		if i+1 < len(rs) {
			next = rs[i+1]
		}

		switch {
		case r == 'p' && next == 'h', r == 'g' && next == 'h':
			b.WriteByte('f')
			i += 2
		case r == 'c' && next == 'k':
			b.WriteByte('k')
			i += 2
		case r == 'c' && (next == 'e' || next == 'i' || next == 'y'):
			b.WriteByte('s')
			i++
		case r == 'c':
			b.WriteByte('k')
			i++
		case r == 'q':
			b.WriteByte('k')
			i++
		case r == 'x':
			b.WriteString("ks")
			i++
		case r == 'z':
			b.WriteByte('s')
			i++
		case isVowel(r):
			b.WriteRune(vowelSymbol)
			for i < len(rs) && isVowel(rs[i]) {
				i++
			}
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			i++
		default:
			i++
		}
	}

	return b.String()
}

// PhoneticSimilarity is JaroWinkler over the phonetic encodings of a and b.
func PhoneticSimilarity(a, b string) float64 {
	return JaroWinkler(Phonetic(a), Phonetic(b))
}

// isVowel reports whether r is one of a, e, i, o, u.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}

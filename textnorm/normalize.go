package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation is the fixed set of runes stripped by ForMatching.
const punctuation = `.,!?;:'"()[]{}<>/\&*#@%^~|+=_` + "`" + `—–…“”‘’«»`

// asciiQuotes maps typographic quote and dash runes to their ASCII
// equivalents so the contraction table can key on a plain apostrophe.
var asciiQuotes = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"—", " ",
	"–", " ",
)

// foldAccents strips combining marks: NFD decompose, drop Mn, NFC recompose.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// contractions maps whole contracted forms to their expansions.
// Irregular forms live here; regular suffixes are handled by expandSuffix.
var contractions = map[string]string{
	"can't":   "cannot",
	"won't":   "will not",
	"shan't":  "shall not",
	"ain't":   "am not",
	"let's":   "let us",
	"i'm":     "i am",
	"ma'am":   "madam",
	"o'clock": "oclock",
	"y'all":   "you all",
}

// suffixRules expand the regular contraction endings. Order matters:
// longer suffixes are tried first so "n't" wins over "'t".
var suffixRules = []struct {
	suffix string
	expand string
}{
	{"n't", " not"},
	{"'re", " are"},
	{"'ve", " have"},
	{"'ll", " will"},
	{"'d", " would"},
	{"'m", " am"},
}

// speechVariants maps casual or abbreviated spoken forms to the words a
// speech-to-text engine actually emits.
var speechVariants = map[string]string{
	"gonna": "going to",
	"wanna": "want to",
	"gotta": "got to",
	"kinda": "kind of",
	"sorta": "sort of",
	"outta": "out of",
	"lemme": "let me",
	"gimme": "give me",
	"dunno": "do not know",
	"cause": "because",
	"ok":    "okay",
	"mr":    "mister",
	"mrs":   "missus",
	"dr":    "doctor",
	"st":    "saint",
}

// numberWords substitutes the spelled-out numbers one through ten with the
// digits a transcription engine produces.
var numberWords = map[string]string{
	"one":   "1",
	"two":   "2",
	"three": "3",
	"four":  "4",
	"five":  "5",
	"six":   "6",
	"seven": "7",
	"eight": "8",
	"nine":  "9",
	"ten":   "10",
}

// ForMatching canonicalizes text for comparison: lowercase, fold accents and
// typographic quotes, expand contractions and speech variants, substitute
// spelled-out numbers one–ten, strip punctuation, collapse whitespace.
//
// The result contains only lowercase letters, digits and single spaces.
// ForMatching is idempotent: ForMatching(ForMatching(s)) == ForMatching(s).
func ForMatching(text string) string {
	lowered := strings.ToLower(text)
	lowered = asciiQuotes.Replace(lowered)
	if folded, _, err := transform.String(foldAccents, lowered); err == nil {
		lowered = folded
	}

	var out []string
	for _, tok := range strings.Fields(lowered) {
		// Edge punctuation is dropped now so "can't," still hits the
		// contraction table; interior apostrophes survive until the
		// expansions that key on them have run.
		core := strings.Trim(tok, punctuation)
		for _, w := range expandToken(core) {
			if w = stripPunctuation(w); w != "" {
				out = append(out, w)
			}
		}
	}

	return strings.Join(out, " ")
}

// ForDisplay normalizes text for presentation: whitespace collapse only.
// Case and punctuation are preserved.
func ForDisplay(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// expandToken applies the contraction, speech-variant and number tables to a
// single lowercase token, returning the possibly multi-word expansion.
func expandToken(tok string) []string {
	if rep, ok := contractions[tok]; ok {
		tok = rep
	} else {
		tok = expandSuffix(tok)
	}

	words := strings.Fields(tok)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if rep, ok := speechVariants[w]; ok {
			out = append(out, strings.Fields(rep)...)
			continue
		}
		if rep, ok := numberWords[w]; ok {
			out = append(out, rep)
			continue
		}
		out = append(out, w)
	}

	return out
}

// expandSuffix rewrites a regular contraction ending ("don't" → "do not").
// The base must be non-empty, otherwise the token is returned unchanged.
func expandSuffix(tok string) string {
	for _, r := range suffixRules {
		if base, ok := strings.CutSuffix(tok, r.suffix); ok && base != "" {
			return base + r.expand
		}
	}

	return tok
}

// stripPunctuation removes every rune in the fixed punctuation set.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) || r == '-' {
			return -1
		}

		return r
	}, s)
}

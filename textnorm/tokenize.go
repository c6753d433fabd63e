package textnorm

import (
	"regexp"
	"strings"
)

// Token is one whitespace-delimited word with both of its renderings.
//
// Display keeps the original case and punctuation for presentation;
// Normalized is the ForMatching form used for comparison; Position is the
// zero-based index of the token in its source text. A token whose
// normalization becomes empty (pure punctuation) keeps an empty Normalized
// so positions still index the display sequence one-to-one.
type Token struct {
	Display    string
	Normalized string
	Position   int
}

// sentenceEnd matches a run of sentence-terminal punctuation followed by
// whitespace, the boundary ExtractSentences splits on.
var sentenceEnd = regexp.MustCompile(`[.!?]+\s+`)

// ExtractWords tokenizes text on whitespace into {Display, Normalized,
// Position} triples aligned by index.
func ExtractWords(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{
			Display:    f,
			Normalized: ForMatching(f),
			Position:   i,
		}
	}

	return tokens
}

// ExtractSentences splits text on sentence-terminal punctuation runs
// ([.!?]+ followed by whitespace). A trailing fragment without terminal
// punctuation is kept as a final sentence.
func ExtractSentences(text string) []string {
	var sentences []string
	rest := text
	for {
		loc := sentenceEnd.FindStringIndex(rest)
		if loc == nil {
			break
		}
		// Keep the terminal punctuation with its sentence, drop the space.
		head := strings.TrimSpace(rest[:loc[1]])
		if head != "" {
			sentences = append(sentences, head)
		}
		rest = rest[loc[1]:]
	}
	if tail := strings.TrimSpace(rest); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

// Similarity reports how alike two texts are after normalization: 1.0 on an
// exact normalized match, 0.0 when either side normalizes to nothing, and
// the Jaccard similarity of their normalized word sets otherwise.
func Similarity(a, b string) float64 {
	na, nb := ForMatching(a), ForMatching(b)
	if na == nb {
		return 1.0
	}
	if na == "" || nb == "" {
		return 0.0
	}

	setA := wordSet(na)
	setB := wordSet(nb)
	var common int
	for w := range setA {
		if _, ok := setB[w]; ok {
			common++
		}
	}
	union := len(setA) + len(setB) - common

	return float64(common) / float64(union)
}

// wordSet builds the set of distinct words in a normalized string.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}

	return set
}

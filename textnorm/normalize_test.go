package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readalong/alignkit/textnorm"
)

// TestForMatching_Table drives the canonical pipeline through its documented
// stages: case, accents, contractions, speech variants, numbers, punctuation.
func TestForMatching_Table(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Mere Metaphor", "mere metaphor"},
		{"punctuation stripped", `"Hello, world!"`, "hello world"},
		{"irregular contraction", "can't", "cannot"},
		{"irregular contraction wont", "won't", "will not"},
		{"suffix contraction", "don't", "do not"},
		{"suffix contraction re", "they're", "they are"},
		{"suffix contraction ll", "she'll", "she will"},
		{"suffix contraction ve", "we've", "we have"},
		{"typographic apostrophe", "can’t", "cannot"},
		{"contraction with trailing comma", "can't,", "cannot"},
		{"speech variant", "gonna", "going to"},
		{"speech variant wanna", "I wanna go", "i want to go"},
		{"honorific", "Mr. Bredensteiner", "mister bredensteiner"},
		{"number word", "seven samurai", "7 samurai"},
		{"number word ten", "Ten", "10"},
		{"accent folding", "Élodie’s café", "elodies cafe"},
		{"possessive loses apostrophe", "the dog's bone", "the dogs bone"},
		{"whitespace collapse", "  spaced \t out \n words ", "spaced out words"},
		{"pure punctuation", "—", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textnorm.ForMatching(tc.in))
		})
	}
}

// TestForMatching_ExpansionBeforeStripping pins the ordering contract:
// multi-word expansions must see the apostrophes that punctuation stripping
// would otherwise remove.
func TestForMatching_ExpansionBeforeStripping(t *testing.T) {
	// If stripping ran first, "can't" would become "cant" and miss the table.
	assert.Equal(t, "cannot", textnorm.ForMatching("can't"))
	assert.Equal(t, "it will", textnorm.ForMatching("it'll"))
}

// TestForMatching_Idempotent verifies that normalizing twice equals
// normalizing once, for every table case and a few nasty composites.
func TestForMatching_Idempotent(t *testing.T) {
	inputs := []string{
		"Mere Metaphor",
		"can't won't don't",
		"gonna wanna gotta",
		"One, two... TEN!",
		"Mr. O’Leary’s café — naïve, résumé",
		"",
	}
	for _, in := range inputs {
		once := textnorm.ForMatching(in)
		assert.Equal(t, once, textnorm.ForMatching(once), "not idempotent for %q", in)
	}
}

// TestForDisplay verifies that display normalization touches whitespace only.
func TestForDisplay(t *testing.T) {
	assert.Equal(t, `"Hello, World!"`, textnorm.ForDisplay(`  "Hello,   World!" `))
	assert.Equal(t, "", textnorm.ForDisplay("   "))
}

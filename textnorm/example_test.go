package textnorm_test

import (
	"fmt"

	"github.com/readalong/alignkit/textnorm"
)

// ExampleForMatching shows the full canonicalization pipeline: case folding,
// typographic quotes, contraction expansion, number words and punctuation.
func ExampleForMatching() {
	fmt.Println(textnorm.ForMatching(`“I can’t wait,” said Mr. Brontë — we leave at seven!`))
	// Output:
	// i cannot wait said mister bronte we leave at 7
}

// ExampleExtractSentences splits prose on sentence-terminal punctuation and
// keeps a trailing fragment.
func ExampleExtractSentences() {
	for _, s := range textnorm.ExtractSentences("She stopped. Really?! And then") {
		fmt.Println(s)
	}
	// Output:
	// She stopped.
	// Really?!
	// And then
}

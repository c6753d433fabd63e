package similarity_test

import (
	"fmt"

	"github.com/readalong/alignkit/similarity"
)

// ExampleJaroWinkler demonstrates the prefix-boosted score on the classic
// reference pair.
func ExampleJaroWinkler() {
	fmt.Printf("%.4f\n", similarity.JaroWinkler("MARTHA", "MARHTA"))
	// Output:
	// 0.9611
}

// ExamplePhonetic demonstrates how sound-alike spellings collide.
func ExamplePhonetic() {
	fmt.Println(similarity.Phonetic("metaphor"))
	fmt.Println(similarity.Phonetic("metafor"))
	// Output:
	// matafar
	// matafar
}

// ExampleScorer_Score demonstrates that a transcription substitution of a
// proper noun still clears the balanced matching threshold.
func ExampleScorer_Score() {
	s := similarity.DefaultScorer()
	got := s.Score("brettensteiner", "bredensteiner")
	fmt.Println(got > 0.7)
	fmt.Println(s.Score("metaphor", "metaphor"))
	// Output:
	// true
	// 1
}

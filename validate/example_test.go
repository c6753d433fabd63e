package validate_test

import (
	"fmt"

	"github.com/readalong/alignkit/align"
	"github.com/readalong/alignkit/validate"
)

// ExampleAlignment demonstrates validating a degraded alignment: the empty
// transcription is reported as findings, never thrown.
func ExampleAlignment() {
	content := []align.ContentToken{
		{Text: "words", Position: 0},
		{Text: "without", Position: 1},
		{Text: "audio", Position: 2},
	}

	res, err := align.Align(content, nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	report := validate.Alignment(res, nil, nil)
	fmt.Println("valid:", report.IsValid)
	fmt.Println("label:", report.Label)
	fmt.Printf("score: %.0f\n", report.Score)
	for _, f := range report.Findings {
		fmt.Printf("%s/%s\n", f.Severity, f.Category)
	}
	// Output:
	// valid: false
	// label: Poor
	// score: 55
	// error/confidence
	// error/coverage
	// error/coverage
}

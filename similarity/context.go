package similarity

const (
	// DefaultWindowSize is the number of neighboring words inspected on
	// each side of a token when computing contextual similarity.
	DefaultWindowSize = 3

	// beforeWeight and afterWeight split the contextual score between the
	// preceding and following windows. Preceding words weigh more: by the
	// time two sequences reach the same token they have usually already
	// agreed on what came before it.
	beforeWeight = 0.6
	afterWeight  = 0.4

	// nearMatchThreshold is the JaroWinkler score above which two window
	// words count as a near match, worth nearMatchCredit instead of 1.0.
	nearMatchThreshold = 0.8
	nearMatchCredit    = 0.7
)

// ContextScore compares the k-word neighborhoods of aSeq[i] and bSeq[j],
// each inside its own sequence, returning a [0,1] score.
//
// Each window is zipped nearest-word-first; a position scores 1.0 on exact
// equality, nearMatchCredit when JaroWinkler exceeds nearMatchThreshold,
// and 0 otherwise, averaged over the longer window. The preceding window is
// weighted beforeWeight, the following afterWeight. Two empty windows agree
// trivially and score 1.0.
//
// The score is asymmetric in its inputs: it depends on each token's
// position in its own sequence, not only on the tokens themselves.
func ContextScore(aSeq []string, i int, bSeq []string, j, k int) float64 {
	if k <= 0 {
		k = DefaultWindowSize
	}

	before := windowScore(precedingWindow(aSeq, i, k), precedingWindow(bSeq, j, k))
	after := windowScore(followingWindow(aSeq, i, k), followingWindow(bSeq, j, k))

	return beforeWeight*before + afterWeight*after
}

// precedingWindow collects up to k words before position i, nearest first.
func precedingWindow(seq []string, i, k int) []string {
	w := make([]string, 0, k)
	for p := i - 1; p >= 0 && len(w) < k; p-- {
		w = append(w, seq[p])
	}

	return w
}

// followingWindow collects up to k words after position i, nearest first.
func followingWindow(seq []string, i, k int) []string {
	w := make([]string, 0, k)
	for p := i + 1; p < len(seq) && len(w) < k; p++ {
		w = append(w, seq[p])
	}

	return w
}

// windowScore averages per-position agreement over the longer window, so a
// missing neighbor on either side counts against the score.
func windowScore(wa, wb []string) float64 {
	n := maxInt(len(wa), len(wb))
	if n == 0 {
		return 1.0
	}

	var sum float64
	for p := 0; p < minTwo(len(wa), len(wb)); p++ {
		switch {
		case wa[p] == wb[p]:
			sum += 1.0
		case JaroWinkler(wa[p], wb[p]) > nearMatchThreshold:
			sum += nearMatchCredit
		}
	}

	return sum / float64(n)
}

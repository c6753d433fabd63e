package similarity

const (
	// WinklerPrefixScale is the weight given to each rune of common prefix.
	WinklerPrefixScale = 0.1

	// WinklerMaxPrefix caps how many prefix runes earn the bonus.
	WinklerMaxPrefix = 4
)

// Jaro returns the Jaro similarity of a and b in [0,1]: matching runes
// within half the longer length, discounted by transpositions.
func Jaro(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 || lb == 0 {
		return 0.0
	}

	window := maxInt(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)
	var matches int
	for i := 0; i < la; i++ {
		lo := maxInt(0, i-window)
		hi := minTwo(lb-1, i+window)
		for j := lo; j <= hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++

			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Count transpositions between the matched subsequences.
	var transpositions int
	j := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2

	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

// JaroWinkler boosts Jaro similarity by a common-prefix bonus: up to
// WinklerMaxPrefix runes at WinklerPrefixScale each.
func JaroWinkler(a, b string) float64 {
	j := Jaro(a, b)
	if j == 0 {
		return 0.0
	}

	ra, rb := []rune(a), []rune(b)
	prefix := 0
	for prefix < len(ra) && prefix < len(rb) && prefix < WinklerMaxPrefix {
		if ra[prefix] != rb[prefix] {
			break
		}
		prefix++
	}

	return j + float64(prefix)*WinklerPrefixScale*(1-j)
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// minTwo returns the smaller of two ints.
func minTwo(a, b int) int {
	if a < b {
		return a
	}

	return b
}

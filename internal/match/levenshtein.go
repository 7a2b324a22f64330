package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-rune insertions, deletions or substitutions required to
// turn one into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in the row
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns a score between 0 and 1, where 1 means identical:
// 1 - distance / max(len(a), len(b)), lengths counted in runes.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// FoldedSimilarity compares a and b after folding both.
func FoldedSimilarity(a, b string) float64 {
	return Similarity(Fold(a), Fold(b))
}

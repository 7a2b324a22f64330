package match

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// DefaultThreshold is the minimum score for Closest to suggest a literal.
const DefaultThreshold = 0.6

// Candidate is a vocabulary literal scored against a value.
type Candidate struct {
	Literal string
	// Score is the best of the folded edit similarity and the word overlap (0-1).
	Score float64
}

// Score compares value with literal. Identical folded forms score 1.
func Score(value, literal string) float64 {
	return max(FoldedSimilarity(value, literal), wordOverlap(value, literal))
}

// Rank scores every literal against value and returns them best first.
// Ties keep the vocabulary order.
func Rank(value string, literals []string) []Candidate {
	candidates := lo.Map(literals, func(literal string, _ int) Candidate {
		return Candidate{Literal: literal, Score: Score(value, literal)}
	})

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return candidates
}

// Closest returns the best literal for value when it scores at least
// threshold. An empty value or vocabulary never has a suggestion.
func Closest(value string, literals []string, threshold float64) (string, bool) {
	if value == "" || len(literals) == 0 {
		return "", false
	}

	best := Rank(value, literals)[0]
	if best.Score < threshold {
		return "", false
	}

	return best.Literal, true
}

// wordOverlap is the Jaccard index of the word sets of a and b, so that
// reordered multi-word literals still match.
func wordOverlap(a, b string) float64 {
	wa, wb := lo.Uniq(Tokens(a)), lo.Uniq(Tokens(b))

	union := lo.Union(wa, wb)
	if len(union) == 0 {
		return 0
	}

	return float64(len(lo.Intersect(wa, wb))) / float64(len(union))
}

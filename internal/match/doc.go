// Package match suggests the closest controlled-vocabulary literal for a
// value that does not belong to the vocabulary.
//
// Key functions:
//   - Fold: case-folds a literal and strips separators
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders candidate literals by similarity
//   - Closest: picks the best literal above a threshold
package match

package match

import (
	"strings"
	"unicode"
)

// Fold normalizes a literal for fuzzy comparison: it lowercases the value and
// drops separators, so "Named Destination", "named_destination" and
// "NamedDestination" all fold to "nameddestination".
func Fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Tokens splits a literal on separators and case changes into lowercase
// words, e.g. "PhysicalRef" -> ["physical", "ref"].
func Tokens(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '/'
}

// startsToken reports whether a new word begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	// "physicalRef" splits before R
	if unicode.IsLower(prev) {
		return true
	}

	// "PDFPage" keeps PDF together and splits before Page
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

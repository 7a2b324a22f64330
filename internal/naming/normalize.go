package naming

import (
	"regexp"
	"strings"

	"github.com/defineEditor/parse-define-xml/internal/xmltree"
)

var (
	namespacePrefix = regexp.MustCompile(`^(?:def|arm):`)

	// renameCandidate selects keys eligible for case normalization.
	renameCandidate = regexp.MustCompile(`^[A-Z]|leafID`)
	allCaps         = regexp.MustCompile(`^[A-Z0-9_]+$`)
	abbreviation    = regexp.MustCompile(`[a-z](OID|CRF|ID)`)
	abbreviationFix = regexp.MustCompile(`^([a-zA-Z0-9]*[a-z])(OID|CRF|ID)`)
)

// odmVersionKey has no lowercase letter before its abbreviation, so it is
// spelled out explicitly.
const odmVersionKey = "ODMVersion"

// StripNamespace removes a leading def: or arm: prefix.
// Other prefixes (xlink:, xsi:, xml:, xmlns:) are kept.
func StripNamespace(key string) string {
	return namespacePrefix.ReplaceAllString(key, "")
}

// NormalizeKey rewrites a key to lower camel case.
// The rules are tried in order:
//  1. Keys that neither start with an uppercase letter nor contain "leafID" are kept.
//  2. All-caps keys are lowercased: "ODM" -> "odm", "OID" -> "oid".
//  3. A lowercase letter followed by OID, CRF or ID marks an abbreviation:
//     "ItemOID" -> "itemOid", "AnnotatedCRF" -> "annotatedCrf", "leafID" -> "leafId".
//  4. "ODMVersion" -> "odmVersion".
//  5. Anything else gets its first letter lowercased: "SASDatasetName" -> "sASDatasetName".
func NormalizeKey(key string) string {
	if !renameCandidate.MatchString(key) {
		return key
	}

	switch {
	case allCaps.MatchString(key):
		return strings.ToLower(key)
	case abbreviation.MatchString(key):
		return rewriteAbbreviation(key)
	case key == odmVersionKey:
		return "odmVersion"
	default:
		return lowerFirst(key)
	}
}

// rewriteAbbreviation lowercases the leading letter of the prefix and all but
// the first letter of the last abbreviation reachable from the start of the key.
// Keys whose prefix holds characters outside [a-zA-Z0-9] are returned unchanged.
func rewriteAbbreviation(key string) string {
	loc := abbreviationFix.FindStringSubmatchIndex(key)
	if loc == nil {
		return key
	}

	prefix := key[loc[2]:loc[3]]
	abbr := key[loc[4]:loc[5]]

	return lowerFirst(prefix) + abbr[:1] + strings.ToLower(abbr[1:]) + key[loc[1]:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// Normalize returns a copy of v with namespaces stripped from every key and
// every key rewritten by NormalizeKey. Sequence order and scalars are kept.
func Normalize(v xmltree.Value) xmltree.Value {
	return rewriteKeys(rewriteKeys(v, StripNamespace), NormalizeKey)
}

// rewriteKeys applies rename to every mapping key in the tree. When two keys
// collapse into one, the first position wins and the last value is kept.
func rewriteKeys(v xmltree.Value, rename func(string) string) xmltree.Value {
	switch t := v.(type) {
	case xmltree.Sequence:
		out := make(xmltree.Sequence, len(t))
		for i, item := range t {
			out[i] = rewriteKeys(item, rename)
		}

		return out
	case *xmltree.Mapping:
		out := xmltree.NewMapping()
		for _, key := range t.Keys() {
			child, _ := t.Get(key)
			out.Set(rename(key), rewriteKeys(child, rename))
		}

		return out
	default:
		return v
	}
}

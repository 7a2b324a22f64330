package define

import "regexp"

// The declaration and the stylesheet instruction are not part of the parsed
// tree, so they are read from the raw text.
var (
	declarationPattern = regexp.MustCompile(`(?s)<\?xml\s.*?\?>`)
	stylesheetPattern  = regexp.MustCompile(`(?s)<\?xml-stylesheet\s.*?\?>`)

	versionAttr  = regexp.MustCompile(`\sversion\s*=\s*["']([^"']+)["']`)
	encodingAttr = regexp.MustCompile(`\sencoding\s*=\s*["']([^"']+)["']`)
	typeAttr     = regexp.MustCompile(`\stype\s*=\s*["']([^"']+)["']`)
	hrefAttr     = regexp.MustCompile(`\shref\s*=\s*["']([^"']+)["']`)
)

func scanEnvelope(text string) (Declaration, StyleSheet) {
	var (
		decl  Declaration
		sheet StyleSheet
	)

	if pi := declarationPattern.FindString(text); pi != "" {
		decl.Version = submatch(versionAttr, pi)
		decl.Encoding = submatch(encodingAttr, pi)
	}

	if pi := stylesheetPattern.FindString(text); pi != "" {
		sheet.Type = submatch(typeAttr, pi)
		sheet.Href = submatch(hrefAttr, pi)
	}

	return decl, sheet
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}

	return ""
}

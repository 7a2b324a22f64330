package define

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/defineEditor/parse-define-xml/internal/diagnostic"
	"github.com/defineEditor/parse-define-xml/internal/match"
)

// VocabularyIssue is an attribute whose literal is not part of its published
// vocabulary. Parsing accepts such literals; CheckVocabulary reports them.
type VocabularyIssue struct {
	diagnostic.Location
	// Field is the attribute path below the element, e.g. "origin.type".
	Field string
	// Value is the literal found in the document.
	Value string
	// Suggestion is the closest published literal, empty when none is close.
	Suggestion string
}

// String formats the issue with its location and suggestion, if any.
func (i VocabularyIssue) String() string {
	msg := fmt.Sprintf("%s: unpublished %s %q", i.Location, i.Field, i.Value)
	if i.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", i.Suggestion)
	}

	return msg
}

// CheckVocabulary reports every controlled-vocabulary attribute of doc that
// holds an unpublished literal, in document order. Empty attributes are not
// reported.
func CheckVocabulary(doc DefineXML) []VocabularyIssue {
	c := &vocabularyChecker{version: doc.DefineVersion()}

	c.metaDataVersion(doc.Base())

	if arm, ok := doc.(*Document[ARMMetaDataVersion]); ok {
		c.analysisResults(arm.ODM.Study.MetaDataVersion.AnalysisResultDisplays)
	}

	return c.issues
}

type vocabularyChecker struct {
	version Version
	issues  []VocabularyIssue
}

func (c *vocabularyChecker) metaDataVersion(mdv *MetaDataVersion) {
	mdvLoc := diagnostic.Location{Element: "MetaDataVersion", OID: mdv.OID}

	if mdv.Standards != nil {
		for oid, std := range mdv.Standards.All() {
			loc := diagnostic.Location{Element: "Standard", OID: oid}
			checkLiteral(c, loc, "name", std.Name, StandardName.IsKnown, standardNames)
			checkLiteral(c, loc, "type", std.Type, StandardType.IsKnown, standardTypes)
			checkLiteral(c, loc, "status", std.Status, StandardStatus.IsKnown, standardStatuses)
		}
	}

	c.documentRefs(mdvLoc, "annotatedCrf", mdv.AnnotatedCRF)
	c.documentRefs(mdvLoc, "supplementalDoc", mdv.SupplementalDoc)

	for oid, ig := range mdv.ItemGroupDefs.All() {
		loc := diagnostic.Location{Element: "ItemGroupDef", OID: oid}
		checkLiteral(c, loc, "purpose", ig.Purpose, ItemGroupPurpose.IsKnown, itemGroupPurposes)

		if ig.Class == nil {
			continue
		}

		checkLiteral(c, loc, "class", ig.Class.Name, ClassName.IsKnown, classNames)

		for _, sub := range ig.Class.SubClasses {
			checkLiteral(c, loc, "class.subClass", sub.Name, SubClassName.IsKnown, subClassNames)
		}
	}

	originKnown := func(t OriginType) bool { return t.IsKnownIn(c.version) }

	for oid, item := range mdv.ItemDefs.All() {
		loc := diagnostic.Location{Element: "ItemDef", OID: oid}
		checkLiteral(c, loc, "dataType", item.DataType, DataType.IsKnown, dataTypes)

		for _, origin := range item.Origins {
			checkLiteral(c, loc, "origin.type", origin.Type, originKnown, originTypes[c.version])
			checkLiteral(c, loc, "origin.source", origin.Source, OriginSource.IsKnown, originSources)
			c.documentRefs(loc, "origin.documentRef", origin.DocumentRefs)
		}
	}

	if mdv.WhereClauseDefs != nil {
		for oid, wc := range mdv.WhereClauseDefs.All() {
			loc := diagnostic.Location{Element: "WhereClauseDef", OID: oid}

			for _, rc := range wc.RangeChecks {
				checkLiteral(c, loc, "rangeCheck.comparator", rc.Comparator, Comparator.IsKnown, comparators)
				checkLiteral(c, loc, "rangeCheck.softHard", rc.SoftHard, SoftHard.IsKnown, softHards)
			}
		}
	}

	if mdv.CodeLists != nil {
		for oid, cl := range mdv.CodeLists.All() {
			loc := diagnostic.Location{Element: "CodeList", OID: oid}
			checkLiteral(c, loc, "dataType", cl.DataType, DataType.IsKnownForCodeList, codeListDataTypes)
		}
	}

	if mdv.MethodDefs != nil {
		for oid, method := range mdv.MethodDefs.All() {
			loc := diagnostic.Location{Element: "MethodDef", OID: oid}
			checkLiteral(c, loc, "type", method.Type, MethodType.IsKnown, methodTypes)
			c.documentRefs(loc, "documentRef", method.DocumentRefs)
		}
	}

	if mdv.CommentDefs != nil {
		for oid, comment := range mdv.CommentDefs.All() {
			c.documentRefs(diagnostic.Location{Element: "CommentDef", OID: oid}, "documentRef", comment.DocumentRefs)
		}
	}
}

func (c *vocabularyChecker) analysisResults(displays *AnalysisResultDisplays) {
	if displays == nil {
		return
	}

	for displayOID, display := range displays.ResultDisplays.All() {
		c.documentRefs(diagnostic.Location{Element: "ResultDisplay", OID: displayOID}, "documentRef", display.Documents)

		for oid, result := range display.AnalysisResults.All() {
			loc := diagnostic.Location{Element: "AnalysisResult", OID: oid}
			checkLiteral(c, loc, "analysisReason", result.AnalysisReason, AnalysisReason.IsKnown, analysisReasons)
			checkLiteral(c, loc, "analysisPurpose", result.AnalysisPurpose, AnalysisPurpose.IsKnown, analysisPurposes)

			if result.Documentation != nil {
				c.documentRefs(loc, "documentation.documentRef", result.Documentation.Documents)
			}

			if result.ProgrammingCode != nil {
				c.documentRefs(loc, "programmingCode.documentRef", result.ProgrammingCode.Documents)
			}
		}
	}
}

func (c *vocabularyChecker) documentRefs(loc diagnostic.Location, field string, refs []DocumentRef) {
	for _, ref := range refs {
		for _, page := range ref.PDFPageRefs {
			checkLiteral(c, loc, field+".pdfPageRef.type", page.Type, PDFPageRefType.IsKnown, pdfPageRefTypes)
		}
	}
}

func checkLiteral[T ~string](
	c *vocabularyChecker,
	loc diagnostic.Location,
	field string,
	value T,
	known func(T) bool,
	vocabulary []T,
) {
	if value == "" || known(value) {
		return
	}

	literals := lo.Map(vocabulary, func(v T, _ int) string { return string(v) })
	suggestion, _ := match.Closest(string(value), literals, match.DefaultThreshold)

	c.issues = append(c.issues, VocabularyIssue{
		Location:   loc,
		Field:      field,
		Value:      string(value),
		Suggestion: suggestion,
	})
}

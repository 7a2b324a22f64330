// Package define maps CDISC Define-XML 2.0 and 2.1 documents, optionally
// carrying Analysis Results Metadata 1.0, into typed records.
//
// # Pipeline
//
// The raw text is parsed into a generic tree (internal/xmltree), every key is
// rewritten to lower camel case with the def: and arm: prefixes removed
// (internal/naming), and a mapper configured for the requested version walks
// the tree. The XML declaration and the stylesheet instruction are read from
// the raw text before parsing.
//
// # Entry points
//
//	doc, err := define.ParseWithoutARM(text, define.Version21)
//	armDoc, err := define.ParseWithARM(text, define.Version20)
//	parsed, err := define.Parse(text, version, arm) // DefineXML
//
// # Collections
//
// Keyed collections are OrderedMap values: Items holds the records by OID and
// Order holds the OIDs in document order. Collections that are optional in the
// schema are nil pointers when the document does not contain them.
//
// # Errors
//
// Mapping stops at the first problem. Errors match these sentinels with
// errors.Is, and errors.As extracts a *LiteralError or *ShapeError:
//   - ErrXMLParse: the text is not well-formed XML
//   - ErrMissingODM: the root element is not ODM
//   - ErrUnsupportedVersion: the version is neither 2.0 nor 2.1
//   - ErrInvalidLiteral: a Yes/No attribute holds another literal
//   - ErrShape: a required element is missing or a number does not parse
//
// # Vocabularies
//
// Attributes with a controlled vocabulary (origin type, comparator, class and
// so on) are typed strings and keep whatever literal the document holds.
// CheckVocabulary lists the literals that are not published, each with the
// closest published literal when one is close enough.
package define

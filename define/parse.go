package define

import (
	"fmt"

	"github.com/defineEditor/parse-define-xml/internal/diagnostic"
	"github.com/defineEditor/parse-define-xml/internal/naming"
	"github.com/defineEditor/parse-define-xml/internal/xmltree"
)

// Parse maps a Define-XML document of the given version. With arm set the
// result is a *Document[ARMMetaDataVersion], otherwise a
// *Document[MetaDataVersion].
func Parse(text string, version Version, arm bool) (DefineXML, error) {
	if arm {
		doc, err := ParseWithARM(text, version)
		if err != nil {
			return nil, err
		}

		return doc, nil
	}

	doc, err := ParseWithoutARM(text, version)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ParseWithoutARM maps a Define-XML document and ignores analysis results.
func ParseWithoutARM(text string, version Version) (*Document[MetaDataVersion], error) {
	return parseDocument(text, version, false, mapper.mapMetaDataVersion)
}

// ParseWithARM maps a Define-XML document together with its analysis results.
func ParseWithARM(text string, version Version) (*Document[ARMMetaDataVersion], error) {
	return parseDocument(text, version, true, mapper.mapARMMetaDataVersion)
}

// Parse20 maps a Define-XML 2.0 document.
func Parse20(text string, arm bool) (DefineXML, error) {
	return Parse(text, Version20, arm)
}

// Parse21 maps a Define-XML 2.1 document.
func Parse21(text string, arm bool) (DefineXML, error) {
	return Parse(text, Version21, arm)
}

func parseDocument[M Metadata](
	text string,
	version Version,
	arm bool,
	mapMDV func(mapper, node) (M, error),
) (*Document[M], error) {
	caps, err := capabilitiesFor(version)
	if err != nil {
		return nil, err
	}

	decl, sheet := scanEnvelope(text)

	tree, err := xmltree.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", diagnostic.ErrXMLParse, err)
	}

	normalized, _ := naming.Normalize(tree).(*xmltree.Mapping)

	root, ok := normalized.Get("odm")
	if !ok {
		return nil, diagnostic.ErrMissingODM
	}

	m := mapper{caps: caps, arm: arm}

	odm, err := mapODM(m, newNode(xmltree.NewElement(root), "odm").withOID(""), mapMDV)
	if err != nil {
		return nil, err
	}

	return &Document[M]{Version: caps.version, XML: decl, StyleSheet: sheet, ODM: odm}, nil
}

package define

import "github.com/defineEditor/parse-define-xml/internal/diagnostic"

func (m mapper) mapARMMetaDataVersion(n node) (ARMMetaDataVersion, error) {
	base, err := m.mapMetaDataVersion(n)
	if err != nil {
		return ARMMetaDataVersion{}, err
	}

	displays, err := m.mapAnalysisResultDisplays(n)
	if err != nil {
		return ARMMetaDataVersion{}, err
	}

	return ARMMetaDataVersion{MetaDataVersion: base, AnalysisResultDisplays: displays}, nil
}

// mapAnalysisResultDisplays returns nil when the metadata version has no
// AnalysisResultDisplays element.
func (m mapper) mapAnalysisResultDisplays(mdv node) (*AnalysisResultDisplays, error) {
	root, ok, err := mdv.first("analysisResultDisplays")
	if err != nil || !ok {
		return nil, err
	}

	displays, err := mapAll(root, "resultDisplay", m.mapResultDisplay, func(rd ResultDisplay) string {
		return rd.OID
	})
	if err != nil {
		return nil, err
	}

	return &AnalysisResultDisplays{ResultDisplays: displays}, nil
}

func (m mapper) mapResultDisplay(n node) (ResultDisplay, error) {
	rd := ResultDisplay{OID: n.attr("oid"), Name: n.attr("name")}

	var err error

	if rd.Description, err = mapTranslatedTexts(n, "description"); err != nil {
		return ResultDisplay{}, err
	}

	if rd.Documents, err = m.documentRefsOf(n); err != nil {
		return ResultDisplay{}, err
	}

	rd.AnalysisResults, err = mapAll(n, "analysisResult", m.mapAnalysisResult, func(ar AnalysisResult) string {
		return ar.OID
	})
	if err != nil {
		return ResultDisplay{}, err
	}

	return rd, nil
}

func (m mapper) mapAnalysisResult(n node) (AnalysisResult, error) {
	ar := AnalysisResult{
		OID:             n.attr("oid"),
		ParameterOID:    n.attr("parameterOid"),
		AnalysisReason:  AnalysisReason(n.attr("analysisReason")),
		AnalysisPurpose: AnalysisPurpose(n.attr("analysisPurpose")),
	}

	var err error

	if ar.Description, err = mapTranslatedTexts(n, "description"); err != nil {
		return AnalysisResult{}, err
	}

	datasets, err := n.required("analysisDatasets")
	if err != nil {
		return AnalysisResult{}, err
	}

	if ar.AnalysisDatasets, err = mapAnalysisDatasets(datasets); err != nil {
		return AnalysisResult{}, err
	}

	if doc, ok, err := n.first("documentation"); err != nil {
		return AnalysisResult{}, err
	} else if ok {
		if ar.Documentation, err = m.mapDocumentation(doc); err != nil {
			return AnalysisResult{}, err
		}
	}

	if code, ok, err := n.first("programmingCode"); err != nil {
		return AnalysisResult{}, err
	} else if ok {
		if ar.ProgrammingCode, err = m.mapProgrammingCode(code); err != nil {
			return AnalysisResult{}, err
		}
	}

	return ar, nil
}

// mapAnalysisDatasets keys datasets by their item group OID.
func mapAnalysisDatasets(n node) (AnalysisDatasets, error) {
	datasets, err := mapAll(n, "analysisDataset", mapAnalysisDataset, func(ds AnalysisDataset) string {
		return ds.ItemGroupOID
	})
	if err != nil {
		return AnalysisDatasets{}, err
	}

	return AnalysisDatasets{Datasets: datasets, CommentOID: n.attr("commentOid")}, nil
}

func mapAnalysisDataset(n node) (AnalysisDataset, error) {
	ds := AnalysisDataset{ItemGroupOID: n.attr("itemGroupOid")}
	n = n.withOID(ds.ItemGroupOID)

	var err error

	if ds.WhereClauseRefs, err = refOIDs(n, "whereClauseRef", "whereClauseOid"); err != nil {
		return AnalysisDataset{}, err
	}

	if ds.AnalysisVariables, err = refOIDs(n, "analysisVariable", "itemOid"); err != nil {
		return AnalysisDataset{}, err
	}

	return ds, nil
}

func (m mapper) mapDocumentation(n node) (*Documentation, error) {
	doc := &Documentation{}

	var err error

	if doc.Description, err = mapTranslatedTexts(n, "description"); err != nil {
		return nil, err
	}

	if doc.Documents, err = m.documentRefsOf(n); err != nil {
		return nil, err
	}

	return doc, nil
}

// mapProgrammingCode reads Context from the element's attributes and Code
// from the text of its first Code child. A Code child that holds anything
// other than plain text is rejected.
func (m mapper) mapProgrammingCode(n node) (*ProgrammingCode, error) {
	pc := &ProgrammingCode{Context: n.attr("context")}

	code, ok, err := n.first("code")
	if err != nil {
		return nil, err
	}

	if ok {
		if !code.IsTextOnly() {
			return nil, diagnostic.Shapef(n.loc, "Code must contain only text")
		}

		pc.Code = code.Text()
	}

	if pc.Documents, err = m.documentRefsOf(n); err != nil {
		return nil, err
	}

	return pc, nil
}

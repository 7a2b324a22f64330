package define

// Analysis Results Metadata records.

// AnalysisResultDisplays is the root of the analysis results subtree.
type AnalysisResultDisplays struct {
	ResultDisplays OrderedMap[ResultDisplay] `json:"resultDisplays"`
}

// ResultDisplay is one table, figure or listing.
type ResultDisplay struct {
	OID             string                     `json:"oid"`
	Name            string                     `json:"name"`
	Description     []TranslatedText           `json:"description,omitempty"`
	Documents       []DocumentRef              `json:"documents,omitempty"`
	AnalysisResults OrderedMap[AnalysisResult] `json:"analysisResults"`
}

// AnalysisResult is one analysis shown on a display.
type AnalysisResult struct {
	OID              string           `json:"oid"`
	ParameterOID     string           `json:"parameterOid,omitempty"`
	AnalysisReason   AnalysisReason   `json:"analysisReason"`
	AnalysisPurpose  AnalysisPurpose  `json:"analysisPurpose"`
	Description      []TranslatedText `json:"description,omitempty"`
	AnalysisDatasets AnalysisDatasets `json:"analysisDatasets"`
	Documentation    *Documentation   `json:"documentation,omitempty"`
	ProgrammingCode  *ProgrammingCode `json:"programmingCode,omitempty"`
}

// AnalysisDatasets lists the datasets used by an analysis, keyed by item
// group OID.
type AnalysisDatasets struct {
	Datasets   OrderedMap[AnalysisDataset] `json:"analysisDatasets"`
	CommentOID string                      `json:"commentOid,omitempty"`
}

// AnalysisDataset is one dataset of an analysis.
type AnalysisDataset struct {
	ItemGroupOID      string   `json:"itemGroupOid"`
	WhereClauseRefs   []string `json:"whereClauseRefs,omitempty"`
	AnalysisVariables []string `json:"analysisVariables,omitempty"`
}

// Documentation describes an analysis in prose.
type Documentation struct {
	Description []TranslatedText `json:"description,omitempty"`
	Documents   []DocumentRef    `json:"documents,omitempty"`
}

// ProgrammingCode points to or embeds the code of an analysis.
type ProgrammingCode struct {
	Context   string        `json:"context,omitempty"`
	Code      string        `json:"code,omitempty"`
	Documents []DocumentRef `json:"documents,omitempty"`
}

// ARMMetaDataVersion is a MetaDataVersion extended with analysis results.
// AnalysisResultDisplays is nil when the document has none.
type ARMMetaDataVersion struct {
	MetaDataVersion

	AnalysisResultDisplays *AnalysisResultDisplays `json:"analysisResultDisplays,omitempty"`
}

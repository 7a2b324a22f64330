package define

import "slices"

// Controlled vocabularies of Define-XML. The mapper stores whatever literal
// the document holds; IsKnown reports whether it belongs to the published
// vocabulary. Only the Yes/No style flags are enforced while mapping.

// ItemGroupPurpose is ItemGroupDef/@Purpose.
type ItemGroupPurpose string

const (
	PurposeTabulation ItemGroupPurpose = "Tabulation"
	PurposeAnalysis   ItemGroupPurpose = "Analysis"
)

var itemGroupPurposes = []ItemGroupPurpose{PurposeTabulation, PurposeAnalysis}

// IsKnown reports whether p is a published purpose.
func (p ItemGroupPurpose) IsKnown() bool {
	return slices.Contains(itemGroupPurposes, p)
}

// DataType is ItemDef/@DataType and CodeList/@DataType.
type DataType string

const (
	DataTypeText     DataType = "text"
	DataTypeFloat    DataType = "float"
	DataTypeInteger  DataType = "integer"
	DataTypeDate     DataType = "date"
	DataTypeDatetime DataType = "datetime"
)

var (
	dataTypes         = []DataType{DataTypeText, DataTypeFloat, DataTypeInteger, DataTypeDate, DataTypeDatetime}
	codeListDataTypes = []DataType{DataTypeText, DataTypeFloat, DataTypeInteger}
)

// IsKnown reports whether d is a published item data type.
func (d DataType) IsKnown() bool {
	return slices.Contains(dataTypes, d)
}

// IsKnownForCodeList reports whether d is allowed on a code list.
func (d DataType) IsKnownForCodeList() bool {
	return slices.Contains(codeListDataTypes, d)
}

// Comparator is RangeCheck/@Comparator.
type Comparator string

const (
	ComparatorLT    Comparator = "LT"
	ComparatorLE    Comparator = "LE"
	ComparatorGT    Comparator = "GT"
	ComparatorGE    Comparator = "GE"
	ComparatorEQ    Comparator = "EQ"
	ComparatorNE    Comparator = "NE"
	ComparatorIN    Comparator = "IN"
	ComparatorNOTIN Comparator = "NOTIN"
)

var comparators = []Comparator{
	ComparatorLT, ComparatorLE, ComparatorGT, ComparatorGE,
	ComparatorEQ, ComparatorNE, ComparatorIN, ComparatorNOTIN,
}

// IsKnown reports whether c is a published comparator.
func (c Comparator) IsKnown() bool {
	return slices.Contains(comparators, c)
}

// SoftHard is RangeCheck/@SoftHard.
type SoftHard string

const (
	Soft SoftHard = "Soft"
	Hard SoftHard = "Hard"
)

var softHards = []SoftHard{Soft, Hard}

// IsKnown reports whether s is Soft or Hard.
func (s SoftHard) IsKnown() bool {
	return slices.Contains(softHards, s)
}

// PDFPageRefType is PDFPageRef/@Type.
type PDFPageRefType string

const (
	PhysicalRef      PDFPageRefType = "PhysicalRef"
	NamedDestination PDFPageRefType = "NamedDestination"
)

var pdfPageRefTypes = []PDFPageRefType{PhysicalRef, NamedDestination}

// IsKnown reports whether t is a published page reference type.
func (t PDFPageRefType) IsKnown() bool {
	return slices.Contains(pdfPageRefTypes, t)
}

// MethodType is MethodDef/@Type.
type MethodType string

const (
	MethodComputation MethodType = "Computation"
	MethodImputation  MethodType = "Imputation"
)

var methodTypes = []MethodType{MethodComputation, MethodImputation}

// IsKnown reports whether t is a published method type.
func (t MethodType) IsKnown() bool {
	return slices.Contains(methodTypes, t)
}

// OriginType is Origin/@Type. The vocabulary changed between 2.0 and 2.1.
type OriginType string

const (
	OriginCRF          OriginType = "CRF" // 2.0
	OriginEDT          OriginType = "eDT" // 2.0
	OriginCollected    OriginType = "Collected"
	OriginDerived      OriginType = "Derived"
	OriginAssigned     OriginType = "Assigned"
	OriginProtocol     OriginType = "Protocol"
	OriginPredecessor  OriginType = "Predecessor"
	OriginNotAvailable OriginType = "Not Available"
	OriginOther        OriginType = "Other"
)

var originTypes = map[Version][]OriginType{
	Version20: {OriginCRF, OriginDerived, OriginAssigned, OriginProtocol, OriginEDT, OriginPredecessor},
	Version21: {
		OriginAssigned, OriginCollected, OriginDerived, OriginNotAvailable,
		OriginOther, OriginPredecessor, OriginProtocol,
	},
}

// IsKnownIn reports whether t belongs to the origin vocabulary of v.
func (t OriginType) IsKnownIn(v Version) bool {
	return slices.Contains(originTypes[v], t)
}

// OriginSource is Origin/@Source (2.1).
type OriginSource string

const (
	SourceInvestigator OriginSource = "Investigator"
	SourceSponsor      OriginSource = "Sponsor"
	SourceSubject      OriginSource = "Subject"
	SourceVendor       OriginSource = "Vendor"
)

var originSources = []OriginSource{SourceInvestigator, SourceSponsor, SourceSubject, SourceVendor}

// IsKnown reports whether s is a published origin source.
func (s OriginSource) IsKnown() bool {
	return slices.Contains(originSources, s)
}

// ClassName is the item group class.
type ClassName string

const (
	ClassADaMOther               ClassName = "ADAM OTHER"
	ClassBasicDataStructure      ClassName = "BASIC DATA STRUCTURE"
	ClassDeviceLevelAnalysis     ClassName = "DEVICE LEVEL ANALYSIS DATASET"
	ClassEvents                  ClassName = "EVENTS"
	ClassFindingsAbout           ClassName = "FINDINGS ABOUT"
	ClassFindings                ClassName = "FINDINGS"
	ClassInterventions           ClassName = "INTERVENTIONS"
	ClassMedicalDeviceBasicData  ClassName = "MEDICAL DEVICE BASIC DATA STRUCTURE"
	ClassMedicalDeviceOccurrence ClassName = "MEDICAL DEVICE OCCURRENCE DATA STRUCTURE"
	ClassOccurrenceDataStructure ClassName = "OCCURRENCE DATA STRUCTURE"
	ClassReferenceDataStructure  ClassName = "REFERENCE DATA STRUCTURE"
	ClassRelationship            ClassName = "RELATIONSHIP"
	ClassSpecialPurpose          ClassName = "SPECIAL PURPOSE"
	ClassStudyReference          ClassName = "STUDY REFERENCE"
	ClassSubjectLevelAnalysis    ClassName = "SUBJECT LEVEL ANALYSIS DATASET"
	ClassTrialDesign             ClassName = "TRIAL DESIGN"
)

var classNames = []ClassName{
	ClassADaMOther, ClassBasicDataStructure, ClassDeviceLevelAnalysis, ClassEvents,
	ClassFindingsAbout, ClassFindings, ClassInterventions, ClassMedicalDeviceBasicData,
	ClassMedicalDeviceOccurrence, ClassOccurrenceDataStructure, ClassReferenceDataStructure,
	ClassRelationship, ClassSpecialPurpose, ClassStudyReference, ClassSubjectLevelAnalysis,
	ClassTrialDesign,
}

// IsKnown reports whether c is a published item group class.
func (c ClassName) IsKnown() bool {
	return slices.Contains(classNames, c)
}

// SubClassName is the item group subclass (2.1).
type SubClassName string

const (
	SubClassNonCompartmental       SubClassName = "NON-COMPARTMENTAL ANALYSIS"
	SubClassPopulationPK           SubClassName = "POPULATION PHARMACOKINETIC ANALYSIS"
	SubClassTimeToEvent            SubClassName = "TIME-TO-EVENT"
	SubClassMedicalDeviceTimeToEvt SubClassName = "MEDICAL DEVICE TIME-TO-EVENT"
	SubClassAdverseEvent           SubClassName = "ADVERSE EVENT"
)

var subClassNames = []SubClassName{
	SubClassNonCompartmental, SubClassPopulationPK, SubClassTimeToEvent,
	SubClassMedicalDeviceTimeToEvt, SubClassAdverseEvent,
}

// IsKnown reports whether s is a published subclass.
func (s SubClassName) IsKnown() bool {
	return slices.Contains(subClassNames, s)
}

// StandardName is Standard/@Name (2.1).
type StandardName string

const (
	StandardADaMOCCDSIG   StandardName = "ADaM-OCCDSIG"
	StandardADaMIG        StandardName = "ADaMIG"
	StandardADaMIGMD      StandardName = "ADaMIG-MD"
	StandardADaMIGNCA     StandardName = "ADaMIG-NCA"
	StandardADaMIGPopPK   StandardName = "ADaMIG-popPK"
	StandardBIMO          StandardName = "BIMO"
	StandardCDISCNCI      StandardName = "CDISC/NCI"
	StandardSDTMIG        StandardName = "SDTMIG"
	StandardSDTMIGAP      StandardName = "SDTMIG-AP"
	StandardSDTMIGMD      StandardName = "SDTMIG-MD"
	StandardSENDIG        StandardName = "SENDIG"
	StandardSENDIGAR      StandardName = "SENDIG-AR"
	StandardSENDIGDART    StandardName = "SENDIG-DART"
	StandardSENDIGGenetox StandardName = "SENDIG-GENETOX"
)

var standardNames = []StandardName{
	StandardADaMOCCDSIG, StandardADaMIG, StandardADaMIGMD, StandardADaMIGNCA,
	StandardADaMIGPopPK, StandardBIMO, StandardCDISCNCI, StandardSDTMIG,
	StandardSDTMIGAP, StandardSDTMIGMD, StandardSENDIG, StandardSENDIGAR,
	StandardSENDIGDART, StandardSENDIGGenetox,
}

// IsKnown reports whether n is a published standard name.
func (n StandardName) IsKnown() bool {
	return slices.Contains(standardNames, n)
}

// StandardType is Standard/@Type (2.1).
type StandardType string

const (
	StandardTypeCT StandardType = "CT"
	StandardTypeIG StandardType = "IG"
)

var standardTypes = []StandardType{StandardTypeCT, StandardTypeIG}

// IsKnown reports whether t is CT or IG.
func (t StandardType) IsKnown() bool {
	return slices.Contains(standardTypes, t)
}

// StandardStatus is Standard/@Status (2.1). Other values are allowed.
type StandardStatus string

const (
	StatusFinal       StandardStatus = "FINAL"
	StatusDraft       StandardStatus = "DRAFT"
	StatusProvisional StandardStatus = "PROVISIONAL"
)

var standardStatuses = []StandardStatus{StatusFinal, StatusDraft, StatusProvisional}

// IsKnown reports whether s is one of the named statuses.
func (s StandardStatus) IsKnown() bool {
	return slices.Contains(standardStatuses, s)
}

// AnalysisReason is AnalysisResult/@AnalysisReason (ARM). Other values are allowed.
type AnalysisReason string

const (
	ReasonDataDriven          AnalysisReason = "DATA DRIVEN"
	ReasonRequestedByAgency   AnalysisReason = "REQUESTED BY REGULATORY AGENCY"
	ReasonSpecifiedInProtocol AnalysisReason = "SPECIFIED IN PROTOCOL"
	ReasonSpecifiedInSAP      AnalysisReason = "SPECIFIED IN SAP"
)

var analysisReasons = []AnalysisReason{
	ReasonDataDriven, ReasonRequestedByAgency, ReasonSpecifiedInProtocol, ReasonSpecifiedInSAP,
}

// IsKnown reports whether r is one of the named reasons.
func (r AnalysisReason) IsKnown() bool {
	return slices.Contains(analysisReasons, r)
}

// AnalysisPurpose is AnalysisResult/@AnalysisPurpose (ARM). Other values are allowed.
type AnalysisPurpose string

const (
	PurposeExploratoryOutcome AnalysisPurpose = "EXPLORATORY OUTCOME MEASURE"
	PurposePrimaryOutcome     AnalysisPurpose = "PRIMARY OUTCOME MEASURE"
	PurposeSecondaryOutcome   AnalysisPurpose = "SECONDARY OUTCOME MEASURE"
)

var analysisPurposes = []AnalysisPurpose{PurposeExploratoryOutcome, PurposePrimaryOutcome, PurposeSecondaryOutcome}

// IsKnown reports whether p is one of the named purposes.
func (p AnalysisPurpose) IsKnown() bool {
	return slices.Contains(analysisPurposes, p)
}

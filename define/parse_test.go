package define

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestParseWithoutARM_SDTM21(t *testing.T) {
	doc, err := ParseWithoutARM(readFixture(t, "define.sdtm.21.xml"), Version21)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, Version21, doc.Version)
	assert.Equal(t, Declaration{Version: "1.0", Encoding: "UTF-8"}, doc.XML)
	assert.Equal(t, StyleSheet{Type: "text/xsl", Href: "define2-1.xsl"}, doc.StyleSheet)

	// ODM attributes
	odm := doc.ODM
	assert.Equal(t, "http://www.cdisc.org/ns/odm/v1.3", odm.XMLNS)
	assert.Equal(t, "http://www.cdisc.org/ns/def/v2.1", odm.XMLNSDef)
	assert.Equal(t, "http://www.w3.org/1999/xlink", odm.XMLNSXlink)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema-instance", odm.XMLNSXsi)
	assert.Contains(t, odm.SchemaLocation, "define2-1-0.xsd")
	assert.Empty(t, odm.XMLNSArm)
	assert.Equal(t, "1.3.2", odm.ODMVersion)
	assert.Equal(t, "Snapshot", odm.FileType)
	assert.Equal(t, "www.cdisc.org/StudyCDISC01_1/1/Define-XML_2.1.0", odm.FileOID)
	assert.Equal(t, "2020-05-12T09:10:30", odm.CreationDateTime)
	assert.Equal(t, "CDISC XML Technologies Team", odm.Originator)
	assert.Equal(t, "Define Editor", odm.SourceSystem)
	assert.Equal(t, "1.2.0", odm.SourceSystemVersion)
	assert.Equal(t, "Submission", odm.Context)

	// Study
	assert.Equal(t, "ST.CDISC01", odm.Study.OID)
	assert.Equal(t, GlobalVariables{
		StudyName:        "CDISC01",
		StudyDescription: "CDISC-Sequence-SDTM Test Study",
		ProtocolName:     "CDISC01",
	}, odm.Study.GlobalVariables)

	mdv := odm.Study.MetaDataVersion
	assert.Equal(t, "MDV.CDISC01.SDTMIG.3.3", mdv.OID)
	assert.Equal(t, "Study CDISC01, Data Definitions", mdv.Name)
	assert.Equal(t, "Data Definitions for CDISC01 SDTM datasets", mdv.Description)
	assert.Equal(t, "2.1.0", mdv.DefineVersion)
	assert.Equal(t, "COM.MDV", mdv.CommentOID)
	assert.Empty(t, mdv.StandardName)

	// Standards
	require.NotNil(t, mdv.Standards)
	assert.Equal(t, []string{"STD.1", "STD.2"}, mdv.Standards.Order)
	assert.Equal(t, Standard{
		OID:           "STD.2",
		Name:          StandardCDISCNCI,
		Type:          StandardTypeCT,
		Version:       "2019-12-20",
		PublishingSet: "SDTM",
		Status:        "Final",
	}, mdv.Standards.Items["STD.2"])

	// Documents
	assert.Equal(t, []DocumentRef{{LeafID: "LF.acrf"}}, mdv.AnnotatedCRF)
	assert.Equal(t, []DocumentRef{{LeafID: "LF.cSDRG"}}, mdv.SupplementalDoc)

	assert.Empty(t, orderErrors(&mdv), spew.Sdump(mdv.ItemGroupDefs.Order))
}

func TestParseWithoutARM_SDTM21_ItemGroups(t *testing.T) {
	doc, err := ParseWithoutARM(readFixture(t, "define.sdtm.21.xml"), Version21)
	require.NoError(t, err)

	groups := doc.ODM.Study.MetaDataVersion.ItemGroupDefs
	assert.Equal(t, []string{"IG.DM", "IG.VS", "IG.SUPPVS"}, groups.Order)

	// Flat class, leaf and item refs
	dm := groups.Items["IG.DM"]
	assert.False(t, dm.Repeating)
	assert.Equal(t, ptr(false), dm.IsReferenceData)
	assert.Equal(t, PurposeTabulation, dm.Purpose)
	assert.Equal(t, "DM", dm.Domain)
	assert.Equal(t, "DM", dm.SASDatasetName)
	assert.Equal(t, "One record per subject", dm.Structure)
	assert.Equal(t, "STD.1", dm.StandardOID)
	assert.Equal(t, "LF.DM", dm.ArchiveLocationID)
	assert.Equal(t, &ItemGroupClass{Name: ClassSpecialPurpose}, dm.Class)
	assert.Equal(t, &Leaf{ID: "LF.DM", Href: "dm.xpt", Title: "dm.xpt"}, dm.Leaf)
	assert.Equal(t, []TranslatedText{{Lang: "en", Value: "Demographics"}}, dm.Description)
	assert.Equal(t, []string{"IT.STUDYID", "IT.DM.USUBJID", "IT.DM.SEX"}, dm.ItemRefs.Order)
	assert.Equal(t, ItemRef{
		ItemOID:     "IT.STUDYID",
		Mandatory:   true,
		OrderNumber: ptr(1),
		KeySequence: ptr(1),
		Role:        "Identifier",
	}, dm.ItemRefs.Items["IT.STUDYID"])
	assert.Nil(t, dm.ItemRefs.Items["IT.DM.SEX"].KeySequence)

	// Class with subclasses
	vs := groups.Items["IG.VS"]
	assert.True(t, vs.Repeating)
	assert.Equal(t, "COM.VS", vs.CommentOID)
	assert.Equal(t, &ItemGroupClass{
		Name:       ClassFindings,
		SubClasses: []ItemGroupSubClass{{Name: SubClassAdverseEvent, ParentClassName: "FINDINGS"}},
	}, vs.Class)
	assert.True(t, vs.ItemRefs.Items["IT.VS.VSPOS"].IsNonStandard)
	assert.False(t, vs.ItemRefs.Items["IT.VS.VSORRES"].Mandatory)
	assert.False(t, vs.IsNonStandard)

	// Non-standard group without data, and a reference missing its ItemOID
	supp := groups.Items["IG.SUPPVS"]
	assert.True(t, supp.IsNonStandard)
	assert.True(t, supp.HasNoData)
	assert.Nil(t, supp.Leaf)
	assert.Equal(t, ClassRelationship, supp.Class.Name)
	assert.Equal(t, []string{"IT.STUDYID"}, supp.ItemRefs.Order)
	assert.Len(t, supp.ItemRefs.Items, 1)
}

func TestParseWithoutARM_SDTM21_ItemDefs(t *testing.T) {
	doc, err := ParseWithoutARM(readFixture(t, "define.sdtm.21.xml"), Version21)
	require.NoError(t, err)

	items := doc.ODM.Study.MetaDataVersion.ItemDefs
	assert.Equal(t, []string{
		"IT.STUDYID", "IT.DM.USUBJID", "IT.DM.SEX", "IT.VS.VSTESTCD",
		"IT.VS.VSORRES", "IT.VS.VSPOS", "IT.VS.VSORRES.DIABP", "IT.VS.VSORRES.SYSBP",
	}, items.Order)

	studyID := items.Items["IT.STUDYID"]
	assert.Equal(t, "STUDYID", studyID.Name)
	assert.Equal(t, DataTypeText, studyID.DataType)
	assert.Equal(t, ptr(7), studyID.Length)
	assert.Equal(t, "STUDYID", studyID.SASFieldName)
	assert.Equal(t, []Origin{{Type: OriginProtocol}}, studyID.Origins)

	// Every origin is kept in 2.1, with its source and page title
	sex := items.Items["IT.DM.SEX"]
	assert.Equal(t, "CL.SEX", sex.CodeListRef)
	assert.Equal(t, []Alias{{Context: "nci:ExtCodeID", Name: "C66731"}}, sex.Alias)
	assert.Equal(t, []Origin{
		{
			Type:   OriginCollected,
			Source: SourceInvestigator,
			DocumentRefs: []DocumentRef{{
				LeafID:      "LF.acrf",
				PDFPageRefs: []PDFPageRef{{Type: PhysicalRef, PageRefs: "6", Title: "Demographics page"}},
			}},
		},
		{
			Type:        OriginAssigned,
			Source:      SourceSponsor,
			Description: []TranslatedText{{Lang: "en", Value: "Mapped from the screening CRF"}},
		},
	}, sex.Origins)

	assert.Equal(t, "VL.VS.VSORRES", items.Items["IT.VS.VSORRES"].ValueListRef)

	diabp := items.Items["IT.VS.VSORRES.DIABP"]
	assert.Equal(t, DataTypeInteger, diabp.DataType)
	assert.Equal(t, ptr(0), diabp.SignificantDigits)
	assert.Nil(t, items.Items["IT.VS.VSORRES.SYSBP"].SignificantDigits)
}

func TestParseWithoutARM_SDTM21_Collections(t *testing.T) {
	doc, err := ParseWithoutARM(readFixture(t, "define.sdtm.21.xml"), Version21)
	require.NoError(t, err)

	mdv := doc.ODM.Study.MetaDataVersion

	// Value lists
	require.NotNil(t, mdv.ValueListDefs)
	vl := mdv.ValueListDefs.Items["VL.VS.VSORRES"]
	assert.Equal(t, []TranslatedText{{Lang: "en", Value: "Vital signs results"}}, vl.Description)
	assert.Equal(t, []string{"IT.VS.VSORRES.DIABP", "IT.VS.VSORRES.SYSBP"}, vl.ItemRefs.Order)
	assert.Equal(t, ItemRef{
		ItemOID:         "IT.VS.VSORRES.DIABP",
		OrderNumber:     ptr(1),
		MethodOID:       "MT.VSORRES",
		WhereClauseRefs: []string{"WC.VS.VSTESTCD.DIABP"},
	}, vl.ItemRefs.Items["IT.VS.VSORRES.DIABP"])

	// Where clauses
	require.NotNil(t, mdv.WhereClauseDefs)
	assert.Equal(t, []string{"WC.VS.VSTESTCD.DIABP", "WC.VS.VSTESTCD.SYSBP"}, mdv.WhereClauseDefs.Order)
	assert.Equal(t, WhereClauseDef{
		OID:        "WC.VS.VSTESTCD.DIABP",
		CommentOID: "COM.WC",
		RangeChecks: []RangeCheck{{
			Comparator:  ComparatorEQ,
			SoftHard:    Soft,
			ItemOID:     "IT.VS.VSTESTCD",
			CheckValues: []string{"DIABP"},
		}},
	}, mdv.WhereClauseDefs.Items["WC.VS.VSTESTCD.DIABP"])
	sysbp := mdv.WhereClauseDefs.Items["WC.VS.VSTESTCD.SYSBP"]
	assert.Equal(t, ComparatorIN, sysbp.RangeChecks[0].Comparator)
	assert.Equal(t, []string{"SYSBP", "SYSBP2"}, sysbp.RangeChecks[0].CheckValues)

	// Code lists
	require.NotNil(t, mdv.CodeLists)
	assert.Equal(t, []string{"CL.SEX", "CL.VSTESTCD", "CL.MEDDRA"}, mdv.CodeLists.Order)

	sex := mdv.CodeLists.Items["CL.SEX"]
	assert.Equal(t, "STD.2", sex.StandardOID)
	assert.Equal(t, "COM.CL.SEX", sex.CommentOID)
	assert.Equal(t, []TranslatedText{{Lang: "en", Value: "Sex of the subject"}}, sex.Description)
	assert.Equal(t, []Alias{{Context: "nci:ExtCodeID", Name: "C66731"}}, sex.Alias)
	assert.Nil(t, sex.EnumeratedItems)
	require.Len(t, sex.CodeListItems, 3)
	assert.Equal(t, CodeListItem{
		CodedValue:  "F",
		Rank:        ptr(1.5),
		OrderNumber: ptr(1),
		Decode:      []TranslatedText{{Lang: "en", Value: "Female"}},
		Alias:       []Alias{{Context: "nci:ExtCodeID", Name: "C16576"}},
	}, sex.CodeListItems[0])
	assert.False(t, sex.CodeListItems[1].ExtendedValue)
	assert.True(t, sex.CodeListItems[2].ExtendedValue)

	testCodes := mdv.CodeLists.Items["CL.VSTESTCD"]
	assert.True(t, testCodes.IsNonStandard)
	assert.Equal(t, []EnumeratedItem{
		{CodedValue: "DIABP", OrderNumber: ptr(1)},
		{CodedValue: "SYSBP", OrderNumber: ptr(2), ExtendedValue: true},
	}, testCodes.EnumeratedItems)

	assert.Equal(t, &ExternalCodeList{
		Dictionary: "MEDDRA",
		Version:    "23.0",
		Href:       "https://www.meddra.org",
	}, mdv.CodeLists.Items["CL.MEDDRA"].ExternalCodeList)

	// Methods
	require.NotNil(t, mdv.MethodDefs)
	assert.Equal(t, MethodDef{
		OID:         "MT.VSORRES",
		Name:        "Algorithm to derive VSORRES",
		Type:        MethodComputation,
		Description: []TranslatedText{{Lang: "en", Value: "Copied from the CRF"}},
		DocumentRefs: []DocumentRef{{
			LeafID: "LF.cSDRG",
			PDFPageRefs: []PDFPageRef{{
				Type:      PhysicalRef,
				PageRefs:  "3",
				FirstPage: ptr(3),
				LastPage:  ptr(5),
			}},
		}},
		FormalExpressions: []FormalExpression{{Context: "SAS 9.4", Value: "VSORRES = put(VSORRESN, best.);"}},
	}, mdv.MethodDefs.Items["MT.VSORRES"])

	// Comments and leafs
	require.NotNil(t, mdv.CommentDefs)
	assert.Equal(t, []string{"COM.MDV", "COM.VS"}, mdv.CommentDefs.Order)
	assert.Equal(t, []DocumentRef{{LeafID: "LF.cSDRG"}}, mdv.CommentDefs.Items["COM.VS"].DocumentRefs)
	assert.Nil(t, mdv.CommentDefs.Items["COM.MDV"].DocumentRefs)

	require.NotNil(t, mdv.Leafs)
	assert.Equal(t, []string{"LF.acrf", "LF.cSDRG"}, mdv.Leafs.Order)
	assert.Equal(t, Leaf{ID: "LF.acrf", Href: "acrf.pdf", Title: "Annotated CRF"}, mdv.Leafs.Items["LF.acrf"])
}

func TestParseWithoutARM_SDTM20(t *testing.T) {
	doc, err := ParseWithoutARM(readFixture(t, "define.sdtm.20.xml"), Version20)
	require.NoError(t, err)

	assert.Equal(t, Version20, doc.Version)
	assert.Equal(t, Declaration{Version: "1.0", Encoding: "ISO-8859-1"}, doc.XML)
	assert.Equal(t, StyleSheet{Type: "text/xsl", Href: "define2-0-0.xsl"}, doc.StyleSheet)
	assert.Equal(t, "http://www.cdisc.org/ns/def/v2.0", doc.ODM.XMLNSDef)
	assert.Equal(t, "2013-02-27T10:00:00", doc.ODM.AsOfDateTime)
	assert.Empty(t, doc.ODM.Context)
	assert.Equal(t, "cdisc01", doc.ODM.Study.OID)

	mdv := doc.ODM.Study.MetaDataVersion
	assert.Equal(t, "SDTM-IG", mdv.StandardName)
	assert.Equal(t, "3.1.2", mdv.StandardVersion)
	assert.Equal(t, "Study CDISC01, Data Definitions", mdv.Description)
	assert.Nil(t, mdv.Standards)
	assert.Equal(t, []DocumentRef{{LeafID: "LF.blankcrf"}}, mdv.AnnotatedCRF)
	assert.Nil(t, mdv.SupplementalDoc)
	assert.Nil(t, mdv.ValueListDefs)
	assert.Nil(t, mdv.WhereClauseDefs)
	assert.Nil(t, mdv.MethodDefs)

	// Class attribute instead of element
	ae := mdv.ItemGroupDefs.Items["IG.AE"]
	assert.True(t, ae.Repeating)
	assert.Equal(t, &ItemGroupClass{Name: ClassEvents}, ae.Class)
	assert.Equal(t, &Leaf{ID: "LF.AE", Href: "ae.xpt", Title: "ae.xpt"}, ae.Leaf)
	assert.Equal(t, 3, ae.ItemRefs.Len())

	// Only the first origin, without a page title
	aeterm := mdv.ItemDefs.Items["IT.AE.AETERM"]
	assert.Equal(t, []Origin{{
		Type: OriginCRF,
		DocumentRefs: []DocumentRef{{
			LeafID:      "LF.blankcrf",
			PDFPageRefs: []PDFPageRef{{Type: PhysicalRef, PageRefs: "9"}},
		}},
	}}, aeterm.Origins)

	aesev := mdv.ItemDefs.Items["IT.AE.AESEV"]
	assert.Equal(t, "COM.AESEV", aesev.CommentOID)
	assert.Equal(t, "CL.AESEV", aesev.CodeListRef)

	// Decodes without a language
	require.NotNil(t, mdv.CodeLists)
	severity := mdv.CodeLists.Items["CL.AESEV"]
	assert.Equal(t, "AESEV", severity.SASFormatName)
	assert.Equal(t, []CodeListItem{
		{CodedValue: "MILD", OrderNumber: ptr(1), Decode: []TranslatedText{{Value: "Grade 1"}}},
		{CodedValue: "MODERATE", OrderNumber: ptr(2), Decode: []TranslatedText{{Value: "Grade 2"}}},
	}, severity.CodeListItems)

	require.NotNil(t, mdv.CommentDefs)
	assert.Equal(t, []TranslatedText{{Lang: "en", Value: "Collected on the AE page"}},
		mdv.CommentDefs.Items["COM.AESEV"].Description)

	assert.Empty(t, orderErrors(&mdv))
}

func TestParse_VersionSelectsFields(t *testing.T) {
	text := readFixture(t, "define.sdtm.21.xml")

	as20, err := ParseWithoutARM(text, Version20)
	require.NoError(t, err)

	as21, err := ParseWithoutARM(text, Version21)
	require.NoError(t, err)

	mdv20 := as20.ODM.Study.MetaDataVersion
	mdv21 := as21.ODM.Study.MetaDataVersion

	// Standards registry
	assert.Nil(t, mdv20.Standards)
	require.NotNil(t, mdv21.Standards)
	assert.Equal(t, 2, mdv21.Standards.Len())

	// Origins
	assert.Len(t, mdv20.ItemDefs.Items["IT.DM.SEX"].Origins, 1)
	assert.Empty(t, mdv20.ItemDefs.Items["IT.DM.SEX"].Origins[0].Source)
	assert.Len(t, mdv21.ItemDefs.Items["IT.DM.SEX"].Origins, 2)

	// Class element is not read as 2.0
	assert.Nil(t, mdv20.ItemGroupDefs.Items["IG.VS"].Class)
	assert.NotNil(t, mdv21.ItemGroupDefs.Items["IG.VS"].Class)

	// 2.1 only attributes
	assert.False(t, mdv20.ItemGroupDefs.Items["IG.SUPPVS"].HasNoData)
	assert.Empty(t, mdv20.CodeLists.Items["CL.SEX"].CommentOID)
	assert.Empty(t, as20.ODM.Context)
	assert.Equal(t, "Submission", as21.ODM.Context)

	// Page titles
	title20 := mdv20.ItemDefs.Items["IT.DM.SEX"].Origins[0].DocumentRefs[0].PDFPageRefs[0].Title
	title21 := mdv21.ItemDefs.Items["IT.DM.SEX"].Origins[0].DocumentRefs[0].PDFPageRefs[0].Title
	assert.Empty(t, title20)
	assert.Equal(t, "Demographics page", title21)
}

func TestParseWithARM_ADaM21(t *testing.T) {
	doc, err := ParseWithARM(readFixture(t, "define.adam.21.arm.xml"), Version21)
	require.NoError(t, err)

	assert.Equal(t, "http://www.cdisc.org/ns/arm/v1.0", doc.ODM.XMLNSArm)
	assert.Equal(t, "Other", doc.ODM.Context)

	mdv := doc.ODM.Study.MetaDataVersion
	assert.Equal(t, PurposeAnalysis, mdv.ItemGroupDefs.Items["IG.ADSL"].Purpose)
	assert.Equal(t, ClassSubjectLevelAnalysis, mdv.ItemGroupDefs.Items["IG.ADSL"].Class.Name)

	require.NotNil(t, mdv.AnalysisResultDisplays)
	displays := mdv.AnalysisResultDisplays.ResultDisplays
	assert.Equal(t, []string{"RD.Table_14.1.1", "RD.Figure_14.2.1"}, displays.Order)

	table := displays.Items["RD.Table_14.1.1"]
	assert.Equal(t, "Table 14.1.1", table.Name)
	assert.Equal(t, []TranslatedText{{Lang: "en", Value: "Summary of Demographic Characteristics"}}, table.Description)
	assert.Equal(t, []DocumentRef{{
		LeafID:      "LF.SAP",
		PDFPageRefs: []PDFPageRef{{Type: NamedDestination, PageRefs: "Table14.1.1", Title: "Demographics shell"}},
	}}, table.Documents)
	assert.Equal(t, []string{"AR.Table_14.1.1.AGE", "AR.Table_14.1.1.SEX"}, table.AnalysisResults.Order)

	// Full analysis result
	age := table.AnalysisResults.Items["AR.Table_14.1.1.AGE"]
	assert.Equal(t, "IT.ADSL.AGE", age.ParameterOID)
	assert.Equal(t, ReasonSpecifiedInSAP, age.AnalysisReason)
	assert.Equal(t, PurposePrimaryOutcome, age.AnalysisPurpose)
	assert.Equal(t, "COM.ANDS", age.AnalysisDatasets.CommentOID)
	assert.Equal(t, []string{"IG.ADSL"}, age.AnalysisDatasets.Datasets.Order)
	assert.Equal(t, AnalysisDataset{
		ItemGroupOID:      "IG.ADSL",
		WhereClauseRefs:   []string{"WC.ADSL.ITTFL.Y"},
		AnalysisVariables: []string{"IT.ADSL.AGE", "IT.ADSL.ITTFL"},
	}, age.AnalysisDatasets.Datasets.Items["IG.ADSL"])
	assert.Equal(t, &Documentation{
		Description: []TranslatedText{{Lang: "en", Value: "Descriptive statistics by treatment group"}},
		Documents: []DocumentRef{{
			LeafID:      "LF.SAP",
			PDFPageRefs: []PDFPageRef{{Type: PhysicalRef, PageRefs: "12"}},
		}},
	}, age.Documentation)
	assert.Equal(t, &ProgrammingCode{
		Context: "SAS version 9.4",
		Code:    "proc means data=adsl; var age; run;",
	}, age.ProgrammingCode)

	// Sponsor purpose, no parameter, code given only as a document
	sex := table.AnalysisResults.Items["AR.Table_14.1.1.SEX"]
	assert.Empty(t, sex.ParameterOID)
	assert.Equal(t, ReasonDataDriven, sex.AnalysisReason)
	assert.Equal(t, AnalysisPurpose("Sponsor specific purpose"), sex.AnalysisPurpose)
	assert.False(t, sex.AnalysisPurpose.IsKnown())
	assert.Nil(t, sex.Documentation)
	assert.Equal(t, &ProgrammingCode{Documents: []DocumentRef{{LeafID: "LF.SAP"}}}, sex.ProgrammingCode)

	figure := displays.Items["RD.Figure_14.2.1"]
	assert.Nil(t, figure.Documents)
	assert.Nil(t, figure.AnalysisResults.Items["AR.Figure_14.2.1"].ProgrammingCode)

	assert.Empty(t, orderErrors(&mdv.MetaDataVersion))
	assert.Empty(t, armOrderErrors(mdv.AnalysisResultDisplays))
}

func TestParseWithARM_ADaM20(t *testing.T) {
	doc, err := ParseWithARM(readFixture(t, "define.adam.20.arm.xml"), Version20)
	require.NoError(t, err)

	// Defaults for missing ODM attributes
	assert.Equal(t, Declaration{Version: "1.0", Encoding: "UTF-8"}, doc.XML)
	assert.Equal(t, StyleSheet{}, doc.StyleSheet)
	assert.Equal(t, "1.3.2", doc.ODM.ODMVersion)
	assert.Equal(t, "Snapshot", doc.ODM.FileType)
	assert.Equal(t, "http://www.cdisc.org/ns/arm/v1.0", doc.ODM.XMLNSArm)

	mdv := doc.ODM.Study.MetaDataVersion
	assert.Equal(t, "ADaM-IG", mdv.StandardName)
	assert.Equal(t, &ItemGroupClass{Name: ClassADaMOther}, mdv.ItemGroupDefs.Items["IG.ADAE"].Class)

	require.NotNil(t, mdv.AnalysisResultDisplays)
	rd := mdv.AnalysisResultDisplays.ResultDisplays.Items["RD.Table_14.3.1"]
	assert.Equal(t, []DocumentRef{{
		LeafID:      "LF.SAP",
		PDFPageRefs: []PDFPageRef{{Type: PhysicalRef, PageRefs: "20"}},
	}}, rd.Documents)

	ar := rd.AnalysisResults.Items["AR.Table_14.3.1"]
	assert.Equal(t, []string{"IT.ADAE.AEDECOD"}, ar.AnalysisDatasets.Datasets.Items["IG.ADAE"].AnalysisVariables)
	assert.Equal(t, &ProgrammingCode{Context: "R 4.2", Code: "table(adae$AEDECOD)"}, ar.ProgrammingCode)
}

func TestParse_ARMFlag(t *testing.T) {
	text := readFixture(t, "define.adam.21.arm.xml")

	tests := []struct {
		name    string
		arm     bool
		wantARM bool
		wantNS  string
	}{
		{name: "with ARM", arm: true, wantARM: true, wantNS: "http://www.cdisc.org/ns/arm/v1.0"},
		{name: "without ARM", arm: false, wantARM: false, wantNS: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse21(text, tt.arm)
			require.NoError(t, err)

			assert.Equal(t, tt.wantARM, parsed.HasARM())
			assert.Equal(t, Version21, parsed.DefineVersion())
			require.NotNil(t, parsed.Base())
			assert.Equal(t, "MDV.CDISC01.ADaMIG.1.1", parsed.Base().OID)

			switch doc := parsed.(type) {
			case *Document[ARMMetaDataVersion]:
				assert.True(t, tt.arm)
				assert.Equal(t, tt.wantNS, doc.ODM.XMLNSArm)
				assert.NotNil(t, doc.ODM.Study.MetaDataVersion.AnalysisResultDisplays)
			case *Document[MetaDataVersion]:
				assert.False(t, tt.arm)
				assert.Equal(t, tt.wantNS, doc.ODM.XMLNSArm)
			default:
				t.Fatalf("unexpected document type %T", parsed)
			}
		})
	}
}

func TestParseWithARM_NoAnalysisResults(t *testing.T) {
	doc, err := ParseWithARM(readFixture(t, "define.sdtm.21.xml"), Version21)
	require.NoError(t, err)

	assert.Nil(t, doc.ODM.Study.MetaDataVersion.AnalysisResultDisplays)
	assert.Equal(t, "http://www.cdisc.org/ns/arm/v1.0", doc.ODM.XMLNSArm)
	assert.True(t, doc.HasARM())
}

func TestParse20_Parse21(t *testing.T) {
	parsed, err := Parse20(readFixture(t, "define.sdtm.20.xml"), false)
	require.NoError(t, err)
	assert.Equal(t, Version20, parsed.DefineVersion())
	assert.False(t, parsed.HasARM())

	parsed, err = Parse21(readFixture(t, "define.adam.21.arm.xml"), true)
	require.NoError(t, err)
	assert.Equal(t, Version21, parsed.DefineVersion())
	assert.True(t, parsed.HasARM())
}

func TestParse_Concurrent(t *testing.T) {
	fixtures := []struct {
		file    string
		version Version
		arm     bool
	}{
		{file: "define.sdtm.21.xml", version: Version21},
		{file: "define.sdtm.20.xml", version: Version20},
		{file: "define.adam.21.arm.xml", version: Version21, arm: true},
		{file: "define.adam.20.arm.xml", version: Version20, arm: true},
	}

	texts := make([]string, len(fixtures))
	for i, f := range fixtures {
		texts[i] = readFixture(t, f.file)
	}

	var g errgroup.Group

	for round := 0; round < 8; round++ {
		for i, f := range fixtures {
			g.Go(func() error {
				_, err := Parse(texts[i], f.version, f.arm)
				return err
			})
		}
	}

	require.NoError(t, g.Wait())
}

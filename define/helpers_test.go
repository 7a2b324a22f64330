package define

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return string(data)
}

func ptr[T any](v T) *T {
	return &v
}

// minimalDefine wraps a MetaDataVersion body into the smallest document the
// mapper accepts.
func minimalDefine(mdvBody string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<ODM xmlns="http://www.cdisc.org/ns/odm/v1.3" xmlns:def="http://www.cdisc.org/ns/def/v2.1"
     xmlns:xlink="http://www.w3.org/1999/xlink" FileOID="F.1" CreationDateTime="2024-01-01T00:00:00">
  <Study OID="S.1">
    <GlobalVariables>
      <StudyName>S</StudyName>
      <StudyDescription>D</StudyDescription>
      <ProtocolName>P</ProtocolName>
    </GlobalVariables>
    <MetaDataVersion OID="MDV.1" Name="M" def:DefineVersion="2.1.0">` + mdvBody + `</MetaDataVersion>
  </Study>
</ODM>`
}

func validateOptional[T any](m *OrderedMap[T]) error {
	if m == nil {
		return nil
	}

	return m.Validate()
}

// orderErrors validates every ordered map reachable from mdv.
func orderErrors(mdv *MetaDataVersion) []error {
	var errs []error

	check := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	check("standards", validateOptional(mdv.Standards))
	check("itemGroupDefs", mdv.ItemGroupDefs.Validate())
	check("itemDefs", mdv.ItemDefs.Validate())
	check("valueListDefs", validateOptional(mdv.ValueListDefs))
	check("whereClauseDefs", validateOptional(mdv.WhereClauseDefs))
	check("codeLists", validateOptional(mdv.CodeLists))
	check("methodDefs", validateOptional(mdv.MethodDefs))
	check("commentDefs", validateOptional(mdv.CommentDefs))
	check("leafs", validateOptional(mdv.Leafs))

	for oid, ig := range mdv.ItemGroupDefs.All() {
		check(oid, ig.ItemRefs.Validate())
	}

	if mdv.ValueListDefs != nil {
		for oid, vl := range mdv.ValueListDefs.All() {
			check(oid, vl.ItemRefs.Validate())
		}
	}

	return errs
}

func armOrderErrors(displays *AnalysisResultDisplays) []error {
	if displays == nil {
		return nil
	}

	var errs []error

	if err := displays.ResultDisplays.Validate(); err != nil {
		errs = append(errs, err)
	}

	for oid, rd := range displays.ResultDisplays.All() {
		if err := rd.AnalysisResults.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", oid, err))
		}

		for arOID, ar := range rd.AnalysisResults.All() {
			if err := ar.AnalysisDatasets.Datasets.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", arOID, err))
			}
		}
	}

	return errs
}

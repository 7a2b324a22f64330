package define

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/defineEditor/parse-define-xml/internal/diagnostic"
)

// capabilities lists what differs between Define-XML versions. Everything
// else is mapped the same way.
type capabilities struct {
	version      Version
	defNamespace string

	// standards maps the def:Standards registry.
	standards bool
	// classElement reads the item group class from a def:Class element
	// with subclasses instead of the Class attribute.
	classElement bool
	// multipleOrigins keeps every origin of an item instead of the first.
	multipleOrigins bool
	originSource    bool
	// standardRefs maps StandardOID and IsNonStandard on item groups, item
	// refs and code lists, and HasNoData on item groups.
	standardRefs bool
	// extendedDetails maps the comments, descriptions and aliases added in 2.1.
	extendedDetails bool
	pageRefTitle    bool
	// standardAttrs maps StandardName and StandardVersion on MetaDataVersion.
	standardAttrs bool
}

var (
	capabilities20 = capabilities{
		version:       Version20,
		defNamespace:  "http://www.cdisc.org/ns/def/v2.0",
		standardAttrs: true,
	}

	capabilities21 = capabilities{
		version:         Version21,
		defNamespace:    "http://www.cdisc.org/ns/def/v2.1",
		standards:       true,
		classElement:    true,
		multipleOrigins: true,
		originSource:    true,
		standardRefs:    true,
		extendedDetails: true,
		pageRefTitle:    true,
	}
)

func capabilitiesFor(v Version) (capabilities, error) {
	switch v {
	case Version20:
		return capabilities20, nil
	case Version21:
		return capabilities21, nil
	default:
		return capabilities{}, fmt.Errorf("%w: %s", diagnostic.ErrUnsupportedVersion, v)
	}
}

const (
	odmNamespace = "http://www.cdisc.org/ns/odm/v1.3"
	armNamespace = "http://www.cdisc.org/ns/arm/v1.0"

	defaultODMVersion = "1.3.2"
	defaultFileType   = "Snapshot"
)

// mapper turns a normalized tree into records for one Define-XML version.
type mapper struct {
	caps capabilities
	arm  bool
}

func mapODM[M Metadata](m mapper, n node, mapMDV func(mapper, node) (M, error)) (ODM[M], error) {
	studyNode, err := n.required("study")
	if err != nil {
		return ODM[M]{}, err
	}

	study, err := mapStudy(m, studyNode, mapMDV)
	if err != nil {
		return ODM[M]{}, err
	}

	odm := ODM[M]{
		XMLNS:               orDefault(n.attr("xmlns"), odmNamespace),
		XMLNSDef:            orDefault(n.attr("xmlns:def"), m.caps.defNamespace),
		XMLNSXlink:          n.attr("xmlns:xlink"),
		XMLNSXsi:            n.attr("xmlns:xsi"),
		SchemaLocation:      n.attr("xsi:schemaLocation"),
		ODMVersion:          orDefault(n.attr("odmVersion"), defaultODMVersion),
		FileType:            orDefault(n.attr("fileType"), defaultFileType),
		FileOID:             n.attr("fileOid"),
		CreationDateTime:    n.attr("creationDateTime"),
		AsOfDateTime:        n.attr("asOfDateTime"),
		Originator:          n.attr("originator"),
		SourceSystem:        n.attr("sourceSystem"),
		SourceSystemVersion: n.attr("sourceSystemVersion"),
		Study:               study,
	}

	if m.arm {
		odm.XMLNSArm = orDefault(n.attr("xmlns:arm"), armNamespace)
	}

	if m.caps.extendedDetails {
		odm.Context = n.attr("context")
	}

	return odm, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func mapStudy[M Metadata](m mapper, n node, mapMDV func(mapper, node) (M, error)) (Study[M], error) {
	gvNode, err := n.required("globalVariables")
	if err != nil {
		return Study[M]{}, err
	}

	gv, err := mapGlobalVariables(gvNode)
	if err != nil {
		return Study[M]{}, err
	}

	mdvNode, err := n.required("metaDataVersion")
	if err != nil {
		return Study[M]{}, err
	}

	mdv, err := mapMDV(m, mdvNode)
	if err != nil {
		return Study[M]{}, err
	}

	return Study[M]{OID: n.attr("oid"), GlobalVariables: gv, MetaDataVersion: mdv}, nil
}

// mapMetaDataVersion maps standards first, then item groups and item defs,
// then each optional collection the document contains.
func (m mapper) mapMetaDataVersion(n node) (MetaDataVersion, error) {
	mdv := MetaDataVersion{
		OID:           n.attr("oid"),
		Name:          n.attr("name"),
		Description:   n.attr("description"),
		DefineVersion: n.attr("defineVersion"),
	}

	if m.caps.standardAttrs {
		mdv.StandardName = n.attr("standardName")
		mdv.StandardVersion = n.attr("standardVersion")
	}

	if m.caps.extendedDetails {
		mdv.CommentOID = n.attr("commentOid")
	}

	var err error

	if m.caps.standards {
		if mdv.Standards, err = m.mapStandards(n); err != nil {
			return MetaDataVersion{}, err
		}
	}

	if mdv.ItemGroupDefs, err = mapAll(n, "itemGroupDef", m.mapItemGroupDef, itemGroupOID); err != nil {
		return MetaDataVersion{}, err
	}

	if mdv.ItemDefs, err = mapAll(n, "itemDef", m.mapItemDef, itemDefOID); err != nil {
		return MetaDataVersion{}, err
	}

	if mdv.AnnotatedCRF, err = m.optionalDocumentRefs(n, "annotatedCrf"); err != nil {
		return MetaDataVersion{}, err
	}

	if mdv.SupplementalDoc, err = m.optionalDocumentRefs(n, "supplementalDoc"); err != nil {
		return MetaDataVersion{}, err
	}

	if mdv.ValueListDefs, err = mapPresent(n, "valueListDef", m.mapValueListDef, valueListOID); err != nil {
		return MetaDataVersion{}, err
	}

	if n.Has("whereClauseDef") {
		nodes, err := n.children("whereClauseDef")
		if err != nil {
			return MetaDataVersion{}, err
		}

		clauses, err := mapWhereClauses(nodes)
		if err != nil {
			return MetaDataVersion{}, err
		}

		mdv.WhereClauseDefs = &clauses
	}

	if mdv.CodeLists, err = m.mapCodeLists(n); err != nil {
		return MetaDataVersion{}, err
	}

	if mdv.MethodDefs, err = mapPresent(n, "methodDef", m.mapMethodDef, methodOID); err != nil {
		return MetaDataVersion{}, err
	}

	if mdv.CommentDefs, err = mapPresent(n, "commentDef", m.mapCommentDef, commentOID); err != nil {
		return MetaDataVersion{}, err
	}

	if n.Has("leaf") {
		nodes, err := n.children("leaf")
		if err != nil {
			return MetaDataVersion{}, err
		}

		leafs, err := mapLeafs(nodes)
		if err != nil {
			return MetaDataVersion{}, err
		}

		mdv.Leafs = &leafs
	}

	return mdv, nil
}

// mapAll maps every child stored under key into an ordered map keyed by id.
func mapAll[T any](parent node, key string, mapOne func(node) (T, error), id func(T) string) (OrderedMap[T], error) {
	nodes, err := parent.children(key)
	if err != nil {
		return OrderedMap[T]{}, err
	}

	out := NewOrderedMap[T]()

	for _, n := range nodes {
		item, err := mapOne(n)
		if err != nil {
			return OrderedMap[T]{}, err
		}

		out.Set(id(item), item)
	}

	return out, nil
}

// mapPresent is mapAll for collections that are nil when the document has
// no child under key.
func mapPresent[T any](parent node, key string, mapOne func(node) (T, error), id func(T) string) (*OrderedMap[T], error) {
	if !parent.Has(key) {
		return nil, nil
	}

	out, err := mapAll(parent, key, mapOne, id)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func itemGroupOID(ig ItemGroupDef) string { return ig.OID }
func itemDefOID(it ItemDef) string { return it.OID }
func valueListOID(vl ValueListDef) string { return vl.OID }
func methodOID(md MethodDef) string { return md.OID }
func commentOID(cd CommentDef) string { return cd.OID }
func standardOID(st Standard) string { return st.OID }
func codeListOID(cl CodeList) string { return cl.OID }

func (m mapper) optionalDocumentRefs(parent node, key string) ([]DocumentRef, error) {
	if !parent.Has(key) {
		return nil, nil
	}

	nodes, err := parent.children(key)
	if err != nil {
		return nil, err
	}

	return m.mapDocumentRefs(nodes)
}

func (m mapper) mapStandards(mdv node) (*OrderedMap[Standard], error) {
	registry, ok, err := mdv.first("standards")
	if err != nil || !ok {
		return nil, err
	}

	standards, err := mapAll(registry, "standard", mapStandard, standardOID)
	if err != nil {
		return nil, err
	}

	return &standards, nil
}

func mapStandard(n node) (Standard, error) {
	return Standard{
		OID:           n.attr("oid"),
		Name:          StandardName(n.attr("name")),
		Type:          StandardType(n.attr("type")),
		Version:       n.attr("version"),
		PublishingSet: n.attr("publishingSet"),
		Status:        StandardStatus(n.attr("status")),
		CommentOID:    n.attr("commentOid"),
	}, nil
}

func (m mapper) mapItemGroupDef(n node) (ItemGroupDef, error) {
	repeating, err := n.yesNo("repeating")
	if err != nil {
		return ItemGroupDef{}, err
	}

	isReferenceData, err := n.optionalYesNo("isReferenceData")
	if err != nil {
		return ItemGroupDef{}, err
	}

	ig := ItemGroupDef{
		OID:               n.attr("oid"),
		Name:              n.attr("name"),
		Repeating:         repeating,
		Purpose:           ItemGroupPurpose(n.attr("purpose")),
		Domain:            n.attr("domain"),
		SASDatasetName:    n.attr("sASDatasetName"),
		Structure:         n.attr("structure"),
		ArchiveLocationID: n.attr("archiveLocationId"),
		IsReferenceData:   isReferenceData,
		CommentOID:        n.attr("commentOid"),
	}

	if m.caps.standardRefs {
		ig.StandardOID = n.attr("standardOid")

		if ig.IsNonStandard, err = n.yesOnly("isNonStandard"); err != nil {
			return ItemGroupDef{}, err
		}

		if ig.HasNoData, err = n.yesOnly("hasNoData"); err != nil {
			return ItemGroupDef{}, err
		}
	}

	if ig.Class, err = m.mapClass(n); err != nil {
		return ItemGroupDef{}, err
	}

	if ig.Description, err = mapTranslatedTexts(n, "description"); err != nil {
		return ItemGroupDef{}, err
	}

	if ig.Alias, err = mapAliases(n); err != nil {
		return ItemGroupDef{}, err
	}

	leafNodes, err := n.children("leaf")
	if err != nil {
		return ItemGroupDef{}, err
	}

	leafs, err := mapLeafs(leafNodes)
	if err != nil {
		return ItemGroupDef{}, err
	}

	if leaf, ok := lo.First(leafs.Values()); ok {
		ig.Leaf = &leaf
	}

	if ig.ItemRefs, err = m.mapItemRefs(n); err != nil {
		return ItemGroupDef{}, err
	}

	return ig, nil
}

func (m mapper) mapClass(ig node) (*ItemGroupClass, error) {
	if !m.caps.classElement {
		if name := ig.attr("class"); name != "" {
			return &ItemGroupClass{Name: ClassName(name)}, nil
		}

		return nil, nil
	}

	class, ok, err := ig.first("class")
	if err != nil || !ok {
		return nil, err
	}

	subNodes, err := class.children("subClass")
	if err != nil {
		return nil, err
	}

	out := &ItemGroupClass{Name: ClassName(class.attr("name"))}
	for _, sub := range subNodes {
		out.SubClasses = append(out.SubClasses, ItemGroupSubClass{
			Name:            SubClassName(sub.attr("name")),
			ParentClassName: sub.attr("parentClassName"),
		})
	}

	return out, nil
}

// mapItemRefs maps itemRef children. References without an ItemOID are skipped.
func (m mapper) mapItemRefs(parent node) (OrderedMap[ItemRef], error) {
	nodes, err := parent.children("itemRef")
	if err != nil {
		return OrderedMap[ItemRef]{}, err
	}

	refs := NewOrderedMap[ItemRef]()

	for _, n := range nodes {
		itemOID := n.attr("itemOid")
		if itemOID == "" {
			continue
		}

		ref, err := m.mapItemRef(n.withOID(itemOID))
		if err != nil {
			return OrderedMap[ItemRef]{}, err
		}

		refs.Set(itemOID, ref)
	}

	return refs, nil
}

func (m mapper) mapItemRef(n node) (ItemRef, error) {
	mandatory, err := n.yesNo("mandatory")
	if err != nil {
		return ItemRef{}, err
	}

	ref := ItemRef{
		ItemOID:         n.attr("itemOid"),
		Mandatory:       mandatory,
		MethodOID:       n.attr("methodOid"),
		Role:            n.attr("role"),
		RoleCodeListOID: n.attr("roleCodeListOid"),
	}

	if ref.OrderNumber, err = n.intAttr("orderNumber"); err != nil {
		return ItemRef{}, err
	}

	if ref.KeySequence, err = n.intAttr("keySequence"); err != nil {
		return ItemRef{}, err
	}

	if ref.WhereClauseRefs, err = refOIDs(n, "whereClauseRef", "whereClauseOid"); err != nil {
		return ItemRef{}, err
	}

	if m.caps.standardRefs {
		ref.StandardOID = n.attr("standardOid")

		if ref.IsNonStandard, err = n.yesOnly("isNonStandard"); err != nil {
			return ItemRef{}, err
		}
	}

	return ref, nil
}

func (m mapper) mapItemDef(n node) (ItemDef, error) {
	it := ItemDef{
		OID:           n.attr("oid"),
		Name:          n.attr("name"),
		DataType:      DataType(n.attr("dataType")),
		SASFieldName:  n.attr("sASFieldName"),
		DisplayFormat: n.attr("displayFormat"),
		CommentOID:    n.attr("commentOid"),
	}

	var err error

	if it.Length, err = n.intAttr("length"); err != nil {
		return ItemDef{}, err
	}

	if it.SignificantDigits, err = n.intAttr("significantDigits"); err != nil {
		return ItemDef{}, err
	}

	if it.Description, err = mapTranslatedTexts(n, "description"); err != nil {
		return ItemDef{}, err
	}

	if ref, ok, err := n.first("codeListRef"); err != nil {
		return ItemDef{}, err
	} else if ok {
		it.CodeListRef = ref.attr("codeListOid")
	}

	if ref, ok, err := n.first("valueListRef"); err != nil {
		return ItemDef{}, err
	} else if ok {
		it.ValueListRef = ref.attr("valueListOid")
	}

	if it.Origins, err = m.mapOrigins(n); err != nil {
		return ItemDef{}, err
	}

	if m.caps.extendedDetails {
		if it.Alias, err = mapAliases(n); err != nil {
			return ItemDef{}, err
		}
	}

	return it, nil
}

func (m mapper) mapOrigins(item node) ([]Origin, error) {
	nodes, err := item.children("origin")
	if err != nil {
		return nil, err
	}

	if !m.caps.multipleOrigins {
		first, ok := lo.First(nodes)
		if !ok {
			return nil, nil
		}

		nodes = []node{first}
	}

	var origins []Origin

	for _, n := range nodes {
		origin := Origin{Type: OriginType(n.attr("type"))}

		if m.caps.originSource {
			origin.Source = OriginSource(n.attr("source"))
		}

		if origin.Description, err = mapTranslatedTexts(n, "description"); err != nil {
			return nil, err
		}

		if origin.DocumentRefs, err = m.documentRefsOf(n); err != nil {
			return nil, err
		}

		origins = append(origins, origin)
	}

	return origins, nil
}

func (m mapper) mapValueListDef(n node) (ValueListDef, error) {
	refs, err := m.mapItemRefs(n)
	if err != nil {
		return ValueListDef{}, err
	}

	vl := ValueListDef{OID: n.attr("oid"), ItemRefs: refs}

	if m.caps.extendedDetails {
		if vl.Description, err = mapTranslatedTexts(n, "description"); err != nil {
			return ValueListDef{}, err
		}
	}

	return vl, nil
}

// mapCodeLists maps codeList children, skipping nodes without attributes.
func (m mapper) mapCodeLists(mdv node) (*OrderedMap[CodeList], error) {
	if !mdv.Has("codeList") {
		return nil, nil
	}

	nodes, err := mdv.children("codeList")
	if err != nil {
		return nil, err
	}

	codeLists := NewOrderedMap[CodeList]()

	for _, n := range nodes {
		if !n.HasAttrs() {
			continue
		}

		cl, err := m.mapCodeList(n)
		if err != nil {
			return nil, err
		}

		codeLists.Set(codeListOID(cl), cl)
	}

	return &codeLists, nil
}

func (m mapper) mapCodeList(n node) (CodeList, error) {
	cl := CodeList{
		OID:           n.attr("oid"),
		Name:          n.attr("name"),
		DataType:      DataType(n.attr("dataType")),
		SASFormatName: n.attr("sASFormatName"),
	}

	var err error

	if cl.Alias, err = mapAliases(n); err != nil {
		return CodeList{}, err
	}

	if n.Has("enumeratedItem") {
		nodes, err := n.children("enumeratedItem")
		if err != nil {
			return CodeList{}, err
		}

		if cl.EnumeratedItems, err = mapEnumeratedItems(nodes); err != nil {
			return CodeList{}, err
		}
	}

	if n.Has("codeListItem") {
		nodes, err := n.children("codeListItem")
		if err != nil {
			return CodeList{}, err
		}

		if cl.CodeListItems, err = mapCodeListItems(nodes); err != nil {
			return CodeList{}, err
		}
	}

	if ext, ok, err := n.first("externalCodeList"); err != nil {
		return CodeList{}, err
	} else if ok {
		cl.ExternalCodeList = mapExternalCodeList(ext)
	}

	if m.caps.standardRefs {
		cl.StandardOID = n.attr("standardOid")

		if cl.IsNonStandard, err = n.yesOnly("isNonStandard"); err != nil {
			return CodeList{}, err
		}
	}

	if m.caps.extendedDetails {
		cl.CommentOID = n.attr("commentOid")

		if cl.Description, err = mapTranslatedTexts(n, "description"); err != nil {
			return CodeList{}, err
		}
	}

	return cl, nil
}

func (m mapper) mapMethodDef(n node) (MethodDef, error) {
	md := MethodDef{
		OID:  n.attr("oid"),
		Name: n.attr("name"),
		Type: MethodType(n.attr("type")),
	}

	var err error

	if md.Description, err = mapTranslatedTexts(n, "description"); err != nil {
		return MethodDef{}, err
	}

	if md.DocumentRefs, err = m.documentRefsOf(n); err != nil {
		return MethodDef{}, err
	}

	if md.FormalExpressions, err = mapFormalExpressions(n); err != nil {
		return MethodDef{}, err
	}

	return md, nil
}

func (m mapper) mapCommentDef(n node) (CommentDef, error) {
	cd := CommentDef{OID: n.attr("oid")}

	var err error

	if cd.Description, err = mapTranslatedTexts(n, "description"); err != nil {
		return CommentDef{}, err
	}

	if cd.DocumentRefs, err = m.documentRefsOf(n); err != nil {
		return CommentDef{}, err
	}

	return cd, nil
}

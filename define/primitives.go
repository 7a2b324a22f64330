package define

import "github.com/samber/lo"

// Mappers for the small element shapes shared by the larger records. Each one
// fails on the first shape violation and never returns a partial value.

// mapTranslatedText reads the first TranslatedText of a wrapper such as
// Description or Decode.
func mapTranslatedText(wrapper node) (TranslatedText, error) {
	text, err := wrapper.required("translatedText")
	if err != nil {
		return TranslatedText{}, err
	}

	return TranslatedText{Lang: text.attr("xml:lang"), Value: text.Text()}, nil
}

// mapTranslatedTexts maps every wrapper stored under key.
func mapTranslatedTexts(parent node, key string) ([]TranslatedText, error) {
	wrappers, err := parent.children(key)
	if err != nil || len(wrappers) == 0 {
		return nil, err
	}

	out := make([]TranslatedText, 0, len(wrappers))
	for _, w := range wrappers {
		text, err := mapTranslatedText(w)
		if err != nil {
			return nil, err
		}

		out = append(out, text)
	}

	return out, nil
}

func mapAliases(parent node) ([]Alias, error) {
	nodes, err := parent.children("alias")
	if err != nil || len(nodes) == 0 {
		return nil, err
	}

	return lo.Map(nodes, func(n node, _ int) Alias {
		return Alias{Context: n.attr("context"), Name: n.attr("name")}
	}), nil
}

// mapLeafs maps leaf children. Nodes without attributes are not leafs and
// are skipped.
func mapLeafs(nodes []node) (OrderedMap[Leaf], error) {
	leafs := NewOrderedMap[Leaf]()

	for _, n := range nodes {
		if !n.HasAttrs() {
			continue
		}

		n = n.withOID(n.attr("id"))

		title, err := n.requiredText("title")
		if err != nil {
			return OrderedMap[Leaf]{}, err
		}

		leaf := Leaf{ID: n.attr("id"), Href: n.attr("xlink:href"), Title: title}
		leafs.Set(leaf.ID, leaf)
	}

	return leafs, nil
}

// mapDocumentRefs accepts either wrappers holding documentRef children, such
// as AnnotatedCRF, or documentRef nodes directly, and flattens both.
func (m mapper) mapDocumentRefs(nodes []node) ([]DocumentRef, error) {
	var refs []node

	for _, n := range nodes {
		if !n.Has("documentRef") {
			refs = append(refs, n)
			continue
		}

		nested, err := n.children("documentRef")
		if err != nil {
			return nil, err
		}

		refs = append(refs, nested...)
	}

	out := make([]DocumentRef, 0, len(refs))

	for _, ref := range refs {
		ref = ref.withOID(ref.attr("leafId"))

		pages, err := ref.children("pDFPageRef")
		if err != nil {
			return nil, err
		}

		docRef := DocumentRef{LeafID: ref.attr("leafId")}

		for _, page := range pages {
			pageRef, err := m.mapPDFPageRef(page)
			if err != nil {
				return nil, err
			}

			docRef.PDFPageRefs = append(docRef.PDFPageRefs, pageRef)
		}

		out = append(out, docRef)
	}

	return out, nil
}

// documentRefsOf maps the documentRef children of parent.
func (m mapper) documentRefsOf(parent node) ([]DocumentRef, error) {
	nodes, err := parent.children("documentRef")
	if err != nil || len(nodes) == 0 {
		return nil, err
	}

	return m.mapDocumentRefs(nodes)
}

func (m mapper) mapPDFPageRef(n node) (PDFPageRef, error) {
	first, err := n.intAttr("firstPage")
	if err != nil {
		return PDFPageRef{}, err
	}

	last, err := n.intAttr("lastPage")
	if err != nil {
		return PDFPageRef{}, err
	}

	ref := PDFPageRef{
		Type:      PDFPageRefType(n.attr("type")),
		PageRefs:  n.attr("pageRefs"),
		FirstPage: first,
		LastPage:  last,
	}

	if m.caps.pageRefTitle {
		ref.Title = n.attr("title")
	}

	return ref, nil
}

// mapItemRank reads the numeric and flag attributes shared by enumerated
// and coded items.
func mapItemRank(n node) (rank *float64, order *int, extended bool, err error) {
	if rank, err = n.floatAttr("rank"); err != nil {
		return nil, nil, false, err
	}

	if order, err = n.intAttr("orderNumber"); err != nil {
		return nil, nil, false, err
	}

	if extended, err = n.yesOnly("extendedValue"); err != nil {
		return nil, nil, false, err
	}

	return rank, order, extended, nil
}

func mapEnumeratedItems(nodes []node) ([]EnumeratedItem, error) {
	out := make([]EnumeratedItem, 0, len(nodes))

	for _, n := range nodes {
		n = n.withOID(n.attr("codedValue"))

		rank, order, extended, err := mapItemRank(n)
		if err != nil {
			return nil, err
		}

		alias, err := mapAliases(n)
		if err != nil {
			return nil, err
		}

		out = append(out, EnumeratedItem{
			CodedValue:    n.attr("codedValue"),
			Rank:          rank,
			OrderNumber:   order,
			ExtendedValue: extended,
			Alias:         alias,
		})
	}

	return out, nil
}

func mapCodeListItems(nodes []node) ([]CodeListItem, error) {
	out := make([]CodeListItem, 0, len(nodes))

	for _, n := range nodes {
		n = n.withOID(n.attr("codedValue"))

		rank, order, extended, err := mapItemRank(n)
		if err != nil {
			return nil, err
		}

		decode, err := mapTranslatedTexts(n, "decode")
		if err != nil {
			return nil, err
		}

		alias, err := mapAliases(n)
		if err != nil {
			return nil, err
		}

		if decode == nil {
			decode = []TranslatedText{}
		}

		out = append(out, CodeListItem{
			CodedValue:    n.attr("codedValue"),
			Rank:          rank,
			OrderNumber:   order,
			ExtendedValue: extended,
			Decode:        decode,
			Alias:         alias,
		})
	}

	return out, nil
}

func mapExternalCodeList(n node) *ExternalCodeList {
	return &ExternalCodeList{
		Dictionary: n.attr("dictionary"),
		Version:    n.attr("version"),
		Ref:        n.attr("ref"),
		Href:       n.attr("href"),
	}
}

func mapFormalExpressions(parent node) ([]FormalExpression, error) {
	nodes, err := parent.children("formalExpression")
	if err != nil || len(nodes) == 0 {
		return nil, err
	}

	out := make([]FormalExpression, len(nodes))
	for i, n := range nodes {
		out[i] = FormalExpression{Context: n.attr("context"), Value: n.Text()}
	}

	return out, nil
}

func mapGlobalVariables(n node) (GlobalVariables, error) {
	var (
		gv  GlobalVariables
		err error
	)

	if gv.StudyName, err = n.requiredText("studyName"); err != nil {
		return GlobalVariables{}, err
	}

	if gv.StudyDescription, err = n.requiredText("studyDescription"); err != nil {
		return GlobalVariables{}, err
	}

	if gv.ProtocolName, err = n.requiredText("protocolName"); err != nil {
		return GlobalVariables{}, err
	}

	return gv, nil
}

func mapCheckValues(n node) ([]string, error) {
	nodes, err := n.children("checkValue")
	if err != nil {
		return nil, err
	}

	return lo.Map(nodes, func(cv node, _ int) string {
		return cv.Text()
	}), nil
}

func mapRangeChecks(n node) ([]RangeCheck, error) {
	nodes, err := n.children("rangeCheck")
	if err != nil {
		return nil, err
	}

	out := make([]RangeCheck, 0, len(nodes))

	for _, rc := range nodes {
		values, err := mapCheckValues(rc)
		if err != nil {
			return nil, err
		}

		out = append(out, RangeCheck{
			Comparator:  Comparator(rc.attr("comparator")),
			SoftHard:    SoftHard(rc.attr("softHard")),
			ItemOID:     rc.attr("itemOid"),
			CheckValues: values,
		})
	}

	return out, nil
}

// mapWhereClauses maps whereClauseDef children, skipping nodes without attributes.
func mapWhereClauses(nodes []node) (OrderedMap[WhereClauseDef], error) {
	clauses := NewOrderedMap[WhereClauseDef]()

	for _, n := range nodes {
		if !n.HasAttrs() {
			continue
		}

		checks, err := mapRangeChecks(n)
		if err != nil {
			return OrderedMap[WhereClauseDef]{}, err
		}

		clause := WhereClauseDef{OID: n.attr("oid"), CommentOID: n.attr("commentOid"), RangeChecks: checks}
		clauses.Set(clause.OID, clause)
	}

	return clauses, nil
}

// refOIDs collects one attribute of every child stored under key, as used by
// whereClauseRef and analysisVariable lists.
func refOIDs(parent node, key, attr string) ([]string, error) {
	nodes, err := parent.children(key)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}

	return lo.Map(nodes, func(n node, _ int) string {
		return n.attr(attr)
	}), nil
}

package define

// Records produced by the metadata mapper. One family serves both Define-XML
// versions; fields carried by a single version say so. Cross references are
// plain OIDs and are never resolved.

// TranslatedText is a text in one language.
type TranslatedText struct {
	Lang  string `json:"xmlLang,omitempty"`
	Value string `json:"value"`
}

// Alias is an alternative name used in a given context.
type Alias struct {
	Context string `json:"context"`
	Name    string `json:"name"`
}

// Leaf is an external document referenced by DocumentRef.
type Leaf struct {
	ID    string `json:"id"`
	Href  string `json:"xlinkHref"`
	Title string `json:"title"`
}

// PDFPageRef points into a PDF document.
type PDFPageRef struct {
	Type      PDFPageRefType `json:"type"`
	PageRefs  string         `json:"pageRefs,omitempty"`
	FirstPage *int           `json:"firstPage,omitempty"`
	LastPage  *int           `json:"lastPage,omitempty"`
	Title     string         `json:"title,omitempty"` // 2.1
}

// DocumentRef references a Leaf, optionally narrowed to pages.
type DocumentRef struct {
	LeafID      string       `json:"leafId"`
	PDFPageRefs []PDFPageRef `json:"pdfPageRefs,omitempty"`
}

// Origin describes where the values of an item come from.
type Origin struct {
	Type         OriginType       `json:"type"`
	Source       OriginSource     `json:"source,omitempty"` // 2.1
	Description  []TranslatedText `json:"description,omitempty"`
	DocumentRefs []DocumentRef    `json:"documentRefs,omitempty"`
}

// GlobalVariables holds the study identification.
type GlobalVariables struct {
	StudyName        string `json:"studyName"`
	StudyDescription string `json:"studyDescription"`
	ProtocolName     string `json:"protocolName"`
}

// RangeCheck is one condition of a where clause.
type RangeCheck struct {
	Comparator  Comparator `json:"comparator"`
	SoftHard    SoftHard   `json:"softHard"`
	ItemOID     string     `json:"itemOid"`
	CheckValues []string   `json:"checkValues"`
}

// WhereClauseDef identifies a subset of records.
type WhereClauseDef struct {
	OID         string       `json:"oid"`
	CommentOID  string       `json:"commentOid,omitempty"`
	RangeChecks []RangeCheck `json:"rangeChecks"`
}

// EnumeratedItem is a code list term without a decode.
type EnumeratedItem struct {
	CodedValue    string   `json:"codedValue"`
	Rank          *float64 `json:"rank,omitempty"`
	OrderNumber   *int     `json:"orderNumber,omitempty"`
	ExtendedValue bool     `json:"extendedValue,omitempty"`
	Alias         []Alias  `json:"alias,omitempty"`
}

// CodeListItem is a code list term with a decode.
type CodeListItem struct {
	CodedValue    string           `json:"codedValue"`
	Rank          *float64         `json:"rank,omitempty"`
	OrderNumber   *int             `json:"orderNumber,omitempty"`
	ExtendedValue bool             `json:"extendedValue,omitempty"`
	Decode        []TranslatedText `json:"decode"`
	Alias         []Alias          `json:"alias,omitempty"`
}

// ExternalCodeList references an external dictionary.
type ExternalCodeList struct {
	Dictionary string `json:"dictionary"`
	Version    string `json:"version"`
	Ref        string `json:"ref,omitempty"`
	Href       string `json:"href,omitempty"`
}

// CodeList holds enumerated items, coded items or an external dictionary.
type CodeList struct {
	OID              string            `json:"oid"`
	Name             string            `json:"name"`
	DataType         DataType          `json:"dataType"`
	SASFormatName    string            `json:"sasFormatName,omitempty"`
	StandardOID      string            `json:"standardOid,omitempty"`   // 2.1
	IsNonStandard    bool              `json:"isNonStandard,omitempty"` // 2.1
	CommentOID       string            `json:"commentOid,omitempty"`    // 2.1
	Description      []TranslatedText  `json:"description,omitempty"`   // 2.1
	Alias            []Alias           `json:"alias,omitempty"`
	EnumeratedItems  []EnumeratedItem  `json:"enumeratedItems,omitempty"`
	CodeListItems    []CodeListItem    `json:"codeListItems,omitempty"`
	ExternalCodeList *ExternalCodeList `json:"externalCodeList,omitempty"`
}

// FormalExpression is machine-readable method code.
type FormalExpression struct {
	Context string `json:"context"`
	Value   string `json:"value"`
}

// MethodDef describes a derivation or imputation.
type MethodDef struct {
	OID               string             `json:"oid"`
	Name              string             `json:"name"`
	Type              MethodType         `json:"type"`
	Description       []TranslatedText   `json:"description,omitempty"`
	DocumentRefs      []DocumentRef      `json:"documentRefs,omitempty"`
	FormalExpressions []FormalExpression `json:"formalExpressions,omitempty"`
}

// CommentDef is a free-text comment referenced by OID.
type CommentDef struct {
	OID          string           `json:"oid"`
	Description  []TranslatedText `json:"description,omitempty"`
	DocumentRefs []DocumentRef    `json:"documentRefs,omitempty"`
}

// ItemRef places an item in an item group or value list.
type ItemRef struct {
	ItemOID         string   `json:"itemOid"`
	Mandatory       bool     `json:"mandatory"`
	OrderNumber     *int     `json:"orderNumber,omitempty"`
	KeySequence     *int     `json:"keySequence,omitempty"`
	MethodOID       string   `json:"methodOid,omitempty"`
	Role            string   `json:"role,omitempty"`
	RoleCodeListOID string   `json:"roleCodeListOid,omitempty"`
	WhereClauseRefs []string `json:"whereClauseRefs,omitempty"`
	StandardOID     string   `json:"standardOid,omitempty"`   // 2.1
	IsNonStandard   bool     `json:"isNonStandard,omitempty"` // 2.1
}

// ValueListDef holds value-level metadata for one item.
type ValueListDef struct {
	OID         string              `json:"oid"`
	ItemRefs    OrderedMap[ItemRef] `json:"itemRefs"`
	Description []TranslatedText    `json:"description,omitempty"` // 2.1
}

// ItemDef describes a variable.
type ItemDef struct {
	OID               string           `json:"oid"`
	Name              string           `json:"name"`
	DataType          DataType         `json:"dataType"`
	Length            *int             `json:"length,omitempty"`
	SignificantDigits *int             `json:"significantDigits,omitempty"`
	SASFieldName      string           `json:"sasFieldName,omitempty"`
	DisplayFormat     string           `json:"displayFormat,omitempty"`
	CommentOID        string           `json:"commentOid,omitempty"`
	Description       []TranslatedText `json:"description,omitempty"`
	CodeListRef       string           `json:"codeListRef,omitempty"`
	ValueListRef      string           `json:"valueListRef,omitempty"`
	Origins           []Origin         `json:"origins,omitempty"` // at most one in 2.0
	Alias             []Alias          `json:"alias,omitempty"`   // 2.1
}

// ItemGroupSubClass is a subclass of an item group class (2.1).
type ItemGroupSubClass struct {
	Name            SubClassName `json:"name"`
	ParentClassName string       `json:"parentClassName,omitempty"`
}

// ItemGroupClass is the observation class of a dataset. In 2.0 only the
// name is available.
type ItemGroupClass struct {
	Name       ClassName           `json:"name"`
	SubClasses []ItemGroupSubClass `json:"subClasses,omitempty"`
}

// ItemGroupDef describes a dataset.
type ItemGroupDef struct {
	OID               string              `json:"oid"`
	Name              string              `json:"name"`
	Repeating         bool                `json:"repeating"`
	Purpose           ItemGroupPurpose    `json:"purpose"`
	Domain            string              `json:"domain,omitempty"`
	SASDatasetName    string              `json:"sasDatasetName,omitempty"`
	Structure         string              `json:"structure,omitempty"`
	Class             *ItemGroupClass     `json:"class,omitempty"`
	ArchiveLocationID string              `json:"archiveLocationId,omitempty"`
	IsReferenceData   *bool               `json:"isReferenceData,omitempty"`
	StandardOID       string              `json:"standardOid,omitempty"`   // 2.1
	IsNonStandard     bool                `json:"isNonStandard,omitempty"` // 2.1
	HasNoData         bool                `json:"hasNoData,omitempty"`     // 2.1
	CommentOID        string              `json:"commentOid,omitempty"`
	Description       []TranslatedText    `json:"description,omitempty"`
	Alias             []Alias             `json:"alias,omitempty"`
	Leaf              *Leaf               `json:"leaf,omitempty"`
	ItemRefs          OrderedMap[ItemRef] `json:"itemRefs"`
}

// Standard is an entry of the standards registry (2.1).
type Standard struct {
	OID           string         `json:"oid"`
	Name          StandardName   `json:"name"`
	Type          StandardType   `json:"type"`
	Version       string         `json:"version"`
	PublishingSet string         `json:"publishingSet,omitempty"`
	Status        StandardStatus `json:"status,omitempty"`
	CommentOID    string         `json:"commentOid,omitempty"`
}

// MetaDataVersion owns every metadata collection of a study. Collections
// other than item groups and item defs are nil when the document has none.
type MetaDataVersion struct {
	OID             string `json:"oid"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DefineVersion   string `json:"defineVersion"`
	StandardName    string `json:"standardName,omitempty"`    // 2.0
	StandardVersion string `json:"standardVersion,omitempty"` // 2.0
	CommentOID      string `json:"commentOid,omitempty"`      // 2.1

	Standards       *OrderedMap[Standard]       `json:"standards,omitempty"` // 2.1
	ItemGroupDefs   OrderedMap[ItemGroupDef]    `json:"itemGroupDefs"`
	ItemDefs        OrderedMap[ItemDef]         `json:"itemDefs"`
	AnnotatedCRF    []DocumentRef               `json:"annotatedCrf,omitempty"`
	SupplementalDoc []DocumentRef               `json:"supplementalDoc,omitempty"`
	ValueListDefs   *OrderedMap[ValueListDef]   `json:"valueListDefs,omitempty"`
	WhereClauseDefs *OrderedMap[WhereClauseDef] `json:"whereClauseDefs,omitempty"`
	CodeLists       *OrderedMap[CodeList]       `json:"codeLists,omitempty"`
	MethodDefs      *OrderedMap[MethodDef]      `json:"methodDefs,omitempty"`
	CommentDefs     *OrderedMap[CommentDef]     `json:"commentDefs,omitempty"`
	Leafs           *OrderedMap[Leaf]           `json:"leafs,omitempty"`
}

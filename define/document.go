package define

// Metadata is the set of MetaDataVersion shapes a document can carry.
type Metadata interface {
	MetaDataVersion | ARMMetaDataVersion
}

// Declaration is the XML declaration of the source text.
type Declaration struct {
	Version  string `json:"version,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// StyleSheet is the xml-stylesheet processing instruction of the source text.
type StyleSheet struct {
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

// Document is a parsed Define-XML file.
type Document[M Metadata] struct {
	Version    Version     `json:"defineXmlVersion"`
	XML        Declaration `json:"xml"`
	StyleSheet StyleSheet  `json:"styleSheet"`
	ODM        ODM[M]      `json:"odm"`
}

// ODM is the document root element.
type ODM[M Metadata] struct {
	XMLNS               string   `json:"xmlns"`
	XMLNSDef            string   `json:"xmlnsDef"`
	XMLNSXlink          string   `json:"xmlnsXlink,omitempty"`
	XMLNSXsi            string   `json:"xmlnsXsi,omitempty"`
	XMLNSArm            string   `json:"xmlnsArm,omitempty"` // ARM only
	SchemaLocation      string   `json:"xsiSchemaLocation,omitempty"`
	ODMVersion          string   `json:"odmVersion"`
	FileType            string   `json:"fileType"`
	FileOID             string   `json:"fileOid"`
	CreationDateTime    string   `json:"creationDateTime"`
	AsOfDateTime        string   `json:"asOfDateTime,omitempty"`
	Originator          string   `json:"originator,omitempty"`
	SourceSystem        string   `json:"sourceSystem,omitempty"`
	SourceSystemVersion string   `json:"sourceSystemVersion,omitempty"`
	Context             string   `json:"context,omitempty"` // 2.1
	Study               Study[M] `json:"study"`
}

// Study is the single study described by the document.
type Study[M Metadata] struct {
	OID             string          `json:"studyOid"`
	GlobalVariables GlobalVariables `json:"globalVariables"`
	MetaDataVersion M               `json:"metaDataVersion"`
}

// DefineXML is implemented by *Document[MetaDataVersion] and
// *Document[ARMMetaDataVersion]. Use a type switch to reach the concrete
// document.
type DefineXML interface {
	// DefineVersion returns the Define-XML version the document was parsed as.
	DefineVersion() Version
	// HasARM reports whether analysis results were mapped.
	HasARM() bool
	// Base returns the metadata shared by both shapes.
	Base() *MetaDataVersion

	isDefineXML()
}

// DefineVersion implements DefineXML.
func (d *Document[M]) DefineVersion() Version {
	return d.Version
}

// HasARM implements DefineXML.
func (d *Document[M]) HasARM() bool {
	_, ok := any(&d.ODM.Study.MetaDataVersion).(*ARMMetaDataVersion)
	return ok
}

// Base implements DefineXML.
func (d *Document[M]) Base() *MetaDataVersion {
	switch mdv := any(&d.ODM.Study.MetaDataVersion).(type) {
	case *MetaDataVersion:
		return mdv
	case *ARMMetaDataVersion:
		return &mdv.MetaDataVersion
	default:
		return nil
	}
}

func (d *Document[M]) isDefineXML() {}

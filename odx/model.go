// Package odx implements the ODX/PDX reader and writer (C4/C5, spec.md
// §4.4-§4.5): the four-phase pipeline from ODX XML through a reference
// index and an inheritance merge into ir.Database, and the inverse
// single-layer XML emission.
//
// model.go is Phase 1: a mirror object model over the ODX XML vocabulary,
// decoded with encoding/xml the way this module's retrieval pack's own XML
// consumers do (no third-party XML library appears anywhere in the pack;
// see DESIGN.md). Polymorphic elements (PARAM, DIAG-CODED-TYPE, DOP) are
// flattened proxy structs tagged by `xsi:type`/`type`, converted to the
// matching ir union case in reader.go/writer.go -- the same proxy-struct
// technique the pack's ocochard-cmonit XML parser uses for its own
// polymorphic elements, at this package's terser comment density.
package odx

import "encoding/xml"

// xmlContainer is the ODX root: <ODX><DIAG-LAYER-CONTAINER>...</ODX>.
type xmlContainer struct {
	XMLName   xml.Name         `xml:"ODX"`
	Container xmlLayerContainer `xml:"DIAG-LAYER-CONTAINER"`
}

type xmlLayerContainer struct {
	ID               string          `xml:"ID,attr"`
	ShortName        string          `xml:"SHORT-NAME"`
	BaseVariants     []xmlDiagLayer  `xml:"BASE-VARIANTS>BASE-VARIANT"`
	EcuVariants      []xmlDiagLayer  `xml:"ECU-VARIANTS>ECU-VARIANT"`
	Protocols        []xmlDiagLayer  `xml:"PROTOCOLS>PROTOCOL"`
	FunctionalGroups []xmlDiagLayer  `xml:"FUNCTIONAL-GROUPS>FUNCTIONAL-GROUP"`
	EcuSharedDatas   []xmlDiagLayer  `xml:"ECU-SHARED-DATAS>ECU-SHARED-DATA"`
}

// xmlLayerKind distinguishes which slice of xmlLayerContainer a layer came
// from; the merge and IR-mapping phases need to know this to build the
// right ir.Variant/FunctionalGroup/Protocol/EcuSharedData wrapper.
type xmlLayerKind uint8

const (
	layerBaseVariant xmlLayerKind = iota
	layerEcuVariant
	layerProtocol
	layerFunctionalGroup
	layerEcuSharedData
)

// xmlDiagLayer is the common shape every ODX layer kind shares (spec.md
// §3.2). Variant-only and Protocol-only fields are carried alongside since
// ODX itself does not factor them into a separate element.
type xmlDiagLayer struct {
	ID                  string            `xml:"ID,attr"`
	ShortName           string            `xml:"SHORT-NAME"`
	LongName            *xmlText          `xml:"LONG-NAME"`
	FunctClasses        []xmlFunctClass   `xml:"FUNCT-CLASSS>FUNCT-CLASS"`
	ComParamRefs        []xmlComParamRef  `xml:"COMPARAM-REFS>COMPARAM-REF"`
	DiagComms           xmlDiagComms      `xml:"DIAG-COMMS"`
	StateCharts         []xmlStateChart   `xml:"STATE-CHARTS>STATE-CHART"`
	AdditionalAudiences []xmlAudienceTag  `xml:"ADDITIONAL-AUDIENCES>ADDITIONAL-AUDIENCE"`
	SDGs                *xmlSDGs          `xml:"SDGS"`
	ParentRefs          []xmlParentRef    `xml:"PARENT-REFS>PARENT-REF"`
	IsBaseVariant       bool              `xml:"-"`
	VariantPatterns     []xmlVariantPattern `xml:"VARIANT-PATTERNS>VARIANT-PATTERN"`
	ComParamSpec        *xmlComParamSpec  `xml:"COMPARAM-SPEC"`
	DiagDataDictionarySpec *xmlDataDictionarySpec `xml:"DIAG-DATA-DICTIONARY-SPEC"`
	Requests            []xmlRequest      `xml:"DIAG-DATA-DICTIONARY-SPEC>REQUESTS>REQUEST"`
	PosResponses        []xmlResponse     `xml:"DIAG-DATA-DICTIONARY-SPEC>POS-RESPONSES>POS-RESPONSE"`
	NegResponses        []xmlResponse     `xml:"DIAG-DATA-DICTIONARY-SPEC>NEG-RESPONSES>NEG-RESPONSE"`
	GlobalNegResponses  []xmlResponse     `xml:"DIAG-DATA-DICTIONARY-SPEC>GLOBAL-NEG-RESPONSES>GLOBAL-NEG-RESPONSE"`
}

// xmlDataDictionarySpec is the per-layer catalog of DOPs, tables, and units
// (ODX DIAG-DATA-DICTIONARY-SPEC). Each Dop kind keeps its own real ODX
// element name rather than a shared xsi:type, so xmlDop.XsiType is stamped
// by the reader from which slice an entry was decoded out of, not by the
// decoder itself.
type xmlDataDictionarySpec struct {
	DataObjectProps        []xmlDop    `xml:"DATA-OBJECT-PROPS>DATA-OBJECT-PROP"`
	DtcDops                []xmlDtcDop `xml:"DTC-DOPS>DTC-DOP"`
	Structures             []xmlDop    `xml:"STRUCTURES>STRUCTURE"`
	EndOfPduFields         []xmlDop    `xml:"END-OF-PDU-FIELDS>END-OF-PDU-FIELD"`
	StaticFields           []xmlDop    `xml:"STATIC-FIELDS>STATIC-FIELD"`
	DynamicLengthFields    []xmlDop    `xml:"DYNAMIC-LENGTH-FIELDS>DYNAMIC-LENGTH-FIELD"`
	DynamicEndmarkerFields []xmlDop    `xml:"DYNAMIC-ENDMARKER-FIELDS>DYNAMIC-ENDMARKER-FIELD"`
	EnvDataDescs           []xmlDop    `xml:"ENV-DATA-DESCS>ENV-DATA-DESC"`
	EnvDatas               []xmlDop    `xml:"ENV-DATAS>ENV-DATA"`
	Muxes                  []xmlDop    `xml:"MUXS>MUX"`
	Tables                 []xmlTableDop `xml:"TABLES>TABLE"`
	UnitSpec               *xmlUnitSpec  `xml:"UNIT-SPEC"`
}

type xmlText struct {
	Value string `xml:",chardata"`
	TI    string `xml:"TI,attr"`
}

type xmlFunctClass struct {
	ShortName string `xml:"SHORT-NAME"`
}

type xmlAudienceTag struct {
	ShortName string   `xml:"SHORT-NAME"`
	LongName  *xmlText `xml:"LONG-NAME"`
}

type xmlAudience struct {
	EnabledAudienceRefs  []string `xml:"ENABLED-AUDIENCE-REFS>ENABLED-AUDIENCE-REF>SHORT-NAME"`
	DisabledAudienceRefs []string `xml:"DISABLED-AUDIENCE-REFS>DISABLED-AUDIENCE-REF>SHORT-NAME"`
	IsSupplier           bool     `xml:"IS-SUPPLIER,attr"`
	IsDevelopment        bool     `xml:"IS-DEVELOPMENT,attr"`
	IsManufacturing      bool     `xml:"IS-MANUFACTURING,attr"`
	IsAfterSales         bool     `xml:"IS-AFTER-SALES,attr"`
	IsAfterMarket        bool     `xml:"IS-AFTER-MARKET,attr"`
}

// xmlParentRef mirrors ir.ParentRef: a kind discriminated by @xsi:type on
// the REF element's target ID prefix is not reliable in real ODX, so the
// reader instead resolves the referenced ID through OdxIndex and lets the
// index report which partition it was found in.
type xmlParentRef struct {
	IDRef                            string   `xml:"ID-REF,attr"`
	NotInheritedDiagComms            []string `xml:"NOT-INHERITED-DIAG-COMMS>NOT-INHERITED-DIAG-COMM>SHORT-NAME"`
	NotInheritedVariables            []string `xml:"NOT-INHERITED-VARIABLES>NOT-INHERITED-VARIABLE>SHORT-NAME"`
	NotInheritedDops                 []string `xml:"NOT-INHERITED-DOPS>NOT-INHERITED-DOP>SHORT-NAME"`
	NotInheritedTables               []string `xml:"NOT-INHERITED-TABLES>NOT-INHERITED-TABLE>SHORT-NAME"`
	NotInheritedGlobalNegResponses   []string `xml:"NOT-INHERITED-GLOBAL-NEG-RESPONSES>NOT-INHERITED-GLOBAL-NEG-RESPONSE>SHORT-NAME"`
}

type xmlVariantPattern struct {
	MatchingParameters []xmlMatchingParameter `xml:"MATCHING-PARAMETERS>MATCHING-PARAMETER"`
}

type xmlMatchingParameter struct {
	ExpectedValue  string `xml:"EXPECTED-VALUE"`
	DiagComSNREF   string `xml:"DIAG-COM-SNREF>SHORT-NAME"`
	OutParamIfSNREF string `xml:"OUT-PARAM-IF-SNREF>SHORT-NAME"`
}

// xmlDiagComms is Phase 1's most important type: the DIAG-COMMS container
// holds DIAG-SERVICE, SINGLE-ECU-JOB, and DIAG-COMM-REF children in one
// order-preserving sequence (spec.md §4.4 Phase 1 "must be modeled as one
// tagged sequence, not three parallel lists").
type xmlDiagComms struct {
	Entries []xmlDiagCommEntry
}

type diagCommEntryKind uint8

const (
	diagCommEntryService diagCommEntryKind = iota
	diagCommEntryJob
	diagCommEntryRef
)

type xmlDiagCommEntry struct {
	Kind    diagCommEntryKind
	Service *xmlDiagService
	Job     *xmlSingleEcuJob
	RefID   string
}

// MarshalXML is the inverse of UnmarshalXML: it re-emits each entry under
// its own real element name instead of the Go field names of
// xmlDiagCommEntry, which carry no ODX meaning of their own.
func (c xmlDiagComms) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = "DIAG-COMMS"
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, entry := range c.Entries {
		switch entry.Kind {
		case diagCommEntryService:
			if entry.Service != nil {
				if err := e.EncodeElement(entry.Service, xml.StartElement{Name: xml.Name{Local: "DIAG-SERVICE"}}); err != nil {
					return err
				}
			}
		case diagCommEntryJob:
			if entry.Job != nil {
				if err := e.EncodeElement(entry.Job, xml.StartElement{Name: xml.Name{Local: "SINGLE-ECU-JOB"}}); err != nil {
					return err
				}
			}
		case diagCommEntryRef:
			ref := struct {
				IDRef string `xml:"ID-REF,attr"`
			}{IDRef: entry.RefID}
			if err := e.EncodeElement(ref, xml.StartElement{Name: xml.Name{Local: "DIAG-COMM-REF"}}); err != nil {
				return err
			}
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML decodes the heterogeneous DIAG-COMMS sequence one child
// element at a time, preserving source order across the three element
// kinds instead of collecting them into per-kind slices.
func (c *xmlDiagComms) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "DIAG-SERVICE":
				var s xmlDiagService
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				c.Entries = append(c.Entries, xmlDiagCommEntry{Kind: diagCommEntryService, Service: &s})
			case "SINGLE-ECU-JOB":
				var j xmlSingleEcuJob
				if err := d.DecodeElement(&j, &t); err != nil {
					return err
				}
				c.Entries = append(c.Entries, xmlDiagCommEntry{Kind: diagCommEntryJob, Job: &j})
			case "DIAG-COMM-REF":
				var ref struct {
					IDRef string `xml:"ID-REF,attr"`
				}
				if err := d.DecodeElement(&ref, &t); err != nil {
					return err
				}
				c.Entries = append(c.Entries, xmlDiagCommEntry{Kind: diagCommEntryRef, RefID: ref.IDRef})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type xmlDiagComm struct {
	ID                    string              `xml:"ID,attr"`
	ShortName             string              `xml:"SHORT-NAME"`
	LongName              *xmlText            `xml:"LONG-NAME"`
	Semantic              string              `xml:"SEMANTIC,attr"`
	FunctClasses          []xmlFunctClass     `xml:"FUNCT-CLASS-REFS>FUNCT-CLASS-REF"`
	SDGs                  *xmlSDGs            `xml:"SDGS"`
	DiagClassType         string              `xml:"DIAGNOSTIC-CLASS,attr"`
	PreConditionStateRefs []xmlStateRef       `xml:"PRE-CONDITION-STATE-REFS>PRE-CONDITION-STATE-REF"`
	StateTransitionRefs   []xmlStateRef       `xml:"STATE-TRANSITION-REFS>STATE-TRANSITION-REF"`
	ProtocolSNREFs        []string            `xml:"PROTOCOL-SNREFS>PROTOCOL-SNREF>SHORT-NAME"`
	Audience              *xmlAudience        `xml:"AUDIENCE"`
	IsMandatory           bool                `xml:"IS-MANDATORY,attr"`
	IsExecutable          bool                `xml:"IS-EXECUTABLE,attr"`
	IsFinal               bool                `xml:"IS-FINAL,attr"`
}

type xmlStateRef struct {
	Value              string `xml:"VALUE,attr"`
	InParamIfShortName string `xml:"IN-PARAM-IF-SNREF>SHORT-NAME"`
}

type xmlDiagService struct {
	xmlDiagComm
	RequestRef       string           `xml:"REQUEST-REF>ID-REF,attr"`
	PosResponseRefs  []string         `xml:"POS-RESPONSE-REFS>POS-RESPONSE-REF>ID-REF,attr"`
	NegResponseRefs  []string         `xml:"NEG-RESPONSE-REFS>NEG-RESPONSE-REF>ID-REF,attr"`
	IsCyclic         bool             `xml:"IS-CYCLIC,attr"`
	IsMultiple       bool             `xml:"IS-MULTIPLE,attr"`
	Addressing       string           `xml:"ADDRESSING,attr"`
	TransmissionMode string           `xml:"TRANSMISSION-MODE,attr"`
	ComParamRefs     []xmlComParamRef `xml:"COMPARAM-REFS>COMPARAM-REF"`
}

type xmlSingleEcuJob struct {
	xmlDiagComm
	ProgCodes       []xmlProgCode  `xml:"PROG-CODES>PROG-CODE"`
	InputParams     []xmlJobParam  `xml:"INPUT-PARAMS>INPUT-PARAM"`
	OutputParams    []xmlJobParam  `xml:"OUTPUT-PARAMS>OUTPUT-PARAM"`
	NegOutputParams []xmlJobParam  `xml:"NEG-OUTPUT-PARAMS>NEG-OUTPUT-PARAM"`
}

type xmlProgCode struct {
	CodeFile   string        `xml:"CODE-FILE"`
	Encryption string        `xml:"ENCRYPTION"`
	Syntax     string        `xml:"SYNTAX"`
	Revision   string        `xml:"REVISION"`
	EntryPoint string        `xml:"ENTRYPOINT"`
	Libraries  []xmlLibrary  `xml:"LIBRARIES>LIBRARY"`
}

type xmlLibrary struct {
	ShortName  string   `xml:"SHORT-NAME"`
	LongName   *xmlText `xml:"LONG-NAME"`
	CodeFile   string   `xml:"CODE-FILE"`
	Encryption string   `xml:"ENCRYPTION"`
	Syntax     string   `xml:"SYNTAX"`
	EntryPoint string   `xml:"ENTRYPOINT"`
}

type xmlJobParam struct {
	ShortName            string   `xml:"SHORT-NAME"`
	LongName             *xmlText `xml:"LONG-NAME"`
	PhysicalDefaultValue string   `xml:"PHYSICAL-DEFAULT-VALUE"`
	DopBaseSNREF         string   `xml:"DOP-BASE-SNREF>SHORT-NAME"`
	Semantic             string   `xml:"SEMANTIC,attr"`
}

type xmlRequest struct {
	ID     string     `xml:"ID,attr"`
	Params []xmlParam `xml:"PARAMS>PARAM"`
	SDGs   *xmlSDGs   `xml:"SDGS"`
}

type xmlResponse struct {
	ID           string     `xml:"ID,attr"`
	ShortName    string     `xml:"SHORT-NAME"`
	ResponseKind string     `xml:"-"` // set by the reader from which ref-list it was found through
	Params       []xmlParam `xml:"PARAMS>PARAM"`
	SDGs         *xmlSDGs   `xml:"SDGS"`
}

// xmlParam is the flattened Phase-1 proxy for every PARAM xsi:type (spec.md
// §3.4): every variant's fields live side by side, selected by XsiType.
type xmlParam struct {
	ID                   uint32         `xml:"ID,attr"`
	XsiType              string         `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	ShortName            string         `xml:"SHORT-NAME"`
	Semantic             string         `xml:"SEMANTIC,attr"`
	SDGs                 *xmlSDGs       `xml:"SDGS"`
	PhysicalDefaultValue string         `xml:"PHYSICAL-DEFAULT-VALUE"`
	BytePosition         *uint32        `xml:"BYTE-POSITION"`
	BitPosition          *uint32        `xml:"BIT-POSITION"`

	CodedValue          string          `xml:"CODED-VALUE"`
	CodedValues         []string        `xml:"CODED-VALUES>CODED-VALUE"`
	DiagCodedType        *xmlDiagCodedType `xml:"DIAG-CODED-TYPE"`
	DopRef              string          `xml:"DOP-REF>ID-REF,attr"`
	DopSNREF            string          `xml:"DOP-SNREF>SHORT-NAME"`
	RequestBytePos      *int32          `xml:"REQUEST-BYTE-POS"`
	ByteLength          *uint32         `xml:"BYTE-LENGTH"`
	PhysConstantValue   string          `xml:"PHYS-CONSTANT-VALUE"`
	BitLength           *uint32         `xml:"BIT-LENGTH"`
	SysParam            string          `xml:"SYSPARAM,attr"`
	TableRowRef         string          `xml:"TABLE-ROW-REF>ID-REF,attr"`
	TableRowSNREF       string          `xml:"TABLE-ROW-SNREF>SHORT-NAME"`
	TableKeyRef         string          `xml:"TABLE-KEY-REF>ID-REF,attr"`
	TableKeySNREF       string          `xml:"TABLE-KEY-SNREF>SHORT-NAME"`
	TableDopRef         string          `xml:"TABLE-REF>ID-REF,attr"`
	TableEntryTarget    string          `xml:"TARGET,attr"`
}

type xmlDiagCodedType struct {
	XsiType            string  `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	BaseTypeEncoding   string  `xml:"BASE-TYPE-ENCODING,attr"`
	BaseDataType       string  `xml:"BASE-DATA-TYPE,attr"`
	IsHighLowByteOrder bool    `xml:"IS-HIGHLOW-BYTE-ORDER,attr"`
	BitLength          *uint32 `xml:"BIT-LENGTH"`
	MinLength          *uint32 `xml:"MIN-LENGTH"`
	MaxLength          *uint32 `xml:"MAX-LENGTH"`
	Termination        string  `xml:"TERMINATION,attr"`
	LengthKeyRef       string  `xml:"LENGTH-KEY-REF>ID-REF,attr"`
	BitMask            string  `xml:"BIT-MASK"`
	Condensed          bool    `xml:"IS-CONDENSED,attr"`
}

type xmlSDGs struct {
	Sdgs []xmlSdg `xml:"SDG"`
}

type xmlSdg struct {
	CaptionSN string    `xml:"CAPTION>SHORT-NAME"`
	SI        string     `xml:"SI,attr"`
	Sds       []xmlSd   `xml:"SD"`
	Sdgs      []xmlSdg  `xml:"SDG"`
}

type xmlSd struct {
	Value string `xml:",chardata"`
	SI    string `xml:"SI,attr"`
	TI    string `xml:"TI,attr"`
}

type xmlComParamRef struct {
	ComParamRef  string         `xml:"COMPARAM-REF>ID-REF,attr"`
	ProtocolSNREF string        `xml:"PROTOCOL-SNREF>SHORT-NAME"`
	ProtStackSNREF string       `xml:"PROT-STACK-SNREF>SHORT-NAME"`
	SimpleValue  string         `xml:"SIMPLE-VALUE"`
	ComplexValue *xmlComplexValue `xml:"COMPLEX-VALUE"`
}

type xmlComplexValue struct {
	SimpleValues  []string          `xml:"SIMPLE-VALUE"`
	ComplexValues []xmlComplexValue `xml:"COMPLEX-VALUE"`
}

type xmlComParamSpec struct {
	ProtStacks []xmlProtStack `xml:"PROT-STACKS>PROT-STACK"`
}

type xmlProtStack struct {
	ShortName  string   `xml:"SHORT-NAME"`
	LongName   *xmlText `xml:"LONG-NAME"`
	PduProtocolType  string `xml:"PDU-PROTOCOL-TYPE"`
	PhysicalLinkType string `xml:"PHYSICAL-LINK-TYPE"`
}

type xmlStateChart struct {
	ShortName              string             `xml:"SHORT-NAME"`
	Semantic               string             `xml:"SEMANTIC,attr"`
	States                 []xmlState         `xml:"STATES>STATE"`
	StateTransitions       []xmlStateTransition `xml:"STATE-TRANSITIONS>STATE-TRANSITION"`
	StartStateSNREF        string             `xml:"START-STATE-SNREF>SHORT-NAME"`
}

type xmlState struct {
	ShortName string   `xml:"SHORT-NAME"`
	LongName  *xmlText `xml:"LONG-NAME"`
}

type xmlStateTransition struct {
	ShortName          string `xml:"SHORT-NAME"`
	SourceSNREF        string `xml:"SOURCE-SNREF>SHORT-NAME"`
	TargetSNREF        string `xml:"TARGET-SNREF>SHORT-NAME"`
}

// xmlDop is the flattened Phase-1 proxy for every DOP xsi:type (spec.md
// §3.5), mirroring xmlParam's technique.
type xmlDop struct {
	ID        string   `xml:"ID,attr"`
	XsiType   string   `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	ShortName string   `xml:"SHORT-NAME"`
	SDGs      *xmlSDGs `xml:"SDGS"`

	DiagCodedType *xmlDiagCodedType `xml:"DIAG-CODED-TYPE"`
	PhysicalType  *xmlPhysicalType  `xml:"PHYSICAL-TYPE"`
	CompuMethod   *xmlCompuMethod   `xml:"COMPU-METHOD"`
	InternalConstr *xmlConstr       `xml:"INTERNAL-CONSTR"`
	PhysConstr     *xmlConstr       `xml:"PHYS-CONSTR"`
	UnitRef        string           `xml:"UNIT-REF>ID-REF,attr"`

	Params         []xmlParam       `xml:"PARAMS>PARAM"`
	ByteSize       *uint32          `xml:"BYTE-SIZE"`
	IsVisible      bool             `xml:"IS-VISIBLE,attr"`

	MaxNumberOfItems *uint32        `xml:"MAX-NUMBER-OF-ITEMS"`
	MinNumberOfItems *uint32        `xml:"MIN-NUMBER-OF-ITEMS"`
	FixedNumberOfItems uint32       `xml:"FIXED-NUMBER-OF-ITEMS"`
	ItemByteSize     uint32         `xml:"ITEM-BYTE-SIZE"`
	FieldBasicStructureRef string  `xml:"BASIC-STRUCTURE-REF>ID-REF,attr"`
	FieldEnvDataDescRef    string  `xml:"ENV-DATA-DESC-REF>ID-REF,attr"`
	Offset                 uint32  `xml:"OFFSET"`
	DetByteBitPosition     *uint32 `xml:"DETERMINE-NUMBER-OF-ITEMS>BYTE-POSITION"`
	DetBitPosition         *uint32 `xml:"DETERMINE-NUMBER-OF-ITEMS>BIT-POSITION"`
	DetDopRef              string  `xml:"DETERMINE-NUMBER-OF-ITEMS>DOP-REF>ID-REF,attr"`

	ParamShortName     string   `xml:"PARAM-SNREF>SHORT-NAME"`
	ParamPathShortName string   `xml:"PARAM-SNPATHREF>SHORT-NAME"`
	EnvDataRefs        []string `xml:"ENV-DATAS>ENV-DATA-REF>ID-REF,attr"`
	DtcValues          []uint32 `xml:"DTC-VALUES>DTC-VALUE"`

	DtcRefs   []string `xml:"DTC-REF>ID-REF,attr"`

	BytePosition uint32         `xml:"BYTE-POSITION"`
	SwitchKeyDopRef string      `xml:"SWITCH-KEY>DOP-REF>ID-REF,attr"`
	SwitchKeyBitPosition *uint32 `xml:"SWITCH-KEY>BIT-POSITION"`
	DefaultCase     *xmlCase    `xml:"DEFAULT-CASE"`
	Cases           []xmlCase   `xml:"CASES>CASE"`
}

type xmlCase struct {
	ShortName     string   `xml:"SHORT-NAME"`
	LongName      *xmlText `xml:"LONG-NAME"`
	StructureRef  string   `xml:"STRUCTURE-REF>ID-REF,attr"`
	LowerLimit    *xmlLimit `xml:"LOWER-LIMIT"`
	UpperLimit    *xmlLimit `xml:"UPPER-LIMIT"`
}

type xmlDtcDop struct {
	xmlDop
	Dtcs []xmlDtc `xml:"DTCS>DTC"`
}

type xmlDtc struct {
	ShortName          string   `xml:"SHORT-NAME"`
	TroubleCode        uint32   `xml:"TROUBLE-CODE,attr"`
	DisplayTroubleCode string   `xml:"DISPLAY-TROUBLE-CODE,attr"`
	Text               *xmlText `xml:"TEXT"`
	Level              *uint32  `xml:"LEVEL,attr"`
	SDGs               *xmlSDGs `xml:"SDGS"`
	IsTemporary        bool     `xml:"IS-TEMPORARY,attr"`
}

type xmlPhysicalType struct {
	Precision    *uint32 `xml:"PRECISION,attr"`
	BaseDataType string  `xml:"BASE-DATA-TYPE,attr"`
	DisplayRadix string  `xml:"DISPLAY-RADIX,attr"`
}

type xmlConstr struct {
	LowerLimit   *xmlLimit        `xml:"LOWER-LIMIT"`
	UpperLimit   *xmlLimit        `xml:"UPPER-LIMIT"`
	ScaleConstrs []xmlScaleConstr `xml:"SCALE-CONSTRS>SCALE-CONSTR"`
}

type xmlScaleConstr struct {
	ShortLabel *xmlText  `xml:"SHORT-LABEL"`
	LowerLimit *xmlLimit `xml:"LOWER-LIMIT"`
	UpperLimit *xmlLimit `xml:"UPPER-LIMIT"`
	Validity   string    `xml:"VALIDITY,attr"`
}

type xmlLimit struct {
	Value        string `xml:",chardata"`
	IntervalType string `xml:"INTERVAL-TYPE,attr"`
}

type xmlCompuMethod struct {
	Category       string              `xml:"CATEGORY"`
	InternalToPhys *xmlCompuScales     `xml:"COMPU-INTERNAL-TO-PHYS"`
	PhysToInternal *xmlCompuScales     `xml:"COMPU-PHYS-TO-INTERNAL"`
}

type xmlCompuScales struct {
	Scales       []xmlCompuScale   `xml:"COMPU-SCALES>COMPU-SCALE"`
	ProgCode     *xmlProgCode      `xml:"PROG-CODE"`
	DefaultValue *xmlCompuValues   `xml:"COMPU-DEFAULT-VALUE"`
}

type xmlCompuScale struct {
	ShortLabel     *xmlText         `xml:"SHORT-LABEL"`
	LowerLimit     *xmlLimit        `xml:"LOWER-LIMIT"`
	UpperLimit     *xmlLimit        `xml:"UPPER-LIMIT"`
	CompuInverseValue *xmlCompuValues `xml:"COMPU-INVERSE-VALUE"`
	CompuConst     *xmlCompuValues  `xml:"COMPU-CONST"`
	CompuNumerator []float64        `xml:"COMPU-RATIONAL-COEFFS>COMPU-NUMERATOR>V"`
	CompuDenominator []float64      `xml:"COMPU-RATIONAL-COEFFS>COMPU-DENOMINATOR>V"`
}

type xmlCompuValues struct {
	V    *float64 `xml:"V"`
	VT   string   `xml:"VT"`
	VTTI string   `xml:"VT-TI"`
}

type xmlUnitSpec struct {
	UnitGroups         []xmlUnitGroup         `xml:"UNIT-GROUPS>UNIT-GROUP"`
	Units              []xmlUnit              `xml:"UNITS>UNIT"`
	PhysicalDimensions []xmlPhysicalDimension `xml:"PHYSICAL-DIMENSIONS>PHYSICAL-DIMENSION"`
	SDGs               *xmlSDGs               `xml:"SDGS"`
}

type xmlUnitGroup struct {
	ShortName string   `xml:"SHORT-NAME"`
	LongName  *xmlText `xml:"LONG-NAME"`
	UnitRefs  []string `xml:"UNIT-REFS>UNIT-REF>ID-REF,attr"`
}

type xmlUnit struct {
	ID                string   `xml:"ID,attr"`
	ShortName         string   `xml:"SHORT-NAME"`
	DisplayName       string   `xml:"DISPLAY-NAME"`
	FactorSiToUnit    *float64 `xml:"FACTOR-SI-TO-UNIT"`
	OffsetSiToUnit    *float64 `xml:"OFFSET-SI-TO-UNIT"`
	PhysicalDimensionRef string `xml:"PHYSICAL-DIMENSION-REF>ID-REF,attr"`
}

type xmlPhysicalDimension struct {
	ID                   string   `xml:"ID,attr"`
	ShortName            string   `xml:"SHORT-NAME"`
	LongName             *xmlText `xml:"LONG-NAME"`
	LengthExp            *int32   `xml:"LENGTH-EXP"`
	MassExp              *int32   `xml:"MASS-EXP"`
	TimeExp              *int32   `xml:"TIME-EXP"`
	CurrentExp           *int32   `xml:"CURRENT-EXP"`
	TemperatureExp       *int32   `xml:"TEMPERATURE-EXP"`
	MolarAmountExp       *int32   `xml:"MOLAR-AMOUNT-EXP"`
	LuminousIntensityExp *int32   `xml:"LUMINOUS-INTENSITY-EXP"`
}

type xmlTableDop struct {
	ID                 string              `xml:"ID,attr"`
	Semantic           string              `xml:"SEMANTIC,attr"`
	ShortName          string              `xml:"SHORT-NAME"`
	LongName           *xmlText            `xml:"LONG-NAME"`
	KeyLabel           string              `xml:"KEY-LABEL"`
	StructLabel        string              `xml:"STRUCT-LABEL"`
	KeyDopRef          string              `xml:"KEY-DOP-REF>ID-REF,attr"`
	Rows               []xmlTableRow       `xml:"TABLE-ROWS>TABLE-ROW"`
	DiagCommConnectors []xmlTableConnector `xml:"DIAG-COMM-CONNECTORS>DIAG-COMM-CONNECTOR"`
	SDGs               *xmlSDGs            `xml:"SDGS"`
}

type xmlTableRow struct {
	ID             string   `xml:"ID,attr"`
	ShortName      string   `xml:"SHORT-NAME"`
	LongName       *xmlText `xml:"LONG-NAME"`
	Key            string   `xml:"KEY"`
	DopRef         string   `xml:"DOP-REF>ID-REF,attr"`
	StructureRef   string   `xml:"STRUCTURE-REF>ID-REF,attr"`
	SDGs           *xmlSDGs `xml:"SDGS"`
	Audience       *xmlAudience `xml:"AUDIENCE"`
	Semantic       string   `xml:"SEMANTIC,attr"`
	IsExecutable   bool     `xml:"IS-EXECUTABLE,attr"`
	IsMandatory    bool     `xml:"IS-MANDATORY,attr"`
	IsFinal        bool     `xml:"IS-FINAL,attr"`
}

type xmlTableConnector struct {
	Semantic      string `xml:"SEMANTIC,attr"`
	DiagCommSNREF string `xml:"DIAG-COMM-SNREF>SHORT-NAME"`
}

package ir

// Param is the hardest IR node (spec.md §3.4): it carries a 12-way tagged
// union in Data, mutually recursive with Dop. The union is represented as
// an external tag (ParamType) plus one pointer field per case in ParamData;
// exactly one pointer is non-nil for a well-formed Param, and a codec that
// finds none populated for a given tag must fall back to the documented
// empty default rather than panic (spec.md §4.1, §4.2).
type Param struct {
	ID                   uint32
	ParamType            ParamType
	ShortName            string
	Semantic             string
	SDGs                 *SDGs
	PhysicalDefaultValue string
	BytePosition         *uint32
	BitPosition          *uint32
	Data                 ParamData
}

// ParamData holds the payload for every Param.ParamType case.
type ParamData struct {
	CodedConst           *CodedConstData
	LengthKeyRef          *LengthKeyRefData
	MatchingRequestParam *MatchingRequestParamData
	NrcConst             *NrcConstData
	PhysConst            *PhysConstData
	Reserved             *ReservedData
	System               *SystemData
	TableEntry           *TableEntryData
	TableKey             *TableKeyData
	TableStruct          *TableStructData
	Value                *ValueData
	// Dynamic carries no payload; its presence is fully described by
	// ParamType == ParamDynamic.
}

type CodedConstData struct {
	CodedValue     string
	DiagCodedType  DiagCodedType
}

type LengthKeyRefData struct {
	Dop *Dop
}

type MatchingRequestParamData struct {
	RequestBytePos int32
	ByteLength     uint32
}

type NrcConstData struct {
	CodedValues   []string
	DiagCodedType DiagCodedType
}

type PhysConstData struct {
	PhysConstantValue string
	Dop               *Dop
}

type ReservedData struct {
	BitLength uint32
}

type SystemData struct {
	Dop      *Dop
	SysParam string
}

// TableEntryData projects one cell of a TableRow. Target selects which
// cell (TableEntryKey | TableEntryStruct); TableRow is the owning row.
type TableEntryData struct {
	Param    *Param
	Target   TableEntryRowFragment
	TableRow *TableRow
}

// TableKeyData is the payload for a TableKey parameter: its Reference
// union names either the whole TableDop or one specific TableRow.
type TableKeyData struct {
	ReferenceKind TableKeyReferenceKind
	TableDop      *TableDop
	TableRow      *TableRow
}

type TableStructData struct {
	TableKey *Param
}

type ValueData struct {
	PhysicalDefaultValue string
	Dop                  *Dop
}

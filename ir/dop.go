package ir

// Dop is the type descriptor attached to a Param (spec.md §3.5): a 10-way
// tagged union, mutually recursive with Param and with itself (Structure
// and MuxDop nest further Params and Dops).
type Dop struct {
	DopType   DopType
	ShortName string
	SDGs      *SDGs
	Data      DopData
}

// DopData holds the payload for every Dop.DopType case.
type DopData struct {
	NormalDop          *NormalDopData
	EndOfPduField      *EndOfPduFieldData
	StaticField        *StaticFieldData
	DynamicLengthField *DynamicLengthFieldData
	EnvDataDesc        *EnvDataDescData
	EnvData            *EnvDataData
	DtcDop             *DtcDopData
	Structure          *StructureData
	MuxDop             *MuxDopData
}

type NormalDopData struct {
	CompuMethod     *CompuMethod
	DiagCodedType   *DiagCodedType
	PhysicalType    *PhysicalType
	InternalConstr  *InternalConstr
	UnitRef         *Unit
	PhysConstr      *InternalConstr
}

// Field is the shared shape of the array-of-structure Dop kinds
// (EndOfPduField, StaticField, DynamicLengthField): each wraps either a
// basic structure or an environment-data-description element.
type Field struct {
	BasicStructure *Dop
	EnvDataDesc    *Dop
	IsVisible      bool
}

type EndOfPduFieldData struct {
	MaxNumberOfItems *uint32
	MinNumberOfItems *uint32
	Field            *Field
}

type StaticFieldData struct {
	FixedNumberOfItems uint32
	ItemByteSize       uint32
	Field              *Field
}

type DetermineNumberOfItems struct {
	BytePosition uint32
	BitPosition  uint32
	Dop          *Dop
}

type DynamicLengthFieldData struct {
	Offset                  uint32
	Field                   *Field
	DetermineNumberOfItems *DetermineNumberOfItems
}

type EnvDataDescData struct {
	ParamShortName     string
	ParamPathShortName string
	EnvDatas           []Dop
}

type EnvDataData struct {
	DtcValues []uint32
	Params    []Param
}

type DtcDopData struct {
	DiagCodedType *DiagCodedType
	PhysicalType  *PhysicalType
	CompuMethod   *CompuMethod
	Dtcs          []Dtc
	IsVisible     bool
}

type StructureData struct {
	Params    []Param
	ByteSize  *uint32
	IsVisible bool
}

type SwitchKey struct {
	BytePosition uint32
	BitPosition  *uint32
	Dop          *Dop
}

type DefaultCase struct {
	ShortName string
	LongName  *LongName
	Structure *Dop
}

type Case struct {
	ShortName  string
	LongName   *LongName
	Structure  *Dop
	LowerLimit *Limit
	UpperLimit *Limit
}

type MuxDopData struct {
	BytePosition uint32
	SwitchKey    *SwitchKey
	DefaultCase  *DefaultCase
	Cases        []Case
	IsVisible    bool
}

// DiagCodedType is the on-wire encoding descriptor (spec.md §3.5): a 4-way
// tagged union over TypeName.
type DiagCodedType struct {
	TypeName         DiagCodedTypeName
	BaseTypeEncoding string
	BaseDataType     DataType
	IsHighLowByteOrder bool
	Data             DiagCodedTypeData
}

type DiagCodedTypeData struct {
	LeadingLength *LeadingLengthData
	MinMax        *MinMaxData
	ParamLength   *ParamLengthData
	StandardLength *StandardLengthData
}

type LeadingLengthData struct {
	BitLength uint32
}

type MinMaxData struct {
	MinLength   uint32
	MaxLength   *uint32
	Termination Termination
}

type ParamLengthData struct {
	LengthKey *Param
}

type StandardLengthData struct {
	BitLength uint32
	BitMask   []byte
	Condensed bool
}

// CompuMethod is the computational conversion between raw bus bytes and a
// physical quantity (spec.md §3.5).
type CompuMethod struct {
	Category       CompuCategory
	InternalToPhys *CompuInternalToPhys
	PhysToInternal *CompuPhysToInternal
}

type CompuInternalToPhys struct {
	CompuScales       []CompuScale
	ProgCode          *ProgCode
	CompuDefaultValue *CompuDefaultValue
}

type CompuPhysToInternal struct {
	ProgCode          *ProgCode
	CompuScales       []CompuScale
	CompuDefaultValue *CompuDefaultValue
}

type CompuScale struct {
	ShortLabel      *Text
	LowerLimit      *Limit
	UpperLimit      *Limit
	InverseValues   *CompuValues
	Consts          *CompuValues
	RationalCoEffs  *CompuRationalCoEffs
}

type CompuValues struct {
	V    *float64
	VT   string
	VTTI string
}

type CompuRationalCoEffs struct {
	Numerator   []float64
	Denominator []float64
}

type CompuDefaultValue struct {
	Values        *CompuValues
	InverseValues *CompuValues
}

type PhysicalType struct {
	Precision    *uint32
	BaseDataType PhysicalTypeDataType
	DisplayRadix Radix
}

type ScaleConstr struct {
	ShortLabel *Text
	LowerLimit *Limit
	UpperLimit *Limit
	Validity   ValidType
}

type InternalConstr struct {
	LowerLimit   *Limit
	UpperLimit   *Limit
	ScaleConstrs []ScaleConstr
}

type Unit struct {
	ShortName          string
	DisplayName        string
	FactorSiToUnit     *float64
	OffsetSiToUnit     *float64
	PhysicalDimension  *PhysicalDimension
}

type PhysicalDimension struct {
	ShortName            string
	LongName             *LongName
	LengthExp            *int32
	MassExp              *int32
	TimeExp              *int32
	CurrentExp           *int32
	TemperatureExp       *int32
	MolarAmountExp       *int32
	LuminousIntensityExp *int32
}

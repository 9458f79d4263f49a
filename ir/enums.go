// Package ir defines the canonical in-memory representation (the "IR") that
// every converter in this module reads from and writes to. It is a pure data
// module: no parser or writer logic lives here.
package ir

// DiagCodedTypeName is the wire-encoding discriminant carried on every
// DiagCodedType (ODX DIAG-CODED-TYPE xsi:type).
type DiagCodedTypeName uint8

const (
	StandardLengthType DiagCodedTypeName = iota
	LeadingLengthInfoType
	ParamLengthInfoType
	MinMaxLengthType
)

// DataType is the base data type carried by a DiagCodedType or PhysicalType.
type DataType uint8

const (
	AInt32 DataType = iota
	AUint32
	AFloat32
	AAsciiString
	AUtf8String
	AUnicode2String
	ABytefield
	AFloat64
)

// Termination is the byte sequence that ends a MinMax-length field.
type Termination uint8

const (
	TerminationEndOfPdu Termination = iota
	TerminationZero
	TerminationHexFf
)

// IntervalType describes whether a Limit is open, closed, or unbounded.
type IntervalType uint8

const (
	IntervalOpen IntervalType = iota
	IntervalClosed
	IntervalInfinite
)

// CompuCategory is the kind of computational conversion a CompuMethod
// performs between internal (raw) and physical values.
type CompuCategory uint8

const (
	CompuIdentical CompuCategory = iota
	CompuLinear
	CompuScaleLinear
	CompuTextTable
	CompuCode
	CompuTabIntp
	CompuRatFunc
	CompuScaleRatFunc
)

// PhysicalTypeDataType mirrors DataType for the physical (display) side.
type PhysicalTypeDataType uint8

const (
	PhysAInt32 PhysicalTypeDataType = iota
	PhysAUint32
	PhysAFloat32
	PhysAAsciiString
	PhysAUtf8String
	PhysAUnicode2String
	PhysABytefield
	PhysAFloat64
)

// Radix controls how a physical value is displayed.
type Radix uint8

const (
	RadixHex Radix = iota
	RadixDec
	RadixBin
	RadixOct
)

// ValidType is the validity classification of a ScaleConstr.
type ValidType uint8

const (
	ValidTypeValid ValidType = iota
	ValidTypeNotValid
	ValidTypeNotDefined
	ValidTypeNotAvailable
)

// DopType is the outer discriminant on every Dop (ODX DOP xsi:type family).
type DopType uint8

const (
	DopRegular DopType = iota
	DopEnvDataDesc
	DopMux
	DopDynamicEndMarkerField
	DopDynamicLengthField
	DopEndOfPduField
	DopStaticField
	DopEnvData
	DopStructure
	DopDtc
)

// ParamType is the outer discriminant on every Param (ODX PARAM xsi:type
// family), and the tag half of Param.Data's "external tag + optional
// payload" shape (see package doc and spec.md §4.1).
type ParamType uint8

const (
	ParamCodedConst ParamType = iota
	ParamDynamic
	ParamLengthKey
	ParamMatchingRequestParam
	ParamNrcConst
	ParamPhysConst
	ParamReserved
	ParamSystem
	ParamTableEntry
	ParamTableKey
	ParamTableStruct
	ParamValue
)

// TableEntryRowFragment selects which half of a table row a TableEntry
// parameter projects (the key cell or the struct cell).
type TableEntryRowFragment uint8

const (
	TableEntryKey TableEntryRowFragment = iota
	TableEntryStruct
)

// DiagClassType classifies a DiagComm's role in the ECU's diagnostic
// state machine.
type DiagClassType uint8

const (
	DiagClassStartComm DiagClassType = iota
	DiagClassStopComm
	DiagClassVariantIdentification
	DiagClassReadDynDefMessage
	DiagClassDynDefMessage
	DiagClassClearDynDefMessage
)

// ResponseType distinguishes positive, negative, and global-negative
// responses.
type ResponseType uint8

const (
	ResponsePositive ResponseType = iota
	ResponseNegative
	ResponseGlobalNegative
)

// Addressing is the set of addressing modes a DiagService accepts.
type Addressing uint8

const (
	AddressingFunctional Addressing = iota
	AddressingPhysical
	AddressingFunctionalOrPhysical
)

// TransmissionMode describes whether a DiagService's request/response
// exchange is one-way or two-way.
type TransmissionMode uint8

const (
	TransmissionSendOnly TransmissionMode = iota
	TransmissionReceiveOnly
	TransmissionSendAndReceive
	TransmissionSendOrReceive
)

// ComParamType discriminates a plain ComParam from a complex (nested) one.
type ComParamType uint8

const (
	ComParamRegular ComParamType = iota
	ComParamComplex
)

// ComParamStandardisationLevel classifies a ComParam's provenance.
type ComParamStandardisationLevel uint8

const (
	ComParamStandard ComParamStandardisationLevel = iota
	ComParamOemSpecific
	ComParamOptional
	ComParamOemOptional
)

// ComParamUsage is the layer kind a ComParam applies to.
type ComParamUsage uint8

const (
	ComParamUsageEcuSoftware ComParamUsage = iota
	ComParamUsageEcuComm
	ComParamUsageApplication
	ComParamUsageTester
)

// ParentRefKind is the tag half of ParentRef.Ref's "external tag + optional
// payload" union (spec.md §4.1, §9 "Tagged unions").
type ParentRefKind uint8

const (
	ParentRefVariant ParentRefKind = iota
	ParentRefProtocol
	ParentRefFunctionalGroup
	ParentRefTableDop
	ParentRefEcuSharedData
)

// TableKeyReferenceKind is the tag half of TableKeyReference's union: a
// TableKey parameter's reference is either to the table itself or to one
// specific row of it.
type TableKeyReferenceKind uint8

const (
	TableKeyReferenceTableDop TableKeyReferenceKind = iota
	TableKeyReferenceTableRow
)

// DiagServiceOrJobKind is the tag half of the union a
// TableDiagCommConnector points through.
type DiagServiceOrJobKind uint8

const (
	DiagServiceOrJobService DiagServiceOrJobKind = iota
	DiagServiceOrJobJob
)

// SimpleOrComplexValueKind is the tag half of the per-entry discriminant in
// a ComplexValue's entries_type vector (spec.md §4.2 "ComplexValue").
type SimpleOrComplexValueKind uint8

const (
	ValueKindSimple SimpleOrComplexValueKind = iota
	ValueKindComplex
)

// SdOrSdgKind is the tag half of an SDG's sds union entries.
type SdOrSdgKind uint8

const (
	SdOrSdgSd SdOrSdgKind = iota
	SdOrSdgSdg
)

package ir

// ComParamSpecificData is ComParam's 2-way tagged union: a plain scalar
// default value, or a nested group of sub-ComParams with complex defaults.
type ComParamSpecificData struct {
	Regular *ComParamRegularData
	Complex *ComParamComplexData
}

type ComParamRegularData struct {
	PhysicalDefaultValue string
	Dop                  *Dop
}

type ComParamComplexData struct {
	ComParams                     []ComParam
	ComplexPhysicalDefaultValues  []ComplexValue
	AllowMultipleValues            bool
}

// ComParam is one communication-parameter definition (ODX COMPARAM /
// COMPLEX-COMPARAM).
type ComParam struct {
	ComParamType   ComParamType
	ShortName      string
	LongName       *LongName
	ParamClass     string
	CPType         ComParamStandardisationLevel
	DisplayLevel   *uint32
	CPUsage        ComParamUsage
	Data           ComParamSpecificData
}

// ComParamRef binds a ComParam to a concrete value on a DiagLayer, DiagComm,
// or Protocol (spec.md §3.2, §4.6 "ComParams").
type ComParamRef struct {
	SimpleValue  *SimpleValue
	ComplexValue *ComplexValue
	ComParam     *ComParam
	Protocol     *Protocol
	ProtStack    *ProtStack
}

// ComParamSubSet groups the ComParams, complex ComParams, DOPs, and unit
// catalog that belong to one protocol stack layer.
type ComParamSubSet struct {
	ComParams        []ComParam
	ComplexComParams []ComParam
	DataObjectProps  []Dop
	UnitSpec         *UnitSpec
}

// ProtStack names one OSI-style protocol stack (e.g. ISO 14229-3 on CAN).
type ProtStack struct {
	ShortName           string
	LongName            *LongName
	PduProtocolType     string
	PhysicalLinkType    string
	ComparamSubSetRefs  []ComParamSubSet
}

// ComParamSpec aggregates the protocol stacks a Protocol layer exposes.
type ComParamSpec struct {
	ProtStacks []ProtStack
}

// Protocol is a DiagLayer specialization that carries a communication
// parameter specification instead of diagnostic services directly.
type Protocol struct {
	DiagLayer     DiagLayer
	ComParamSpec  *ComParamSpec
	ProtStack     *ProtStack
	ParentRefs    []Protocol
}

// UnitGroup names a set of related Units (e.g. "temperature units").
type UnitGroup struct {
	ShortName string
	LongName  *LongName
	UnitRefs  []Unit
}

// UnitSpec is the unit/physical-dimension catalog referenced by DOPs
// through Unit.PhysicalDimension and NormalDopData.UnitRef.
type UnitSpec struct {
	UnitGroups         []UnitGroup
	Units              []Unit
	PhysicalDimensions []PhysicalDimension
	SDGs               *SDGs
}

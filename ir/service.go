package ir

// DiagComm is the header shared by every diagnostic communication object
// (spec.md §3.3): a DiagService or a SingleEcuJob.
type DiagComm struct {
	ShortName               string
	LongName                *LongName
	Semantic                string
	FunctClasses            []FunctClass
	SDGs                    *SDGs
	DiagClassType           DiagClassType
	PreConditionStateRefs   []PreConditionStateRef
	StateTransitionRefs     []StateTransitionRef
	Protocols               []Protocol
	Audience                *Audience
	IsMandatory             bool
	IsExecutable            bool
	IsFinal                 bool
}

// Request is the parameter list an ECU expects in the service call.
type Request struct {
	Params []Param
	SDGs   *SDGs
}

// Response is one positive, negative, or global-negative reply shape.
type Response struct {
	ResponseType ResponseType
	Params       []Param
	SDGs         *SDGs
}

// DiagService is a single UDS (or OEM) diagnostic service entry
// (spec.md §3.3).
type DiagService struct {
	DiagComm         DiagComm
	Request          *Request
	PosResponses     []Response
	NegResponses     []Response
	IsCyclic         bool
	IsMultiple       bool
	Addressing       Addressing
	TransmissionMode TransmissionMode
	ComParamRefs     []ComParamRef
}

// ProgCode names an executable job implementation file (ODX PROG-CODE).
type ProgCode struct {
	CodeFile   string
	Encryption string
	Syntax     string
	Revision   string
	EntryPoint string
	Libraries  []Library
}

// Library is a supporting code file referenced by a ProgCode.
type Library struct {
	ShortName  string
	LongName   *LongName
	CodeFile   string
	Encryption string
	Syntax     string
	EntryPoint string
}

// JobParam is an input/output/negative-output parameter of a SingleEcuJob;
// unlike Param it is not a wire-coded diagnostic parameter but a job
// invocation argument, hence the simpler shape.
type JobParam struct {
	ShortName            string
	LongName             *LongName
	PhysicalDefaultValue string
	DopBase              *Dop
	Semantic             string
}

// SingleEcuJob is a vendor tool routine that runs entirely on the tester
// rather than exchanging a wire-coded request/response with the ECU.
type SingleEcuJob struct {
	DiagComm         DiagComm
	ProgCodes        []ProgCode
	InputParams      []JobParam
	OutputParams     []JobParam
	NegOutputParams  []JobParam
}

// Dtc is one diagnostic trouble code entry (spec.md glossary).
type Dtc struct {
	ShortName          string
	TroubleCode        uint32
	DisplayTroubleCode string
	Text               *Text
	Level              *uint32
	SDGs               *SDGs
	IsTemporary        bool
}

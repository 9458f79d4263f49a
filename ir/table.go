package ir

// DiagServiceOrJob is the union a TableDiagCommConnector points through: a
// table row can be wired to either a DiagService or a SingleEcuJob.
type DiagServiceOrJob struct {
	Kind        DiagServiceOrJobKind
	DiagService *DiagService
	Job         *SingleEcuJob
}

// TableDiagCommConnector links a table row to the service/job it selects.
type TableDiagCommConnector struct {
	DiagComm DiagServiceOrJob
	Semantic string
}

// TableRow is one row of a TableDop: a key value paired with an optional
// DOP or nested structure, used by TableKey/TableEntry/TableStruct params.
type TableRow struct {
	ShortName             string
	LongName              *LongName
	Key                    string
	Dop                    *Dop
	Structure              *Dop
	SDGs                   *SDGs
	Audience               *Audience
	FunctClassRefs         []FunctClass
	StateTransitionRefs    []StateTransitionRef
	PreConditionStateRefs  []PreConditionStateRef
	IsExecutable           bool
	Semantic               string
	IsMandatory             bool
	IsFinal                 bool
}

// TableDop is the catalog a TableKey/TableEntry/TableStruct parameter
// resolves against (spec.md §3.4, §4.8 validator check).
type TableDop struct {
	Semantic            string
	ShortName           string
	LongName            *LongName
	KeyLabel            string
	StructLabel         string
	KeyDop              *Dop
	Rows                []TableRow
	DiagCommConnectors  []TableDiagCommConnector
	SDGs                *SDGs
}

// Package yamlfmt reads and writes the OpenSOVD CDA diagnostic YAML format
// (spec.md §4.6, §4.7): a declarative, service-oriented alternative to ODX
// that synthesizes most DiagServices from DID/routine/session/security
// tables rather than spelling out every Param by hand.
package yamlfmt

import "gopkg.in/yaml.v3"

// YamlDocument is the root of one YAML diagnostic description, grounded on
// diag-yaml/src/yaml_model.rs's YamlDocument. Every section is optional: a
// minimal document carries only schema/meta/ecu.
type YamlDocument struct {
	Schema            string                      `yaml:"schema,omitempty"`
	Meta              *Meta                       `yaml:"meta,omitempty"`
	Ecu               *Ecu                        `yaml:"ecu,omitempty"`
	Audience          *YamlAudience               `yaml:"audience,omitempty"`
	Sdgs              map[string]YamlSdg          `yaml:"sdgs,omitempty"`
	ComParams         map[string]ComParamEntry    `yaml:"comparams,omitempty"`
	Sessions          map[string]Session          `yaml:"sessions,omitempty"`
	StateModel        *StateModel                 `yaml:"state_model,omitempty"`
	Security          map[string]SecurityLevel    `yaml:"security,omitempty"`
	Authentication    *Authentication              `yaml:"authentication,omitempty"`
	Identification    *Identification              `yaml:"identification,omitempty"`
	Variants          *Variants                   `yaml:"variants,omitempty"`
	Services          *YamlServices                `yaml:"services,omitempty"`
	AccessPatterns    map[string]AccessPattern     `yaml:"access_patterns,omitempty"`
	Types             map[string]YamlType          `yaml:"types,omitempty"`
	Dids              map[string]Did               `yaml:"dids,omitempty"`
	Routines          map[string]Routine           `yaml:"routines,omitempty"`
	DtcConfig         *DtcConfig                   `yaml:"dtc_config,omitempty"`
	Dtcs              map[string]YamlDtc           `yaml:"dtcs,omitempty"`
	Annotations       *yaml.Node                   `yaml:"annotations,omitempty"`
	XOem              *yaml.Node                   `yaml:"x-oem,omitempty"`
	EcuJobs           map[string]EcuJob            `yaml:"ecu_jobs,omitempty"`
	Memory            *YamlMemoryConfig            `yaml:"memory,omitempty"`
	FunctionalClasses []string                    `yaml:"functional_classes,omitempty"`
}

// Meta carries document-level provenance (spec.md §4.6 "Metadata").
type Meta struct {
	Author      string     `yaml:"author,omitempty"`
	Domain      string     `yaml:"domain,omitempty"`
	Created     string     `yaml:"created,omitempty"`
	Version     string     `yaml:"version,omitempty"`
	Revision    string     `yaml:"revision,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Tags        []string   `yaml:"tags,omitempty"`
	Revisions   []Revision `yaml:"revisions,omitempty"`
}

// Revision is one entry in Meta.Revisions.
type Revision struct {
	Version string `yaml:"version,omitempty"`
	Date    string `yaml:"date,omitempty"`
	Author  string `yaml:"author,omitempty"`
	Changes string `yaml:"changes,omitempty"`
}

// Ecu names the target ECU and its supported transport protocols.
type Ecu struct {
	ID                    string                    `yaml:"id,omitempty"`
	Name                  string                    `yaml:"name,omitempty"`
	Protocols             map[string]YamlProtocol   `yaml:"protocols,omitempty"`
	DefaultAddressingMode string                    `yaml:"default_addressing_mode,omitempty"`
	Addressing            *yaml.Node                `yaml:"addressing,omitempty"`
	Annotations           *yaml.Node                `yaml:"annotations,omitempty"`
}

// YamlProtocol is one entry in Ecu.Protocols.
type YamlProtocol struct {
	ProtocolShortName string `yaml:"protocol_short_name,omitempty"`
	Description       string `yaml:"description,omitempty"`
	IsDefault         *bool  `yaml:"is_default,omitempty"`
}

// YamlAudience mirrors ir.Audience's fixed roles plus free-form groups.
type YamlAudience struct {
	Supplier      *bool    `yaml:"supplier,omitempty"`
	Development   *bool    `yaml:"development,omitempty"`
	Manufacturing *bool    `yaml:"manufacturing,omitempty"`
	Aftersales    *bool    `yaml:"aftersales,omitempty"`
	Aftermarket   *bool    `yaml:"aftermarket,omitempty"`
	Groups        []string `yaml:"groups,omitempty"`
}

// YamlSdg is a named Special Data Group (ODX SDG) declared once at the
// document level and attached elsewhere by name.
type YamlSdg struct {
	SI      string        `yaml:"si,omitempty"`
	Caption string        `yaml:"caption,omitempty"`
	Values  []YamlSdValue `yaml:"values,omitempty"`
}

// YamlSdValue is one leaf (or nested group) of a YamlSdg.
type YamlSdValue struct {
	SI      string        `yaml:"si,omitempty"`
	TI      string        `yaml:"ti,omitempty"`
	Value   string        `yaml:"value,omitempty"`
	Caption string        `yaml:"caption,omitempty"`
	Values  []YamlSdValue `yaml:"values,omitempty"`
}

// ComParamEntry is either a bare scalar ("short form") or a ComParamFull
// object ("full form") — Rust's #[serde(untagged)] enum has no yaml.v3
// equivalent, so it is modeled as a struct with a custom (Un)MarshalYAML
// pair that tries the full-object shape first and falls back to the raw
// scalar node (spec.md §4.6 "ComParams").
type ComParamEntry struct {
	Full   *ComParamFull
	Simple *yaml.Node
}

// ComParamFull is the full-form ComParamEntry payload.
type ComParamFull struct {
	CpType      string              `yaml:"cptype,omitempty"`
	Unit        string              `yaml:"unit,omitempty"`
	Description string              `yaml:"description,omitempty"`
	Default     *yaml.Node          `yaml:"default,omitempty"`
	Min         *float64            `yaml:"min,omitempty"`
	Max         *float64            `yaml:"max,omitempty"`
	AllowedValues []yaml.Node       `yaml:"allowed_values,omitempty"`
	Values      map[string]yaml.Node `yaml:"values,omitempty"`
}

// UnmarshalYAML implements the untagged-union fallback: a mapping node that
// decodes into ComParamFull without error is treated as the full form
// (unknown keys are ignored); anything else (scalar, sequence, or a mapping
// whose values do not fit ComParamFull's field types) is kept as the raw
// node.
func (c *ComParamEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var full ComParamFull
		if err := node.Decode(&full); err == nil {
			c.Full = &full
			return nil
		}
	}
	n := *node
	c.Simple = &n
	return nil
}

// MarshalYAML is the inverse: re-emit whichever form was populated.
func (c ComParamEntry) MarshalYAML() (interface{}, error) {
	if c.Full != nil {
		return c.Full, nil
	}
	if c.Simple != nil {
		return c.Simple, nil
	}
	return nil, nil
}

// Session is one entry in the document-level `sessions` table.
type Session struct {
	ID             yaml.Node     `yaml:"id"`
	Alias          string        `yaml:"alias,omitempty"`
	RequiresUnlock *bool         `yaml:"requires_unlock,omitempty"`
	Timing         *SessionTiming `yaml:"timing,omitempty"`
}

// SessionTiming carries the P2/P2* server timing values echoed back in a
// DiagnosticSessionControl positive response (service_generator.rs).
type SessionTiming struct {
	P2Ms     *uint32 `yaml:"p2_ms,omitempty"`
	P2StarMs *uint32 `yaml:"p2_star_ms,omitempty"`
}

// StateModel describes how the session/security/authentication state
// machine behaves across transitions (spec.md §4.6 "State charts").
type StateModel struct {
	InitialState                        *StateModelState     `yaml:"initial_state,omitempty"`
	SessionTransitions                  map[string][]string  `yaml:"session_transitions,omitempty"`
	SessionChangeResetsSecurity         *bool                `yaml:"session_change_resets_security,omitempty"`
	SessionChangeResetsAuthentication   *bool                `yaml:"session_change_resets_authentication,omitempty"`
	S3TimeoutResetsToDefault            *bool                `yaml:"s3_timeout_resets_to_default,omitempty"`
}

// StateModelState is a single point in the session x security x
// authentication state space.
type StateModelState struct {
	Session            string `yaml:"session,omitempty"`
	Security           string `yaml:"security,omitempty"`
	AuthenticationRole string `yaml:"authentication_role,omitempty"`
}

// SecurityLevel is one entry in the document-level `security` table,
// synthesizing the SecurityAccess RequestSeed/SendKey pair.
type SecurityLevel struct {
	Level          uint32     `yaml:"level,omitempty"`
	SeedRequest    yaml.Node  `yaml:"seed_request"`
	KeySend        yaml.Node  `yaml:"key_send"`
	SeedSize       uint32     `yaml:"seed_size,omitempty"`
	KeySize        uint32     `yaml:"key_size,omitempty"`
	Algorithm      string     `yaml:"algorithm,omitempty"`
	MaxAttempts    uint32     `yaml:"max_attempts,omitempty"`
	DelayOnFailMs  uint32     `yaml:"delay_on_fail_ms,omitempty"`
	AllowedSessions []string  `yaml:"allowed_sessions,omitempty"`
}

// Authentication carries Authentication (0x29) policy data.
type Authentication struct {
	AntiBruteForce *yaml.Node           `yaml:"anti_brute_force,omitempty"`
	Roles          map[string]yaml.Node `yaml:"roles,omitempty"`
}

// Identification carries VariantPattern detection data.
type Identification struct {
	ExpectedIdents map[string]yaml.Node `yaml:"expected_idents,omitempty"`
}

// Variants describes how to distinguish ECU variants at runtime.
type Variants struct {
	DetectionOrder []string              `yaml:"detection_order,omitempty"`
	Fallback       string                `yaml:"fallback,omitempty"`
	Definitions    map[string]VariantDef `yaml:"definitions,omitempty"`
}

// VariantDef is one entry in Variants.Definitions.
type VariantDef struct {
	Description string     `yaml:"description,omitempty"`
	Detect      *yaml.Node `yaml:"detect,omitempty"`
	Inheritance *yaml.Node `yaml:"inheritance,omitempty"`
	Overrides   *yaml.Node `yaml:"overrides,omitempty"`
	Annotations *yaml.Node `yaml:"annotations,omitempty"`
}

// OverrideServices extracts the `overrides.services` sub-document, if any.
func (v *VariantDef) OverrideServices() (*YamlServices, bool) {
	if v.Overrides == nil {
		return nil, false
	}
	var m map[string]yaml.Node
	if err := v.Overrides.Decode(&m); err != nil {
		return nil, false
	}
	node, ok := m["services"]
	if !ok {
		return nil, false
	}
	var svc YamlServices
	if err := node.Decode(&svc); err != nil {
		return nil, false
	}
	return &svc, true
}

// YamlServices is the declarative `services` table: one ServiceEntry slot
// per standard UDS service, plus a `custom` map for OEM extensions
// (spec.md §4.6 "Service synthesis").
type YamlServices struct {
	DiagnosticSessionControl   *ServiceEntry            `yaml:"diagnosticSessionControl,omitempty"`
	EcuReset                   *ServiceEntry            `yaml:"ecuReset,omitempty"`
	SecurityAccess             *ServiceEntry            `yaml:"securityAccess,omitempty"`
	Authentication             *ServiceEntry            `yaml:"authentication,omitempty"`
	TesterPresent               *ServiceEntry            `yaml:"testerPresent,omitempty"`
	ControlDTCSetting           *ServiceEntry            `yaml:"controlDTCSetting,omitempty"`
	ReadDataByIdentifier        *ServiceEntry            `yaml:"readDataByIdentifier,omitempty"`
	WriteDataByIdentifier       *ServiceEntry            `yaml:"writeDataByIdentifier,omitempty"`
	ReadDTCInformation          *ServiceEntry            `yaml:"readDTCInformation,omitempty"`
	ClearDiagnosticInformation *ServiceEntry            `yaml:"clearDiagnosticInformation,omitempty"`
	InputOutputControl          *ServiceEntry            `yaml:"inputOutputControlByIdentifier,omitempty"`
	RoutineControl              *ServiceEntry            `yaml:"routineControl,omitempty"`
	ReadMemoryByAddress         *ServiceEntry            `yaml:"readMemoryByAddress,omitempty"`
	WriteMemoryByAddress        *ServiceEntry            `yaml:"writeMemoryByAddress,omitempty"`
	ReadScalingData             *ServiceEntry            `yaml:"readScalingDataByIdentifier,omitempty"`
	ReadDataPeriodic            *ServiceEntry            `yaml:"readDataByPeriodicIdentifier,omitempty"`
	DynamicallyDefineDid        *ServiceEntry            `yaml:"dynamicallyDefineDataIdentifier,omitempty"`
	RequestDownload             *ServiceEntry            `yaml:"requestDownload,omitempty"`
	RequestUpload               *ServiceEntry            `yaml:"requestUpload,omitempty"`
	TransferData                *ServiceEntry            `yaml:"transferData,omitempty"`
	RequestTransferExit         *ServiceEntry            `yaml:"requestTransferExit,omitempty"`
	RequestFileTransfer         *ServiceEntry            `yaml:"requestFileTransfer,omitempty"`
	SecuredDataTransmission     *ServiceEntry            `yaml:"securedDataTransmission,omitempty"`
	CommunicationControl        *ServiceEntry            `yaml:"communicationControl,omitempty"`
	ResponseOnEvent             *ServiceEntry            `yaml:"responseOnEvent,omitempty"`
	LinkControl                 *ServiceEntry            `yaml:"linkControl,omitempty"`
	Custom                      map[string]CustomService `yaml:"custom,omitempty"`
}

// ServiceEntry is the common shape of every standard-service slot in
// YamlServices: most fields are only meaningful for a subset of services
// (spec.md §4.6 notes this is deliberately one flattened struct, the same
// flattened-proxy technique used for odx's xmlParam/xmlDop).
type ServiceEntry struct {
	Enabled                bool        `yaml:"enabled,omitempty"`
	AddressingMode         string      `yaml:"addressing_mode,omitempty"`
	Subfunctions           *yaml.Node  `yaml:"subfunctions,omitempty"`
	StateEffects           *yaml.Node  `yaml:"state_effects,omitempty"`
	Audience               *yaml.Node  `yaml:"audience,omitempty"`
	ResponseOutputs        *yaml.Node  `yaml:"response_outputs,omitempty"`
	RequestLayout          *yaml.Node  `yaml:"request_layout,omitempty"`
	ControlTypes           []string    `yaml:"control_types,omitempty"`
	Alfid                  *yaml.Node  `yaml:"alfid,omitempty"`
	MaxLength              *uint32     `yaml:"max_length,omitempty"`
	Regions                []yaml.Node `yaml:"regions,omitempty"`
	Dids                   *yaml.Node  `yaml:"dids,omitempty"`
	MaxNumberOfBlockLength *uint32     `yaml:"max_number_of_block_length,omitempty"`
	MaxBlockSequenceCounter *uint32    `yaml:"max_block_sequence_counter,omitempty"`
	MaxFileSize            string      `yaml:"max_file_size,omitempty"`
	SupportedPeriodsMs     []uint32    `yaml:"supported_periods_ms,omitempty"`
	Identifiers            []yaml.Node `yaml:"identifiers,omitempty"`
	MaxDynamicDids         *uint32     `yaml:"max_dynamic_dids,omitempty"`
	AllowByIdentifier      *bool       `yaml:"allow_by_identifier,omitempty"`
	AllowByMemoryAddress   *bool       `yaml:"allow_by_memory_address,omitempty"`
	CommunicationTypes     []yaml.Node `yaml:"communication_types,omitempty"`
	NrcOnFail              *yaml.Node  `yaml:"nrc_on_fail,omitempty"`
	MaxActiveEvents        *uint32     `yaml:"max_active_events,omitempty"`
	TemporalSync           *bool       `yaml:"temporal_sync,omitempty"`
}

// CustomService is one OEM-specific service declared under `services.custom`.
type CustomService struct {
	Sid                yaml.Node  `yaml:"sid"`
	Description        string     `yaml:"description,omitempty"`
	AddressingMode     string     `yaml:"addressing_mode,omitempty"`
	RequestLayout      *yaml.Node `yaml:"request_layout,omitempty"`
	PositiveResponse   *yaml.Node `yaml:"positive_response,omitempty"`
	NegativeResponses  []yaml.Node `yaml:"negative_responses,omitempty"`
	Access             string     `yaml:"access,omitempty"`
	Audience           *yaml.Node `yaml:"audience,omitempty"`
}

// AccessPattern names a reusable (sessions, security, authentication)
// precondition tuple referenced from a Did/Routine/EcuJob's `access` field.
type AccessPattern struct {
	Sessions       yaml.Node  `yaml:"sessions"`
	Security       yaml.Node  `yaml:"security"`
	Authentication yaml.Node  `yaml:"authentication"`
	NrcOnFail      *yaml.Node `yaml:"nrc_on_fail,omitempty"`
}

// YamlType is a reusable named encoding blueprint (spec.md §4.6 "Type
// registry"), resolved into an ir.Dop wherever a Did or RoutineParam
// references it by name.
type YamlType struct {
	Base          string           `yaml:"base,omitempty"`
	Endian        string           `yaml:"endian,omitempty"`
	BitLength     *uint32          `yaml:"bit_length,omitempty"`
	Length        *uint32          `yaml:"length,omitempty"`
	MinLength     *uint32          `yaml:"min_length,omitempty"`
	MaxLength     *uint32          `yaml:"max_length,omitempty"`
	Encoding      string           `yaml:"encoding,omitempty"`
	Termination   string           `yaml:"termination,omitempty"`
	Scale         *float64         `yaml:"scale,omitempty"`
	Offset        *float64         `yaml:"offset,omitempty"`
	Unit          string           `yaml:"unit,omitempty"`
	Pattern       string           `yaml:"pattern,omitempty"`
	Constraints   *TypeConstraints `yaml:"constraints,omitempty"`
	Validation    *yaml.Node       `yaml:"validation,omitempty"`
	EnumValues    *yaml.Node       `yaml:"enum,omitempty"`
	Entries       []yaml.Node      `yaml:"entries,omitempty"`
	DefaultText   string           `yaml:"default_text,omitempty"`
	Conversion    *yaml.Node       `yaml:"conversion,omitempty"`
	Bitmask       *yaml.Node       `yaml:"bitmask,omitempty"`
	Size          *uint32          `yaml:"size,omitempty"`
	Fields        []yaml.Node      `yaml:"fields,omitempty"`
}

// TypeConstraints is YamlType.Constraints.
type TypeConstraints struct {
	Internal []yaml.Node `yaml:"internal,omitempty"`
	Physical []yaml.Node `yaml:"physical,omitempty"`
}

// Did is one entry in the document-level `dids` table: ReadDataByIdentifier
// (0x22) and WriteDataByIdentifier (0x2E) services are synthesized from it.
type Did struct {
	Name        string     `yaml:"name,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Type        yaml.Node  `yaml:"type"`
	Access      string     `yaml:"access,omitempty"`
	Readable    *bool      `yaml:"readable,omitempty"`
	Writable    *bool      `yaml:"writable,omitempty"`
	Snapshot    *bool      `yaml:"snapshot,omitempty"`
	IoControl   *yaml.Node `yaml:"io_control,omitempty"`
	Annotations *yaml.Node `yaml:"annotations,omitempty"`
	Audience    *yaml.Node `yaml:"audience,omitempty"`
}

// Routine is one entry in the document-level `routines` table: one
// RoutineControl (0x31) service is synthesized from it, with request
// inputs from the "start" phase and positive-response outputs from the
// "result" phase. Operations is not consulted by the reader.
type Routine struct {
	Name        string                    `yaml:"name,omitempty"`
	Description string                    `yaml:"description,omitempty"`
	Access      string                    `yaml:"access,omitempty"`
	Operations  []string                  `yaml:"operations,omitempty"`
	Parameters  map[string]RoutinePhase   `yaml:"parameters,omitempty"`
	Audience    *yaml.Node                `yaml:"audience,omitempty"`
	Annotations *yaml.Node                `yaml:"annotations,omitempty"`
}

// RoutinePhase is the input/output parameter list for one routine phase;
// the reader uses the inputs of "start" and the outputs of "result".
type RoutinePhase struct {
	Input  []RoutineParam `yaml:"input,omitempty"`
	Output []RoutineParam `yaml:"output,omitempty"`
}

// RoutineParam is one parameter of a RoutinePhase.
type RoutineParam struct {
	Name        string    `yaml:"name,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Type        yaml.Node `yaml:"type"`
	Semantic    string    `yaml:"semantic,omitempty"`
}

// DtcConfig carries ReadDTCInformation sub-function configuration.
type DtcConfig struct {
	StatusAvailabilityMask *yaml.Node           `yaml:"status_availability_mask,omitempty"`
	Snapshots              map[string]yaml.Node `yaml:"snapshots,omitempty"`
	ExtendedData           map[string]yaml.Node `yaml:"extended_data,omitempty"`
}

// YamlDtc is one entry in the document-level `dtcs` table.
type YamlDtc struct {
	Name         string     `yaml:"name,omitempty"`
	Sae          string     `yaml:"sae,omitempty"`
	Description  string     `yaml:"description,omitempty"`
	Severity     *uint32    `yaml:"severity,omitempty"`
	Snapshots    []string   `yaml:"snapshots,omitempty"`
	ExtendedData []string   `yaml:"extended_data,omitempty"`
	XOem         *yaml.Node `yaml:"x-oem,omitempty"`
}

// EcuJob is one entry in the document-level `ecu_jobs` table, mapped to an
// ir.SingleEcuJob (a tester-side routine with no wire request/response).
type EcuJob struct {
	Name            string         `yaml:"name,omitempty"`
	Description     string         `yaml:"description,omitempty"`
	ProgCode        string         `yaml:"prog_code,omitempty"`
	InputParams     []JobParamDef  `yaml:"input_params,omitempty"`
	OutputParams    []JobParamDef  `yaml:"output_params,omitempty"`
	NegOutputParams []JobParamDef  `yaml:"neg_output_params,omitempty"`
	Access          string         `yaml:"access,omitempty"`
	Audience        *yaml.Node     `yaml:"audience,omitempty"`
	Annotations     *yaml.Node     `yaml:"annotations,omitempty"`
}

// JobParamDef is one input/output parameter of an EcuJob.
type JobParamDef struct {
	Name         string     `yaml:"name,omitempty"`
	Description  string     `yaml:"description,omitempty"`
	Type         yaml.Node  `yaml:"type"`
	Semantic     string     `yaml:"semantic,omitempty"`
	DefaultValue *yaml.Node `yaml:"default_value,omitempty"`
}

// YamlMemoryConfig is the document-level `memory` section, mapped to
// ir.MemoryConfig.
type YamlMemoryConfig struct {
	DefaultAddressFormat *YamlAddressFormat          `yaml:"default_address_format,omitempty"`
	Regions              map[string]YamlMemoryRegion `yaml:"regions,omitempty"`
	DataBlocks           map[string]YamlDataBlock    `yaml:"data_blocks,omitempty"`
}

// YamlAddressFormat gives the byte widths of a memory address and length
// field. No default is applied: an absent field decodes as 0.
type YamlAddressFormat struct {
	AddressBytes uint8 `yaml:"address_bytes,omitempty"`
	LengthBytes  uint8 `yaml:"length_bytes,omitempty"`
}

// YamlMemoryRegion is one entry in YamlMemoryConfig.Regions.
type YamlMemoryRegion struct {
	Name          string             `yaml:"name"`
	Description   string             `yaml:"description,omitempty"`
	Start         uint64             `yaml:"start"`
	End           uint64             `yaml:"end"`
	Access        string             `yaml:"access"`
	AddressFormat *YamlAddressFormat `yaml:"address_format,omitempty"`
	SecurityLevel string             `yaml:"security_level,omitempty"`
	Session       *yaml.Node         `yaml:"session,omitempty"`
}

// YamlDataBlock is one entry in YamlMemoryConfig.DataBlocks (a flashable
// region used by RequestDownload/Upload/TransferData).
type YamlDataBlock struct {
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description,omitempty"`
	BlockType       string  `yaml:"type,omitempty"`
	MemoryAddress   uint64  `yaml:"memory_address"`
	MemorySize      uint64  `yaml:"memory_size"`
	Format          string  `yaml:"format,omitempty"`
	MaxBlockLength  *uint64 `yaml:"max_block_length,omitempty"`
	SecurityLevel   string  `yaml:"security_level,omitempty"`
	Session         string  `yaml:"session,omitempty"`
	ChecksumType    string  `yaml:"checksum_type,omitempty"`
}

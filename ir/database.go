package ir

import "strings"

// ParentRef is one inheritance edge from a layer to a parent (spec.md §3.2,
// §4.4 Phase 3). Ref is a 5-way tagged union over what kind of layer the
// edge points at; the NotInherited* lists are ODX's per-category exclusion
// lists consumed by the inheritance merge.
type ParentRef struct {
	Ref                                     ParentRefData
	NotInheritedDiagCommShortNames          []string
	NotInheritedVariablesShortNames         []string
	NotInheritedDopsShortNames              []string
	NotInheritedTablesShortNames            []string
	NotInheritedGlobalNegResponsesShortNames []string
}

// ParentRefData holds the payload for every ParentRef.Ref.Kind case.
type ParentRefData struct {
	Kind            ParentRefKind
	Variant         *Variant
	Protocol        *Protocol
	FunctionalGroup *FunctionalGroup
	TableDop        *TableDop
	EcuSharedData   *EcuSharedData
}

// MatchingParameter is one rule inside a VariantPattern: it names the
// service/parameter whose response value identifies this variant.
type MatchingParameter struct {
	ExpectedValue         string
	DiagService           *DiagService
	OutParam              *Param
	UsePhysicalAddressing *bool
}

// VariantPattern is an ordered list of MatchingParameters that together
// fingerprint a physical ECU variant (spec.md §3.2).
type VariantPattern struct {
	MatchingParameters []MatchingParameter
}

// DiagLayer is the shared shape owned by a Variant, FunctionalGroup, or
// Protocol (spec.md §3.2): short name, services, jobs, state charts, and
// annotations. Invariant: within one DiagLayer, the short names of
// DiagServices ∪ SingleEcuJobs are unique (enforced by the Validator, C8,
// not by this type).
type DiagLayer struct {
	ShortName            string
	LongName             *LongName
	FunctClasses         []FunctClass
	ComParamRefs         []ComParamRef
	DiagServices         []DiagService
	SingleEcuJobs        []SingleEcuJob
	StateCharts          []StateChart
	AdditionalAudiences  []AdditionalAudience
	SDGs                 *SDGs
}

// Variant pairs a DiagLayer with variant-identification metadata
// (spec.md §3.2).
type Variant struct {
	DiagLayer      DiagLayer
	IsBaseVariant  bool
	VariantPatterns []VariantPattern
	ParentRefs     []ParentRef
}

// FunctionalGroup is a DiagLayer that groups services shared across several
// ECUs for one vehicle function, independent of any single ECU variant.
type FunctionalGroup struct {
	DiagLayer  DiagLayer
	ParentRefs []ParentRef
}

// EcuSharedData is a DiagLayer used purely as a shared-content source for
// PARENT-REF inheritance (it is never itself a Variant or FunctionalGroup).
type EcuSharedData struct {
	DiagLayer DiagLayer
}

// MemoryConfig carries ECU memory-layout metadata (ODX MEM, flash regions);
// it is opaque to the converter core beyond round-tripping.
type MemoryConfig struct {
	Regions []MemoryRegion
}

// MemoryRegion is one named address range within MemoryConfig.
type MemoryRegion struct {
	Name        string
	StartAddress uint64
	Size         uint64
	Attributes   map[string]string
}

// TypeDefinition is a reusable named encoding blueprint declared in a YAML
// `types` section (spec.md §4.6 "Type registry"); it is resolved into a Dop
// wherever a DID or parameter references it by name.
type TypeDefinition struct {
	Name          string
	BaseDataType  DataType
	BitLength     uint32
	HighLowByteOrder bool
	Scale         *float64
	Offset        *float64
	EnumTable     map[string]string
	LowerLimit    *Limit
	UpperLimit    *Limit
	Unit          *Unit
}

// Database is the top-level container (spec.md §3.1): the single value a
// parser produces and a writer or validator consumes. It is never mutated
// outside the parser's own flow, except for the audience-filtering pass
// (spec.md §3.6).
type Database struct {
	EcuName          string
	Version          string
	Revision         string
	Metadata         map[string]string
	Variants         []Variant
	FunctionalGroups []FunctionalGroup
	Dtcs             []Dtc
	MemoryConfig     *MemoryConfig
	TypeDefinitions  []TypeDefinition
}

// BaseVariant returns the single Variant marked IsBaseVariant, if any.
func (d *Database) BaseVariant() *Variant {
	for i := range d.Variants {
		if d.Variants[i].IsBaseVariant {
			return &d.Variants[i]
		}
	}
	return nil
}

// VariantByShortName looks up a Variant by its DiagLayer short name.
func (d *Database) VariantByShortName(name string) *Variant {
	for i := range d.Variants {
		if d.Variants[i].DiagLayer.ShortName == name {
			return &d.Variants[i]
		}
	}
	return nil
}

// FilterAudience drops every DiagService and SingleEcuJob excluded by tag
// from each Variant's and FunctionalGroup's DiagLayer. It is the sole
// in-place mutation path on an already-built Database (spec.md §3.6) and
// never adds services back, so applying it twice with the same tag is a
// no-op the second time (spec.md §8 property 7, "audience filter
// monotonicity"). The CLI's --audience flag (SPEC_FULL.md §6.2) is the
// only caller.
func (d *Database) FilterAudience(tag string) {
	if tag == "" {
		return
	}
	for i := range d.Variants {
		filterLayerAudience(&d.Variants[i].DiagLayer, tag)
	}
	for i := range d.FunctionalGroups {
		filterLayerAudience(&d.FunctionalGroups[i].DiagLayer, tag)
	}
}

func filterLayerAudience(dl *DiagLayer, tag string) {
	services := dl.DiagServices[:0]
	for _, s := range dl.DiagServices {
		if audienceVisible(s.DiagComm.Audience, tag) {
			services = append(services, s)
		}
	}
	dl.DiagServices = services

	jobs := dl.SingleEcuJobs[:0]
	for _, j := range dl.SingleEcuJobs {
		if audienceVisible(j.DiagComm.Audience, tag) {
			jobs = append(jobs, j)
		}
	}
	dl.SingleEcuJobs = jobs
}

// audienceVisible decides whether tag can see a DiagComm carrying a. No
// Audience at all means visible to everyone. An explicit disabled-audience
// reference always wins; a matching category flag or enabled-audience
// reference grants visibility; absent any of those, a DiagComm that
// declares audience restrictions only through disabled refs stays visible
// to tags it never named.
func audienceVisible(a *Audience, tag string) bool {
	if a == nil {
		return true
	}
	for _, d := range a.DisabledAudiences {
		if strings.EqualFold(d.ShortName, tag) {
			return false
		}
	}
	if audienceCategoryFlag(a, tag) {
		return true
	}
	for _, e := range a.EnabledAudiences {
		if strings.EqualFold(e.ShortName, tag) {
			return true
		}
	}
	return len(a.EnabledAudiences) == 0 && !hasAnyAudienceCategory(a)
}

func audienceCategoryFlag(a *Audience, tag string) bool {
	switch strings.ToLower(tag) {
	case "supplier":
		return a.IsSupplier
	case "development":
		return a.IsDevelopment
	case "manufacturing":
		return a.IsManufacturing
	case "aftersales", "after_sales":
		return a.IsAfterSales
	case "aftermarket", "after_market":
		return a.IsAfterMarket
	default:
		return false
	}
}

func hasAnyAudienceCategory(a *Audience) bool {
	return a.IsSupplier || a.IsDevelopment || a.IsManufacturing || a.IsAfterSales || a.IsAfterMarket
}

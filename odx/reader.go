package odx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bburda42dot/diag-converter-sub000/internal/logging"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// ErrXMLParse is returned when the input is not well-formed ODX XML.
var ErrXMLParse = errors.New("odx: malformed xml document")

// ErrPDXEmpty is returned when a PDX zip archive contains no .odx-d member.
var ErrPDXEmpty = errors.New("odx: pdx archive contains no .odx-d member")

// MissingElementError is returned in strict mode when a reference fails to
// resolve (spec.md §4.4 "Lenient mode").
type MissingElementError struct{ Path string }

func (e *MissingElementError) Error() string { return "odx: missing element: " + e.Path }

func missingElement(path string) error { return &MissingElementError{Path: path} }

// ReadOptions configures Read/ReadPDX (spec.md §4.4 "Lenient mode").
type ReadOptions struct {
	// Strict, when true, makes an unresolved REQUEST-REF, response ref or
	// param DOP reference fail the parse with a MissingElementError; when
	// false such a reference logs a warning and an empty placeholder is
	// substituted. Other references are not covered by Strict: an
	// unresolved PARENT-REF is skipped (with a warning only when Strict is
	// false), and unresolved table, table-row, unit, structure and
	// DET-DOP references are dropped without an error in both modes.
	Strict bool
	Logger *logging.Helper
}

func (o ReadOptions) logger() *logging.Helper {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Default()
}

// Read parses a single ODX document (the `.odx-d` member's contents) into
// an ir.Database (spec.md §4.4, all four phases).
func Read(data []byte, opts ReadOptions) (*ir.Database, error) {
	var root xmlContainer
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrXMLParse, err)
	}
	return readContainer(&root.Container, opts)
}

// ReadPDX unpacks a PDX zip archive, merges every `.odx-d` member's
// DIAG-LAYER-CONTAINER children into one logical container, and runs the
// normal four phases over the result (spec.md §4.4 "PDX input").
func ReadPDX(data []byte, opts ReadOptions) (*ir.Database, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrXMLParse, err)
	}
	merged := xmlLayerContainer{}
	found := false
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".odx-d") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrXMLParse, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrXMLParse, err)
		}
		var root xmlContainer
		if err := xml.Unmarshal(b, &root); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrXMLParse, err)
		}
		found = true
		if merged.ShortName == "" {
			merged.ShortName = root.Container.ShortName
			merged.ID = root.Container.ID
		}
		merged.BaseVariants = append(merged.BaseVariants, root.Container.BaseVariants...)
		merged.EcuVariants = append(merged.EcuVariants, root.Container.EcuVariants...)
		merged.Protocols = append(merged.Protocols, root.Container.Protocols...)
		merged.FunctionalGroups = append(merged.FunctionalGroups, root.Container.FunctionalGroups...)
		merged.EcuSharedDatas = append(merged.EcuSharedDatas, root.Container.EcuSharedDatas...)
	}
	if !found {
		return nil, ErrPDXEmpty
	}
	return readContainer(&merged, opts)
}

// mapCtx carries the state threaded through one Phase-4 walk: the index,
// options, and the lazily-built identity stubs ParentRefData points to
// (spec.md §9 "Identifier scoping" -- a ParentRef target is an identity
// reference, not a duplicated subgraph; the actual inheritance effect
// already happened in Phase 3 via mergeLayer).
type mapCtx struct {
	idx          *OdxIndex
	opts         ReadOptions
	variantStubs map[string]*ir.Variant
	protoStubs   map[string]*ir.Protocol
	fgStubs      map[string]*ir.FunctionalGroup
	sharedStubs  map[string]*ir.EcuSharedData
	tableStubs   map[string]*ir.TableDop
	dtcSeen      map[uint32]bool
	paramsByID   map[uint32]*ir.Param
}

func readContainer(c *xmlLayerContainer, opts ReadOptions) (*ir.Database, error) {
	idx := buildIndex(c)
	log := opts.logger()
	ctx := &mapCtx{
		idx:          idx,
		opts:         opts,
		variantStubs: make(map[string]*ir.Variant),
		protoStubs:   make(map[string]*ir.Protocol),
		fgStubs:      make(map[string]*ir.FunctionalGroup),
		sharedStubs:  make(map[string]*ir.EcuSharedData),
		tableStubs:   make(map[string]*ir.TableDop),
		dtcSeen:      make(map[uint32]bool),
		paramsByID:   make(map[uint32]*ir.Param),
	}

	db := &ir.Database{EcuName: c.ShortName, Metadata: map[string]string{}}

	mapOne := func(layers []xmlDiagLayer) ([]*MergedLayer, error) {
		var out []*MergedLayer
		for i := range layers {
			visited := make(map[string]bool)
			out = append(out, mergeLayer(idx, layers[i].ID, visited, log))
		}
		return out, nil
	}

	baseMerged, _ := mapOne(c.BaseVariants)
	ecuMerged, _ := mapOne(c.EcuVariants)
	fgMerged, _ := mapOne(c.FunctionalGroups)

	for _, m := range baseMerged {
		v, err := ctx.mapVariant(m, true)
		if err != nil {
			return nil, err
		}
		db.Variants = append(db.Variants, *v)
	}
	for _, m := range ecuMerged {
		v, err := ctx.mapVariant(m, false)
		if err != nil {
			return nil, err
		}
		db.Variants = append(db.Variants, *v)
	}
	for _, m := range fgMerged {
		fg, err := ctx.mapFunctionalGroup(m)
		if err != nil {
			return nil, err
		}
		db.FunctionalGroups = append(db.FunctionalGroups, *fg)
	}

	db.Dtcs = ctx.collectDtcs(append(append([]*MergedLayer{}, baseMerged...), ecuMerged...))
	return db, nil
}

// collectDtcs gathers DTCs from every DtcDop across every merged layer and
// dedups them by trouble code at the Database level (spec.md §4.4 Phase 4).
func (ctx *mapCtx) collectDtcs(layers []*MergedLayer) []ir.Dtc {
	var out []ir.Dtc
	for _, m := range layers {
		for _, dd := range m.DtcDops {
			for _, d := range dd.Dtcs {
				if ctx.dtcSeen[d.TroubleCode] {
					continue
				}
				ctx.dtcSeen[d.TroubleCode] = true
				out = append(out, ir.Dtc{
					ShortName:          d.ShortName,
					TroubleCode:        d.TroubleCode,
					DisplayTroubleCode: d.DisplayTroubleCode,
					Text:               mapText(d.Text),
					Level:              d.Level,
					SDGs:               mapSDGs(d.SDGs),
					IsTemporary:        d.IsTemporary,
				})
			}
		}
	}
	return out
}

func (ctx *mapCtx) mapVariant(m *MergedLayer, isBase bool) (*ir.Variant, error) {
	dl, err := ctx.mapDiagLayer(m)
	if err != nil {
		return nil, err
	}
	v := &ir.Variant{DiagLayer: *dl, IsBaseVariant: isBase}
	for _, vp := range m.Source.VariantPatterns {
		v.VariantPatterns = append(v.VariantPatterns, ctx.mapVariantPattern(vp, m))
	}
	for _, pr := range m.Source.ParentRefs {
		v.ParentRefs = append(v.ParentRefs, ctx.mapParentRef(pr))
	}
	return v, nil
}

func (ctx *mapCtx) mapFunctionalGroup(m *MergedLayer) (*ir.FunctionalGroup, error) {
	dl, err := ctx.mapDiagLayer(m)
	if err != nil {
		return nil, err
	}
	fg := &ir.FunctionalGroup{DiagLayer: *dl}
	for _, pr := range m.Source.ParentRefs {
		fg.ParentRefs = append(fg.ParentRefs, ctx.mapParentRef(pr))
	}
	return fg, nil
}

func (ctx *mapCtx) mapVariantPattern(vp xmlVariantPattern, m *MergedLayer) ir.VariantPattern {
	out := ir.VariantPattern{}
	for _, mp := range vp.MatchingParameters {
		var svc *ir.DiagService
		var outParam *ir.Param
		for _, e := range m.DiagComms {
			if e.Kind == diagCommEntryService && e.Service.ShortName == mp.DiagComSNREF {
				s, _ := ctx.mapDiagService(e.Service, m)
				svc = s
				if s != nil && s.Request != nil {
					for i := range s.Request.Params {
						if s.Request.Params[i].ShortName == mp.OutParamIfSNREF {
							outParam = &s.Request.Params[i]
						}
					}
				}
				break
			}
		}
		out.MatchingParameters = append(out.MatchingParameters, ir.MatchingParameter{
			ExpectedValue: mp.ExpectedValue,
			DiagService:   svc,
			OutParam:      outParam,
		})
	}
	return out
}

func (ctx *mapCtx) mapParentRef(pr xmlParentRef) ir.ParentRef {
	out := ir.ParentRef{
		NotInheritedDiagCommShortNames:           pr.NotInheritedDiagComms,
		NotInheritedVariablesShortNames:          pr.NotInheritedVariables,
		NotInheritedDopsShortNames:               pr.NotInheritedDops,
		NotInheritedTablesShortNames:             pr.NotInheritedTables,
		NotInheritedGlobalNegResponsesShortNames: pr.NotInheritedGlobalNegResponses,
	}
	kind, ok := ctx.idx.layerKinds[pr.IDRef]
	if !ok {
		if _, isTable := ctx.idx.tableDops[pr.IDRef]; isTable {
			out.Ref = ir.ParentRefData{Kind: ir.ParentRefTableDop, TableDop: ctx.tableStub(pr.IDRef)}
			return out
		}
		if ctx.opts.Strict {
			return out
		}
		ctx.opts.logger().Warnf("odx: parent ref %q does not resolve to a known layer", pr.IDRef)
		return out
	}
	switch kind {
	case layerBaseVariant, layerEcuVariant:
		out.Ref = ir.ParentRefData{Kind: ir.ParentRefVariant, Variant: ctx.variantStub(pr.IDRef)}
	case layerProtocol:
		out.Ref = ir.ParentRefData{Kind: ir.ParentRefProtocol, Protocol: ctx.protocolStub(pr.IDRef)}
	case layerFunctionalGroup:
		out.Ref = ir.ParentRefData{Kind: ir.ParentRefFunctionalGroup, FunctionalGroup: ctx.fgStub(pr.IDRef)}
	case layerEcuSharedData:
		out.Ref = ir.ParentRefData{Kind: ir.ParentRefEcuSharedData, EcuSharedData: ctx.sharedStub(pr.IDRef)}
	}
	return out
}

func (ctx *mapCtx) variantStub(id string) *ir.Variant {
	if v, ok := ctx.variantStubs[id]; ok {
		return v
	}
	l := ctx.idx.layers[id]
	v := &ir.Variant{DiagLayer: ir.DiagLayer{ShortName: l.ShortName, LongName: mapText(l.LongName)}, IsBaseVariant: l.IsBaseVariant}
	ctx.variantStubs[id] = v
	return v
}

func (ctx *mapCtx) protocolStub(id string) *ir.Protocol {
	if p, ok := ctx.protoStubs[id]; ok {
		return p
	}
	l := ctx.idx.layers[id]
	p := &ir.Protocol{DiagLayer: ir.DiagLayer{ShortName: l.ShortName, LongName: mapText(l.LongName)}}
	ctx.protoStubs[id] = p
	return p
}

func (ctx *mapCtx) fgStub(id string) *ir.FunctionalGroup {
	if f, ok := ctx.fgStubs[id]; ok {
		return f
	}
	l := ctx.idx.layers[id]
	f := &ir.FunctionalGroup{DiagLayer: ir.DiagLayer{ShortName: l.ShortName, LongName: mapText(l.LongName)}}
	ctx.fgStubs[id] = f
	return f
}

func (ctx *mapCtx) sharedStub(id string) *ir.EcuSharedData {
	if s, ok := ctx.sharedStubs[id]; ok {
		return s
	}
	l := ctx.idx.layers[id]
	s := &ir.EcuSharedData{DiagLayer: ir.DiagLayer{ShortName: l.ShortName, LongName: mapText(l.LongName)}}
	ctx.sharedStubs[id] = s
	return s
}

// protocolByShortName resolves a PROTOCOL-SNREF, which names a protocol
// layer by short name rather than by its global @ID.
func (ctx *mapCtx) protocolByShortName(name string) *ir.Protocol {
	for id, kind := range ctx.idx.layerKinds {
		if kind == layerProtocol && ctx.idx.layers[id].ShortName == name {
			return ctx.protocolStub(id)
		}
	}
	return nil
}

func (ctx *mapCtx) tableStub(id string) *ir.TableDop {
	if t, ok := ctx.tableStubs[id]; ok {
		return t
	}
	xt := ctx.idx.tableDops[id]
	t := &ir.TableDop{ShortName: xt.ShortName, Semantic: xt.Semantic}
	ctx.tableStubs[id] = t
	return t
}

func (ctx *mapCtx) mapDiagLayer(m *MergedLayer) (*ir.DiagLayer, error) {
	dl := &ir.DiagLayer{
		ShortName: m.Source.ShortName,
		LongName:  mapText(m.Source.LongName),
		SDGs:      mapSDGs(m.Source.SDGs),
	}
	for _, fc := range m.Source.FunctClasses {
		dl.FunctClasses = append(dl.FunctClasses, ir.FunctClass{ShortName: fc.ShortName})
	}
	for _, a := range m.AdditionalAudiences {
		dl.AdditionalAudiences = append(dl.AdditionalAudiences, ir.AdditionalAudience{ShortName: a.ShortName, LongName: mapText(a.LongName)})
	}
	for _, sc := range m.StateCharts {
		dl.StateCharts = append(dl.StateCharts, mapStateChart(sc))
	}
	for _, cpr := range m.ComParamRefs {
		dl.ComParamRefs = append(dl.ComParamRefs, ctx.mapComParamRef(cpr))
	}
	for _, e := range m.DiagComms {
		switch e.Kind {
		case diagCommEntryService:
			s, err := ctx.mapDiagService(e.Service, m)
			if err != nil {
				return nil, err
			}
			dl.DiagServices = append(dl.DiagServices, *s)
		case diagCommEntryJob:
			dl.SingleEcuJobs = append(dl.SingleEcuJobs, ctx.mapSingleEcuJob(e.Job, m))
		}
	}
	return dl, nil
}

func mapStateChart(sc xmlStateChart) ir.StateChart {
	out := ir.StateChart{ShortName: sc.ShortName, Semantic: sc.Semantic, StartStateShortNameRef: sc.StartStateSNREF}
	for _, s := range sc.States {
		out.States = append(out.States, ir.State{ShortName: s.ShortName, LongName: mapText(s.LongName)})
	}
	for _, t := range sc.StateTransitions {
		out.StateTransitions = append(out.StateTransitions, ir.StateTransition{
			ShortName:          t.ShortName,
			SourceShortNameRef: t.SourceSNREF,
			TargetShortNameRef: t.TargetSNREF,
		})
	}
	return out
}

func (ctx *mapCtx) mapComParamRef(c xmlComParamRef) ir.ComParamRef {
	out := ir.ComParamRef{}
	if c.SimpleValue != "" {
		out.SimpleValue = &ir.SimpleValue{Value: c.SimpleValue}
	}
	if c.ComplexValue != nil {
		out.ComplexValue = mapComplexValue(c.ComplexValue)
	}
	if c.ProtocolSNREF != "" {
		out.Protocol = ctx.protocolByShortName(c.ProtocolSNREF)
	}
	return out
}

func mapComplexValue(c *xmlComplexValue) *ir.ComplexValue {
	if c == nil {
		return nil
	}
	out := &ir.ComplexValue{}
	for _, s := range c.SimpleValues {
		out.Entries = append(out.Entries, ir.SimpleOrComplexValue{Kind: ir.ValueKindSimple, Simple: &ir.SimpleValue{Value: s}})
	}
	for i := range c.ComplexValues {
		out.Entries = append(out.Entries, ir.SimpleOrComplexValue{Kind: ir.ValueKindComplex, Complex: mapComplexValue(&c.ComplexValues[i])})
	}
	return out
}

func (ctx *mapCtx) mapDiagService(s *xmlDiagService, m *MergedLayer) (*ir.DiagService, error) {
	out := &ir.DiagService{
		DiagComm:         ctx.mapDiagComm(s.xmlDiagComm),
		IsCyclic:         s.IsCyclic,
		IsMultiple:       s.IsMultiple,
		Addressing:       mapAddressing(s.Addressing),
		TransmissionMode: mapTransmissionMode(s.TransmissionMode),
	}
	for _, cpr := range s.ComParamRefs {
		out.ComParamRefs = append(out.ComParamRefs, ctx.mapComParamRef(cpr))
	}
	if s.RequestRef != "" {
		req, err := ctx.resolveRequest(s.RequestRef, m)
		if err != nil {
			return nil, err
		}
		out.Request = req
	}
	for _, ref := range s.PosResponseRefs {
		r, err := ctx.resolveResponse(ref, ir.ResponsePositive, m)
		if err != nil {
			return nil, err
		}
		if r != nil {
			out.PosResponses = append(out.PosResponses, *r)
		}
	}
	for _, ref := range s.NegResponseRefs {
		r, err := ctx.resolveResponse(ref, ir.ResponseNegative, m)
		if err != nil {
			return nil, err
		}
		if r != nil {
			out.NegResponses = append(out.NegResponses, *r)
		}
	}
	return out, nil
}

func (ctx *mapCtx) resolveRequest(id string, m *MergedLayer) (*ir.Request, error) {
	xr, ok := ctx.idx.requests[id]
	if !ok {
		if ctx.opts.Strict {
			return nil, missingElement("request/" + id)
		}
		ctx.opts.logger().Warnf("odx: request %q does not resolve", id)
		return &ir.Request{}, nil
	}
	out := &ir.Request{SDGs: mapSDGs(xr.SDGs)}
	for _, p := range xr.Params {
		ip, err := ctx.mapParam(&p, m)
		if err != nil {
			return nil, err
		}
		out.Params = append(out.Params, ip)
	}
	return out, nil
}

func (ctx *mapCtx) resolveResponse(id string, kind ir.ResponseType, m *MergedLayer) (*ir.Response, error) {
	xr, ok := ctx.idx.responses[id]
	if !ok {
		if ctx.opts.Strict {
			return nil, missingElement("response/" + id)
		}
		ctx.opts.logger().Warnf("odx: response %q does not resolve", id)
		return &ir.Response{ResponseType: kind}, nil
	}
	out := &ir.Response{ResponseType: kind, SDGs: mapSDGs(xr.SDGs)}
	for _, p := range xr.Params {
		ip, err := ctx.mapParam(&p, m)
		if err != nil {
			return nil, err
		}
		out.Params = append(out.Params, ip)
	}
	return out, nil
}

func (ctx *mapCtx) mapDiagComm(c xmlDiagComm) ir.DiagComm {
	out := ir.DiagComm{
		ShortName:     c.ShortName,
		LongName:      mapText(c.LongName),
		Semantic:      c.Semantic,
		SDGs:          mapSDGs(c.SDGs),
		DiagClassType: mapDiagClassType(c.DiagClassType),
		IsMandatory:   c.IsMandatory,
		IsExecutable:  c.IsExecutable,
		IsFinal:       c.IsFinal,
	}
	for _, fc := range c.FunctClasses {
		out.FunctClasses = append(out.FunctClasses, ir.FunctClass{ShortName: fc.ShortName})
	}
	for _, r := range c.PreConditionStateRefs {
		out.PreConditionStateRefs = append(out.PreConditionStateRefs, ir.PreConditionStateRef{
			Value:              r.Value,
			InParamIfShortName: r.InParamIfShortName,
		})
	}
	for _, r := range c.StateTransitionRefs {
		out.StateTransitionRefs = append(out.StateTransitionRefs, ir.StateTransitionRef{Value: r.Value})
	}
	for _, name := range c.ProtocolSNREFs {
		if p := ctx.protocolByShortName(name); p != nil {
			out.Protocols = append(out.Protocols, *p)
		}
	}
	if c.Audience != nil {
		out.Audience = mapAudience(c.Audience)
	}
	return out
}

func mapAudience(a *xmlAudience) *ir.Audience {
	if a == nil {
		return nil
	}
	out := &ir.Audience{
		IsSupplier:      a.IsSupplier,
		IsDevelopment:   a.IsDevelopment,
		IsManufacturing: a.IsManufacturing,
		IsAfterSales:    a.IsAfterSales,
		IsAfterMarket:   a.IsAfterMarket,
	}
	for _, n := range a.EnabledAudienceRefs {
		out.EnabledAudiences = append(out.EnabledAudiences, ir.AdditionalAudience{ShortName: n})
	}
	for _, n := range a.DisabledAudienceRefs {
		out.DisabledAudiences = append(out.DisabledAudiences, ir.AdditionalAudience{ShortName: n})
	}
	return out
}

func (ctx *mapCtx) mapSingleEcuJob(j *xmlSingleEcuJob, m *MergedLayer) ir.SingleEcuJob {
	out := ir.SingleEcuJob{DiagComm: ctx.mapDiagComm(j.xmlDiagComm)}
	for _, p := range j.ProgCodes {
		out.ProgCodes = append(out.ProgCodes, mapProgCode(p))
	}
	for _, p := range j.InputParams {
		out.InputParams = append(out.InputParams, ctx.mapJobParam(p, m))
	}
	for _, p := range j.OutputParams {
		out.OutputParams = append(out.OutputParams, ctx.mapJobParam(p, m))
	}
	for _, p := range j.NegOutputParams {
		out.NegOutputParams = append(out.NegOutputParams, ctx.mapJobParam(p, m))
	}
	return out
}

func mapProgCode(p xmlProgCode) ir.ProgCode {
	out := ir.ProgCode{CodeFile: p.CodeFile, Encryption: p.Encryption, Syntax: p.Syntax, Revision: p.Revision, EntryPoint: p.EntryPoint}
	for _, l := range p.Libraries {
		out.Libraries = append(out.Libraries, ir.Library{
			ShortName: l.ShortName, LongName: mapText(l.LongName), CodeFile: l.CodeFile,
			Encryption: l.Encryption, Syntax: l.Syntax, EntryPoint: l.EntryPoint,
		})
	}
	return out
}

func (ctx *mapCtx) mapJobParam(p xmlJobParam, m *MergedLayer) ir.JobParam {
	out := ir.JobParam{
		ShortName:            p.ShortName,
		LongName:             mapText(p.LongName),
		PhysicalDefaultValue: p.PhysicalDefaultValue,
		Semantic:             p.Semantic,
	}
	if p.DopBaseSNREF != "" {
		if xd, ok := dopByShortNameInLayer(m.Source, p.DopBaseSNREF); ok {
			dop := ctx.mapDopRaw(xd, m)
			out.DopBase = &dop
		}
	}
	return out
}

func mapText(t *xmlText) *ir.Text {
	if t == nil {
		return nil
	}
	return &ir.Text{Value: t.Value, TI: t.TI}
}

func mapSDGs(s *xmlSDGs) *ir.SDGs {
	if s == nil {
		return nil
	}
	out := &ir.SDGs{}
	for _, sdg := range s.Sdgs {
		out.Sdgs = append(out.Sdgs, mapSdg(sdg))
	}
	return out
}

func mapSdg(s xmlSdg) ir.Sdg {
	out := ir.Sdg{CaptionSN: s.CaptionSN, SI: s.SI}
	for _, sd := range s.Sds {
		out.Sds = append(out.Sds, ir.SdOrSdg{Kind: ir.SdOrSdgSd, Sd: &ir.Sd{Value: sd.Value, SI: sd.SI, TI: sd.TI}})
	}
	for _, nested := range s.Sdgs {
		n := mapSdg(nested)
		out.Sds = append(out.Sds, ir.SdOrSdg{Kind: ir.SdOrSdgSdg, Sdg: &n})
	}
	return out
}

// mapParam implements Phase 4's parameter dispatch (spec.md §4.4): the
// xsi:type on the PARAM element selects the ParamData case, and any DOP
// reference on the parameter is resolved through the documented fallback
// chain (resolveDop).
func (ctx *mapCtx) mapParam(p *xmlParam, m *MergedLayer) (ir.Param, error) {
	out := ir.Param{
		ID:                   p.ID,
		ShortName:            p.ShortName,
		Semantic:             p.Semantic,
		SDGs:                 mapSDGs(p.SDGs),
		PhysicalDefaultValue: p.PhysicalDefaultValue,
		BytePosition:         p.BytePosition,
		BitPosition:          p.BitPosition,
	}
	switch strings.ToUpper(p.XsiType) {
	case "CODED-CONST":
		out.ParamType = ir.ParamCodedConst
		dct := ctx.mapDiagCodedType(p.DiagCodedType)
		out.Data.CodedConst = &ir.CodedConstData{CodedValue: p.CodedValue, DiagCodedType: dct}
	case "DYNAMIC":
		out.ParamType = ir.ParamDynamic
	case "LENGTH-KEY":
		out.ParamType = ir.ParamLengthKey
		dop, err := ctx.resolveDop(p.DopRef, p.DopSNREF, m, "param/"+p.ShortName+"/length-key-dop")
		if err != nil {
			return out, err
		}
		out.Data.LengthKeyRef = &ir.LengthKeyRefData{Dop: dop}
	case "MATCHING-REQUEST-PARAM":
		out.ParamType = ir.ParamMatchingRequestParam
		bp := int32(0)
		if p.RequestBytePos != nil {
			bp = *p.RequestBytePos
		}
		bl := uint32(0)
		if p.ByteLength != nil {
			bl = *p.ByteLength
		}
		out.Data.MatchingRequestParam = &ir.MatchingRequestParamData{RequestBytePos: bp, ByteLength: bl}
	case "NRC-CONST":
		out.ParamType = ir.ParamNrcConst
		dct := ctx.mapDiagCodedType(p.DiagCodedType)
		out.Data.NrcConst = &ir.NrcConstData{CodedValues: p.CodedValues, DiagCodedType: dct}
	case "PHYS-CONST":
		out.ParamType = ir.ParamPhysConst
		dop, err := ctx.resolveDop(p.DopRef, p.DopSNREF, m, "param/"+p.ShortName+"/phys-const-dop")
		if err != nil {
			return out, err
		}
		out.Data.PhysConst = &ir.PhysConstData{PhysConstantValue: p.PhysConstantValue, Dop: dop}
	case "RESERVED":
		out.ParamType = ir.ParamReserved
		bl := uint32(0)
		if p.BitLength != nil {
			bl = *p.BitLength
		}
		out.Data.Reserved = &ir.ReservedData{BitLength: bl}
	case "SYSTEM":
		out.ParamType = ir.ParamSystem
		dop, err := ctx.resolveDop(p.DopRef, p.DopSNREF, m, "param/"+p.ShortName+"/system-dop")
		if err != nil {
			return out, err
		}
		out.Data.System = &ir.SystemData{Dop: dop, SysParam: p.SysParam}
	case "TABLE-ENTRY":
		out.ParamType = ir.ParamTableEntry
		fragment := ir.TableEntryKey
		if strings.EqualFold(p.TableEntryTarget, "STRUCT") {
			fragment = ir.TableEntryStruct
		}
		out.Data.TableEntry = &ir.TableEntryData{Target: fragment, TableRow: ctx.resolveTableRow(p.TableRowRef, p.TableRowSNREF, m)}
	case "TABLE-KEY":
		out.ParamType = ir.ParamTableKey
		data := &ir.TableKeyData{}
		if p.TableRowRef != "" || p.TableRowSNREF != "" {
			data.ReferenceKind = ir.TableKeyReferenceTableRow
			data.TableRow = ctx.resolveTableRow(p.TableRowRef, p.TableRowSNREF, m)
		} else {
			data.ReferenceKind = ir.TableKeyReferenceTableDop
			data.TableDop = ctx.resolveTableDop(p.TableDopRef, m)
		}
		out.Data.TableKey = data
	case "TABLE-STRUCT":
		out.ParamType = ir.ParamTableStruct
		out.Data.TableStruct = &ir.TableStructData{}
	default: // VALUE and any unrecognized xsi:type tolerate as VALUE (spec.md §9 "Forward compatibility")
		out.ParamType = ir.ParamValue
		dop, err := ctx.resolveDop(p.DopRef, p.DopSNREF, m, "param/"+p.ShortName+"/value-dop")
		if err != nil {
			return out, err
		}
		out.Data.Value = &ir.ValueData{PhysicalDefaultValue: p.PhysicalDefaultValue, Dop: dop}
	}
	if out.ID != 0 {
		ctx.paramsByID[out.ID] = &out
	}
	return out, nil
}

// resolveDop implements the DOP resolution fallback chain (spec.md §4.4
// Phase 4): DOP-REF via index, then DOP-SNREF via a local name scan, then a
// synthesized empty DOP so the parse never fails on a dangling reference.
func (ctx *mapCtx) resolveDop(ref, snref string, m *MergedLayer, path string) (*ir.Dop, error) {
	if ref != "" {
		if xd, ok := ctx.idx.dops[ref]; ok {
			dop := ctx.mapDopRaw(xd, m)
			return &dop, nil
		}
		if xdtc, ok := ctx.idx.dtcDops[ref]; ok {
			dop := ctx.mapDtcDop(xdtc, m)
			return &dop, nil
		}
	}
	if snref != "" {
		if xd, ok := dopByShortNameInLayer(m.Source, snref); ok {
			dop := ctx.mapDopRaw(xd, m)
			return &dop, nil
		}
	}
	if ctx.opts.Strict {
		return nil, missingElement(path)
	}
	ctx.opts.logger().Warnf("odx: %s does not resolve; synthesizing an empty DOP", path)
	return &ir.Dop{DopType: ir.DopRegular, Data: ir.DopData{NormalDop: &ir.NormalDopData{}}}, nil
}

func (ctx *mapCtx) resolveTableRow(ref, snref string, m *MergedLayer) *ir.TableRow {
	for _, t := range m.Tables {
		for i := range t.Rows {
			r := &t.Rows[i]
			if (ref != "" && r.ID == ref) || (snref != "" && r.ShortName == snref) {
				return ctx.mapTableRow(r, m)
			}
		}
	}
	return nil
}

func (ctx *mapCtx) resolveTableDop(ref string, m *MergedLayer) *ir.TableDop {
	if ref == "" {
		return nil
	}
	if t, ok := ctx.idx.tableDops[ref]; ok {
		return ctx.mapTableDop(t, m)
	}
	return nil
}

func (ctx *mapCtx) mapTableDop(t *xmlTableDop, m *MergedLayer) *ir.TableDop {
	if cached, ok := ctx.tableStubs[t.ID]; ok && len(cached.Rows) > 0 {
		return cached
	}
	out := &ir.TableDop{
		Semantic:    t.Semantic,
		ShortName:   t.ShortName,
		LongName:    mapText(t.LongName),
		KeyLabel:    t.KeyLabel,
		StructLabel: t.StructLabel,
		SDGs:        mapSDGs(t.SDGs),
	}
	if xd, ok := ctx.idx.dops[t.KeyDopRef]; ok {
		dop := ctx.mapDopRaw(xd, m)
		out.KeyDop = &dop
	}
	for i := range t.Rows {
		out.Rows = append(out.Rows, *ctx.mapTableRow(&t.Rows[i], m))
	}
	for _, c := range t.DiagCommConnectors {
		out.DiagCommConnectors = append(out.DiagCommConnectors, ctx.mapTableConnector(c, m))
	}
	ctx.tableStubs[t.ID] = out
	return out
}

func (ctx *mapCtx) mapTableConnector(c xmlTableConnector, m *MergedLayer) ir.TableDiagCommConnector {
	out := ir.TableDiagCommConnector{Semantic: c.Semantic}
	for _, e := range m.DiagComms {
		switch e.Kind {
		case diagCommEntryService:
			if e.Service.ShortName == c.DiagCommSNREF {
				svc, _ := ctx.mapDiagService(e.Service, m)
				out.DiagComm = ir.DiagServiceOrJob{Kind: ir.DiagServiceOrJobService, DiagService: svc}
			}
		case diagCommEntryJob:
			if e.Job.ShortName == c.DiagCommSNREF {
				job := ctx.mapSingleEcuJob(e.Job, m)
				out.DiagComm = ir.DiagServiceOrJob{Kind: ir.DiagServiceOrJobJob, Job: &job}
			}
		}
	}
	return out
}

func (ctx *mapCtx) mapTableRow(r *xmlTableRow, m *MergedLayer) *ir.TableRow {
	out := &ir.TableRow{
		ShortName:    r.ShortName,
		LongName:     mapText(r.LongName),
		Key:          r.Key,
		SDGs:         mapSDGs(r.SDGs),
		Audience:     mapAudience(r.Audience),
		Semantic:     r.Semantic,
		IsExecutable: r.IsExecutable,
		IsMandatory:  r.IsMandatory,
		IsFinal:      r.IsFinal,
	}
	if xd, ok := ctx.idx.dops[r.DopRef]; ok {
		dop := ctx.mapDopRaw(xd, m)
		out.Dop = &dop
	}
	if xd, ok := ctx.idx.dops[r.StructureRef]; ok {
		dop := ctx.mapDopRaw(xd, m)
		out.Structure = &dop
	}
	return out
}

func (ctx *mapCtx) mapDopRaw(xd *xmlDop, m *MergedLayer) ir.Dop {
	out := ir.Dop{ShortName: xd.ShortName, SDGs: mapSDGs(xd.SDGs)}
	switch xd.XsiType {
	case tagStructure:
		out.DopType = ir.DopStructure
		sd := &ir.StructureData{ByteSize: xd.ByteSize, IsVisible: xd.IsVisible}
		for i := range xd.Params {
			p, err := ctx.mapParam(&xd.Params[i], m)
			if err == nil {
				sd.Params = append(sd.Params, p)
			}
		}
		out.Data.Structure = sd
	case tagEndOfPduField:
		out.DopType = ir.DopEndOfPduField
		out.Data.EndOfPduField = &ir.EndOfPduFieldData{
			MaxNumberOfItems: xd.MaxNumberOfItems,
			MinNumberOfItems: xd.MinNumberOfItems,
			Field:            ctx.mapField(xd, m),
		}
	case tagStaticField:
		out.DopType = ir.DopStaticField
		out.Data.StaticField = &ir.StaticFieldData{
			FixedNumberOfItems: xd.FixedNumberOfItems,
			ItemByteSize:       xd.ItemByteSize,
			Field:              ctx.mapField(xd, m),
		}
	case tagDynamicLengthField, tagDynamicEndmarkerField:
		out.DopType = ir.DopDynamicLengthField
		if xd.XsiType == tagDynamicEndmarkerField {
			out.DopType = ir.DopDynamicEndMarkerField
		}
		dlf := &ir.DynamicLengthFieldData{Offset: xd.Offset, Field: ctx.mapField(xd, m)}
		if xd.DetDopRef != "" {
			det := &ir.DetermineNumberOfItems{}
			if xd.DetByteBitPosition != nil {
				det.BytePosition = *xd.DetByteBitPosition
			}
			if xd.DetBitPosition != nil {
				det.BitPosition = *xd.DetBitPosition
			}
			if xdop, ok := ctx.idx.dops[xd.DetDopRef]; ok {
				dop := ctx.mapDopRaw(xdop, m)
				det.Dop = &dop
			}
			dlf.DetermineNumberOfItems = det
		}
		out.Data.DynamicLengthField = dlf
	case tagEnvDataDesc:
		out.DopType = ir.DopEnvDataDesc
		edd := &ir.EnvDataDescData{ParamShortName: xd.ParamShortName, ParamPathShortName: xd.ParamPathShortName}
		for _, ref := range xd.EnvDataRefs {
			if xdop, ok := ctx.idx.dops[ref]; ok {
				edd.EnvDatas = append(edd.EnvDatas, ctx.mapDopRaw(xdop, m))
			}
		}
		out.Data.EnvDataDesc = edd
	case tagEnvData:
		out.DopType = ir.DopEnvData
		ed := &ir.EnvDataData{DtcValues: xd.DtcValues}
		for i := range xd.Params {
			p, err := ctx.mapParam(&xd.Params[i], m)
			if err == nil {
				ed.Params = append(ed.Params, p)
			}
		}
		out.Data.EnvData = ed
	case tagMux:
		out.DopType = ir.DopMux
		mux := &ir.MuxDopData{BytePosition: xd.BytePosition, IsVisible: xd.IsVisible}
		if xd.SwitchKeyDopRef != "" {
			sk := &ir.SwitchKey{BitPosition: xd.SwitchKeyBitPosition}
			if xdop, ok := ctx.idx.dops[xd.SwitchKeyDopRef]; ok {
				dop := ctx.mapDopRaw(xdop, m)
				sk.Dop = &dop
			}
			mux.SwitchKey = sk
		}
		if xd.DefaultCase != nil {
			mux.DefaultCase = ctx.mapDefaultCase(xd.DefaultCase, m)
		}
		for _, c := range xd.Cases {
			mux.Cases = append(mux.Cases, ctx.mapCase(c, m))
		}
		out.Data.MuxDop = mux
	case tagDtcDop:
		// reached through a DOP-SNREF that names a DTC-DOP
		// (dopByShortNameInLayer); the full entry is mapped by mapDtcDop.
		if xdtc, ok := ctx.idx.dtcDops[xd.ID]; ok {
			return ctx.mapDtcDop(xdtc, m)
		}
		out.DopType = ir.DopDtc
	default: // DATA-OBJECT-PROP -> Regular
		out.DopType = ir.DopRegular
		nd := &ir.NormalDopData{
			DiagCodedType: ctx.dctOrNil(xd.DiagCodedType),
			PhysicalType:  mapPhysicalType(xd.PhysicalType),
			CompuMethod:   mapCompuMethod(xd.CompuMethod),
			InternalConstr: mapConstr(xd.InternalConstr),
			PhysConstr:     mapConstr(xd.PhysConstr),
		}
		if xd.UnitRef != "" {
			if u, ok := ctx.idx.units[xd.UnitRef]; ok {
				nd.UnitRef = ctx.mapUnit(u)
			}
		}
		out.Data.NormalDop = nd
	}
	return out
}

func (ctx *mapCtx) mapDtcDop(xd *xmlDtcDop, m *MergedLayer) ir.Dop {
	out := ir.Dop{DopType: ir.DopDtc, ShortName: xd.ShortName, SDGs: mapSDGs(xd.SDGs)}
	data := &ir.DtcDopData{
		DiagCodedType: ctx.dctOrNil(xd.DiagCodedType),
		PhysicalType:  mapPhysicalType(xd.PhysicalType),
		CompuMethod:   mapCompuMethod(xd.CompuMethod),
		IsVisible:     xd.IsVisible,
	}
	for _, d := range xd.Dtcs {
		data.Dtcs = append(data.Dtcs, ir.Dtc{
			ShortName:          d.ShortName,
			TroubleCode:        d.TroubleCode,
			DisplayTroubleCode: d.DisplayTroubleCode,
			Text:               mapText(d.Text),
			Level:              d.Level,
			SDGs:               mapSDGs(d.SDGs),
			IsTemporary:        d.IsTemporary,
		})
	}
	out.Data.DtcDop = data
	return out
}

func (ctx *mapCtx) dctOrNil(x *xmlDiagCodedType) *ir.DiagCodedType {
	if x == nil {
		return nil
	}
	d := ctx.mapDiagCodedType(x)
	return &d
}

func (ctx *mapCtx) mapField(xd *xmlDop, m *MergedLayer) *ir.Field {
	f := &ir.Field{IsVisible: xd.IsVisible}
	if xd.FieldBasicStructureRef != "" {
		if xdop, ok := ctx.idx.dops[xd.FieldBasicStructureRef]; ok {
			dop := ctx.mapDopRaw(xdop, m)
			f.BasicStructure = &dop
		}
	}
	if xd.FieldEnvDataDescRef != "" {
		if xdop, ok := ctx.idx.dops[xd.FieldEnvDataDescRef]; ok {
			dop := ctx.mapDopRaw(xdop, m)
			f.EnvDataDesc = &dop
		}
	}
	return f
}

func (ctx *mapCtx) mapDefaultCase(c *xmlCase, m *MergedLayer) *ir.DefaultCase {
	out := &ir.DefaultCase{ShortName: c.ShortName, LongName: mapText(c.LongName)}
	if xdop, ok := ctx.idx.dops[c.StructureRef]; ok {
		dop := ctx.mapDopRaw(xdop, m)
		out.Structure = &dop
	}
	return out
}

func (ctx *mapCtx) mapCase(c xmlCase, m *MergedLayer) ir.Case {
	out := ir.Case{ShortName: c.ShortName, LongName: mapText(c.LongName), LowerLimit: mapLimit(c.LowerLimit), UpperLimit: mapLimit(c.UpperLimit)}
	if xdop, ok := ctx.idx.dops[c.StructureRef]; ok {
		dop := ctx.mapDopRaw(xdop, m)
		out.Structure = &dop
	}
	return out
}

func (ctx *mapCtx) mapUnit(u *xmlUnit) *ir.Unit {
	out := &ir.Unit{ShortName: u.ShortName, DisplayName: u.DisplayName, FactorSiToUnit: u.FactorSiToUnit, OffsetSiToUnit: u.OffsetSiToUnit}
	if pd, ok := ctx.idx.physicalDimensions[u.PhysicalDimensionRef]; ok {
		out.PhysicalDimension = mapPhysicalDimension(pd)
	}
	return out
}

func mapPhysicalDimension(pd *xmlPhysicalDimension) *ir.PhysicalDimension {
	if pd == nil {
		return nil
	}
	return &ir.PhysicalDimension{
		ShortName: pd.ShortName, LongName: mapText(pd.LongName),
		LengthExp: pd.LengthExp, MassExp: pd.MassExp, TimeExp: pd.TimeExp,
		CurrentExp: pd.CurrentExp, TemperatureExp: pd.TemperatureExp,
		MolarAmountExp: pd.MolarAmountExp, LuminousIntensityExp: pd.LuminousIntensityExp,
	}
}

func (ctx *mapCtx) mapDiagCodedType(x *xmlDiagCodedType) ir.DiagCodedType {
	if x == nil {
		return ir.DiagCodedType{}
	}
	out := ir.DiagCodedType{
		TypeName:           mapDiagCodedTypeName(x.XsiType),
		BaseTypeEncoding:   x.BaseTypeEncoding,
		BaseDataType:       mapDataType(x.BaseDataType),
		IsHighLowByteOrder: x.IsHighLowByteOrder,
	}
	switch out.TypeName {
	case ir.LeadingLengthInfoType:
		bl := uint32(0)
		if x.BitLength != nil {
			bl = *x.BitLength
		}
		out.Data.LeadingLength = &ir.LeadingLengthData{BitLength: bl}
	case ir.MinMaxLengthType:
		minL := uint32(0)
		if x.MinLength != nil {
			minL = *x.MinLength
		}
		out.Data.MinMax = &ir.MinMaxData{MinLength: minL, MaxLength: x.MaxLength, Termination: mapTermination(x.Termination)}
	case ir.ParamLengthInfoType:
		// LENGTH-KEY-REF names the sibling LENGTH-KEY param in the
		// enclosing structure; it is typically declared earlier in the
		// same PARAMS list, so the cache populated by mapParam as it
		// walks that list resolves it (spec.md §3.5 "Length-key params").
		pld := &ir.ParamLengthData{}
		if n, err := strconv.ParseUint(x.LengthKeyRef, 10, 32); err == nil {
			pld.LengthKey = ctx.paramsByID[uint32(n)]
		}
		out.Data.ParamLength = pld
	default:
		bl := uint32(0)
		if x.BitLength != nil {
			bl = *x.BitLength
		}
		var mask []byte
		if x.BitMask != "" {
			mask = []byte(x.BitMask)
		}
		out.Data.StandardLength = &ir.StandardLengthData{BitLength: bl, BitMask: mask, Condensed: x.Condensed}
	}
	return out
}

func mapPhysicalType(x *xmlPhysicalType) *ir.PhysicalType {
	if x == nil {
		return nil
	}
	return &ir.PhysicalType{Precision: x.Precision, BaseDataType: mapPhysicalTypeDataType(x.BaseDataType), DisplayRadix: mapRadix(x.DisplayRadix)}
}

func mapConstr(x *xmlConstr) *ir.InternalConstr {
	if x == nil {
		return nil
	}
	out := &ir.InternalConstr{LowerLimit: mapLimit(x.LowerLimit), UpperLimit: mapLimit(x.UpperLimit)}
	for _, sc := range x.ScaleConstrs {
		out.ScaleConstrs = append(out.ScaleConstrs, ir.ScaleConstr{
			ShortLabel: mapText(sc.ShortLabel), LowerLimit: mapLimit(sc.LowerLimit), UpperLimit: mapLimit(sc.UpperLimit), Validity: mapValidType(sc.Validity),
		})
	}
	return out
}

func mapLimit(x *xmlLimit) *ir.Limit {
	if x == nil {
		return nil
	}
	return &ir.Limit{Value: x.Value, IntervalType: mapIntervalType(x.IntervalType)}
}

func mapCompuMethod(x *xmlCompuMethod) *ir.CompuMethod {
	if x == nil {
		return nil
	}
	out := &ir.CompuMethod{Category: mapCompuCategory(x.Category)}
	if x.InternalToPhys != nil {
		out.InternalToPhys = &ir.CompuInternalToPhys{
			CompuScales:       mapCompuScales(x.InternalToPhys.Scales),
			ProgCode:          progCodeOrNil(x.InternalToPhys.ProgCode),
			CompuDefaultValue: mapCompuDefault(x.InternalToPhys.DefaultValue),
		}
	}
	if x.PhysToInternal != nil {
		out.PhysToInternal = &ir.CompuPhysToInternal{
			ProgCode:          progCodeOrNil(x.PhysToInternal.ProgCode),
			CompuScales:       mapCompuScales(x.PhysToInternal.Scales),
			CompuDefaultValue: mapCompuDefault(x.PhysToInternal.DefaultValue),
		}
	}
	return out
}

func progCodeOrNil(p *xmlProgCode) *ir.ProgCode {
	if p == nil {
		return nil
	}
	pc := mapProgCode(*p)
	return &pc
}

func mapCompuDefault(v *xmlCompuValues) *ir.CompuDefaultValue {
	if v == nil {
		return nil
	}
	return &ir.CompuDefaultValue{Values: mapCompuValues(v)}
}

func mapCompuValues(v *xmlCompuValues) *ir.CompuValues {
	if v == nil {
		return nil
	}
	return &ir.CompuValues{V: v.V, VT: v.VT, VTTI: v.VTTI}
}

func mapCompuScales(scales []xmlCompuScale) []ir.CompuScale {
	var out []ir.CompuScale
	for _, s := range scales {
		out = append(out, ir.CompuScale{
			ShortLabel:     mapText(s.ShortLabel),
			LowerLimit:     mapLimit(s.LowerLimit),
			UpperLimit:     mapLimit(s.UpperLimit),
			InverseValues:  mapCompuValues(s.CompuInverseValue),
			Consts:         mapCompuValues(s.CompuConst),
			RationalCoEffs: mapRationalCoEffs(s),
		})
	}
	return out
}

func mapRationalCoEffs(s xmlCompuScale) *ir.CompuRationalCoEffs {
	if len(s.CompuNumerator) == 0 && len(s.CompuDenominator) == 0 {
		return nil
	}
	return &ir.CompuRationalCoEffs{Numerator: s.CompuNumerator, Denominator: s.CompuDenominator}
}

// --- enum string <-> ODX attribute-value conversions. Unknown values fall
// back to the canonical default case (spec.md §9 "Forward compatibility").

func mapDiagCodedTypeName(s string) ir.DiagCodedTypeName {
	switch strings.ToUpper(s) {
	case "LEADING-LENGTH-INFO-TYPE":
		return ir.LeadingLengthInfoType
	case "PARAM-LENGTH-INFO-TYPE":
		return ir.ParamLengthInfoType
	case "MIN-MAX-LENGTH-TYPE":
		return ir.MinMaxLengthType
	default:
		return ir.StandardLengthType
	}
}

func mapDataType(s string) ir.DataType {
	switch strings.ToUpper(s) {
	case "A_INT32":
		return ir.AInt32
	case "A_FLOAT32":
		return ir.AFloat32
	case "A_ASCIISTRING":
		return ir.AAsciiString
	case "A_UTF8STRING":
		return ir.AUtf8String
	case "A_UNICODE2STRING":
		return ir.AUnicode2String
	case "A_BYTEFIELD":
		return ir.ABytefield
	case "A_FLOAT64":
		return ir.AFloat64
	default:
		return ir.AUint32
	}
}

func mapPhysicalTypeDataType(s string) ir.PhysicalTypeDataType {
	switch strings.ToUpper(s) {
	case "A_INT32":
		return ir.PhysAInt32
	case "A_FLOAT32":
		return ir.PhysAFloat32
	case "A_ASCIISTRING":
		return ir.PhysAAsciiString
	case "A_UTF8STRING":
		return ir.PhysAUtf8String
	case "A_UNICODE2STRING":
		return ir.PhysAUnicode2String
	case "A_BYTEFIELD":
		return ir.PhysABytefield
	case "A_FLOAT64":
		return ir.PhysAFloat64
	default:
		return ir.PhysAUint32
	}
}

func mapTermination(s string) ir.Termination {
	switch strings.ToUpper(s) {
	case "ZERO":
		return ir.TerminationZero
	case "HEX-FF":
		return ir.TerminationHexFf
	default:
		return ir.TerminationEndOfPdu
	}
}

func mapIntervalType(s string) ir.IntervalType {
	switch strings.ToUpper(s) {
	case "CLOSED":
		return ir.IntervalClosed
	case "INFINITE":
		return ir.IntervalInfinite
	default:
		return ir.IntervalOpen
	}
}

func mapCompuCategory(s string) ir.CompuCategory {
	switch strings.ToUpper(s) {
	case "LINEAR":
		return ir.CompuLinear
	case "SCALE-LINEAR":
		return ir.CompuScaleLinear
	case "TEXTTABLE":
		return ir.CompuTextTable
	case "COMPUCODE":
		return ir.CompuCode
	case "TAB-INTP":
		return ir.CompuTabIntp
	case "RAT-FUNC":
		return ir.CompuRatFunc
	case "SCALE-RAT-FUNC":
		return ir.CompuScaleRatFunc
	default:
		return ir.CompuIdentical
	}
}

func mapRadix(s string) ir.Radix {
	switch strings.ToUpper(s) {
	case "DEC":
		return ir.RadixDec
	case "BIN":
		return ir.RadixBin
	case "OCT":
		return ir.RadixOct
	default:
		return ir.RadixHex
	}
}

func mapValidType(s string) ir.ValidType {
	switch strings.ToUpper(s) {
	case "NOT-VALID":
		return ir.ValidTypeNotValid
	case "NOT-DEFINED":
		return ir.ValidTypeNotDefined
	case "NOT-AVAILABLE":
		return ir.ValidTypeNotAvailable
	default:
		return ir.ValidTypeValid
	}
}

func mapDiagClassType(s string) ir.DiagClassType {
	switch strings.ToUpper(s) {
	case "STOP-COMM":
		return ir.DiagClassStopComm
	case "VARIANT-IDENTIFICATION":
		return ir.DiagClassVariantIdentification
	case "READ-DYN-DEFINED-MESSAGE":
		return ir.DiagClassReadDynDefMessage
	case "DYN-DEFINE-MESSAGE":
		return ir.DiagClassDynDefMessage
	case "CLEAR-DYN-DEFINED-MESSAGE":
		return ir.DiagClassClearDynDefMessage
	default:
		return ir.DiagClassStartComm
	}
}

func mapAddressing(s string) ir.Addressing {
	switch strings.ToUpper(s) {
	case "PHYSICAL":
		return ir.AddressingPhysical
	case "FUNCTIONAL-OR-PHYSICAL":
		return ir.AddressingFunctionalOrPhysical
	default:
		return ir.AddressingFunctional
	}
}

func mapTransmissionMode(s string) ir.TransmissionMode {
	switch strings.ToUpper(s) {
	case "RECEIVE-ONLY":
		return ir.TransmissionReceiveOnly
	case "SEND-AND-RECEIVE":
		return ir.TransmissionSendAndReceive
	case "SEND-OR-RECEIVE":
		return ir.TransmissionSendOrReceive
	default:
		return ir.TransmissionSendOnly
	}
}

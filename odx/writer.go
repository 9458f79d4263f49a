package odx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// WriteOptions configures Write (spec.md §4.5).
type WriteOptions struct {
	// Indent, when non-empty, is passed to xml.MarshalIndent.
	Indent string
}

// Write emits one ODX document from an ir.Database. Unlike Read, Write
// never walks PARENT-REFS: each Variant/FunctionalGroup serializes exactly
// the items its DiagLayer already owns, with no inheritance expansion or
// contraction (spec.md §4.5 "Writer never re-derives inheritance -- the IR
// already holds the flattened view callers want on disk").
func Write(d *ir.Database, opts WriteOptions) ([]byte, error) {
	w := &writeCtx{idGen: make(map[string]int)}
	root := xmlContainer{
		XMLName: xml.Name{Local: "ODX"},
		Container: xmlLayerContainer{
			ShortName: d.EcuName,
		},
	}
	for i := range d.Variants {
		root.Container.BaseVariants, root.Container.EcuVariants = w.appendVariant(
			&d.Variants[i], root.Container.BaseVariants, root.Container.EcuVariants)
	}
	for i := range d.FunctionalGroups {
		root.Container.FunctionalGroups = append(root.Container.FunctionalGroups, w.writeDiagLayer(&d.FunctionalGroups[i].DiagLayer, nil))
	}

	var out []byte
	var err error
	if opts.Indent != "" {
		out, err = xml.MarshalIndent(root, "", opts.Indent)
	} else {
		out, err = xml.Marshal(root)
	}
	if err != nil {
		return nil, fmt.Errorf("odx: marshal failed: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// writeCtx synthesizes stable, deterministic IDs for elements the IR does
// not itself carry an ODX @ID for (diag-comms, requests, responses) --
// spec.md §4.5 "Synthesized identifiers".
type writeCtx struct {
	idGen map[string]int
}

func (w *writeCtx) nextID(prefix string) string {
	w.idGen[prefix]++
	return fmt.Sprintf("%s_%d", prefix, w.idGen[prefix])
}

func (w *writeCtx) appendVariant(v *ir.Variant, base, ecu []xmlDiagLayer) ([]xmlDiagLayer, []xmlDiagLayer) {
	parentRefs := make([]xmlParentRef, 0, len(v.ParentRefs))
	for _, pr := range v.ParentRefs {
		parentRefs = append(parentRefs, writeParentRef(pr))
	}
	xl := w.writeDiagLayer(&v.DiagLayer, parentRefs)
	xl.IsBaseVariant = v.IsBaseVariant
	for _, vp := range v.VariantPatterns {
		xl.VariantPatterns = append(xl.VariantPatterns, writeVariantPattern(vp))
	}
	if v.IsBaseVariant {
		return append(base, xl), ecu
	}
	return base, append(ecu, xl)
}

func writeVariantPattern(vp ir.VariantPattern) xmlVariantPattern {
	out := xmlVariantPattern{}
	for _, mp := range vp.MatchingParameters {
		e := xmlMatchingParameter{ExpectedValue: mp.ExpectedValue}
		if mp.DiagService != nil {
			e.DiagComSNREF = mp.DiagService.DiagComm.ShortName
		}
		if mp.OutParam != nil {
			e.OutParamIfSNREF = mp.OutParam.ShortName
		}
		out.MatchingParameters = append(out.MatchingParameters, e)
	}
	return out
}

func writeParentRef(pr ir.ParentRef) xmlParentRef {
	out := xmlParentRef{
		NotInheritedDiagComms:          pr.NotInheritedDiagCommShortNames,
		NotInheritedVariables:          pr.NotInheritedVariablesShortNames,
		NotInheritedDops:               pr.NotInheritedDopsShortNames,
		NotInheritedTables:             pr.NotInheritedTablesShortNames,
		NotInheritedGlobalNegResponses: pr.NotInheritedGlobalNegResponsesShortNames,
	}
	switch pr.Ref.Kind {
	case ir.ParentRefVariant:
		if pr.Ref.Variant != nil {
			out.IDRef = pr.Ref.Variant.DiagLayer.ShortName
		}
	case ir.ParentRefProtocol:
		if pr.Ref.Protocol != nil {
			out.IDRef = pr.Ref.Protocol.DiagLayer.ShortName
		}
	case ir.ParentRefFunctionalGroup:
		if pr.Ref.FunctionalGroup != nil {
			out.IDRef = pr.Ref.FunctionalGroup.DiagLayer.ShortName
		}
	case ir.ParentRefTableDop:
		if pr.Ref.TableDop != nil {
			out.IDRef = pr.Ref.TableDop.ShortName
		}
	case ir.ParentRefEcuSharedData:
		if pr.Ref.EcuSharedData != nil {
			out.IDRef = pr.Ref.EcuSharedData.DiagLayer.ShortName
		}
	}
	return out
}

// writeDiagLayer assembles one layer's XML mirror, including its own
// data dictionary, but never its ancestors' (no inheritance on write).
func (w *writeCtx) writeDiagLayer(dl *ir.DiagLayer, parentRefs []xmlParentRef) xmlDiagLayer {
	out := xmlDiagLayer{
		ID:         "LAYER_" + sanitizeID(dl.ShortName),
		ShortName:  dl.ShortName,
		LongName:   writeText(dl.LongName),
		SDGs:       writeSDGs(dl.SDGs),
		ParentRefs: parentRefs,
	}
	for _, fc := range dl.FunctClasses {
		out.FunctClasses = append(out.FunctClasses, xmlFunctClass{ShortName: fc.ShortName})
	}
	for _, a := range dl.AdditionalAudiences {
		out.AdditionalAudiences = append(out.AdditionalAudiences, xmlAudienceTag{ShortName: a.ShortName, LongName: writeText(a.LongName)})
	}
	for _, sc := range dl.StateCharts {
		out.StateCharts = append(out.StateCharts, writeStateChart(sc))
	}
	for _, cpr := range dl.ComParamRefs {
		out.ComParamRefs = append(out.ComParamRefs, writeComParamRef(cpr))
	}

	dd := &xmlDataDictionarySpec{}
	dopSeen := make(map[string]bool)
	tableSeen := make(map[string]bool)
	var reqs []xmlRequest
	var posResp, negResp []xmlResponse

	for i := range dl.DiagServices {
		s := &dl.DiagServices[i]
		xs := w.writeDiagService(s, dd, dopSeen, tableSeen, &reqs, &posResp, &negResp)
		out.DiagComms.Entries = append(out.DiagComms.Entries, xmlDiagCommEntry{Kind: diagCommEntryService, Service: xs})
	}
	for i := range dl.SingleEcuJobs {
		xj := w.writeSingleEcuJob(&dl.SingleEcuJobs[i])
		out.DiagComms.Entries = append(out.DiagComms.Entries, xmlDiagCommEntry{Kind: diagCommEntryJob, Job: xj})
	}
	out.Requests = reqs
	out.PosResponses = posResp
	out.NegResponses = negResp
	if len(dd.DataObjectProps)+len(dd.Structures)+len(dd.EndOfPduFields)+len(dd.StaticFields)+
		len(dd.DynamicLengthFields)+len(dd.DynamicEndmarkerFields)+len(dd.EnvDataDescs)+
		len(dd.EnvDatas)+len(dd.Muxes)+len(dd.DtcDops)+len(dd.Tables) > 0 {
		out.DiagDataDictionarySpec = dd
	}
	return out
}

// writeTableDop appends t to dd.Tables the first time it's referenced by a
// TABLE-KEY param, mirroring writeDop's dedup-by-short-name.
func writeTableDop(dd *xmlDataDictionarySpec, t *ir.TableDop, tableSeen map[string]bool) {
	if t == nil || tableSeen[t.ShortName] {
		return
	}
	tableSeen[t.ShortName] = true
	xt := xmlTableDop{
		ShortName:   t.ShortName,
		LongName:    writeText(t.LongName),
		Semantic:    t.Semantic,
		KeyLabel:    t.KeyLabel,
		StructLabel: t.StructLabel,
		SDGs:        writeSDGs(t.SDGs),
	}
	if t.KeyDop != nil {
		xt.KeyDopRef = "DOP_" + sanitizeID(t.KeyDop.ShortName)
	}
	for _, r := range t.Rows {
		xt.Rows = append(xt.Rows, xmlTableRow{
			ShortName:    r.ShortName,
			LongName:     writeText(r.LongName),
			Key:          r.Key,
			SDGs:         writeSDGs(r.SDGs),
			Semantic:     r.Semantic,
			IsExecutable: r.IsExecutable,
			IsMandatory:  r.IsMandatory,
			IsFinal:      r.IsFinal,
		})
		if r.Audience != nil {
			xt.Rows[len(xt.Rows)-1].Audience = writeAudience(r.Audience)
		}
		if r.Dop != nil {
			xt.Rows[len(xt.Rows)-1].DopRef = "DOP_" + sanitizeID(r.Dop.ShortName)
		}
		if r.Structure != nil {
			xt.Rows[len(xt.Rows)-1].StructureRef = "DOP_" + sanitizeID(r.Structure.ShortName)
		}
	}
	for _, c := range t.DiagCommConnectors {
		xc := xmlTableConnector{Semantic: c.Semantic}
		switch c.DiagComm.Kind {
		case ir.DiagServiceOrJobService:
			if c.DiagComm.DiagService != nil {
				xc.DiagCommSNREF = c.DiagComm.DiagService.DiagComm.ShortName
			}
		case ir.DiagServiceOrJobJob:
			if c.DiagComm.Job != nil {
				xc.DiagCommSNREF = c.DiagComm.Job.DiagComm.ShortName
			}
		}
		xt.DiagCommConnectors = append(xt.DiagCommConnectors, xc)
	}
	dd.Tables = append(dd.Tables, xt)
}

// writeDop appends xd to the correct dictionary slice by DopType and
// returns its short name, deduplicating on dopSeen so a DOP referenced by
// several params is only emitted once (spec.md §4.5 "one entry per DOP").
func writeDop(dd *xmlDataDictionarySpec, dop *ir.Dop, dopSeen map[string]bool) string {
	if dop == nil {
		return ""
	}
	xd := writeDopRaw(dop)
	if dopSeen[xd.ShortName] {
		return xd.ShortName
	}
	dopSeen[xd.ShortName] = true
	switch dop.DopType {
	case ir.DopStructure:
		dd.Structures = append(dd.Structures, xd)
	case ir.DopEndOfPduField:
		dd.EndOfPduFields = append(dd.EndOfPduFields, xd)
	case ir.DopStaticField:
		dd.StaticFields = append(dd.StaticFields, xd)
	case ir.DopDynamicLengthField:
		dd.DynamicLengthFields = append(dd.DynamicLengthFields, xd)
	case ir.DopDynamicEndMarkerField:
		dd.DynamicEndmarkerFields = append(dd.DynamicEndmarkerFields, xd)
	case ir.DopEnvDataDesc:
		dd.EnvDataDescs = append(dd.EnvDataDescs, xd)
	case ir.DopEnvData:
		dd.EnvDatas = append(dd.EnvDatas, xd)
	case ir.DopMux:
		dd.Muxes = append(dd.Muxes, xd)
	case ir.DopDtc:
		if dop.Data.DtcDop != nil {
			dd.DtcDops = append(dd.DtcDops, xmlDtcDop{xmlDop: xd, Dtcs: writeDtcs(dop.Data.DtcDop.Dtcs)})
		}
	default:
		dd.DataObjectProps = append(dd.DataObjectProps, xd)
	}
	return xd.ShortName
}

func writeDtcs(dtcs []ir.Dtc) []xmlDtc {
	var out []xmlDtc
	for _, d := range dtcs {
		out = append(out, xmlDtc{
			ShortName:          d.ShortName,
			TroubleCode:        d.TroubleCode,
			DisplayTroubleCode: d.DisplayTroubleCode,
			Text:               writeText(d.Text),
			Level:              d.Level,
			SDGs:               writeSDGs(d.SDGs),
			IsTemporary:        d.IsTemporary,
		})
	}
	return out
}

func writeDopRaw(dop *ir.Dop) xmlDop {
	xd := xmlDop{ShortName: dop.ShortName, SDGs: writeSDGs(dop.SDGs)}
	switch dop.DopType {
	case ir.DopStructure:
		if sd := dop.Data.Structure; sd != nil {
			xd.ByteSize = sd.ByteSize
			xd.IsVisible = sd.IsVisible
			for i := range sd.Params {
				xd.Params = append(xd.Params, writeParam(&sd.Params[i]))
			}
		}
	case ir.DopEndOfPduField:
		if f := dop.Data.EndOfPduField; f != nil {
			xd.MaxNumberOfItems = f.MaxNumberOfItems
			xd.MinNumberOfItems = f.MinNumberOfItems
			writeFieldInto(&xd, f.Field)
		}
	case ir.DopStaticField:
		if f := dop.Data.StaticField; f != nil {
			xd.FixedNumberOfItems = f.FixedNumberOfItems
			xd.ItemByteSize = f.ItemByteSize
			writeFieldInto(&xd, f.Field)
		}
	case ir.DopDynamicLengthField, ir.DopDynamicEndMarkerField:
		if f := dop.Data.DynamicLengthField; f != nil {
			xd.Offset = f.Offset
			writeFieldInto(&xd, f.Field)
			if det := f.DetermineNumberOfItems; det != nil {
				bp, bitp := det.BytePosition, det.BitPosition
				xd.DetByteBitPosition = &bp
				xd.DetBitPosition = &bitp
				if det.Dop != nil {
					xd.DetDopRef = "DOP_" + sanitizeID(det.Dop.ShortName)
				}
			}
		}
	case ir.DopEnvDataDesc:
		if edd := dop.Data.EnvDataDesc; edd != nil {
			xd.ParamShortName = edd.ParamShortName
			xd.ParamPathShortName = edd.ParamPathShortName
			for i := range edd.EnvDatas {
				xd.EnvDataRefs = append(xd.EnvDataRefs, "DOP_"+sanitizeID(edd.EnvDatas[i].ShortName))
			}
		}
	case ir.DopEnvData:
		if ed := dop.Data.EnvData; ed != nil {
			xd.DtcValues = ed.DtcValues
			for i := range ed.Params {
				xd.Params = append(xd.Params, writeParam(&ed.Params[i]))
			}
		}
	case ir.DopMux:
		if mux := dop.Data.MuxDop; mux != nil {
			xd.BytePosition = mux.BytePosition
			xd.IsVisible = mux.IsVisible
			if mux.SwitchKey != nil {
				xd.SwitchKeyBitPosition = mux.SwitchKey.BitPosition
				if mux.SwitchKey.Dop != nil {
					xd.SwitchKeyDopRef = "DOP_" + sanitizeID(mux.SwitchKey.Dop.ShortName)
				}
			}
			if mux.DefaultCase != nil {
				xd.DefaultCase = writeCase(ir.Case{ShortName: mux.DefaultCase.ShortName, LongName: mux.DefaultCase.LongName, Structure: mux.DefaultCase.Structure})
			}
			for _, c := range mux.Cases {
				xd.Cases = append(xd.Cases, *writeCase(c))
			}
		}
	default: // DopRegular -> DATA-OBJECT-PROP
		if nd := dop.Data.NormalDop; nd != nil {
			xd.DiagCodedType = writeDiagCodedType(nd.DiagCodedType)
			xd.PhysicalType = writePhysicalType(nd.PhysicalType)
			xd.CompuMethod = writeCompuMethod(nd.CompuMethod)
			xd.InternalConstr = writeConstr(nd.InternalConstr)
			xd.PhysConstr = writeConstr(nd.PhysConstr)
			if nd.UnitRef != nil {
				xd.UnitRef = "UNIT_" + sanitizeID(nd.UnitRef.ShortName)
			}
		}
	}
	return xd
}

func writeFieldInto(xd *xmlDop, f *ir.Field) {
	if f == nil {
		return
	}
	xd.IsVisible = f.IsVisible
	if f.BasicStructure != nil {
		xd.FieldBasicStructureRef = "DOP_" + sanitizeID(f.BasicStructure.ShortName)
	}
	if f.EnvDataDesc != nil {
		xd.FieldEnvDataDescRef = "DOP_" + sanitizeID(f.EnvDataDesc.ShortName)
	}
}

func writeCase(c ir.Case) *xmlCase {
	out := &xmlCase{ShortName: c.ShortName, LongName: writeText(c.LongName), LowerLimit: writeLimit(c.LowerLimit), UpperLimit: writeLimit(c.UpperLimit)}
	if c.Structure != nil {
		out.StructureRef = "DOP_" + sanitizeID(c.Structure.ShortName)
	}
	return out
}

func (w *writeCtx) writeDiagService(s *ir.DiagService, dd *xmlDataDictionarySpec, dopSeen, tableSeen map[string]bool, reqs *[]xmlRequest, posResp, negResp *[]xmlResponse) *xmlDiagService {
	out := &xmlDiagService{
		xmlDiagComm:      w.writeDiagComm(&s.DiagComm),
		IsCyclic:         s.IsCyclic,
		IsMultiple:       s.IsMultiple,
		Addressing:       writeAddressing(s.Addressing),
		TransmissionMode: writeTransmissionMode(s.TransmissionMode),
	}
	for _, cpr := range s.ComParamRefs {
		out.ComParamRefs = append(out.ComParamRefs, writeComParamRef(cpr))
	}
	if s.Request != nil {
		reqID := w.nextID("RQ")
		xr := xmlRequest{ID: reqID, SDGs: writeSDGs(s.Request.SDGs)}
		for i := range s.Request.Params {
			xr.Params = append(xr.Params, writeParamWithDop(&s.Request.Params[i], dd, dopSeen, tableSeen))
		}
		out.RequestRef = reqID
		*reqs = append(*reqs, xr)
	}
	for i := range s.PosResponses {
		id := w.nextID("PR")
		*posResp = append(*posResp, writeResponse(id, &s.PosResponses[i], dd, dopSeen, tableSeen))
		out.PosResponseRefs = append(out.PosResponseRefs, id)
	}
	for i := range s.NegResponses {
		id := w.nextID("NR")
		*negResp = append(*negResp, writeResponse(id, &s.NegResponses[i], dd, dopSeen, tableSeen))
		out.NegResponseRefs = append(out.NegResponseRefs, id)
	}
	return out
}

func writeResponse(id string, r *ir.Response, dd *xmlDataDictionarySpec, dopSeen, tableSeen map[string]bool) xmlResponse {
	xr := xmlResponse{ID: id, ShortName: id, SDGs: writeSDGs(r.SDGs)}
	for i := range r.Params {
		xr.Params = append(xr.Params, writeParamWithDop(&r.Params[i], dd, dopSeen, tableSeen))
	}
	return xr
}

func writeParamWithDop(p *ir.Param, dd *xmlDataDictionarySpec, dopSeen, tableSeen map[string]bool) xmlParam {
	xp := writeParam(p)
	switch p.ParamType {
	case ir.ParamValue:
		if p.Data.Value != nil && p.Data.Value.Dop != nil {
			xp.DopRef = "DOP_" + sanitizeID(writeDop(dd, p.Data.Value.Dop, dopSeen))
		}
	case ir.ParamSystem:
		if p.Data.System != nil && p.Data.System.Dop != nil {
			xp.DopRef = "DOP_" + sanitizeID(writeDop(dd, p.Data.System.Dop, dopSeen))
		}
	case ir.ParamPhysConst:
		if p.Data.PhysConst != nil && p.Data.PhysConst.Dop != nil {
			xp.DopRef = "DOP_" + sanitizeID(writeDop(dd, p.Data.PhysConst.Dop, dopSeen))
		}
	case ir.ParamLengthKey:
		if p.Data.LengthKeyRef != nil && p.Data.LengthKeyRef.Dop != nil {
			xp.DopRef = "DOP_" + sanitizeID(writeDop(dd, p.Data.LengthKeyRef.Dop, dopSeen))
		}
	case ir.ParamTableKey:
		if d := p.Data.TableKey; d != nil && d.TableDop != nil {
			writeTableDop(dd, d.TableDop, tableSeen)
		}
	}
	return xp
}

func writeParam(p *ir.Param) xmlParam {
	xp := xmlParam{
		ID:                   p.ID,
		ShortName:            p.ShortName,
		Semantic:             p.Semantic,
		SDGs:                 writeSDGs(p.SDGs),
		PhysicalDefaultValue: p.PhysicalDefaultValue,
		BytePosition:         p.BytePosition,
		BitPosition:          p.BitPosition,
	}
	switch p.ParamType {
	case ir.ParamCodedConst:
		xp.XsiType = "CODED-CONST"
		if d := p.Data.CodedConst; d != nil {
			xp.CodedValue = d.CodedValue
			xp.DiagCodedType = writeDiagCodedTypeValue(d.DiagCodedType)
		}
	case ir.ParamDynamic:
		xp.XsiType = "DYNAMIC"
	case ir.ParamLengthKey:
		xp.XsiType = "LENGTH-KEY"
	case ir.ParamMatchingRequestParam:
		xp.XsiType = "MATCHING-REQUEST-PARAM"
		if d := p.Data.MatchingRequestParam; d != nil {
			xp.RequestBytePos = &d.RequestBytePos
			xp.ByteLength = &d.ByteLength
		}
	case ir.ParamNrcConst:
		xp.XsiType = "NRC-CONST"
		if d := p.Data.NrcConst; d != nil {
			xp.CodedValues = d.CodedValues
			xp.DiagCodedType = writeDiagCodedTypeValue(d.DiagCodedType)
		}
	case ir.ParamPhysConst:
		xp.XsiType = "PHYS-CONST"
		if d := p.Data.PhysConst; d != nil {
			xp.PhysConstantValue = d.PhysConstantValue
		}
	case ir.ParamReserved:
		xp.XsiType = "RESERVED"
		if d := p.Data.Reserved; d != nil {
			xp.BitLength = &d.BitLength
		}
	case ir.ParamSystem:
		xp.XsiType = "SYSTEM"
		if d := p.Data.System; d != nil {
			xp.SysParam = d.SysParam
		}
	case ir.ParamTableEntry:
		xp.XsiType = "TABLE-ENTRY"
		if d := p.Data.TableEntry; d != nil {
			if d.Target == ir.TableEntryStruct {
				xp.TableEntryTarget = "STRUCT"
			} else {
				xp.TableEntryTarget = "KEY"
			}
			if d.TableRow != nil {
				xp.TableRowSNREF = d.TableRow.ShortName
			}
		}
	case ir.ParamTableKey:
		xp.XsiType = "TABLE-KEY"
		if d := p.Data.TableKey; d != nil {
			switch d.ReferenceKind {
			case ir.TableKeyReferenceTableRow:
				if d.TableRow != nil {
					xp.TableRowSNREF = d.TableRow.ShortName
				}
			case ir.TableKeyReferenceTableDop:
				if d.TableDop != nil {
					xp.TableDopRef = "TABLE_" + sanitizeID(d.TableDop.ShortName)
				}
			}
		}
	case ir.ParamTableStruct:
		xp.XsiType = "TABLE-STRUCT"
	default:
		xp.XsiType = "VALUE"
	}
	return xp
}

func writeDiagCodedTypeValue(dct ir.DiagCodedType) *xmlDiagCodedType {
	d := writeDiagCodedType(&dct)
	return d
}

func writeDiagCodedType(dct *ir.DiagCodedType) *xmlDiagCodedType {
	if dct == nil {
		return nil
	}
	out := &xmlDiagCodedType{
		BaseTypeEncoding:   dct.BaseTypeEncoding,
		BaseDataType:       writeDataType(dct.BaseDataType),
		IsHighLowByteOrder: dct.IsHighLowByteOrder,
	}
	switch dct.TypeName {
	case ir.LeadingLengthInfoType:
		out.XsiType = "LEADING-LENGTH-INFO-TYPE"
		if d := dct.Data.LeadingLength; d != nil {
			out.BitLength = &d.BitLength
		}
	case ir.MinMaxLengthType:
		out.XsiType = "MIN-MAX-LENGTH-TYPE"
		if d := dct.Data.MinMax; d != nil {
			out.MinLength = &d.MinLength
			out.MaxLength = d.MaxLength
			out.Termination = writeTermination(d.Termination)
		}
	case ir.ParamLengthInfoType:
		out.XsiType = "PARAM-LENGTH-INFO-TYPE"
		if d := dct.Data.ParamLength; d != nil && d.LengthKey != nil {
			out.LengthKeyRef = strconv.FormatUint(uint64(d.LengthKey.ID), 10)
		}
	default:
		out.XsiType = "STANDARD-LENGTH-TYPE"
		if d := dct.Data.StandardLength; d != nil {
			out.BitLength = &d.BitLength
			out.BitMask = string(d.BitMask)
			out.Condensed = d.Condensed
		}
	}
	return out
}

func writePhysicalType(pt *ir.PhysicalType) *xmlPhysicalType {
	if pt == nil {
		return nil
	}
	return &xmlPhysicalType{Precision: pt.Precision, BaseDataType: writePhysicalTypeDataType(pt.BaseDataType), DisplayRadix: writeRadix(pt.DisplayRadix)}
}

func writeConstr(c *ir.InternalConstr) *xmlConstr {
	if c == nil {
		return nil
	}
	out := &xmlConstr{LowerLimit: writeLimit(c.LowerLimit), UpperLimit: writeLimit(c.UpperLimit)}
	for _, sc := range c.ScaleConstrs {
		out.ScaleConstrs = append(out.ScaleConstrs, xmlScaleConstr{
			ShortLabel: writeText(sc.ShortLabel), LowerLimit: writeLimit(sc.LowerLimit), UpperLimit: writeLimit(sc.UpperLimit), Validity: writeValidType(sc.Validity),
		})
	}
	return out
}

func writeLimit(l *ir.Limit) *xmlLimit {
	if l == nil {
		return nil
	}
	return &xmlLimit{Value: l.Value, IntervalType: writeIntervalType(l.IntervalType)}
}

func writeCompuMethod(cm *ir.CompuMethod) *xmlCompuMethod {
	if cm == nil {
		return nil
	}
	out := &xmlCompuMethod{Category: writeCompuCategory(cm.Category)}
	if cm.InternalToPhys != nil {
		out.InternalToPhys = &xmlCompuScales{
			Scales:       writeCompuScales(cm.InternalToPhys.CompuScales),
			DefaultValue: writeCompuDefault(cm.InternalToPhys.CompuDefaultValue),
		}
	}
	if cm.PhysToInternal != nil {
		out.PhysToInternal = &xmlCompuScales{
			Scales:       writeCompuScales(cm.PhysToInternal.CompuScales),
			DefaultValue: writeCompuDefault(cm.PhysToInternal.CompuDefaultValue),
		}
	}
	return out
}

func writeCompuDefault(v *ir.CompuDefaultValue) *xmlCompuValues {
	if v == nil {
		return nil
	}
	return writeCompuValues(v.Values)
}

func writeCompuValues(v *ir.CompuValues) *xmlCompuValues {
	if v == nil {
		return nil
	}
	return &xmlCompuValues{V: v.V, VT: v.VT, VTTI: v.VTTI}
}

func writeCompuScales(scales []ir.CompuScale) []xmlCompuScale {
	var out []xmlCompuScale
	for _, s := range scales {
		xs := xmlCompuScale{
			ShortLabel:        writeText(s.ShortLabel),
			LowerLimit:        writeLimit(s.LowerLimit),
			UpperLimit:        writeLimit(s.UpperLimit),
			CompuInverseValue: writeCompuValues(s.InverseValues),
			CompuConst:        writeCompuValues(s.Consts),
		}
		if s.RationalCoEffs != nil {
			xs.CompuNumerator = s.RationalCoEffs.Numerator
			xs.CompuDenominator = s.RationalCoEffs.Denominator
		}
		out = append(out, xs)
	}
	return out
}

func (w *writeCtx) writeDiagComm(c *ir.DiagComm) xmlDiagComm {
	out := xmlDiagComm{
		ID:            w.nextID("DC_" + sanitizeID(c.ShortName)),
		ShortName:     c.ShortName,
		LongName:      writeText(c.LongName),
		Semantic:      c.Semantic,
		SDGs:          writeSDGs(c.SDGs),
		DiagClassType: writeDiagClassType(c.DiagClassType),
		IsMandatory:   c.IsMandatory,
		IsExecutable:  c.IsExecutable,
		IsFinal:       c.IsFinal,
	}
	for _, fc := range c.FunctClasses {
		out.FunctClasses = append(out.FunctClasses, xmlFunctClass{ShortName: fc.ShortName})
	}
	for _, r := range c.PreConditionStateRefs {
		out.PreConditionStateRefs = append(out.PreConditionStateRefs, xmlStateRef{Value: r.Value, InParamIfShortName: r.InParamIfShortName})
	}
	for _, r := range c.StateTransitionRefs {
		out.StateTransitionRefs = append(out.StateTransitionRefs, xmlStateRef{Value: r.Value})
	}
	for _, p := range c.Protocols {
		out.ProtocolSNREFs = append(out.ProtocolSNREFs, p.DiagLayer.ShortName)
	}
	if c.Audience != nil {
		out.Audience = writeAudience(c.Audience)
	}
	return out
}

func writeAudience(a *ir.Audience) *xmlAudience {
	out := &xmlAudience{
		IsSupplier:      a.IsSupplier,
		IsDevelopment:   a.IsDevelopment,
		IsManufacturing: a.IsManufacturing,
		IsAfterSales:    a.IsAfterSales,
		IsAfterMarket:   a.IsAfterMarket,
	}
	for _, n := range a.EnabledAudiences {
		out.EnabledAudienceRefs = append(out.EnabledAudienceRefs, n.ShortName)
	}
	for _, n := range a.DisabledAudiences {
		out.DisabledAudienceRefs = append(out.DisabledAudienceRefs, n.ShortName)
	}
	return out
}

func (w *writeCtx) writeSingleEcuJob(j *ir.SingleEcuJob) *xmlSingleEcuJob {
	out := &xmlSingleEcuJob{xmlDiagComm: w.writeDiagComm(&j.DiagComm)}
	for _, p := range j.ProgCodes {
		out.ProgCodes = append(out.ProgCodes, writeProgCode(p))
	}
	for _, p := range j.InputParams {
		out.InputParams = append(out.InputParams, writeJobParam(p))
	}
	for _, p := range j.OutputParams {
		out.OutputParams = append(out.OutputParams, writeJobParam(p))
	}
	for _, p := range j.NegOutputParams {
		out.NegOutputParams = append(out.NegOutputParams, writeJobParam(p))
	}
	return out
}

func writeProgCode(p ir.ProgCode) xmlProgCode {
	out := xmlProgCode{CodeFile: p.CodeFile, Encryption: p.Encryption, Syntax: p.Syntax, Revision: p.Revision, EntryPoint: p.EntryPoint}
	for _, l := range p.Libraries {
		out.Libraries = append(out.Libraries, xmlLibrary{
			ShortName: l.ShortName, LongName: writeText(l.LongName), CodeFile: l.CodeFile,
			Encryption: l.Encryption, Syntax: l.Syntax, EntryPoint: l.EntryPoint,
		})
	}
	return out
}

func writeJobParam(p ir.JobParam) xmlJobParam {
	out := xmlJobParam{
		ShortName:            p.ShortName,
		LongName:             writeText(p.LongName),
		PhysicalDefaultValue: p.PhysicalDefaultValue,
		Semantic:             p.Semantic,
	}
	if p.DopBase != nil {
		out.DopBaseSNREF = p.DopBase.ShortName
	}
	return out
}

func writeStateChart(sc ir.StateChart) xmlStateChart {
	out := xmlStateChart{ShortName: sc.ShortName, Semantic: sc.Semantic, StartStateSNREF: sc.StartStateShortNameRef}
	for _, s := range sc.States {
		out.States = append(out.States, xmlState{ShortName: s.ShortName, LongName: writeText(s.LongName)})
	}
	for _, t := range sc.StateTransitions {
		out.StateTransitions = append(out.StateTransitions, xmlStateTransition{
			ShortName:   t.ShortName,
			SourceSNREF: t.SourceShortNameRef,
			TargetSNREF: t.TargetShortNameRef,
		})
	}
	return out
}

func writeComParamRef(c ir.ComParamRef) xmlComParamRef {
	out := xmlComParamRef{}
	if c.SimpleValue != nil {
		out.SimpleValue = c.SimpleValue.Value
	}
	if c.ComplexValue != nil {
		out.ComplexValue = writeComplexValue(c.ComplexValue)
	}
	if c.Protocol != nil {
		out.ProtocolSNREF = c.Protocol.DiagLayer.ShortName
	}
	return out
}

func writeComplexValue(c *ir.ComplexValue) *xmlComplexValue {
	if c == nil {
		return nil
	}
	out := &xmlComplexValue{}
	for _, e := range c.Entries {
		switch e.Kind {
		case ir.ValueKindSimple:
			if e.Simple != nil {
				out.SimpleValues = append(out.SimpleValues, e.Simple.Value)
			}
		case ir.ValueKindComplex:
			if e.Complex != nil {
				out.ComplexValues = append(out.ComplexValues, *writeComplexValue(e.Complex))
			}
		}
	}
	return out
}

func writeText(t *ir.Text) *xmlText {
	if t == nil {
		return nil
	}
	return &xmlText{Value: t.Value, TI: t.TI}
}

func writeSDGs(s *ir.SDGs) *xmlSDGs {
	if s == nil {
		return nil
	}
	out := &xmlSDGs{}
	for _, sdg := range s.Sdgs {
		out.Sdgs = append(out.Sdgs, writeSdg(sdg))
	}
	return out
}

func writeSdg(s ir.Sdg) xmlSdg {
	out := xmlSdg{CaptionSN: s.CaptionSN, SI: s.SI}
	for _, entry := range s.Sds {
		switch entry.Kind {
		case ir.SdOrSdgSd:
			if entry.Sd != nil {
				out.Sds = append(out.Sds, xmlSd{Value: entry.Sd.Value, SI: entry.Sd.SI, TI: entry.Sd.TI})
			}
		case ir.SdOrSdgSdg:
			if entry.Sdg != nil {
				out.Sdgs = append(out.Sdgs, writeSdg(*entry.Sdg))
			}
		}
	}
	return out
}

// sanitizeID turns a short name into an XML ID fragment: spaces, hyphens
// and dots become underscores, and every other character is kept as is.
func sanitizeID(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '.' {
			return '_'
		}
		return r
	}, s)
}

// --- enum -> ODX attribute-value conversions (inverse of reader.go's).

func writeDataType(t ir.DataType) string {
	switch t {
	case ir.AInt32:
		return "A_INT32"
	case ir.AFloat32:
		return "A_FLOAT32"
	case ir.AAsciiString:
		return "A_ASCIISTRING"
	case ir.AUtf8String:
		return "A_UTF8STRING"
	case ir.AUnicode2String:
		return "A_UNICODE2STRING"
	case ir.ABytefield:
		return "A_BYTEFIELD"
	case ir.AFloat64:
		return "A_FLOAT64"
	default:
		return "A_UINT32"
	}
}

func writePhysicalTypeDataType(t ir.PhysicalTypeDataType) string {
	switch t {
	case ir.PhysAInt32:
		return "A_INT32"
	case ir.PhysAFloat32:
		return "A_FLOAT32"
	case ir.PhysAAsciiString:
		return "A_ASCIISTRING"
	case ir.PhysAUtf8String:
		return "A_UTF8STRING"
	case ir.PhysAUnicode2String:
		return "A_UNICODE2STRING"
	case ir.PhysABytefield:
		return "A_BYTEFIELD"
	case ir.PhysAFloat64:
		return "A_FLOAT64"
	default:
		return "A_UINT32"
	}
}

func writeTermination(t ir.Termination) string {
	switch t {
	case ir.TerminationZero:
		return "ZERO"
	case ir.TerminationHexFf:
		return "HEX-FF"
	default:
		return "END-OF-PDU"
	}
}

func writeIntervalType(t ir.IntervalType) string {
	switch t {
	case ir.IntervalClosed:
		return "CLOSED"
	case ir.IntervalInfinite:
		return "INFINITE"
	default:
		return "OPEN"
	}
}

func writeCompuCategory(c ir.CompuCategory) string {
	switch c {
	case ir.CompuLinear:
		return "LINEAR"
	case ir.CompuScaleLinear:
		return "SCALE-LINEAR"
	case ir.CompuTextTable:
		return "TEXTTABLE"
	case ir.CompuCode:
		return "COMPUCODE"
	case ir.CompuTabIntp:
		return "TAB-INTP"
	case ir.CompuRatFunc:
		return "RAT-FUNC"
	case ir.CompuScaleRatFunc:
		return "SCALE-RAT-FUNC"
	default:
		return "IDENTICAL"
	}
}

func writeRadix(r ir.Radix) string {
	switch r {
	case ir.RadixDec:
		return "DEC"
	case ir.RadixBin:
		return "BIN"
	case ir.RadixOct:
		return "OCT"
	default:
		return "HEX"
	}
}

func writeValidType(v ir.ValidType) string {
	switch v {
	case ir.ValidTypeNotValid:
		return "NOT-VALID"
	case ir.ValidTypeNotDefined:
		return "NOT-DEFINED"
	case ir.ValidTypeNotAvailable:
		return "NOT-AVAILABLE"
	default:
		return "VALID"
	}
}

func writeDiagClassType(c ir.DiagClassType) string {
	switch c {
	case ir.DiagClassStopComm:
		return "STOP-COMM"
	case ir.DiagClassVariantIdentification:
		return "VARIANT-IDENTIFICATION"
	case ir.DiagClassReadDynDefMessage:
		return "READ-DYN-DEFINED-MESSAGE"
	case ir.DiagClassDynDefMessage:
		return "DYN-DEFINE-MESSAGE"
	case ir.DiagClassClearDynDefMessage:
		return "CLEAR-DYN-DEFINED-MESSAGE"
	default:
		return "START-COMM"
	}
}

func writeAddressing(a ir.Addressing) string {
	switch a {
	case ir.AddressingPhysical:
		return "PHYSICAL"
	case ir.AddressingFunctionalOrPhysical:
		return "FUNCTIONAL-OR-PHYSICAL"
	default:
		return "FUNCTIONAL"
	}
}

func writeTransmissionMode(t ir.TransmissionMode) string {
	switch t {
	case ir.TransmissionReceiveOnly:
		return "RECEIVE-ONLY"
	case ir.TransmissionSendAndReceive:
		return "SEND-AND-RECEIVE"
	case ir.TransmissionSendOrReceive:
		return "SEND-OR-RECEIVE"
	default:
		return "SEND-ONLY"
	}
}

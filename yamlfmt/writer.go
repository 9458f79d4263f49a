package yamlfmt

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// WriteOptions configures Write (mirrors odx.WriteOptions).
type WriteOptions struct{}

// Write is the inverse of Read: it reconstructs a declarative YAML document
// from the canonical IR, grounded on diag-yaml/src/writer.rs +
// service_extractor.rs. As in the Rust original, YAML-only configuration
// hints (addressing_mode, state_effects, audience, ...) have no IR home and
// are never reconstructed -- this does not break IR round-tripping, since
// those fields are only consumed during the initial parse (spec.md §4.7).
func Write(db *ir.Database, opts WriteOptions) ([]byte, error) {
	doc := databaseToDoc(db)
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yamlfmt: encode: %w", err)
	}
	return out, nil
}

func databaseToDoc(db *ir.Database) *YamlDocument {
	layer := baseLayer(db)

	doc := &YamlDocument{
		Schema: stringOr(db.Metadata["schema"], "opensovd.cda.diagdesc/v1"),
		Meta: &Meta{
			Author:      db.Metadata["author"],
			Domain:      db.Metadata["domain"],
			Created:     db.Metadata["created"],
			Version:     db.Version,
			Revision:    db.Revision,
			Description: db.Metadata["description"],
		},
		Ecu: &Ecu{
			ID:   db.Metadata["ecu_id"],
			Name: db.EcuName,
		},
	}

	if layer != nil {
		dids := map[string]Did{}
		routines := map[string]Routine{}
		types := map[string]YamlType{}

		for i := range layer.DiagServices {
			svc := &layer.DiagServices[i]
			switch {
			case svc.DiagComm.Semantic == "ROUTINE":
				rid := extractParamHex(svc.Request, "RID")
				routines[fmt.Sprintf("0x%04X", rid)] = serviceToRoutine(svc)
			case strings.HasSuffix(svc.DiagComm.ShortName, "_Read"):
				didID := extractParamHex(svc.Request, "DID")
				name := strings.TrimSuffix(svc.DiagComm.ShortName, "_Read")
				did, typeName, yt := serviceToDid(svc, name)
				if typeName != "" {
					types[typeName] = yt
				}
				dids[fmt.Sprintf("0x%04X", didID)] = did
			}
		}
		for i := range layer.DiagServices {
			svc := &layer.DiagServices[i]
			if !strings.HasSuffix(svc.DiagComm.ShortName, "_Write") {
				continue
			}
			didID := extractParamHex(svc.Request, "DID")
			key := fmt.Sprintf("0x%04X", didID)
			name := strings.TrimSuffix(svc.DiagComm.ShortName, "_Write")
			d, ok := dids[key]
			if !ok {
				d = Did{Name: name, Access: "public"}
			}
			writable := true
			d.Writable = &writable
			dids[key] = d
		}

		if len(dids) > 0 {
			doc.Dids = dids
		}
		if len(routines) > 0 {
			doc.Routines = routines
		}
		if len(types) > 0 {
			doc.Types = types
		}

		doc.Sdgs, doc.Identification, doc.ComParams, doc.DtcConfig, doc.Annotations, doc.XOem = splitCarryoverSDGs(layer.SDGs)

		if len(layer.SingleEcuJobs) > 0 {
			jobs := map[string]EcuJob{}
			for i := range layer.SingleEcuJobs {
				job := &layer.SingleEcuJobs[i]
				key := strings.ReplaceAll(strings.ToLower(job.DiagComm.ShortName), " ", "_")
				jobs[key] = jobToYaml(job)
			}
			doc.EcuJobs = jobs
		}
	}

	if len(db.Dtcs) > 0 {
		dtcs := map[string]YamlDtc{}
		for i := range db.Dtcs {
			dtc := &db.Dtcs[i]
			yd := YamlDtc{Name: dtc.ShortName, Sae: dtc.DisplayTroubleCode, Severity: dtc.Level}
			if dtc.Text != nil {
				yd.Description = dtc.Text.Value
			}
			restoreDtcCarryover(&yd, dtc.SDGs)
			dtcs[fmt.Sprintf("0x%04X", dtc.TroubleCode)] = yd
		}
		doc.Dtcs = dtcs
	}

	if db.MemoryConfig != nil && len(db.MemoryConfig.Regions) > 0 {
		regions := map[string]YamlMemoryRegion{}
		for _, r := range db.MemoryConfig.Regions {
			regions[r.Name] = YamlMemoryRegion{
				Name:          r.Name,
				Start:         r.StartAddress,
				End:           r.StartAddress + r.Size,
				Access:        r.Attributes["access"],
				SecurityLevel: r.Attributes["security_level"],
			}
		}
		doc.Memory = &YamlMemoryConfig{Regions: regions}
	}

	return doc
}

func baseLayer(db *ir.Database) *ir.DiagLayer {
	v := db.BaseVariant()
	if v == nil {
		return nil
	}
	return &v.DiagLayer
}

func stringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// extractParamHex mirrors service_extractor.rs's extract_did_id/
// extract_routine_id: finds the named CodedConst request param and parses
// its coded value as hex or decimal.
func extractParamHex(req *ir.Request, name string) uint32 {
	if req == nil {
		return 0
	}
	for i := range req.Params {
		p := &req.Params[i]
		if p.ShortName != name || p.Data.CodedConst == nil {
			continue
		}
		return parseHexKey(p.Data.CodedConst.CodedValue)
	}
	return 0
}

// firstValueParam finds the first Value-type param in a response's param
// list -- the data payload, as opposed to the SID/echo framing params.
func firstValueParam(resp []ir.Response) *ir.Param {
	if len(resp) == 0 {
		return nil
	}
	for i := range resp[0].Params {
		p := &resp[0].Params[i]
		if p.ParamType == ir.ParamValue {
			return p
		}
	}
	return nil
}

func serviceToDid(svc *ir.DiagService, name string) (Did, string, YamlType) {
	did := Did{
		Name:     name,
		Access:   "public",
		Readable: boolPtr(true),
	}
	if svc.DiagComm.LongName != nil {
		did.Description = svc.DiagComm.LongName.Value
	}

	vp := firstValueParam(svc.PosResponses)
	if vp == nil || vp.Data.Value == nil || vp.Data.Value.Dop == nil || vp.Data.Value.Dop.Data.NormalDop == nil {
		did.Type = *scalarNode("")
		return did, "", YamlType{}
	}

	yt := dopToYamlType(vp.Data.Value.Dop.Data.NormalDop)
	typeName := strings.ToLower(name) + "_type"
	did.Type = *scalarNode(typeName)
	return did, typeName, yt
}

func dopToYamlType(n *ir.NormalDopData) YamlType {
	yt := YamlType{}
	if n.DiagCodedType != nil {
		dct := n.DiagCodedType
		yt.Base = dataTypeToBase(dct.BaseDataType)
		if !dct.IsHighLowByteOrder {
			yt.Endian = "little"
		}
		if dct.Data.StandardLength != nil {
			bl := dct.Data.StandardLength.BitLength
			yt.BitLength = &bl
			yt.Base = bitLengthToBase(bl, yt.Base)
		} else if dct.Data.MinMax != nil {
			mm := dct.Data.MinMax
			yt.MinLength = &mm.MinLength
			yt.MaxLength = mm.MaxLength
			switch mm.Termination {
			case ir.TerminationZero:
				yt.Termination = "zero"
			case ir.TerminationHexFf:
				yt.Termination = "hex_ff"
			default:
				yt.Termination = "end_of_pdu"
			}
		}
	}
	if n.UnitRef != nil {
		yt.Unit = n.UnitRef.DisplayName
	}
	if n.CompuMethod != nil {
		switch n.CompuMethod.Category {
		case ir.CompuLinear:
			if n.CompuMethod.InternalToPhys != nil && len(n.CompuMethod.InternalToPhys.CompuScales) > 0 {
				scale := n.CompuMethod.InternalToPhys.CompuScales[0]
				if scale.RationalCoEffs != nil && len(scale.RationalCoEffs.Numerator) >= 2 {
					offset := scale.RationalCoEffs.Numerator[0]
					mul := scale.RationalCoEffs.Numerator[1]
					yt.Offset = &offset
					yt.Scale = &mul
				}
			}
		case ir.CompuTextTable:
			if n.CompuMethod.InternalToPhys != nil {
				m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
				for _, scale := range n.CompuMethod.InternalToPhys.CompuScales {
					if scale.LowerLimit == nil || scale.Consts == nil {
						continue
					}
					m.Content = append(m.Content, scalarNode(scale.LowerLimit.Value), scalarNode(scale.Consts.VT))
				}
				if len(m.Content) > 0 {
					yt.EnumValues = m
				}
			}
		}
	}
	if n.InternalConstr != nil && (n.InternalConstr.LowerLimit != nil || n.InternalConstr.UpperLimit != nil) {
		var internal []yaml.Node
		if n.InternalConstr.LowerLimit != nil {
			internal = append(internal, *scalarNode(n.InternalConstr.LowerLimit.Value))
		}
		if n.InternalConstr.UpperLimit != nil {
			internal = append(internal, *scalarNode(n.InternalConstr.UpperLimit.Value))
		}
		yt.Constraints = &TypeConstraints{Internal: internal}
	}
	return yt
}

func dataTypeToBase(dt ir.DataType) string {
	switch dt {
	case ir.AUint32:
		return "u32"
	case ir.AInt32:
		return "s32"
	case ir.AFloat32:
		return "f32"
	case ir.AFloat64:
		return "f64"
	case ir.AAsciiString, ir.AUtf8String, ir.AUnicode2String:
		return "ascii"
	case ir.ABytefield:
		return "bytes"
	default:
		return "u32"
	}
}

func bitLengthToBase(bitLength uint32, current string) string {
	if current == "ascii" || current == "bytes" {
		return current
	}
	signed := strings.HasPrefix(current, "s") || strings.HasPrefix(current, "i")
	switch {
	case bitLength <= 8:
		if signed {
			return "s8"
		}
		return "u8"
	case bitLength <= 16:
		if signed {
			return "s16"
		}
		return "u16"
	case bitLength <= 32:
		if signed {
			return "s32"
		}
		return "u32"
	default:
		if signed {
			return "s64"
		}
		return "u64"
	}
}

func serviceToRoutine(svc *ir.DiagService) Routine {
	var operations []string
	if svc.Request != nil {
		operations = append(operations, "start")
	}
	if len(svc.PosResponses) > 0 {
		operations = append(operations, "result")
	}
	r := Routine{
		Name:       svc.DiagComm.ShortName,
		Access:     "public",
		Operations: operations,
	}
	if svc.DiagComm.LongName != nil {
		r.Description = svc.DiagComm.LongName.Value
	}
	return r
}

func jobToYaml(job *ir.SingleEcuJob) EcuJob {
	convert := func(params []ir.JobParam) []JobParamDef {
		if len(params) == 0 {
			return nil
		}
		out := make([]JobParamDef, 0, len(params))
		for _, p := range params {
			def := JobParamDef{Name: p.ShortName, Semantic: p.Semantic}
			if p.LongName != nil {
				def.Description = p.LongName.Value
			}
			if p.PhysicalDefaultValue != "" {
				def.DefaultValue = scalarNode(p.PhysicalDefaultValue)
			}
			out = append(out, def)
		}
		return out
	}
	j := EcuJob{
		Name:            job.DiagComm.ShortName,
		InputParams:     convert(job.InputParams),
		OutputParams:    convert(job.OutputParams),
		NegOutputParams: convert(job.NegOutputParams),
	}
	if job.DiagComm.LongName != nil {
		j.Description = job.DiagComm.LongName.Value
	}
	if len(job.ProgCodes) > 0 {
		j.ProgCode = job.ProgCodes[0].CodeFile
	}
	return j
}

// splitCarryoverSDGs is the inverse of buildCarryoverSDGs: pulls the named
// carryover captions back out into their own document sections and leaves
// everything else as plain sdgs.
func splitCarryoverSDGs(sdgs *ir.SDGs) (map[string]YamlSdg, *Identification, map[string]ComParamEntry, *DtcConfig, *yaml.Node, *yaml.Node) {
	if sdgs == nil {
		return nil, nil, nil, nil, nil, nil
	}
	out := map[string]YamlSdg{}
	var ident *Identification
	var comparams map[string]ComParamEntry
	var dtcConfig *DtcConfig
	var annotations, xOem *yaml.Node

	for _, sdg := range sdgs.Sdgs {
		text := sdgSoleText(&sdg)
		switch sdg.CaptionSN {
		case "identification":
			if text != "" {
				var v Identification
				if yaml.Unmarshal([]byte(text), &v) == nil {
					ident = &v
				}
			}
			continue
		case "comparams":
			if text != "" {
				var v map[string]ComParamEntry
				if yaml.Unmarshal([]byte(text), &v) == nil {
					comparams = v
				}
			}
			continue
		case "dtc_config":
			if text != "" {
				var v DtcConfig
				if yaml.Unmarshal([]byte(text), &v) == nil {
					dtcConfig = &v
				}
			}
			continue
		case "yaml_annotations":
			if text != "" {
				var n yaml.Node
				if yaml.Unmarshal([]byte(text), &n) == nil {
					annotations = unwrapDoc(&n)
				}
			}
			continue
		case "yaml_x_oem":
			if text != "" {
				var n yaml.Node
				if yaml.Unmarshal([]byte(text), &n) == nil {
					xOem = unwrapDoc(&n)
				}
			}
			continue
		}
		key := sdg.CaptionSN
		if key == "" {
			key = fmt.Sprintf("sdg_%d", len(out))
		}
		out[key] = convertSdgToYaml(&sdg)
	}

	if len(out) == 0 {
		out = nil
	}
	return out, ident, comparams, dtcConfig, annotations, xOem
}

func unwrapDoc(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		return n.Content[0]
	}
	return n
}

func sdgSoleText(sdg *ir.Sdg) string {
	if len(sdg.Sds) != 1 || sdg.Sds[0].Kind != ir.SdOrSdgSd || sdg.Sds[0].Sd == nil {
		return ""
	}
	return sdg.Sds[0].Sd.Value
}

func convertSdgToYaml(sdg *ir.Sdg) YamlSdg {
	values := make([]YamlSdValue, 0, len(sdg.Sds))
	for _, entry := range sdg.Sds {
		switch entry.Kind {
		case ir.SdOrSdgSd:
			if entry.Sd == nil {
				continue
			}
			values = append(values, YamlSdValue{SI: entry.Sd.SI, TI: entry.Sd.TI, Value: entry.Sd.Value})
		case ir.SdOrSdgSdg:
			if entry.Sdg == nil {
				continue
			}
			nested := convertSdgToYaml(entry.Sdg)
			values = append(values, YamlSdValue{SI: entry.Sdg.SI, Caption: entry.Sdg.CaptionSN, Values: nested.Values})
		}
	}
	return YamlSdg{SI: sdg.SI, Caption: sdg.CaptionSN, Values: values}
}

func restoreDtcCarryover(yd *YamlDtc, sdgs *ir.SDGs) {
	if sdgs == nil {
		return
	}
	for _, sdg := range sdgs.Sdgs {
		switch sdg.CaptionSN {
		case "dtc_snapshots":
			yd.Snapshots = sdLeafValues(&sdg)
		case "dtc_extended_data":
			yd.ExtendedData = sdLeafValues(&sdg)
		}
	}
}

func sdLeafValues(sdg *ir.Sdg) []string {
	out := make([]string, 0, len(sdg.Sds))
	for _, entry := range sdg.Sds {
		if entry.Kind == ir.SdOrSdgSd && entry.Sd != nil {
			out = append(out, entry.Sd.Value)
		}
	}
	return out
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func boolPtr(v bool) *bool { return &v }

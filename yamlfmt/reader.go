package yamlfmt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bburda42dot/diag-converter-sub000/internal/logging"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// ReadOptions configures Read (mirrors odx.ReadOptions).
type ReadOptions struct {
	Logger *logging.Helper
}

func (o ReadOptions) logger() *logging.Helper {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Default()
}

// Read parses one YAML diagnostic description into the canonical IR
// (spec.md §4.6), grounded on diag-yaml/src/parser.rs's yaml_to_ir: DID and
// routine tables are expanded into synthesized DiagServices, the `services`
// section is handed to a ServiceGenerator, and everything with no direct IR
// home (sdgs, identification, comparams, dtc_config, annotations, x-oem) is
// carried over verbatim as an SDG so a later Write can round-trip it.
func Read(data []byte, opts ReadOptions) (*ir.Database, error) {
	var doc YamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlfmt: decode: %w", err)
	}
	return docToDatabase(&doc, opts.logger())
}

func docToDatabase(doc *YamlDocument, log *logging.Helper) (*ir.Database, error) {
	ecuName, ecuID := "", ""
	if doc.Ecu != nil {
		ecuName = doc.Ecu.Name
		ecuID = doc.Ecu.ID
	}

	version, revision, description := "", "", ""
	if doc.Meta != nil {
		version = doc.Meta.Version
		revision = doc.Meta.Revision
		description = doc.Meta.Description
	}

	metadata := map[string]string{}
	if doc.Meta != nil {
		if doc.Meta.Author != "" {
			metadata["author"] = doc.Meta.Author
		}
		if doc.Meta.Domain != "" {
			metadata["domain"] = doc.Meta.Domain
		}
		if doc.Meta.Created != "" {
			metadata["created"] = doc.Meta.Created
		}
		if doc.Meta.Description != "" {
			metadata["description"] = doc.Meta.Description
		}
	}
	if ecuID != "" {
		metadata["ecu_id"] = ecuID
	}
	metadata["schema"] = doc.Schema

	typeDefs := buildTypeDefinitions(doc.Types)

	accessPatterns := buildAccessPatternLookup(doc.AccessPatterns, doc.Sessions, doc.Security, doc.Authentication)

	var services []ir.DiagService

	if len(doc.Dids) > 0 {
		names := make([]string, 0, len(doc.Dids))
		for k := range doc.Dids {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, key := range names {
			did := doc.Dids[key]
			didID := parseHexKey(key)
			readable := did.Readable == nil || *did.Readable
			writable := did.Writable != nil && *did.Writable
			if readable {
				svc := didToReadService(didID, &did, doc.Types)
				applyAccessPattern(&svc.DiagComm, did.Access, accessPatterns)
				services = append(services, svc)
			}
			if writable {
				svc := didToWriteService(didID, &did, doc.Types)
				applyAccessPattern(&svc.DiagComm, did.Access, accessPatterns)
				services = append(services, svc)
			}
		}
	}

	if len(doc.Routines) > 0 {
		names := make([]string, 0, len(doc.Routines))
		for k := range doc.Routines {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, key := range names {
			routine := doc.Routines[key]
			rid := parseHexKey(key)
			svc := routineToService(rid, &routine)
			applyAccessPattern(&svc.DiagComm, routine.Access, accessPatterns)
			services = append(services, svc)
		}
	}

	if doc.Services != nil {
		gen := NewServiceGenerator(doc.Services).WithSessions(doc.Sessions).WithSecurity(doc.Security)
		services = append(services, gen.GenerateAll()...)
	}

	var jobs []ir.SingleEcuJob
	if len(doc.EcuJobs) > 0 {
		names := make([]string, 0, len(doc.EcuJobs))
		for k := range doc.EcuJobs {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, name := range names {
			job := doc.EcuJobs[name]
			jobs = append(jobs, ecuJobToIR(&job))
		}
	}

	sdgs := buildCarryoverSDGs(doc, log)

	var dtcs []ir.Dtc
	if len(doc.Dtcs) > 0 {
		names := make([]string, 0, len(doc.Dtcs))
		for k := range doc.Dtcs {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, key := range names {
			dtc := doc.Dtcs[key]
			dtcs = append(dtcs, convertDtc(parseHexKey(key), &dtc))
		}
	}

	var stateCharts []ir.StateChart
	if doc.Sessions != nil {
		stateCharts = append(stateCharts, sessionsToStateChart(doc.Sessions, doc.StateModel))
	}
	if doc.Security != nil {
		stateCharts = append(stateCharts, securityToStateChart(doc.Security))
	}
	if doc.Authentication != nil {
		if sc, ok := authenticationToStateChart(doc.Authentication); ok {
			stateCharts = append(stateCharts, sc)
		}
	}

	var functClasses []ir.FunctClass
	for _, name := range doc.FunctionalClasses {
		functClasses = append(functClasses, ir.FunctClass{ShortName: name})
	}

	comParamRefs := parseComParams(doc.ComParams)

	baseVariant := ir.Variant{
		DiagLayer: ir.DiagLayer{
			ShortName:           ecuName,
			FunctClasses:        functClasses,
			ComParamRefs:        comParamRefs,
			DiagServices:        services,
			SingleEcuJobs:       jobs,
			StateCharts:         stateCharts,
			AdditionalAudiences: nil,
			SDGs:                sdgs,
		},
		IsBaseVariant: true,
	}
	if description != "" {
		baseVariant.DiagLayer.LongName = &ir.LongName{Value: description}
	}

	variants := []ir.Variant{baseVariant}
	if doc.Variants != nil {
		names := make([]string, 0, len(doc.Variants.Definitions))
		for k := range doc.Variants.Definitions {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, name := range names {
			def := doc.Variants.Definitions[name]
			variants = append(variants, parseVariantDefinition(name, &def, ecuName, doc.Sessions, doc.Security))
		}
	}

	db := &ir.Database{
		EcuName:          ecuName,
		Version:          version,
		Revision:         revision,
		Metadata:         metadata,
		Variants:         variants,
		FunctionalGroups: nil,
		Dtcs:             dtcs,
		TypeDefinitions:  typeDefs,
	}
	if doc.Memory != nil {
		db.MemoryConfig = parseMemoryConfig(doc.Memory)
	}
	return db, nil
}

// --- type registry / DOP synthesis ---

func buildTypeDefinitions(types map[string]YamlType) []ir.TypeDefinition {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, 0, len(types))
	for k := range types {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]ir.TypeDefinition, 0, len(names))
	for _, name := range names {
		yt := types[name]
		base, _ := baseTypeToDataType(yt.Base)
		bitLength := uint32(0)
		if yt.BitLength != nil {
			bitLength = *yt.BitLength
		} else if yt.Length != nil {
			bitLength = *yt.Length * 8
		} else if bl, ok := defaultBitLength(yt.Base); ok {
			bitLength = bl
		}
		td := ir.TypeDefinition{
			Name:             name,
			BaseDataType:     base,
			BitLength:        bitLength,
			HighLowByteOrder: yt.Endian == "" || yt.Endian == "big",
			Scale:            yt.Scale,
			Offset:           yt.Offset,
		}
		if yt.EnumValues != nil && yt.EnumValues.Kind == yaml.MappingNode {
			var m map[string]yaml.Node
			if err := yt.EnumValues.Decode(&m); err == nil {
				td.EnumTable = map[string]string{}
				for k, v := range m {
					td.EnumTable[k] = yamlValueToString(&v)
				}
			}
		}
		out = append(out, td)
	}
	return out
}

func resolveDidType(typeValue *yaml.Node, types map[string]YamlType) *YamlType {
	if typeValue == nil {
		return nil
	}
	switch typeValue.Kind {
	case yaml.ScalarNode:
		if t, ok := types[typeValue.Value]; ok {
			return &t
		}
		return nil
	case yaml.MappingNode:
		var t YamlType
		if err := typeValue.Decode(&t); err == nil {
			return &t
		}
	}
	return nil
}

func yamlTypeToDop(name string, yt *YamlType) ir.Dop {
	base, physBase := baseTypeToDataType(yt.Base)
	isHighLow := yt.Endian == "" || yt.Endian == "big"

	var bitLength uint32
	switch {
	case yt.BitLength != nil:
		bitLength = *yt.BitLength
	case yt.Length != nil:
		bitLength = *yt.Length * 8
	default:
		bitLength, _ = defaultBitLength(yt.Base)
	}

	compu := buildCompuMethod(yt)

	var dct ir.DiagCodedType
	if yt.MinLength != nil || yt.MaxLength != nil {
		term := ir.TerminationEndOfPdu
		switch strings.ToLower(yt.Termination) {
		case "zero":
			term = ir.TerminationZero
		case "hex_ff", "hexff":
			term = ir.TerminationHexFf
		}
		minLen := uint32(0)
		if yt.MinLength != nil {
			minLen = *yt.MinLength
		}
		dct = ir.DiagCodedType{
			TypeName:           ir.MinMaxLengthType,
			BaseTypeEncoding:    signOf(yt.Base),
			BaseDataType:        base,
			IsHighLowByteOrder:  isHighLow,
			Data:                ir.DiagCodedTypeData{MinMax: &ir.MinMaxData{MinLength: minLen, MaxLength: yt.MaxLength, Termination: term}},
		}
	} else {
		dct = ir.DiagCodedType{
			TypeName:           ir.StandardLengthType,
			BaseTypeEncoding:    signOf(yt.Base),
			BaseDataType:        base,
			IsHighLowByteOrder:  isHighLow,
			Data:                ir.DiagCodedTypeData{StandardLength: &ir.StandardLengthData{BitLength: bitLength}},
		}
	}

	var unitRef *ir.Unit
	if yt.Unit != "" {
		unitRef = &ir.Unit{ShortName: yt.Unit, DisplayName: yt.Unit}
	}

	var internalConstr *ir.InternalConstr
	if yt.Constraints != nil && len(yt.Constraints.Internal) == 2 {
		internalConstr = &ir.InternalConstr{
			LowerLimit: &ir.Limit{Value: yamlValueToString(&yt.Constraints.Internal[0]), IntervalType: ir.IntervalClosed},
			UpperLimit: &ir.Limit{Value: yamlValueToString(&yt.Constraints.Internal[1]), IntervalType: ir.IntervalClosed},
		}
	}

	return ir.Dop{
		DopType:   ir.DopRegular,
		ShortName: name,
		Data: ir.DopData{
			NormalDop: &ir.NormalDopData{
				CompuMethod:    &compu,
				DiagCodedType:  &dct,
				PhysicalType:   &ir.PhysicalType{BaseDataType: physBase, DisplayRadix: ir.RadixDec},
				InternalConstr: internalConstr,
				UnitRef:        unitRef,
			},
		},
	}
}

func buildCompuMethod(yt *YamlType) ir.CompuMethod {
	if yt.EnumValues != nil && yt.EnumValues.Kind == yaml.MappingNode {
		var m map[string]yaml.Node
		if err := yt.EnumValues.Decode(&m); err == nil {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			scales := make([]ir.CompuScale, 0, len(keys))
			for _, k := range keys {
				v := m[k]
				vStr := yamlValueToString(&v)
				scales = append(scales, ir.CompuScale{
					ShortLabel: &ir.Text{Value: vStr},
					LowerLimit: &ir.Limit{Value: k, IntervalType: ir.IntervalClosed},
					UpperLimit: &ir.Limit{Value: k, IntervalType: ir.IntervalClosed},
					Consts:     &ir.CompuValues{VT: vStr},
				})
			}
			return ir.CompuMethod{
				Category:       ir.CompuTextTable,
				InternalToPhys: &ir.CompuInternalToPhys{CompuScales: scales},
			}
		}
	}
	if yt.Scale != nil || yt.Offset != nil {
		scale := 1.0
		if yt.Scale != nil {
			scale = *yt.Scale
		}
		offset := 0.0
		if yt.Offset != nil {
			offset = *yt.Offset
		}
		return ir.CompuMethod{
			Category: ir.CompuLinear,
			InternalToPhys: &ir.CompuInternalToPhys{
				CompuScales: []ir.CompuScale{{
					RationalCoEffs: &ir.CompuRationalCoEffs{Numerator: []float64{offset, scale}, Denominator: []float64{1.0}},
				}},
			},
		}
	}
	return ir.CompuMethod{Category: ir.CompuIdentical}
}

func signOf(base string) string {
	if strings.HasPrefix(base, "s") || strings.HasPrefix(base, "i") {
		return "signed"
	}
	return "unsigned"
}

func baseTypeToDataType(base string) (ir.DataType, ir.PhysicalTypeDataType) {
	switch base {
	case "u8", "s8", "u16", "s16", "u32", "s32", "u64", "s64":
		return ir.AUint32, ir.PhysAUint32
	case "f32":
		return ir.AFloat32, ir.PhysAFloat32
	case "f64":
		return ir.AFloat64, ir.PhysAFloat64
	case "ascii":
		return ir.AAsciiString, ir.PhysAAsciiString
	case "utf8":
		return ir.AUtf8String, ir.PhysAAsciiString
	case "unicode":
		return ir.AUnicode2String, ir.PhysAAsciiString
	case "bytes", "struct":
		return ir.ABytefield, ir.PhysABytefield
	default:
		return ir.AUint32, ir.PhysAUint32
	}
}

func defaultBitLength(base string) (uint32, bool) {
	switch base {
	case "u8", "s8":
		return 8, true
	case "u16", "s16":
		return 16, true
	case "u32", "s32", "f32":
		return 32, true
	case "u64", "s64", "f64":
		return 64, true
	default:
		return 0, false
	}
}

func uint8CodedType() ir.DiagCodedType {
	return ir.DiagCodedType{
		BaseTypeEncoding:   "unsigned",
		BaseDataType:       ir.AUint32,
		IsHighLowByteOrder: true,
		Data:               ir.DiagCodedTypeData{StandardLength: &ir.StandardLengthData{BitLength: 8}},
	}
}

func uint16CodedType() ir.DiagCodedType {
	return ir.DiagCodedType{
		BaseTypeEncoding:   "unsigned",
		BaseDataType:       ir.AUint32,
		IsHighLowByteOrder: true,
		Data:               ir.DiagCodedTypeData{StandardLength: &ir.StandardLengthData{BitLength: 16}},
	}
}

// --- DID / routine / ecu-job synthesis ---

func didToReadService(didID uint32, did *Did, types map[string]YamlType) ir.DiagService {
	yt := resolveDidType(&did.Type, types)
	var dop ir.Dop
	if yt != nil {
		dop = yamlTypeToDop(did.Name, yt)
	} else {
		dop = ir.Dop{DopType: ir.DopRegular, ShortName: did.Name}
	}

	var sdgs *ir.SDGs
	extra := map[string]interface{}{}
	if did.Snapshot != nil {
		extra["snapshot"] = *did.Snapshot
	}
	if did.IoControl != nil {
		var v interface{}
		if err := did.IoControl.Decode(&v); err == nil {
			extra["io_control"] = v
		}
	}
	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			sdgs = &ir.SDGs{Sdgs: []ir.Sdg{{CaptionSN: "did_extra", Sds: []ir.SdOrSdg{{Kind: ir.SdOrSdgSd, Sd: &ir.Sd{Value: string(b)}}}}}}
		}
	}

	bp1 := uint32(1)
	bp3 := uint32(3)
	var longName *ir.LongName
	if did.Description != "" {
		longName = &ir.LongName{Value: did.Description}
	}
	return ir.DiagService{
		DiagComm: ir.DiagComm{
			ShortName:     did.Name + "_Read",
			LongName:      longName,
			Semantic:      "DATA-READ",
			SDGs:          sdgs,
			DiagClassType: ir.DiagClassStartComm,
			IsExecutable:  true,
		},
		Request: &ir.Request{Params: []ir.Param{
			{ShortName: "SID", ParamType: ir.ParamCodedConst, Semantic: "SERVICE-ID", BytePosition: u32p(0),
				Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: "0x22", DiagCodedType: uint8CodedType()}}},
			{ShortName: "DID", ParamType: ir.ParamCodedConst, Semantic: "ID", BytePosition: &bp1,
				Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: fmt.Sprintf("0x%04X", didID), DiagCodedType: uint16CodedType()}}},
		}},
		PosResponses: []ir.Response{{ResponseType: ir.ResponsePositive, Params: []ir.Param{
			{ShortName: "SID", ParamType: ir.ParamCodedConst, Semantic: "SERVICE-ID", BytePosition: u32p(0),
				Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: "0x62", DiagCodedType: uint8CodedType()}}},
			{ShortName: "DID_PR", ParamType: ir.ParamMatchingRequestParam, Semantic: "ID", BytePosition: &bp1,
				Data: ir.ParamData{MatchingRequestParam: &ir.MatchingRequestParamData{RequestBytePos: 1, ByteLength: 2}}},
			{ShortName: did.Name, ParamType: ir.ParamValue, Semantic: "DATA", BytePosition: &bp3,
				Data: ir.ParamData{Value: &ir.ValueData{Dop: &dop}}},
		}}},
		Addressing:       ir.AddressingPhysical,
		TransmissionMode: ir.TransmissionSendAndReceive,
	}
}

func didToWriteService(didID uint32, did *Did, types map[string]YamlType) ir.DiagService {
	yt := resolveDidType(&did.Type, types)
	var dop ir.Dop
	if yt != nil {
		dop = yamlTypeToDop(did.Name, yt)
	} else {
		dop = ir.Dop{DopType: ir.DopRegular, ShortName: did.Name}
	}
	bp1 := uint32(1)
	bp3 := uint32(3)
	var longName *ir.LongName
	if did.Description != "" {
		longName = &ir.LongName{Value: did.Description}
	}
	return ir.DiagService{
		DiagComm: ir.DiagComm{
			ShortName:     did.Name + "_Write",
			LongName:      longName,
			Semantic:      "DATA-WRITE",
			DiagClassType: ir.DiagClassStartComm,
			IsExecutable:  true,
		},
		Request: &ir.Request{Params: []ir.Param{
			{ShortName: "SID", ParamType: ir.ParamCodedConst, Semantic: "SERVICE-ID", BytePosition: u32p(0),
				Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: "0x2E", DiagCodedType: uint8CodedType()}}},
			{ShortName: "DID", ParamType: ir.ParamCodedConst, Semantic: "ID", BytePosition: &bp1,
				Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: fmt.Sprintf("0x%04X", didID), DiagCodedType: uint16CodedType()}}},
			{ShortName: did.Name, ParamType: ir.ParamValue, Semantic: "DATA", BytePosition: &bp3,
				Data: ir.ParamData{Value: &ir.ValueData{Dop: &dop}}},
		}},
		PosResponses: []ir.Response{{ResponseType: ir.ResponsePositive, Params: []ir.Param{
			{ShortName: "SID", ParamType: ir.ParamCodedConst, Semantic: "SERVICE-ID", BytePosition: u32p(0),
				Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: "0x6E", DiagCodedType: uint8CodedType()}}},
			{ShortName: "DID_PR", ParamType: ir.ParamMatchingRequestParam, Semantic: "ID", BytePosition: &bp1,
				Data: ir.ParamData{MatchingRequestParam: &ir.MatchingRequestParamData{RequestBytePos: 1, ByteLength: 2}}},
		}}},
		Addressing:       ir.AddressingPhysical,
		TransmissionMode: ir.TransmissionSendAndReceive,
	}
}

func routineToService(rid uint32, routine *Routine) ir.DiagService {
	bp2 := uint32(2)
	reqParams := []ir.Param{
		{ShortName: "SID", ParamType: ir.ParamCodedConst, Semantic: "SERVICE-ID", BytePosition: u32p(0),
			Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: "0x31", DiagCodedType: uint8CodedType()}}},
		{ShortName: "RID", ParamType: ir.ParamCodedConst, Semantic: "ID", BytePosition: &bp2,
			Data: ir.ParamData{CodedConst: &ir.CodedConstData{CodedValue: fmt.Sprintf("0x%04X", rid), DiagCodedType: uint16CodedType()}}},
	}
	if routine.Parameters != nil {
		if start, ok := routine.Parameters["start"]; ok {
			for _, input := range start.Input {
				var yt YamlType
				dop := ir.Dop{DopType: ir.DopRegular, ShortName: input.Name}
				if err := input.Type.Decode(&yt); err == nil {
					dop = yamlTypeToDop(input.Name, &yt)
				}
				semantic := input.Semantic
				if semantic == "" {
					semantic = "DATA"
				}
				reqParams = append(reqParams, ir.Param{
					ShortName: input.Name,
					ParamType: ir.ParamValue,
					Semantic:  semantic,
					Data:      ir.ParamData{Value: &ir.ValueData{Dop: &dop}},
				})
			}
		}
	}

	var posResponses []ir.Response
	if routine.Parameters != nil {
		if result, ok := routine.Parameters["result"]; ok && len(result.Output) > 0 {
			respParams := make([]ir.Param, 0, len(result.Output))
			for _, output := range result.Output {
				var yt YamlType
				dop := ir.Dop{DopType: ir.DopRegular, ShortName: output.Name}
				if err := output.Type.Decode(&yt); err == nil {
					dop = yamlTypeToDop(output.Name, &yt)
				}
				respParams = append(respParams, ir.Param{
					ShortName: output.Name,
					ParamType: ir.ParamValue,
					Semantic:  "DATA",
					Data:      ir.ParamData{Value: &ir.ValueData{Dop: &dop}},
				})
			}
			posResponses = append(posResponses, ir.Response{ResponseType: ir.ResponsePositive, Params: respParams})
		}
	}

	var longName *ir.LongName
	if routine.Description != "" {
		longName = &ir.LongName{Value: routine.Description}
	}
	return ir.DiagService{
		DiagComm: ir.DiagComm{
			ShortName:     routine.Name,
			LongName:      longName,
			Semantic:      "ROUTINE",
			DiagClassType: ir.DiagClassStartComm,
			IsExecutable:  true,
		},
		Request:          &ir.Request{Params: reqParams},
		PosResponses:     posResponses,
		Addressing:       ir.AddressingPhysical,
		TransmissionMode: ir.TransmissionSendAndReceive,
	}
}

func ecuJobToIR(job *EcuJob) ir.SingleEcuJob {
	convert := func(defs []JobParamDef) []ir.JobParam {
		if len(defs) == 0 {
			return nil
		}
		out := make([]ir.JobParam, 0, len(defs))
		for _, p := range defs {
			var dopBase *ir.Dop
			var yt YamlType
			if err := p.Type.Decode(&yt); err == nil {
				d := yamlTypeToDop(p.Name, &yt)
				dopBase = &d
			}
			var longName *ir.LongName
			if p.Description != "" {
				longName = &ir.LongName{Value: p.Description}
			}
			defaultVal := ""
			if p.DefaultValue != nil {
				defaultVal = yamlValueToString(p.DefaultValue)
			}
			out = append(out, ir.JobParam{
				ShortName:            p.Name,
				LongName:             longName,
				PhysicalDefaultValue: defaultVal,
				DopBase:              dopBase,
				Semantic:             p.Semantic,
			})
		}
		return out
	}

	var progCodes []ir.ProgCode
	if job.ProgCode != "" {
		progCodes = []ir.ProgCode{{CodeFile: job.ProgCode}}
	}
	var longName *ir.LongName
	if job.Description != "" {
		longName = &ir.LongName{Value: job.Description}
	}
	return ir.SingleEcuJob{
		DiagComm: ir.DiagComm{
			ShortName:     job.Name,
			LongName:      longName,
			Semantic:      "ECU-JOB",
			DiagClassType: ir.DiagClassStartComm,
			IsExecutable:  true,
		},
		ProgCodes:       progCodes,
		InputParams:     convert(job.InputParams),
		OutputParams:    convert(job.OutputParams),
		NegOutputParams: convert(job.NegOutputParams),
	}
}

// --- SDGs / DTCs ---

func convertSdgs(m map[string]YamlSdg) *ir.SDGs {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]ir.Sdg, 0, len(names))
	for _, name := range names {
		s := m[name]
		out = append(out, convertSingleSdg(&s))
	}
	return &ir.SDGs{Sdgs: out}
}

func convertSingleSdg(s *YamlSdg) ir.Sdg {
	sds := make([]ir.SdOrSdg, 0, len(s.Values))
	for _, v := range s.Values {
		if v.Values != nil {
			nested := YamlSdg{SI: v.SI, Caption: v.Caption, Values: v.Values}
			sdg := convertSingleSdg(&nested)
			sds = append(sds, ir.SdOrSdg{Kind: ir.SdOrSdgSdg, Sdg: &sdg})
		} else {
			sds = append(sds, ir.SdOrSdg{Kind: ir.SdOrSdgSd, Sd: &ir.Sd{Value: v.Value, SI: v.SI, TI: v.TI}})
		}
	}
	return ir.Sdg{CaptionSN: s.Caption, Sds: sds, SI: s.SI}
}

func convertDtc(troubleCode uint32, d *YamlDtc) ir.Dtc {
	var entries []ir.Sdg
	if len(d.Snapshots) > 0 {
		sds := make([]ir.SdOrSdg, 0, len(d.Snapshots))
		for _, s := range d.Snapshots {
			sds = append(sds, ir.SdOrSdg{Kind: ir.SdOrSdgSd, Sd: &ir.Sd{Value: s}})
		}
		entries = append(entries, ir.Sdg{CaptionSN: "dtc_snapshots", Sds: sds})
	}
	if len(d.ExtendedData) > 0 {
		sds := make([]ir.SdOrSdg, 0, len(d.ExtendedData))
		for _, s := range d.ExtendedData {
			sds = append(sds, ir.SdOrSdg{Kind: ir.SdOrSdgSd, Sd: &ir.Sd{Value: s}})
		}
		entries = append(entries, ir.Sdg{CaptionSN: "dtc_extended_data", Sds: sds})
	}
	var text *ir.Text
	if d.Description != "" {
		text = &ir.Text{Value: d.Description}
	}
	var sdgs *ir.SDGs
	if len(entries) > 0 {
		sdgs = &ir.SDGs{Sdgs: entries}
	}
	return ir.Dtc{
		ShortName:          d.Name,
		TroubleCode:        troubleCode,
		DisplayTroubleCode: d.Sae,
		Text:               text,
		Level:              d.Severity,
		SDGs:               sdgs,
	}
}

// buildCarryoverSDGs gathers every document section with no direct IR home
// (sdgs, identification, comparams, dtc_config, annotations, x-oem) into the
// base variant's SDGs, so a subsequent Write can reconstruct them. Each
// section is re-serialized with the same yaml.v3 encoder and struct tags
// Write later decodes with, and gopkg.in/yaml.v3 sorts map keys on encode,
// giving the determinism spec.md §9 asks for without a bespoke canonical
// form (parser.rs's canonical_json has no direct equivalent here).
func buildCarryoverSDGs(doc *YamlDocument, log *logging.Helper) *ir.SDGs {
	var entries []ir.Sdg
	if converted := convertSdgs(doc.Sdgs); converted != nil {
		entries = append(entries, converted.Sdgs...)
	}
	if doc.Identification != nil {
		if s, err := toCanonicalYAML(doc.Identification); err == nil {
			entries = append(entries, carryoverSdg("identification", s))
		} else {
			log.Warnf("yamlfmt: carrying over identification failed: %v", err)
		}
	}
	if doc.ComParams != nil {
		if s, err := toCanonicalYAML(doc.ComParams); err == nil {
			entries = append(entries, carryoverSdg("comparams", s))
		}
	}
	if doc.DtcConfig != nil {
		if s, err := toCanonicalYAML(doc.DtcConfig); err == nil {
			entries = append(entries, carryoverSdg("dtc_config", s))
		}
	}
	if doc.Annotations != nil {
		if s, err := toCanonicalYAML(doc.Annotations); err == nil {
			entries = append(entries, carryoverSdg("yaml_annotations", s))
		}
	}
	if doc.XOem != nil {
		if s, err := toCanonicalYAML(doc.XOem); err == nil {
			entries = append(entries, carryoverSdg("yaml_x_oem", s))
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return &ir.SDGs{Sdgs: entries}
}

func carryoverSdg(caption, value string) ir.Sdg {
	return ir.Sdg{CaptionSN: caption, Sds: []ir.SdOrSdg{{Kind: ir.SdOrSdgSd, Sd: &ir.Sd{Value: value}}}}
}

func toCanonicalYAML(v interface{}) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// --- state charts ---

func sessionsToStateChart(sessions map[string]Session, sm *StateModel) ir.StateChart {
	names := make([]string, 0, len(sessions))
	for k := range sessions {
		names = append(names, k)
	}
	sort.Strings(names)
	states := make([]ir.State, 0, len(names))
	for _, name := range names {
		s := sessions[name]
		id := yamlValueToU64(&s.ID)
		states = append(states, ir.State{ShortName: name, LongName: &ir.LongName{Value: strconv.FormatUint(id, 10), TI: s.Alias}})
	}
	startState := "default"
	var transitions []ir.StateTransition
	if sm != nil {
		if sm.InitialState != nil && sm.InitialState.Session != "" {
			startState = sm.InitialState.Session
		}
		if sm.SessionTransitions != nil {
			froms := make([]string, 0, len(sm.SessionTransitions))
			for k := range sm.SessionTransitions {
				froms = append(froms, k)
			}
			sort.Strings(froms)
			for _, from := range froms {
				for _, to := range sm.SessionTransitions[from] {
					transitions = append(transitions, ir.StateTransition{
						ShortName:          fmt.Sprintf("%s_to_%s", from, to),
						SourceShortNameRef: from,
						TargetShortNameRef: to,
					})
				}
			}
		}
	}
	return ir.StateChart{
		ShortName:              "SessionStates",
		Semantic:               "SESSION",
		StateTransitions:       transitions,
		StartStateShortNameRef: startState,
		States:                 states,
	}
}

func securityToStateChart(security map[string]SecurityLevel) ir.StateChart {
	names := make([]string, 0, len(security))
	for k := range security {
		names = append(names, k)
	}
	sort.Strings(names)
	states := make([]ir.State, 0, len(names))
	for _, name := range names {
		level := security[name]
		states = append(states, ir.State{ShortName: name, LongName: &ir.LongName{Value: strconv.FormatUint(uint64(level.Level), 10)}})
	}
	return ir.StateChart{ShortName: "SecurityAccessStates", Semantic: "SECURITY", States: states}
}

func authenticationToStateChart(auth *Authentication) (ir.StateChart, bool) {
	if len(auth.Roles) == 0 {
		return ir.StateChart{}, false
	}
	names := make([]string, 0, len(auth.Roles))
	for k := range auth.Roles {
		names = append(names, k)
	}
	sort.Strings(names)
	states := make([]ir.State, 0, len(names))
	for _, name := range names {
		roleVal := auth.Roles[name]
		var id uint64
		var m map[string]yaml.Node
		if err := roleVal.Decode(&m); err == nil {
			if idNode, ok := m["id"]; ok {
				id = yamlValueToU64(&idNode)
			}
		}
		states = append(states, ir.State{ShortName: name, LongName: &ir.LongName{Value: strconv.FormatUint(id, 10)}})
	}
	return ir.StateChart{ShortName: "AuthenticationStates", Semantic: "AUTHENTICATION", States: states}, true
}

// --- variants ---

func parseVariantDefinition(name string, vdef *VariantDef, baseVariantName string, sessions map[string]Session, security map[string]SecurityLevel) ir.Variant {
	var patterns []ir.VariantPattern
	if vdef.Detect != nil {
		if mp, ok := parseDetectToMatchingParameter(vdef.Detect); ok {
			patterns = append(patterns, ir.VariantPattern{MatchingParameters: []ir.MatchingParameter{mp}})
		}
	}

	var services []ir.DiagService
	if svc, ok := vdef.OverrideServices(); ok {
		gen := NewServiceGenerator(svc).WithSessions(sessions).WithSecurity(security)
		services = gen.GenerateAll()
	}

	var longName *ir.LongName
	if vdef.Description != "" {
		longName = &ir.LongName{Value: vdef.Description}
	}

	return ir.Variant{
		DiagLayer: ir.DiagLayer{
			ShortName:    name,
			LongName:     longName,
			DiagServices: services,
		},
		IsBaseVariant:  false,
		VariantPatterns: patterns,
		ParentRefs: []ir.ParentRef{{
			Ref: ir.ParentRefData{
				Kind:    ir.ParentRefVariant,
				Variant: &ir.Variant{DiagLayer: ir.DiagLayer{ShortName: baseVariantName}, IsBaseVariant: true},
			},
		}},
	}
}

func parseDetectToMatchingParameter(detect *yaml.Node) (ir.MatchingParameter, bool) {
	var m map[string]yaml.Node
	if err := detect.Decode(&m); err != nil {
		return ir.MatchingParameter{}, false
	}
	rpmNode, ok := m["response_param_match"]
	if !ok {
		return ir.MatchingParameter{}, false
	}
	var rpm map[string]yaml.Node
	if err := rpmNode.Decode(&rpm); err != nil {
		return ir.MatchingParameter{}, false
	}
	serviceNode, ok1 := rpm["service"]
	pathNode, ok2 := rpm["param_path"]
	expectedNode, ok3 := rpm["expected_value"]
	if !ok1 || !ok2 || !ok3 {
		return ir.MatchingParameter{}, false
	}
	expected := expectedNode.Value
	if expectedNode.Tag == "!!int" {
		if n, err := strconv.ParseInt(expectedNode.Value, 10, 64); err == nil {
			expected = fmt.Sprintf("0x%X", n)
		}
	}
	return ir.MatchingParameter{
		ExpectedValue: expected,
		DiagService:   &ir.DiagService{DiagComm: ir.DiagComm{ShortName: serviceNode.Value}},
		OutParam:      &ir.Param{ShortName: pathNode.Value},
	}, true
}

// --- access patterns ---

func buildAccessPatternLookup(patterns map[string]AccessPattern, sessions map[string]Session, security map[string]SecurityLevel, auth *Authentication) map[string][]ir.PreConditionStateRef {
	if len(patterns) == 0 {
		return nil
	}
	sessionStates := map[string]ir.State{}
	for name, s := range sessions {
		id := yamlValueToU64(&s.ID)
		sessionStates[name] = ir.State{ShortName: name, LongName: &ir.LongName{Value: strconv.FormatUint(id, 10), TI: s.Alias}}
	}
	securityStates := map[string]ir.State{}
	for name, lvl := range security {
		securityStates[name] = ir.State{ShortName: name, LongName: &ir.LongName{Value: strconv.FormatUint(uint64(lvl.Level), 10)}}
	}
	authStates := map[string]ir.State{}
	if auth != nil {
		for name, roleVal := range auth.Roles {
			var id uint64
			var m map[string]yaml.Node
			if err := roleVal.Decode(&m); err == nil {
				if idNode, ok := m["id"]; ok {
					id = yamlValueToU64(&idNode)
				}
			}
			authStates[name] = ir.State{ShortName: name, LongName: &ir.LongName{Value: strconv.FormatUint(id, 10)}}
		}
	}

	out := map[string][]ir.PreConditionStateRef{}
	for patternName, pattern := range patterns {
		var refs []ir.PreConditionStateRef
		refs = append(refs, nodeSeqStateRefs(&pattern.Sessions, "SessionStates", sessionStates)...)
		refs = append(refs, nodeSeqStateRefs(&pattern.Security, "SecurityAccessStates", securityStates)...)
		refs = append(refs, nodeSeqStateRefs(&pattern.Authentication, "AuthenticationStates", authStates)...)
		out[patternName] = refs
	}
	return out
}

func nodeSeqStateRefs(node *yaml.Node, chart string, states map[string]ir.State) []ir.PreConditionStateRef {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}
	var refs []ir.PreConditionStateRef
	for _, item := range node.Content {
		name := item.Value
		state, ok := states[name]
		if !ok {
			continue
		}
		s := state
		refs = append(refs, ir.PreConditionStateRef{Value: chart, InParamPathShortName: name, State: &s})
	}
	return refs
}

func applyAccessPattern(dc *ir.DiagComm, patternName string, patterns map[string][]ir.PreConditionStateRef) {
	if patternName == "" {
		return
	}
	refs, ok := patterns[patternName]
	if !ok {
		return
	}
	dc.PreConditionStateRefs = refs
	sdg := ir.Sdg{CaptionSN: "access_pattern", Sds: []ir.SdOrSdg{{Kind: ir.SdOrSdgSd, Sd: &ir.Sd{Value: patternName}}}}
	if dc.SDGs == nil {
		dc.SDGs = &ir.SDGs{Sdgs: []ir.Sdg{sdg}}
	} else {
		dc.SDGs.Sdgs = append(dc.SDGs.Sdgs, sdg)
	}
}

// --- memory config ---

func parseMemoryConfig(mc *YamlMemoryConfig) *ir.MemoryConfig {
	names := make([]string, 0, len(mc.Regions))
	for k := range mc.Regions {
		names = append(names, k)
	}
	sort.Strings(names)
	regions := make([]ir.MemoryRegion, 0, len(names))
	for _, name := range names {
		r := mc.Regions[name]
		attrs := map[string]string{"access": r.Access}
		if r.SecurityLevel != "" {
			attrs["security_level"] = r.SecurityLevel
		}
		if r.Session != nil {
			attrs["session"] = yamlValueToString(r.Session)
		}
		size := uint64(0)
		if r.End > r.Start {
			size = r.End - r.Start
		}
		regions = append(regions, ir.MemoryRegion{Name: r.Name, StartAddress: r.Start, Size: size, Attributes: attrs})
	}
	return &ir.MemoryConfig{Regions: regions}
}

// --- comparams (simplified: one ComParamRef per entry, value only) ---

func parseComParams(m map[string]ComParamEntry) []ir.ComParamRef {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]ir.ComParamRef, 0, len(names))
	for _, name := range names {
		entry := m[name]
		var val string
		switch {
		case entry.Full != nil && entry.Full.Default != nil:
			val = yamlValueToString(entry.Full.Default)
		case entry.Simple != nil:
			val = yamlValueToString(entry.Simple)
		}
		cp := &ir.ComParam{ShortName: name}
		out = append(out, ir.ComParamRef{SimpleValue: &ir.SimpleValue{Value: val}, ComParam: cp})
	}
	return out
}

// --- scalar helpers ---

func parseHexKey(key string) uint32 {
	s := strings.TrimSpace(key)
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		n, _ := strconv.ParseUint(hex, 16, 32)
		return uint32(n)
	}
	if hex, ok := strings.CutPrefix(s, "0X"); ok {
		n, _ := strconv.ParseUint(hex, 16, 32)
		return uint32(n)
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

func yamlValueToU64(v *yaml.Node) uint64 {
	if v == nil {
		return 0
	}
	s := strings.TrimSpace(v.Value)
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		n, _ := strconv.ParseUint(hex, 16, 64)
		return n
	}
	if hex, ok := strings.CutPrefix(s, "0X"); ok {
		n, _ := strconv.ParseUint(hex, 16, 64)
		return n
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func yamlValueToString(v *yaml.Node) string {
	if v == nil {
		return ""
	}
	return v.Value
}

func u32p(v uint32) *uint32 { return &v }

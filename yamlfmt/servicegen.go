package yamlfmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// ServiceGenerator synthesizes ir.DiagService values from the declarative
// `services` section (spec.md §4.6 "Service synthesis"), grounded on
// diag-yaml/src/service_generator.rs: one method per UDS service family.
type ServiceGenerator struct {
	services *YamlServices
	sessions map[string]Session
	security map[string]SecurityLevel
}

// NewServiceGenerator builds a generator over one document's services table.
func NewServiceGenerator(services *YamlServices) *ServiceGenerator {
	if services == nil {
		services = &YamlServices{}
	}
	return &ServiceGenerator{services: services}
}

// WithSessions supplies the document-level `sessions` table, used when
// DiagnosticSessionControl has no explicit subfunctions of its own.
func (g *ServiceGenerator) WithSessions(sessions map[string]Session) *ServiceGenerator {
	g.sessions = sessions
	return g
}

// WithSecurity supplies the document-level `security` table, used to
// generate the SecurityAccess RequestSeed/SendKey pairs.
func (g *ServiceGenerator) WithSecurity(security map[string]SecurityLevel) *ServiceGenerator {
	g.security = security
	return g
}

// GenerateAll runs every generator method and concatenates the results.
func (g *ServiceGenerator) GenerateAll() []ir.DiagService {
	var out []ir.DiagService
	out = append(out, g.GenerateDiagnosticSessionControl()...)
	out = append(out, g.GenerateSecurityAccess()...)
	out = append(out, g.GenerateEcuReset()...)
	out = append(out, g.GenerateTesterPresent()...)
	out = append(out, g.GenerateControlDTCSetting()...)
	out = append(out, g.GenerateClearDiagnosticInformation()...)
	out = append(out, g.GenerateReadDTCInformation()...)
	return out
}

// GenerateDiagnosticSessionControl builds one DiagnosticSessionControl
// (0x10) service per session, either from an explicit `subfunctions` map/
// sequence or from the document-level `sessions` table.
func (g *ServiceGenerator) GenerateDiagnosticSessionControl() []ir.DiagService {
	entry := g.services.DiagnosticSessionControl
	if entry == nil || !entry.Enabled {
		return nil
	}
	if entry.Subfunctions != nil {
		return g.sessionServicesFromSubfunctions(entry.Subfunctions)
	}
	if len(g.sessions) == 0 {
		return nil
	}
	names := sortedKeys(g.sessions)
	out := make([]ir.DiagService, 0, len(names))
	for _, name := range names {
		session := g.sessions[name]
		id := yamlValueToU8(&session.ID)
		out = append(out, buildService(
			fmt.Sprintf("DiagnosticSessionControl_%s", name),
			"SESSION",
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x10"),
				codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", id)),
			},
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x50"),
				matchingRequestParam("SubFunction_Echo", 1, 1),
				valueParam("P2_Server", 2, 16),
				valueParam("P2Star_Server", 4, 16),
			},
		))
	}
	return out
}

func (g *ServiceGenerator) sessionServicesFromSubfunctions(subfuncs *yaml.Node) []ir.DiagService {
	posResp := func() []ir.Param {
		return []ir.Param{
			codedConstParam("SID", 0, 8, "0x50"),
			matchingRequestParam("SubFunction_Echo", 1, 1),
			valueParam("P2_Server", 2, 16),
			valueParam("P2Star_Server", 4, 16),
		}
	}
	switch subfuncs.Kind {
	case yaml.MappingNode:
		var m map[string]yaml.Node
		if err := subfuncs.Decode(&m); err != nil {
			return nil
		}
		names := make([]string, 0, len(m))
		for k := range m {
			names = append(names, k)
		}
		sort.Strings(names)
		out := make([]ir.DiagService, 0, len(names))
		for _, name := range names {
			v := m[name]
			id := yamlValueToU8(&v)
			out = append(out, buildService(
				fmt.Sprintf("DiagnosticSessionControl_%s", name),
				"SESSION",
				[]ir.Param{
					codedConstParam("SID", 0, 8, "0x10"),
					codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", id)),
				},
				posResp(),
			))
		}
		return out
	case yaml.SequenceNode:
		out := make([]ir.DiagService, 0, len(subfuncs.Content))
		for _, v := range subfuncs.Content {
			id := yamlValueToU8(v)
			out = append(out, buildService(
				fmt.Sprintf("DiagnosticSessionControl_0x%02X", id),
				"SESSION",
				[]ir.Param{
					codedConstParam("SID", 0, 8, "0x10"),
					codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", id)),
				},
				posResp(),
			))
		}
		return out
	default:
		return nil
	}
}

// GenerateSecurityAccess builds two services per security level
// (SecurityAccess_RequestSeed_<name> and SecurityAccess_SendKey_<name>).
func (g *ServiceGenerator) GenerateSecurityAccess() []ir.DiagService {
	entry := g.services.SecurityAccess
	if entry == nil || !entry.Enabled {
		return nil
	}
	if len(g.security) == 0 {
		return nil
	}
	names := sortedSecurityKeys(g.security)
	var out []ir.DiagService
	for _, name := range names {
		level := g.security[name]
		seedByte := yamlValueToU8(&level.SeedRequest)
		keyByte := yamlValueToU8(&level.KeySend)
		seedBits := level.SeedSize * 8
		if seedBits == 0 {
			seedBits = 8
		}
		keyBits := level.KeySize * 8
		if keyBits == 0 {
			keyBits = 8
		}
		out = append(out, buildService(
			fmt.Sprintf("SecurityAccess_RequestSeed_%s", name),
			"SECURITY-ACCESS",
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x27"),
				codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", seedByte)),
			},
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x67"),
				matchingRequestParam("SubFunction_Echo", 1, 1),
				valueParam("SecuritySeed", 2, seedBits),
			},
		))
		out = append(out, buildService(
			fmt.Sprintf("SecurityAccess_SendKey_%s", name),
			"SECURITY-ACCESS",
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x27"),
				codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", keyByte)),
				valueParam("SecurityKey", 2, keyBits),
			},
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x67"),
				matchingRequestParam("SubFunction_Echo", 1, 1),
			},
		))
	}
	return out
}

// GenerateEcuReset builds one ECUReset (0x11) service per configured reset
// type, falling back to the three standard UDS reset types.
func (g *ServiceGenerator) GenerateEcuReset() []ir.DiagService {
	entry := g.services.EcuReset
	if entry == nil || !entry.Enabled {
		return nil
	}
	posResp := []ir.Param{
		codedConstParam("SID", 0, 8, "0x51"),
		matchingRequestParam("SubFunction_Echo", 1, 1),
	}
	if entry.Subfunctions != nil && entry.Subfunctions.Kind == yaml.MappingNode {
		var m map[string]yaml.Node
		if err := entry.Subfunctions.Decode(&m); err == nil {
			names := make([]string, 0, len(m))
			for k := range m {
				names = append(names, k)
			}
			sort.Strings(names)
			out := make([]ir.DiagService, 0, len(names))
			for _, name := range names {
				v := m[name]
				subfunc := yamlValueToU8(&v)
				out = append(out, buildService(
					fmt.Sprintf("ECUReset_%s", name),
					"ECU-RESET",
					[]ir.Param{
						codedConstParam("SID", 0, 8, "0x11"),
						codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", subfunc)),
					},
					posResp,
				))
			}
			return out
		}
	}
	defaults := []struct {
		name    string
		subfunc uint8
	}{
		{"hardReset", 0x01}, {"keyOffOnReset", 0x02}, {"softReset", 0x03},
	}
	out := make([]ir.DiagService, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, buildService(
			fmt.Sprintf("ECUReset_%s", d.name),
			"ECU-RESET",
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x11"),
				codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", d.subfunc)),
			},
			posResp,
		))
	}
	return out
}

// GenerateTesterPresent builds the single TesterPresent (0x3E) service.
func (g *ServiceGenerator) GenerateTesterPresent() []ir.DiagService {
	entry := g.services.TesterPresent
	if entry == nil || !entry.Enabled {
		return nil
	}
	return []ir.DiagService{buildService(
		"TesterPresent",
		"TESTING",
		[]ir.Param{
			codedConstParam("SID", 0, 8, "0x3E"),
			codedConstParam("SubFunction", 1, 8, "0x00"),
		},
		[]ir.Param{
			codedConstParam("SID", 0, 8, "0x7E"),
			matchingRequestParam("SubFunction_Echo", 1, 1),
		},
	)}
}

// GenerateControlDTCSetting builds the on/off ControlDTCSetting (0x85)
// service pair.
func (g *ServiceGenerator) GenerateControlDTCSetting() []ir.DiagService {
	entry := g.services.ControlDTCSetting
	if entry == nil || !entry.Enabled {
		return nil
	}
	subfuncs := []struct {
		name    string
		subfunc uint8
	}{{"on", 0x01}, {"off", 0x02}}
	out := make([]ir.DiagService, 0, len(subfuncs))
	for _, s := range subfuncs {
		out = append(out, buildService(
			fmt.Sprintf("ControlDTCSetting_%s", s.name),
			"CONTROL-DTC-SETTING",
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0x85"),
				codedConstParam("SubFunction", 1, 8, fmt.Sprintf("0x%02X", s.subfunc)),
			},
			[]ir.Param{
				codedConstParam("SID", 0, 8, "0xC5"),
				matchingRequestParam("SubFunction_Echo", 1, 1),
			},
		))
	}
	return out
}

// GenerateClearDiagnosticInformation builds the single
// ClearDiagnosticInformation (0x14) service.
func (g *ServiceGenerator) GenerateClearDiagnosticInformation() []ir.DiagService {
	entry := g.services.ClearDiagnosticInformation
	if entry == nil || !entry.Enabled {
		return nil
	}
	return []ir.DiagService{buildService(
		"ClearDiagnosticInformation",
		"CLEAR-DTC",
		[]ir.Param{
			codedConstParam("SID", 0, 8, "0x14"),
			valueParam("DTCGroupOfDTC", 1, 24),
		},
		[]ir.Param{
			codedConstParam("SID", 0, 8, "0x54"),
		},
	)}
}

// GenerateReadDTCInformation builds the single ReadDTCInformation (0x19)
// service.
func (g *ServiceGenerator) GenerateReadDTCInformation() []ir.DiagService {
	entry := g.services.ReadDTCInformation
	if entry == nil || !entry.Enabled {
		return nil
	}
	return []ir.DiagService{buildService(
		"ReadDTCInformation",
		"READ-DTC-INFO",
		[]ir.Param{
			codedConstParam("SID", 0, 8, "0x19"),
			valueParam("SubFunction", 1, 8),
		},
		[]ir.Param{
			codedConstParam("SID", 0, 8, "0x59"),
			matchingRequestParam("SubFunction_Echo", 1, 1),
		},
	)}
}

// --- helpers ---

func sortedKeys(m map[string]Session) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedSecurityKeys(m map[string]SecurityLevel) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// yamlValueToU8 mirrors service_generator.rs's yaml_value_to_u8: accepts a
// plain integer scalar or a "0x.."-prefixed hex string.
func yamlValueToU8(v *yaml.Node) uint8 {
	if v == nil {
		return 0
	}
	s := strings.TrimSpace(v.Value)
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		n, _ := strconv.ParseUint(hex, 16, 8)
		return uint8(n)
	}
	if hex, ok := strings.CutPrefix(s, "0X"); ok {
		n, _ := strconv.ParseUint(hex, 16, 8)
		return uint8(n)
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return uint8(n)
}

func buildService(shortName, semantic string, reqParams, respParams []ir.Param) ir.DiagService {
	return ir.DiagService{
		DiagComm: ir.DiagComm{ShortName: shortName, Semantic: semantic},
		Request:  &ir.Request{Params: reqParams},
		PosResponses: []ir.Response{
			{ResponseType: ir.ResponsePositive, Params: respParams},
		},
	}
}

func codedConstParam(name string, bytePos, bitSize uint32, value string) ir.Param {
	bp := bytePos
	return ir.Param{
		ShortName:    name,
		ParamType:    ir.ParamCodedConst,
		BytePosition: &bp,
		Data: ir.ParamData{
			CodedConst: &ir.CodedConstData{
				CodedValue: value,
				DiagCodedType: ir.DiagCodedType{
					BaseDataType:       ir.AUint32,
					IsHighLowByteOrder: true,
					Data: ir.DiagCodedTypeData{
						StandardLength: &ir.StandardLengthData{BitLength: bitSize},
					},
				},
			},
		},
	}
}

func valueParam(name string, bytePos, bitSize uint32) ir.Param {
	bp := bytePos
	return ir.Param{
		ShortName:    name,
		ParamType:    ir.ParamValue,
		BytePosition: &bp,
		Data: ir.ParamData{
			Value: &ir.ValueData{
				Dop: &ir.Dop{
					DopType:   ir.DopRegular,
					ShortName: name + "_DOP",
					Data: ir.DopData{
						NormalDop: &ir.NormalDopData{
							DiagCodedType: &ir.DiagCodedType{
								BaseDataType:       ir.AUint32,
								IsHighLowByteOrder: true,
								Data: ir.DiagCodedTypeData{
									StandardLength: &ir.StandardLengthData{BitLength: bitSize},
								},
							},
						},
					},
				},
			},
		},
	}
}

func matchingRequestParam(name string, bytePos, byteLength uint32) ir.Param {
	bp := bytePos
	return ir.Param{
		ShortName:    name,
		ParamType:    ir.ParamMatchingRequestParam,
		BytePosition: &bp,
		Data: ir.ParamData{
			MatchingRequestParam: &ir.MatchingRequestParamData{
				RequestBytePos: int32(bytePos),
				ByteLength:     byteLength,
			},
		},
	}
}

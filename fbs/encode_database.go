package fbs

import (
	"sort"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// stringMapEntry is the wire shape for a Go map[string]string field
// (Database.Metadata, MemoryRegion.Attributes, TypeDefinition.EnumTable):
// FlatBuffers has no native map type, and encoding order must be
// deterministic for MDD's "identical input -> identical bytes" property
// (spec.md §6.3), so keys are sorted before encoding.
func encodeStringMap(b *flatbuffers.Builder, m map[string]string) (keysOff, valuesOff flatbuffers.UOffsetT) {
	if len(m) == 0 {
		return 0, 0
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return createStringVector(b, keys), createStringVector(b, values)
}

func decodeStringMap(tab *flatbuffers.Table, keysRaw, valuesRaw flatbuffers.UOffsetT, keysLen, valuesLen int) map[string]string {
	if keysLen == 0 {
		return nil
	}
	keys := readStringVector(tab, keysRaw, keysLen)
	values := readStringVector(tab, valuesRaw, valuesLen)
	out := make(map[string]string, len(keys))
	for i, k := range keys {
		if i < len(values) {
			out[k] = values[i]
		}
	}
	return out
}

func encodeMatchingParameter(b *flatbuffers.Builder, m *ir.MatchingParameter) flatbuffers.UOffsetT {
	expected := b.CreateString(m.ExpectedValue)
	svc := encodeDiagService(b, m.DiagService)
	param := encodeParam(b, m.OutParam)
	o := startObj(b, 5)
	o.off(expected)
	o.off(svc)
	o.off(param)
	o.boolOpt(m.UsePhysicalAddressing)
	return o.end()
}

func decodeMatchingParameter(bytes []byte, pos flatbuffers.UOffsetT) ir.MatchingParameter {
	r := newObjR(tableAt(bytes, pos))
	var m ir.MatchingParameter
	m.ExpectedValue = r.str()
	if p, ok := r.table(); ok {
		m.DiagService = decodeDiagService(bytes, p)
	}
	if p, ok := r.table(); ok {
		m.OutParam = decodeParam(bytes, p)
	}
	m.UsePhysicalAddressing = r.boolOpt()
	return m
}

func encodeMatchingParameterVector(b *flatbuffers.Builder, ms []ir.MatchingParameter) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ms))
	for i := range ms {
		offs[i] = encodeMatchingParameter(b, &ms[i])
	}
	return createTableVector(b, offs)
}

func decodeMatchingParameterVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.MatchingParameter {
	if length == 0 {
		return nil
	}
	out := make([]ir.MatchingParameter, length)
	for i := 0; i < length; i++ {
		out[i] = decodeMatchingParameter(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeVariantPattern(b *flatbuffers.Builder, v *ir.VariantPattern) flatbuffers.UOffsetT {
	matchers := encodeMatchingParameterVector(b, v.MatchingParameters)
	o := startObj(b, 1)
	o.off(matchers)
	return o.end()
}

func decodeVariantPattern(bytes []byte, pos flatbuffers.UOffsetT) ir.VariantPattern {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var v ir.VariantPattern
	if rawOff, length, ok := r.vector(); ok {
		v.MatchingParameters = decodeMatchingParameterVector(t, rawOff, length)
	}
	return v
}

func encodeVariantPatternVector(b *flatbuffers.Builder, vs []ir.VariantPattern) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(vs))
	for i := range vs {
		offs[i] = encodeVariantPattern(b, &vs[i])
	}
	return createTableVector(b, offs)
}

func decodeVariantPatternVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.VariantPattern {
	if length == 0 {
		return nil
	}
	out := make([]ir.VariantPattern, length)
	for i := 0; i < length; i++ {
		out[i] = decodeVariantPattern(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

// encodeDiagLayer is shared by Variant, FunctionalGroup, Protocol, and
// EcuSharedData (spec.md §3.2 "DiagLayer").
func encodeDiagLayer(b *flatbuffers.Builder, l *ir.DiagLayer) flatbuffers.UOffsetT {
	sn := b.CreateString(l.ShortName)
	ln := encodeText(b, l.LongName)
	fcs := encodeFunctClassesVector(b, l.FunctClasses)
	comparams := encodeComParamRefVector(b, l.ComParamRefs)
	services := encodeDiagServiceVector(b, l.DiagServices)
	jobs := encodeSingleEcuJobVector(b, l.SingleEcuJobs)
	charts := encodeStateChartVector(b, l.StateCharts)
	audiences := encodeAudienceList(b, l.AdditionalAudiences)
	sdgs := encodeSDGs(b, l.SDGs)
	o := startObj(b, 9)
	o.off(sn)
	o.off(ln)
	o.off(fcs)
	o.off(comparams)
	o.off(services)
	o.off(jobs)
	o.off(charts)
	o.off(audiences)
	o.off(sdgs)
	return o.end()
}

func decodeDiagLayer(bytes []byte, pos flatbuffers.UOffsetT) ir.DiagLayer {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var l ir.DiagLayer
	l.ShortName = r.str()
	if p, ok := r.table(); ok {
		l.LongName = decodeText(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok {
		l.FunctClasses = decodeFunctClasses(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		l.ComParamRefs = decodeComParamRefVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		l.DiagServices = decodeDiagServiceVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		l.SingleEcuJobs = decodeSingleEcuJobVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		l.StateCharts = decodeStateChartVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		l.AdditionalAudiences = decodeAudienceList(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		l.SDGs = decodeSDGs(bytes, p)
	}
	return l
}

func encodeState(b *flatbuffers.Builder, s *ir.State) flatbuffers.UOffsetT {
	sn := b.CreateString(s.ShortName)
	ln := encodeText(b, s.LongName)
	o := startObj(b, 2)
	o.off(sn)
	o.off(ln)
	return o.end()
}

func decodeState(bytes []byte, pos flatbuffers.UOffsetT) ir.State {
	r := newObjR(tableAt(bytes, pos))
	var s ir.State
	s.ShortName = r.str()
	if p, ok := r.table(); ok {
		s.LongName = decodeText(bytes, p)
	}
	return s
}

func encodeStateVector(b *flatbuffers.Builder, ss []ir.State) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ss))
	for i := range ss {
		offs[i] = encodeState(b, &ss[i])
	}
	return createTableVector(b, offs)
}

func decodeStateVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.State {
	if length == 0 {
		return nil
	}
	out := make([]ir.State, length)
	for i := 0; i < length; i++ {
		out[i] = decodeState(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeStateTransition(b *flatbuffers.Builder, s *ir.StateTransition) flatbuffers.UOffsetT {
	sn := b.CreateString(s.ShortName)
	src := b.CreateString(s.SourceShortNameRef)
	dst := b.CreateString(s.TargetShortNameRef)
	o := startObj(b, 3)
	o.off(sn)
	o.off(src)
	o.off(dst)
	return o.end()
}

func decodeStateTransition(bytes []byte, pos flatbuffers.UOffsetT) ir.StateTransition {
	r := newObjR(tableAt(bytes, pos))
	var s ir.StateTransition
	s.ShortName = r.str()
	s.SourceShortNameRef = r.str()
	s.TargetShortNameRef = r.str()
	return s
}

func encodeStateTransitionVector(b *flatbuffers.Builder, ss []ir.StateTransition) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ss))
	for i := range ss {
		offs[i] = encodeStateTransition(b, &ss[i])
	}
	return createTableVector(b, offs)
}

func decodeStateTransitionVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.StateTransition {
	if length == 0 {
		return nil
	}
	out := make([]ir.StateTransition, length)
	for i := 0; i < length; i++ {
		out[i] = decodeStateTransition(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeStateChart(b *flatbuffers.Builder, s *ir.StateChart) flatbuffers.UOffsetT {
	sn := b.CreateString(s.ShortName)
	semantic := b.CreateString(s.Semantic)
	transitions := encodeStateTransitionVector(b, s.StateTransitions)
	start := b.CreateString(s.StartStateShortNameRef)
	states := encodeStateVector(b, s.States)
	o := startObj(b, 5)
	o.off(sn)
	o.off(semantic)
	o.off(transitions)
	o.off(start)
	o.off(states)
	return o.end()
}

func decodeStateChart(bytes []byte, pos flatbuffers.UOffsetT) ir.StateChart {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var s ir.StateChart
	s.ShortName = r.str()
	s.Semantic = r.str()
	if rawOff, length, ok := r.vector(); ok {
		s.StateTransitions = decodeStateTransitionVector(t, rawOff, length)
	}
	s.StartStateShortNameRef = r.str()
	if rawOff, length, ok := r.vector(); ok {
		s.States = decodeStateVector(t, rawOff, length)
	}
	return s
}

func encodeStateChartVector(b *flatbuffers.Builder, ss []ir.StateChart) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ss))
	for i := range ss {
		offs[i] = encodeStateChart(b, &ss[i])
	}
	return createTableVector(b, offs)
}

func decodeStateChartVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.StateChart {
	if length == 0 {
		return nil
	}
	out := make([]ir.StateChart, length)
	for i := 0; i < length; i++ {
		out[i] = decodeStateChart(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeEcuSharedData(b *flatbuffers.Builder, e *ir.EcuSharedData) flatbuffers.UOffsetT {
	if e == nil {
		return 0
	}
	layer := encodeDiagLayer(b, &e.DiagLayer)
	o := startObj(b, 1)
	o.off(layer)
	return o.end()
}

func decodeEcuSharedData(bytes []byte, pos flatbuffers.UOffsetT) *ir.EcuSharedData {
	r := newObjR(tableAt(bytes, pos))
	e := &ir.EcuSharedData{}
	if p, ok := r.table(); ok {
		e.DiagLayer = decodeDiagLayer(bytes, p)
	}
	return e
}

// encodeParentRef and decodeParentRef drive ParentRefData's 5-way union
// (spec.md §4.4 Phase 3). Each payload case is embedded in full rather
// than by reference, mirroring the original Rust `to_fbs.rs` encoder,
// and terminates only when a Database's inheritance edges form a DAG at
// serialization time.
func encodeParentRef(b *flatbuffers.Builder, p *ir.ParentRef) flatbuffers.UOffsetT {
	notComm := createStringVector(b, p.NotInheritedDiagCommShortNames)
	notVars := createStringVector(b, p.NotInheritedVariablesShortNames)
	notDops := createStringVector(b, p.NotInheritedDopsShortNames)
	notTables := createStringVector(b, p.NotInheritedTablesShortNames)
	notGlobalNeg := createStringVector(b, p.NotInheritedGlobalNegResponsesShortNames)
	var payload flatbuffers.UOffsetT
	switch p.Ref.Kind {
	case ir.ParentRefVariant:
		payload = encodeVariant(b, p.Ref.Variant)
	case ir.ParentRefProtocol:
		payload = encodeProtocol(b, p.Ref.Protocol)
	case ir.ParentRefFunctionalGroup:
		payload = encodeFunctionalGroup(b, p.Ref.FunctionalGroup)
	case ir.ParentRefTableDop:
		payload = encodeTableDop(b, p.Ref.TableDop)
	case ir.ParentRefEcuSharedData:
		payload = encodeEcuSharedData(b, p.Ref.EcuSharedData)
	}
	o := startObj(b, 7)
	o.u8(uint8(p.Ref.Kind), 0)
	o.off(payload)
	o.off(notComm)
	o.off(notVars)
	o.off(notDops)
	o.off(notTables)
	o.off(notGlobalNeg)
	return o.end()
}

func decodeParentRef(bytes []byte, pos flatbuffers.UOffsetT) ir.ParentRef {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var p ir.ParentRef
	kind := ir.ParentRefKind(r.u8(0))
	p.Ref.Kind = kind
	payloadPos, ok := r.table()
	if ok {
		switch kind {
		case ir.ParentRefVariant:
			v := decodeVariant(bytes, payloadPos)
			p.Ref.Variant = v
		case ir.ParentRefProtocol:
			pr := decodeProtocol(bytes, payloadPos)
			p.Ref.Protocol = &pr
		case ir.ParentRefFunctionalGroup:
			fg := decodeFunctionalGroup(bytes, payloadPos)
			p.Ref.FunctionalGroup = fg
		case ir.ParentRefTableDop:
			p.Ref.TableDop = decodeTableDop(bytes, payloadPos)
		case ir.ParentRefEcuSharedData:
			p.Ref.EcuSharedData = decodeEcuSharedData(bytes, payloadPos)
		}
	}
	if rawOff, length, ok := r.vector(); ok {
		p.NotInheritedDiagCommShortNames = readStringVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		p.NotInheritedVariablesShortNames = readStringVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		p.NotInheritedDopsShortNames = readStringVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		p.NotInheritedTablesShortNames = readStringVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		p.NotInheritedGlobalNegResponsesShortNames = readStringVector(t, rawOff, length)
	}
	return p
}

func encodeParentRefVector(b *flatbuffers.Builder, ps []ir.ParentRef) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ps))
	for i := range ps {
		offs[i] = encodeParentRef(b, &ps[i])
	}
	return createTableVector(b, offs)
}

func decodeParentRefVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.ParentRef {
	if length == 0 {
		return nil
	}
	out := make([]ir.ParentRef, length)
	for i := 0; i < length; i++ {
		out[i] = decodeParentRef(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeVariant(b *flatbuffers.Builder, v *ir.Variant) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	layer := encodeDiagLayer(b, &v.DiagLayer)
	patterns := encodeVariantPatternVector(b, v.VariantPatterns)
	parents := encodeParentRefVector(b, v.ParentRefs)
	o := startObj(b, 4)
	o.off(layer)
	o.boolField(v.IsBaseVariant)
	o.off(patterns)
	o.off(parents)
	return o.end()
}

func decodeVariant(bytes []byte, pos flatbuffers.UOffsetT) *ir.Variant {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	v := &ir.Variant{}
	if p, ok := r.table(); ok {
		v.DiagLayer = decodeDiagLayer(bytes, p)
	}
	v.IsBaseVariant = r.boolField()
	if rawOff, length, ok := r.vector(); ok {
		v.VariantPatterns = decodeVariantPatternVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		v.ParentRefs = decodeParentRefVector(t, rawOff, length)
	}
	return v
}

func encodeVariantVector(b *flatbuffers.Builder, vs []ir.Variant) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(vs))
	for i := range vs {
		offs[i] = encodeVariant(b, &vs[i])
	}
	return createTableVector(b, offs)
}

func decodeVariantVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Variant {
	if length == 0 {
		return nil
	}
	out := make([]ir.Variant, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeVariant(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeFunctionalGroup(b *flatbuffers.Builder, f *ir.FunctionalGroup) flatbuffers.UOffsetT {
	if f == nil {
		return 0
	}
	layer := encodeDiagLayer(b, &f.DiagLayer)
	parents := encodeParentRefVector(b, f.ParentRefs)
	o := startObj(b, 2)
	o.off(layer)
	o.off(parents)
	return o.end()
}

func decodeFunctionalGroup(bytes []byte, pos flatbuffers.UOffsetT) *ir.FunctionalGroup {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	f := &ir.FunctionalGroup{}
	if p, ok := r.table(); ok {
		f.DiagLayer = decodeDiagLayer(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok {
		f.ParentRefs = decodeParentRefVector(t, rawOff, length)
	}
	return f
}

func encodeFunctionalGroupVector(b *flatbuffers.Builder, fs []ir.FunctionalGroup) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(fs))
	for i := range fs {
		offs[i] = encodeFunctionalGroup(b, &fs[i])
	}
	return createTableVector(b, offs)
}

func decodeFunctionalGroupVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.FunctionalGroup {
	if length == 0 {
		return nil
	}
	out := make([]ir.FunctionalGroup, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeFunctionalGroup(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeMemoryRegion(b *flatbuffers.Builder, m *ir.MemoryRegion) flatbuffers.UOffsetT {
	name := b.CreateString(m.Name)
	keysOff, valuesOff := encodeStringMap(b, m.Attributes)
	o := startObj(b, 7)
	o.off(name)
	o.u32(uint32(m.StartAddress), 0)
	o.u32(uint32(m.StartAddress>>32), 0)
	o.u32(uint32(m.Size), 0)
	o.u32(uint32(m.Size>>32), 0)
	o.off(keysOff)
	o.off(valuesOff)
	return o.end()
}

func decodeMemoryRegion(bytes []byte, pos flatbuffers.UOffsetT) ir.MemoryRegion {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var m ir.MemoryRegion
	m.Name = r.str()
	startLow := r.u32(0)
	startHigh := r.u32(0)
	sizeLow := r.u32(0)
	sizeHigh := r.u32(0)
	m.StartAddress = uint64(startHigh)<<32 | uint64(startLow)
	m.Size = uint64(sizeHigh)<<32 | uint64(sizeLow)
	keysRaw, keysLen, keysOK := r.vector()
	valuesRaw, valuesLen, _ := r.vector()
	if keysOK {
		m.Attributes = decodeStringMap(t, keysRaw, valuesRaw, keysLen, valuesLen)
	}
	return m
}

func encodeMemoryRegionVector(b *flatbuffers.Builder, ms []ir.MemoryRegion) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ms))
	for i := range ms {
		offs[i] = encodeMemoryRegion(b, &ms[i])
	}
	return createTableVector(b, offs)
}

func decodeMemoryRegionVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.MemoryRegion {
	if length == 0 {
		return nil
	}
	out := make([]ir.MemoryRegion, length)
	for i := 0; i < length; i++ {
		out[i] = decodeMemoryRegion(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeMemoryConfig(b *flatbuffers.Builder, m *ir.MemoryConfig) flatbuffers.UOffsetT {
	if m == nil {
		return 0
	}
	regions := encodeMemoryRegionVector(b, m.Regions)
	o := startObj(b, 1)
	o.off(regions)
	return o.end()
}

func decodeMemoryConfig(bytes []byte, pos flatbuffers.UOffsetT) *ir.MemoryConfig {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	m := &ir.MemoryConfig{}
	if rawOff, length, ok := r.vector(); ok {
		m.Regions = decodeMemoryRegionVector(t, rawOff, length)
	}
	return m
}

func encodeTypeDefinition(b *flatbuffers.Builder, td *ir.TypeDefinition) flatbuffers.UOffsetT {
	name := b.CreateString(td.Name)
	keysOff, valuesOff := encodeStringMap(b, td.EnumTable)
	lower := encodeLimit(b, td.LowerLimit)
	upper := encodeLimit(b, td.UpperLimit)
	unit := encodeUnit(b, td.Unit)
	o := startObj(b, 13)
	o.off(name)
	o.u8(uint8(td.BaseDataType), 0)
	o.u32(td.BitLength, 0)
	o.boolField(td.HighLowByteOrder)
	o.f64opt(td.Scale)
	o.f64opt(td.Offset)
	o.off(keysOff)
	o.off(valuesOff)
	o.off(lower)
	o.off(upper)
	o.off(unit)
	return o.end()
}

func decodeTypeDefinition(bytes []byte, pos flatbuffers.UOffsetT) ir.TypeDefinition {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var td ir.TypeDefinition
	td.Name = r.str()
	td.BaseDataType = ir.DataType(r.u8(0))
	td.BitLength = r.u32(0)
	td.HighLowByteOrder = r.boolField()
	td.Scale = r.f64opt()
	td.Offset = r.f64opt()
	keysRaw, keysLen, keysOK := r.vector()
	valuesRaw, valuesLen, _ := r.vector()
	if keysOK {
		td.EnumTable = decodeStringMap(t, keysRaw, valuesRaw, keysLen, valuesLen)
	}
	if p, ok := r.table(); ok {
		td.LowerLimit = decodeLimit(bytes, p)
	}
	if p, ok := r.table(); ok {
		td.UpperLimit = decodeLimit(bytes, p)
	}
	if p, ok := r.table(); ok {
		td.Unit = decodeUnit(bytes, p)
	}
	return td
}

func encodeTypeDefinitionVector(b *flatbuffers.Builder, tds []ir.TypeDefinition) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(tds))
	for i := range tds {
		offs[i] = encodeTypeDefinition(b, &tds[i])
	}
	return createTableVector(b, offs)
}

func decodeTypeDefinitionVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.TypeDefinition {
	if length == 0 {
		return nil
	}
	out := make([]ir.TypeDefinition, length)
	for i := 0; i < length; i++ {
		out[i] = decodeTypeDefinition(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

// encodeDatabase and decodeDatabase are the package's public-facing root
// object (see codec.go's Encode/Decode).
func encodeDatabase(b *flatbuffers.Builder, d *ir.Database) flatbuffers.UOffsetT {
	ecuName := b.CreateString(d.EcuName)
	version := b.CreateString(d.Version)
	revision := b.CreateString(d.Revision)
	metaKeys, metaValues := encodeStringMap(b, d.Metadata)
	variants := encodeVariantVector(b, d.Variants)
	groups := encodeFunctionalGroupVector(b, d.FunctionalGroups)
	dtcs := encodeDtcVector(b, d.Dtcs)
	mem := encodeMemoryConfig(b, d.MemoryConfig)
	types := encodeTypeDefinitionVector(b, d.TypeDefinitions)
	o := startObj(b, 10)
	o.off(ecuName)
	o.off(version)
	o.off(revision)
	o.off(metaKeys)
	o.off(metaValues)
	o.off(variants)
	o.off(groups)
	o.off(dtcs)
	o.off(mem)
	o.off(types)
	return o.end()
}

func decodeDatabaseRoot(bytes []byte, t *flatbuffers.Table) *ir.Database {
	r := newObjR(t)
	d := &ir.Database{}
	d.EcuName = r.str()
	d.Version = r.str()
	d.Revision = r.str()
	keysRaw, keysLen, keysOK := r.vector()
	valuesRaw, valuesLen, _ := r.vector()
	if keysOK {
		d.Metadata = decodeStringMap(t, keysRaw, valuesRaw, keysLen, valuesLen)
	}
	if rawOff, length, ok := r.vector(); ok {
		d.Variants = decodeVariantVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		d.FunctionalGroups = decodeFunctionalGroupVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		d.Dtcs = decodeDtcVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		d.MemoryConfig = decodeMemoryConfig(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok {
		d.TypeDefinitions = decodeTypeDefinitionVector(t, rawOff, length)
	}
	return d
}

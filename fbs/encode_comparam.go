package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

func encodeComParamRegularData(b *flatbuffers.Builder, v *ir.ComParamRegularData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	value := b.CreateString(v.PhysicalDefaultValue)
	dop := encodeDop(b, v.Dop)
	o := startObj(b, 2)
	o.off(value)
	o.off(dop)
	return o.end()
}

func decodeComParamRegularData(bytes []byte, pos flatbuffers.UOffsetT) *ir.ComParamRegularData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.ComParamRegularData{PhysicalDefaultValue: r.str()}
	if p, ok := r.table(); ok {
		v.Dop = decodeDop(bytes, p)
	}
	return v
}

func encodeComplexValueVector(b *flatbuffers.Builder, vs []ir.ComplexValue) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(vs))
	for i := range vs {
		offs[i] = encodeComplexValue(b, &vs[i])
	}
	return createTableVector(b, offs)
}

func decodeComplexValueVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.ComplexValue {
	if length == 0 {
		return nil
	}
	out := make([]ir.ComplexValue, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeComplexValue(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeComParamComplexData(b *flatbuffers.Builder, v *ir.ComParamComplexData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	children := encodeComParamVector(b, v.ComParams)
	defaults := encodeComplexValueVector(b, v.ComplexPhysicalDefaultValues)
	o := startObj(b, 3)
	o.off(children)
	o.off(defaults)
	o.boolField(v.AllowMultipleValues)
	return o.end()
}

func decodeComParamComplexData(bytes []byte, pos flatbuffers.UOffsetT) *ir.ComParamComplexData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	v := &ir.ComParamComplexData{}
	if rawOff, length, ok := r.vector(); ok {
		v.ComParams = decodeComParamVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		v.ComplexPhysicalDefaultValues = decodeComplexValueVector(t, rawOff, length)
	}
	v.AllowMultipleValues = r.boolField()
	return v
}

// encodeComParam and decodeComParam drive ComParamSpecificData's 2-way
// union (Regular | Complex), discriminated by ComParamType rather than a
// dedicated Kind field -- ComParamType already carries that information
// for this entity (spec.md §4.1).
func encodeComParam(b *flatbuffers.Builder, c *ir.ComParam) flatbuffers.UOffsetT {
	if c == nil {
		return 0
	}
	sn := b.CreateString(c.ShortName)
	ln := encodeText(b, c.LongName)
	class := b.CreateString(c.ParamClass)
	var payload flatbuffers.UOffsetT
	switch c.ComParamType {
	case ir.ComParamRegular:
		payload = encodeComParamRegularData(b, c.Data.Regular)
	case ir.ComParamComplex:
		payload = encodeComParamComplexData(b, c.Data.Complex)
	}
	o := startObj(b, 9)
	o.u8(uint8(c.ComParamType), 0)
	o.off(sn)
	o.off(ln)
	o.off(class)
	o.u8(uint8(c.CPType), 0)
	o.u32opt(c.DisplayLevel)
	o.u8(uint8(c.CPUsage), 0)
	o.off(payload)
	return o.end()
}

func decodeComParam(bytes []byte, pos flatbuffers.UOffsetT) ir.ComParam {
	r := newObjR(tableAt(bytes, pos))
	var c ir.ComParam
	c.ComParamType = ir.ComParamType(r.u8(0))
	c.ShortName = r.str()
	if p, ok := r.table(); ok {
		c.LongName = decodeText(bytes, p)
	}
	c.ParamClass = r.str()
	c.CPType = ir.ComParamStandardisationLevel(r.u8(0))
	c.DisplayLevel = r.u32opt()
	c.CPUsage = ir.ComParamUsage(r.u8(0))
	if payloadPos, ok := r.table(); ok {
		switch c.ComParamType {
		case ir.ComParamRegular:
			c.Data.Regular = decodeComParamRegularData(bytes, payloadPos)
		case ir.ComParamComplex:
			c.Data.Complex = decodeComParamComplexData(bytes, payloadPos)
		}
	}
	return c
}

func encodeComParamVector(b *flatbuffers.Builder, cs []ir.ComParam) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(cs))
	for i := range cs {
		offs[i] = encodeComParam(b, &cs[i])
	}
	return createTableVector(b, offs)
}

func decodeComParamVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.ComParam {
	if length == 0 {
		return nil
	}
	out := make([]ir.ComParam, length)
	for i := 0; i < length; i++ {
		out[i] = decodeComParam(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeUnitGroup(b *flatbuffers.Builder, u *ir.UnitGroup) flatbuffers.UOffsetT {
	sn := b.CreateString(u.ShortName)
	ln := encodeText(b, u.LongName)
	refs := make([]flatbuffers.UOffsetT, len(u.UnitRefs))
	for i := range u.UnitRefs {
		refs[i] = encodeUnit(b, &u.UnitRefs[i])
	}
	unitRefs := createTableVector(b, refs)
	o := startObj(b, 3)
	o.off(sn)
	o.off(ln)
	o.off(unitRefs)
	return o.end()
}

func decodeUnitGroup(bytes []byte, pos flatbuffers.UOffsetT) ir.UnitGroup {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var u ir.UnitGroup
	u.ShortName = r.str()
	if p, ok := r.table(); ok {
		u.LongName = decodeText(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok && length > 0 {
		u.UnitRefs = make([]ir.Unit, length)
		for i := 0; i < length; i++ {
			u.UnitRefs[i] = *decodeUnit(bytes, vectorElemTable(t, rawOff, i))
		}
	}
	return u
}

func encodeUnitVector(b *flatbuffers.Builder, us []ir.Unit) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(us))
	for i := range us {
		offs[i] = encodeUnit(b, &us[i])
	}
	return createTableVector(b, offs)
}

func decodeUnitVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Unit {
	if length == 0 {
		return nil
	}
	out := make([]ir.Unit, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeUnit(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodePhysicalDimensionVector(b *flatbuffers.Builder, ds []ir.PhysicalDimension) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ds))
	for i := range ds {
		offs[i] = encodePhysicalDimension(b, &ds[i])
	}
	return createTableVector(b, offs)
}

func decodePhysicalDimensionVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.PhysicalDimension {
	if length == 0 {
		return nil
	}
	out := make([]ir.PhysicalDimension, length)
	for i := 0; i < length; i++ {
		out[i] = *decodePhysicalDimension(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeUnitSpec(b *flatbuffers.Builder, u *ir.UnitSpec) flatbuffers.UOffsetT {
	if u == nil {
		return 0
	}
	groups := make([]flatbuffers.UOffsetT, len(u.UnitGroups))
	for i := range u.UnitGroups {
		groups[i] = encodeUnitGroup(b, &u.UnitGroups[i])
	}
	groupsVec := createTableVector(b, groups)
	units := encodeUnitVector(b, u.Units)
	dims := encodePhysicalDimensionVector(b, u.PhysicalDimensions)
	sdgs := encodeSDGs(b, u.SDGs)
	o := startObj(b, 4)
	o.off(groupsVec)
	o.off(units)
	o.off(dims)
	o.off(sdgs)
	return o.end()
}

func decodeUnitSpec(bytes []byte, pos flatbuffers.UOffsetT) *ir.UnitSpec {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	u := &ir.UnitSpec{}
	if rawOff, length, ok := r.vector(); ok && length > 0 {
		u.UnitGroups = make([]ir.UnitGroup, length)
		for i := 0; i < length; i++ {
			u.UnitGroups[i] = decodeUnitGroup(bytes, vectorElemTable(t, rawOff, i))
		}
	}
	if rawOff, length, ok := r.vector(); ok {
		u.Units = decodeUnitVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		u.PhysicalDimensions = decodePhysicalDimensionVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		u.SDGs = decodeSDGs(bytes, p)
	}
	return u
}

func encodeComParamSubSet(b *flatbuffers.Builder, c *ir.ComParamSubSet) flatbuffers.UOffsetT {
	comparams := encodeComParamVector(b, c.ComParams)
	complexComparams := encodeComParamVector(b, c.ComplexComParams)
	dops := encodeDopVector(b, c.DataObjectProps)
	units := encodeUnitSpec(b, c.UnitSpec)
	o := startObj(b, 4)
	o.off(comparams)
	o.off(complexComparams)
	o.off(dops)
	o.off(units)
	return o.end()
}

func decodeComParamSubSet(bytes []byte, pos flatbuffers.UOffsetT) ir.ComParamSubSet {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var c ir.ComParamSubSet
	if rawOff, length, ok := r.vector(); ok {
		c.ComParams = decodeComParamVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		c.ComplexComParams = decodeComParamVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		c.DataObjectProps = decodeDopVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		c.UnitSpec = decodeUnitSpec(bytes, p)
	}
	return c
}

func encodeComParamSubSetVector(b *flatbuffers.Builder, cs []ir.ComParamSubSet) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(cs))
	for i := range cs {
		offs[i] = encodeComParamSubSet(b, &cs[i])
	}
	return createTableVector(b, offs)
}

func decodeComParamSubSetVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.ComParamSubSet {
	if length == 0 {
		return nil
	}
	out := make([]ir.ComParamSubSet, length)
	for i := 0; i < length; i++ {
		out[i] = decodeComParamSubSet(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeProtStack(b *flatbuffers.Builder, p *ir.ProtStack) flatbuffers.UOffsetT {
	if p == nil {
		return 0
	}
	sn := b.CreateString(p.ShortName)
	ln := encodeText(b, p.LongName)
	pdu := b.CreateString(p.PduProtocolType)
	link := b.CreateString(p.PhysicalLinkType)
	subsets := encodeComParamSubSetVector(b, p.ComparamSubSetRefs)
	o := startObj(b, 5)
	o.off(sn)
	o.off(ln)
	o.off(pdu)
	o.off(link)
	o.off(subsets)
	return o.end()
}

func decodeProtStack(bytes []byte, pos flatbuffers.UOffsetT) *ir.ProtStack {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	p := &ir.ProtStack{}
	p.ShortName = r.str()
	if ln, ok := r.table(); ok {
		p.LongName = decodeText(bytes, ln)
	}
	p.PduProtocolType = r.str()
	p.PhysicalLinkType = r.str()
	if rawOff, length, ok := r.vector(); ok {
		p.ComparamSubSetRefs = decodeComParamSubSetVector(t, rawOff, length)
	}
	return p
}

func encodeProtStackVector(b *flatbuffers.Builder, ps []ir.ProtStack) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ps))
	for i := range ps {
		offs[i] = encodeProtStack(b, &ps[i])
	}
	return createTableVector(b, offs)
}

func decodeProtStackVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.ProtStack {
	if length == 0 {
		return nil
	}
	out := make([]ir.ProtStack, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeProtStack(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeComParamSpec(b *flatbuffers.Builder, c *ir.ComParamSpec) flatbuffers.UOffsetT {
	if c == nil {
		return 0
	}
	stacks := encodeProtStackVector(b, c.ProtStacks)
	o := startObj(b, 1)
	o.off(stacks)
	return o.end()
}

func decodeComParamSpec(bytes []byte, pos flatbuffers.UOffsetT) *ir.ComParamSpec {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	c := &ir.ComParamSpec{}
	if rawOff, length, ok := r.vector(); ok {
		c.ProtStacks = decodeProtStackVector(t, rawOff, length)
	}
	return c
}

// encodeProtocol and decodeProtocol are mutually recursive with
// themselves through Protocol.ParentRefs (a Protocol layer may inherit
// from other Protocol layers); this terminates only when the Protocol
// parent edges are acyclic.
func encodeProtocol(b *flatbuffers.Builder, p *ir.Protocol) flatbuffers.UOffsetT {
	if p == nil {
		return 0
	}
	layer := encodeDiagLayer(b, &p.DiagLayer)
	spec := encodeComParamSpec(b, p.ComParamSpec)
	stack := encodeProtStack(b, p.ProtStack)
	parents := encodeProtocolVector(b, p.ParentRefs)
	o := startObj(b, 4)
	o.off(layer)
	o.off(spec)
	o.off(stack)
	o.off(parents)
	return o.end()
}

func decodeProtocol(bytes []byte, pos flatbuffers.UOffsetT) ir.Protocol {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var p ir.Protocol
	if lp, ok := r.table(); ok {
		p.DiagLayer = decodeDiagLayer(bytes, lp)
	}
	if sp, ok := r.table(); ok {
		p.ComParamSpec = decodeComParamSpec(bytes, sp)
	}
	if stp, ok := r.table(); ok {
		p.ProtStack = decodeProtStack(bytes, stp)
	}
	if rawOff, length, ok := r.vector(); ok {
		p.ParentRefs = decodeProtocolVector(t, rawOff, length)
	}
	return p
}

func encodeProtocolVector(b *flatbuffers.Builder, ps []ir.Protocol) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ps))
	for i := range ps {
		offs[i] = encodeProtocol(b, &ps[i])
	}
	return createTableVector(b, offs)
}

func decodeProtocolVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Protocol {
	if length == 0 {
		return nil
	}
	out := make([]ir.Protocol, length)
	for i := 0; i < length; i++ {
		out[i] = decodeProtocol(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

// encodeProtocolRefVector/decodeProtocolRefVector encode DiagComm.Protocols,
// a by-value list distinct from Protocol.ParentRefs's inheritance edges
// even though both share the Protocol type.
func encodeProtocolRefVector(b *flatbuffers.Builder, ps []ir.Protocol) flatbuffers.UOffsetT {
	return encodeProtocolVector(b, ps)
}

func decodeProtocolRefVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Protocol {
	return decodeProtocolVector(tab, rawOff, length)
}

func encodeSimpleOrComplexComParamValue(b *flatbuffers.Builder, simple *ir.SimpleValue, cplx *ir.ComplexValue) (flatbuffers.UOffsetT, flatbuffers.UOffsetT) {
	return encodeSimpleValue(b, simple), encodeComplexValue(b, cplx)
}

func encodeComParamRef(b *flatbuffers.Builder, c *ir.ComParamRef) flatbuffers.UOffsetT {
	simpleOff, complexOff := encodeSimpleOrComplexComParamValue(b, c.SimpleValue, c.ComplexValue)
	comparam := encodeComParam(b, c.ComParam)
	protocol := encodeProtocol(b, c.Protocol)
	protstack := encodeProtStack(b, c.ProtStack)
	o := startObj(b, 5)
	o.off(simpleOff)
	o.off(complexOff)
	o.off(comparam)
	o.off(protocol)
	o.off(protstack)
	return o.end()
}

func decodeComParamRef(bytes []byte, pos flatbuffers.UOffsetT) ir.ComParamRef {
	r := newObjR(tableAt(bytes, pos))
	var c ir.ComParamRef
	if p, ok := r.table(); ok {
		c.SimpleValue = decodeSimpleValue(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.ComplexValue = decodeComplexValue(bytes, p)
	}
	if p, ok := r.table(); ok {
		cp := decodeComParam(bytes, p)
		c.ComParam = &cp
	}
	if p, ok := r.table(); ok {
		pr := decodeProtocol(bytes, p)
		c.Protocol = &pr
	}
	if p, ok := r.table(); ok {
		c.ProtStack = decodeProtStack(bytes, p)
	}
	return c
}

func encodeComParamRefVector(b *flatbuffers.Builder, cs []ir.ComParamRef) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(cs))
	for i := range cs {
		offs[i] = encodeComParamRef(b, &cs[i])
	}
	return createTableVector(b, offs)
}

func decodeComParamRefVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.ComParamRef {
	if length == 0 {
		return nil
	}
	out := make([]ir.ComParamRef, length)
	for i := 0; i < length; i++ {
		out[i] = decodeComParamRef(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

// Package fbs implements the bijection between ir.Database and a flat,
// offset-tabled FlatBuffers payload (spec.md §4.2). No `.fbs`-generated
// stubs exist for this module's private schema, so the codec drives
// github.com/google/flatbuffers's Go runtime Builder/Table primitives
// directly -- the same layer flatc-generated code itself sits on
// (grounded on the `github.com/google/flatbuffers` dependency surfaced by
// turtacn-kubestack-ai's go.mod in the retrieval pack; see DESIGN.md).
//
// Every table type in this package follows one convention: an `objW`
// records fields in declaration order via its own typed Prepend*
// methods, so the encode and decode sides never have to hand-compute
// vtable slot numbers independently -- the slot counter is threaded
// through the same call order both sides replay.
package fbs

import (
	"errors"

	flatbuffers "github.com/google/flatbuffers/go"
)

// ErrFlatBuffersParse is returned when the input is not a valid framed
// FlatBuffers buffer (spec.md §4.2 "Failure modes"). All other malformed
// data is tolerated by substitution of documented defaults.
var ErrFlatBuffersParse = errors.New("fbs: malformed flatbuffers frame")

// objW wraps a Builder while a single table object is under construction.
// Call order across encode/decode must match field declaration order in
// the corresponding ir type; objR mirrors it on the read side.
type objW struct {
	b    *flatbuffers.Builder
	slot int
}

func startObj(b *flatbuffers.Builder, numFields int) *objW {
	b.StartObject(numFields)
	return &objW{b: b}
}

func (o *objW) off(x flatbuffers.UOffsetT) {
	if x != 0 {
		o.b.PrependUOffsetTSlot(o.slot, x, 0)
	}
	o.slot++
}

func (o *objW) u8(v uint8, d uint8) {
	o.b.PrependUint8Slot(o.slot, v, d)
	o.slot++
}

func (o *objW) boolField(v bool) {
	var d byte
	if v {
		o.b.PrependBoolSlot(o.slot, true, false)
	} else {
		o.b.PrependBoolSlot(o.slot, false, false)
	}
	_ = d
	o.slot++
}

// boolOpt encodes a *bool the same present/absent way u32opt does.
func (o *objW) boolOpt(v *bool) {
	o.boolField(v != nil)
	if v != nil {
		o.boolField(*v)
	} else {
		o.boolField(false)
	}
}

func (o *objW) u32(v uint32, d uint32) {
	o.b.PrependUint32Slot(o.slot, v, d)
	o.slot++
}

// u32opt encodes an *uint32 as a present/absent pair of slots: a bool
// "has value" flag followed by the value itself, since 0 is a legitimate
// value and cannot double as "absent" the way a UOffsetT can.
func (o *objW) u32opt(v *uint32) {
	o.boolField(v != nil)
	if v != nil {
		o.u32(*v, 0)
	} else {
		o.u32(0, 0)
	}
}

func (o *objW) i32(v int32, d int32) {
	o.b.PrependInt32Slot(o.slot, v, d)
	o.slot++
}

func (o *objW) i32opt(v *int32) {
	o.boolField(v != nil)
	if v != nil {
		o.i32(*v, 0)
	} else {
		o.i32(0, 0)
	}
}

func (o *objW) f64(v float64, d float64) {
	o.b.PrependFloat64Slot(o.slot, v, d)
	o.slot++
}

func (o *objW) f64opt(v *float64) {
	o.boolField(v != nil)
	if v != nil {
		o.f64(*v, 0)
	} else {
		o.f64(0, 0)
	}
}

func (o *objW) end() flatbuffers.UOffsetT {
	return o.b.EndObject()
}

// objR mirrors objW on the decode side: each Get* call consumes the next
// vtable slot, in the same order the matching encode function produced it.
type objR struct {
	t    *flatbuffers.Table
	slot int
}

func newObjR(t *flatbuffers.Table) *objR {
	return &objR{t: t}
}

func (r *objR) vtableOffset() flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT((r.slot + 2) * 2)
}

// off returns the absolute table/vector/string position for the next
// slot, and whether the field was present at all.
func (r *objR) off() (flatbuffers.UOffsetT, bool) {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return 0, false
	}
	return r.t.Indirect(o + r.t.Pos), true
}

// str returns the next slot as a string, or "" if absent.
func (r *objR) str() string {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return ""
	}
	return string(r.t.ByteVector(o + r.t.Pos))
}

// table returns the next slot's absolute position if it holds a nested
// table, and whether that field was present.
func (r *objR) table() (flatbuffers.UOffsetT, bool) {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return 0, false
	}
	return r.t.Indirect(o + r.t.Pos), true
}

// vector returns the element count and the raw vtable slot value (needed
// by vectorElem) for the next slot.
func (r *objR) vector() (rawOff flatbuffers.UOffsetT, length int, ok bool) {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return 0, 0, false
	}
	return o, r.t.VectorLen(o), true
}

func vectorElemTable(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, i int) flatbuffers.UOffsetT {
	x := tab.Vector(rawOff)
	x += flatbuffers.UOffsetT(i) * 4
	return tab.Indirect(x)
}

func (r *objR) u8(d uint8) uint8 {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return d
	}
	return r.t.GetUint8(o + r.t.Pos)
}

func (r *objR) boolField() bool {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return false
	}
	return r.t.GetBool(o + r.t.Pos)
}

func (r *objR) boolOpt() *bool {
	has := r.boolField()
	v := r.boolField()
	if !has {
		return nil
	}
	return &v
}

func (r *objR) u32(d uint32) uint32 {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return d
	}
	return r.t.GetUint32(o + r.t.Pos)
}

func (r *objR) u32opt() *uint32 {
	has := r.boolField()
	v := r.u32(0)
	if !has {
		return nil
	}
	return &v
}

func (r *objR) i32(d int32) int32 {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return d
	}
	return r.t.GetInt32(o + r.t.Pos)
}

func (r *objR) i32opt() *int32 {
	has := r.boolField()
	v := r.i32(0)
	if !has {
		return nil
	}
	return &v
}

func (r *objR) f64(d float64) float64 {
	o := r.t.Offset(r.vtableOffset())
	r.slot++
	if o == 0 {
		return d
	}
	return r.t.GetFloat64(o + r.t.Pos)
}

func (r *objR) f64opt() *float64 {
	has := r.boolField()
	v := r.f64(0)
	if !has {
		return nil
	}
	return &v
}

func rootTable(buf []byte) (*flatbuffers.Table, error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, ErrFlatBuffersParse
	}
	n := flatbuffers.GetUOffsetT(buf)
	t := &flatbuffers.Table{Bytes: buf, Pos: n}
	return t, nil
}

func tableAt(bytes []byte, pos flatbuffers.UOffsetT) *flatbuffers.Table {
	return &flatbuffers.Table{Bytes: bytes, Pos: pos}
}

func createStringVector(b *flatbuffers.Builder, ss []string) flatbuffers.UOffsetT {
	if len(ss) == 0 {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(ss))
	for i, s := range ss {
		offs[i] = b.CreateString(s)
	}
	b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

// lengthPrefixed reads a FlatBuffers string/byte-vector blob whose absolute
// position (length u32 followed by that many bytes) is already resolved --
// i.e. one past the indirection that table()/vector element access does.
func lengthPrefixed(bytes []byte, pos flatbuffers.UOffsetT) []byte {
	length := flatbuffers.GetUOffsetT(bytes[pos:])
	start := pos + flatbuffers.UOffsetT(flatbuffers.SizeUOffsetT)
	return bytes[start : start+length]
}

func readStringVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []string {
	if length == 0 {
		return nil
	}
	out := make([]string, length)
	for i := 0; i < length; i++ {
		pos := vectorElemTable(tab, rawOff, i)
		out[i] = string(lengthPrefixed(tab.Bytes, pos))
	}
	return out
}

func createU32Vector(b *flatbuffers.Builder, vs []uint32) flatbuffers.UOffsetT {
	if len(vs) == 0 {
		return 0
	}
	b.StartVector(4, len(vs), 4)
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependUint32(vs[i])
	}
	return b.EndVector(len(vs))
}

func readU32Vector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []uint32 {
	if length == 0 {
		return nil
	}
	start := tab.Vector(rawOff)
	out := make([]uint32, length)
	for i := 0; i < length; i++ {
		out[i] = tab.GetUint32(start + flatbuffers.UOffsetT(i)*4)
	}
	return out
}

func createF64Vector(b *flatbuffers.Builder, vs []float64) flatbuffers.UOffsetT {
	if len(vs) == 0 {
		return 0
	}
	b.StartVector(8, len(vs), 8)
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependFloat64(vs[i])
	}
	return b.EndVector(len(vs))
}

func readF64Vector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []float64 {
	if length == 0 {
		return nil
	}
	start := tab.Vector(rawOff)
	out := make([]float64, length)
	for i := 0; i < length; i++ {
		out[i] = tab.GetFloat64(start + flatbuffers.UOffsetT(i)*8)
	}
	return out
}

func createByteVector(b *flatbuffers.Builder, bs []byte) flatbuffers.UOffsetT {
	if len(bs) == 0 {
		return 0
	}
	return b.CreateByteVector(bs)
}

func createTableVector(b *flatbuffers.Builder, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	if len(offs) == 0 {
		return 0
	}
	b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

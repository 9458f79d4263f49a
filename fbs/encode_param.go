package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

func encodeCodedConstData(b *flatbuffers.Builder, v *ir.CodedConstData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	value := b.CreateString(v.CodedValue)
	dct := encodeDiagCodedType(b, &v.DiagCodedType)
	o := startObj(b, 2)
	o.off(value)
	o.off(dct)
	return o.end()
}

func decodeCodedConstData(bytes []byte, pos flatbuffers.UOffsetT) *ir.CodedConstData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.CodedConstData{CodedValue: r.str()}
	if p, ok := r.table(); ok {
		v.DiagCodedType = *decodeDiagCodedType(bytes, p)
	}
	return v
}

func encodeLengthKeyRefData(b *flatbuffers.Builder, v *ir.LengthKeyRefData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	dop := encodeDop(b, v.Dop)
	o := startObj(b, 1)
	o.off(dop)
	return o.end()
}

func decodeLengthKeyRefData(bytes []byte, pos flatbuffers.UOffsetT) *ir.LengthKeyRefData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.LengthKeyRefData{}
	if p, ok := r.table(); ok {
		v.Dop = decodeDop(bytes, p)
	}
	return v
}

func encodeMatchingRequestParamData(b *flatbuffers.Builder, v *ir.MatchingRequestParamData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	o := startObj(b, 2)
	o.i32(v.RequestBytePos, 0)
	o.u32(v.ByteLength, 0)
	return o.end()
}

func decodeMatchingRequestParamData(bytes []byte, pos flatbuffers.UOffsetT) *ir.MatchingRequestParamData {
	r := newObjR(tableAt(bytes, pos))
	return &ir.MatchingRequestParamData{RequestBytePos: r.i32(0), ByteLength: r.u32(0)}
}

func encodeNrcConstData(b *flatbuffers.Builder, v *ir.NrcConstData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	values := createStringVector(b, v.CodedValues)
	dct := encodeDiagCodedType(b, &v.DiagCodedType)
	o := startObj(b, 2)
	o.off(values)
	o.off(dct)
	return o.end()
}

func decodeNrcConstData(bytes []byte, pos flatbuffers.UOffsetT) *ir.NrcConstData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	rawOff, length, ok := r.vector()
	v := &ir.NrcConstData{}
	if ok {
		v.CodedValues = readStringVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		v.DiagCodedType = *decodeDiagCodedType(bytes, p)
	}
	return v
}

func encodePhysConstData(b *flatbuffers.Builder, v *ir.PhysConstData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	value := b.CreateString(v.PhysConstantValue)
	dop := encodeDop(b, v.Dop)
	o := startObj(b, 2)
	o.off(value)
	o.off(dop)
	return o.end()
}

func decodePhysConstData(bytes []byte, pos flatbuffers.UOffsetT) *ir.PhysConstData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.PhysConstData{PhysConstantValue: r.str()}
	if p, ok := r.table(); ok {
		v.Dop = decodeDop(bytes, p)
	}
	return v
}

func encodeReservedData(b *flatbuffers.Builder, v *ir.ReservedData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	o := startObj(b, 1)
	o.u32(v.BitLength, 0)
	return o.end()
}

func decodeReservedData(bytes []byte, pos flatbuffers.UOffsetT) *ir.ReservedData {
	r := newObjR(tableAt(bytes, pos))
	return &ir.ReservedData{BitLength: r.u32(0)}
}

func encodeSystemData(b *flatbuffers.Builder, v *ir.SystemData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	dop := encodeDop(b, v.Dop)
	sys := b.CreateString(v.SysParam)
	o := startObj(b, 2)
	o.off(dop)
	o.off(sys)
	return o.end()
}

func decodeSystemData(bytes []byte, pos flatbuffers.UOffsetT) *ir.SystemData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.SystemData{}
	if p, ok := r.table(); ok {
		v.Dop = decodeDop(bytes, p)
	}
	v.SysParam = r.str()
	return v
}

func encodeTableEntryData(b *flatbuffers.Builder, v *ir.TableEntryData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	param := encodeParam(b, v.Param)
	row := encodeTableRow(b, v.TableRow)
	o := startObj(b, 3)
	o.off(param)
	o.u8(uint8(v.Target), 0)
	o.off(row)
	return o.end()
}

func decodeTableEntryData(bytes []byte, pos flatbuffers.UOffsetT) *ir.TableEntryData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.TableEntryData{}
	if p, ok := r.table(); ok {
		v.Param = decodeParam(bytes, p)
	}
	v.Target = ir.TableEntryRowFragment(r.u8(0))
	if p, ok := r.table(); ok {
		v.TableRow = decodeTableRow(bytes, p)
	}
	return v
}

func encodeTableKeyData(b *flatbuffers.Builder, v *ir.TableKeyData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	var payload flatbuffers.UOffsetT
	switch v.ReferenceKind {
	case ir.TableKeyReferenceTableDop:
		payload = encodeTableDop(b, v.TableDop)
	case ir.TableKeyReferenceTableRow:
		payload = encodeTableRow(b, v.TableRow)
	}
	o := startObj(b, 2)
	o.u8(uint8(v.ReferenceKind), 0)
	o.off(payload)
	return o.end()
}

func decodeTableKeyData(bytes []byte, pos flatbuffers.UOffsetT) *ir.TableKeyData {
	r := newObjR(tableAt(bytes, pos))
	kind := ir.TableKeyReferenceKind(r.u8(0))
	payloadPos, ok := r.table()
	v := &ir.TableKeyData{ReferenceKind: kind}
	if !ok {
		return v
	}
	switch kind {
	case ir.TableKeyReferenceTableDop:
		v.TableDop = decodeTableDop(bytes, payloadPos)
	case ir.TableKeyReferenceTableRow:
		v.TableRow = decodeTableRow(bytes, payloadPos)
	}
	return v
}

func encodeTableStructData(b *flatbuffers.Builder, v *ir.TableStructData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	key := encodeParam(b, v.TableKey)
	o := startObj(b, 1)
	o.off(key)
	return o.end()
}

func decodeTableStructData(bytes []byte, pos flatbuffers.UOffsetT) *ir.TableStructData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.TableStructData{}
	if p, ok := r.table(); ok {
		v.TableKey = decodeParam(bytes, p)
	}
	return v
}

func encodeValueData(b *flatbuffers.Builder, v *ir.ValueData) flatbuffers.UOffsetT {
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

func decodeValueData(bytes []byte, pos flatbuffers.UOffsetT) *ir.ValueData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.ValueData{PhysicalDefaultValue: r.str()}
	if p, ok := r.table(); ok {
		v.Dop = decodeDop(bytes, p)
	}
	return v
}

// encodeParam and decodeParam drive the Param 12-way union. As with every
// other union in this package, the discriminant (ParamType) is written
// and read before the payload (spec.md §4.2).
func encodeParam(b *flatbuffers.Builder, p *ir.Param) flatbuffers.UOffsetT {
	if p == nil {
		return 0
	}
	sn := b.CreateString(p.ShortName)
	semantic := b.CreateString(p.Semantic)
	sdgs := encodeSDGs(b, p.SDGs)
	physDefault := b.CreateString(p.PhysicalDefaultValue)
	var payload flatbuffers.UOffsetT
	switch p.ParamType {
	case ir.ParamCodedConst:
		payload = encodeCodedConstData(b, p.Data.CodedConst)
	case ir.ParamLengthKey:
		payload = encodeLengthKeyRefData(b, p.Data.LengthKeyRef)
	case ir.ParamMatchingRequestParam:
		payload = encodeMatchingRequestParamData(b, p.Data.MatchingRequestParam)
	case ir.ParamNrcConst:
		payload = encodeNrcConstData(b, p.Data.NrcConst)
	case ir.ParamPhysConst:
		payload = encodePhysConstData(b, p.Data.PhysConst)
	case ir.ParamReserved:
		payload = encodeReservedData(b, p.Data.Reserved)
	case ir.ParamSystem:
		payload = encodeSystemData(b, p.Data.System)
	case ir.ParamTableEntry:
		payload = encodeTableEntryData(b, p.Data.TableEntry)
	case ir.ParamTableKey:
		payload = encodeTableKeyData(b, p.Data.TableKey)
	case ir.ParamTableStruct:
		payload = encodeTableStructData(b, p.Data.TableStruct)
	case ir.ParamValue:
		payload = encodeValueData(b, p.Data.Value)
	case ir.ParamDynamic:
		// No payload: fully described by ParamType alone.
	}
	o := startObj(b, 11)
	o.u32(p.ID, 0)
	o.u8(uint8(p.ParamType), 0)
	o.off(sn)
	o.off(semantic)
	o.off(sdgs)
	o.off(physDefault)
	o.u32opt(p.BytePosition)
	o.u32opt(p.BitPosition)
	o.off(payload)
	return o.end()
}

func decodeParam(bytes []byte, pos flatbuffers.UOffsetT) *ir.Param {
	r := newObjR(tableAt(bytes, pos))
	p := &ir.Param{}
	p.ID = r.u32(0)
	p.ParamType = ir.ParamType(r.u8(0))
	p.ShortName = r.str()
	p.Semantic = r.str()
	if sdgsPos, ok := r.table(); ok {
		p.SDGs = decodeSDGs(bytes, sdgsPos)
	}
	p.PhysicalDefaultValue = r.str()
	p.BytePosition = r.u32opt()
	p.BitPosition = r.u32opt()
	payloadPos, ok := r.table()
	if !ok {
		return p
	}
	switch p.ParamType {
	case ir.ParamCodedConst:
		p.Data.CodedConst = decodeCodedConstData(bytes, payloadPos)
	case ir.ParamLengthKey:
		p.Data.LengthKeyRef = decodeLengthKeyRefData(bytes, payloadPos)
	case ir.ParamMatchingRequestParam:
		p.Data.MatchingRequestParam = decodeMatchingRequestParamData(bytes, payloadPos)
	case ir.ParamNrcConst:
		p.Data.NrcConst = decodeNrcConstData(bytes, payloadPos)
	case ir.ParamPhysConst:
		p.Data.PhysConst = decodePhysConstData(bytes, payloadPos)
	case ir.ParamReserved:
		p.Data.Reserved = decodeReservedData(bytes, payloadPos)
	case ir.ParamSystem:
		p.Data.System = decodeSystemData(bytes, payloadPos)
	case ir.ParamTableEntry:
		p.Data.TableEntry = decodeTableEntryData(bytes, payloadPos)
	case ir.ParamTableKey:
		p.Data.TableKey = decodeTableKeyData(bytes, payloadPos)
	case ir.ParamTableStruct:
		p.Data.TableStruct = decodeTableStructData(bytes, payloadPos)
	case ir.ParamValue:
		p.Data.Value = decodeValueData(bytes, payloadPos)
	}
	return p
}

func encodeParamVector(b *flatbuffers.Builder, ps []ir.Param) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ps))
	for i := range ps {
		offs[i] = encodeParam(b, &ps[i])
	}
	return createTableVector(b, offs)
}

func decodeParamVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Param {
	if length == 0 {
		return nil
	}
	out := make([]ir.Param, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeParam(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

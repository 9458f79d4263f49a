package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

func encodeDiagCodedType(b *flatbuffers.Builder, d *ir.DiagCodedType) flatbuffers.UOffsetT {
	if d == nil {
		return 0
	}
	baseEnc := b.CreateString(d.BaseTypeEncoding)
	var payload flatbuffers.UOffsetT
	switch d.TypeName {
	case ir.LeadingLengthInfoType:
		payload = encodeLeadingLengthData(b, d.Data.LeadingLength)
	case ir.MinMaxLengthType:
		payload = encodeMinMaxData(b, d.Data.MinMax)
	case ir.ParamLengthInfoType:
		payload = encodeParamLengthData(b, d.Data.ParamLength)
	case ir.StandardLengthType:
		payload = encodeStandardLengthData(b, d.Data.StandardLength)
	}
	o := startObj(b, 5)
	o.u8(uint8(d.TypeName), 0)
	o.off(baseEnc)
	o.u8(uint8(d.BaseDataType), 0)
	o.boolField(d.IsHighLowByteOrder)
	o.off(payload)
	return o.end()
}

func decodeDiagCodedType(bytes []byte, pos flatbuffers.UOffsetT) *ir.DiagCodedType {
	r := newObjR(tableAt(bytes, pos))
	typeName := ir.DiagCodedTypeName(r.u8(0))
	baseEnc := r.str()
	baseDT := ir.DataType(r.u8(0))
	hilo := r.boolField()
	payloadPos, ok := r.table()
	d := &ir.DiagCodedType{TypeName: typeName, BaseTypeEncoding: baseEnc, BaseDataType: baseDT, IsHighLowByteOrder: hilo}
	if !ok {
		return d
	}
	switch typeName {
	case ir.LeadingLengthInfoType:
		d.Data.LeadingLength = decodeLeadingLengthData(bytes, payloadPos)
	case ir.MinMaxLengthType:
		d.Data.MinMax = decodeMinMaxData(bytes, payloadPos)
	case ir.ParamLengthInfoType:
		d.Data.ParamLength = decodeParamLengthData(bytes, payloadPos)
	case ir.StandardLengthType:
		d.Data.StandardLength = decodeStandardLengthData(bytes, payloadPos)
	}
	return d
}

func encodeLeadingLengthData(b *flatbuffers.Builder, v *ir.LeadingLengthData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	o := startObj(b, 1)
	o.u32(v.BitLength, 0)
	return o.end()
}

func decodeLeadingLengthData(bytes []byte, pos flatbuffers.UOffsetT) *ir.LeadingLengthData {
	r := newObjR(tableAt(bytes, pos))
	return &ir.LeadingLengthData{BitLength: r.u32(0)}
}

func encodeMinMaxData(b *flatbuffers.Builder, v *ir.MinMaxData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	o := startObj(b, 4)
	o.u32(v.MinLength, 0)
	o.u32opt(v.MaxLength)
	o.u8(uint8(v.Termination), 0)
	return o.end()
}

func decodeMinMaxData(bytes []byte, pos flatbuffers.UOffsetT) *ir.MinMaxData {
	r := newObjR(tableAt(bytes, pos))
	minLen := r.u32(0)
	maxLen := r.u32opt()
	term := ir.Termination(r.u8(0))
	return &ir.MinMaxData{MinLength: minLen, MaxLength: maxLen, Termination: term}
}

func encodeParamLengthData(b *flatbuffers.Builder, v *ir.ParamLengthData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	lengthKey := encodeParam(b, v.LengthKey)
	o := startObj(b, 1)
	o.off(lengthKey)
	return o.end()
}

func decodeParamLengthData(bytes []byte, pos flatbuffers.UOffsetT) *ir.ParamLengthData {
	r := newObjR(tableAt(bytes, pos))
	if p, ok := r.table(); ok {
		return &ir.ParamLengthData{LengthKey: decodeParam(bytes, p)}
	}
	return &ir.ParamLengthData{}
}

func encodeStandardLengthData(b *flatbuffers.Builder, v *ir.StandardLengthData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	mask := createByteVector(b, v.BitMask)
	o := startObj(b, 3)
	o.u32(v.BitLength, 0)
	o.off(mask)
	o.boolField(v.Condensed)
	return o.end()
}

func decodeStandardLengthData(bytes []byte, pos flatbuffers.UOffsetT) *ir.StandardLengthData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	bitLen := r.u32(0)
	maskOff, maskOK := r.off()
	condensed := r.boolField()
	v := &ir.StandardLengthData{BitLength: bitLen, Condensed: condensed}
	if maskOK {
		v.BitMask = lengthPrefixed(t.Bytes, maskOff)
	}
	return v
}

func encodeCompuValues(b *flatbuffers.Builder, v *ir.CompuValues) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	vt := b.CreateString(v.VT)
	vtti := b.CreateString(v.VTTI)
	o := startObj(b, 4)
	o.f64opt(v.V)
	o.off(vt)
	o.off(vtti)
	return o.end()
}

func decodeCompuValues(bytes []byte, pos flatbuffers.UOffsetT) *ir.CompuValues {
	r := newObjR(tableAt(bytes, pos))
	v := r.f64opt()
	vt := r.str()
	vtti := r.str()
	return &ir.CompuValues{V: v, VT: vt, VTTI: vtti}
}

func encodeCompuRationalCoEffs(b *flatbuffers.Builder, v *ir.CompuRationalCoEffs) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	num := createF64Vector(b, v.Numerator)
	den := createF64Vector(b, v.Denominator)
	o := startObj(b, 2)
	o.off(num)
	o.off(den)
	return o.end()
}

func decodeCompuRationalCoEffs(bytes []byte, pos flatbuffers.UOffsetT) *ir.CompuRationalCoEffs {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	numOff, numLen, numOK := r.vector()
	denOff, denLen, denOK := r.vector()
	v := &ir.CompuRationalCoEffs{}
	if numOK {
		v.Numerator = readF64Vector(t, numOff, numLen)
	}
	if denOK {
		v.Denominator = readF64Vector(t, denOff, denLen)
	}
	return v
}

func encodeCompuScale(b *flatbuffers.Builder, c *ir.CompuScale) flatbuffers.UOffsetT {
	shortLabel := encodeText(b, c.ShortLabel)
	lower := encodeLimit(b, c.LowerLimit)
	upper := encodeLimit(b, c.UpperLimit)
	inverse := encodeCompuValues(b, c.InverseValues)
	consts := encodeCompuValues(b, c.Consts)
	rational := encodeCompuRationalCoEffs(b, c.RationalCoEffs)
	o := startObj(b, 6)
	o.off(shortLabel)
	o.off(lower)
	o.off(upper)
	o.off(inverse)
	o.off(consts)
	o.off(rational)
	return o.end()
}

func decodeCompuScale(bytes []byte, pos flatbuffers.UOffsetT) ir.CompuScale {
	r := newObjR(tableAt(bytes, pos))
	var c ir.CompuScale
	if p, ok := r.table(); ok {
		c.ShortLabel = decodeText(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.LowerLimit = decodeLimit(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.UpperLimit = decodeLimit(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.InverseValues = decodeCompuValues(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.Consts = decodeCompuValues(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.RationalCoEffs = decodeCompuRationalCoEffs(bytes, p)
	}
	return c
}

func encodeCompuScaleVector(b *flatbuffers.Builder, cs []ir.CompuScale) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(cs))
	for i := range cs {
		offs[i] = encodeCompuScale(b, &cs[i])
	}
	return createTableVector(b, offs)
}

func decodeCompuScaleVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.CompuScale {
	if length == 0 {
		return nil
	}
	out := make([]ir.CompuScale, length)
	for i := 0; i < length; i++ {
		out[i] = decodeCompuScale(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeCompuDefaultValue(b *flatbuffers.Builder, v *ir.CompuDefaultValue) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	values := encodeCompuValues(b, v.Values)
	inverse := encodeCompuValues(b, v.InverseValues)
	o := startObj(b, 2)
	o.off(values)
	o.off(inverse)
	return o.end()
}

func decodeCompuDefaultValue(bytes []byte, pos flatbuffers.UOffsetT) *ir.CompuDefaultValue {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.CompuDefaultValue{}
	if p, ok := r.table(); ok {
		v.Values = decodeCompuValues(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.InverseValues = decodeCompuValues(bytes, p)
	}
	return v
}

func encodeCompuInternalToPhys(b *flatbuffers.Builder, v *ir.CompuInternalToPhys) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	scales := encodeCompuScaleVector(b, v.CompuScales)
	prog := encodeProgCode(b, v.ProgCode)
	def := encodeCompuDefaultValue(b, v.CompuDefaultValue)
	o := startObj(b, 3)
	o.off(scales)
	o.off(prog)
	o.off(def)
	return o.end()
}

func decodeCompuInternalToPhys(bytes []byte, pos flatbuffers.UOffsetT) *ir.CompuInternalToPhys {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	rawOff, length, ok := r.vector()
	v := &ir.CompuInternalToPhys{}
	if ok {
		v.CompuScales = decodeCompuScaleVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		v.ProgCode = decodeProgCode(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.CompuDefaultValue = decodeCompuDefaultValue(bytes, p)
	}
	return v
}

func encodeCompuPhysToInternal(b *flatbuffers.Builder, v *ir.CompuPhysToInternal) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	prog := encodeProgCode(b, v.ProgCode)
	scales := encodeCompuScaleVector(b, v.CompuScales)
	def := encodeCompuDefaultValue(b, v.CompuDefaultValue)
	o := startObj(b, 3)
	o.off(prog)
	o.off(scales)
	o.off(def)
	return o.end()
}

func decodeCompuPhysToInternal(bytes []byte, pos flatbuffers.UOffsetT) *ir.CompuPhysToInternal {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	v := &ir.CompuPhysToInternal{}
	if p, ok := r.table(); ok {
		v.ProgCode = decodeProgCode(bytes, p)
	}
	rawOff, length, ok := r.vector()
	if ok {
		v.CompuScales = decodeCompuScaleVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		v.CompuDefaultValue = decodeCompuDefaultValue(bytes, p)
	}
	return v
}

func encodeCompuMethod(b *flatbuffers.Builder, v *ir.CompuMethod) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	i2p := encodeCompuInternalToPhys(b, v.InternalToPhys)
	p2i := encodeCompuPhysToInternal(b, v.PhysToInternal)
	o := startObj(b, 3)
	o.u8(uint8(v.Category), 0)
	o.off(i2p)
	o.off(p2i)
	return o.end()
}

func decodeCompuMethod(bytes []byte, pos flatbuffers.UOffsetT) *ir.CompuMethod {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.CompuMethod{Category: ir.CompuCategory(r.u8(0))}
	if p, ok := r.table(); ok {
		v.InternalToPhys = decodeCompuInternalToPhys(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.PhysToInternal = decodeCompuPhysToInternal(bytes, p)
	}
	return v
}

func encodePhysicalDimension(b *flatbuffers.Builder, v *ir.PhysicalDimension) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	sn := b.CreateString(v.ShortName)
	ln := encodeText(b, v.LongName)
	o := startObj(b, 16)
	o.off(sn)
	o.off(ln)
	o.i32opt(v.LengthExp)
	o.i32opt(v.MassExp)
	o.i32opt(v.TimeExp)
	o.i32opt(v.CurrentExp)
	o.i32opt(v.TemperatureExp)
	o.i32opt(v.MolarAmountExp)
	o.i32opt(v.LuminousIntensityExp)
	return o.end()
}

func decodePhysicalDimension(bytes []byte, pos flatbuffers.UOffsetT) *ir.PhysicalDimension {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.PhysicalDimension{ShortName: r.str()}
	if p, ok := r.table(); ok {
		v.LongName = decodeText(bytes, p)
	}
	v.LengthExp = r.i32opt()
	v.MassExp = r.i32opt()
	v.TimeExp = r.i32opt()
	v.CurrentExp = r.i32opt()
	v.TemperatureExp = r.i32opt()
	v.MolarAmountExp = r.i32opt()
	v.LuminousIntensityExp = r.i32opt()
	return v
}

func encodeUnit(b *flatbuffers.Builder, u *ir.Unit) flatbuffers.UOffsetT {
	if u == nil {
		return 0
	}
	sn := b.CreateString(u.ShortName)
	dn := b.CreateString(u.DisplayName)
	dim := encodePhysicalDimension(b, u.PhysicalDimension)
	o := startObj(b, 7)
	o.off(sn)
	o.off(dn)
	o.f64opt(u.FactorSiToUnit)
	o.f64opt(u.OffsetSiToUnit)
	o.off(dim)
	return o.end()
}

func decodeUnit(bytes []byte, pos flatbuffers.UOffsetT) *ir.Unit {
	r := newObjR(tableAt(bytes, pos))
	u := &ir.Unit{ShortName: r.str(), DisplayName: r.str()}
	u.FactorSiToUnit = r.f64opt()
	u.OffsetSiToUnit = r.f64opt()
	if p, ok := r.table(); ok {
		u.PhysicalDimension = decodePhysicalDimension(bytes, p)
	}
	return u
}

func encodeScaleConstr(b *flatbuffers.Builder, s *ir.ScaleConstr) flatbuffers.UOffsetT {
	label := encodeText(b, s.ShortLabel)
	lower := encodeLimit(b, s.LowerLimit)
	upper := encodeLimit(b, s.UpperLimit)
	o := startObj(b, 4)
	o.off(label)
	o.off(lower)
	o.off(upper)
	o.u8(uint8(s.Validity), 0)
	return o.end()
}

func decodeScaleConstr(bytes []byte, pos flatbuffers.UOffsetT) ir.ScaleConstr {
	r := newObjR(tableAt(bytes, pos))
	var s ir.ScaleConstr
	if p, ok := r.table(); ok {
		s.ShortLabel = decodeText(bytes, p)
	}
	if p, ok := r.table(); ok {
		s.LowerLimit = decodeLimit(bytes, p)
	}
	if p, ok := r.table(); ok {
		s.UpperLimit = decodeLimit(bytes, p)
	}
	s.Validity = ir.ValidType(r.u8(0))
	return s
}

func encodeInternalConstr(b *flatbuffers.Builder, v *ir.InternalConstr) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	lower := encodeLimit(b, v.LowerLimit)
	upper := encodeLimit(b, v.UpperLimit)
	offs := make([]flatbuffers.UOffsetT, len(v.ScaleConstrs))
	for i := range v.ScaleConstrs {
		offs[i] = encodeScaleConstr(b, &v.ScaleConstrs[i])
	}
	scales := createTableVector(b, offs)
	o := startObj(b, 3)
	o.off(lower)
	o.off(upper)
	o.off(scales)
	return o.end()
}

func decodeInternalConstr(bytes []byte, pos flatbuffers.UOffsetT) *ir.InternalConstr {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	v := &ir.InternalConstr{}
	if p, ok := r.table(); ok {
		v.LowerLimit = decodeLimit(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.UpperLimit = decodeLimit(bytes, p)
	}
	rawOff, length, ok := r.vector()
	if ok {
		v.ScaleConstrs = make([]ir.ScaleConstr, length)
		for i := 0; i < length; i++ {
			v.ScaleConstrs[i] = decodeScaleConstr(bytes, vectorElemTable(t, rawOff, i))
		}
	}
	return v
}

func encodePhysicalType(b *flatbuffers.Builder, v *ir.PhysicalType) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	o := startObj(b, 4)
	o.u32opt(v.Precision)
	o.u8(uint8(v.BaseDataType), 0)
	o.u8(uint8(v.DisplayRadix), 0)
	return o.end()
}

func decodePhysicalType(bytes []byte, pos flatbuffers.UOffsetT) *ir.PhysicalType {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.PhysicalType{}
	v.Precision = r.u32opt()
	v.BaseDataType = ir.PhysicalTypeDataType(r.u8(0))
	v.DisplayRadix = ir.Radix(r.u8(0))
	return v
}

func encodeNormalDopData(b *flatbuffers.Builder, v *ir.NormalDopData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	compu := encodeCompuMethod(b, v.CompuMethod)
	dct := encodeDiagCodedType(b, v.DiagCodedType)
	phys := encodePhysicalType(b, v.PhysicalType)
	internal := encodeInternalConstr(b, v.InternalConstr)
	unit := encodeUnit(b, v.UnitRef)
	physConstr := encodeInternalConstr(b, v.PhysConstr)
	o := startObj(b, 6)
	o.off(compu)
	o.off(dct)
	o.off(phys)
	o.off(internal)
	o.off(unit)
	o.off(physConstr)
	return o.end()
}

func decodeNormalDopData(bytes []byte, pos flatbuffers.UOffsetT) *ir.NormalDopData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.NormalDopData{}
	if p, ok := r.table(); ok {
		v.CompuMethod = decodeCompuMethod(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.DiagCodedType = decodeDiagCodedType(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.PhysicalType = decodePhysicalType(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.InternalConstr = decodeInternalConstr(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.UnitRef = decodeUnit(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.PhysConstr = decodeInternalConstr(bytes, p)
	}
	return v
}

func encodeField(b *flatbuffers.Builder, f *ir.Field) flatbuffers.UOffsetT {
	if f == nil {
		return 0
	}
	basic := encodeDop(b, f.BasicStructure)
	envDesc := encodeDop(b, f.EnvDataDesc)
	o := startObj(b, 3)
	o.off(basic)
	o.off(envDesc)
	o.boolField(f.IsVisible)
	return o.end()
}

func decodeField(bytes []byte, pos flatbuffers.UOffsetT) *ir.Field {
	r := newObjR(tableAt(bytes, pos))
	f := &ir.Field{}
	if p, ok := r.table(); ok {
		f.BasicStructure = decodeDop(bytes, p)
	}
	if p, ok := r.table(); ok {
		f.EnvDataDesc = decodeDop(bytes, p)
	}
	f.IsVisible = r.boolField()
	return f
}

func encodeEndOfPduFieldData(b *flatbuffers.Builder, v *ir.EndOfPduFieldData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	field := encodeField(b, v.Field)
	o := startObj(b, 5)
	o.u32opt(v.MaxNumberOfItems)
	o.u32opt(v.MinNumberOfItems)
	o.off(field)
	return o.end()
}

func decodeEndOfPduFieldData(bytes []byte, pos flatbuffers.UOffsetT) *ir.EndOfPduFieldData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.EndOfPduFieldData{}
	v.MaxNumberOfItems = r.u32opt()
	v.MinNumberOfItems = r.u32opt()
	if p, ok := r.table(); ok {
		v.Field = decodeField(bytes, p)
	}
	return v
}

func encodeStaticFieldData(b *flatbuffers.Builder, v *ir.StaticFieldData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	field := encodeField(b, v.Field)
	o := startObj(b, 3)
	o.u32(v.FixedNumberOfItems, 0)
	o.u32(v.ItemByteSize, 0)
	o.off(field)
	return o.end()
}

func decodeStaticFieldData(bytes []byte, pos flatbuffers.UOffsetT) *ir.StaticFieldData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.StaticFieldData{FixedNumberOfItems: r.u32(0), ItemByteSize: r.u32(0)}
	if p, ok := r.table(); ok {
		v.Field = decodeField(bytes, p)
	}
	return v
}

func encodeDetermineNumberOfItems(b *flatbuffers.Builder, v *ir.DetermineNumberOfItems) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	dop := encodeDop(b, v.Dop)
	o := startObj(b, 3)
	o.u32(v.BytePosition, 0)
	o.u32(v.BitPosition, 0)
	o.off(dop)
	return o.end()
}

func decodeDetermineNumberOfItems(bytes []byte, pos flatbuffers.UOffsetT) *ir.DetermineNumberOfItems {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.DetermineNumberOfItems{BytePosition: r.u32(0), BitPosition: r.u32(0)}
	if p, ok := r.table(); ok {
		v.Dop = decodeDop(bytes, p)
	}
	return v
}

func encodeDynamicLengthFieldData(b *flatbuffers.Builder, v *ir.DynamicLengthFieldData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	field := encodeField(b, v.Field)
	det := encodeDetermineNumberOfItems(b, v.DetermineNumberOfItems)
	o := startObj(b, 3)
	o.u32(v.Offset, 0)
	o.off(field)
	o.off(det)
	return o.end()
}

func decodeDynamicLengthFieldData(bytes []byte, pos flatbuffers.UOffsetT) *ir.DynamicLengthFieldData {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.DynamicLengthFieldData{Offset: r.u32(0)}
	if p, ok := r.table(); ok {
		v.Field = decodeField(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.DetermineNumberOfItems = decodeDetermineNumberOfItems(bytes, p)
	}
	return v
}

func encodeEnvDataDescData(b *flatbuffers.Builder, v *ir.EnvDataDescData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	pShort := b.CreateString(v.ParamShortName)
	pPath := b.CreateString(v.ParamPathShortName)
	offs := make([]flatbuffers.UOffsetT, len(v.EnvDatas))
	for i := range v.EnvDatas {
		offs[i] = encodeDop(b, &v.EnvDatas[i])
	}
	envs := createTableVector(b, offs)
	o := startObj(b, 3)
	o.off(pShort)
	o.off(pPath)
	o.off(envs)
	return o.end()
}

func decodeEnvDataDescData(bytes []byte, pos flatbuffers.UOffsetT) *ir.EnvDataDescData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	pShort := r.str()
	pPath := r.str()
	rawOff, length, ok := r.vector()
	v := &ir.EnvDataDescData{ParamShortName: pShort, ParamPathShortName: pPath}
	if ok {
		v.EnvDatas = make([]ir.Dop, length)
		for i := 0; i < length; i++ {
			v.EnvDatas[i] = *decodeDop(bytes, vectorElemTable(t, rawOff, i))
		}
	}
	return v
}

func encodeEnvDataData(b *flatbuffers.Builder, v *ir.EnvDataData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	dtcValues := createU32Vector(b, v.DtcValues)
	params := encodeParamVector(b, v.Params)
	o := startObj(b, 2)
	o.off(dtcValues)
	o.off(params)
	return o.end()
}

func decodeEnvDataData(bytes []byte, pos flatbuffers.UOffsetT) *ir.EnvDataData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	dtcOff, dtcLen, dtcOK := r.vector()
	paramOff, paramLen, paramOK := r.vector()
	v := &ir.EnvDataData{}
	if dtcOK {
		v.DtcValues = readU32Vector(t, dtcOff, dtcLen)
	}
	if paramOK {
		v.Params = decodeParamVector(t, paramOff, paramLen)
	}
	return v
}

func encodeDtc(b *flatbuffers.Builder, d *ir.Dtc) flatbuffers.UOffsetT {
	sn := b.CreateString(d.ShortName)
	disp := b.CreateString(d.DisplayTroubleCode)
	text := encodeText(b, d.Text)
	sdgs := encodeSDGs(b, d.SDGs)
	o := startObj(b, 8)
	o.off(sn)
	o.u32(d.TroubleCode, 0)
	o.off(disp)
	o.off(text)
	o.u32opt(d.Level)
	o.off(sdgs)
	o.boolField(d.IsTemporary)
	return o.end()
}

func decodeDtc(bytes []byte, pos flatbuffers.UOffsetT) ir.Dtc {
	r := newObjR(tableAt(bytes, pos))
	var d ir.Dtc
	d.ShortName = r.str()
	d.TroubleCode = r.u32(0)
	d.DisplayTroubleCode = r.str()
	if p, ok := r.table(); ok {
		d.Text = decodeText(bytes, p)
	}
	d.Level = r.u32opt()
	if p, ok := r.table(); ok {
		d.SDGs = decodeSDGs(bytes, p)
	}
	d.IsTemporary = r.boolField()
	return d
}

func encodeDtcVector(b *flatbuffers.Builder, ds []ir.Dtc) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ds))
	for i := range ds {
		offs[i] = encodeDtc(b, &ds[i])
	}
	return createTableVector(b, offs)
}

func decodeDtcVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Dtc {
	if length == 0 {
		return nil
	}
	out := make([]ir.Dtc, length)
	for i := 0; i < length; i++ {
		out[i] = decodeDtc(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeDtcDopData(b *flatbuffers.Builder, v *ir.DtcDopData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	dct := encodeDiagCodedType(b, v.DiagCodedType)
	phys := encodePhysicalType(b, v.PhysicalType)
	compu := encodeCompuMethod(b, v.CompuMethod)
	dtcs := encodeDtcVector(b, v.Dtcs)
	o := startObj(b, 5)
	o.off(dct)
	o.off(phys)
	o.off(compu)
	o.off(dtcs)
	o.boolField(v.IsVisible)
	return o.end()
}

func decodeDtcDopData(bytes []byte, pos flatbuffers.UOffsetT) *ir.DtcDopData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	v := &ir.DtcDopData{}
	if p, ok := r.table(); ok {
		v.DiagCodedType = decodeDiagCodedType(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.PhysicalType = decodePhysicalType(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.CompuMethod = decodeCompuMethod(bytes, p)
	}
	rawOff, length, ok := r.vector()
	if ok {
		v.Dtcs = decodeDtcVector(t, rawOff, length)
	}
	v.IsVisible = r.boolField()
	return v
}

func encodeStructureData(b *flatbuffers.Builder, v *ir.StructureData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	params := encodeParamVector(b, v.Params)
	o := startObj(b, 4)
	o.off(params)
	o.u32opt(v.ByteSize)
	o.boolField(v.IsVisible)
	return o.end()
}

func decodeStructureData(bytes []byte, pos flatbuffers.UOffsetT) *ir.StructureData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	v := &ir.StructureData{}
	rawOff, length, ok := r.vector()
	if ok {
		v.Params = decodeParamVector(t, rawOff, length)
	}
	v.ByteSize = r.u32opt()
	v.IsVisible = r.boolField()
	return v
}

func encodeSwitchKey(b *flatbuffers.Builder, v *ir.SwitchKey) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	dop := encodeDop(b, v.Dop)
	o := startObj(b, 4)
	o.u32(v.BytePosition, 0)
	o.u32opt(v.BitPosition)
	o.off(dop)
	return o.end()
}

func decodeSwitchKey(bytes []byte, pos flatbuffers.UOffsetT) *ir.SwitchKey {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.SwitchKey{BytePosition: r.u32(0)}
	v.BitPosition = r.u32opt()
	if p, ok := r.table(); ok {
		v.Dop = decodeDop(bytes, p)
	}
	return v
}

func encodeDefaultCase(b *flatbuffers.Builder, v *ir.DefaultCase) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	sn := b.CreateString(v.ShortName)
	ln := encodeText(b, v.LongName)
	structure := encodeDop(b, v.Structure)
	o := startObj(b, 3)
	o.off(sn)
	o.off(ln)
	o.off(structure)
	return o.end()
}

func decodeDefaultCase(bytes []byte, pos flatbuffers.UOffsetT) *ir.DefaultCase {
	r := newObjR(tableAt(bytes, pos))
	v := &ir.DefaultCase{ShortName: r.str()}
	if p, ok := r.table(); ok {
		v.LongName = decodeText(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.Structure = decodeDop(bytes, p)
	}
	return v
}

func encodeCase(b *flatbuffers.Builder, c *ir.Case) flatbuffers.UOffsetT {
	sn := b.CreateString(c.ShortName)
	ln := encodeText(b, c.LongName)
	structure := encodeDop(b, c.Structure)
	lower := encodeLimit(b, c.LowerLimit)
	upper := encodeLimit(b, c.UpperLimit)
	o := startObj(b, 5)
	o.off(sn)
	o.off(ln)
	o.off(structure)
	o.off(lower)
	o.off(upper)
	return o.end()
}

func decodeCase(bytes []byte, pos flatbuffers.UOffsetT) ir.Case {
	r := newObjR(tableAt(bytes, pos))
	var c ir.Case
	c.ShortName = r.str()
	if p, ok := r.table(); ok {
		c.LongName = decodeText(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.Structure = decodeDop(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.LowerLimit = decodeLimit(bytes, p)
	}
	if p, ok := r.table(); ok {
		c.UpperLimit = decodeLimit(bytes, p)
	}
	return c
}

func encodeMuxDopData(b *flatbuffers.Builder, v *ir.MuxDopData) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	switchKey := encodeSwitchKey(b, v.SwitchKey)
	defaultCase := encodeDefaultCase(b, v.DefaultCase)
	offs := make([]flatbuffers.UOffsetT, len(v.Cases))
	for i := range v.Cases {
		offs[i] = encodeCase(b, &v.Cases[i])
	}
	cases := createTableVector(b, offs)
	o := startObj(b, 5)
	o.u32(v.BytePosition, 0)
	o.off(switchKey)
	o.off(defaultCase)
	o.off(cases)
	o.boolField(v.IsVisible)
	return o.end()
}

func decodeMuxDopData(bytes []byte, pos flatbuffers.UOffsetT) *ir.MuxDopData {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	v := &ir.MuxDopData{BytePosition: r.u32(0)}
	if p, ok := r.table(); ok {
		v.SwitchKey = decodeSwitchKey(bytes, p)
	}
	if p, ok := r.table(); ok {
		v.DefaultCase = decodeDefaultCase(bytes, p)
	}
	rawOff, length, ok := r.vector()
	if ok {
		v.Cases = make([]ir.Case, length)
		for i := 0; i < length; i++ {
			v.Cases[i] = decodeCase(bytes, vectorElemTable(t, rawOff, i))
		}
	}
	v.IsVisible = r.boolField()
	return v
}

// encodeDop and decodeDop drive the Dop 10-way union. The discriminant
// (DopType) is always written and read before the payload, matching
// every other union in this package (spec.md §4.2 "Union discrimination").
func encodeDop(b *flatbuffers.Builder, d *ir.Dop) flatbuffers.UOffsetT {
	if d == nil {
		return 0
	}
	sn := b.CreateString(d.ShortName)
	sdgs := encodeSDGs(b, d.SDGs)
	var payload flatbuffers.UOffsetT
	switch d.DopType {
	case ir.DopRegular:
		payload = encodeNormalDopData(b, d.Data.NormalDop)
	case ir.DopEndOfPduField:
		payload = encodeEndOfPduFieldData(b, d.Data.EndOfPduField)
	case ir.DopDynamicEndMarkerField:
		// Shares DynamicLengthFieldData's shape, as in the odx reader
		// and writer -- DopData carries no dedicated field for this
		// variant.
		payload = encodeDynamicLengthFieldData(b, d.Data.DynamicLengthField)
	case ir.DopStaticField:
		payload = encodeStaticFieldData(b, d.Data.StaticField)
	case ir.DopDynamicLengthField:
		payload = encodeDynamicLengthFieldData(b, d.Data.DynamicLengthField)
	case ir.DopEnvDataDesc:
		payload = encodeEnvDataDescData(b, d.Data.EnvDataDesc)
	case ir.DopEnvData:
		payload = encodeEnvDataData(b, d.Data.EnvData)
	case ir.DopDtc:
		payload = encodeDtcDopData(b, d.Data.DtcDop)
	case ir.DopStructure:
		payload = encodeStructureData(b, d.Data.Structure)
	case ir.DopMux:
		payload = encodeMuxDopData(b, d.Data.MuxDop)
	}
	o := startObj(b, 4)
	o.u8(uint8(d.DopType), 0)
	o.off(sn)
	o.off(sdgs)
	o.off(payload)
	return o.end()
}

func decodeDop(bytes []byte, pos flatbuffers.UOffsetT) *ir.Dop {
	r := newObjR(tableAt(bytes, pos))
	dopType := ir.DopType(r.u8(0))
	sn := r.str()
	sdgsPos, sdgsOK := r.table()
	payloadPos, ok := r.table()
	d := &ir.Dop{DopType: dopType, ShortName: sn}
	if sdgsOK {
		d.SDGs = decodeSDGs(bytes, sdgsPos)
	}
	if !ok {
		return d
	}
	switch dopType {
	case ir.DopRegular:
		d.Data.NormalDop = decodeNormalDopData(bytes, payloadPos)
	case ir.DopEndOfPduField:
		d.Data.EndOfPduField = decodeEndOfPduFieldData(bytes, payloadPos)
	case ir.DopStaticField:
		d.Data.StaticField = decodeStaticFieldData(bytes, payloadPos)
	case ir.DopDynamicLengthField, ir.DopDynamicEndMarkerField:
		d.Data.DynamicLengthField = decodeDynamicLengthFieldData(bytes, payloadPos)
	case ir.DopEnvDataDesc:
		d.Data.EnvDataDesc = decodeEnvDataDescData(bytes, payloadPos)
	case ir.DopEnvData:
		d.Data.EnvData = decodeEnvDataData(bytes, payloadPos)
	case ir.DopDtc:
		d.Data.DtcDop = decodeDtcDopData(bytes, payloadPos)
	case ir.DopStructure:
		d.Data.Structure = decodeStructureData(bytes, payloadPos)
	case ir.DopMux:
		d.Data.MuxDop = decodeMuxDopData(bytes, payloadPos)
	}
	return d
}

func encodeDopVector(b *flatbuffers.Builder, ds []ir.Dop) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ds))
	for i := range ds {
		offs[i] = encodeDop(b, &ds[i])
	}
	return createTableVector(b, offs)
}

func decodeDopVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Dop {
	if length == 0 {
		return nil
	}
	out := make([]ir.Dop, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeDop(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

func encodeText(b *flatbuffers.Builder, t *ir.Text) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	value := b.CreateString(t.Value)
	ti := b.CreateString(t.TI)
	o := startObj(b, 2)
	o.off(value)
	o.off(ti)
	return o.end()
}

func decodeText(bytes []byte, pos flatbuffers.UOffsetT) *ir.Text {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	return &ir.Text{Value: r.str(), TI: r.str()}
}

func encodeSd(b *flatbuffers.Builder, s *ir.Sd) flatbuffers.UOffsetT {
	if s == nil {
		return 0
	}
	value := b.CreateString(s.Value)
	si := b.CreateString(s.SI)
	ti := b.CreateString(s.TI)
	o := startObj(b, 3)
	o.off(value)
	o.off(si)
	o.off(ti)
	return o.end()
}

func decodeSd(bytes []byte, pos flatbuffers.UOffsetT) *ir.Sd {
	r := newObjR(tableAt(bytes, pos))
	return &ir.Sd{Value: r.str(), SI: r.str(), TI: r.str()}
}

// encodeSdOrSdg and encodeSdg are mutually recursive (an Sdg's Sds may
// nest further Sdgs arbitrarily deep); this mirrors the recursion allowed
// for ComplexValue (spec.md §4.2 "Nesting depth is unbounded in
// principle").
func encodeSdOrSdg(b *flatbuffers.Builder, e ir.SdOrSdg) flatbuffers.UOffsetT {
	var payload flatbuffers.UOffsetT
	switch e.Kind {
	case ir.SdOrSdgSd:
		payload = encodeSd(b, e.Sd)
	case ir.SdOrSdgSdg:
		payload = encodeSdg(b, e.Sdg)
	}
	o := startObj(b, 2)
	o.u8(uint8(e.Kind), 0)
	o.off(payload)
	return o.end()
}

func decodeSdOrSdg(bytes []byte, pos flatbuffers.UOffsetT) ir.SdOrSdg {
	r := newObjR(tableAt(bytes, pos))
	kind := ir.SdOrSdgKind(r.u8(0))
	payloadPos, ok := r.table()
	out := ir.SdOrSdg{Kind: kind}
	if !ok {
		return out
	}
	switch kind {
	case ir.SdOrSdgSd:
		out.Sd = decodeSd(bytes, payloadPos)
	case ir.SdOrSdgSdg:
		out.Sdg = decodeSdg(bytes, payloadPos)
	}
	return out
}

func encodeSdg(b *flatbuffers.Builder, s *ir.Sdg) flatbuffers.UOffsetT {
	if s == nil {
		return 0
	}
	caption := b.CreateString(s.CaptionSN)
	sdOffs := make([]flatbuffers.UOffsetT, len(s.Sds))
	for i, e := range s.Sds {
		sdOffs[i] = encodeSdOrSdg(b, e)
	}
	sds := createTableVector(b, sdOffs)
	si := b.CreateString(s.SI)
	o := startObj(b, 3)
	o.off(caption)
	o.off(sds)
	o.off(si)
	return o.end()
}

func decodeSdg(bytes []byte, pos flatbuffers.UOffsetT) *ir.Sdg {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	caption := r.str()
	rawOff, length, ok := r.vector()
	var sds []ir.SdOrSdg
	if ok {
		sds = make([]ir.SdOrSdg, length)
		for i := 0; i < length; i++ {
			sds[i] = decodeSdOrSdg(bytes, vectorElemTable(t, rawOff, i))
		}
	}
	si := r.str()
	return &ir.Sdg{CaptionSN: caption, Sds: sds, SI: si}
}

func encodeSDGs(b *flatbuffers.Builder, s *ir.SDGs) flatbuffers.UOffsetT {
	if s == nil {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(s.Sdgs))
	for i := range s.Sdgs {
		offs[i] = encodeSdg(b, &s.Sdgs[i])
	}
	vec := createTableVector(b, offs)
	o := startObj(b, 1)
	o.off(vec)
	return o.end()
}

func decodeSDGs(bytes []byte, pos flatbuffers.UOffsetT) *ir.SDGs {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	rawOff, length, ok := r.vector()
	if !ok {
		return &ir.SDGs{}
	}
	out := make([]ir.Sdg, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeSdg(bytes, vectorElemTable(t, rawOff, i))
	}
	return &ir.SDGs{Sdgs: out}
}

func encodeFunctClasses(b *flatbuffers.Builder, fcs []ir.FunctClass) flatbuffers.UOffsetT {
	names := make([]string, len(fcs))
	for i, fc := range fcs {
		names[i] = fc.ShortName
	}
	return createStringVector(b, names)
}

func decodeFunctClasses(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.FunctClass {
	names := readStringVector(tab, rawOff, length)
	if names == nil {
		return nil
	}
	out := make([]ir.FunctClass, len(names))
	for i, n := range names {
		out[i] = ir.FunctClass{ShortName: n}
	}
	return out
}

func encodeAdditionalAudience(b *flatbuffers.Builder, a *ir.AdditionalAudience) flatbuffers.UOffsetT {
	if a == nil {
		return 0
	}
	sn := b.CreateString(a.ShortName)
	ln := encodeText(b, a.LongName)
	o := startObj(b, 2)
	o.off(sn)
	o.off(ln)
	return o.end()
}

func decodeAdditionalAudience(bytes []byte, pos flatbuffers.UOffsetT) ir.AdditionalAudience {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	sn := r.str()
	lnPos, ok := r.table()
	aa := ir.AdditionalAudience{ShortName: sn}
	if ok {
		aa.LongName = decodeText(bytes, lnPos)
	}
	return aa
}

func encodeAudienceList(b *flatbuffers.Builder, list []ir.AdditionalAudience) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(list))
	for i := range list {
		offs[i] = encodeAdditionalAudience(b, &list[i])
	}
	return createTableVector(b, offs)
}

func decodeAudienceList(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.AdditionalAudience {
	if length == 0 {
		return nil
	}
	out := make([]ir.AdditionalAudience, length)
	for i := 0; i < length; i++ {
		out[i] = decodeAdditionalAudience(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeAudience(b *flatbuffers.Builder, a *ir.Audience) flatbuffers.UOffsetT {
	if a == nil {
		return 0
	}
	enabled := encodeAudienceList(b, a.EnabledAudiences)
	disabled := encodeAudienceList(b, a.DisabledAudiences)
	o := startObj(b, 7)
	o.off(enabled)
	o.off(disabled)
	o.boolField(a.IsSupplier)
	o.boolField(a.IsDevelopment)
	o.boolField(a.IsManufacturing)
	o.boolField(a.IsAfterSales)
	o.boolField(a.IsAfterMarket)
	return o.end()
}

func decodeAudience(bytes []byte, pos flatbuffers.UOffsetT) *ir.Audience {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	rawEn, lenEn, okEn := r.vector()
	rawDis, lenDis, okDis := r.vector()
	a := &ir.Audience{}
	if okEn {
		a.EnabledAudiences = decodeAudienceList(t, rawEn, lenEn)
	}
	if okDis {
		a.DisabledAudiences = decodeAudienceList(t, rawDis, lenDis)
	}
	a.IsSupplier = r.boolField()
	a.IsDevelopment = r.boolField()
	a.IsManufacturing = r.boolField()
	a.IsAfterSales = r.boolField()
	a.IsAfterMarket = r.boolField()
	return a
}

func encodeLimit(b *flatbuffers.Builder, l *ir.Limit) flatbuffers.UOffsetT {
	if l == nil {
		return 0
	}
	value := b.CreateString(l.Value)
	o := startObj(b, 2)
	o.off(value)
	o.u8(uint8(l.IntervalType), 0)
	return o.end()
}

func decodeLimit(bytes []byte, pos flatbuffers.UOffsetT) *ir.Limit {
	r := newObjR(tableAt(bytes, pos))
	value := r.str()
	it := ir.IntervalType(r.u8(0))
	return &ir.Limit{Value: value, IntervalType: it}
}

func encodeSimpleValue(b *flatbuffers.Builder, v *ir.SimpleValue) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	value := b.CreateString(v.Value)
	o := startObj(b, 1)
	o.off(value)
	return o.end()
}

func decodeSimpleValue(bytes []byte, pos flatbuffers.UOffsetT) *ir.SimpleValue {
	r := newObjR(tableAt(bytes, pos))
	return &ir.SimpleValue{Value: r.str()}
}

// encodeComplexValue and encodeSimpleOrComplexValue are mutually
// recursive: the codec must read the discriminant before the payload at
// every level (spec.md §4.2 "ComplexValue"), never the reverse.
func encodeComplexValue(b *flatbuffers.Builder, v *ir.ComplexValue) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(v.Entries))
	for i, e := range v.Entries {
		offs[i] = encodeSimpleOrComplexValue(b, e)
	}
	vec := createTableVector(b, offs)
	o := startObj(b, 1)
	o.off(vec)
	return o.end()
}

func decodeComplexValue(bytes []byte, pos flatbuffers.UOffsetT) *ir.ComplexValue {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	rawOff, length, ok := r.vector()
	if !ok {
		return &ir.ComplexValue{}
	}
	out := make([]ir.SimpleOrComplexValue, length)
	for i := 0; i < length; i++ {
		out[i] = decodeSimpleOrComplexValue(bytes, vectorElemTable(t, rawOff, i))
	}
	return &ir.ComplexValue{Entries: out}
}

func encodeSimpleOrComplexValue(b *flatbuffers.Builder, e ir.SimpleOrComplexValue) flatbuffers.UOffsetT {
	var payload flatbuffers.UOffsetT
	switch e.Kind {
	case ir.ValueKindSimple:
		payload = encodeSimpleValue(b, e.Simple)
	case ir.ValueKindComplex:
		payload = encodeComplexValue(b, e.Complex)
	}
	o := startObj(b, 2)
	o.u8(uint8(e.Kind), 0)
	o.off(payload)
	return o.end()
}

// decodeSimpleOrComplexValue reads the discriminant first and dispatches
// to the matching accessor only -- never the other way around (spec.md
// §4.2 "Union discrimination -- the core rule").
func decodeSimpleOrComplexValue(bytes []byte, pos flatbuffers.UOffsetT) ir.SimpleOrComplexValue {
	r := newObjR(tableAt(bytes, pos))
	kind := ir.SimpleOrComplexValueKind(r.u8(0))
	payloadPos, ok := r.table()
	out := ir.SimpleOrComplexValue{Kind: kind}
	if !ok {
		return out
	}
	switch kind {
	case ir.ValueKindSimple:
		out.Simple = decodeSimpleValue(bytes, payloadPos)
	case ir.ValueKindComplex:
		out.Complex = decodeComplexValue(bytes, payloadPos)
	default:
		// Unknown discriminant: tolerated by substitution of the
		// documented default (spec.md §4.2 "Failure modes") -- leave
		// both payload pointers nil rather than guess.
	}
	return out
}

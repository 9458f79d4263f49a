package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// encodeDiagServiceOrJob and decodeDiagServiceOrJob drive the union a
// TableDiagCommConnector points through (spec.md §3.4 "Tables").
func encodeDiagServiceOrJob(b *flatbuffers.Builder, v *ir.DiagServiceOrJob) flatbuffers.UOffsetT {
	var payload flatbuffers.UOffsetT
	switch v.Kind {
	case ir.DiagServiceOrJobService:
		payload = encodeDiagService(b, v.DiagService)
	case ir.DiagServiceOrJobJob:
		payload = encodeSingleEcuJob(b, v.Job)
	}
	o := startObj(b, 2)
	o.u8(uint8(v.Kind), 0)
	o.off(payload)
	return o.end()
}

func decodeDiagServiceOrJob(bytes []byte, pos flatbuffers.UOffsetT) ir.DiagServiceOrJob {
	r := newObjR(tableAt(bytes, pos))
	kind := ir.DiagServiceOrJobKind(r.u8(0))
	v := ir.DiagServiceOrJob{Kind: kind}
	payloadPos, ok := r.table()
	if !ok {
		return v
	}
	switch kind {
	case ir.DiagServiceOrJobService:
		v.DiagService = decodeDiagService(bytes, payloadPos)
	case ir.DiagServiceOrJobJob:
		v.Job = decodeSingleEcuJob(bytes, payloadPos)
	}
	return v
}

func encodeTableDiagCommConnector(b *flatbuffers.Builder, v *ir.TableDiagCommConnector) flatbuffers.UOffsetT {
	comm := encodeDiagServiceOrJob(b, &v.DiagComm)
	semantic := b.CreateString(v.Semantic)
	o := startObj(b, 2)
	o.off(comm)
	o.off(semantic)
	return o.end()
}

func decodeTableDiagCommConnector(bytes []byte, pos flatbuffers.UOffsetT) ir.TableDiagCommConnector {
	r := newObjR(tableAt(bytes, pos))
	var v ir.TableDiagCommConnector
	if p, ok := r.table(); ok {
		v.DiagComm = decodeDiagServiceOrJob(bytes, p)
	}
	v.Semantic = r.str()
	return v
}

func encodeTableDiagCommConnectorVector(b *flatbuffers.Builder, cs []ir.TableDiagCommConnector) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(cs))
	for i := range cs {
		offs[i] = encodeTableDiagCommConnector(b, &cs[i])
	}
	return createTableVector(b, offs)
}

func decodeTableDiagCommConnectorVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.TableDiagCommConnector {
	if length == 0 {
		return nil
	}
	out := make([]ir.TableDiagCommConnector, length)
	for i := 0; i < length; i++ {
		out[i] = decodeTableDiagCommConnector(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeTableRow(b *flatbuffers.Builder, t *ir.TableRow) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	sn := b.CreateString(t.ShortName)
	ln := encodeText(b, t.LongName)
	key := b.CreateString(t.Key)
	dop := encodeDop(b, t.Dop)
	structure := encodeDop(b, t.Structure)
	sdgs := encodeSDGs(b, t.SDGs)
	audience := encodeAudience(b, t.Audience)
	fcs := encodeFunctClassesVector(b, t.FunctClassRefs)
	transitions := encodeStateTransitionRefVector(b, t.StateTransitionRefs)
	preconds := encodePreConditionStateRefVector(b, t.PreConditionStateRefs)
	semantic := b.CreateString(t.Semantic)
	o := startObj(b, 14)
	o.off(sn)
	o.off(ln)
	o.off(key)
	o.off(dop)
	o.off(structure)
	o.off(sdgs)
	o.off(audience)
	o.off(fcs)
	o.off(transitions)
	o.off(preconds)
	o.boolField(t.IsExecutable)
	o.off(semantic)
	o.boolField(t.IsMandatory)
	o.boolField(t.IsFinal)
	return o.end()
}

func decodeTableRow(bytes []byte, pos flatbuffers.UOffsetT) *ir.TableRow {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	row := &ir.TableRow{}
	row.ShortName = r.str()
	if p, ok := r.table(); ok {
		row.LongName = decodeText(bytes, p)
	}
	row.Key = r.str()
	if p, ok := r.table(); ok {
		row.Dop = decodeDop(bytes, p)
	}
	if p, ok := r.table(); ok {
		row.Structure = decodeDop(bytes, p)
	}
	if p, ok := r.table(); ok {
		row.SDGs = decodeSDGs(bytes, p)
	}
	if p, ok := r.table(); ok {
		row.Audience = decodeAudience(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok {
		row.FunctClassRefs = decodeFunctClasses(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		row.StateTransitionRefs = decodeStateTransitionRefVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		row.PreConditionStateRefs = decodePreConditionStateRefVector(t, rawOff, length)
	}
	row.IsExecutable = r.boolField()
	row.Semantic = r.str()
	row.IsMandatory = r.boolField()
	row.IsFinal = r.boolField()
	return row
}

func encodeTableRowVector(b *flatbuffers.Builder, rows []ir.TableRow) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(rows))
	for i := range rows {
		offs[i] = encodeTableRow(b, &rows[i])
	}
	return createTableVector(b, offs)
}

func decodeTableRowVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.TableRow {
	if length == 0 {
		return nil
	}
	out := make([]ir.TableRow, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeTableRow(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeTableDop(b *flatbuffers.Builder, t *ir.TableDop) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	semantic := b.CreateString(t.Semantic)
	sn := b.CreateString(t.ShortName)
	ln := encodeText(b, t.LongName)
	keyLabel := b.CreateString(t.KeyLabel)
	structLabel := b.CreateString(t.StructLabel)
	keyDop := encodeDop(b, t.KeyDop)
	rows := encodeTableRowVector(b, t.Rows)
	connectors := encodeTableDiagCommConnectorVector(b, t.DiagCommConnectors)
	sdgs := encodeSDGs(b, t.SDGs)
	o := startObj(b, 9)
	o.off(semantic)
	o.off(sn)
	o.off(ln)
	o.off(keyLabel)
	o.off(structLabel)
	o.off(keyDop)
	o.off(rows)
	o.off(connectors)
	o.off(sdgs)
	return o.end()
}

func decodeTableDop(bytes []byte, pos flatbuffers.UOffsetT) *ir.TableDop {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	td := &ir.TableDop{}
	td.Semantic = r.str()
	td.ShortName = r.str()
	if p, ok := r.table(); ok {
		td.LongName = decodeText(bytes, p)
	}
	td.KeyLabel = r.str()
	td.StructLabel = r.str()
	if p, ok := r.table(); ok {
		td.KeyDop = decodeDop(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok {
		td.Rows = decodeTableRowVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		td.DiagCommConnectors = decodeTableDiagCommConnectorVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		td.SDGs = decodeSDGs(bytes, p)
	}
	return td
}

func encodeTableDopVector(b *flatbuffers.Builder, ts []ir.TableDop) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ts))
	for i := range ts {
		offs[i] = encodeTableDop(b, &ts[i])
	}
	return createTableVector(b, offs)
}

func decodeTableDopVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.TableDop {
	if length == 0 {
		return nil
	}
	out := make([]ir.TableDop, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeTableDop(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

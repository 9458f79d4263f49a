package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

func encodeFunctClassesVector(b *flatbuffers.Builder, fcs []ir.FunctClass) flatbuffers.UOffsetT {
	return encodeFunctClasses(b, fcs)
}

func encodePreConditionStateRef(b *flatbuffers.Builder, v *ir.PreConditionStateRef) flatbuffers.UOffsetT {
	value := b.CreateString(v.Value)
	inParamIf := b.CreateString(v.InParamIfShortName)
	inParamPath := b.CreateString(v.InParamPathShortName)
	o := startObj(b, 3)
	o.off(value)
	o.off(inParamIf)
	o.off(inParamPath)
	return o.end()
}

func decodePreConditionStateRef(bytes []byte, pos flatbuffers.UOffsetT) ir.PreConditionStateRef {
	r := newObjR(tableAt(bytes, pos))
	return ir.PreConditionStateRef{
		Value:                r.str(),
		InParamIfShortName:   r.str(),
		InParamPathShortName: r.str(),
	}
}

func encodePreConditionStateRefVector(b *flatbuffers.Builder, v []ir.PreConditionStateRef) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(v))
	for i := range v {
		offs[i] = encodePreConditionStateRef(b, &v[i])
	}
	return createTableVector(b, offs)
}

func decodePreConditionStateRefVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.PreConditionStateRef {
	if length == 0 {
		return nil
	}
	out := make([]ir.PreConditionStateRef, length)
	for i := 0; i < length; i++ {
		out[i] = decodePreConditionStateRef(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeStateTransitionRef(b *flatbuffers.Builder, v *ir.StateTransitionRef) flatbuffers.UOffsetT {
	value := b.CreateString(v.Value)
	o := startObj(b, 1)
	o.off(value)
	return o.end()
}

func decodeStateTransitionRef(bytes []byte, pos flatbuffers.UOffsetT) ir.StateTransitionRef {
	r := newObjR(tableAt(bytes, pos))
	return ir.StateTransitionRef{Value: r.str()}
}

func encodeStateTransitionRefVector(b *flatbuffers.Builder, v []ir.StateTransitionRef) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(v))
	for i := range v {
		offs[i] = encodeStateTransitionRef(b, &v[i])
	}
	return createTableVector(b, offs)
}

func decodeStateTransitionRefVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.StateTransitionRef {
	if length == 0 {
		return nil
	}
	out := make([]ir.StateTransitionRef, length)
	for i := 0; i < length; i++ {
		out[i] = decodeStateTransitionRef(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeDiagComm(b *flatbuffers.Builder, d *ir.DiagComm) flatbuffers.UOffsetT {
	sn := b.CreateString(d.ShortName)
	ln := encodeText(b, d.LongName)
	semantic := b.CreateString(d.Semantic)
	functClasses := encodeFunctClassesVector(b, d.FunctClasses)
	sdgs := encodeSDGs(b, d.SDGs)
	preconds := encodePreConditionStateRefVector(b, d.PreConditionStateRefs)
	transitions := encodeStateTransitionRefVector(b, d.StateTransitionRefs)
	protocols := encodeProtocolRefVector(b, d.Protocols)
	audience := encodeAudience(b, d.Audience)
	o := startObj(b, 13)
	o.off(sn)
	o.off(ln)
	o.off(semantic)
	o.off(functClasses)
	o.off(sdgs)
	o.u8(uint8(d.DiagClassType), 0)
	o.off(preconds)
	o.off(transitions)
	o.off(protocols)
	o.off(audience)
	o.boolField(d.IsMandatory)
	o.boolField(d.IsExecutable)
	o.boolField(d.IsFinal)
	return o.end()
}

func decodeDiagComm(bytes []byte, pos flatbuffers.UOffsetT) ir.DiagComm {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var d ir.DiagComm
	d.ShortName = r.str()
	if p, ok := r.table(); ok {
		d.LongName = decodeText(bytes, p)
	}
	d.Semantic = r.str()
	if rawOff, length, ok := r.vector(); ok {
		d.FunctClasses = decodeFunctClasses(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		d.SDGs = decodeSDGs(bytes, p)
	}
	d.DiagClassType = ir.DiagClassType(r.u8(0))
	if rawOff, length, ok := r.vector(); ok {
		d.PreConditionStateRefs = decodePreConditionStateRefVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		d.StateTransitionRefs = decodeStateTransitionRefVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		d.Protocols = decodeProtocolRefVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		d.Audience = decodeAudience(bytes, p)
	}
	d.IsMandatory = r.boolField()
	d.IsExecutable = r.boolField()
	d.IsFinal = r.boolField()
	return d
}

func encodeRequest(b *flatbuffers.Builder, req *ir.Request) flatbuffers.UOffsetT {
	if req == nil {
		return 0
	}
	params := encodeParamVector(b, req.Params)
	sdgs := encodeSDGs(b, req.SDGs)
	o := startObj(b, 2)
	o.off(params)
	o.off(sdgs)
	return o.end()
}

func decodeRequest(bytes []byte, pos flatbuffers.UOffsetT) *ir.Request {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	req := &ir.Request{}
	if rawOff, length, ok := r.vector(); ok {
		req.Params = decodeParamVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		req.SDGs = decodeSDGs(bytes, p)
	}
	return req
}

func encodeResponse(b *flatbuffers.Builder, resp *ir.Response) flatbuffers.UOffsetT {
	params := encodeParamVector(b, resp.Params)
	sdgs := encodeSDGs(b, resp.SDGs)
	o := startObj(b, 3)
	o.u8(uint8(resp.ResponseType), 0)
	o.off(params)
	o.off(sdgs)
	return o.end()
}

func decodeResponse(bytes []byte, pos flatbuffers.UOffsetT) ir.Response {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	var resp ir.Response
	resp.ResponseType = ir.ResponseType(r.u8(0))
	if rawOff, length, ok := r.vector(); ok {
		resp.Params = decodeParamVector(t, rawOff, length)
	}
	if p, ok := r.table(); ok {
		resp.SDGs = decodeSDGs(bytes, p)
	}
	return resp
}

func encodeResponseVector(b *flatbuffers.Builder, rs []ir.Response) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(rs))
	for i := range rs {
		offs[i] = encodeResponse(b, &rs[i])
	}
	return createTableVector(b, offs)
}

func decodeResponseVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Response {
	if length == 0 {
		return nil
	}
	out := make([]ir.Response, length)
	for i := 0; i < length; i++ {
		out[i] = decodeResponse(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeDiagService(b *flatbuffers.Builder, s *ir.DiagService) flatbuffers.UOffsetT {
	if s == nil {
		return 0
	}
	comm := encodeDiagComm(b, &s.DiagComm)
	req := encodeRequest(b, s.Request)
	pos := encodeResponseVector(b, s.PosResponses)
	neg := encodeResponseVector(b, s.NegResponses)
	comparams := encodeComParamRefVector(b, s.ComParamRefs)
	o := startObj(b, 9)
	o.off(comm)
	o.off(req)
	o.off(pos)
	o.off(neg)
	o.boolField(s.IsCyclic)
	o.boolField(s.IsMultiple)
	o.u8(uint8(s.Addressing), 0)
	o.u8(uint8(s.TransmissionMode), 0)
	o.off(comparams)
	return o.end()
}

func decodeDiagService(bytes []byte, pos flatbuffers.UOffsetT) *ir.DiagService {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	s := &ir.DiagService{}
	if p, ok := r.table(); ok {
		s.DiagComm = decodeDiagComm(bytes, p)
	}
	if p, ok := r.table(); ok {
		s.Request = decodeRequest(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok {
		s.PosResponses = decodeResponseVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		s.NegResponses = decodeResponseVector(t, rawOff, length)
	}
	s.IsCyclic = r.boolField()
	s.IsMultiple = r.boolField()
	s.Addressing = ir.Addressing(r.u8(0))
	s.TransmissionMode = ir.TransmissionMode(r.u8(0))
	if rawOff, length, ok := r.vector(); ok {
		s.ComParamRefs = decodeComParamRefVector(t, rawOff, length)
	}
	return s
}

func encodeDiagServiceVector(b *flatbuffers.Builder, ss []ir.DiagService) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ss))
	for i := range ss {
		offs[i] = encodeDiagService(b, &ss[i])
	}
	return createTableVector(b, offs)
}

func decodeDiagServiceVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.DiagService {
	if length == 0 {
		return nil
	}
	out := make([]ir.DiagService, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeDiagService(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeLibrary(b *flatbuffers.Builder, l *ir.Library) flatbuffers.UOffsetT {
	sn := b.CreateString(l.ShortName)
	ln := encodeText(b, l.LongName)
	codeFile := b.CreateString(l.CodeFile)
	encryption := b.CreateString(l.Encryption)
	syntax := b.CreateString(l.Syntax)
	entry := b.CreateString(l.EntryPoint)
	o := startObj(b, 6)
	o.off(sn)
	o.off(ln)
	o.off(codeFile)
	o.off(encryption)
	o.off(syntax)
	o.off(entry)
	return o.end()
}

func decodeLibrary(bytes []byte, pos flatbuffers.UOffsetT) ir.Library {
	r := newObjR(tableAt(bytes, pos))
	var l ir.Library
	l.ShortName = r.str()
	if p, ok := r.table(); ok {
		l.LongName = decodeText(bytes, p)
	}
	l.CodeFile = r.str()
	l.Encryption = r.str()
	l.Syntax = r.str()
	l.EntryPoint = r.str()
	return l
}

func encodeLibraryVector(b *flatbuffers.Builder, ls []ir.Library) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ls))
	for i := range ls {
		offs[i] = encodeLibrary(b, &ls[i])
	}
	return createTableVector(b, offs)
}

func decodeLibraryVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.Library {
	if length == 0 {
		return nil
	}
	out := make([]ir.Library, length)
	for i := 0; i < length; i++ {
		out[i] = decodeLibrary(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeProgCode(b *flatbuffers.Builder, p *ir.ProgCode) flatbuffers.UOffsetT {
	if p == nil {
		return 0
	}
	codeFile := b.CreateString(p.CodeFile)
	encryption := b.CreateString(p.Encryption)
	syntax := b.CreateString(p.Syntax)
	revision := b.CreateString(p.Revision)
	entry := b.CreateString(p.EntryPoint)
	libs := encodeLibraryVector(b, p.Libraries)
	o := startObj(b, 6)
	o.off(codeFile)
	o.off(encryption)
	o.off(syntax)
	o.off(revision)
	o.off(entry)
	o.off(libs)
	return o.end()
}

func decodeProgCode(bytes []byte, pos flatbuffers.UOffsetT) *ir.ProgCode {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	p := &ir.ProgCode{}
	p.CodeFile = r.str()
	p.Encryption = r.str()
	p.Syntax = r.str()
	p.Revision = r.str()
	p.EntryPoint = r.str()
	if rawOff, length, ok := r.vector(); ok {
		p.Libraries = decodeLibraryVector(t, rawOff, length)
	}
	return p
}

func encodeProgCodeVector(b *flatbuffers.Builder, ps []ir.ProgCode) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ps))
	for i := range ps {
		offs[i] = encodeProgCode(b, &ps[i])
	}
	return createTableVector(b, offs)
}

func decodeProgCodeVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.ProgCode {
	if length == 0 {
		return nil
	}
	out := make([]ir.ProgCode, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeProgCode(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeJobParam(b *flatbuffers.Builder, j *ir.JobParam) flatbuffers.UOffsetT {
	sn := b.CreateString(j.ShortName)
	ln := encodeText(b, j.LongName)
	physDefault := b.CreateString(j.PhysicalDefaultValue)
	dop := encodeDop(b, j.DopBase)
	semantic := b.CreateString(j.Semantic)
	o := startObj(b, 5)
	o.off(sn)
	o.off(ln)
	o.off(physDefault)
	o.off(dop)
	o.off(semantic)
	return o.end()
}

func decodeJobParam(bytes []byte, pos flatbuffers.UOffsetT) ir.JobParam {
	r := newObjR(tableAt(bytes, pos))
	var j ir.JobParam
	j.ShortName = r.str()
	if p, ok := r.table(); ok {
		j.LongName = decodeText(bytes, p)
	}
	j.PhysicalDefaultValue = r.str()
	if p, ok := r.table(); ok {
		j.DopBase = decodeDop(bytes, p)
	}
	j.Semantic = r.str()
	return j
}

func encodeJobParamVector(b *flatbuffers.Builder, js []ir.JobParam) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(js))
	for i := range js {
		offs[i] = encodeJobParam(b, &js[i])
	}
	return createTableVector(b, offs)
}

func decodeJobParamVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.JobParam {
	if length == 0 {
		return nil
	}
	out := make([]ir.JobParam, length)
	for i := 0; i < length; i++ {
		out[i] = decodeJobParam(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

func encodeSingleEcuJob(b *flatbuffers.Builder, j *ir.SingleEcuJob) flatbuffers.UOffsetT {
	if j == nil {
		return 0
	}
	comm := encodeDiagComm(b, &j.DiagComm)
	progs := encodeProgCodeVector(b, j.ProgCodes)
	inputs := encodeJobParamVector(b, j.InputParams)
	outputs := encodeJobParamVector(b, j.OutputParams)
	negOutputs := encodeJobParamVector(b, j.NegOutputParams)
	o := startObj(b, 5)
	o.off(comm)
	o.off(progs)
	o.off(inputs)
	o.off(outputs)
	o.off(negOutputs)
	return o.end()
}

func decodeSingleEcuJob(bytes []byte, pos flatbuffers.UOffsetT) *ir.SingleEcuJob {
	t := tableAt(bytes, pos)
	r := newObjR(t)
	j := &ir.SingleEcuJob{}
	if p, ok := r.table(); ok {
		j.DiagComm = decodeDiagComm(bytes, p)
	}
	if rawOff, length, ok := r.vector(); ok {
		j.ProgCodes = decodeProgCodeVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		j.InputParams = decodeJobParamVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		j.OutputParams = decodeJobParamVector(t, rawOff, length)
	}
	if rawOff, length, ok := r.vector(); ok {
		j.NegOutputParams = decodeJobParamVector(t, rawOff, length)
	}
	return j
}

func encodeSingleEcuJobVector(b *flatbuffers.Builder, js []ir.SingleEcuJob) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(js))
	for i := range js {
		offs[i] = encodeSingleEcuJob(b, &js[i])
	}
	return createTableVector(b, offs)
}

func decodeSingleEcuJobVector(tab *flatbuffers.Table, rawOff flatbuffers.UOffsetT, length int) []ir.SingleEcuJob {
	if length == 0 {
		return nil
	}
	out := make([]ir.SingleEcuJob, length)
	for i := 0; i < length; i++ {
		out[i] = *decodeSingleEcuJob(tab.Bytes, vectorElemTable(tab, rawOff, i))
	}
	return out
}

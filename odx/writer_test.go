package odx

import (
	"strings"
	"testing"

	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// sidParam builds a one-byte CODED-CONST param at the given byte position,
// the shape servicegen and the YAML reader both use for SID/sub-function
// bytes (spec.md §3.4, §4.6).
func sidParam(shortName string, bytePos uint32, value string) ir.Param {
	bp := bytePos
	return ir.Param{
		ParamType:    ir.ParamCodedConst,
		ShortName:    shortName,
		BytePosition: &bp,
		Data: ir.ParamData{
			CodedConst: &ir.CodedConstData{
				CodedValue: value,
				DiagCodedType: ir.DiagCodedType{
					TypeName:     ir.StandardLengthType,
					BaseDataType: ir.AUint32,
					Data:         ir.DiagCodedTypeData{StandardLength: &ir.StandardLengthData{BitLength: 8}},
				},
			},
		},
	}
}

func vinReadDatabase() *ir.Database {
	svc := ir.DiagService{
		DiagComm: ir.DiagComm{ShortName: "VIN_Read", Semantic: "CURRENTDATA"},
		Request: &ir.Request{
			Params: []ir.Param{sidParam("SID", 0, "0x22"), sidParam("DID", 1, "0xF190")},
		},
		PosResponses: []ir.Response{
			{ResponseType: ir.ResponsePositive, Params: []ir.Param{sidParam("SID", 0, "0x62")}},
		},
	}
	return &ir.Database{
		EcuName: "TestECU",
		Variants: []ir.Variant{
			{
				IsBaseVariant: true,
				DiagLayer: ir.DiagLayer{
					ShortName:    "TestECU_base",
					DiagServices: []ir.DiagService{svc},
				},
			},
		},
	}
}

func TestWriteContainsExpectedElements(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"ecu short name", []string{"<SHORT-NAME>TestECU_base</SHORT-NAME>"}},
		{"service short name", []string{"<SHORT-NAME>VIN_Read</SHORT-NAME>"}},
		{"request SID coded value", []string{"<CODED-VALUE>0x22</CODED-VALUE>"}},
		{"base-variant flag", []string{`IS-BASE-VARIANT="true"`}},
	}

	out, err := Write(vinReadDatabase(), WriteOptions{})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got := string(out)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Write output missing %q\ngot:\n%s", want, got)
				}
			}
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	db := vinReadDatabase()

	out, err := Write(db, WriteOptions{})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(out, ReadOptions{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	base := got.BaseVariant()
	if base == nil {
		t.Fatalf("round-tripped database has no base variant")
	}
	if base.DiagLayer.ShortName != "TestECU_base" {
		t.Errorf("base variant short name = %q, want TestECU_base", base.DiagLayer.ShortName)
	}
	if len(base.DiagLayer.DiagServices) != 1 {
		t.Fatalf("expected exactly one service, got %d", len(base.DiagLayer.DiagServices))
	}

	svc := base.DiagLayer.DiagServices[0]
	if svc.DiagComm.ShortName != "VIN_Read" {
		t.Errorf("service short name = %q, want VIN_Read", svc.DiagComm.ShortName)
	}
	if svc.Request == nil || len(svc.Request.Params) != 2 {
		t.Fatalf("expected request with two params, got %+v", svc.Request)
	}
	if got := svc.Request.Params[1].Data.CodedConst.CodedValue; got != "0xF190" {
		t.Errorf("DID param coded value = %q, want 0xF190", got)
	}
	if len(svc.PosResponses) != 1 {
		t.Fatalf("expected one positive response, got %d", len(svc.PosResponses))
	}
	if got := svc.PosResponses[0].Params[0].Data.CodedConst.CodedValue; got != "0x62" {
		t.Errorf("positive response SID = %q, want 0x62", got)
	}
}

func TestWriteDeduplicatesSharedDop(t *testing.T) {
	dop := &ir.Dop{ShortName: "uint8", DopType: ir.DopRegular, Data: ir.DopData{NormalDop: &ir.NormalDopData{
		DiagCodedType: &ir.DiagCodedType{TypeName: ir.StandardLengthType, BaseDataType: ir.AUint32, Data: ir.DiagCodedTypeData{StandardLength: &ir.StandardLengthData{BitLength: 8}}},
	}}}
	param := func(name string, bytePos uint32) ir.Param {
		bp := bytePos
		return ir.Param{ParamType: ir.ParamValue, ShortName: name, BytePosition: &bp, Data: ir.ParamData{Value: &ir.ValueData{Dop: dop}}}
	}
	svc1 := ir.DiagService{
		DiagComm: ir.DiagComm{ShortName: "ReadA"},
		Request:  &ir.Request{Params: []ir.Param{param("A", 0)}},
	}
	svc2 := ir.DiagService{
		DiagComm: ir.DiagComm{ShortName: "ReadB"},
		Request:  &ir.Request{Params: []ir.Param{param("B", 0)}},
	}
	db := &ir.Database{
		EcuName: "TestECU",
		Variants: []ir.Variant{{
			IsBaseVariant: true,
			DiagLayer: ir.DiagLayer{
				ShortName:    "TestECU_base",
				DiagServices: []ir.DiagService{svc1, svc2},
			},
		}},
	}

	out, err := Write(db, WriteOptions{})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got := string(out)

	if n := strings.Count(got, "<SHORT-NAME>uint8</SHORT-NAME>"); n != 1 {
		t.Errorf("shared DOP emitted %d times, want exactly 1\ngot:\n%s", n, got)
	}
}

func TestWriteIndentAppliesWhenRequested(t *testing.T) {
	db := vinReadDatabase()

	plain, err := Write(db, WriteOptions{})
	if err != nil {
		t.Fatalf("Write (plain) failed: %v", err)
	}
	indented, err := Write(db, WriteOptions{Indent: "  "})
	if err != nil {
		t.Fatalf("Write (indented) failed: %v", err)
	}

	if len(indented) <= len(plain) {
		t.Errorf("indented output (%d bytes) should be larger than plain output (%d bytes)", len(indented), len(plain))
	}
	if !strings.Contains(string(indented), "\n  ") {
		t.Errorf("indented output does not appear to contain the requested indent:\n%s", indented)
	}
}

package fbs

import (
	"testing"

	"github.com/bburda42dot/diag-converter-sub000/ir"
)

func sampleDatabase() *ir.Database {
	bitLen := uint32(8)
	bytePos := uint32(0)
	return &ir.Database{
		EcuName:  "ECM",
		Version:  "1.0",
		Revision: "A",
		Metadata: map[string]string{"tool": "diagconv", "schema": "v3"},
		Variants: []ir.Variant{
			{
				IsBaseVariant: true,
				DiagLayer: ir.DiagLayer{
					ShortName: "ECM_Base",
					LongName:  &ir.LongName{Value: "Engine Control Module", TI: "en"},
					DiagServices: []ir.DiagService{
						{
							DiagComm: ir.DiagComm{
								ShortName:     "DiagnosticSessionControl",
								Semantic:      "SESSION",
								DiagClassType: ir.DiagClassStartComm,
								IsExecutable:  true,
							},
							Addressing:       ir.AddressingPhysical,
							TransmissionMode: ir.TransmissionSendAndReceive,
							Request: &ir.Request{
								Params: []ir.Param{
									{
										ID:        1,
										ParamType: ir.ParamCodedConst,
										ShortName: "SID",
										Data: ir.ParamData{
											CodedConst: &ir.CodedConstData{
												CodedValue: "0x10",
												DiagCodedType: ir.DiagCodedType{
													TypeName:     ir.StandardLengthType,
													BaseDataType: ir.AUint32,
													Data: ir.DiagCodedTypeData{
														StandardLength: &ir.StandardLengthData{BitLength: bitLen},
													},
												},
											},
										},
									},
									{
										ID:           2,
										ParamType:    ir.ParamValue,
										ShortName:    "SubFunction",
										BytePosition: &bytePos,
										Data: ir.ParamData{
											Value: &ir.ValueData{
												PhysicalDefaultValue: "1",
												Dop: &ir.Dop{
													DopType:   ir.DopRegular,
													ShortName: "DOP_SubFunction",
													Data: ir.DopData{
														NormalDop: &ir.NormalDopData{
															CompuMethod: &ir.CompuMethod{Category: ir.CompuIdentical},
															DiagCodedType: &ir.DiagCodedType{
																TypeName:     ir.StandardLengthType,
																BaseDataType: ir.AUint32,
																Data: ir.DiagCodedTypeData{
																	StandardLength: &ir.StandardLengthData{BitLength: bitLen},
																},
															},
															PhysicalType: &ir.PhysicalType{BaseDataType: ir.PhysAUint32, DisplayRadix: ir.RadixHex},
														},
													},
												},
											},
										},
									},
								},
							},
							PosResponses: []ir.Response{
								{ResponseType: ir.ResponsePositive},
							},
						},
					},
				},
			},
		},
		Dtcs: []ir.Dtc{
			{ShortName: "P0001", TroubleCode: 1, DisplayTroubleCode: "P0001", IsTemporary: false},
		},
		TypeDefinitions: []ir.TypeDefinition{
			{Name: "uint8_t", BaseDataType: ir.AUint32, BitLength: 8},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	db := sampleDatabase()
	buf := Encode(db)
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !ir.Equal(db, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", db, got)
	}
}

func TestDecodeRejectsShortBuffer(t *testing.T) {
	if _, err := Decode([]byte{0, 1}); err != ErrFlatBuffersParse {
		t.Fatalf("expected ErrFlatBuffersParse, got %v", err)
	}
}

// TestParamUnionDiscriminant checks that a Param's payload accessor
// matches its ParamType discriminant across a round trip, for the
// CodedConst and Value params of the sample request (spec.md §4.2 "Union
// discrimination").
func TestParamUnionDiscriminant(t *testing.T) {
	db := sampleDatabase()
	buf := Encode(db)
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	params := got.Variants[0].DiagLayer.DiagServices[0].Request.Params
	for _, p := range params {
		switch p.ParamType {
		case ir.ParamCodedConst:
			if p.Data.CodedConst == nil {
				t.Fatalf("ParamCodedConst with nil payload")
			}
		case ir.ParamValue:
			if p.Data.Value == nil {
				t.Fatalf("ParamValue with nil payload")
			}
		}
	}
}

func TestComplexValueNestingRoundTrip(t *testing.T) {
	v := &ir.ComplexValue{
		Entries: []ir.SimpleOrComplexValue{
			{Kind: ir.ValueKindSimple, Simple: &ir.SimpleValue{Value: "1"}},
			{Kind: ir.ValueKindComplex, Complex: &ir.ComplexValue{
				Entries: []ir.SimpleOrComplexValue{
					{Kind: ir.ValueKindComplex, Complex: &ir.ComplexValue{
						Entries: []ir.SimpleOrComplexValue{
							{Kind: ir.ValueKindSimple, Simple: &ir.SimpleValue{Value: "nested"}},
						},
					}},
				},
			}},
		},
	}
	db := &ir.Database{
		EcuName: "X",
		Variants: []ir.Variant{{
			DiagLayer: ir.DiagLayer{
				ShortName: "L",
				ComParamRefs: []ir.ComParamRef{
					{ComplexValue: v},
				},
			},
		}},
	}
	buf := Encode(db)
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	gotV := got.Variants[0].DiagLayer.ComParamRefs[0].ComplexValue
	if gotV == nil || len(gotV.Entries) != 2 {
		t.Fatalf("complex value structure lost: %+v", gotV)
	}
	inner := gotV.Entries[1].Complex.Entries[0].Complex.Entries[0]
	if inner.Kind != ir.ValueKindSimple || inner.Simple == nil || inner.Simple.Value != "nested" {
		t.Fatalf("nested complex value mismatch: %+v", inner)
	}
}

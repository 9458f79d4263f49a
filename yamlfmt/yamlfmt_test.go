package yamlfmt

import (
	"strings"
	"testing"

	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// TestReadDidService covers spec.md §8 scenario S1: one DID 0xF190 named
// VIN (writable=false) synthesizes a single VIN_Read service with request
// SID 0x22, DID constant 0xF190, and positive-response SID 0x62.
func TestReadDidService(t *testing.T) {
	doc := `
schema: opensovd.cda.diagdesc/v1
ecu:
  id: "0x01"
  name: TestECU
dids:
  "0xF190":
    name: VIN
    type: ascii_type
    writable: false
types:
  ascii_type:
    base: ascii
`
	db, err := Read([]byte(doc), ReadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	base := db.BaseVariant()
	if base == nil {
		t.Fatalf("no base variant")
	}

	var svc *ir.DiagService
	for i := range base.DiagLayer.DiagServices {
		if base.DiagLayer.DiagServices[i].DiagComm.ShortName == "VIN_Read" {
			svc = &base.DiagLayer.DiagServices[i]
		}
	}
	if svc == nil {
		t.Fatalf("expected a VIN_Read service, got: %+v", base.DiagLayer.DiagServices)
	}
	if len(svc.PosResponses) != 1 {
		t.Fatalf("expected exactly one positive response, got %d", len(svc.PosResponses))
	}

	requestHasSID(t, svc.Request, 0x22)
	responseHasSID(t, &svc.PosResponses[0], 0x62)
}

// TestSessionControlServices covers spec.md §8 scenario S2: two sessions
// synthesize two DiagnosticSessionControl services with sub-function bytes
// 0x01/0x03 and positive response SID 0x50.
func TestSessionControlServices(t *testing.T) {
	doc := `
schema: opensovd.cda.diagdesc/v1
ecu:
  name: TestECU
sessions:
  default:
    id: "0x01"
  extended:
    id: "0x03"
services:
  diagnosticSessionControl:
    enabled: true
`
	db, err := Read([]byte(doc), ReadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	base := db.BaseVariant()
	if base == nil {
		t.Fatalf("no base variant")
	}

	var subFuncs []byte
	for i := range base.DiagLayer.DiagServices {
		s := &base.DiagLayer.DiagServices[i]
		if s.DiagComm.Semantic != "SESSION" {
			continue
		}
		if len(s.PosResponses) != 1 {
			t.Fatalf("session service %s: expected one positive response", s.DiagComm.ShortName)
		}
		responseHasSID(t, &s.PosResponses[0], 0x50)
		for j := range s.Request.Params {
			p := &s.Request.Params[j]
			if p.ShortName == "SubFunction" && p.Data.CodedConst != nil {
				subFuncs = append(subFuncs, byte(parseHexKey(p.Data.CodedConst.CodedValue)))
			}
		}
	}
	if len(subFuncs) != 2 || subFuncs[0] != 0x01 || subFuncs[1] != 0x03 {
		t.Fatalf("expected two session services with sub-function bytes 0x01 and 0x03, got %v", subFuncs)
	}
}

// TestWriteReadRoundTrip exercises the carryover-SDG path end to end: a
// document with an identification block and free-form x-oem data keeps
// both sections through Read -> Write, and its DID service survives
// Read -> Write -> Read.
func TestWriteReadRoundTrip(t *testing.T) {
	doc := `
schema: opensovd.cda.diagdesc/v1
ecu:
  name: TestECU
identification:
  expected_idents:
    vin: "0xF190"
x-oem:
  acme:
    flavor: spicy
dids:
  "0xF190":
    name: VIN
    type: ascii_type
types:
  ascii_type:
    base: ascii
`
	db, err := Read([]byte(doc), ReadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	out, err := Write(db, WriteOptions{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	db2, err := Read(out, ReadOptions{})
	if err != nil {
		t.Fatalf("Read (round 2): %v", err)
	}

	base2 := db2.BaseVariant()
	if base2 == nil {
		t.Fatalf("no base variant after round-trip")
	}
	found := false
	for i := range base2.DiagLayer.DiagServices {
		if base2.DiagLayer.DiagServices[i].DiagComm.ShortName == "VIN_Read" {
			found = true
		}
	}
	if !found {
		t.Fatalf("VIN_Read service did not survive round-trip; services: %+v", base2.DiagLayer.DiagServices)
	}
	if !strings.Contains(string(out), "x-oem") {
		t.Fatalf("expected x-oem section to survive Write, got:\n%s", out)
	}
	if !strings.Contains(string(out), "identification") {
		t.Fatalf("expected identification section to survive Write, got:\n%s", out)
	}
}

func requestHasSID(t *testing.T, req *ir.Request, want uint64) {
	t.Helper()
	if req == nil {
		t.Fatalf("nil request")
	}
	for i := range req.Params {
		p := &req.Params[i]
		if p.ShortName == "SID" && p.Data.CodedConst != nil {
			if got := parseHexKey(p.Data.CodedConst.CodedValue); got != uint32(want) {
				t.Fatalf("SID = %#x, want %#x", got, want)
			}
			return
		}
	}
	t.Fatalf("request has no SID param")
}

func responseHasSID(t *testing.T, resp *ir.Response, want uint64) {
	t.Helper()
	for i := range resp.Params {
		p := &resp.Params[i]
		if p.ShortName == "SID" && p.Data.CodedConst != nil {
			if got := parseHexKey(p.Data.CodedConst.CodedValue); got != uint32(want) {
				t.Fatalf("SID = %#x, want %#x", got, want)
			}
			return
		}
	}
	t.Fatalf("response has no SID param")
}

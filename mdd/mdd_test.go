package mdd

import (
	"bytes"
	"fmt"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	cases := []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLzma}
	for _, algo := range cases {
		algo := algo
		t.Run(fmt.Sprintf("compression_%d", algo), func(t *testing.T) {
			payload := bytes.Repeat([]byte("flatbuffers-payload-bytes"), 50)
			opts := WriteOptions{
				Version:     "1.2.3",
				EcuName:     "ECM",
				Revision:    "rev-A",
				Compression: algo,
				ExtraChunks: []ExtraChunk{
					{ChunkType: "job-code", Name: "reflash.bin", Data: []byte("binary-job-code")},
				},
			}
			out, err := Write(payload, opts)
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			c, err := Read(out)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if !bytes.Equal(c.Primary, payload) {
				t.Fatalf("primary payload mismatch")
			}
			if c.EcuName != "ECM" || c.Version != "1.2.3" || c.Revision != "rev-A" {
				t.Fatalf("header metadata mismatch: %+v", c)
			}
			extra, ok := c.ExtraByName("job-code", "reflash.bin")
			if !ok {
				t.Fatalf("missing extra chunk")
			}
			if !bytes.Equal(extra.Data, []byte("binary-job-code")) {
				t.Fatalf("extra chunk payload mismatch")
			}
		})
	}
}

func TestWriteDeterministic(t *testing.T) {
	payload := []byte("deterministic-payload")
	opts := WriteOptions{Version: "1", EcuName: "E", Revision: "r", Compression: CompressionZstd}
	a, err := Write(payload, opts)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := Write(payload, opts)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("expected byte-identical output across writes")
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	if _, err := Read([]byte("not an mdd file at all")); err != ErrUnrecognizedHeader {
		t.Fatalf("expected ErrUnrecognizedHeader, got %v", err)
	}
}

func TestReadRejectsChecksumMismatch(t *testing.T) {
	payload := []byte("abc")
	out, err := Write(payload, WriteOptions{Compression: CompressionNone})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	corrupt := append([]byte(nil), out...)
	corrupt[len(corrupt)-1] ^= 0xFF
	if _, err := Read(corrupt); err != ErrChecksumMismatch {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bburda42dot/diag-converter-sub000/ir"
	"github.com/bburda42dot/diag-converter-sub000/mdd"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in      string
		want    mdd.Compression
		wantErr bool
	}{
		{"", mdd.CompressionNone, false},
		{"none", mdd.CompressionNone, false},
		{"GZIP", mdd.CompressionGzip, false},
		{"zstd", mdd.CompressionZstd, false},
		{"lzma", mdd.CompressionLzma, false},
		{"bogus", mdd.CompressionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCompression(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCompression(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCompression(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseCompression(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestJobFileChunks covers SPEC_FULL.md §3 "--include-job-files": every
// distinct ProgCode.CodeFile referenced anywhere in the database, across
// both variants and functional groups, becomes exactly one MDD extra chunk.
func TestJobFileChunks(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "flash.bin"), []byte("job-bytes"), 0o644); err != nil {
		t.Fatalf("writing fixture file: %v", err)
	}

	job := ir.SingleEcuJob{
		DiagComm:  ir.DiagComm{ShortName: "EraseFlash"},
		ProgCodes: []ir.ProgCode{{CodeFile: "flash.bin"}, {CodeFile: "flash.bin"}},
	}
	fgJob := ir.SingleEcuJob{
		DiagComm:  ir.DiagComm{ShortName: "EraseFlashShared"},
		ProgCodes: []ir.ProgCode{{CodeFile: "flash.bin"}},
	}
	db := &ir.Database{
		Variants: []ir.Variant{{
			DiagLayer: ir.DiagLayer{ShortName: "base", SingleEcuJobs: []ir.SingleEcuJob{job}},
		}},
		FunctionalGroups: []ir.FunctionalGroup{{
			DiagLayer: ir.DiagLayer{ShortName: "fg", SingleEcuJobs: []ir.SingleEcuJob{fgJob}},
		}},
	}

	chunks, err := jobFileChunks(db, dir)
	if err != nil {
		t.Fatalf("jobFileChunks failed: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected exactly one deduplicated chunk, got %d: %+v", len(chunks), chunks)
	}
	if chunks[0].Name != "flash.bin" || string(chunks[0].Data) != "job-bytes" {
		t.Errorf("unexpected chunk contents: %+v", chunks[0])
	}
	if chunks[0].ChunkType != "job-code" {
		t.Errorf("chunk type = %q, want job-code", chunks[0].ChunkType)
	}
}

func TestJobFileChunksEmptyDirIsNoop(t *testing.T) {
	db := &ir.Database{}
	chunks, err := jobFileChunks(db, "")
	if err != nil {
		t.Fatalf("jobFileChunks failed: %v", err)
	}
	if chunks != nil {
		t.Errorf("expected nil chunks for an empty directory, got %+v", chunks)
	}
}

func TestJobFileChunksMissingFile(t *testing.T) {
	dir := t.TempDir()
	db := &ir.Database{
		Variants: []ir.Variant{{
			DiagLayer: ir.DiagLayer{SingleEcuJobs: []ir.SingleEcuJob{{
				ProgCodes: []ir.ProgCode{{CodeFile: "missing.bin"}},
			}}},
		}},
	}

	if _, err := jobFileChunks(db, dir); err == nil {
		t.Fatalf("expected an error for a missing job code file")
	}
}

package fbs

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// Encode serializes a Database into a FlatBuffers byte payload suitable
// for embedding as an MDD chunk (spec.md §4.2, §4.3).
func Encode(d *ir.Database) []byte {
	b := flatbuffers.NewBuilder(1024)
	root := encodeDatabase(b, d)
	b.Finish(root)
	return b.FinishedBytes()
}

// Decode parses a FlatBuffers payload produced by Encode back into a
// Database. Returns ErrFlatBuffersParse if the buffer is too short to
// hold a root offset; all other malformed input is tolerated by
// substitution of documented defaults (spec.md §4.2 "Failure modes").
func Decode(buf []byte) (*ir.Database, error) {
	root, err := rootTable(buf)
	if err != nil {
		return nil, err
	}
	return decodeDatabaseRoot(buf, root), nil
}

// Package mdd implements the MDD binary container (spec.md §4.3): a
// self-describing file wrapping a FlatBuffers-encoded primary payload plus
// zero or more extra side-car blobs, each independently compressed and
// checksummed.
//
// The exact byte layout is an Open Question in spec.md §9 ("determined by a
// reference tool; pin from an existing file"); since no reference .mdd
// binary ships with this module's retrieval pack, the layout below is
// pinned here rather than redesigned per run -- see DESIGN.md.
package mdd

import "errors"

// Errors returned by Read (spec.md §4.3 "Failure modes").
var (
	ErrUnrecognizedHeader = errors.New("mdd: unrecognized header magic")
	ErrUnsupportedVersion = errors.New("mdd: unsupported format version")
	ErrChecksumMismatch   = errors.New("mdd: chunk checksum mismatch")
	ErrDecompressionFailed = errors.New("mdd: chunk decompression failed")
	ErrTruncatedChunk     = errors.New("mdd: truncated chunk")
)

// magic identifies an MDD file. Four bytes, chosen so the first two also
// fail fast against an XML/YAML/zip file header.
var magic = [4]byte{'M', 'D', 'D', '1'}

// FormatMajor/FormatMinor are the header version fields this package
// writes. Read tolerates any minor version under the same major (forward
// compatibility, spec.md §9 "Forward compatibility").
const (
	FormatMajor uint16 = 1
	FormatMinor uint16 = 0
)

// Compression selects the per-chunk compression algorithm
// (spec.md §4.3 "Write options").
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLzma
)

// chunkKind distinguishes the single primary FlatBuffers payload from the
// caller-supplied extra blobs.
type chunkKind uint8

const (
	chunkPrimary chunkKind = iota
	chunkExtra
)

// ExtraChunk is one auxiliary payload attached to the container, notably a
// referenced job-code file (spec.md §4.3, SPEC_FULL.md §3
// "--include-job-files").
type ExtraChunk struct {
	ChunkType string
	Name      string
	Data      []byte
}

// WriteOptions configures Write (spec.md §4.3 "Write options").
type WriteOptions struct {
	Version     string
	EcuName     string
	Revision    string
	Compression Compression
	ExtraChunks []ExtraChunk
}

// Container is the result of a successful Read: the primary FlatBuffers
// payload plus the caller's extra chunks, indexed by (chunk_type, name).
type Container struct {
	FormatMajor uint16
	FormatMinor uint16
	Version     string
	EcuName     string
	Revision    string
	Primary     []byte
	Extras      []ExtraChunk
}

// ExtraByName returns the extra chunk matching chunkType and name, if any.
func (c *Container) ExtraByName(chunkType, name string) (*ExtraChunk, bool) {
	for i := range c.Extras {
		if c.Extras[i].ChunkType == chunkType && c.Extras[i].Name == name {
			return &c.Extras[i], true
		}
	}
	return nil, false
}

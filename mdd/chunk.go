package mdd

import (
	"encoding/binary"
	"hash/crc32"
	"io"
)

// chunkTableEntry is the on-disk description of one chunk: its identity,
// compression, sizes, and checksum. Chunk payloads themselves follow the
// whole table, concatenated in table order -- there is no separate offset
// field since the layout is strictly sequential.
type chunkTableEntry struct {
	kind             chunkKind
	chunkType        string
	name             string
	compression      Compression
	uncompressedSize uint32
	compressedSize   uint32
	crc32            uint32
}

func writeChunkTableEntry(w io.Writer, e chunkTableEntry) error {
	if err := binary.Write(w, binary.BigEndian, uint8(e.kind)); err != nil {
		return err
	}
	if err := writeString(w, e.chunkType); err != nil {
		return err
	}
	if err := writeString(w, e.name); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint8(e.compression)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, e.uncompressedSize); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, e.compressedSize); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, e.crc32)
}

func readChunkTableEntry(r io.Reader) (chunkTableEntry, error) {
	var e chunkTableEntry
	var kind, comp uint8
	if err := binary.Read(r, binary.BigEndian, &kind); err != nil {
		return e, ErrTruncatedChunk
	}
	e.kind = chunkKind(kind)
	ct, err := readString(r)
	if err != nil {
		return e, err
	}
	e.chunkType = ct
	name, err := readString(r)
	if err != nil {
		return e, err
	}
	e.name = name
	if err := binary.Read(r, binary.BigEndian, &comp); err != nil {
		return e, ErrTruncatedChunk
	}
	e.compression = Compression(comp)
	if err := binary.Read(r, binary.BigEndian, &e.uncompressedSize); err != nil {
		return e, ErrTruncatedChunk
	}
	if err := binary.Read(r, binary.BigEndian, &e.compressedSize); err != nil {
		return e, ErrTruncatedChunk
	}
	if err := binary.Read(r, binary.BigEndian, &e.crc32); err != nil {
		return e, ErrTruncatedChunk
	}
	return e, nil
}

// checksum is the per-chunk integrity check over compressed bytes
// (spec.md §4.3 "per-chunk checksums").
func checksum(compressed []byte) uint32 {
	return crc32.ChecksumIEEE(compressed)
}

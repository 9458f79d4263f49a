package mdd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Read parses an MDD container, validating the header magic, checking the
// format version, and verifying + decompressing every chunk
// (spec.md §4.3 "Read").
func Read(data []byte) (*Container, error) {
	r := bytes.NewReader(data)

	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil || gotMagic != magic {
		return nil, ErrUnrecognizedHeader
	}

	var major, minor uint16
	if err := binary.Read(r, binary.BigEndian, &major); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
	}
	if err := binary.Read(r, binary.BigEndian, &minor); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
	}
	if major != FormatMajor {
		return nil, fmt.Errorf("%w: got %d.%d, support %d.x", ErrUnsupportedVersion, major, minor, FormatMajor)
	}

	ecuName, err := readString(r)
	if err != nil {
		return nil, err
	}
	version, err := readString(r)
	if err != nil {
		return nil, err
	}
	revision, err := readString(r)
	if err != nil {
		return nil, err
	}

	var chunkCount uint32
	if err := binary.Read(r, binary.BigEndian, &chunkCount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
	}

	entries := make([]chunkTableEntry, chunkCount)
	for i := range entries {
		e, err := readChunkTableEntry(r)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	out := &Container{
		FormatMajor: major,
		FormatMinor: minor,
		Version:     version,
		EcuName:     ecuName,
		Revision:    revision,
	}

	for _, e := range entries {
		compressed := make([]byte, e.compressedSize)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
		}
		if checksum(compressed) != e.crc32 {
			return nil, ErrChecksumMismatch
		}
		payload, err := decompress(e.compression, compressed)
		if err != nil {
			return nil, err
		}
		if uint32(len(payload)) != e.uncompressedSize {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrDecompressionFailed, e.uncompressedSize, len(payload))
		}

		switch e.kind {
		case chunkPrimary:
			out.Primary = payload
		case chunkExtra:
			out.Extras = append(out.Extras, ExtraChunk{
				ChunkType: e.chunkType,
				Name:      e.name,
				Data:      payload,
			})
		}
	}

	return out, nil
}

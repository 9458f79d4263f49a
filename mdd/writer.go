package mdd

import (
	"bytes"
	"encoding/binary"
)

// Write serializes the given FlatBuffers payload and extra chunks into a
// single MDD container (spec.md §4.3 "Write"). Output is deterministic:
// two calls with identical fbsPayload and opts produce byte-identical
// output (spec.md §6.3 property "MDD determinism").
func Write(fbsPayload []byte, opts WriteOptions) ([]byte, error) {
	var body bytes.Buffer

	if _, err := body.Write(magic[:]); err != nil {
		return nil, err
	}
	if err := binary.Write(&body, binary.BigEndian, FormatMajor); err != nil {
		return nil, err
	}
	if err := binary.Write(&body, binary.BigEndian, FormatMinor); err != nil {
		return nil, err
	}
	if err := writeString(&body, opts.EcuName); err != nil {
		return nil, err
	}
	if err := writeString(&body, opts.Version); err != nil {
		return nil, err
	}
	if err := writeString(&body, opts.Revision); err != nil {
		return nil, err
	}

	entries := make([]chunkTableEntry, 0, 1+len(opts.ExtraChunks))
	compressedChunks := make([][]byte, 0, cap(entries))

	primaryCompressed, err := compress(opts.Compression, fbsPayload)
	if err != nil {
		return nil, err
	}
	entries = append(entries, chunkTableEntry{
		kind:             chunkPrimary,
		chunkType:        "primary",
		name:             "",
		compression:      opts.Compression,
		uncompressedSize: uint32(len(fbsPayload)),
		compressedSize:   uint32(len(primaryCompressed)),
		crc32:            checksum(primaryCompressed),
	})
	compressedChunks = append(compressedChunks, primaryCompressed)

	for _, extra := range opts.ExtraChunks {
		c, err := compress(opts.Compression, extra.Data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, chunkTableEntry{
			kind:             chunkExtra,
			chunkType:        extra.ChunkType,
			name:             extra.Name,
			compression:      opts.Compression,
			uncompressedSize: uint32(len(extra.Data)),
			compressedSize:   uint32(len(c)),
			crc32:            checksum(c),
		})
		compressedChunks = append(compressedChunks, c)
	}

	if err := binary.Write(&body, binary.BigEndian, uint32(len(entries))); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := writeChunkTableEntry(&body, e); err != nil {
			return nil, err
		}
	}
	for _, c := range compressedChunks {
		if _, err := body.Write(c); err != nil {
			return nil, err
		}
	}

	return body.Bytes(), nil
}

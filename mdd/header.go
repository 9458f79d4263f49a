package mdd

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// zeroTime is used to pin gzip's mtime field to zero so two writes of the
// same input are byte-identical (spec.md §9 "no timestamps").
var zeroTime = time.Time{}

// writeString writes a uint16-length-prefixed UTF-8 string.
func writeString(w io.Writer, s string) error {
	if len(s) > 0xFFFF {
		return fmt.Errorf("mdd: string field too long (%d bytes)", len(s))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// readString reads a uint16-length-prefixed UTF-8 string.
func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
	}
	return string(buf), nil
}

// writeBlob writes a uint32-length-prefixed byte blob.
func writeBlob(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// readBlob reads a uint32-length-prefixed byte blob.
func readBlob(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedChunk, err)
	}
	return buf, nil
}

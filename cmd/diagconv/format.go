package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bburda42dot/diag-converter-sub000/fbs"
	"github.com/bburda42dot/diag-converter-sub000/internal/logging"
	"github.com/bburda42dot/diag-converter-sub000/ir"
	"github.com/bburda42dot/diag-converter-sub000/mdd"
	"github.com/bburda42dot/diag-converter-sub000/odx"
	"github.com/bburda42dot/diag-converter-sub000/yamlfmt"
)

// format is one of the four file kinds the CLI recognizes (spec.md §6.1).
type format int

const (
	formatUnknown format = iota
	formatODX
	formatPDX
	formatYAML
	formatMDD
)

func (f format) String() string {
	switch f {
	case formatODX:
		return "odx"
	case formatPDX:
		return "pdx"
	case formatYAML:
		return "yaml"
	case formatMDD:
		return "mdd"
	default:
		return "unknown"
	}
}

// detectFormat classifies path by its extension (spec.md §6.2 "Detection of
// input/output format is by file extension").
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".odx":
		return formatODX
	case ".pdx":
		return formatPDX
	case ".yml", ".yaml":
		return formatYAML
	case ".mdd":
		return formatMDD
	default:
		return formatUnknown
	}
}

// parseOutputFormat maps the -f/--format flag value onto a format, for
// directory-mode batch conversion where there is no single output path to
// infer an extension from.
func parseOutputFormat(s string) (format, error) {
	switch strings.ToLower(s) {
	case "odx":
		return formatODX, nil
	case "yaml", "yml":
		return formatYAML, nil
	case "mdd":
		return formatMDD, nil
	default:
		return formatUnknown, fmt.Errorf("unrecognized output format %q (want odx, yaml, or mdd)", s)
	}
}

func (f format) ext() string {
	switch f {
	case formatODX:
		return ".odx"
	case formatYAML:
		return ".yaml"
	case formatMDD:
		return ".mdd"
	default:
		return ""
	}
}

// readDatabase loads path into an ir.Database, dispatching on its detected
// format. lenient relaxes ODX reference-resolution failures to warnings
// (spec.md §4.4 "Lenient mode", CLI flag -L/--lenient).
func readDatabase(path string, lenient bool, log *logging.Helper) (*ir.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch detectFormat(path) {
	case formatODX:
		return odx.Read(data, odx.ReadOptions{Strict: !lenient, Logger: log})
	case formatPDX:
		return odx.ReadPDX(data, odx.ReadOptions{Strict: !lenient, Logger: log})
	case formatYAML:
		return yamlfmt.Read(data, yamlfmt.ReadOptions{Logger: log})
	case formatMDD:
		container, err := mdd.Read(data)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return fbs.Decode(container.Primary)
	default:
		return nil, fmt.Errorf("%s: unrecognized input format (want .odx, .pdx, .yml/.yaml, or .mdd)", path)
	}
}

// writeDatabase serializes d in the given output format and writes it to
// path. compression and extraChunks only apply to MDD output; every other
// format ignores them.
func writeDatabase(d *ir.Database, path string, out format, compression mdd.Compression, extraChunks []mdd.ExtraChunk) error {
	var payload []byte
	var err error

	switch out {
	case formatODX:
		payload, err = odx.Write(d, odx.WriteOptions{Indent: "  "})
	case formatYAML:
		payload, err = yamlfmt.Write(d, yamlfmt.WriteOptions{})
	case formatMDD:
		payload, err = mdd.Write(fbs.Encode(d), mdd.WriteOptions{
			Version:     d.Version,
			EcuName:     d.EcuName,
			Revision:    d.Revision,
			Compression: compression,
			ExtraChunks: extraChunks,
		})
	default:
		return fmt.Errorf("%s: unsupported output format %s", path, out)
	}
	if err != nil {
		return fmt.Errorf("encoding %s as %s: %w", path, out, err)
	}
	return os.WriteFile(path, payload, 0o644)
}

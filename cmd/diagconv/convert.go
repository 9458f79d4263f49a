package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bburda42dot/diag-converter-sub000/internal/logging"
	"github.com/bburda42dot/diag-converter-sub000/ir"
	"github.com/bburda42dot/diag-converter-sub000/mdd"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input...>",
	Short: "Convert one or more diagnostic descriptions to another format",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file (single-input mode)")
	convertCmd.Flags().StringP("output-dir", "O", "", "output directory (batch mode, requires --format)")
	convertCmd.Flags().StringP("format", "f", "", "output format for batch mode: odx|yaml|mdd")
	convertCmd.Flags().String("compression", "none", "MDD chunk compression: lzma|gzip|zstd|none")
	convertCmd.Flags().Bool("dry-run", false, "parse and validate only, write nothing")
	convertCmd.Flags().String("audience", "", "filter services by audience tag before writing")
	convertCmd.Flags().String("include-job-files", "", "directory of SingleEcuJob prog_code files to embed as MDD extra chunks")
	convertCmd.Flags().BoolP("lenient", "L", false, "tolerate ODX reference-resolution failures as warnings")
}

func runConvert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	formatFlag, _ := cmd.Flags().GetString("format")
	compressionFlag, _ := cmd.Flags().GetString("compression")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	audience, _ := cmd.Flags().GetString("audience")
	jobFilesDir, _ := cmd.Flags().GetString("include-job-files")
	lenient, _ := cmd.Flags().GetBool("lenient")

	if (output == "") == (outputDir == "") {
		return fmt.Errorf("exactly one of -o/--output or -O/--output-dir is required")
	}
	if output != "" && len(args) != 1 {
		return fmt.Errorf("-o/--output only supports a single input file; use -O for batch mode")
	}

	compression, err := parseCompression(compressionFlag)
	if err != nil {
		return err
	}

	var outFormat format
	if outputDir != "" {
		if formatFlag == "" {
			return fmt.Errorf("-O/--output-dir requires -f/--format")
		}
		outFormat, err = parseOutputFormat(formatFlag)
		if err != nil {
			return err
		}
	}

	log := logging.Default()
	failures := 0
	for _, input := range args {
		dest := output
		resolvedFormat := outFormat
		if dest == "" {
			dest = filepath.Join(outputDir, strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))+resolvedFormat.ext())
		} else {
			resolvedFormat = detectFormat(dest)
			if resolvedFormat == formatUnknown {
				return fmt.Errorf("cannot infer output format from %s", dest)
			}
		}

		if err := convertOne(input, dest, resolvedFormat, compression, audience, jobFilesDir, dryRun, lenient, log); err != nil {
			log.Errorf("convert %s: %v", input, err)
			failures++
		} else {
			log.Infof("converted %s -> %s", input, dest)
		}
	}

	if failures > 0 {
		if len(args) > 1 {
			return fmt.Errorf("%d of %d files failed", failures, len(args))
		}
		return fmt.Errorf("conversion failed")
	}
	return nil
}

func convertOne(input, dest string, out format, compression mdd.Compression, audience, jobFilesDir string, dryRun, lenient bool, log *logging.Helper) error {
	if detectFormat(input) == out {
		return fmt.Errorf("input and output formats are both %s", out)
	}

	d, err := readDatabase(input, lenient, log)
	if err != nil {
		return err
	}

	if audience != "" {
		d.FilterAudience(audience)
	}

	if dryRun {
		return nil
	}

	extraChunks, err := jobFileChunks(d, jobFilesDir)
	if err != nil {
		return err
	}

	return writeDatabase(d, dest, out, compression, extraChunks)
}

// jobFileChunks reads, for every SingleEcuJob.ProgCodes[].CodeFile named in
// d, the matching file under dir and attaches it as an MDD extra chunk
// (SPEC_FULL.md §3 "--include-job-files", matching the original CLI's
// convert.rs handling of the same field). A no-op when dir is empty.
func jobFileChunks(d *ir.Database, dir string) ([]mdd.ExtraChunk, error) {
	if dir == "" {
		return nil, nil
	}
	var chunks []mdd.ExtraChunk
	seen := map[string]bool{}
	visit := func(jobs []ir.SingleEcuJob) error {
		for i := range jobs {
			for _, pc := range jobs[i].ProgCodes {
				if pc.CodeFile == "" || seen[pc.CodeFile] {
					continue
				}
				seen[pc.CodeFile] = true
				data, err := os.ReadFile(filepath.Join(dir, pc.CodeFile))
				if err != nil {
					return fmt.Errorf("reading job code file %s: %w", pc.CodeFile, err)
				}
				chunks = append(chunks, mdd.ExtraChunk{ChunkType: "job-code", Name: pc.CodeFile, Data: data})
			}
		}
		return nil
	}
	for i := range d.Variants {
		if err := visit(d.Variants[i].DiagLayer.SingleEcuJobs); err != nil {
			return nil, err
		}
	}
	for i := range d.FunctionalGroups {
		if err := visit(d.FunctionalGroups[i].DiagLayer.SingleEcuJobs); err != nil {
			return nil, err
		}
	}
	return chunks, nil
}

func parseCompression(s string) (mdd.Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return mdd.CompressionNone, nil
	case "gzip":
		return mdd.CompressionGzip, nil
	case "zstd":
		return mdd.CompressionZstd, nil
	case "lzma":
		return mdd.CompressionLzma, nil
	default:
		return mdd.CompressionNone, fmt.Errorf("unrecognized --compression %q (want lzma, gzip, zstd, or none)", s)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bburda42dot/diag-converter-sub000/internal/logging"
	"github.com/bburda42dot/diag-converter-sub000/ir"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Print a summary of a diagnostic description",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolP("lenient", "L", false, "tolerate ODX reference-resolution failures as warnings")
}

func runInfo(cmd *cobra.Command, args []string) error {
	lenient, _ := cmd.Flags().GetBool("lenient")

	d, err := readDatabase(args[0], lenient, logging.Default())
	if err != nil {
		return err
	}

	fmt.Printf("file:             %s\n", args[0])
	fmt.Printf("ecu:              %s\n", d.EcuName)
	fmt.Printf("version:          %s\n", d.Version)
	fmt.Printf("revision:         %s\n", d.Revision)
	fmt.Printf("variants:         %d\n", len(d.Variants))
	if base := d.BaseVariant(); base != nil {
		fmt.Printf("base variant:     %s\n", base.DiagLayer.ShortName)
		fmt.Printf("base services:    %d\n", len(base.DiagLayer.DiagServices))
		fmt.Printf("base jobs:        %d\n", len(base.DiagLayer.SingleEcuJobs))
		fmt.Printf("state charts:     %d\n", len(base.DiagLayer.StateCharts))
	}
	fmt.Printf("functional groups: %d\n", len(d.FunctionalGroups))
	fmt.Printf("dtcs:             %d\n", len(d.Dtcs))
	fmt.Printf("type definitions: %d\n", len(d.TypeDefinitions))
	if d.MemoryConfig != nil {
		fmt.Printf("memory regions:   %d\n", len(d.MemoryConfig.Regions))
	}
	printVariantNames(d.Variants)
	return nil
}

func printVariantNames(variants []ir.Variant) {
	if len(variants) <= 1 {
		return
	}
	fmt.Println("variant names:")
	for i := range variants {
		tag := ""
		if variants[i].IsBaseVariant {
			tag = " (base)"
		}
		fmt.Printf("  - %s%s\n", variants[i].DiagLayer.ShortName, tag)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bburda42dot/diag-converter-sub000/internal/logging"
	"github.com/bburda42dot/diag-converter-sub000/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Run structural checks (C8) against a diagnostic description",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolP("quiet", "q", false, "print nothing; communicate only via exit code")
	validateCmd.Flags().BoolP("summary", "s", false, "print a one-line summary instead of the full issue list")
	validateCmd.Flags().BoolP("lenient", "L", false, "tolerate ODX reference-resolution failures as warnings")
}

func runValidate(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	summary, _ := cmd.Flags().GetBool("summary")
	lenient, _ := cmd.Flags().GetBool("lenient")

	d, err := readDatabase(args[0], lenient, logging.Default())
	if err != nil {
		return err
	}

	issues := validate.Validate(d)

	var errorCount int
	for _, issue := range issues {
		if issue.Severity == validate.SeverityError {
			errorCount++
		}
	}

	switch {
	case quiet:
		// no output, exit code only
	case summary:
		fmt.Printf("%s: %d issue(s), %d error(s)\n", args[0], len(issues), errorCount)
	default:
		for _, issue := range issues {
			fmt.Println(issue.String())
		}
		if len(issues) == 0 {
			fmt.Printf("%s: no issues found\n", args[0])
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d validation error(s)", errorCount)
	}
	return nil
}

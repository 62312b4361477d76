package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"checkoutflow/internal/scenario"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <scenario>...",
		Short: "Validate scenario files",
		Long: `Parse and validate one or more scenario YAML files without running them.

Unknown fields and missing required fields are reported per file.

Example:
  checkoutflow validate scenarios/*.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateScenarios(opts, cmd, args)
		},
	}

	return cmd
}

// validationReport is the per-file result for JSON output.
type validationReport struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func validateScenarios(opts *ValidateOptions, cmd *cobra.Command, paths []string) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	reports := make([]validationReport, 0, len(paths))
	invalid := 0
	for _, path := range paths {
		report := validationReport{Path: path, Valid: true}
		if _, err := scenario.Load(path); err != nil {
			report.Valid = false
			report.Error = err.Error()
			invalid++
		}
		reports = append(reports, report)
	}

	if opts.Format == "json" {
		if err := out.PrintJSON(reports); err != nil {
			return WrapExitError(ExitCommandError, "failed to print report", err)
		}
	} else {
		for _, report := range reports {
			if report.Valid {
				out.Printf("OK   %s\n", report.Path)
			} else {
				out.Printf("FAIL %s: %s\n", report.Path, report.Error)
			}
		}
	}

	if invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios invalid", invalid, len(paths)))
	}
	return nil
}

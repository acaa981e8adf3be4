package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsuji/procheck/internal/check"
	"github.com/ktsuji/procheck/internal/logging"
	"github.com/ktsuji/procheck/internal/report"
	"github.com/ktsuji/procheck/pkg/procheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [directory]",
	Short: "Check the required process_ folders and files",
	Long: `Check that the target directory contains the required layout:
process_a with a.out and process_s with s.out, both as regular files.

The directory defaults to the current working directory. The exit code is
0 whether or not the requirements are met; the report carries the outcome.

Examples:
  # Check the current directory
  procheck check

  # Check a specific run directory
  procheck check ./run42

  # Summary line only
  procheck check ./run42 --quiet

  # Machine-readable output
  procheck check ./run42 --json`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runCheck,
}

var (
	checkJSON    bool
	checkYAML    bool
	checkQuiet   bool
	checkNoColor bool
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the result as JSON")
	checkCmd.Flags().BoolVar(&checkYAML, "yaml", false, "Output the result as YAML")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Print only the final summary line")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "Disable colored output")
}

// runCheck executes the core layout check against the target directory.
func runCheck(cmd *cobra.Command, args []string) error {
	if checkJSON && checkYAML {
		return fmt.Errorf("%w: --json and --yaml are mutually exclusive", procheck.ErrConflictingFormats)
	}

	// The default target is resolved here, once; core logic only ever
	// sees an explicit path.
	target := procheck.DefaultTarget
	if len(args) == 1 {
		target = args[0]
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	logger.Verbose("checking layout of %s", target)

	result := check.NewChecker(logger).Run(target)

	switch {
	case checkJSON:
		out, err := report.EncodeJSON(result)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case checkYAML:
		out, err := report.EncodeYAML(result)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		renderer := report.NewRenderer(useColor(checkNoColor), checkQuiet)
		fmt.Print(renderer.RenderCheck(result))
	}

	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "procheck",
	Short: "Verify process_ output folder layout",
	Long: `procheck verifies that a run directory follows the expected output
layout: immediate child folders named process_*, with process_a containing
a.out and process_s containing s.out.

A completed check always exits 0 - missing folders or files are reported,
not treated as process failure.

Exit Codes:
  0  - Check completed (pass or fail)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for procheck")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// useColor decides whether report output gets ANSI styling. Piped output
// stays plain so the report is grep-friendly.
func useColor(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

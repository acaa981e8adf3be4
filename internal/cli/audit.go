package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsuji/procheck/internal/check"
	"github.com/ktsuji/procheck/internal/logging"
	"github.com/ktsuji/procheck/internal/report"
	"github.com/ktsuji/procheck/pkg/procheck"
)

var auditCmd = &cobra.Command{
	Use:   "audit [directory]",
	Short: "Run the extended pattern-based pipeline audit",
	Long: `Audit the target directory against the extended pipeline rules:

  process_a*   at least one *.01d and one *.02d file
  process_s    at least 2 plot_*ms.txt snapshots
  process_c    at least 100 def_*.dat files

Sequence numbers embedded in file names (plot_<N>ms.txt, def_<N>.dat) are
analyzed for range and gaps. Like check, a completed audit exits 0.

Examples:
  # Audit the current directory
  procheck audit

  # Audit a run directory with machine-readable output
  procheck audit ./run42 --json`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runAudit,
}

var (
	auditJSON    bool
	auditYAML    bool
	auditQuiet   bool
	auditNoColor bool
)

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Output the result as JSON")
	auditCmd.Flags().BoolVar(&auditYAML, "yaml", false, "Output the result as YAML")
	auditCmd.Flags().BoolVarP(&auditQuiet, "quiet", "q", false, "Print only the final summary line")
	auditCmd.Flags().BoolVar(&auditNoColor, "no-color", false, "Disable colored output")
}

// runAudit executes the extended audit against the target directory.
func runAudit(cmd *cobra.Command, args []string) error {
	if auditJSON && auditYAML {
		return fmt.Errorf("%w: --json and --yaml are mutually exclusive", procheck.ErrConflictingFormats)
	}

	target := procheck.DefaultTarget
	if len(args) == 1 {
		target = args[0]
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	logger.Verbose("auditing %s", target)

	result := check.NewAuditor(logger).Run(target)

	switch {
	case auditJSON:
		out, err := report.EncodeJSON(result)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case auditYAML:
		out, err := report.EncodeYAML(result)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		renderer := report.NewRenderer(useColor(auditNoColor), auditQuiet)
		fmt.Print(renderer.RenderAudit(result))
	}

	return nil
}

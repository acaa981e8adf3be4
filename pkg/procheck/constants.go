package procheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// A completed check always exits 0, whether or not the layout requirements
// are met: absence is information in the report, not a process failure.
const (
	ExitSuccess      = 0 // Check completed (pass or fail)
	ExitGeneralError = 1 // Unknown or unclassified error
	ExitUsageError   = 2 // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

// FolderPrefix selects the immediate child directories considered by the
// scan. Only entries whose name starts with this prefix are reported.
const FolderPrefix = "process_"

// DefaultTarget is the directory checked when no positional argument is
// given. It is resolved once at the CLI entry point; core logic only ever
// sees an explicit path.
const DefaultTarget = "."

// DefaultRequirements is the fixed requirement table for the core check:
// each listed folder must exist among the scanned process_ folders and
// contain its file as a regular file.
var DefaultRequirements = []Requirement{
	{Folder: "process_a", Files: []string{"a.out"}},
	{Folder: "process_s", Files: []string{"s.out"}},
}

// DefaultAuditRules is the fixed rule table for the extended audit. The
// thresholds mirror the established pipeline convention: analysis folders
// carry at least one .01d and one .02d output, the summary folder at least
// two plot snapshots, and the computation folder a full def_N.dat series.
var DefaultAuditRules = []AuditRule{
	{
		FolderPattern: "process_a*",
		Files: []FilePatternRule{
			{Pattern: "*.01d", MinCount: 1},
			{Pattern: "*.02d", MinCount: 1},
		},
	},
	{
		FolderPattern: "process_s",
		Files: []FilePatternRule{
			{Pattern: "plot_*ms.txt", MinCount: 2, NumberPattern: `^plot_(\d+)ms\.txt$`},
		},
	},
	{
		FolderPattern: "process_c",
		Files: []FilePatternRule{
			{Pattern: "def_*.dat", MinCount: 100, NumberPattern: `^def_(\d+)\.dat$`},
		},
	},
}

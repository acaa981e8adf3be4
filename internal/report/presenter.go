package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/femnad/mare"

	"github.com/ktsuji/procheck/pkg/procheck"
)

// Renderer turns check and audit results into report text. It is a pure
// function of the result value: rendering the same result twice yields the
// same string.
type Renderer struct {
	color bool
	quiet bool
}

// NewRenderer creates a renderer. Color controls ANSI styling; quiet
// collapses the report to the final summary line.
func NewRenderer(color, quiet bool) *Renderer {
	return &Renderer{color: color, quiet: quiet}
}

func (r *Renderer) header(s string) string {
	if !r.color {
		return s
	}
	return headerStyle.Render(s)
}

func (r *Renderer) muted(s string) string {
	if !r.color {
		return s
	}
	return mutedStyle.Render(s)
}

// mark renders the presence marker used throughout the report.
func (r *Renderer) mark(ok bool) string {
	if ok {
		if !r.color {
			return "✓"
		}
		return successStyle.Render("✓")
	}
	if !r.color {
		return "✗"
	}
	return errorStyle.Render("✗")
}

func (r *Renderer) summaryLine(satisfied bool) string {
	if satisfied {
		return fmt.Sprintf("Result: %s all required entries present", r.mark(true))
	}
	return fmt.Sprintf("Result: %s some required entries missing", r.mark(false))
}

// RenderCheck renders a core layout check result.
func (r *Renderer) RenderCheck(result procheck.CheckResult) string {
	if r.quiet {
		return r.summaryLine(result.Satisfied) + "\n"
	}

	var b strings.Builder

	fmt.Fprintln(&b, r.header("===== directory layout check ====="))
	fmt.Fprintf(&b, "Target: %s\n", result.TargetPath)
	if !result.TargetExists {
		fmt.Fprintf(&b, "%s target directory not found\n", r.mark(false))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Required folders:")
	for _, folder := range result.Required {
		fmt.Fprintf(&b, "  %s %s\n", r.mark(folder.Present), folder.Folder)
		for _, file := range folder.Files {
			fmt.Fprintf(&b, "      %s %s\n", r.mark(file.Present), file.Name)
		}
	}
	fmt.Fprintln(&b)

	r.renderMatchedFolders(&b, result.MatchedFolders)

	fmt.Fprintln(&b, r.summaryLine(result.Satisfied))

	return b.String()
}

// RenderAudit renders an extended audit result.
func (r *Renderer) RenderAudit(result procheck.AuditResult) string {
	if r.quiet {
		return r.summaryLine(result.Satisfied) + "\n"
	}

	var b strings.Builder

	fmt.Fprintln(&b, r.header("===== pipeline audit ====="))
	fmt.Fprintf(&b, "Target: %s\n", result.TargetPath)
	if !result.TargetExists {
		fmt.Fprintf(&b, "%s target directory not found\n", r.mark(false))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Rules:")
	for _, rule := range result.Rules {
		fmt.Fprintf(&b, "  %s %s", r.mark(rule.Present), rule.FolderPattern)
		if len(rule.MatchedFolders) > 0 {
			fmt.Fprintf(&b, " %s", r.muted("("+strings.Join(rule.MatchedFolders, ", ")+")"))
		}
		fmt.Fprintln(&b)

		for _, file := range rule.Files {
			fmt.Fprintf(&b, "      %s %s: %d file(s), need %d\n",
				r.mark(file.Satisfied), file.Pattern, file.Count, file.MinCount)
			if file.Sequence != nil {
				fmt.Fprintf(&b, "          %s\n", r.muted(describeSequence(file.Sequence)))
			}
		}
	}
	fmt.Fprintln(&b)

	r.renderMatchedFolders(&b, result.MatchedFolders)

	fmt.Fprintln(&b, r.summaryLine(result.Satisfied))

	return b.String()
}

func (r *Renderer) renderMatchedFolders(b *strings.Builder, folders []string) {
	fmt.Fprintf(b, "Detected %s folders (%d):\n", procheck.FolderPrefix+"*", len(folders))
	if len(folders) == 0 {
		fmt.Fprintln(b, r.muted("  none found"))
	}
	for _, folder := range folders {
		fmt.Fprintf(b, "  - %s\n", folder)
	}
	fmt.Fprintln(b)
}

// maxMissingShown caps the missing-number list in the text report; the
// full list is still available through the JSON and YAML encodings.
const maxMissingShown = 10

func describeSequence(seq *procheck.SequenceStats) string {
	desc := fmt.Sprintf("numbers %d-%d, %d unique", seq.Min, seq.Max, seq.Unique)
	if len(seq.Missing) == 0 {
		return desc
	}

	shown := seq.Missing
	suffix := ""
	if len(shown) > maxMissingShown {
		shown = shown[:maxMissingShown]
		suffix = ", ..."
	}
	rendered := mare.Map(shown, func(n int) string {
		return strconv.Itoa(n)
	})

	return fmt.Sprintf("%s, %d missing (%s%s)", desc, len(seq.Missing), strings.Join(rendered, ", "), suffix)
}

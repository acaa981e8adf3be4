package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ktsuji/procheck/pkg/procheck"
)

func resetCheckFlags() {
	checkJSON = false
	checkYAML = false
	checkQuiet = false
	checkNoColor = false
}

func resetAuditFlags() {
	auditJSON = false
	auditYAML = false
	auditQuiet = false
	auditNoColor = false
}

// captureStdout runs fn with stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := fn()

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	return string(out), runErr
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"check", "audit", "version"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Command %s not registered", name)
		}
	}
}

func TestCheckCmd_TooManyArgs(t *testing.T) {
	if err := checkCmd.Args(checkCmd, []string{"a", "b"}); err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestCheckCmd_NoArgsAllowed(t *testing.T) {
	// The directory argument is optional; the default is the current directory
	if err := checkCmd.Args(checkCmd, []string{}); err != nil {
		t.Fatalf("Expected no error for zero args, got %v", err)
	}
}

func TestCheckCmd_ConflictingFormats(t *testing.T) {
	resetCheckFlags()
	checkJSON = true
	checkYAML = true
	defer resetCheckFlags()

	_, err := captureStdout(t, func() error {
		return runCheck(checkCmd, []string{t.TempDir()})
	})
	if !errors.Is(err, procheck.ErrConflictingFormats) {
		t.Fatalf("Expected ErrConflictingFormats, got %v", err)
	}
	if procheck.ExitCodeForError(err) != procheck.ExitUsageError {
		t.Errorf("Expected usage-error exit code for %v", err)
	}
}

func TestCheckCmd_NonexistentTargetCompletes(t *testing.T) {
	resetCheckFlags()
	defer resetCheckFlags()

	out, err := captureStdout(t, func() error {
		return runCheck(checkCmd, []string{filepath.Join(t.TempDir(), "nope")})
	})
	// A missing target is reported, not raised
	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if !strings.Contains(out, "target directory not found") {
		t.Errorf("Report missing target-not-found line:\n%s", out)
	}
}

func TestCheckCmd_JSONOutput(t *testing.T) {
	resetCheckFlags()
	checkJSON = true
	defer resetCheckFlags()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "process_a"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "process_a", "a.out"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := captureStdout(t, func() error {
		return runCheck(checkCmd, []string{dir})
	})
	if err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}
	for _, want := range []string{`"target_exists": true`, `"process_a"`, `"satisfied": false`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}

func TestCheckCmd_QuietOutput(t *testing.T) {
	resetCheckFlags()
	checkQuiet = true
	defer resetCheckFlags()

	out, err := captureStdout(t, func() error {
		return runCheck(checkCmd, []string{t.TempDir()})
	})
	if err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("Expected single summary line, got %d lines:\n%s", lines, out)
	}
}

func TestAuditCmd_ConflictingFormats(t *testing.T) {
	resetAuditFlags()
	auditJSON = true
	auditYAML = true
	defer resetAuditFlags()

	_, err := captureStdout(t, func() error {
		return runAudit(auditCmd, []string{t.TempDir()})
	})
	if !errors.Is(err, procheck.ErrConflictingFormats) {
		t.Fatalf("Expected ErrConflictingFormats, got %v", err)
	}
}

func TestAuditCmd_EmptyTargetCompletes(t *testing.T) {
	resetAuditFlags()
	defer resetAuditFlags()

	out, err := captureStdout(t, func() error {
		return runAudit(auditCmd, []string{t.TempDir()})
	})
	if err != nil {
		t.Fatalf("runAudit failed: %v", err)
	}
	if !strings.Contains(out, "some required entries missing") {
		t.Errorf("Report missing failure summary:\n%s", out)
	}
}

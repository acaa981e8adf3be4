package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ktsuji/procheck/internal/fsys"
	"github.com/ktsuji/procheck/internal/logging"
)

func newTestValidator() (*Validator, *fsys.MemoryFileSystem) {
	fs := fsys.NewMemoryFileSystem("/run")
	return NewValidatorWithFS(fs, logging.NewNullLogger()), fs
}

func TestRequiredFiles_Present(t *testing.T) {
	v, fs := newTestValidator()
	fs.AddFile("process_a/a.out", "binary")

	got := v.RequiredFiles("/run", "process_a", []string{"a.out"})
	if !got["a.out"] {
		t.Error("Expected a.out to be present")
	}
}

func TestRequiredFiles_Missing(t *testing.T) {
	v, fs := newTestValidator()
	fs.AddDir("process_a")

	got := v.RequiredFiles("/run", "process_a", []string{"a.out"})
	if got["a.out"] {
		t.Error("Expected a.out to be absent")
	}
}

func TestRequiredFiles_DirectoryDoesNotCount(t *testing.T) {
	v, fs := newTestValidator()
	// a.out exists but as a subdirectory, not a regular file
	fs.AddDir("process_a/a.out")

	got := v.RequiredFiles("/run", "process_a", []string{"a.out"})
	if got["a.out"] {
		t.Error("Expected directory named a.out to count as absent")
	}
}

func TestRequiredFiles_MultipleNames(t *testing.T) {
	v, fs := newTestValidator()
	fs.AddFile("process_a/a.out", "x")

	got := v.RequiredFiles("/run", "process_a", []string{"a.out", "b.out"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got))
	}
	if !got["a.out"] || got["b.out"] {
		t.Errorf("Unexpected statuses: %v", got)
	}
}

func TestRequiredFiles_SymlinkToFileCounts(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "process_a"), 0755); err != nil {
		t.Fatal(err)
	}
	real := filepath.Join(dir, "real.out")
	if err := os.WriteFile(real, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(real, filepath.Join(dir, "process_a", "a.out")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	v := NewValidator(logging.NewNullLogger())
	got := v.RequiredFiles(dir, "process_a", []string{"a.out"})
	if !got["a.out"] {
		t.Error("Expected symlink to regular file to count as present")
	}
}

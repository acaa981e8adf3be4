package check

import (
	"path/filepath"

	"github.com/ktsuji/procheck/internal/fsys"
	"github.com/ktsuji/procheck/pkg/procheck"
)

// Validator tests for required files inside a single matched folder.
type Validator struct {
	fsProvider fsys.Provider
	logger     procheck.Logger
}

// NewValidator creates a validator using the OS filesystem.
// Panics if logger is nil.
func NewValidator(logger procheck.Logger) *Validator {
	return NewValidatorWithFS(fsys.NewOSFileSystem(), logger)
}

// NewValidatorWithFS creates a validator with a custom filesystem provider.
// Panics if fsProvider or logger is nil.
func NewValidatorWithFS(fsProvider fsys.Provider, logger procheck.Logger) *Validator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Validator{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// RequiredFiles reports, for each name, whether parent/folder/name exists
// as a regular file. An entry that exists but is a directory (or any other
// non-regular type) reads as false, as does an entry that cannot be
// inspected at all. Symlinks to regular files count (Stat follows links).
func (v *Validator) RequiredFiles(parent, folder string, names []string) map[string]bool {
	statuses := make(map[string]bool, len(names))

	for _, name := range names {
		target := filepath.Join(parent, folder, name)
		info, err := v.fsProvider.Stat(target)
		if err != nil {
			v.logger.Verbose("required file %s not found: %v", target, err)
			statuses[name] = false
			continue
		}
		statuses[name] = info.Mode().IsRegular()
	}

	return statuses
}

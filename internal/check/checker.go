package check

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ktsuji/procheck/internal/fsys"
	"github.com/ktsuji/procheck/internal/scan"
	"github.com/ktsuji/procheck/pkg/procheck"
)

// Checker orchestrates one full layout check: target existence, the
// process_ folder scan, and the fixed folder/file requirement table.
// Every run is an independent snapshot; nothing is cached between calls.
type Checker struct {
	fsProvider   fsys.Provider
	scanner      *scan.Scanner
	validator    *Validator
	requirements []procheck.Requirement
	logger       procheck.Logger
}

// NewChecker creates a checker with the default requirement table using
// the OS filesystem. Panics if logger is nil.
func NewChecker(logger procheck.Logger) *Checker {
	return NewCheckerWithFS(fsys.NewOSFileSystem(), logger)
}

// NewCheckerWithFS creates a checker with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewCheckerWithFS(fsProvider fsys.Provider, logger procheck.Logger) *Checker {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Checker{
		fsProvider:   fsProvider,
		scanner:      scan.NewWithFS(procheck.FolderPrefix, fsProvider, logger),
		validator:    NewValidatorWithFS(fsProvider, logger),
		requirements: procheck.DefaultRequirements,
		logger:       logger,
	}
}

// Run produces the CheckResult for target. When the target is missing or
// not a directory, every requirement is reported absent with no file
// statuses and no further filesystem work is done.
func (c *Checker) Run(target string) procheck.CheckResult {
	result := procheck.CheckResult{
		TargetPath:     target,
		MatchedFolders: []string{},
	}

	info, err := c.fsProvider.Stat(target)
	if err != nil || !info.IsDir() {
		c.logger.Verbose("target %s is not an existing directory", target)
		for _, req := range c.requirements {
			result.Required = append(result.Required, procheck.FolderStatus{
				Folder: req.Folder,
			})
		}
		return result
	}
	result.TargetExists = true

	result.MatchedFolders = c.scanner.MatchedFolders(target)
	matched := mapset.NewSet(result.MatchedFolders...)

	satisfied := true
	for _, req := range c.requirements {
		status := procheck.FolderStatus{
			Folder:  req.Folder,
			Present: matched.Contains(req.Folder),
		}

		// File presence is only evaluated for folders the scan confirmed.
		if status.Present {
			presence := c.validator.RequiredFiles(target, req.Folder, req.Files)
			for _, name := range req.Files {
				status.Files = append(status.Files, procheck.FileStatus{
					Name:    name,
					Present: presence[name],
				})
				if !presence[name] {
					satisfied = false
				}
			}
		} else {
			satisfied = false
		}

		result.Required = append(result.Required, status)
	}

	result.Satisfied = satisfied
	return result
}

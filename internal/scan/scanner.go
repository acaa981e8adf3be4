package scan

import (
	"path/filepath"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ktsuji/procheck/internal/fsys"
	"github.com/ktsuji/procheck/pkg/procheck"
)

// Scanner lists immediate child directories of a target path whose names
// start with a fixed prefix. It is read-only and keeps no state between
// calls; the same directory tree always yields the same output.
type Scanner struct {
	prefix     string
	fsProvider fsys.Provider
	logger     procheck.Logger
}

// New creates a scanner for the given name prefix using the OS filesystem.
// Panics if logger is nil.
func New(prefix string, logger procheck.Logger) *Scanner {
	return NewWithFS(prefix, fsys.NewOSFileSystem(), logger)
}

// NewWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewWithFS(prefix string, fsProvider fsys.Provider, logger procheck.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		prefix:     prefix,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// MatchedFolders returns the sorted, deduplicated names of immediate child
// directories of dir whose names start with the scanner's prefix.
//
// Absence is never an error: a nonexistent or unreadable dir yields an
// empty slice. Individual entries that cannot be inspected are skipped,
// i.e. treated as non-matching. Symbolic links to directories count as
// directories (Stat follows links).
func (s *Scanner) MatchedFolders(dir string) []string {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		s.logger.Verbose("listing %s failed, treating as no matches: %v", dir, err)
		return []string{}
	}

	matched := mapset.NewSet[string]()
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, s.prefix) {
			continue
		}

		// Stat the joined path instead of trusting the listing entry so
		// symlinked directories are classified by their target.
		info, err := s.fsProvider.Stat(filepath.Join(dir, name))
		if err != nil {
			s.logger.Verbose("skipping inaccessible entry %s: %v", name, err)
			continue
		}
		if !info.IsDir() {
			continue
		}

		matched.Add(name)
	}

	names := matched.ToSlice()
	sort.Strings(names)

	s.logger.Verbose("found %d matching folder(s) under %s", len(names), dir)
	return names
}

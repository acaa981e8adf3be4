package fsys

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider abstracts the filesystem metadata operations the checker needs.
// Only flat listing and stat calls are exposed: the layout convention is
// one level deep, so there is deliberately no recursive traversal here.
type Provider interface {
	// Stat returns file information for the given path, following
	// symbolic links (platform os.Stat semantics).
	Stat(path string) (FileInfo, error)

	// ReadDir returns the immediate entries of the directory at path.
	// Entry info reflects the entries themselves, not link targets;
	// callers that need link-following semantics should Stat the
	// joined path.
	ReadDir(path string) ([]FileInfo, error)
}

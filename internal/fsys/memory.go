package fsys

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider for in-memory testing.
// Paths use forward slashes regardless of platform (virtual filesystem
// convention); relative paths are resolved against the configured root.
type MemoryFileSystem struct {
	entries map[string]*memoryFileInfo // absolute path -> info
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryFileInfo),
		root:    root,
	}

	mfs.entries[root] = &memoryFileInfo{
		name:    path.Base(root),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}

	return mfs
}

// AddFile adds a regular file to the in-memory filesystem, creating parent
// directories as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)

	mfs.entries[absPath] = &memoryFileInfo{
		name:    path.Base(absPath),
		size:    int64(len(content)),
		mode:    0644,
		modTime: time.Now(),
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)

	mfs.entries[absPath] = &memoryFileInfo{
		name:    path.Base(absPath),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}

	mfs.ensureDirectoriesExist(absPath)
}

// abs resolves a path against the virtual root and normalizes it.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if !strings.HasPrefix(p, "/") && !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parents.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.entries[dir]; exists {
		return
	}

	mfs.entries[dir] = &memoryFileInfo{
		name:    path.Base(dir),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}

	mfs.ensureDirectoriesExist(dir)
}

// Stat implements Provider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	info, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}

	return info, nil
}

// ReadDir implements Provider.ReadDir, returning immediate children
// sorted by name for deterministic order.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.abs(dirPath)

	dir, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !dir.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for entryPath, info := range mfs.entries {
		if path.Dir(entryPath) == absPath && entryPath != absPath {
			result = append(result, info)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

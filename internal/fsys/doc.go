// Package fsys provides the filesystem abstraction used by the layout
// checker.
//
// Two implementations are available:
//   - OSFileSystem: backed by the real filesystem via os.Stat/os.ReadDir
//   - MemoryFileSystem: in-memory implementation for tests
//
// The interface is intentionally flat: the layout convention is one level
// deep, so there is no Walk or recursive traversal. Stat follows symbolic
// links (os.Stat semantics), which is what the presence predicates in the
// checker rely on.
package fsys

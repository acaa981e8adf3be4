// Package check implements the layout verification core.
//
// Two entry points share the same scan:
//   - Checker: the fixed folder/file requirement table (process_a must
//     contain a.out, process_s must contain s.out)
//   - Auditor: the extended pattern rules with minimum file counts and
//     sequence-number analysis
//
// Both are pure functions of their explicit target path plus the state of
// the filesystem at the moment of the run. The stat, the listing and the
// per-file checks are separate metadata reads, so a tree mutated mid-run
// can yield a mixed snapshot; that gap is accepted rather than locked
// around.
package check

// Package report renders check and audit results for humans (styled or
// plain text, optionally a single quiet summary line) and for machines
// (JSON, YAML). Rendering is deterministic: the output is derived solely
// from the result value.
package report

package procheck

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrConflictingFormats indicates mutually exclusive output format
	// flags were requested together.
	ErrConflictingFormats = errors.New("conflicting output formats")

	// ErrEncodingFailed indicates a report could not be serialized.
	ErrEncodingFailed = errors.New("encoding failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrConflictingFormats):
		return ExitUsageError
	case errors.Is(err, ErrEncodingFailed):
		return ExitGeneralError
	}

	return ExitGeneralError
}

package contree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	file, err := r.Get(paths.Parse("../cover.png"), parent)
//	if errors.Is(err, contree.ErrTraversal) {
//	    // Handle a path escaping its boundary
//	}
var (
	// ErrTraversal indicates a ".." segment would escape the path and its parent boundary.
	ErrTraversal = errors.New("path traversal outside of boundary")

	// ErrAmbiguous indicates a strict single-file lookup matched more than one file.
	ErrAmbiguous = errors.New("ambiguous path resolution")

	// ErrNoSource indicates a query was iterated without any page list or sequence.
	// It is raised as a panic: it is a programming error, not a data error.
	ErrNoSource = errors.New("query has no source: call In() or Append() first")

	// ErrDuplicateFilter indicates a named filter was registered twice.
	ErrDuplicateFilter = errors.New("filter already registered")

	// ErrUnknownFilter indicates a named filter was requested but never registered.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrUnknownComparator indicates an unsupported comparator kind was requested.
	ErrUnknownComparator = errors.New("unknown comparator kind")

	// ErrUnknownSort indicates an unrecognized built-in sort method name.
	ErrUnknownSort = errors.New("unknown sort method")

	// ErrInvalidCriterion indicates a malformed filter criterion (bad comparator expression or pattern).
	ErrInvalidCriterion = errors.New("invalid criterion")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTreeLoad indicates the content tree could not be built from its source.
	ErrTreeLoad = errors.New("failed to load content tree")
)

var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// TraversalError is returned by path normalization when a parent reference
// cannot be resolved inside the path or its supplied parent.
type TraversalError struct {
	Path string // Original path string as given by the caller
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("%s: %q", ErrTraversal.Error(), e.Path)
}

func (e *TraversalError) Unwrap() error { return ErrTraversal }

// AmbiguityError is returned by strict FindOne lookups matching several files.
type AmbiguityError struct {
	Pattern string   // Pattern the caller asked for
	Matches []string // Pathnames of every matched file
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("%s: %q matched %d files: %s",
		ErrAmbiguous.Error(), e.Pattern, len(e.Matches), strings.Join(e.Matches, ", "))
}

func (e *AmbiguityError) Unwrap() error { return ErrAmbiguous }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrTraversal):
		return ExitTraversal
	case errors.Is(err, ErrAmbiguous):
		return ExitAmbiguous
	case errors.Is(err, ErrInvalidCriterion),
		errors.Is(err, ErrUnknownComparator),
		errors.Is(err, ErrUnknownSort),
		errors.Is(err, ErrUnknownFilter):
		return ExitInvalidCriterion
	case errors.Is(err, ErrTreeLoad):
		return ExitTreeLoad
	}

	// cobra reports argument and flag misuse as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

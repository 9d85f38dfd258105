package metadata

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MetadataError represents a structured error with context and helpful hints.
// It includes file path, optional line number, and actionable suggestions.
type MetadataError struct {
	FilePath string // Path to the file with the error
	Line     int    // Line number (0 if unknown)
	Field    string // Field name if applicable
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *MetadataError) Error() string {
	location := e.FilePath
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
	}

	msg := fmt.Sprintf("metadata error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("metadata error in %s [field: %s]: %s", location, e.Field, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// yaml.v3 encodes positions only in the message text
var yamlLineRegex = regexp.MustCompile(`^yaml: (?:unmarshal errors:\n\s*)?line (\d+): (.*)$`)

// wrapYAMLError converts yaml package errors to MetadataError with line numbers.
func wrapYAMLError(err error, filePath string) error {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		first := typeErr.Errors[0]
		line := 0
		if m := yamlLineRegex.FindStringSubmatch("yaml: " + first); m != nil {
			line, _ = strconv.Atoi(m[1])
			first = m[2]
		}
		return &MetadataError{
			FilePath: filePath,
			Line:     line,
			Message:  first,
			Hint:     "Check that each value has the expected type (for example booleans are true/false, dates are YYYY-MM-DD).",
		}
	}

	msg := err.Error()
	if m := yamlLineRegex.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &MetadataError{
			FilePath: filePath,
			Line:     line,
			Message:  m[2],
			Hint:     "Check indentation and that the document is a YAML mapping.",
		}
	}

	return &MetadataError{
		FilePath: filePath,
		Message:  strings.TrimPrefix(msg, "yaml: "),
		Hint:     "Check indentation and that the document is a YAML mapping.",
	}
}

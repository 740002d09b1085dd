package slugify

import "errors"

// Package-specific errors
var (
	// ErrConflictingCase is returned when both Lowercase and Uppercase are enabled
	ErrConflictingCase = errors.New("lowercase and uppercase cannot both be enabled")

	// ErrInvalidSeparator is returned when the separator is not a single printable character
	ErrInvalidSeparator = errors.New("separator must be a single printable character")

	// ErrInvalidPattern is returned when the custom allowed-character pattern is empty or does not compile
	ErrInvalidPattern = errors.New("invalid allowed-character pattern")

	// ErrInvalidMaxLength is returned when a negative maximum length is configured
	ErrInvalidMaxLength = errors.New("max length must not be negative")

	// ErrInvalidSuffixLength is returned when a negative suffix length is configured
	ErrInvalidSuffixLength = errors.New("suffix length must not be negative")
)

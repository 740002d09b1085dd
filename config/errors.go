package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables or a YAML
	// document cannot be parsed into the Config struct
	ErrParsingConfig = errors.New("failed to parse slugify configuration")

	// ErrUnknownTable is returned when a pre-translation table name does
	// not resolve to a built-in table
	ErrUnknownTable = errors.New("unknown pre-translation table")

	// ErrInvalidReplacement is returned when a replacement pair from the
	// environment is not in "old=new" form
	ErrInvalidReplacement = errors.New("replacement pair must be in old=new form")
)

package ufind

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	files, err := fsys.Find("/examples/learn", criteria)
//	if errors.Is(err, ufind.ErrPathNotFound) {
//	    // Handle a path that does not name a directory
//	}
var (
	// ErrPathNotFound indicates a path does not resolve to an existing directory.
	ErrPathNotFound = errors.New("path not found")

	// ErrInvalidTree indicates a tree document or snapshot violates the tree invariants.
	ErrInvalidTree = errors.New("invalid tree")

	// ErrInvalidConfig indicates the provided configuration or flags are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPrefixes are the messages cobra and pflag produce for bad invocations.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"requires at most",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

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
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrInvalidTree):
		return ExitInvalidTree
	}

	msg := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// Package errors provides centralized error definitions and error handling
// utilities for the group-generator codebase. It defines domain-specific
// errors, error constructors with context wrapping, and classification
// helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - PartitionError: a tutorial's headcount cannot be split into groups
//   - RosterError: errors reading, parsing, or writing roster files
//   - ConfigError: invalid tool configuration (sizes, paths, seed handling)
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewPartitionError(5)
//
//	// With context
//	err := errors.NewPartitionError(5).WithStratum(7)
//	err := errors.NewRosterError("missing column", errors.ErrMissingColumn).WithPath("roster.csv")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInfeasiblePartition) { ... }
//
//	var pErr *errors.PartitionError
//	if errors.As(err, &pErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Partition-related sentinel errors
var (
	// ErrInfeasiblePartition indicates that a headcount has no valid
	// decomposition into groups of 3 and 4 (the counts 1, 2 and 5).
	ErrInfeasiblePartition = New("headcount cannot be split into groups of 3 and 4")
	// ErrUnsupportedGroupSizes indicates that the configured preferred/minimum
	// group sizes are not the supported {3,4} pair.
	ErrUnsupportedGroupSizes = New("only group sizes 3 and 4 are supported")
)

// Roster-related sentinel errors
var (
	// ErrMissingColumn indicates that a required column is absent from the roster header.
	ErrMissingColumn = New("required column not found in roster header")
	// ErrNoTutorialNumber indicates that no tutorial number could be extracted
	// from a section label.
	ErrNoTutorialNumber = New("no tutorial number found in section label")
	// ErrUnknownStudent indicates that an override refers to a student ID not
	// present in the roster.
	ErrUnknownStudent = New("override refers to unknown student")
	// ErrEmptyRoster indicates that the roster contains a header but no records.
	ErrEmptyRoster = New("roster contains no records")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// PartitionError represents a headcount that cannot be packed into groups
// of 3 and 4. The assigner tags it with the tutorial it came from before
// propagating, so callers can name the offending tutorial in messaging.
//
// Example:
//
//	err := errors.NewPartitionError(5).WithStratum(7)
//	fmt.Println(err) // "partition error [tutorial=7, n=5]: headcount cannot be split into groups of 3 and 4"
type PartitionError struct {
	baseError
	// N is the headcount that could not be partitioned.
	N int
	// Stratum is the tutorial group number the count belongs to.
	// Only meaningful after WithStratum; tutorial numbers start at 0 in
	// some exports, so zero is not a reliable "untagged" marker.
	Stratum int

	tagged bool
}

// NewPartitionError creates a new PartitionError for the given headcount.
func NewPartitionError(n int) *PartitionError {
	return &PartitionError{
		baseError: baseError{
			message:    "headcount cannot be split",
			cause:      ErrInfeasiblePartition,
			userFacing: true,
		},
		N: n,
	}
}

// WithStratum tags the error with the tutorial group number it came from.
func (e *PartitionError) WithStratum(stratum int) *PartitionError {
	e.Stratum = stratum
	e.tagged = true
	return e
}

// Error returns the formatted error message.
func (e *PartitionError) Error() string {
	var parts []string
	if e.tagged {
		parts = append(parts, fmt.Sprintf("tutorial=%d", e.Stratum))
	}
	parts = append(parts, fmt.Sprintf("n=%d", e.N))

	return fmt.Sprintf("partition error [%s]: %v", strings.Join(parts, ", "), e.cause)
}

// Is checks if this error matches the target.
func (e *PartitionError) Is(target error) bool {
	if _, ok := target.(*PartitionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// RosterError represents errors reading, parsing, or writing roster files.
//
// Example:
//
//	err := errors.NewRosterError("cannot parse section label", errors.ErrNoTutorialNumber).
//		WithPath("roster.csv").WithLine(12)
type RosterError struct {
	baseError
	// Path is the roster file the error occurred in, when known.
	Path string
	// Line is the 1-based record line number, zero when not applicable.
	Line int
}

// NewRosterError creates a new RosterError.
func NewRosterError(message string, cause error) *RosterError {
	return &RosterError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithPath adds the roster file path to the error context.
func (e *RosterError) WithPath(path string) *RosterError {
	e.Path = path
	return e
}

// WithLine adds the record line number to the error context.
func (e *RosterError) WithLine(line int) *RosterError {
	e.Line = line
	return e
}

// Error returns the formatted error message.
func (e *RosterError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("file=%s", e.Path))
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line=%d", e.Line))
	}

	prefix := "roster error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("roster error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *RosterError) Is(target error) bool {
	if _, ok := target.(*RosterError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ConfigError represents an invalid tool configuration. It is never
// data-dependent: fixing it requires changing flags or the config file,
// not the roster.
type ConfigError struct {
	baseError
	// Field is the configuration field path (e.g., "assign.preferred_size").
	Field string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithField adds the configuration field path to the error context.
func (e *ConfigError) WithField(field string) *ConfigError {
	e.Field = field
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	prefix := "config error"
	if e.Field != "" {
		prefix = fmt.Sprintf("config error [%s]", e.Field)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end
// users without wrapping or rephrasing.
func IsUserFacing(err error) bool {
	type userFacer interface {
		IsUserFacing() bool
	}
	var uf userFacer
	if errors.As(err, &uf) {
		return uf.IsUserFacing()
	}
	return false
}

// IsConfigError returns true if the error stems from configuration rather
// than roster data. Callers use this to decide whether re-running with the
// same input can ever succeed.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return true
	}
	return errors.Is(err, ErrUnsupportedGroupSizes)
}

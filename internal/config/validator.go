package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/unimelb-cmce-10002/group-generator/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "assign.preferred_size")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// supportedGroupSizes is the only size pair the packing scheme knows.
var supportedGroupSizes = []int{3, 4}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAssign()...)
	errors = append(errors, c.validateValidation()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateAssign() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(supportedGroupSizes, c.Assign.PreferredSize) {
		errors = append(errors, ValidationError{
			Field:   "assign.preferred_size",
			Value:   c.Assign.PreferredSize,
			Message: "must be 3 or 4",
		})
	}
	if !slices.Contains(supportedGroupSizes, c.Assign.MinimumSize) {
		errors = append(errors, ValidationError{
			Field:   "assign.minimum_size",
			Value:   c.Assign.MinimumSize,
			Message: "must be 3 or 4",
		})
	}

	return errors
}

func (c *Config) validateValidation() []ValidationError {
	var errors []ValidationError

	if c.Validation.MinimumSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "validation.minimum_size",
			Value:   c.Validation.MinimumSize,
			Message: "must be at least 1",
		})
	}
	for _, size := range c.Validation.AllowedSizes {
		if size < 1 {
			errors = append(errors, ValidationError{
				Field:   "validation.allowed_sizes",
				Value:   size,
				Message: "sizes must be at least 1",
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidLevels(), ", ")),
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must not be negative",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must not be negative",
		})
	}

	return errors
}

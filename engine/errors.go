/*
errors.go - Centralized error types for the award engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The transport layer classifies errors with the helpers at the bottom
  instead of inspecting concrete types.

ERROR CATEGORIES:
  1. Lookup errors - classification or rate missing from the rule table
  2. Validation errors - structurally inconsistent input
  3. Config errors - award pack loading failures
  4. Calculation errors - violated internal invariants (defects)

USAGE:
  Callers match with errors.Is against the sentinels:

    if errors.Is(err, engine.ErrRateNotFound) {
        // client-input problem, not a defect
    }

SEE ALSO:
  - table.go: Returns lookup errors
  - calculate.go: Fails fast on the first error, no partial results
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrClassificationNotFound is returned when an employee's classification
	// code is absent from the rule table and no rate override is set.
	ErrClassificationNotFound = errors.New("classification not found")

	// ErrRateNotFound is returned when no rate-table entry is effective on or
	// before the reference date for a classification.
	ErrRateNotFound = errors.New("rate not found")

	// ErrInvalidShift is returned for structurally inconsistent shift input.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidEmployee is returned for structurally inconsistent employee input.
	ErrInvalidEmployee = errors.New("invalid employee")

	// ErrCalculation indicates a violated internal invariant. It is never
	// expected in normal operation.
	ErrCalculation = errors.New("calculation error")

	// ErrConfigNotFound is returned when an award pack file is missing.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigParse is returned when an award pack file cannot be parsed.
	ErrConfigParse = errors.New("configuration parse error")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ClassificationNotFoundError identifies the missing classification code.
type ClassificationNotFoundError struct {
	Code string
}

func (e *ClassificationNotFoundError) Error() string {
	return fmt.Sprintf("classification not found: %s", e.Code)
}

func (e *ClassificationNotFoundError) Unwrap() error { return ErrClassificationNotFound }

// RateNotFoundError identifies the classification and date that had no
// effective rate entry.
type RateNotFoundError struct {
	Classification string
	Date           Date
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("rate not found for classification '%s' on date %s", e.Classification, e.Date)
}

func (e *RateNotFoundError) Unwrap() error { return ErrRateNotFound }

// InvalidShiftError describes what made a shift inconsistent.
type InvalidShiftError struct {
	ShiftID string
	Message string
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("invalid shift '%s': %s", e.ShiftID, e.Message)
}

func (e *InvalidShiftError) Unwrap() error { return ErrInvalidShift }

// InvalidEmployeeError describes what made an employee record inconsistent.
type InvalidEmployeeError struct {
	Field   string
	Message string
}

func (e *InvalidEmployeeError) Error() string {
	return fmt.Sprintf("invalid employee field '%s': %s", e.Field, e.Message)
}

func (e *InvalidEmployeeError) Unwrap() error { return ErrInvalidEmployee }

// CalculationError describes a violated internal invariant.
type CalculationError struct {
	Message string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation error: %s", e.Message)
}

func (e *CalculationError) Unwrap() error { return ErrCalculation }

// ConfigNotFoundError identifies the missing award pack path.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

func (e *ConfigNotFoundError) Unwrap() error { return ErrConfigNotFound }

// ConfigParseError identifies the unparseable award pack file.
type ConfigParseError struct {
	Path    string
	Message string
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse configuration file '%s': %s", e.Path, e.Message)
}

func (e *ConfigParseError) Unwrap() error { return ErrConfigParse }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrClassificationNotFound) ||
		errors.Is(err, ErrRateNotFound) ||
		errors.Is(err, ErrInvalidShift) ||
		errors.Is(err, ErrInvalidEmployee)
}

// IsNotFound returns true if the error indicates a missing rule-table entry.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClassificationNotFound) ||
		errors.Is(err, ErrRateNotFound)
}

// IsConfigError returns true if the error came from award pack loading.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse)
}

/*
errors.go - Centralized error types for the FC60 engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The numerology, synchro and reading packages wrap these errors with
  facet context instead of defining their own taxonomy.

ERROR CATEGORIES:
  1. Codec errors     - Unknown token60 strings
  2. Calendar errors  - Month/day/time out of range, malformed dates
  3. Range errors     - Magnitudes outside the supported integer range
  4. Input errors     - Free-text parsing (recovered by the reading package)

USAGE:
  Callers test categories with errors.Is and pull details with errors.As:

    if errors.Is(err, fc60.ErrInvalidToken) {
        var tokErr *fc60.InvalidTokenError
        errors.As(err, &tokErr)
        ...
    }

SEE ALSO:
  - base60.go: Raises InvalidTokenError / OutOfRangeError
  - moment.go: Raises InvalidDateError / OutOfRangeError
  - reading/reader.go: Recovers UnparseableInputError per facet
*/
package fc60

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidToken is returned when a string is not one of the 60 tokens.
	ErrInvalidToken = errors.New("invalid token60")

	// ErrInvalidDate is returned when a calendar field is out of range or a
	// date string cannot be parsed. Values are never clamped.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange is returned when a magnitude exceeds the supported range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnparseableInput is returned when free text cannot produce a facet.
	ErrUnparseableInput = errors.New("unparseable input")

	// ErrInconsistentFacets is returned by Encoding.Verify when two facets
	// decode to different instants.
	ErrInconsistentFacets = errors.New("inconsistent facets")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidTokenError names the token that failed to decode.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token60 %q", e.Token)
}

func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}

// InvalidDateError describes which calendar field was rejected.
type InvalidDateError struct {
	Input string // raw input when parsing, empty for numeric construction
	Field string // "month", "day", "hour", ...
	Value int
}

func (e *InvalidDateError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid date %q", e.Input)
	}
	if e.Input != "" {
		return fmt.Sprintf("invalid date %q: %s %d out of range", e.Input, e.Field, e.Value)
	}
	return fmt.Sprintf("invalid date: %s %d out of range", e.Field, e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// OutOfRangeError reports a quantity outside [Min, Max].
type OutOfRangeError struct {
	Quantity string
	Value    string
	Min      int64
	Max      int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %s out of range [%d, %d]", e.Quantity, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// UnparseableInputError wraps the failure behind one reading facet.
type UnparseableInputError struct {
	Facet string
	Input string
	Err   error
}

func (e *UnparseableInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: cannot parse %q: %v", e.Facet, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: cannot parse %q", e.Facet, e.Input)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *UnparseableInputError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUnparseableInput, e.Err}
	}
	return []error{ErrUnparseableInput}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrUnparseableInput)
}

package params

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrMissingInput matches every [*MissingInputError].
	ErrMissingInput = errors.New("params: missing input")

	// ErrParse matches every [*ParseError].
	ErrParse = errors.New("params: invalid number")

	// ErrNotFinite is wrapped by a [*ParseError] for NaN or infinite values.
	ErrNotFinite = errors.New("params: value must be finite")
)

// MissingInputError reports a required field that was not provided.
type MissingInputError struct {
	Field string
	// Reason says why the field is required.
	Reason string
}

func (e *MissingInputError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("params: %s must be defined", e.Field)
	}
	return fmt.Sprintf("params: %s must be defined %s", e.Field, e.Reason)
}

// Is reports whether target is [ErrMissingInput].
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// ParseError reports a field whose text is not a number.
type ParseError struct {
	Field string
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("params: %s: cannot parse %q: %v", e.Field, e.Text, e.Err)
}

// Unwrap returns the underlying strconv error or [ErrNotFinite].
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func missing(field, reason string) error {
	return &MissingInputError{Field: field, Reason: reason}
}

// checkFinite rejects a NaN or infinite value of field.
func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParseError{Field: field, Text: strconv.FormatFloat(v, 'g', -1, 64), Err: ErrNotFinite}
	}
	return nil
}

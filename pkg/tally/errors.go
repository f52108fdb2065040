package tally

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors in this package unwrap to one of these.
var (
	// ErrValidation indicates that a candidate InputCollection was rejected.
	ErrValidation = errors.New("validation error")
	// ErrUnsupportedFormat indicates the requested export format is not supported.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrAlgorithmMismatch indicates the counting algorithms produced different counts.
	ErrAlgorithmMismatch = errors.New("counting algorithms disagree")
	// ErrUnknownKind indicates an engine kind name that is not recognized.
	ErrUnknownKind = errors.New("unknown engine kind")
)

// Validation failure reasons.
const (
	ReasonEmptyInput   = "empty input"
	ReasonInvalidValue = "invalid value"
)

// noIndex marks a ValidationError that does not refer to a single element.
const noIndex = -1

// ValidationError is returned when input data is rejected. The engine keeps
// its previous data and cache when it returns this error.
type ValidationError struct {
	// Reason is ReasonEmptyInput or ReasonInvalidValue.
	Reason string
	// Index is the position of the offending element, or -1.
	Index int
	// Value is the offending element as supplied by the caller.
	Value any
}

func (e *ValidationError) Error() string {
	if e.Index == noIndex {
		return e.Reason
	}

	return fmt.Sprintf("%s at index %d: %v", e.Reason, e.Index, e.Value)
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func emptyInputError() *ValidationError {
	return &ValidationError{Reason: ReasonEmptyInput, Index: noIndex}
}

func invalidValueError(index int, value any) *ValidationError {
	return &ValidationError{Reason: ReasonInvalidValue, Index: index, Value: value}
}

// UnsupportedFormatError is returned by Export for an unrecognized format token.
type UnsupportedFormatError struct {
	// Format is the token as supplied by the caller.
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedFormat, e.Format)
}

// Unwrap returns ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

package calcpro

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrDivisionByZero is returned when a division or reciprocal has a zero divisor.
	ErrDivisionByZero = errors.New("cannot divide by zero")

	// ErrInvalidInput is returned when a function is applied outside its domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefined is returned when tan is evaluated at an asymptote.
	ErrUndefined = errors.New("undefined")

	// ErrOverflow is returned when factorial would exceed float64 range.
	ErrOverflow = errors.New("overflow")

	// ErrArithmetic is the catch-all for NaN or infinite results.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrNotFound is returned by the Store when a key has no record.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidKey is returned by the Store for empty keys or keys containing path separators.
	ErrInvalidKey = errors.New("invalid key")

	// ErrCorrupt is returned by the Store when a record fails to decode or its checksum does not match.
	ErrCorrupt = errors.New("record corrupt")
)

// ErrorKind classifies calculator failures.
type ErrorKind int

const (
	KindArithmetic ErrorKind = iota
	KindDivisionByZero
	KindInvalidInput
	KindUndefined
	KindOverflow
)

// String returns the message shown on the display while the error window is open.
func (k ErrorKind) String() string {
	switch k {
	case KindDivisionByZero:
		return "Cannot divide by zero"
	case KindInvalidInput:
		return "Invalid input"
	case KindUndefined:
		return "Undefined"
	case KindOverflow:
		return "Overflow"
	default:
		return "Error"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindInvalidInput:
		return ErrInvalidInput
	case KindUndefined:
		return ErrUndefined
	case KindOverflow:
		return ErrOverflow
	default:
		return ErrArithmetic
	}
}

// Error is returned by evaluation and function calls.
// It unwraps to the sentinel matching its Kind.
type Error struct {
	Kind ErrorKind
	Op   string // operator symbol or function label that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind.sentinel())
}

// Unwrap returns the sentinel for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind ErrorKind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// ValidationError represents one or more problems found while validating a Config.
type ValidationError struct {
	Errors []error
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	if len(ve.Errors) == 1 {
		return fmt.Sprintf("validation failed: %v", ve.Errors[0])
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "validation failed with %d errors:\n", len(ve.Errors))
	for i, err := range ve.Errors {
		fmt.Fprintf(&buf, "  %d. %v\n", i+1, err)
	}
	return buf.String()
}

// Unwrap returns the underlying errors for use with errors.Is and errors.As.
func (ve *ValidationError) Unwrap() []error {
	return ve.Errors
}

// newValidationError creates a ValidationError from a slice of errors.
// Returns nil if the slice is empty.
func newValidationError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

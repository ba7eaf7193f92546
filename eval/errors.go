package eval

import (
	"errors"
	"fmt"
)

// Sentinel evaluation errors.
var (
	// ErrEmpty is returned when the expression reduces to nothing after
	// stripping trailing operators.
	ErrEmpty = errors.New("empty expression")
	// ErrInvalidSyntax is returned for any grammar violation.
	ErrInvalidSyntax = errors.New("invalid syntax")
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when the result is infinite or not a number.
	ErrOverflow = errors.New("result out of range")
)

// SyntaxError records where in the expression validation failed.
type SyntaxError struct {
	Pos int
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax at offset %d: %s", e.Pos, e.Msg)
}

// Unwrap returns ErrInvalidSyntax for use with errors.Is.
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidSyntax
}

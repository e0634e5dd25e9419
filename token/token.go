/*
Package token implements the low-level text grammar shared by the AHI and
AHF formats: exact literal matching, bounded decimal and hexadecimal
integer fields, quoted string and character literals with backslash
escapes, and bracketed lists of 16-bit integers.

All reads consume the underlying stream strictly sequentially, one byte at
a time, and fail on the first malformed byte. Errors are reported as a
*SyntaxError carrying the byte offset of the failure and wrapping one of
the exported error kinds.
*/
package token

import (
	"errors"
	"fmt"
)

// Error kinds reported by the reader. Use errors.Is to classify a failure.
var (
	ErrMissingDigits     = errors.New("missing integer field")
	ErrMisplacedSign     = errors.New("misplaced minus sign")
	ErrValueTooLarge     = errors.New("integer value is too large")
	ErrNegative          = errors.New("value must be nonnegative")
	ErrMissingHexLiteral = errors.New("missing hex literal")
	ErrHexTooLarge       = errors.New("hex literal is too large")
	ErrEmptyCharLiteral  = errors.New("empty char literal")
	ErrIntOutOfRange     = errors.New("list integer value is out of range")
)

// UnexpectedTokenError is returned when the input does not match an exact
// literal required by the grammar.
type UnexpectedTokenError struct {
	Expected string
	Actual   string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %q, found %q", e.Expected, e.Actual)
}

// InvalidDigitError is returned when a decimal or hexadecimal field
// contains a byte that is not a digit.
type InvalidDigitError struct {
	Byte byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit: %q", string(e.Byte))
}

// InvalidByteError is returned when a quoted literal contains a control
// byte, a non-ASCII byte, or an unknown escape outside of a valid escape
// sequence.
type InvalidByteError struct {
	Byte byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid char literal byte: %d", e.Byte)
}

// InvalidScalarError is returned when a \u{...} escape decodes to a value
// that is not a Unicode scalar value.
type InvalidScalarError struct {
	Value uint32
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("invalid unicode value: %d", e.Value)
}

// SyntaxError records the byte offset at which a read failed. It wraps the
// underlying error kind.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

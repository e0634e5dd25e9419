package token

import (
	"io"
	"math"
)

// maxHeaderValue bounds counts and dimensions in format headers.
const maxHeaderValue = 0xFFFF

// Reader reads grammar tokens from an underlying stream, tracking the byte
// offset for error reporting.
type Reader struct {
	r   io.Reader
	buf [1]byte
	off int64
}

// NewReader returns a Reader consuming from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

func (r *Reader) fail(err error) error {
	if _, ok := err.(*SyntaxError); ok {
		return err
	}
	return &SyntaxError{Offset: r.off, Err: err}
}

func (r *Reader) readByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, r.fail(err)
	}
	r.off++
	return r.buf[0], nil
}

// Byte consumes and returns the next byte of the stream.
func (r *Reader) Byte() (byte, error) {
	return r.readByte()
}

// Expect consumes exactly len(literal) bytes and fails unless they match
// the literal.
func (r *Reader) Expect(literal string) error {
	actual := make([]byte, 0, len(literal))
	for i := 0; i < len(literal); i++ {
		b, err := r.readByte()
		if err != nil {
			return err
		}
		actual = append(actual, b)
	}
	if string(actual) != literal {
		return r.fail(&UnexpectedTokenError{Expected: literal, Actual: string(actual)})
	}
	return nil
}

func (r *Reader) readInt(terminator byte, max int) (int, error) {
	var (
		negative  bool
		anyDigits bool
		value     int
	)
	for {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		switch {
		case b == terminator:
			if !anyDigits {
				return 0, r.fail(ErrMissingDigits)
			}
			if negative {
				value = -value
			}
			return value, nil
		case b == '-':
			if negative || anyDigits {
				return 0, r.fail(ErrMisplacedSign)
			}
			negative = true
		case b < '0' || b > '9':
			return 0, r.fail(&InvalidDigitError{Byte: b})
		default:
			value = value*10 + int(b-'0')
			if value > max {
				return 0, r.fail(ErrValueTooLarge)
			}
			anyDigits = true
		}
	}
}

// HeaderInt reads a signed decimal integer terminated by the given byte.
// The magnitude is capped at 0xFFFF; header fields never need more.
func (r *Reader) HeaderInt(terminator byte) (int, error) {
	return r.readInt(terminator, maxHeaderValue)
}

// HeaderUint is HeaderInt restricted to nonnegative values.
func (r *Reader) HeaderUint(terminator byte) (int, error) {
	value, err := r.HeaderInt(terminator)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, r.fail(ErrNegative)
	}
	return value, nil
}

// Int reads a signed decimal integer terminated by the given byte. Unlike
// HeaderInt the value is bounded only by the int32 range.
func (r *Reader) Int(terminator byte) (int, error) {
	return r.readInt(terminator, math.MaxInt32)
}

// HexDigits reads case-insensitive hex digits up to the terminator and
// returns their values. Zero digits is not an error here; callers decide
// what an empty field means.
func (r *Reader) HexDigits(terminator byte) ([]byte, error) {
	var digits []byte
	for {
		b, err := r.readByte()
		if err != nil {
			return nil, err
		}
		if b == terminator {
			return digits, nil
		}
		var digit byte
		switch {
		case b >= '0' && b <= '9':
			digit = b - '0'
		case b >= 'a' && b <= 'f':
			digit = b - 'a' + 0xa
		case b >= 'A' && b <= 'F':
			digit = b - 'A' + 0xa
		default:
			return nil, r.fail(&InvalidDigitError{Byte: b})
		}
		digits = append(digits, digit)
	}
}

// HexUint reads one or more case-insensitive hex digits terminated by the
// given byte, failing if more than maxDigits appear.
func (r *Reader) HexUint(terminator byte, maxDigits int) (uint32, error) {
	digits, err := r.HexDigits(terminator)
	if err != nil {
		return 0, err
	}
	if len(digits) == 0 {
		return 0, r.fail(ErrMissingHexLiteral)
	}
	if len(digits) > maxDigits {
		return 0, r.fail(ErrHexTooLarge)
	}
	var value uint32
	for _, digit := range digits {
		value = value*0x10 + uint32(digit)
	}
	return value, nil
}

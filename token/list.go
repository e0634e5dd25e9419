package token

import (
	"io"
	"strconv"
)

// IntList reads a bracketed, comma-and-space-separated list of signed
// 16-bit integers, e.g. "[]" or "[1, -2, 3]".
func (r *Reader) IntList() ([]int16, error) {
	if err := r.Expect("["); err != nil {
		return nil, err
	}
	var values []int16
	done := false
	for !done {
		var (
			negative  bool
			anyDigits bool
			value     int
		)
	scan:
		for {
			b, err := r.readByte()
			if err != nil {
				return nil, err
			}
			switch {
			case b == ']' || b == ',':
				if !anyDigits && (b == ',' || negative || len(values) > 0) {
					return nil, r.fail(ErrMissingDigits)
				}
				if b == ']' {
					done = true
				}
				break scan
			case b == '-':
				if negative || anyDigits {
					return nil, r.fail(ErrMisplacedSign)
				}
				negative = true
			case b < '0' || b > '9':
				return nil, r.fail(&InvalidDigitError{Byte: b})
			default:
				value = value*10 + int(b-'0')
				anyDigits = true
				if value > 0x8000 {
					return nil, r.fail(ErrIntOutOfRange)
				}
			}
		}
		if !anyDigits {
			// Only reachable for the empty list "[]".
			continue
		}
		if negative {
			value = -value
		}
		if value > 0x7FFF || value < -0x8000 {
			return nil, r.fail(ErrIntOutOfRange)
		}
		values = append(values, int16(value))
		if !done {
			if err := r.Expect(" "); err != nil {
				return nil, err
			}
		}
	}
	return values, nil
}

// WriteIntList writes values as a bracketed integer list.
func WriteIntList(w io.Writer, values []int16) error {
	b := []byte{'['}
	for i, v := range values {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	b = append(b, ']')
	_, err := w.Write(b)
	return err
}

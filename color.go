package ahi

import "fmt"

// Color is a 4-bit palette index. Index 0 is transparent in the default
// palette but is otherwise an ordinary palette slot.
type Color uint8

// NumColors is the number of palette slots addressable by a Color.
const NumColors = 16

const hexUpper = "0123456789ABCDEF"

// InvalidPixelError is returned when a pixel grid contains a byte other
// than '0'-'9' or 'A'-'F'.
type InvalidPixelError struct {
	Byte byte
}

func (e *InvalidPixelError) Error() string {
	return fmt.Sprintf("invalid pixel character: %q", string(e.Byte))
}

func (c Color) toByte() byte {
	return hexUpper[c&0x0f]
}

// colorFromByte accepts uppercase hex only; the pixel grammar is stricter
// than the hex fields elsewhere in the format.
func colorFromByte(b byte) (Color, error) {
	switch {
	case b >= '0' && b <= '9':
		return Color(b - '0'), nil
	case b >= 'A' && b <= 'F':
		return Color(b-'A') + 0xa, nil
	default:
		return 0, &InvalidPixelError{Byte: b}
	}
}

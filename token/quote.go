package token

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// charEscape decodes one character from inside a quoted literal. The
// second return value is false when the closing quote was consumed
// instead of a character.
func (r *Reader) charEscape(quote byte) (rune, bool, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, false, err
	}
	switch {
	case b == quote:
		return 0, false, nil
	case b == '\\':
		esc, err := r.readByte()
		if err != nil {
			return 0, false, err
		}
		switch esc {
		case '\\':
			return '\\', true, nil
		case '\'':
			return '\'', true, nil
		case '"':
			return '"', true, nil
		case 'n':
			return '\n', true, nil
		case 'r':
			return '\r', true, nil
		case 't':
			return '\t', true, nil
		case 'u':
			if err := r.Expect("{"); err != nil {
				return 0, false, err
			}
			value, err := r.HexUint('}', 8)
			if err != nil {
				return 0, false, err
			}
			if value > utf8.MaxRune || !utf8.ValidRune(rune(value)) {
				return 0, false, r.fail(&InvalidScalarError{Value: value})
			}
			return rune(value), true, nil
		default:
			return 0, false, r.fail(&InvalidByteError{Byte: esc})
		}
	case b < ' ' || b > '~':
		return 0, false, r.fail(&InvalidByteError{Byte: b})
	default:
		return rune(b), true, nil
	}
}

// QuotedChar reads a single-quoted character literal, e.g. 'g', '\n' or
// '\u{2603}'.
func (r *Reader) QuotedChar() (rune, error) {
	if err := r.Expect("'"); err != nil {
		return 0, err
	}
	c, ok, err := r.charEscape('\'')
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, r.fail(ErrEmptyCharLiteral)
	}
	if err := r.Expect("'"); err != nil {
		return 0, err
	}
	return c, nil
}

// QuotedString reads a double-quoted string literal.
func (r *Reader) QuotedString() (string, error) {
	if err := r.Expect(`"`); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		c, ok, err := r.charEscape('"')
		if err != nil {
			return "", err
		}
		if !ok {
			return sb.String(), nil
		}
		sb.WriteRune(c)
	}
}

func appendEscaped(b []byte, c rune, quote byte) []byte {
	switch c {
	case rune(quote):
		return append(b, '\\', quote)
	case '\\':
		return append(b, '\\', '\\')
	case '\n':
		return append(b, '\\', 'n')
	case '\r':
		return append(b, '\\', 'r')
	case '\t':
		return append(b, '\\', 't')
	}
	if c >= ' ' && c <= '~' {
		return append(b, byte(c))
	}
	return append(b, fmt.Sprintf("\\u{%x}", c)...)
}

// WriteQuotedChar writes c as a single-quoted character literal.
func WriteQuotedChar(w io.Writer, c rune) error {
	b := append(appendEscaped([]byte{'\''}, c, '\''), '\'')
	_, err := w.Write(b)
	return err
}

// WriteQuotedString writes s as a double-quoted string literal.
func WriteQuotedString(w io.Writer, s string) error {
	b := []byte{'"'}
	for _, c := range s {
		b = appendEscaped(b, c, '"')
	}
	b = append(b, '"')
	_, err := w.Write(b)
	return err
}

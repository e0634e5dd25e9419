package ahi

import (
	"errors"
	"image/color"
	"io"

	"github.com/asciihex/ahi/token"
)

// ErrTooManyPaletteDigits is returned when a palette field has more than
// eight hex digits.
var ErrTooManyPaletteDigits = errors.New("too many hex digits in palette color")

// Palette maps each of the sixteen color indices to an RGBA value. Alpha
// is straight, not premultiplied.
type Palette [NumColors]color.NRGBA

// DefaultPalette is the palette used when a file carries none. Treat each
// color index as a four-bit binary number: the 1's place controls
// brightness and the 2's, 4's and 8's places control red, green and blue.
// Index 0 is transparent rather than a second black.
var DefaultPalette = &Palette{
	{0, 0, 0, 0},
	{0, 0, 0, 255},
	{127, 0, 0, 255},
	{255, 0, 0, 255},
	{0, 127, 0, 255},
	{0, 255, 0, 255},
	{127, 127, 0, 255},
	{255, 255, 0, 255},
	{0, 0, 127, 255},
	{0, 0, 255, 255},
	{127, 0, 127, 255},
	{255, 0, 255, 255},
	{0, 127, 127, 255},
	{0, 255, 255, 255},
	{127, 127, 127, 255},
	{255, 255, 255, 255},
}

// Get returns the RGBA value for the given color index.
func (p *Palette) Get(c Color) color.NRGBA {
	return p[c&0x0f]
}

// Set replaces the RGBA value for the given color index.
func (p *Palette) Set(c Color, rgba color.NRGBA) {
	p[c&0x0f] = rgba
}

const shorthand = 0x11

func isShorthand(v uint8) bool {
	return v%shorthand == 0
}

// decodePaletteField interprets a run of 0-8 hex digit values; the digit
// count selects the encoding, from the empty transparent field up to full
// RGBA.
func decodePaletteField(digits []byte) (color.NRGBA, error) {
	d := func(i int) uint8 { return digits[i] }
	wide := func(i int) uint8 { return d(i)<<4 | d(i+1) }
	switch len(digits) {
	case 0:
		return color.NRGBA{}, nil
	case 1:
		v := d(0) * shorthand
		return color.NRGBA{v, v, v, 255}, nil
	case 2:
		v := wide(0)
		return color.NRGBA{v, v, v, 255}, nil
	case 3:
		return color.NRGBA{d(0) * shorthand, d(1) * shorthand, d(2) * shorthand, 255}, nil
	case 4:
		return color.NRGBA{d(0) * shorthand, d(1) * shorthand, d(2) * shorthand, d(3) * shorthand}, nil
	case 5:
		return color.NRGBA{d(0) * shorthand, d(1) * shorthand, d(2) * shorthand, wide(3)}, nil
	case 6:
		return color.NRGBA{wide(0), wide(2), wide(4), 255}, nil
	case 7:
		return color.NRGBA{wide(0), wide(2), wide(4), d(6) * shorthand}, nil
	case 8:
		return color.NRGBA{wide(0), wide(2), wide(4), wide(6)}, nil
	default:
		return color.NRGBA{}, ErrTooManyPaletteDigits
	}
}

// appendPaletteField appends the shortest hex field that reproduces the
// exact RGBA value.
func appendPaletteField(b []byte, c color.NRGBA) []byte {
	appendWide := func(b []byte, v uint8) []byte {
		return append(b, hexUpper[v>>4], hexUpper[v&0x0f])
	}
	appendShort := func(b []byte, v uint8) []byte {
		return append(b, hexUpper[v/shorthand])
	}
	rgbShort := isShorthand(c.R) && isShorthand(c.G) && isShorthand(c.B)
	switch {
	case c == color.NRGBA{}:
		return b
	case c.A == 255:
		gray := c.R == c.G && c.G == c.B
		switch {
		case gray && isShorthand(c.R):
			return appendShort(b, c.R)
		case gray:
			return appendWide(b, c.R)
		case rgbShort:
			return appendShort(appendShort(appendShort(b, c.R), c.G), c.B)
		default:
			return appendWide(appendWide(appendWide(b, c.R), c.G), c.B)
		}
	case rgbShort:
		b = appendShort(appendShort(appendShort(b, c.R), c.G), c.B)
		if isShorthand(c.A) {
			return appendShort(b, c.A)
		}
		return appendWide(b, c.A)
	default:
		b = appendWide(appendWide(appendWide(b, c.R), c.G), c.B)
		if isShorthand(c.A) {
			return appendShort(b, c.A)
		}
		return appendWide(b, c.A)
	}
}

// readPalette reads one palette line: sixteen semicolon-separated fields,
// the last terminated by a newline.
func readPalette(tr *token.Reader) (*Palette, error) {
	var p Palette
	for i := 0; i < NumColors; i++ {
		terminator := byte(';')
		if i == NumColors-1 {
			terminator = '\n'
		}
		digits, err := tr.HexDigits(terminator)
		if err != nil {
			return nil, err
		}
		rgba, err := decodePaletteField(digits)
		if err != nil {
			return nil, &token.SyntaxError{Offset: tr.Offset(), Err: err}
		}
		p[i] = rgba
	}
	return &p, nil
}

func (p *Palette) write(w io.Writer) error {
	var b []byte
	for i, c := range p {
		if i > 0 {
			b = append(b, ';')
		}
		b = appendPaletteField(b, c)
	}
	b = append(b, '\n')
	_, err := w.Write(b)
	return err
}

package ahi

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/asciihex/ahi/token"
)

// ErrGlyphHeight is returned when a glyph's image height does not match
// the font's glyph height. Glyphs are never silently padded or truncated.
var ErrGlyphHeight = errors.New("glyph height does not match font glyph height")

// Glyph is the image for a single character together with its left and
// right edge offsets. The left edge is the distance (possibly negative)
// to the right of the image's left edge at which the glyph starts; the
// right edge is where the next glyph starts, which need not equal the
// image width.
type Glyph struct {
	image *Image
	left  int
	right int
}

// NewGlyph returns a glyph with the given image and edges. The image is
// copied.
func NewGlyph(image *Image, left, right int) *Glyph {
	return &Glyph{image: image.Clone(), left: left, right: right}
}

// Image returns the glyph's image. Pixel mutations through the returned
// image affect the glyph; its dimensions cannot change.
func (g *Glyph) Image() *Image {
	return g.image
}

// LeftEdge returns the glyph's left edge, in pixels.
func (g *Glyph) LeftEdge() int {
	return g.left
}

// SetLeftEdge replaces the glyph's left edge.
func (g *Glyph) SetLeftEdge(left int) {
	g.left = left
}

// RightEdge returns the glyph's right edge, in pixels.
func (g *Glyph) RightEdge() int {
	return g.right
}

// SetRightEdge replaces the glyph's right edge.
func (g *Glyph) SetRightEdge(right int) {
	g.right = right
}

func (g *Glyph) clone() *Glyph {
	return &Glyph{image: g.image.Clone(), left: g.left, right: g.right}
}

// Font maps characters to glyphs. Every glyph image, including the
// default glyph's, has the same height, fixed when the font is created.
type Font struct {
	glyphs       map[rune]*Glyph
	defaultGlyph *Glyph
	baseline     int
}

// NewFont returns an empty font whose glyphs have the given height. The
// initial default glyph is a zero-width space and the initial baseline
// equals the height.
func NewFont(glyphHeight int) *Font {
	return &Font{
		glyphs:       make(map[rune]*Glyph),
		defaultGlyph: NewGlyph(NewImage(0, glyphHeight), 0, 0),
		baseline:     glyphHeight,
	}
}

// GlyphHeight returns the image height shared by every glyph in the font.
func (f *Font) GlyphHeight() int {
	return f.defaultGlyph.image.height
}

// Baseline returns the baseline, measured in pixels down from the top of
// the glyph. Numerals and capitals sit on the baseline; descenders extend
// below it.
func (f *Font) Baseline() int {
	return f.baseline
}

// SetBaseline replaces the baseline. It is customary, but not required,
// for the baseline to lie within (0, glyph height].
func (f *Font) SetBaseline(baseline int) {
	f.baseline = baseline
}

// Glyph returns the glyph for the given character, falling back to the
// default glyph for unmapped characters.
func (f *Font) Glyph(c rune) *Glyph {
	if g, ok := f.glyphs[c]; ok {
		return g
	}
	return f.defaultGlyph
}

// CharGlyph returns the glyph for the given character, or nil if the
// character is unmapped.
func (f *Font) CharGlyph(c rune) *Glyph {
	return f.glyphs[c]
}

// SetGlyph maps a character to a copy of the given glyph. It fails with
// ErrGlyphHeight unless the glyph's image height equals the font's glyph
// height.
func (f *Font) SetGlyph(c rune, g *Glyph) error {
	if g.image.height != f.GlyphHeight() {
		return fmt.Errorf("%w (%d != %d)", ErrGlyphHeight, g.image.height, f.GlyphHeight())
	}
	f.glyphs[c] = g.clone()
	return nil
}

// RemoveGlyph unmaps a character; the default glyph applies afterwards.
func (f *Font) RemoveGlyph(c rune) {
	delete(f.glyphs, c)
}

// DefaultGlyph returns the glyph used for unmapped characters.
func (f *Font) DefaultGlyph() *Glyph {
	return f.defaultGlyph
}

// SetDefaultGlyph replaces the default glyph with a copy of g, subject to
// the same height check as SetGlyph.
func (f *Font) SetDefaultGlyph(g *Glyph) error {
	if g.image.height != f.GlyphHeight() {
		return fmt.Errorf("%w (%d != %d)", ErrGlyphHeight, g.image.height, f.GlyphHeight())
	}
	f.defaultGlyph = g.clone()
	return nil
}

// Chars returns the mapped characters in ascending order.
func (f *Font) Chars() []rune {
	chars := make([]rune, 0, len(f.glyphs))
	for c := range f.glyphs {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

func readGlyph(tr *token.Reader, height int) (*Glyph, error) {
	if err := tr.Expect("w"); err != nil {
		return nil, err
	}
	width, err := tr.HeaderUint(' ')
	if err != nil {
		return nil, err
	}
	if err := tr.Expect("l"); err != nil {
		return nil, err
	}
	left, err := tr.Int(' ')
	if err != nil {
		return nil, err
	}
	if err := tr.Expect("r"); err != nil {
		return nil, err
	}
	right, err := tr.Int('\n')
	if err != nil {
		return nil, err
	}
	im, err := readGrid(tr, width, height)
	if err != nil {
		return nil, err
	}
	return &Glyph{image: im, left: left, right: right}, nil
}

func writeGlyph(w io.Writer, g *Glyph) error {
	if _, err := fmt.Fprintf(w, "w%d l%d r%d\n", g.image.width, g.left, g.right); err != nil {
		return err
	}
	return writeGrid(w, g.image)
}

// DecodeFont reads an AHF document. Only version 0 exists.
func DecodeFont(r io.Reader) (*Font, error) {
	tr := token.NewReader(r)
	if err := tr.Expect("ahf"); err != nil {
		return nil, err
	}
	version, err := tr.HeaderUint(' ')
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, &UnsupportedVersionError{Format: "AHF", Version: version}
	}
	if err := tr.Expect("h"); err != nil {
		return nil, err
	}
	height, err := tr.HeaderUint(' ')
	if err != nil {
		return nil, err
	}
	if err := tr.Expect("b"); err != nil {
		return nil, err
	}
	baseline, err := tr.Int(' ')
	if err != nil {
		return nil, err
	}
	if err := tr.Expect("n"); err != nil {
		return nil, err
	}
	numGlyphs, err := tr.HeaderUint('\n')
	if err != nil {
		return nil, err
	}

	if err := tr.Expect("\ndef "); err != nil {
		return nil, err
	}
	defaultGlyph, err := readGlyph(tr, height)
	if err != nil {
		return nil, err
	}

	font := &Font{
		glyphs:       make(map[rune]*Glyph, numGlyphs),
		defaultGlyph: defaultGlyph,
		baseline:     baseline,
	}
	for i := 0; i < numGlyphs; i++ {
		if err := tr.Expect("\n"); err != nil {
			return nil, err
		}
		c, err := tr.QuotedChar()
		if err != nil {
			return nil, err
		}
		if err := tr.Expect(" "); err != nil {
			return nil, err
		}
		g, err := readGlyph(tr, height)
		if err != nil {
			return nil, err
		}
		font.glyphs[c] = g
	}
	return font, nil
}

// EncodeFont writes the font as an AHF document, glyphs in ascending
// character order.
func EncodeFont(w io.Writer, f *Font) error {
	if _, err := fmt.Fprintf(w, "ahf0 h%d b%d n%d\n", f.GlyphHeight(), f.baseline, len(f.glyphs)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\ndef "); err != nil {
		return err
	}
	if err := writeGlyph(w, f.defaultGlyph); err != nil {
		return err
	}
	for _, c := range f.Chars() {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := token.WriteQuotedChar(w, c); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := writeGlyph(w, f.glyphs[c]); err != nil {
			return err
		}
	}
	return nil
}

package ahi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFont = "ahf0 h3 b2 n2\n" +
	"\n" +
	"def w3 l0 r4\n" +
	"101\n" +
	"010\n" +
	"101\n" +
	"\n" +
	"'|' w1 l0 r2\n" +
	"1\n" +
	"1\n" +
	"1\n" +
	"\n" +
	"'\\u{2603}' w2 l0 r4\n" +
	"11\n" +
	"11\n" +
	"00\n"

func TestDecodeFont(t *testing.T) {
	f, err := DecodeFont(strings.NewReader(sampleFont))
	require.NoError(t, err)
	assert.Equal(t, 3, f.GlyphHeight())
	assert.Equal(t, 2, f.Baseline())
	assert.Equal(t, []rune{'|', '☃'}, f.Chars())

	def := f.DefaultGlyph()
	assert.Equal(t, 3, def.Image().Width())
	assert.Equal(t, 0, def.LeftEdge())
	assert.Equal(t, 4, def.RightEdge())
	assert.Equal(t, Color(1), pixelAt(t, def.Image(), 0, 0))
	assert.Equal(t, Color(0), pixelAt(t, def.Image(), 1, 0))

	bar := f.CharGlyph('|')
	require.NotNil(t, bar)
	assert.Equal(t, 1, bar.Image().Width())
	assert.Equal(t, 2, bar.RightEdge())

	// Unmapped characters fall back to the default glyph.
	assert.Nil(t, f.CharGlyph('x'))
	assert.Equal(t, def, f.Glyph('x'))
	assert.Equal(t, bar, f.Glyph('|'))
}

func TestEncodeFont(t *testing.T) {
	f := NewFont(3)
	f.SetBaseline(2)

	def := NewImage(3, 3)
	for _, p := range [][2]int{{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}} {
		mustSet(t, def, p[0], p[1], 1)
	}
	require.NoError(t, f.SetDefaultGlyph(NewGlyph(def, 0, 4)))

	bar := NewImage(1, 3)
	for row := 0; row < 3; row++ {
		mustSet(t, bar, 0, row, 1)
	}
	require.NoError(t, f.SetGlyph('|', NewGlyph(bar, 0, 2)))

	snow := NewImage(2, 3)
	snow.FillRect(0, 0, 2, 2, 1)
	require.NoError(t, f.SetGlyph('☃', NewGlyph(snow, 0, 4)))

	var b bytes.Buffer
	require.NoError(t, EncodeFont(&b, f))
	assert.Equal(t, sampleFont, b.String())
}

func TestFontRoundTrip(t *testing.T) {
	f, err := DecodeFont(strings.NewReader(sampleFont))
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, EncodeFont(&b, f))
	assert.Equal(t, sampleFont, b.String())
}

func TestDecodeFontUnsupportedVersion(t *testing.T) {
	_, err := DecodeFont(strings.NewReader("ahf1 h3 b2 n0\n\ndef w0 l0 r0\n\n\n\n"))
	var unsupported *UnsupportedVersionError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "AHF", unsupported.Format)
	assert.Equal(t, 1, unsupported.Version)
}

func TestDecodeFontNegativeEdges(t *testing.T) {
	f, err := DecodeFont(strings.NewReader(
		"ahf0 h1 b-1 n1\n\ndef w0 l0 r0\n\n\n'j' w2 l-1 r1\n01\n"))
	require.NoError(t, err)
	assert.Equal(t, -1, f.Baseline())
	g := f.CharGlyph('j')
	require.NotNil(t, g)
	assert.Equal(t, -1, g.LeftEdge())
	assert.Equal(t, 1, g.RightEdge())
}

func TestSetGlyphHeightMismatch(t *testing.T) {
	f := NewFont(3)
	bad := NewGlyph(NewImage(2, 2), 0, 2)
	assert.ErrorIs(t, f.SetGlyph('x', bad), ErrGlyphHeight)
	assert.ErrorIs(t, f.SetDefaultGlyph(bad), ErrGlyphHeight)
	assert.Nil(t, f.CharGlyph('x'))
}

func TestSetGlyphCopies(t *testing.T) {
	f := NewFont(2)
	im := NewImage(1, 2)
	g := NewGlyph(im, 0, 1)
	require.NoError(t, f.SetGlyph('a', g))

	// Mutating the source glyph leaves the font untouched.
	g.SetRightEdge(9)
	mustSet(t, g.Image(), 0, 0, 5)
	stored := f.CharGlyph('a')
	assert.Equal(t, 1, stored.RightEdge())
	assert.Equal(t, Color(0), pixelAt(t, stored.Image(), 0, 0))
}

func TestRemoveGlyph(t *testing.T) {
	f := NewFont(1)
	require.NoError(t, f.SetGlyph('a', NewGlyph(NewImage(1, 1), 0, 1)))
	f.RemoveGlyph('a')
	assert.Nil(t, f.CharGlyph('a'))
	assert.Empty(t, f.Chars())
}

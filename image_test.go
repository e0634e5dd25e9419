package ahi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, im *Image, col, row int, c Color) {
	t.Helper()
	require.NoError(t, im.Set(col, row, c))
}

func pixelAt(t *testing.T, im *Image, col, row int) Color {
	t.Helper()
	c, err := im.At(col, row)
	require.NoError(t, err)
	return c
}

func TestImageBounds(t *testing.T) {
	im := NewImage(2, 3)
	assert.Equal(t, 2, im.Width())
	assert.Equal(t, 3, im.Height())

	_, err := im.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = im.At(0, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = im.At(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, im.Set(0, -1, 1), ErrOutOfRange)
}

func TestImageRGBAData(t *testing.T) {
	im := NewImage(2, 2)
	mustSet(t, im, 0, 0, 2)
	mustSet(t, im, 0, 1, 5)
	mustSet(t, im, 1, 1, 13)
	assert.Equal(t, []byte{
		127, 0, 0, 255,
		0, 0, 0, 0,
		0, 255, 0, 255,
		0, 255, 255, 255,
	}, im.RGBAData(DefaultPalette))
}

func TestImageClear(t *testing.T) {
	im := NewImage(2, 2)
	mustSet(t, im, 1, 0, 2)
	mustSet(t, im, 1, 1, 5)
	im.Clear()
	assert.Equal(t, Color(0), pixelAt(t, im, 1, 0))
	assert.Equal(t, Color(0), pixelAt(t, im, 1, 1))
}

func TestImageFlips(t *testing.T) {
	im := NewImage(2, 2)
	mustSet(t, im, 0, 1, 3)
	mustSet(t, im, 1, 1, 5)

	horz := im.FlipHorz()
	assert.Equal(t, Color(5), pixelAt(t, horz, 0, 1))
	assert.Equal(t, Color(3), pixelAt(t, horz, 1, 1))

	im = NewImage(2, 2)
	mustSet(t, im, 1, 0, 3)
	mustSet(t, im, 1, 1, 5)

	vert := im.FlipVert()
	assert.Equal(t, Color(5), pixelAt(t, vert, 1, 0))
	assert.Equal(t, Color(3), pixelAt(t, vert, 1, 1))
}

func TestImageRotate(t *testing.T) {
	im := NewImage(4, 2)
	mustSet(t, im, 1, 0, 3)
	mustSet(t, im, 1, 1, 5)

	cw := im.RotateCW()
	assert.Equal(t, 2, cw.Width())
	assert.Equal(t, 4, cw.Height())
	assert.Equal(t, Color(3), pixelAt(t, cw, 1, 1))
	assert.Equal(t, Color(5), pixelAt(t, cw, 0, 1))

	ccw := im.RotateCCW()
	assert.Equal(t, 2, ccw.Width())
	assert.Equal(t, 4, ccw.Height())
	assert.Equal(t, Color(3), pixelAt(t, ccw, 0, 2))
	assert.Equal(t, Color(5), pixelAt(t, ccw, 1, 2))
}

func TestFillContainedRect(t *testing.T) {
	im := NewImage(5, 5)
	im.FillRect(1, 1, 2, 2, 3)
	var b bytes.Buffer
	require.NoError(t, EncodeImages(&b, []*Image{im}))
	assert.Equal(t, "ahi0 w5 h5 n1\n\n00000\n03300\n03300\n00000\n00000\n", b.String())
}

func TestFillOverlappingRect(t *testing.T) {
	im := NewImage(5, 3)
	im.FillRect(2, 1, 7, 7, 3)
	var b bytes.Buffer
	require.NoError(t, EncodeImages(&b, []*Image{im}))
	assert.Equal(t, "ahi0 w5 h3 n1\n\n00000\n00333\n00333\n", b.String())
}

func TestDrawOverlapping(t *testing.T) {
	images, err := DecodeImages(bytes.NewReader([]byte(
		"ahi0 w5 h3 n2\n\nEEEEE\nEEEEE\nEEEEE\n\n01110\n11011\n01110\n")))
	require.NoError(t, err)
	im := images[0].Clone()
	im.Draw(images[1], -1, 1)
	var b bytes.Buffer
	require.NoError(t, EncodeImages(&b, []*Image{im}))
	assert.Equal(t, "ahi0 w5 h3 n1\n\nEEEEE\n111EE\n1E11E\n", b.String())
}

func TestImageCrop(t *testing.T) {
	im := NewImage(3, 3)
	mustSet(t, im, 2, 2, 7)
	mustSet(t, im, 0, 0, 1)

	shrunk := im.Crop(2, 2)
	assert.Equal(t, Color(1), pixelAt(t, shrunk, 0, 0))
	_, err := shrunk.At(2, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	grown := im.Crop(4, 4)
	assert.Equal(t, Color(7), pixelAt(t, grown, 2, 2))
	assert.Equal(t, Color(0), pixelAt(t, grown, 3, 3))
}

func TestImageTagAndMetadata(t *testing.T) {
	im := NewImage(1, 1)
	assert.Empty(t, im.Tag())
	assert.Nil(t, im.Metadata())

	im.SetTag("player")
	im.SetMetadata([]int16{4, -2})
	assert.Equal(t, "player", im.Tag())
	assert.Equal(t, []int16{4, -2}, im.Metadata())

	// The returned slice is a copy.
	im.Metadata()[0] = 99
	assert.Equal(t, []int16{4, -2}, im.Metadata())

	dup := im.Clone()
	mustSet(t, dup, 0, 0, 5)
	assert.Equal(t, Color(0), pixelAt(t, im, 0, 0))
	assert.Equal(t, "player", dup.Tag())
}

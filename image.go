package ahi

import "errors"

// ErrOutOfRange is returned by At and Set for coordinates outside the
// image.
var ErrOutOfRange = errors.New("pixel coordinates out of range")

// Image is a rectangular grid of color indices, stored row-major. An
// image may carry an optional tag and optional integer metadata; both are
// only representable in version 1 collections.
type Image struct {
	width    int
	height   int
	pixels   []Color
	tag      string
	metadata []int16
}

// NewImage returns an image of the given size with every pixel set to
// color 0.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the width of the image, in pixels.
func (im *Image) Width() int {
	return im.width
}

// Height returns the height of the image, in pixels.
func (im *Image) Height() int {
	return im.height
}

// Tag returns the image's tag; the empty string means no tag.
func (im *Image) Tag() string {
	return im.tag
}

// SetTag replaces the image's tag.
func (im *Image) SetTag(tag string) {
	im.tag = tag
}

// Metadata returns a copy of the image's metadata values.
func (im *Image) Metadata() []int16 {
	if len(im.metadata) == 0 {
		return nil
	}
	return append([]int16(nil), im.metadata...)
}

// SetMetadata replaces the image's metadata values.
func (im *Image) SetMetadata(values []int16) {
	im.metadata = append([]int16(nil), values...)
}

// At returns the color index at the given column and row.
func (im *Image) At(col, row int) (Color, error) {
	if col < 0 || col >= im.width || row < 0 || row >= im.height {
		return 0, ErrOutOfRange
	}
	return im.pixels[row*im.width+col], nil
}

// Set replaces the color index at the given column and row.
func (im *Image) Set(col, row int, c Color) error {
	if col < 0 || col >= im.width || row < 0 || row >= im.height {
		return ErrOutOfRange
	}
	im.pixels[row*im.width+col] = c
	return nil
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	dup := &Image{
		width:  im.width,
		height: im.height,
		pixels: append([]Color(nil), im.pixels...),
		tag:    im.tag,
	}
	if len(im.metadata) > 0 {
		dup.metadata = append([]int16(nil), im.metadata...)
	}
	return dup
}

// Clear sets every pixel to color 0.
func (im *Image) Clear() {
	for i := range im.pixels {
		im.pixels[i] = 0
	}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// FillRect sets every pixel in the given rectangle to c. The rectangle is
// clipped to the image bounds.
func (im *Image) FillRect(x, y, w, h int, c Color) {
	startRow := clamp(y, im.height)
	endRow := clamp(y+h, im.height)
	startCol := clamp(x, im.width)
	endCol := clamp(x+w, im.width)
	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			im.pixels[row*im.width+col] = c
		}
	}
}

// Draw copies the non-transparent pixels of src onto the image, placing
// the top-left corner of src at (x, y). Color 0 in src is treated as
// transparent.
func (im *Image) Draw(src *Image, x, y int) {
	srcStartRow := clamp(-y, src.height)
	srcStartCol := clamp(-x, src.width)
	destStartRow := clamp(y, im.height)
	destStartCol := clamp(x, im.width)
	numRows := min(src.height-srcStartRow, im.height-destStartRow)
	numCols := min(src.width-srcStartCol, im.width-destStartCol)
	for row := 0; row < numRows; row++ {
		for col := 0; col < numCols; col++ {
			c := src.pixels[(srcStartRow+row)*src.width+srcStartCol+col]
			if c != 0 {
				im.pixels[(destStartRow+row)*im.width+destStartCol+col] = c
			}
		}
	}
}

// FlipHorz returns a copy of the image mirrored left to right.
func (im *Image) FlipHorz() *Image {
	flipped := NewImage(im.width, im.height)
	for row := 0; row < im.height; row++ {
		offset := row * im.width
		for col := 0; col < im.width; col++ {
			flipped.pixels[offset+col] = im.pixels[offset+im.width-col-1]
		}
	}
	return flipped
}

// FlipVert returns a copy of the image mirrored top to bottom.
func (im *Image) FlipVert() *Image {
	flipped := NewImage(im.width, im.height)
	for row := 0; row < im.height; row++ {
		src := (im.height - row - 1) * im.width
		copy(flipped.pixels[row*im.width:(row+1)*im.width], im.pixels[src:src+im.width])
	}
	return flipped
}

// RotateCW returns a copy of the image rotated 90 degrees clockwise.
func (im *Image) RotateCW() *Image {
	rotated := NewImage(im.height, im.width)
	i := 0
	for row := 0; row < im.width; row++ {
		for col := 0; col < im.height; col++ {
			rotated.pixels[i] = im.pixels[im.width*(im.height-col-1)+row]
			i++
		}
	}
	return rotated
}

// RotateCCW returns a copy of the image rotated 90 degrees
// counterclockwise.
func (im *Image) RotateCCW() *Image {
	rotated := NewImage(im.height, im.width)
	i := 0
	for row := 0; row < im.width; row++ {
		for col := 0; col < im.height; col++ {
			rotated.pixels[i] = im.pixels[im.width*col+im.width-row-1]
			i++
		}
	}
	return rotated
}

// Crop returns a copy of the image resized to the given dimensions.
// Pixels are dropped from the right and bottom when shrinking; extra
// transparent pixels are added when growing.
func (im *Image) Crop(width, height int) *Image {
	cropped := NewImage(width, height)
	cropped.Draw(im, 0, 0)
	return cropped
}

// RGBAData returns the image as RGBA-order bytes, row-major, using the
// given palette.
func (im *Image) RGBAData(p *Palette) []byte {
	data := make([]byte, 0, len(im.pixels)*4)
	for _, c := range im.pixels {
		rgba := p.Get(c)
		data = append(data, rgba.R, rgba.G, rgba.B, rgba.A)
	}
	return data
}

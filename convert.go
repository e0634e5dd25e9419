package ahi

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// ColorPalette returns the palette as a stdlib color.Palette.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, NumColors)
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// Paletted returns the image as a stdlib paletted image using the given
// palette, or the default palette if p is nil.
func (im *Image) Paletted(p *Palette) *image.Paletted {
	if p == nil {
		p = DefaultPalette
	}
	pm := image.NewPaletted(image.Rect(0, 0, im.width, im.height), p.ColorPalette())
	for i, c := range im.pixels {
		pm.Pix[i] = uint8(c)
	}
	return pm
}

// NRGBA returns the image as a stdlib NRGBA image using the given
// palette, or the default palette if p is nil.
func (im *Image) NRGBA(p *Palette) *image.NRGBA {
	if p == nil {
		p = DefaultPalette
	}
	return &image.NRGBA{
		Pix:    im.RGBAData(p),
		Stride: im.width * 4,
		Rect:   image.Rect(0, 0, im.width, im.height),
	}
}

func nrgbaModel(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromImage converts a stdlib image into an Image and the Palette that
// reproduces it. Images with more than sixteen colors are reduced with a
// median-cut quantizer first; fully transparent pixels always land in
// palette slot 0.
func FromImage(m image.Image) (*Image, *Palette) {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > NumColors {
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, NumColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Slot 0 is transparent by convention; move a fully transparent
	// entry there if the quantizer put one elsewhere. With sixteen
	// opaque entries there is no room for the convention and slots are
	// assigned in palette order.
	var p Palette
	remap := make([]Color, len(pm.Palette))
	transparent := -1
	for i, c := range pm.Palette {
		if nrgbaModel(c).A == 0 {
			transparent = i
			break
		}
	}
	reserve := transparent >= 0 && len(pm.Palette) <= NumColors
	next := 0
	if reserve {
		next = 1
	}
	for i, c := range pm.Palette {
		if reserve && i == transparent {
			remap[i] = 0
			continue
		}
		if next < NumColors {
			p[next] = nrgbaModel(c)
			remap[i] = Color(next)
			next++
		}
	}

	im := NewImage(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			im.pixels[i] = remap[pm.ColorIndexAt(x, y)]
			i++
		}
	}
	return im, &p
}

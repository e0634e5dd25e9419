package ahi

import (
	"errors"
	"fmt"
	"io"

	"github.com/asciihex/ahi/token"
)

// Version 1 header flag bits. Each bit enables one optional per-image
// feature.
const (
	flagIndividualDims = 1 << 0
	flagTags           = 1 << 1
	flagMetadata       = 1 << 2
)

// ErrDimensionMismatch is returned when writing a version 0 document from
// images that do not all share the same dimensions.
var ErrDimensionMismatch = errors.New("images must all have the same dimensions")

// UnsupportedVersionError is returned when a file declares a format
// version this package does not implement.
type UnsupportedVersionError struct {
	Format  string
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported %s version: %d", e.Format, e.Version)
}

// Collection is an ordered set of palettes and images. Palettes are
// auxiliary lookup tables; nothing ties an image to a palette by index.
type Collection struct {
	Palettes []*Palette
	Images   []*Image
}

// readGrid reads height rows of width pixel characters, each row
// terminated by a newline.
func readGrid(tr *token.Reader, width, height int) (*Image, error) {
	im := NewImage(width, height)
	i := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			b, err := tr.Byte()
			if err != nil {
				return nil, err
			}
			c, err := colorFromByte(b)
			if err != nil {
				return nil, &token.SyntaxError{Offset: tr.Offset(), Err: err}
			}
			im.pixels[i] = c
			i++
		}
		if err := tr.Expect("\n"); err != nil {
			return nil, err
		}
	}
	return im, nil
}

func writeGrid(w io.Writer, im *Image) error {
	b := make([]byte, 0, (im.width+1)*im.height)
	i := 0
	for row := 0; row < im.height; row++ {
		for col := 0; col < im.width; col++ {
			b = append(b, im.pixels[i].toByte())
			i++
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}

// DecodeCollection reads an AHI document. Both version 0 and version 1
// files are accepted.
func DecodeCollection(r io.Reader) (*Collection, error) {
	tr := token.NewReader(r)
	if err := tr.Expect("ahi"); err != nil {
		return nil, err
	}
	version, err := tr.HeaderUint(' ')
	if err != nil {
		return nil, err
	}
	if version != 0 && version != 1 {
		return nil, &UnsupportedVersionError{Format: "AHI", Version: version}
	}

	var (
		flags       uint32
		numPalettes int
		numImages   int
		width       int
		height      int
	)
	if version == 0 {
		if err := tr.Expect("w"); err != nil {
			return nil, err
		}
		if width, err = tr.HeaderUint(' '); err != nil {
			return nil, err
		}
		if err := tr.Expect("h"); err != nil {
			return nil, err
		}
		if height, err = tr.HeaderUint(' '); err != nil {
			return nil, err
		}
		if err := tr.Expect("n"); err != nil {
			return nil, err
		}
		if numImages, err = tr.HeaderUint('\n'); err != nil {
			return nil, err
		}
	} else {
		if err := tr.Expect("f"); err != nil {
			return nil, err
		}
		if flags, err = tr.HexUint(' ', 8); err != nil {
			return nil, err
		}
		if err := tr.Expect("p"); err != nil {
			return nil, err
		}
		if numPalettes, err = tr.HeaderUint(' '); err != nil {
			return nil, err
		}
		if err := tr.Expect("i"); err != nil {
			return nil, err
		}
		if flags&flagIndividualDims == 0 {
			if numImages, err = tr.HeaderUint(' '); err != nil {
				return nil, err
			}
			if err := tr.Expect("w"); err != nil {
				return nil, err
			}
			if width, err = tr.HeaderUint(' '); err != nil {
				return nil, err
			}
			if err := tr.Expect("h"); err != nil {
				return nil, err
			}
			if height, err = tr.HeaderUint('\n'); err != nil {
				return nil, err
			}
		} else {
			if numImages, err = tr.HeaderUint('\n'); err != nil {
				return nil, err
			}
		}
	}

	collection := &Collection{}
	if numPalettes > 0 {
		if err := tr.Expect("\n"); err != nil {
			return nil, err
		}
		for i := 0; i < numPalettes; i++ {
			p, err := readPalette(tr)
			if err != nil {
				return nil, err
			}
			collection.Palettes = append(collection.Palettes, p)
		}
	}

	for i := 0; i < numImages; i++ {
		if err := tr.Expect("\n"); err != nil {
			return nil, err
		}
		var tag string
		var metadata []int16
		if flags&flagTags != 0 {
			if tag, err = tr.QuotedString(); err != nil {
				return nil, err
			}
			if err := tr.Expect("\n"); err != nil {
				return nil, err
			}
		}
		if flags&flagMetadata != 0 {
			if metadata, err = tr.IntList(); err != nil {
				return nil, err
			}
			if err := tr.Expect("\n"); err != nil {
				return nil, err
			}
		}
		w, h := width, height
		if flags&flagIndividualDims != 0 {
			if err := tr.Expect("w"); err != nil {
				return nil, err
			}
			if w, err = tr.HeaderUint(' '); err != nil {
				return nil, err
			}
			if err := tr.Expect("h"); err != nil {
				return nil, err
			}
			if h, err = tr.HeaderUint('\n'); err != nil {
				return nil, err
			}
		}
		im, err := readGrid(tr, w, h)
		if err != nil {
			return nil, err
		}
		im.tag = tag
		im.metadata = metadata
		collection.Images = append(collection.Images, im)
	}
	return collection, nil
}

// globalSize returns the dimensions shared by every image, or ok == false
// when the images disagree. An empty image list counts as a shared 0x0.
func globalSize(images []*Image) (width, height int, ok bool) {
	if len(images) == 0 {
		return 0, 0, true
	}
	width, height = images[0].width, images[0].height
	for _, im := range images[1:] {
		if im.width != width || im.height != height {
			return 0, 0, false
		}
	}
	return width, height, true
}

// EncodeCollection writes the collection in the lowest format version able
// to represent it, setting only the version 1 flags for features actually
// present.
func EncodeCollection(w io.Writer, c *Collection) error {
	width, height, uniform := globalSize(c.Images)
	var flags uint32
	if !uniform {
		flags |= flagIndividualDims
	}
	for _, im := range c.Images {
		if im.tag != "" {
			flags |= flagTags
		}
		if len(im.metadata) > 0 {
			flags |= flagMetadata
		}
	}

	if len(c.Palettes) == 0 && flags == 0 {
		if _, err := fmt.Fprintf(w, "ahi0 w%d h%d n%d\n", width, height, len(c.Images)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "ahi1 f%X p%d i%d", flags, len(c.Palettes), len(c.Images)); err != nil {
			return err
		}
		if uniform {
			if _, err := fmt.Fprintf(w, " w%d h%d", width, height); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if len(c.Palettes) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		for _, p := range c.Palettes {
			if err := p.write(w); err != nil {
				return err
			}
		}
	}

	for _, im := range c.Images {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if flags&flagTags != 0 {
			if err := token.WriteQuotedString(w, im.tag); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if flags&flagMetadata != 0 {
			if err := token.WriteIntList(w, im.metadata); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if flags&flagIndividualDims != 0 {
			if _, err := fmt.Fprintf(w, "w%d h%d\n", im.width, im.height); err != nil {
				return err
			}
		}
		if err := writeGrid(w, im); err != nil {
			return err
		}
	}
	return nil
}

// DecodeImages reads an AHI document and returns its images, discarding
// any palettes.
func DecodeImages(r io.Reader) ([]*Image, error) {
	c, err := DecodeCollection(r)
	if err != nil {
		return nil, err
	}
	return c.Images, nil
}

// EncodeImages writes images in the version 0 form. Unlike
// EncodeCollection it fails with ErrDimensionMismatch rather than
// upgrading to version 1 when the images are not uniformly sized.
func EncodeImages(w io.Writer, images []*Image) error {
	var width, height int
	if len(images) > 0 {
		width, height = images[0].width, images[0].height
	}
	if _, err := fmt.Fprintf(w, "ahi0 w%d h%d n%d\n", width, height, len(images)); err != nil {
		return err
	}
	for _, im := range images {
		if im.width != width || im.height != height {
			return fmt.Errorf("%w (found %dx%d instead of %dx%d)", ErrDimensionMismatch,
				im.width, im.height, width, height)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := writeGrid(w, im); err != nil {
			return err
		}
	}
	return nil
}

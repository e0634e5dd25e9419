/*
Package ahi encodes and decodes ASCII Hex Image (.ahi) and ASCII Hex Font
(.ahf) files.

ASCII Hex Image is a text format for collections of small 16-color images,
intended for storing sprites in a way that keeps version-control diffs
readable. A version 0 file looks like:

	ahi0 w2 h2 n2

	20
	5D

	E0
	0E

The header line has the form "ahi<version> w<width> h<height> n<count>";
images follow, separated by blank lines, one hex digit per pixel and one
text line per pixel row. Version 1 headers instead have the form
"ahi1 f<flags> p<palettes> i<images>" followed, when every image shares
one size, by "w<width> h<height>". The flags bitmask enables optional
per-image features: bit 0 stores each image's dimensions with the image,
bit 1 a quoted string tag, bit 2 a bracketed list of 16-bit integers.
Palettes are written one per line as sixteen semicolon-separated hex
fields; each field is the shortest spelling of its RGBA value, from the
empty field (transparent) through "F00" (shorthand RGB) to eight full
digits. Writers always emit the lowest version and flag set that can
represent the document.

ASCII Hex Font stores a 16-color bitmap font: a header line of the form
"ahf0 h<height> b<baseline> n<count>", then a mandatory default glyph
introduced by "def", then one glyph per mapped character introduced by a
quoted character literal. Each glyph carries a "w<width> l<left>
r<right>" subheader giving its image width and edge offsets.

The package also maintains a small sqlite catalog of the sprite and font
files in a directory tree; see Catalog and Scanner.
*/
package ahi

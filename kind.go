package ahi

import "path/filepath"

// Kind identifies which of the two file formats a catalog entry holds.
type Kind int

const (
	// KindCollection is an ASCII Hex Image file (.ahi).
	KindCollection Kind = iota + 1
	// KindFont is an ASCII Hex Font file (.ahf).
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindCollection:
		return "collection"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// KindForPath maps a filename extension to a Kind, or zero for files this
// package does not handle.
func KindForPath(path string) Kind {
	switch filepath.Ext(path) {
	case ".ahi":
		return KindCollection
	case ".ahf":
		return KindFont
	default:
		return 0
	}
}

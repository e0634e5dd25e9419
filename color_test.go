package ahi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorByteRoundTrip(t *testing.T) {
	for c := Color(0); c < NumColors; c++ {
		got, err := colorFromByte(c.toByte())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestColorFromByteRejectsEverythingElse(t *testing.T) {
	valid := map[byte]bool{}
	for c := Color(0); c < NumColors; c++ {
		valid[c.toByte()] = true
	}
	for b := 0; b < 256; b++ {
		if valid[byte(b)] {
			continue
		}
		_, err := colorFromByte(byte(b))
		var invalid *InvalidPixelError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, byte(b), invalid.Byte)
	}
}

func TestColorLowercaseRejected(t *testing.T) {
	// Pixel digits are uppercase-only, unlike hex fields elsewhere.
	_, err := colorFromByte('a')
	var invalid *InvalidPixelError
	assert.ErrorAs(t, err, &invalid)
}

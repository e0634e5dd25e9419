package ahi

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o644))
	return file
}

func TestEntryForFile(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "dots.ahi", "ahi0 w2 h2 n2\n\n20\n5D\n\nE0\n0E\n")

	e, err := entryForFile(file)
	require.NoError(t, err)
	assert.Equal(t, KindCollection, e.Kind)
	assert.Len(t, e.CRC, 8)
	assert.Equal(t, 2, e.Images)
	assert.Zero(t, e.Palettes)
	assert.Equal(t, 2, e.Width)
	assert.Equal(t, 2, e.Height)
}

func TestEntryForFontFile(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "tiny.ahf",
		"ahf0 h3 b2 n1\n\ndef w0 l0 r0\n\n\n\n\n'|' w1 l0 r2\n1\n1\n1\n")

	e, err := entryForFile(file)
	require.NoError(t, err)
	assert.Equal(t, KindFont, e.Kind)
	assert.Equal(t, 1, e.Images)
	assert.Equal(t, 3, e.Height)
	assert.Zero(t, e.Width)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "sprites/dot.ahi", "ahi0 w1 h1 n1\n\n5\n")
	writeTestFile(t, dir, "fonts/tiny.ahf",
		"ahf0 h1 b1 n0\n\ndef w1 l0 r1\n1\n")
	writeTestFile(t, dir, "broken.ahi", "ahi9 nope\n")
	writeTestFile(t, dir, "notes.txt", "not a sprite\n")
	writeTestFile(t, dir, ".hidden.ahi", "ahi0 w1 h1 n1\n\n5\n")

	c := tempCatalog(t)
	s := NewScanner(c, log.New(io.Discard, "", 0))
	require.NoError(t, s.Scan(dir))

	// The broken, hidden and non-sprite files are skipped.
	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	crc, err := crcFile(filepath.Join(dir, "sprites", "dot.ahi"))
	require.NoError(t, err)
	e, err := c.FindByCRC(crc)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, KindCollection, e.Kind)
	assert.Equal(t, 1, e.Images)
	assert.Equal(t, 1, e.Width)
}

func TestScanMissingDir(t *testing.T) {
	c := tempCatalog(t)
	s := NewScanner(c, log.New(io.Discard, "", 0))
	assert.Error(t, s.Scan(filepath.Join(t.TempDir(), "does-not-exist")))
}

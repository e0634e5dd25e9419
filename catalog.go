package ahi

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is a sqlite database summarizing the sprite and font files
// found in a workspace.
type Catalog struct {
	db *sql.DB
}

// Entry is one catalog row. For fonts, Images holds the number of mapped
// glyphs and Height the glyph height; Width and Palettes are zero. For
// collections whose images are not uniformly sized, Width and Height are
// zero.
type Entry struct {
	Path     string
	Kind     Kind
	CRC      string
	Images   int
	Palettes int
	Width    int
	Height   int
}

// OpenCatalog opens, creating if necessary, the catalog database at the
// given path.
func OpenCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sprite (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, kind INTEGER NOT NULL, crc TEXT NOT NULL, images INTEGER NOT NULL, palettes INTEGER NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put inserts or replaces the entry for its path.
func (c *Catalog) Put(e Entry) error {
	_, err := c.db.Exec("INSERT OR REPLACE INTO sprite (path, kind, crc, images, palettes, width, height) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.Path, int(e.Kind), e.CRC, e.Images, e.Palettes, e.Width, e.Height)
	return err
}

// FindByCRC returns the first entry with the given file CRC, or nil if
// there is none.
func (c *Catalog) FindByCRC(crc string) (*Entry, error) {
	var e Entry
	var kind int
	switch err := c.db.QueryRow("SELECT path, kind, crc, images, palettes, width, height FROM sprite WHERE crc = ?", crc).
		Scan(&e.Path, &kind, &e.CRC, &e.Images, &e.Palettes, &e.Width, &e.Height); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		e.Kind = Kind(kind)
		return &e, nil
	default:
		return nil, err
	}
}

// Len returns the number of cataloged files.
func (c *Catalog) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM sprite").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

package ahi

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Scanner walks a directory tree and catalogs every sprite and font file
// it can decode.
type Scanner struct {
	catalog *Catalog
	logger  *log.Logger
}

// NewScanner returns a scanner writing to the given catalog.
func NewScanner(catalog *Catalog, logger *log.Logger) *Scanner {
	return &Scanner{
		catalog: catalog,
		logger:  logger,
	}
}

// entryForFile decodes one file and summarizes it as a catalog entry.
func entryForFile(file string) (Entry, error) {
	e := Entry{
		Path: file,
		Kind: KindForPath(file),
	}

	crc, err := crcFile(file)
	if err != nil {
		return e, err
	}
	e.CRC = crc

	f, err := os.Open(file)
	if err != nil {
		return e, err
	}
	defer f.Close()

	switch e.Kind {
	case KindCollection:
		c, err := DecodeCollection(f)
		if err != nil {
			return e, err
		}
		e.Images = len(c.Images)
		e.Palettes = len(c.Palettes)
		if w, h, ok := globalSize(c.Images); ok {
			e.Width, e.Height = w, h
		}
	case KindFont:
		font, err := DecodeFont(f)
		if err != nil {
			return e, err
		}
		e.Images = len(font.glyphs)
		e.Height = font.GlyphHeight()
	default:
		return e, errors.New("not a sprite or font file")
	}
	return e, nil
}

func (s *Scanner) findFiles(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || KindForPath(file) == 0 {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (s *Scanner) fileWorker(ctx context.Context, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			e, err := entryForFile(file)
			if err != nil {
				s.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}
			if err := s.catalog.Put(e); err != nil {
				errc <- err
				return
			}
			s.logger.Printf("Cataloged %s \"%s\"\n", e.Kind, file)
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan catalogs every sprite and font file under path. Files that fail to
// decode are logged and skipped; filesystem and database errors abort the
// scan.
func (s *Scanner) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc := s.findFiles(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errcList = append(errcList, s.fileWorker(ctx, files))
	}

	return waitForPipeline(errcList...)
}

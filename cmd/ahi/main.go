package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/asciihex/ahi"
	"github.com/urfave/cli/v2"
)

const defaultDB = "ahi.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func verboseLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func exportFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	collection, err := ahi.DecodeCollection(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	palette := ahi.DefaultPalette
	if len(collection.Palettes) > 0 {
		palette = collection.Palettes[0]
	}

	base := strings.TrimSuffix(file, filepath.Ext(file))
	for i, im := range collection.Images {
		name := base + ".png"
		if len(collection.Images) > 1 {
			name = fmt.Sprintf("%s.%d.png", base, i)
		}
		out, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := png.Encode(out, im.Paletted(palette)); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
	}
	return nil
}

func importFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	im, palette := ahi.FromImage(m)
	collection := &ahi.Collection{
		Palettes: []*ahi.Palette{palette},
		Images:   []*ahi.Image{im},
	}

	out, err := os.Create(strings.TrimSuffix(file, filepath.Ext(file)) + ".ahi")
	if err != nil {
		return err
	}
	defer out.Close()

	return ahi.EncodeCollection(out, collection)
}

func infoFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ahi.KindForPath(file) {
	case ahi.KindCollection:
		c, err := ahi.DecodeCollection(f)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		fmt.Printf("%s: collection, %d image(s), %d palette(s)\n", file, len(c.Images), len(c.Palettes))
	case ahi.KindFont:
		font, err := ahi.DecodeFont(f)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		fmt.Printf("%s: font, %d glyph(s), height %d, baseline %d\n", file, len(font.Chars()), font.GlyphHeight(), font.Baseline())
	default:
		return fmt.Errorf("%s: not a sprite or font file", file)
	}
	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "ahi"
	app.Usage = "ASCII Hex Image and Font utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"AHI_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "scan",
			Usage:     "Scan a directory tree and catalog sprite and font files",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "scan", 1)
				}

				catalog, err := ahi.OpenCatalog(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer catalog.Close()

				s := ahi.NewScanner(catalog, verboseLogger(c))
				if err := s.Scan(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Convert AHI collections to PNG images",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "export", 1)
				}

				for _, file := range c.Args().Slice() {
					if err := exportFile(file); err != nil {
						return cli.Exit(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Convert raster images to AHI collections",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "import", 1)
				}

				for _, file := range c.Args().Slice() {
					if err := importFile(file); err != nil {
						return cli.Exit(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Print a summary of sprite and font files",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "info", 1)
				}

				for _, file := range c.Args().Slice() {
					if err := infoFile(file); err != nil {
						return cli.Exit(err, 1)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"bytes"
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

	"github.com/bodgit/msxconv"
	"github.com/bodgit/msxconv/bsave"
	"github.com/bodgit/msxconv/filter"
	"github.com/bodgit/msxconv/store"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const previewTag = "png"

var scalers = map[string]draw.Scaler{
	"nearest":    draw.NearestNeighbor,
	"bilinear":   draw.BiLinear,
	"catmullrom": draw.CatmullRom,
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func decodeFile(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	b := new(bytes.Buffer)
	m, _, err := image.Decode(io.TeeReader(f, b))
	if err != nil {
		return nil, "", fmt.Errorf("unable to decode %s: %w", file, err)
	}

	sha, err := store.Hash(b)
	if err != nil {
		return nil, "", err
	}

	return m, sha, nil
}

func filteredSource(src msxconv.Source, f filter.Filter, strength float64) msxconv.Source {
	if f == nil {
		return src
	}
	return msxconv.SourceFunc(func(width, height int) (*image.RGBA, error) {
		m, err := src.Fetch(width, height)
		if err != nil {
			return nil, err
		}
		return f(m, strength), nil
	})
}

func writeFile(file string, b []byte, logger *log.Logger) error {
	logger.Printf("Writing %s (%d bytes)\n", file, len(b))
	return os.WriteFile(file, b, 0644)
}

func convert(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	mode, err := msxconv.ParseMode(c.String("mode"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	method, err := msxconv.ParsePaletteMethod(c.String("palette"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	scaler, ok := scalers[c.String("scaler")]
	if !ok {
		return cli.NewExitError(fmt.Errorf("unknown scaler: %q", c.String("scaler")), 1)
	}

	var f filter.Filter
	if name := c.String("filter"); name != "" {
		if f, err = filter.Lookup(name); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	file := c.Args().First()
	m, sha, err := decodeFile(file)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	opts := msxconv.Options{
		Mode:       mode,
		Palette:    method,
		Dither:     c.Bool("dither"),
		KeepAspect: c.Bool("keep-aspect"),
	}
	key := fmt.Sprintf("%s:%s:%s:%s:%g", mode, method, c.String("scaler"), c.String("filter"), c.Float64("strength"))

	var db *store.Store
	if path := c.String("db"); path != "" {
		if db, err = store.Open(path); err != nil {
			return cli.NewExitError(err, 1)
		}
		defer db.Close()
	}

	var files map[string][]byte
	if db != nil {
		if files, err = db.Find(sha, key); err != nil {
			return cli.NewExitError(err, 1)
		}
		if files != nil {
			logger.Printf("Using cached conversion of %s\n", file)
		}
	}

	if files == nil {
		src := filteredSource(msxconv.NewImageSource(m, scaler), f, c.Float64("strength"))

		result, err := msxconv.New(logger).Convert(src, opts)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		files = make(map[string][]byte, len(result.Files)+1)
		for tag, b := range result.Files {
			files[tag] = b
		}

		b := new(bytes.Buffer)
		if err := png.Encode(b, result.Preview); err != nil {
			return cli.NewExitError(err, 1)
		}
		files[previewTag] = b.Bytes()

		if db != nil {
			if err := db.Put(sha, key, files); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	for tag, b := range files {
		if tag == previewTag {
			continue
		}
		if err := writeFile(filepath.Join(c.String("output"), base+"."+tag), b, logger); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	if preview := c.String("preview"); preview != "" {
		if err := writeFile(preview, files[previewTag], logger); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	return nil
}

func openAll(files []string) ([]io.Reader, func(), error) {
	var readers []io.Reader
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		readers = append(readers, f)
		closers = append(closers, f)
	}
	return readers, closeAll, nil
}

func decode(c *cli.Context) error {
	mode, err := msxconv.ParseMode(c.String("mode"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	want := map[msxconv.Mode]int{
		msxconv.Screen5: 2,
		msxconv.Screen7: 3,
		msxconv.Screen8: 1,
	}
	n, ok := want[mode]
	if !ok {
		return cli.NewExitError(fmt.Errorf("decoding %s is not supported", mode), 1)
	}
	if c.NArg() != n {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	readers, closeAll, err := openAll(c.Args().Slice())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closeAll()

	var m image.Image
	switch mode {
	case msxconv.Screen5:
		m, err = msxconv.DecodeScreen5(readers[0], readers[1])
	case msxconv.Screen7:
		m, err = msxconv.DecodeScreen7(readers[0], readers[1], readers[2])
	case msxconv.Screen8:
		m, err = msxconv.DecodeScreen8(readers[0])
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	b := new(bytes.Buffer)
	if err := png.Encode(b, m); err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := writeFile(c.String("output"), b.Bytes(), newLogger(c)); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	for _, file := range c.Args().Slice() {
		f, err := os.Open(file)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		h, err := bsave.Read(f)
		f.Close()
		if err != nil {
			return cli.NewExitError(fmt.Errorf("%s: %w", file, err), 1)
		}
		fmt.Printf("%s: start 0x%04X, end 0x%04X, exec 0x%04X\n", file, h.Start, h.End, h.Exec)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "msxconv"
	app.Usage = "MSX2 screen image conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to an MSX screen",
			Description: "Writes one file per output, named after IMAGE with the screen extension",
			ArgsUsage:   "IMAGE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "mode",
					Aliases: []string{"m"},
					Value:   msxconv.Screen5.String(),
					Usage:   "screen mode; screen5, screen7, screen8 or screen12",
				},
				&cli.StringFlag{
					Name:  "palette",
					Value: msxconv.PaletteHistogram.String(),
					Usage: "palette method for screen5 and screen7; histogram, cluster or mediancut",
				},
				&cli.StringFlag{
					Name:  "scaler",
					Value: "catmullrom",
					Usage: "resampling method; nearest, bilinear or catmullrom",
				},
				&cli.StringFlag{
					Name:  "filter",
					Usage: "adjustment applied before conversion; " + strings.Join(filter.Names(), ", "),
				},
				&cli.Float64Flag{
					Name:  "strength",
					Value: 1.0,
					Usage: "amount of filter to apply",
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "accepted for compatibility, has no effect",
				},
				&cli.BoolFlag{
					Name:  "keep-aspect",
					Usage: "accepted for compatibility, has no effect",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   ".",
					Usage:   "output directory",
				},
				&cli.StringFlag{
					Name:  "preview",
					Usage: "write a PNG preview to `FILE`",
				},
				&cli.StringFlag{
					Name:    "db",
					EnvVars: []string{"MSXCONV_DB"},
					Usage:   "path to conversion cache database",
				},
			},
			Action: convert,
		},
		{
			Name:        "decode",
			Usage:       "Decode an MSX screen to PNG",
			Description: "screen5 takes IMAGE PALETTE, screen7 takes IMAGE0 IMAGE1 PALETTE and screen8 takes IMAGE",
			ArgsUsage:   "FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "mode",
					Aliases: []string{"m"},
					Value:   msxconv.Screen5.String(),
					Usage:   "screen mode; screen5, screen7 or screen8",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "output.png",
					Usage:   "output PNG file",
				},
			},
			Action: decode,
		},
		{
			Name:      "info",
			Usage:     "Print the BSAVE header of files",
			ArgsUsage: "FILE...",
			Action:    info,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

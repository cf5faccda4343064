/*
Package msxconv is a library for converting images into the screen formats of
the MSX2 and MSX2+ video processors.

Each conversion produces files in BSAVE format ready to be loaded with BLOAD
along with a preview image showing the effect of the conversion. The
supported modes are:

	SCREEN 5   256 by 212 pixels, 16 colours from a palette of 512
	SCREEN 7   512 by 212 pixels, 16 colours, split across two files
	SCREEN 8   256 by 212 pixels, 256 fixed colours
	SCREEN 12  256 by 212 pixels, YJK colour shared between four pixels

SCREEN 5 and SCREEN 7 conversions also produce a palette file.
*/
package msxconv

import (
	"errors"
	"image"
	"io"
	"log"
)

const (
	screenHeight = 212

	// Header end address of every image file
	imageEnd = 0xd400
)

var errWrongSize = errors.New("msxconv: image is wrong size")

// Converter converts images. It holds no state between conversions and is
// safe to use from multiple goroutines.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter that logs to logger. A nil logger discards
// everything.
func New(logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Converter{
		logger: logger,
	}
}

// Convert fetches an image from src at the size required by opts.Mode and
// encodes it. An unknown mode returns an *UnsupportedModeError and src is not
// consulted.
func (c *Converter) Convert(src Source, opts Options) (*Result, error) {
	encode, err := c.encoder(opts.Mode)
	if err != nil {
		return nil, err
	}

	width, height := opts.Mode.Size()

	m, err := src.Fetch(width, height)
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, errWrongSize
	}

	// Adjust image so that top-left corner is at (0, 0)
	if m.Rect.Min != (image.Point{}) {
		dup := *m
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		m = &dup
	}

	c.logger.Printf("Converting %dx%d image to %s\n", width, height, opts.Mode)

	return encode(m, opts)
}

type encodeFunc func(*image.RGBA, Options) (*Result, error)

func (c *Converter) encoder(mode Mode) (encodeFunc, error) {
	switch mode {
	case Screen5:
		return c.encodeScreen5, nil
	case Screen7:
		return c.encodeScreen7, nil
	case Screen8:
		return c.encodeScreen8, nil
	case Screen12:
		return c.encodeScreen12, nil
	default:
		return nil, &UnsupportedModeError{Mode: mode.String()}
	}
}

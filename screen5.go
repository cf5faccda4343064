package msxconv

import (
	"bytes"
	"image"
	"io"

	"github.com/bodgit/msxconv/bsave"
	"github.com/bodgit/msxconv/palette"
)

// Size in bytes of the payload for one 256 by 212 screen at four bits per
// pixel
const nibbleBytes = 256 * screenHeight >> 1

func imageHeader() bsave.Header {
	return bsave.Header{End: imageEnd}
}

// indexedEncoder packs two palette indices per byte, left pixel in the upper
// nibble, and paints the matching palette colours into the preview
type indexedEncoder struct {
	w       io.Writer
	p       palette.Palette
	preview *image.RGBA
}

func (e *indexedEncoder) encode(m *image.RGBA, minY, maxY int) error {
	if _, err := imageHeader().WriteTo(e.w); err != nil {
		return err
	}

	for y := minY; y < maxY; y++ {
		for x := 0; x < m.Rect.Max.X; x += 2 {
			c1 := m.RGBAAt(x, y)
			c2 := m.RGBAAt(x+1, y)

			i1 := e.p.IndexRGB(c1.R, c1.G, c1.B)
			i2 := e.p.IndexRGB(c2.R, c2.G, c2.B)

			// This is masking off any bits leaving a 0-15 value
			if _, err := e.w.Write([]byte{byte(i1&0x0f<<4 | i2&0x0f)}); err != nil {
				return err
			}

			e.preview.SetRGBA(x, y, e.p[i1])
			e.preview.SetRGBA(x+1, y, e.p[i2])
		}
	}

	return nil
}

func (c *Converter) buildPalette(m *image.RGBA, opts Options) palette.Palette {
	p := opts.Palette.builder().Build(m)
	c.logger.Printf("Built %s palette: %v\n", opts.Palette, p)
	return p
}

func (c *Converter) encodeScreen5(m *image.RGBA, opts Options) (*Result, error) {
	p := c.buildPalette(m, opts)

	b := bytes.NewBuffer(make([]byte, 0, bsave.HeaderSize+nibbleBytes))
	e := indexedEncoder{
		w:       b,
		p:       p,
		preview: image.NewRGBA(m.Rect),
	}

	if err := e.encode(m, 0, m.Rect.Max.Y); err != nil {
		return nil, err
	}

	return &Result{
		Mode: Screen5,
		Files: map[string][]byte{
			"s50": b.Bytes(),
			"pal": palette.MarshalFile(p, opts.Palette.tag()),
		},
		Preview: e.preview,
	}, nil
}

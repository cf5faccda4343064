package msxconv

import (
	"bytes"
	"image"

	"github.com/bodgit/msxconv/bsave"
	"github.com/bodgit/msxconv/palette"
)

// SCREEN 7 needs twice the memory of SCREEN 5 so the image is split into
// top and bottom halves, each in its own file
func (c *Converter) encodeScreen7(m *image.RGBA, opts Options) (*Result, error) {
	p := c.buildPalette(m, opts)
	preview := image.NewRGBA(m.Rect)
	half := m.Rect.Max.Y >> 1

	var files [2][]byte
	for i := range files {
		b := bytes.NewBuffer(make([]byte, 0, bsave.HeaderSize+nibbleBytes))
		e := indexedEncoder{
			w:       b,
			p:       p,
			preview: preview,
		}
		if err := e.encode(m, i*half, (i+1)*half); err != nil {
			return nil, err
		}
		files[i] = b.Bytes()
	}

	return &Result{
		Mode: Screen7,
		Files: map[string][]byte{
			"s70": files[0],
			"s71": files[1],
			"pal": palette.MarshalFile(p, opts.Palette.tag()),
		},
		Preview: preview,
	}, nil
}

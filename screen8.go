package msxconv

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/bodgit/msxconv/bsave"
	"github.com/bodgit/msxconv/msxcolor"
)

// Size in bytes of the payload for one 256 by 212 screen at one byte per
// pixel
const byteBytes = 256 * screenHeight

type directEncoder struct {
	w       io.Writer
	preview *image.RGBA
}

func (e *directEncoder) encode(m *image.RGBA) error {
	if _, err := imageHeader().WriteTo(e.w); err != nil {
		return err
	}

	var tmp [1]byte
	for y := 0; y < m.Rect.Max.Y; y++ {
		for x := 0; x < m.Rect.Max.X; x++ {
			c := m.RGBAAt(x, y)
			v := msxcolor.ToGRB332(c.R, c.G, c.B)

			tmp[0] = byte(v)
			if _, err := e.w.Write(tmp[:]); err != nil {
				return err
			}

			r, g, b := v.RGB()
			e.preview.SetRGBA(x, y, color.RGBA{r, g, b, 0xff})
		}
	}

	return nil
}

func (c *Converter) encodeScreen8(m *image.RGBA, _ Options) (*Result, error) {
	b := bytes.NewBuffer(make([]byte, 0, bsave.HeaderSize+byteBytes))
	e := directEncoder{
		w:       b,
		preview: image.NewRGBA(m.Rect),
	}

	if err := e.encode(m); err != nil {
		return nil, err
	}

	return &Result{
		Mode: Screen8,
		Files: map[string][]byte{
			"sc8": b.Bytes(),
		},
		Preview: e.preview,
	}, nil
}

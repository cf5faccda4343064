package msxconv

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/bodgit/msxconv/bsave"
	"github.com/bodgit/msxconv/msxcolor"
)

const groupWidth = 4

type yjkEncoder struct {
	w       io.Writer
	preview *image.RGBA
}

func (e *yjkEncoder) encode(m *image.RGBA) error {
	if _, err := imageHeader().WriteTo(e.w); err != nil {
		return err
	}

	var (
		group [groupWidth]msxcolor.YJK
		tmp   [groupWidth + 1]byte
	)
	for y := 0; y < m.Rect.Max.Y; y++ {
		for x := 0; x < m.Rect.Max.X; x += groupWidth {
			for i := range group {
				c := m.RGBAAt(x+i, y)
				group[i] = msxcolor.YJKFromRGB(c.R, c.G, c.B)
			}

			j, k := msxcolor.Average(group[:])

			for i, v := range group {
				tmp[i] = v.Y

				r, g, b := msxcolor.YJKToRGB(v.Y, j, k)
				e.preview.SetRGBA(x+i, y, color.RGBA{r, g, b, 0xff})
			}
			tmp[groupWidth] = msxcolor.Chroma(j, k)

			if _, err := e.w.Write(tmp[:]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Converter) encodeScreen12(m *image.RGBA, _ Options) (*Result, error) {
	size := bsave.HeaderSize + byteBytes

	b := bytes.NewBuffer(make([]byte, 0, size+byteBytes/groupWidth))
	e := yjkEncoder{
		w:       b,
		preview: image.NewRGBA(m.Rect),
	}

	if err := e.encode(m); err != nil {
		return nil, err
	}

	// Five bytes are written for every four pixels but the file only has
	// room for one byte per pixel, the rest of the stream is dropped
	if b.Len() > size {
		c.logger.Printf("Dropping %d bytes past the end of the screen\n", b.Len()-size)
		b.Truncate(size)
	}

	return &Result{
		Mode: Screen12,
		Files: map[string][]byte{
			"sc12": b.Bytes(),
		},
		Preview: e.preview,
	}, nil
}

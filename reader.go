package msxconv

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/bodgit/msxconv/bsave"
	"github.com/bodgit/msxconv/msxcolor"
	"github.com/bodgit/msxconv/palette"
)

var (
	errNotEnough = errors.New("msxconv: not enough image data")
	errTooMuch   = errors.New("msxconv: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// readPayload reads a BSAVE header followed by exactly len(b) bytes
func readPayload(r io.Reader, b []byte) error {
	if _, err := bsave.Read(r); err != nil {
		return err
	}

	if err := readFull(r, b); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	var tmp [1]byte
	if n, err := r.Read(tmp[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

func decodeNibbles(m *image.Paletted, b []byte, minY int) {
	width := m.Rect.Dx() >> 1
	for i, v := range b {
		x, y := i%width<<1, minY+i/width
		m.SetColorIndex(x+0, y, upperNibble(v)>>4)
		m.SetColorIndex(x+1, y, lowerNibble(v))
	}
}

// DecodeScreen5 reads a SCREEN 5 image from img and its palette from pal
func DecodeScreen5(img, pal io.Reader) (*image.Paletted, error) {
	p, _, err := palette.Decode(pal)
	if err != nil {
		return nil, err
	}

	b := make([]byte, nibbleBytes)
	if err := readPayload(img, b); err != nil {
		return nil, err
	}

	width, height := Screen5.Size()
	m := image.NewPaletted(image.Rect(0, 0, width, height), p.ColorPalette())
	decodeNibbles(m, b, 0)

	return m, nil
}

// DecodeScreen7 reads the top and bottom halves of a SCREEN 7 image from
// img0 and img1 and its palette from pal
func DecodeScreen7(img0, img1, pal io.Reader) (*image.Paletted, error) {
	p, _, err := palette.Decode(pal)
	if err != nil {
		return nil, err
	}

	width, height := Screen7.Size()
	m := image.NewPaletted(image.Rect(0, 0, width, height), p.ColorPalette())

	for i, r := range []io.Reader{img0, img1} {
		b := make([]byte, nibbleBytes)
		if err := readPayload(r, b); err != nil {
			return nil, err
		}
		decodeNibbles(m, b, i*height>>1)
	}

	return m, nil
}

// Screen8Palette holds all 256 SCREEN 8 colours indexed by their GRB332
// value
var Screen8Palette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		r, g, b := msxcolor.GRB332(i).RGB()
		p[i] = color.RGBA{r, g, b, 0xff}
	}
	return p
}()

// DecodeScreen8 reads a SCREEN 8 image from r
func DecodeScreen8(r io.Reader) (*image.Paletted, error) {
	width, height := Screen8.Size()
	m := image.NewPaletted(image.Rect(0, 0, width, height), Screen8Palette)

	if err := readPayload(r, m.Pix); err != nil {
		return nil, err
	}

	return m, nil
}

package palette

import (
	"errors"
	"image/color"
	"io"

	"github.com/bodgit/msxconv/bsave"
)

var (
	errNotEnough = errors.New("palette: not enough palette data")
	errTooMuch   = errors.New("palette: too much palette data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func expandLevel(b byte) uint8 {
	return uint8(round(float64(b&0x07) * step))
}

// Decode reads an MSX palette file from r, returning the palette in file
// order along with its header
func Decode(r io.Reader) (Palette, bsave.Header, error) {
	h, err := bsave.Read(r)
	if err != nil {
		return Palette{}, bsave.Header{}, err
	}

	var tmp [Size * 2]byte
	if err := readFull(r, tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return Palette{}, bsave.Header{}, err
		}
		return Palette{}, bsave.Header{}, errNotEnough
	}

	if n, err := r.Read(tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return Palette{}, bsave.Header{}, err
		}
		return Palette{}, bsave.Header{}, errTooMuch
	}

	var p Palette
	for i := range p {
		p[i] = color.RGBA{
			expandLevel(tmp[i*2] >> 4),
			expandLevel(tmp[i*2+1]),
			expandLevel(tmp[i*2]),
			0xff,
		}
	}

	return p, h, nil
}

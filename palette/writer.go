package palette

import (
	"bytes"
	"io"

	"github.com/bodgit/msxconv/bsave"
)

// FileSize is the size in bytes of an encoded palette file
const FileSize = bsave.HeaderSize + Size*2

// Header tags. The tag is the high byte of the BSAVE end address, the low
// byte is always 0x80.
const (
	// TagDefault accompanies histogram and median cut palettes
	TagDefault byte = 0x1b

	// TagOptimized accompanies cluster palettes
	TagOptimized byte = 0xfa
)

// Header returns the BSAVE header written in front of a palette with the
// given tag
func Header(tag byte) bsave.Header {
	return bsave.Header{End: uint16(tag)<<8 | 0x80}
}

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(p Palette, tag byte) error {
	if _, err := Header(tag).WriteTo(e.w); err != nil {
		return err
	}

	var tmp [2]byte
	for _, c := range p {
		// Color is packed as 0RRR0BBB 00000GGG
		tmp[0] = c.R>>5<<4 | c.B>>5
		tmp[1] = c.G >> 5

		if _, err := e.w.Write(tmp[:]); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the palette p to w in MSX palette file format
func Encode(w io.Writer, p Palette, tag byte) error {
	e := encoder{w: w}
	return e.encode(p, tag)
}

// MarshalFile returns the palette p encoded in MSX palette file format
func MarshalFile(p Palette, tag byte) []byte {
	b := bytes.NewBuffer(make([]byte, 0, FileSize))
	// Writing to a bytes.Buffer cannot fail
	_ = Encode(b, p, tag)
	return b.Bytes()
}

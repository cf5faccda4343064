package palette

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pack(c color.RGBA) (byte, byte) {
	v := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	return byte(v>>17&0x70 | v>>5&0x07), byte(v >> 13 & 0x07)
}

func TestMarshalFile(t *testing.T) {
	var p Palette
	for i := range p {
		p[i] = distinct(i * 31)
	}
	p[15] = color.RGBA{0xff, 0xff, 0xff, 0xff}

	b := MarshalFile(p, TagDefault)
	require.Len(t, b, FileSize)
	assert.Equal(t, 39, FileSize)
	assert.Equal(t, []byte{0xfe, 0x00, 0x00, 0x80, 0x1b, 0x00, 0x00}, b[:7])

	for i, c := range p {
		b0, b1 := pack(c)
		assert.Equal(t, b0, b[7+i*2], "entry %d", i)
		assert.Equal(t, b1, b[8+i*2], "entry %d", i)
	}
	assert.Equal(t, []byte{0x77, 0x07}, b[37:])

	b = MarshalFile(p, TagOptimized)
	assert.Equal(t, []byte{0xfe, 0x00, 0x00, 0x80, 0xfa, 0x00, 0x00}, b[:7])
}

func TestDecode(t *testing.T) {
	// Cluster palettes are already on the hardware levels so survive intact
	m := gradient(256, 212)
	p := Cluster{}.Build(m)

	got, h, err := Decode(bytes.NewReader(MarshalFile(p, TagOptimized)))
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, Header(TagOptimized), h)
	assert.Equal(t, uint16(0xfa80), h.End)
}

func TestDecodeErrors(t *testing.T) {
	b := MarshalFile(Palette{}, TagDefault)

	_, _, err := Decode(bytes.NewReader(b[:20]))
	assert.Equal(t, errNotEnough, err)

	_, _, err = Decode(bytes.NewReader(append(b, 0x00)))
	assert.Equal(t, errTooMuch, err)
}

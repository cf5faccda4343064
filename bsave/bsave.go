/*
Package bsave implements the 7 byte header written by the MSX BASIC BSAVE
command and expected by BLOAD.

The header is a single 0xFE identifier byte followed by the start, end and
execution addresses, each stored as a little-endian 16-bit word.
*/
package bsave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

const (
	// Magic is the identifier byte of every BSAVE file
	Magic = 0xfe

	// HeaderSize is the size in bytes of an encoded Header
	HeaderSize = 7
)

var (
	errBadMagic = errors.New("bsave: invalid identifier byte")
	errShort    = errors.New("bsave: not enough header data")
)

// Header is the BSAVE header. It implements the encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler interfaces.
type Header struct {
	Start uint16
	End   uint16
	Exec  uint16
}

// MarshalBinary encodes the header into binary form and returns the result
func (h Header) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	b.WriteByte(Magic)
	if err := binary.Write(b, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalBinary decodes the header from binary form
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return errShort
	}
	if b[0] != Magic {
		return errBadMagic
	}
	return binary.Read(bytes.NewReader(b[1:HeaderSize]), binary.LittleEndian, h)
}

// WriteTo writes the encoded header to w
func (h Header) WriteTo(w io.Writer) (int64, error) {
	b, err := h.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// Read reads and decodes a header from r
func Read(r io.Reader) (Header, error) {
	var tmp [HeaderSize]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errShort
		}
		return Header{}, err
	}
	var h Header
	if err := h.UnmarshalBinary(tmp[:]); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Length returns the number of bytes described by the start and end
// addresses
func (h Header) Length() int {
	return int(h.End) - int(h.Start)
}

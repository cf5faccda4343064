/*
Package msxcolor implements the two direct colour encodings of the MSX2 and
MSX2+ video processors.

SCREEN 8 stores each pixel as a single GRB332 byte. SCREEN 12 stores a 5-bit
luminance per pixel and shares a pair of 6-bit chrominance values between
four horizontally adjacent pixels, known as YJK.

Both encodings are lossy; out of range values are saturated, never rejected.
*/
package msxcolor

import "math"

// round rounds half-way values up, so -2.5 becomes -2
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(x, lo, hi int) int {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

func clamp8(x int) uint8 {
	return uint8(clamp(x, 0, 0xff))
}

// Luma returns the weighted luminance of an RGB triple
func Luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// expand widens an 8-bit channel to the 16-bit range used by color.Color
func expand(c uint8) uint32 {
	v := uint32(c)
	return v<<8 | v
}

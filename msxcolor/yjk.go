package msxcolor

import "image/color"

// Legal ranges of the YJK components
const (
	MaxY = 31
	MinJ = -16
	MaxJ = 15
	MinK = MinJ
	MaxK = MaxJ
)

// YJK is a SCREEN 12 sample. Y belongs to a single pixel, J and K are shared
// across a group of four pixels.
type YJK struct {
	Y uint8
	J int8
	K int8
}

// YJKFromRGB converts an RGB triple, saturating each component to its range
func YJKFromRGB(r, g, b uint8) YJK {
	fr, fg, fb := float64(r), float64(g), float64(b)

	y := round(Luma(r, g, b))
	j := round(-0.169*fr - 0.331*fg + 0.5*fb)
	k := round(0.5*fr - 0.419*fg - 0.081*fb)

	return YJK{
		Y: uint8(clamp(round(float64(y)/8), 0, MaxY)),
		J: int8(clamp(j, MinJ, MaxJ)),
		K: int8(clamp(k, MinK, MaxK)),
	}
}

// YJKToRGB reconstructs an RGB triple from a luminance and a shared
// chrominance pair. j and k are not clamped so averaged values may be passed
// directly.
func YJKToRGB(y uint8, j, k int) (r, g, b uint8) {
	yy := int(y) * 8
	r = clamp8(yy + k)
	g = clamp8(round(float64(yy) - float64(j+k)/2))
	b = clamp8(yy + j)
	return
}

// RGB reconstructs c using its own chrominance
func (c YJK) RGB() (r, g, b uint8) {
	return YJKToRGB(c.Y, int(c.J), int(c.K))
}

// RGBA implements the color.Color interface
func (c YJK) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return expand(r8), expand(g8), expand(b8), 0xffff
}

// YJKModel converts any colour to a YJK
var YJKModel = color.ModelFunc(yjkModel)

func yjkModel(c color.Color) color.Color {
	if _, ok := c.(YJK); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return YJKFromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Chroma packs an averaged chrominance pair into the byte stored after each
// group of four luminance values. Only the low three bits of k survive.
func Chroma(j, k int) byte {
	return byte((j&0x1f)<<3 | k&0x07)
}

// Average returns the rounded mean of the J and K components of a group
func Average(group []YJK) (j, k int) {
	if len(group) == 0 {
		return 0, 0
	}
	var sj, sk int
	for _, c := range group {
		sj += int(c.J)
		sk += int(c.K)
	}
	n := float64(len(group))
	return round(float64(sj) / n), round(float64(sk) / n)
}

package msxcolor

import "image/color"

// GRB332 is a SCREEN 8 colour. Green occupies the top three bits, red the
// middle three and blue the bottom two.
type GRB332 uint8

// ToGRB332 packs an RGB triple, truncating each channel to its field width
func ToGRB332(r, g, b uint8) GRB332 {
	gr := clamp(int(r)/32, 0, 7)
	gg := clamp(int(g)/32, 0, 7)
	gb := clamp(int(b)/64, 0, 3)
	return GRB332(gg<<5 | gr<<2 | gb)
}

// RGB unpacks c, scaling each field back up by its step
func (c GRB332) RGB() (r, g, b uint8) {
	r = uint8(c>>2&0x07) * 32
	g = uint8(c>>5&0x07) * 32
	b = uint8(c&0x03) * 64
	return
}

// RGBA implements the color.Color interface
func (c GRB332) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return expand(r8), expand(g8), expand(b8), 0xffff
}

// GRB332Model converts any colour to a GRB332
var GRB332Model = color.ModelFunc(grb332Model)

func grb332Model(c color.Color) color.Color {
	if _, ok := c.(GRB332); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return ToGRB332(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

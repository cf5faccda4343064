/*
Package palette builds, maps and serialises the 16 colour palettes used by the
MSX2 SCREEN 5 and SCREEN 7 modes.

The hardware stores each palette entry as three bits per channel, so every
builder here produces exactly 16 opaque colours ordered by ascending
luminance. Images with fewer distinct colours still produce 16 entries, the
spare slots are duplicates or black.
*/
package palette

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/bodgit/msxconv/msxcolor"
)

const (
	// Size is the number of colours in a palette
	Size = 16

	levels = 8
	step   = 255.0 / (levels - 1)
)

var black = color.RGBA{0x00, 0x00, 0x00, 0xff}

// Palette is an ordered set of 16 colours
type Palette [Size]color.RGBA

// Builder derives a palette from the pixels of an image
type Builder interface {
	Build(m image.Image) Palette
}

// BuilderFunc adapts an ordinary function to the Builder interface
type BuilderFunc func(m image.Image) Palette

// Build calls f(m)
func (f BuilderFunc) Build(m image.Image) Palette {
	return f(m)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func rgbAt(m image.Image, x, y int) (r, g, b uint8) {
	if rgba, ok := m.(*image.RGBA); ok {
		i := rgba.PixOffset(x, y)
		return rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2]
	}
	r32, g32, b32, _ := m.At(x, y).RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

func luma(c color.RGBA) float64 {
	return msxcolor.Luma(c.R, c.G, c.B)
}

// snap moves a channel value to the nearest of the eight hardware levels
func snap(v float64) uint8 {
	level := round(v / step)
	if level < 0 {
		level = 0
	} else if level > levels-1 {
		level = levels - 1
	}
	return uint8(round(float64(level) * step))
}

func (p *Palette) sortByLuma() {
	sort.SliceStable(p[:], func(i, j int) bool {
		return luma(p[i]) < luma(p[j])
	})
}

// IndexRGB returns the index of the palette entry closest to the given
// triple using a luminance weighted distance. Ties go to the lowest index.
func (p Palette) IndexRGB(r, g, b uint8) int {
	ret, bestSum := 0, math.Inf(1)
	for i, c := range p {
		dr := float64(r) - float64(c.R)
		dg := float64(g) - float64(c.G)
		db := float64(b) - float64(c.B)
		sum := 0.299*dr*dr + 0.587*dg*dg + 0.114*db*db
		if sum < bestSum {
			ret, bestSum = i, sum
		}
	}
	return ret
}

// Index returns the index of the palette entry closest to c
func (p Palette) Index(c color.Color) int {
	r, g, b, _ := c.RGBA()
	return p.IndexRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Convert returns the palette entry closest to c
func (p Palette) Convert(c color.Color) color.Color {
	return p[p.Index(c)]
}

// ColorPalette returns the palette as a color.Palette suitable for an
// image.Paletted
func (p Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, Size)
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

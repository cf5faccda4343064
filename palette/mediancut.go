package palette

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

// MedianCut builds a palette using median cut quantization, snapping the
// resulting colours to the hardware's three bits per channel
type MedianCut struct{}

// Build implements the Builder interface
func (MedianCut) Build(m image.Image) Palette {
	q := quantize.MedianCutQuantizer{}

	var p Palette
	for i := range p {
		p[i] = black
	}

	for i, c := range q.Quantize(make(color.Palette, 0, Size), m) {
		if i >= Size {
			break
		}
		r, g, b, _ := c.RGBA()
		p[i] = color.RGBA{snap(float64(r >> 8)), snap(float64(g >> 8)), snap(float64(b >> 8)), 0xff}
	}

	p.sortByLuma()

	return p
}

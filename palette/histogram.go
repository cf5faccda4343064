package palette

import (
	"image"
	"image/color"
)

const maxBuckets = 256

// Histogram builds a palette from the 16 most frequent colours once each
// channel is reduced to its top three bits. Only the first 256 distinct
// colours encountered are counted, later ones are ignored.
type Histogram struct{}

func bucket(r, g, b uint8) uint32 {
	return uint32(r&0xe0)<<16 | uint32(g&0xe0)<<8 | uint32(b&0xe0)
}

// Build implements the Builder interface
func (Histogram) Build(m image.Image) Palette {
	keys := make([]uint32, 0, maxBuckets)
	counts := make([]int, 0, maxBuckets)
	index := make(map[uint32]int, maxBuckets)

	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			key := bucket(rgbAt(m, x, y))
			if i, ok := index[key]; ok {
				counts[i]++
				continue
			}
			if len(keys) < maxBuckets {
				index[key] = len(keys)
				keys = append(keys, key)
				counts = append(counts, 1)
			}
		}
	}

	var p Palette
	if len(keys) == 0 {
		for i := range p {
			p[i] = black
		}
		return p
	}

	for i := range p {
		// Once every bucket is used up this keeps picking the first one
		most, best := 0, 0
		for j, n := range counts {
			if n > most {
				most, best = n, j
			}
		}
		p[i] = color.RGBA{uint8(keys[best] >> 16), uint8(keys[best] >> 8), uint8(keys[best]), 0xff}
		counts[best] = 0
	}

	p.sortByLuma()

	return p
}

package palette

import (
	"image"
	"image/color"
	"math"
)

type cluster struct {
	r, g, b uint64
	count   uint64
}

func (c *cluster) add(r, g, b uint8) {
	c.r += uint64(r)
	c.g += uint64(g)
	c.b += uint64(b)
	c.count++
}

func (c *cluster) mean() (float64, float64, float64) {
	n := float64(c.count)
	return float64(c.r) / n, float64(c.g) / n, float64(c.b) / n
}

func (c *cluster) sqDist(r, g, b uint8) float64 {
	mr, mg, mb := c.mean()
	dr := mr - float64(r)
	dg := mg - float64(g)
	db := mb - float64(b)
	return dr*dr + dg*dg + db*db
}

// Cluster builds a palette by assigning pixels, in row-major order, to 16
// running clusters in a single pass. The first 16 pixels seed the clusters
// and each later pixel joins whichever cluster mean is nearest at that
// moment, so the result depends on the order pixels are visited. The cluster
// means are snapped to the hardware's three bits per channel.
type Cluster struct{}

// Build implements the Builder interface
func (Cluster) Build(m image.Image) Palette {
	var clusters [Size]cluster

	bounds := m.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgbAt(m, x, y)

			closest, minDist := 0, math.Inf(1)
			for i := range clusters {
				if clusters[i].count == 0 {
					closest = i
					break
				}
				if d := clusters[i].sqDist(r, g, b); d < minDist {
					closest, minDist = i, d
				}
			}

			clusters[closest].add(r, g, b)
		}
	}

	var p Palette
	for i := range clusters {
		if clusters[i].count == 0 {
			p[i] = black
			continue
		}
		r, g, b := clusters[i].mean()
		p[i] = color.RGBA{
			snap(float64(round(r))),
			snap(float64(round(g))),
			snap(float64(round(b))),
			0xff,
		}
	}

	p.sortByLuma()

	return p
}

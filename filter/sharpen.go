package filter

import "image"

var sharpenKernel = [3][3]float64{
	{0, -1, 0},
	{-1, 5, -1},
	{0, -1, 0},
}

// Sharpen blends the image with a sharpened copy of itself, strength 0
// leaves the image unchanged and 1 is fully sharpened. Pixels outside the
// image contribute nothing.
func Sharpen(m *image.RGBA, strength float64) *image.RGBA {
	dst := clone(m)
	b := m.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var sum [3]float64
			for ky := range sharpenKernel {
				for kx, k := range sharpenKernel[ky] {
					p := image.Pt(x+kx-1, y+ky-1)
					if !p.In(b) {
						continue
					}
					i := m.PixOffset(p.X, p.Y)
					for c := range sum {
						sum[c] += float64(m.Pix[i+c]) * k
					}
				}
			}

			i := m.PixOffset(x, y)
			for c := range sum {
				v := float64(m.Pix[i+c])
				dst.Pix[i+c] = truncate(v + (sum[c]-v)*strength)
			}
		}
	}

	return dst
}

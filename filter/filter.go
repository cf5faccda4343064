/*
Package filter implements the optional adjustments that can be applied to an
image before it is converted.

Every filter takes a strength or amount and returns a new image, the input
is left untouched. Channel values saturate at 0 and 255.
*/
package filter

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// Filter adjusts m by the amount v
type Filter func(m *image.RGBA, v float64) *image.RGBA

var filters = map[string]Filter{
	"sharpen":     Sharpen,
	"contrast":    Contrast,
	"gamma":       Gamma,
	"saturation":  Saturation,
	"temperature": Temperature,
}

// Lookup returns the filter with the given name
func Lookup(name string) (Filter, error) {
	if f, ok := filters[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("filter: unknown filter: %q", name)
}

// Names returns the names of all filters in sorted order
func Names() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func truncate(v float64) uint8 {
	return uint8(math.Min(255, math.Max(0, math.Floor(v+0.5))))
}

func clone(m *image.RGBA) *image.RGBA {
	dst := &image.RGBA{
		Pix:    make([]uint8, len(m.Pix)),
		Stride: m.Stride,
		Rect:   m.Rect,
	}
	copy(dst.Pix, m.Pix)
	return dst
}

// pointwise returns a copy of m with fn applied to the red, green and blue
// channels of every pixel
func pointwise(m *image.RGBA, fn func(r, g, b float64) (float64, float64, float64)) *image.RGBA {
	dst := clone(m)
	bounds := dst.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := dst.PixOffset(x, y)
			r, g, b := fn(float64(dst.Pix[i]), float64(dst.Pix[i+1]), float64(dst.Pix[i+2]))
			dst.Pix[i] = truncate(r)
			dst.Pix[i+1] = truncate(g)
			dst.Pix[i+2] = truncate(b)
		}
	}
	return dst
}

// Contrast scales each channel away from or towards mid gray. Zero leaves
// the image unchanged.
func Contrast(m *image.RGBA, v float64) *image.RGBA {
	factor := (259 * (v*255 + 255)) / (255 * (259 - v*255))
	return pointwise(m, func(r, g, b float64) (float64, float64, float64) {
		return factor*(r-128) + 128, factor*(g-128) + 128, factor*(b-128) + 128
	})
}

// Gamma applies gamma correction. One leaves the image unchanged.
func Gamma(m *image.RGBA, gamma float64) *image.RGBA {
	inv := 1 / gamma
	return pointwise(m, func(r, g, b float64) (float64, float64, float64) {
		return 255 * math.Pow(r/255, inv), 255 * math.Pow(g/255, inv), 255 * math.Pow(b/255, inv)
	})
}

// Saturation scales each channel away from the pixel's gray level. One
// leaves the image unchanged, zero removes all colour.
func Saturation(m *image.RGBA, v float64) *image.RGBA {
	return pointwise(m, func(r, g, b float64) (float64, float64, float64) {
		gray := 0.2989*r + 0.5870*g + 0.1140*b
		return gray + (r-gray)*v, gray + (g-gray)*v, gray + (b-gray)*v
	})
}

// Temperature warms the image by boosting red and cutting blue by a tenth of
// v. Negative values cool it.
func Temperature(m *image.RGBA, v float64) *image.RGBA {
	temp := v * 0.1
	return pointwise(m, func(r, g, b float64) (float64, float64, float64) {
		return r * (1 + temp), g, b * (1 - temp)
	})
}

package msxconv

import (
	"image"

	"golang.org/x/image/draw"
)

// Source supplies the pixels to convert at exactly the requested size
type Source interface {
	Fetch(width, height int) (*image.RGBA, error)
}

// SourceFunc adapts an ordinary function to the Source interface
type SourceFunc func(width, height int) (*image.RGBA, error)

// Fetch calls f(width, height)
func (f SourceFunc) Fetch(width, height int) (*image.RGBA, error) {
	return f(width, height)
}

type imageSource struct {
	m      image.Image
	scaler draw.Scaler
}

// NewImageSource returns a Source that resamples m to the requested size
// using scaler, the aspect ratio is not preserved. A nil scaler uses
// draw.CatmullRom.
func NewImageSource(m image.Image, scaler draw.Scaler) Source {
	if scaler == nil {
		scaler = draw.CatmullRom
	}
	return &imageSource{
		m:      m,
		scaler: scaler,
	}
}

func (s *imageSource) Fetch(width, height int) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	b := s.m.Bounds()

	if b.Dx() == width && b.Dy() == height {
		draw.Draw(dst, dst.Bounds(), s.m, b.Min, draw.Src)
	} else {
		s.scaler.Scale(dst, dst.Bounds(), s.m, b, draw.Src, nil)
	}

	return dst, nil
}

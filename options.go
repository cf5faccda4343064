package msxconv

import (
	"fmt"
	"strings"

	"github.com/bodgit/msxconv/palette"
)

// PaletteMethod selects how the SCREEN 5 and SCREEN 7 palette is built
type PaletteMethod int

// Supported palette methods
const (
	// PaletteHistogram keeps the 16 most frequent colours
	PaletteHistogram PaletteMethod = iota
	// PaletteCluster groups colours into 16 clusters in a single pass
	PaletteCluster
	// PaletteMedianCut uses median cut quantization
	PaletteMedianCut
)

var paletteMethodNames = map[PaletteMethod]string{
	PaletteHistogram: "histogram",
	PaletteCluster:   "cluster",
	PaletteMedianCut: "mediancut",
}

func (p PaletteMethod) String() string {
	if s, ok := paletteMethodNames[p]; ok {
		return s
	}
	return fmt.Sprintf("PaletteMethod(%d)", int(p))
}

// ParsePaletteMethod returns the palette method with the given name
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	for p, name := range paletteMethodNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("msxconv: unknown palette method: %q", s)
}

func (p PaletteMethod) builder() palette.Builder {
	switch p {
	case PaletteCluster:
		return palette.Cluster{}
	case PaletteMedianCut:
		return palette.MedianCut{}
	default:
		return palette.Histogram{}
	}
}

func (p PaletteMethod) tag() byte {
	if p == PaletteCluster {
		return palette.TagOptimized
	}
	return palette.TagDefault
}

// Options configures a conversion
type Options struct {
	Mode    Mode
	Palette PaletteMethod

	// Dither and KeepAspect are accepted for compatibility but currently
	// have no effect on any mode
	Dither     bool
	KeepAspect bool
}

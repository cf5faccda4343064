package msxconv

import (
	"image"
	"sort"
)

// Result holds the output of a single conversion. Every conversion returns
// its own Result, nothing is shared between them.
type Result struct {
	Mode Mode

	// Files maps a file extension such as "sc8" to the file contents
	Files map[string][]byte

	// Preview shows the image as it will appear on the MSX
	Preview *image.RGBA
}

// Tags returns the file extensions of the result in sorted order
func (r *Result) Tags() []string {
	tags := make([]string, 0, len(r.Files))
	for t := range r.Files {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

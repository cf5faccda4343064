package main

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/msxconv"
	"github.com/bodgit/msxconv/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteredSource(t *testing.T) {
	src := msxconv.SourceFunc(func(width, height int) (*image.RGBA, error) {
		m := image.NewRGBA(image.Rect(0, 0, width, height))
		for i := range m.Pix {
			m.Pix[i] = 100
		}
		return m, nil
	})

	m, err := filteredSource(src, nil, 1).Fetch(1, 1)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{100, 100, 100, 100}, m.RGBAAt(0, 0))

	m, err = filteredSource(src, filter.Temperature, 1).Fetch(4, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), m.Bounds())
	assert.Equal(t, color.RGBA{110, 100, 90, 100}, m.RGBAAt(3, 1))
}

func TestOpenAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(a, []byte("abc"), 0644))

	readers, closeAll, err := openAll([]string{a})
	require.NoError(t, err)
	defer closeAll()

	require.Len(t, readers, 1)
	b, err := io.ReadAll(readers[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)

	_, _, err = openAll([]string{a, filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

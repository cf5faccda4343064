package msxcolor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestYJKGray(t *testing.T) {
	// Y keeps five bits, so a gray level survives to within half a step
	// until the top of the range saturates at 31
	for v := 0; v < 248; v++ {
		c := YJKFromRGB(uint8(v), uint8(v), uint8(v))
		assert.Equal(t, int8(0), c.J, "j for %d", v)
		assert.Equal(t, int8(0), c.K, "k for %d", v)

		r, g, b := c.RGB()
		assert.LessOrEqual(t, abs(int(r)-v), 4, "r for %d", v)
		assert.LessOrEqual(t, abs(int(g)-v), 4, "g for %d", v)
		assert.LessOrEqual(t, abs(int(b)-v), 4, "b for %d", v)
	}

	for v := 0; v < 256; v += 8 {
		r, g, b := YJKFromRGB(uint8(v), uint8(v), uint8(v)).RGB()
		assert.Equal(t, []uint8{uint8(v), uint8(v), uint8(v)}, []uint8{r, g, b})
	}

	assert.Equal(t, YJK{Y: MaxY}, YJKFromRGB(0xff, 0xff, 0xff))
}

func TestYJKFromRGB(t *testing.T) {
	tables := []struct {
		r, g, b uint8
		want    YJK
	}{
		{0, 0, 0, YJK{}},
		// y = 76, j = -43, k = 128
		{255, 0, 0, YJK{Y: 10, J: MinJ, K: MaxK}},
		// y = 29, j = 128, k = -21
		{0, 0, 255, YJK{Y: 4, J: MaxJ, K: MinK}},
		// y = 101, j = 4, k = 6
		{110, 95, 108, YJK{Y: 13, J: 4, K: 6}},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, YJKFromRGB(table.r, table.g, table.b), "%d,%d,%d", table.r, table.g, table.b)
	}
}

func TestYJKToRGB(t *testing.T) {
	r, g, b := YJKToRGB(10, -16, 15)
	assert.Equal(t, []uint8{95, 81, 64}, []uint8{r, g, b})

	// Saturates rather than wrapping
	r, g, b = YJKToRGB(0, -16, -16)
	assert.Equal(t, []uint8{0, 16, 0}, []uint8{r, g, b})
	r, g, b = YJKToRGB(31, 15, 15)
	assert.Equal(t, []uint8{255, 233, 255}, []uint8{r, g, b})
}

func TestYJKModel(t *testing.T) {
	assert.Equal(t, YJK{Y: 16}, YJKModel.Convert(color.RGBA{128, 128, 128, 0xff}))
	_, _, _, a := YJK{Y: 16}.RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestChroma(t *testing.T) {
	assert.Equal(t, byte(0x00), Chroma(0, 0))
	assert.Equal(t, byte(0x7f), Chroma(15, 15))
	assert.Equal(t, byte(0x80), Chroma(-16, -16))
	assert.Equal(t, byte(0xff), Chroma(-1, -1))
	assert.Equal(t, byte(0x0b), Chroma(1, 3))
}

func TestAverage(t *testing.T) {
	j, k := Average([]YJK{{J: 1, K: -1}, {J: 2, K: -2}, {J: 2, K: -2}, {J: 1, K: -1}})
	assert.Equal(t, 2, j)  // 1.5 rounds up
	assert.Equal(t, -1, k) // -1.5 rounds up too

	j, k = Average(nil)
	assert.Equal(t, 0, j)
	assert.Equal(t, 0, k)
}

package flip

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filterforge/filter-host/internal/filter"
)

var (
	red   = []byte{255, 0, 0, 255}
	green = []byte{0, 255, 0, 255}
	blue  = []byte{0, 0, 255, 255}
	white = []byte{255, 255, 255, 255}
)

// image2x2 is red,green / blue,white in row-major order.
func image2x2() []byte {
	pix := make([]byte, 0, 16)
	for _, p := range [][]byte{red, green, blue, white} {
		pix = append(pix, p...)
	}
	return pix
}

func concat(pixels ...[]byte) []byte {
	var out []byte
	for _, p := range pixels {
		out = append(out, p...)
	}
	return out
}

func randomImage(t *testing.T, w, h int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(int64(w*100 + h)))
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(rng.Intn(256))
	}
	return pix
}

func TestHorizontal_2x2(t *testing.T) {
	pix := image2x2()
	Horizontal(pix, 2, 2)
	assert.Equal(t, concat(green, red, white, blue), pix)
}

func TestVertical_2x2(t *testing.T) {
	pix := image2x2()
	Vertical(pix, 2, 2)
	assert.Equal(t, concat(blue, white, red, green), pix)
}

func TestBothFlipsAre180Rotation(t *testing.T) {
	pix := image2x2()
	Horizontal(pix, 2, 2)
	Vertical(pix, 2, 2)
	assert.Equal(t, concat(white, blue, green, red), pix)

	// Either order gives the same rotation.
	other := image2x2()
	Vertical(other, 2, 2)
	Horizontal(other, 2, 2)
	assert.Equal(t, pix, other)
}

func TestFlipsAreInvolutions(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {3, 3}, {5, 2}, {4, 7}} {
		w, h := dims[0], dims[1]
		pix := randomImage(t, w, h)
		original := append([]byte(nil), pix...)

		Horizontal(pix, w, h)
		Horizontal(pix, w, h)
		assert.Equal(t, original, pix, "double horizontal on %dx%d", w, h)

		Vertical(pix, w, h)
		Vertical(pix, w, h)
		assert.Equal(t, original, pix, "double vertical on %dx%d", w, h)
	}
}

func TestSingleColumnAndRowIdentities(t *testing.T) {
	col := randomImage(t, 1, 3)
	originalCol := append([]byte(nil), col...)
	Horizontal(col, 1, 3)
	assert.Equal(t, originalCol, col, "width 1 horizontal flip")

	row := randomImage(t, 3, 1)
	originalRow := append([]byte(nil), row...)
	Vertical(row, 3, 1)
	assert.Equal(t, originalRow, row, "height 1 vertical flip")
}

// quadrant4x4 has red in the top-left 2x2 quadrant and blue elsewhere.
func quadrant4x4() []byte {
	pix := make([]byte, 0, 4*4*4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 && y < 2 {
				pix = append(pix, red...)
			} else {
				pix = append(pix, blue...)
			}
		}
	}
	return pix
}

func TestProcess_QuadrantScenario(t *testing.T) {
	pix := quadrant4x4()

	status := Process(4, 4, pix, `{"horizontal": true}`)
	require.Equal(t, filter.StatusOK, status)

	at := func(x, y int) []byte {
		i := (y*4 + x) * 4
		return pix[i : i+4]
	}
	assert.Equal(t, red, at(3, 0), "pixel (3,0) must become red")
	assert.Equal(t, blue, at(0, 0), "pixel (0,0) must become blue")
}

func TestProcess_StrictParamsPolicy(t *testing.T) {
	pix := image2x2()
	original := append([]byte(nil), pix...)

	status := Process(2, 2, pix, "not json")

	assert.Equal(t, filter.StatusBadParams, status)
	assert.Equal(t, original, pix, "strict policy: buffer untouched on bad params")
}

func TestProcess_DefaultsAreNoFlip(t *testing.T) {
	pix := image2x2()
	original := append([]byte(nil), pix...)

	require.Equal(t, filter.StatusOK, Process(2, 2, pix, "{}"))
	assert.Equal(t, original, pix)
}

func TestProcess_ValidationFailures(t *testing.T) {
	assert.Equal(t, filter.StatusNullInput, Process(2, 2, nil, "{}"))
	assert.Equal(t, filter.StatusBadDimensions, Process(0, 2, make([]byte, 16), "{}"))
	assert.Equal(t, filter.StatusSizeOverflow, Process(4, 4, make([]byte, 8), "{}"))
}

func TestRegisteredAsBuiltin(t *testing.T) {
	_, ok := filter.Lookup(Name)
	assert.True(t, ok)
}

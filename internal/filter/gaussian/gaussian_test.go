package gaussian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filterforge/filter-host/internal/filter"
)

// brightCenter builds a w x h black opaque image with a white center pixel.
func brightCenter(w, h int) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4+3] = 255
	}
	c := ((h/2)*w + w/2) * 4
	pix[c] = 255
	pix[c+1] = 255
	pix[c+2] = 255
	return pix
}

func TestProcess_BlursBrightCenter(t *testing.T) {
	pix := brightCenter(9, 9)
	center := (4*9 + 4) * 4

	status := Process(9, 9, pix, `{"radius": 2}`)

	require.Equal(t, filter.StatusOK, status)
	assert.Less(t, pix[center], uint8(255), "center must darken")
}

func TestProcess_NonPositiveRadiusIsIdentity(t *testing.T) {
	pix := brightCenter(5, 5)
	original := append([]byte(nil), pix...)

	require.Equal(t, filter.StatusOK, Process(5, 5, pix, `{"radius": 0}`))
	assert.Equal(t, original, pix)
}

func TestProcess_MalformedParamsUseDefaultRadius(t *testing.T) {
	withDefaults := brightCenter(9, 9)
	withGarbage := brightCenter(9, 9)

	require.Equal(t, filter.StatusOK, Process(9, 9, withDefaults, "{}"))
	require.Equal(t, filter.StatusOK, Process(9, 9, withGarbage, "###"))

	assert.Equal(t, withDefaults, withGarbage)
}

func TestProcess_ValidationFailures(t *testing.T) {
	assert.Equal(t, filter.StatusNullInput, Process(3, 3, nil, "{}"))
	assert.Equal(t, filter.StatusBadDimensions, Process(3, 0, make([]byte, 36), "{}"))
	assert.Equal(t, filter.StatusSizeOverflow, Process(3, 3, make([]byte, 8), "{}"))
}

func TestRegisteredAsBuiltin(t *testing.T) {
	_, ok := filter.Lookup(Name)
	assert.True(t, ok)
}

package codec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filterforge/filter-host/internal/pixel"
)

func TestSaveOpen_RoundTrip(t *testing.T) {
	buf, err := pixel.New(2, 2)
	require.NoError(t, err)
	buf.Set(0, 0, 255, 0, 0, 255)
	buf.Set(1, 0, 0, 255, 0, 255)
	buf.Set(0, 1, 0, 0, 255, 255)
	buf.Set(1, 1, 255, 255, 255, 255)

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	require.NoError(t, Save(buf, path))

	got, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, buf.Width, got.Width)
	assert.Equal(t, buf.Height, got.Height)
	assert.Equal(t, buf.Pix, got.Pix, "PNG round-trip must preserve bytes")
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.png"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open image")
}

func TestSave_UnsupportedExtension(t *testing.T) {
	buf, err := pixel.New(1, 1)
	require.NoError(t, err)

	err = Save(buf, filepath.Join(t.TempDir(), "out.xyz"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save image")
}

package codec

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/filterforge/filter-host/internal/pixel"
)

// Open decodes the image file at path into a pixel buffer.
//
// Supported formats are those of the imaging package (PNG, JPEG, GIF, TIFF,
// BMP). The decoded image is converted to straight RGBA bytes regardless of
// its source color model.
func Open(path string) (*pixel.Buffer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %q: %w", path, err)
	}

	buf, err := pixel.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image %q: %w", path, err)
	}
	return buf, nil
}

// Save encodes the buffer to the file at path, with the format derived from
// the file extension.
func Save(buf *pixel.Buffer, path string) error {
	if err := imaging.Save(buf.Image(), path); err != nil {
		return fmt.Errorf("failed to save image %q: %w", path, err)
	}
	return nil
}

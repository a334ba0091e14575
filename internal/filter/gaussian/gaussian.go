// Package gaussian implements a gaussian blur filter on top of bild.
//
// Unlike the weighted blur, the kernel here is the standard gaussian and the
// work is delegated to bild's separable implementation. The buffer bytes are
// treated as raw RGBA channels.
//
// Parameter schema: {"radius": float (default 3)}. Decode policy is lenient:
// malformed parameter text falls back to the default radius. A radius of zero
// or less is the identity.
package gaussian

import (
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/filterforge/filter-host/internal/filter"
	"github.com/filterforge/filter-host/internal/pixel"
)

// Name is the logical filter name used for registration and module lookup.
const Name = "gaussian"

type config struct {
	Radius float64 `json:"radius" default:"3"`
}

func init() {
	filter.Register(Name, Process)
}

// Process is the gaussian entry point.
func Process(width, height uint32, pix []byte, params string) filter.Status {
	view, status := filter.Frame(width, height, pix)
	if status != filter.StatusOK {
		return status
	}

	var cfg config
	if err := filter.DecodeParams(params, &cfg); err != nil {
		cfg = config{Radius: 3}
	}
	if cfg.Radius <= 0 {
		return filter.StatusOK
	}

	// Wrap the view as an RGBA image sharing its backing bytes so bild reads
	// the channels untranslated, then copy the blurred pixels back in.
	src := &image.RGBA{
		Pix:    view,
		Stride: int(width) * pixel.BytesPerPixel,
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}
	result := blur.Gaussian(src, cfg.Radius)
	copy(view, result.Pix)

	return filter.StatusOK
}

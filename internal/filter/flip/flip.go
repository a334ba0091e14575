// Package flip implements in-place horizontal and vertical axis flips.
//
// Horizontal mirrors each row about its center column; vertical mirrors the
// rows about the image's center row. Both are involutions (applying the same
// flip twice restores the buffer exactly) and applying both in either order
// is a 180 degree rotation.
//
// Parameter schema: {"horizontal": bool (default false), "vertical": bool
// (default false)}. Decode policy is strict: malformed parameter text is
// reported as StatusBadParams and the buffer is left untouched.
package flip

import (
	"github.com/filterforge/filter-host/internal/filter"
	"github.com/filterforge/filter-host/internal/pixel"
)

// Name is the logical filter name used for registration and module lookup.
const Name = "flip"

type config struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
}

func init() {
	filter.Register(Name, Process)
}

// Process is the flip entry point.
func Process(width, height uint32, pix []byte, params string) filter.Status {
	view, status := filter.Frame(width, height, pix)
	if status != filter.StatusOK {
		return status
	}

	var cfg config
	if err := filter.DecodeParams(params, &cfg); err != nil {
		return filter.StatusBadParams
	}

	if cfg.Horizontal {
		Horizontal(view, int(width), int(height))
	}
	if cfg.Vertical {
		Vertical(view, int(width), int(height))
	}
	return filter.StatusOK
}

// Horizontal swaps each row's pixels left-for-right. On an odd width the
// center column is untouched.
func Horizontal(pix []byte, width, height int) {
	rowBytes := width * pixel.BytesPerPixel

	for y := 0; y < height; y++ {
		row := y * rowBytes
		for x := 0; x < width/2; x++ {
			left := row + x*pixel.BytesPerPixel
			right := row + (width-1-x)*pixel.BytesPerPixel
			for i := 0; i < pixel.BytesPerPixel; i++ {
				pix[left+i], pix[right+i] = pix[right+i], pix[left+i]
			}
		}
	}
}

// Vertical swaps whole rows top-for-bottom. On an odd height the center row
// is untouched.
func Vertical(pix []byte, width, height int) {
	rowBytes := width * pixel.BytesPerPixel

	for y := 0; y < height/2; y++ {
		top := y * rowBytes
		bottom := (height - 1 - y) * rowBytes
		for i := 0; i < rowBytes; i++ {
			pix[top+i], pix[bottom+i] = pix[bottom+i], pix[top+i]
		}
	}
}

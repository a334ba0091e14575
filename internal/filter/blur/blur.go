// Package blur implements the iterative distance-weighted neighborhood blur.
//
// For each pixel the filter averages every pixel inside a square window of
// side 2*radius+1, clipped at the image edges, weighting each neighbor by
// 1 / max(1, euclidean distance). The center pixel (distance 0) always
// carries the maximum weight of 1. Each iteration reads only the previous
// iteration's pixels via a scratch buffer, so results do not depend on
// traversal order.
//
// Parameter schema: {"radius": uint (default 1), "iterations": uint
// (default 1)}. Decode policy is lenient: malformed parameter text falls back
// to the all-defaults config and processing proceeds.
package blur

import (
	"math"

	"github.com/filterforge/filter-host/internal/filter"
	"github.com/filterforge/filter-host/internal/pixel"
)

// Name is the logical filter name used for registration and module lookup.
const Name = "blur"

type config struct {
	Radius     uint `json:"radius" default:"1"`
	Iterations uint `json:"iterations" default:"1"`
}

func init() {
	filter.Register(Name, Process)
}

// Process is the blur entry point. It reports only boundary-validation
// failures; parameter decoding never fails (lenient policy).
func Process(width, height uint32, pix []byte, params string) filter.Status {
	view, status := filter.Frame(width, height, pix)
	if status != filter.StatusOK {
		return status
	}

	var cfg config
	if err := filter.DecodeParams(params, &cfg); err != nil {
		cfg = config{Radius: 1, Iterations: 1}
	}

	// A window already clips to the whole image, so any larger radius is
	// equivalent; clamping also keeps the int conversion from wrapping.
	radius := int(min(cfg.Radius, uint(max(width, height))))

	Apply(view, int(width), int(height), radius, cfg.Iterations)
	return filter.StatusOK
}

// Apply runs the weighted blur over an RGBA byte buffer of the given
// dimensions. radius 0 is the identity regardless of iterations.
func Apply(pix []byte, width, height, radius int, iterations uint) {
	scratch := make([]byte, len(pix))

	for i := uint(0); i < iterations; i++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				sr, sg, sb, sa, total := accumulate(pix, width, height, x, y, radius)

				dst := (y*width + x) * pixel.BytesPerPixel
				// Weighted averages of [0,255] values stay in [0,255];
				// rounding is all that is needed.
				scratch[dst] = uint8(math.Round(sr / total))
				scratch[dst+1] = uint8(math.Round(sg / total))
				scratch[dst+2] = uint8(math.Round(sb / total))
				scratch[dst+3] = uint8(math.Round(sa / total))
			}
		}
		copy(pix, scratch)
	}
}

// accumulate sums the weighted channel values of every pixel within radius of
// (cx, cy), clipping the window at the image edges. Returns the four channel
// sums and the total weight.
func accumulate(pix []byte, width, height, cx, cy, radius int) (sr, sg, sb, sa, total float64) {
	yStart := max(0, cy-radius)
	yEnd := min(height-1, cy+radius)
	xStart := max(0, cx-radius)
	xEnd := min(width-1, cx+radius)

	for ny := yStart; ny <= yEnd; ny++ {
		for nx := xStart; nx <= xEnd; nx++ {
			dx := float64(cx - nx)
			dy := float64(cy - ny)
			distance := math.Sqrt(dx*dx + dy*dy)
			weight := 1.0 / math.Max(1.0, distance)

			src := (ny*width + nx) * pixel.BytesPerPixel
			sr += float64(pix[src]) * weight
			sg += float64(pix[src+1]) * weight
			sb += float64(pix[src+2]) * weight
			sa += float64(pix[src+3]) * weight
			total += weight
		}
	}
	return sr, sg, sb, sa, total
}

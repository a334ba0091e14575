// Package tint implements a color tint filter.
//
// Each pixel's red, green and blue channels are blended toward a target color
// by a configurable strength; alpha is left untouched.
//
// Parameter schema: {"color": "#rrggbb" (default "#ffffff"), "strength":
// float in [0,1] (default 0.5)}. Decode policy is strict: malformed parameter
// text or an unparseable color is reported as StatusBadParams and the buffer
// is left untouched. Strength is clamped to [0,1].
package tint

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/filterforge/filter-host/internal/filter"
	"github.com/filterforge/filter-host/internal/pixel"
)

// Name is the logical filter name used for registration and module lookup.
const Name = "tint"

type config struct {
	Color    string  `json:"color" default:"#ffffff"`
	Strength float64 `json:"strength" default:"0.5"`
}

func init() {
	filter.Register(Name, Process)
}

// Process is the tint entry point.
func Process(width, height uint32, pix []byte, params string) filter.Status {
	view, status := filter.Frame(width, height, pix)
	if status != filter.StatusOK {
		return status
	}

	var cfg config
	if err := filter.DecodeParams(params, &cfg); err != nil {
		return filter.StatusBadParams
	}
	target, err := colorful.Hex(cfg.Color)
	if err != nil {
		return filter.StatusBadParams
	}

	strength := math.Min(1, math.Max(0, cfg.Strength))
	tr, tg, tb := target.RGB255()

	Apply(view, tr, tg, tb, strength)
	return filter.StatusOK
}

// Apply blends every pixel's RGB channels toward (tr, tg, tb) by strength in
// [0,1]. Strength 0 is the identity; strength 1 replaces the color entirely.
func Apply(pix []byte, tr, tg, tb uint8, strength float64) {
	for i := 0; i < len(pix); i += pixel.BytesPerPixel {
		pix[i] = blend(pix[i], tr, strength)
		pix[i+1] = blend(pix[i+1], tg, strength)
		pix[i+2] = blend(pix[i+2], tb, strength)
	}
}

func blend(from, to uint8, strength float64) uint8 {
	return uint8(math.Round(float64(from)*(1-strength) + float64(to)*strength))
}

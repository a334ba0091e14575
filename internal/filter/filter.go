package filter

import (
	"fmt"

	"github.com/filterforge/filter-host/internal/pixel"
)

// EntrySymbol is the exported symbol every native filter module provides.
const EntrySymbol = "process_image"

// Status is the outcome a filter reports for one call.
//
// The numeric values are part of the native module contract and must not be
// renumbered.
type Status int32

const (
	// StatusOK means the filter processed the buffer successfully.
	StatusOK Status = 0

	// StatusNullInput means the buffer view was absent.
	StatusNullInput Status = 1

	// StatusBadDimensions means width or height was zero.
	StatusBadDimensions Status = 2

	// StatusSizeOverflow means width * height * 4 overflowed the length type
	// or the supplied buffer was shorter than that.
	StatusSizeOverflow Status = 3

	// StatusBadParams means the parameter blob was rejected by a filter using
	// the strict decode policy.
	StatusBadParams Status = 4
)

// String returns a short human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullInput:
		return "null input"
	case StatusBadDimensions:
		return "bad dimensions"
	case StatusSizeOverflow:
		return "size overflow"
	case StatusBadParams:
		return "bad parameters"
	default:
		return fmt.Sprintf("status %d", int32(s))
	}
}

// Func is the fixed entry-point signature every filter implements.
//
// pix is a transient mutable view of the pixel buffer; it is valid only until
// the call returns. params is the raw JSON parameter blob.
type Func func(width, height uint32, pix []byte, params string) Status

// Frame performs the boundary validation every entry point runs before any
// processing, in contract order: nil view, zero dimension, length overflow.
//
// On success it returns the view resliced to exactly width * height * 4 bytes
// and StatusOK. On failure it returns a nil view and the status the filter
// must report; the buffer has not been touched.
func Frame(width, height uint32, pix []byte) ([]byte, Status) {
	if pix == nil {
		return nil, StatusNullInput
	}
	if width == 0 || height == 0 {
		return nil, StatusBadDimensions
	}
	n, ok := pixel.ByteLen(width, height)
	if !ok || n > len(pix) {
		return nil, StatusSizeOverflow
	}
	return pix[:n], StatusOK
}

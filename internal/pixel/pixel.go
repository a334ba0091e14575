package pixel

import (
	"fmt"
	"image"
	"image/draw"
	"math"
)

// BytesPerPixel is the number of bytes occupied by one RGBA pixel.
const BytesPerPixel = 4

// ByteLen returns the byte length of a width x height RGBA buffer.
//
// The second return value is false when either dimension is zero or when
// width * height * 4 does not fit in an int. Callers must not index a buffer
// with a length ByteLen refused to produce.
func ByteLen(width, height uint32) (int, bool) {
	if width == 0 || height == 0 {
		return 0, false
	}
	pixels := uint64(width) * uint64(height)
	if pixels > math.MaxUint64/BytesPerPixel {
		return 0, false
	}
	n := pixels * BytesPerPixel
	if n > uint64(math.MaxInt) {
		return 0, false
	}
	return int(n), true
}

// Buffer is a host-owned RGBA pixel buffer.
//
// Pix holds exactly Width * Height * 4 bytes in row-major order. Filters
// mutate Pix in place through the view handed to them by the loader.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a zeroed buffer with the given dimensions.
//
// Returns an error if either dimension is not positive or if the byte length
// would overflow.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer dimensions %dx%d", width, height)
	}
	if uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return nil, fmt.Errorf("buffer dimensions %dx%d exceed uint32 range", width, height)
	}
	n, ok := ByteLen(uint32(width), uint32(height))
	if !ok {
		return nil, fmt.Errorf("buffer dimensions %dx%d overflow byte length", width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, n),
	}, nil
}

// FromImage converts any image into a Buffer, preserving straight (non
// premultiplied) channel values.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	dst := &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return buf, nil
}

// Image wraps the buffer as an *image.NRGBA sharing the same backing bytes.
// Mutating the returned image mutates the buffer.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// At returns the four channel values of the pixel at (x, y).
// Coordinates must be in bounds.
func (b *Buffer) At(x, y int) (r, g, bl, a uint8) {
	i := (y*b.Width + x) * BytesPerPixel
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// Set overwrites the four channel values of the pixel at (x, y).
// Coordinates must be in bounds.
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	i := (y*b.Width + x) * BytesPerPixel
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}

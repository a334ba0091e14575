// Package pixel defines the in-memory pixel buffer model shared by the host
// and every filter.
//
// A buffer is a flat byte slice of length exactly width * height * 4, laid out
// row-major with four interleaved 8-bit channels per pixel (red, green, blue,
// alpha). The coordinate system is 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Ownership
//
// The host owns every Buffer. A filter receives the underlying byte slice as a
// transient, mutable view for the duration of a single call and must not
// retain it after returning.
//
// # Sizing
//
// ByteLen is the single overflow-checked sizing primitive. Constructors reject
// dimensions whose byte length cannot be represented, so an invalid Buffer is
// never built.
package pixel

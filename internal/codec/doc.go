// Package codec handles image file decode and encode for the host.
//
// It is deliberately thin: files are decoded straight into a pixel.Buffer and
// buffers are encoded back out, with the format chosen from the file
// extension. Filters never see files; they operate on the in-memory buffer
// only, and an I/O failure here never corrupts a buffer already handed to a
// filter.
package codec

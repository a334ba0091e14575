// Package filter defines the contract every filter implements and the shared
// plumbing around it: status codes, frame validation, parameter decoding, and
// the builtin filter registry.
//
// # The entry-point contract
//
// A filter is a single function of type Func. The host hands it the image
// dimensions, a mutable byte view of the pixel buffer, and a JSON parameter
// blob; the filter mutates the view in place and reports a Status. The native
// equivalent is the exported C symbol
//
//	int32_t process_image(uint32_t width, uint32_t height,
//	                      uint8_t *rgba_data, const char *params);
//
// where 0 means success and any nonzero value is one of the Status codes
// below. The call is synchronous: the view is valid only until the function
// returns, and a filter must never retain it.
//
// # Validation
//
// Every entry point starts by calling Frame, which performs the boundary
// checks in a fixed order: nil buffer, zero dimension, byte-length overflow
// (or a buffer too short to hold width * height * 4 bytes). A failed check
// yields the matching Status and the filter returns without touching the
// buffer. A filter must convert every internal failure into a Status before
// returning; nothing may panic across the boundary.
//
// # Parameter decoding
//
// Parameters arrive as a JSON object. Unknown keys are ignored and absent keys
// take the defaults declared on the filter's config struct. Two decode
// policies exist and each filter documents which one it uses:
//
//   - lenient: any parse failure yields the all-defaults config and
//     processing proceeds (blur, gaussian);
//   - strict: a parse failure is reported as StatusBadParams and nothing
//     runs (flip, tint).
//
// The split is deliberate and load-bearing for native-module compatibility;
// callers mixing filters should not assume one policy.
package filter

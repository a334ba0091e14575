//go:build linux || darwin || windows

package loader

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/filterforge/filter-host/internal/filter"
)

// nativeEntry wraps a resolved process_image symbol as a typed filter.Func.
//
// The params text is copied and NUL-terminated for the C side; the buffer
// base pointer and the params copy are kept alive across the raw call. The
// view and the text are only valid inside the call, matching the contract.
func nativeEntry(sym uintptr) filter.Func {
	return func(width, height uint32, pix []byte, params string) filter.Status {
		cparams := make([]byte, len(params)+1)
		copy(cparams, params)

		var base *byte
		if len(pix) > 0 {
			base = &pix[0]
		}

		r1, _, _ := purego.SyscallN(sym,
			uintptr(width),
			uintptr(height),
			uintptr(unsafe.Pointer(base)),
			uintptr(unsafe.Pointer(&cparams[0])),
		)
		runtime.KeepAlive(pix)
		runtime.KeepAlive(cparams)

		return filter.Status(int32(uint32(r1)))
	}
}

//go:build windows

package loader

import (
	"golang.org/x/sys/windows"

	"github.com/filterforge/filter-host/internal/filter"
)

// openNative loads the DLL at path and binds its process_image symbol.
func openNative(path string) (filter.Func, func() error, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}

	sym, err := windows.GetProcAddress(handle, filter.EntrySymbol)
	if err != nil {
		_ = windows.FreeLibrary(handle)
		return nil, nil, &SymbolError{Path: path, Err: err}
	}

	closer := func() error { return windows.FreeLibrary(handle) }
	return nativeEntry(sym), closer, nil
}

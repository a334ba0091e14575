//go:build linux || darwin

package loader

import (
	"github.com/ebitengine/purego"

	"github.com/filterforge/filter-host/internal/filter"
)

// openNative dlopens the library at path and binds its process_image symbol.
func openNative(path string) (filter.Func, func() error, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}

	sym, err := purego.Dlsym(lib, filter.EntrySymbol)
	if err != nil {
		_ = purego.Dlclose(lib)
		return nil, nil, &SymbolError{Path: path, Err: err}
	}

	closer := func() error { return purego.Dlclose(lib) }
	return nativeEntry(sym), closer, nil
}

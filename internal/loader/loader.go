package loader

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/filterforge/filter-host/internal/filter"
)

// Module is a loaded filter: the live module image (for native libraries)
// plus its bound, typed entry point. It must outlive every call made through
// it; Close releases the underlying library.
type Module struct {
	name  string
	path  string // empty for builtins
	entry filter.Func
	close func() error
}

// Name returns the logical filter name the module was resolved from.
func (m *Module) Name() string { return m.name }

// Path returns the shared library path, or "" for a builtin filter.
func (m *Module) Path() string { return m.path }

// Load opens the shared library for name in dir, binds its process_image
// entry point, and returns a Module owning the library.
//
// Returns a *LoadError if the file cannot be loaded and a *SymbolError if the
// entry point is absent. Failures are terminal; there is no retry.
func Load(name, dir string) (*Module, error) {
	path := LibraryPath(name, dir)
	log.WithField("path", path).Debug("loading filter module")

	entry, closer, err := openNative(path)
	if err != nil {
		return nil, err
	}
	return &Module{name: name, path: path, entry: entry, close: closer}, nil
}

// Builtin resolves name from the compiled-in filter registry.
func Builtin(name string) (*Module, error) {
	fn, ok := filter.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no builtin filter %q (available: %s)",
			name, strings.Join(filter.Names(), ", "))
	}
	return &Module{name: name, entry: fn}, nil
}

// Resolve returns the shared library module for name if its file exists in
// dir, and otherwise falls back to the builtin registry. A name found in
// neither place yields a *LoadError for the library path that was tried.
func Resolve(name, dir string) (*Module, error) {
	path := LibraryPath(name, dir)
	if _, err := os.Stat(path); err == nil {
		return Load(name, dir)
	}

	mod, err := Builtin(name)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	log.WithField("filter", name).Debug("using builtin filter")
	return mod, nil
}

// Invoke runs one synchronous filter call against the buffer. The buffer is
// exclusively the module's until Invoke returns.
//
// A nonzero status becomes a *ExecError. A panic out of a builtin filter is
// recovered and reported as an error, never propagated.
func (m *Module) Invoke(width, height uint32, pix []byte, params string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("filter %q panicked: %v", m.name, r)
		}
	}()

	status := m.entry(width, height, pix, params)
	if status != filter.StatusOK {
		return &ExecError{Filter: m.name, Code: status}
	}
	return nil
}

// Close unloads the underlying library. It is a no-op for builtin filters
// and must not be called while an Invoke is in flight.
func (m *Module) Close() error {
	if m.close == nil {
		return nil
	}
	closer := m.close
	m.close = nil
	return closer()
}

package filter

import (
	"sort"
	"sync"
)

// registry holds the compiled-in filters.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Func)
)

// Register adds a builtin filter under the given name. It is typically called
// from init() in the filter packages. Registering the same name twice replaces
// the earlier entry.
func Register(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Unregister removes a builtin filter. Useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// Lookup returns the builtin filter registered under name, if any.
func Lookup(name string) (Func, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Names returns the sorted names of all registered builtin filters.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package loader

import (
	"fmt"

	"github.com/filterforge/filter-host/internal/filter"
)

// LoadError reports that a filter module file could not be opened or is not a
// valid loadable module.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load filter module %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SymbolError reports that an otherwise valid module does not export the
// process_image entry point.
type SymbolError struct {
	Path string
	Err  error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("filter module %q does not export %q: %v", e.Path, filter.EntrySymbol, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// ExecError reports a nonzero status returned by a filter call.
type ExecError struct {
	Filter string
	Code   filter.Status
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("filter %q returned error code %d (%s)", e.Filter, int32(e.Code), e.Code)
}

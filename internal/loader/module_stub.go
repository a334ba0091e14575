//go:build !linux && !darwin && !windows

package loader

import (
	"errors"

	"github.com/filterforge/filter-host/internal/filter"
)

func openNative(path string) (filter.Func, func() error, error) {
	err := errors.New("shared library filter modules are not supported on this platform")
	return nil, nil, &LoadError{Path: path, Err: err}
}

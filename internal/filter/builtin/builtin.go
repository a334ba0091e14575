// Package builtin links the compiled-in filter set into a binary.
//
// Importing it for side effects registers every builtin filter:
//
//	import _ "github.com/filterforge/filter-host/internal/filter/builtin"
package builtin

import (
	_ "github.com/filterforge/filter-host/internal/filter/blur"
	_ "github.com/filterforge/filter-host/internal/filter/flip"
	_ "github.com/filterforge/filter-host/internal/filter/gaussian"
	_ "github.com/filterforge/filter-host/internal/filter/tint"
)

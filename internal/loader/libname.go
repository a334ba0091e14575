package loader

import (
	"path/filepath"
	"runtime"
)

// LibraryFilename returns the platform-specific shared library filename for a
// logical filter name: lib<name>.so on Linux, lib<name>.dylib on macOS (and
// other unixes default to the Linux convention), <name>.dll on Windows.
func LibraryFilename(name, goos string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// LibraryPath joins the filter directory with the current platform's library
// filename for name.
func LibraryPath(name, dir string) string {
	return filepath.Join(dir, LibraryFilename(name, runtime.GOOS))
}

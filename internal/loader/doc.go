// Package loader resolves logical filter names to callable filter modules.
//
// A filter can live in two places:
//
//   - a native shared library in a caller-specified directory, named per
//     platform convention (lib<name>.so on Linux, lib<name>.dylib on macOS,
//     <name>.dll on Windows) and exporting the process_image symbol;
//   - the compiled-in builtin registry.
//
// Resolve prefers the shared library when the file exists and falls back to
// the builtin set. Load and Builtin target one source explicitly.
//
// # Module lifetime
//
// A successful load returns a Module that owns the underlying library for its
// lifetime. The Module must outlive every Invoke made through it and must not
// be closed while a call is in flight; Close unloads the library. Calls are
// synchronous and the pixel buffer belongs exclusively to the module for the
// duration of one call.
//
// # Errors
//
// Failures are terminal, never retried, and carry a type the host can
// distinguish: LoadError (file missing, unreadable, or not a loadable
// module), SymbolError (process_image absent), ExecError (nonzero status from
// an otherwise successful call). A panicking builtin filter is converted by
// Invoke into an ordinary error; it never unwinds into the host.
package loader

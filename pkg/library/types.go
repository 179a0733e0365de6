// pkg/library/types.go
package library

import "strconv"

// Query identifies a versioned shared library
type Query struct {
	BaseName string // Library name (e.g., "pcsclite")
	Version  int    // Required version suffix (e.g., 1 for libpcsclite.so.1)
	GOOS     string // Naming convention to use; empty means the running platform
}

// FileName returns the exact file name to look for, e.g. "libpcsclite.so.1"
func (q Query) FileName() string {
	return MapLibraryName(q.BaseName, q.GOOS) + "." + strconv.Itoa(q.Version)
}

// Result is the outcome of a scan. The zero value means not found.
type Result struct {
	Found    bool   // Whether the library was found
	Path     string // Absolute path to the library file
	Dir      string // Search path entry that contained it
	Provider string // Nix store object providing Dir, if any
}

// NotFound is the Result of an unsuccessful scan
var NotFound = Result{}

// Candidate is one search path entry examined by a scan
type Candidate struct {
	Dir      string // Search path entry
	Path     string // File that was tested
	Exists   bool   // Whether Path is a regular file
	Provider string // Nix store object providing Dir, if any
}

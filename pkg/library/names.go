// pkg/library/names.go
package library

import "runtime"

// MapLibraryName returns the platform file name of the shared library called name,
// without version suffix. An empty goos means the running platform.
func MapLibraryName(name, goos string) string {
	if goos == "" {
		goos = runtime.GOOS
	}
	return sharedLibraryPrefix(goos) + name + sharedLibraryExtension(goos)
}

func sharedLibraryPrefix(goos string) string {
	if goos == "windows" {
		return ""
	}
	return "lib"
}

// sharedLibraryExtension returns the shared library extension for goos
func sharedLibraryExtension(goos string) string {
	switch goos {
	case "darwin", "ios":
		return ".dylib"
	case "windows":
		return ".dll"
	default: // linux, etc.
		return ".so"
	}
}

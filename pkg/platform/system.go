// pkg/platform/system.go
package platform

import (
	"os"
	"runtime"
)

// DefaultLibraryPathEnv is the environment variable holding the user library path.
const DefaultLibraryPathEnv = "LD_LIBRARY_PATH"

// SystemOptions tunes the environment read from the running host.
type SystemOptions struct {
	// LibraryPathEnv names the variable with the user library path. Defaults to LD_LIBRARY_PATH.
	LibraryPathEnv string

	// OSName overrides the detected operating system name
	OSName string

	// Arch overrides the detected architecture token
	Arch string

	// NoDefaultDirs skips appending the system default library directories
	NoDefaultDirs bool
}

type system struct {
	opts SystemOptions
}

// System returns the Environment of the running process.
func System(opts SystemOptions) Environment {
	if opts.LibraryPathEnv == "" {
		opts.LibraryPathEnv = DefaultLibraryPathEnv
	}
	return &system{opts: opts}
}

func (s *system) OSName() string {
	if s.opts.OSName != "" {
		return s.opts.OSName
	}
	return osName()
}

func (s *system) LibraryPath() (string, bool) {
	user := os.Getenv(s.opts.LibraryPathEnv)
	if s.opts.NoDefaultDirs {
		return user, user != ""
	}
	path := joinPath(append([]string{user}, defaultLibraryDirs(runtime.GOARCH)...)...)
	return path, path != ""
}

func (s *system) Arch() (string, bool) {
	if s.opts.Arch != "" {
		return s.opts.Arch, true
	}
	arch := currentArch()
	return arch, arch != ""
}

// Static is an Environment with fixed values.
type Static struct {
	Name    string
	Path    string
	HasPath bool
	Token   string
	HasArch bool
}

func (s Static) OSName() string              { return s.Name }
func (s Static) LibraryPath() (string, bool) { return s.Path, s.HasPath }
func (s Static) Arch() (string, bool)        { return s.Token, s.HasArch }

// Override wraps env, replacing the values that are set in o.
func Override(env Environment, o Static) Environment {
	return &override{base: env, o: o}
}

type override struct {
	base Environment
	o    Static
}

func (e *override) OSName() string {
	if e.o.Name != "" {
		return e.o.Name
	}
	return e.base.OSName()
}

func (e *override) LibraryPath() (string, bool) {
	if e.o.HasPath {
		return e.o.Path, true
	}
	return e.base.LibraryPath()
}

func (e *override) Arch() (string, bool) {
	if e.o.HasArch {
		return e.o.Token, true
	}
	return e.base.Arch()
}

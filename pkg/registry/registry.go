// pkg/registry/registry.go
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
)

//go:embed deps
var builtin embed.FS

// ErrNotFound indicates the library has no registry entry
var ErrNotFound = errors.New("registry: library not found")

// Entry represents a single deps/<name>/index.toml file
type Entry struct {
	Name     string            `toml:"name"`
	Libs     []string          `toml:"libs"`
	Backends map[string]string `toml:"backends"`
}

// Registry maps library base names to the distribution packages shipping them
type Registry struct {
	fsys fs.FS
}

// New creates a Registry over fsys, which holds <name>/index.toml files
func New(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys}
}

// Default returns the registry compiled into the binary
func Default() *Registry {
	sub, _ := fs.Sub(builtin, "deps")
	return New(sub)
}

// Resolve takes a library base name and a backend,
// returns the backend-specific package name.
// e.g. Resolve("pcsclite", "apt") -> "libpcsclite1"
func (r *Registry) Resolve(name string, backend string) (string, error) {
	entry, err := r.Load(name)
	if err != nil {
		return "", err
	}

	pkgName, ok := entry.Backends[backend]
	if !ok {
		return "", fmt.Errorf("registry: library '%s' has no entry for backend '%s'", name, backend)
	}

	return pkgName, nil
}

// Load reads and parses <name>/index.toml.
func (r *Registry) Load(name string) (*Entry, error) {
	data, err := fs.ReadFile(r.fsys, path.Join(name, "index.toml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrNotFound, name)
		}
		return nil, fmt.Errorf("registry: reading '%s': %w", name, err)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}

	return &entry, nil
}

// Available lists the library names with an entry
func (r *Registry) Available() []string {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

//go:build linux || darwin || freebsd

package probe

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Load opens the library at path, looks up symbols, and closes it again.
func Load(path string, symbols ...string) (*Report, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen: %w", err)
	}
	if lib == 0 {
		return nil, fmt.Errorf("dlopen %s: no handle", path)
	}
	defer purego.Dlclose(lib)

	r := &Report{Path: path}
	for _, name := range symbols {
		if _, err := purego.Dlsym(lib, name); err != nil {
			r.Missing = append(r.Missing, name)
			continue
		}
		r.Symbols = append(r.Symbols, name)
	}
	return r, nil
}

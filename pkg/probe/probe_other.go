//go:build !(linux || darwin || freebsd)

package probe

// Load returns ErrUnsupported on systems which do not support dlopen.
func Load(path string, symbols ...string) (*Report, error) {
	return nil, ErrUnsupported
}

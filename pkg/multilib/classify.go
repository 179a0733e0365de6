// pkg/multilib/classify.go
package multilib

import "github.com/spf13/afero"

// Classification describes the Debian/Ubuntu style multilib layout of a host.
type Classification int

const (
	// NoMultilib means neither multilib directory exists
	NoMultilib Classification = iota
	// Pure32 means only the 32-bit multilib directory exists
	Pure32
	// Pure64 means only the 64-bit multilib directory exists
	Pure64
	// DualMultilib means both directories exist
	DualMultilib
)

func (c Classification) String() string {
	switch c {
	case Pure32:
		return "pure 32-bit"
	case Pure64:
		return "pure 64-bit"
	case DualMultilib:
		return "multilib"
	default:
		return "no multilib"
	}
}

// Classify maps the presence of the two multilib directories to a Classification.
func Classify(has32, has64 func() bool) Classification {
	h32, h64 := has32(), has64()
	switch {
	case h32 && !h64:
		return Pure32
	case !h32 && h64:
		return Pure64
	case h32 && h64:
		return DualMultilib
	default:
		return NoMultilib
	}
}

// DirChecker tests for directories on a filesystem.
type DirChecker struct {
	Fs afero.Fs
}

// IsDir reports whether path is a directory. Any error counts as absent.
func (d DirChecker) IsDir(path string) bool {
	info, err := d.Fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists returns a predicate checking for the directory at path.
func (d DirChecker) Exists(path string) func() bool {
	return func() bool { return d.IsDir(path) }
}

// Detect classifies the host using the directories in layout.
func Detect(fs afero.Fs, layout Layout) Classification {
	d := DirChecker{Fs: fs}
	return Classify(d.Exists(layout.Dir32), d.Exists(layout.Dir64))
}

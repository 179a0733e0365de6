// pkg/platform/detect.go
package platform

import (
	"fmt"
	"strings"
)

// GNULinuxPrefix is the operating system name prefix reported by GNU/Linux hosts.
const GNULinuxPrefix = "Linux"

// Environment exposes the host properties the resolver depends on.
type Environment interface {
	// OSName returns the operating system name, e.g. "Linux". Empty if unknown.
	OSName() string

	// LibraryPath returns the colon separated native library search path.
	LibraryPath() (string, bool)

	// Arch returns the architecture token of the running process, e.g. "amd64".
	Arch() (string, bool)
}

// ShouldApplyFix reports whether osName identifies a GNU/Linux system.
func ShouldApplyFix(osName string) bool {
	return osName != "" && strings.HasPrefix(osName, GNULinuxPrefix)
}

// Platform represents the detected system platform
type Platform struct {
	OS          string // Linux, Windows 10, Mac OS X
	Arch        string // amd64, i386, aarch64
	LibraryPath string // native library search path, empty if unset
	Supported   bool   // whether the library fix applies
}

// Detect summarizes the platform reported by env
func Detect(env Environment) *Platform {
	p := &Platform{
		OS:        env.OSName(),
		Supported: ShouldApplyFix(env.OSName()),
	}
	if arch, ok := env.Arch(); ok {
		p.Arch = arch
	}
	if path, ok := env.LibraryPath(); ok {
		p.LibraryPath = path
	}
	return p
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	os := p.OS
	if os == "" {
		os = "unknown"
	}
	arch := p.Arch
	if arch == "" {
		arch = "unknown"
	}
	return fmt.Sprintf("%s/%s (supported: %t)", os, arch, p.Supported)
}

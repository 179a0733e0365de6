// pkg/multilib/layout.go
package multilib

const (
	// Dir32 is the Ubuntu multilib directory for 32-bit x86 libraries
	Dir32 = "/lib/i386-linux-gnu"
	// Dir64 is the Ubuntu multilib directory for 64-bit x86 libraries
	Dir64 = "/lib/x86_64-linux-gnu"
	// Arch32 is the process architecture token selecting Dir32 on a multilib host
	Arch32 = "i386"
	// Arch64 is the process architecture token selecting Dir64 on a multilib host
	Arch64 = "amd64"
)

// Layout names the multilib directories and the architecture tokens that select them.
type Layout struct {
	Dir32  string `yaml:"dir32"`
	Dir64  string `yaml:"dir64"`
	Arch32 string `yaml:"arch32"`
	Arch64 string `yaml:"arch64"`
}

// DefaultLayout returns the Debian/Ubuntu x86 layout
func DefaultLayout() Layout {
	return Layout{
		Dir32:  Dir32,
		Dir64:  Dir64,
		Arch32: Arch32,
		Arch64: Arch64,
	}
}

// WithDefaults fills empty fields from DefaultLayout
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	if l.Dir32 == "" {
		l.Dir32 = d.Dir32
	}
	if l.Dir64 == "" {
		l.Dir64 = d.Dir64
	}
	if l.Arch32 == "" {
		l.Arch32 = d.Arch32
	}
	if l.Arch64 == "" {
		l.Arch64 = d.Arch64
	}
	return l
}

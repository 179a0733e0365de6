// resolver.go
package libresolve

import (
	"github.com/arc-language/libresolve/pkg/library"
	"github.com/arc-language/libresolve/pkg/logging"
	"github.com/arc-language/libresolve/pkg/multilib"
	"github.com/arc-language/libresolve/pkg/platform"
	"github.com/arc-language/libresolve/pkg/property"
	"github.com/spf13/afero"
)

const (
	// PCSCLibraryName is the base name of the PC/SC lite library
	PCSCLibraryName = "pcsclite"
	// PCSCLibraryVersion is the soname version the smart card bootstrap needs
	PCSCLibraryVersion = 1
)

// Re-export core types for convenience
type (
	Classification = multilib.Classification
	Layout         = multilib.Layout
	Result         = library.Result
	Environment    = platform.Environment
	Slot           = property.Slot
	Logger         = logging.Logger
)

// Outcome describes what a single Fix call did
type Outcome struct {
	OSName         string                  // Operating system name that was checked
	Applied        bool                    // Whether the platform gate let the fix run
	Classification multilib.Classification // Multilib layout of the host
	OriginalPath   string                  // Library search path before augmentation
	SearchPath     string                  // Library search path that was scanned
	FileName       string                  // Versioned file name that was looked for
	Result         library.Result          // Scan result
	Published      bool                    // Whether the slot was written
}

// Resolver locates a versioned shared library and publishes its path.
type Resolver struct {
	env    platform.Environment
	fs     afero.Fs
	slot   property.Slot
	logger logging.Logger
	layout multilib.Layout
	query  library.Query
}

// Option configures a Resolver
type Option func(*Resolver)

// WithEnvironment sets the host environment provider
func WithEnvironment(env platform.Environment) Option {
	return func(r *Resolver) { r.env = env }
}

// WithFs sets the filesystem used for directory and file checks
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithSlot sets the configuration slot receiving the library path
func WithSlot(slot property.Slot) Option {
	return func(r *Resolver) { r.slot = slot }
}

// WithLogger sets the diagnostic logger
func WithLogger(l logging.Logger) Option {
	return func(r *Resolver) { r.logger = logging.OrNop(l) }
}

// WithLayout sets the multilib directories and architecture tokens
func WithLayout(l multilib.Layout) Option {
	return func(r *Resolver) { r.layout = l.WithDefaults() }
}

// WithLibrary sets the library base name and required version
func WithLibrary(baseName string, version int) Option {
	return func(r *Resolver) {
		r.query.BaseName = baseName
		r.query.Version = version
	}
}

// New creates a resolver for libpcsclite.so.1 on the running host. Without
// WithSlot, the path is published to the DefaultSlotName environment variable.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		fs:     afero.NewOsFs(),
		logger: logging.Nop,
		layout: multilib.DefaultLayout(),
		query: library.Query{
			BaseName: PCSCLibraryName,
			Version:  PCSCLibraryVersion,
			GOOS:     "linux",
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.env == nil {
		r.env = platform.System(platform.SystemOptions{})
	}
	if r.slot == nil {
		slot, _ := property.NewEnv(property.DefaultName)
		r.slot = slot
	}
	return r
}

// Fix runs the resolver: on GNU/Linux it finds the library and publishes its
// path into the slot. On any other platform it does nothing.
func (r *Resolver) Fix() Outcome {
	osName := r.env.OSName()
	out := Outcome{OSName: osName, FileName: r.query.FileName()}

	if !platform.ShouldApplyFix(osName) {
		r.logger.Debugf("OS is [%s]. Not Enabling PCSC library fix.", osName)
		return out
	}
	r.logger.Debugf("OS is [%s]. Enabling PCSC library fix.", osName)
	out.Applied = true

	out.Result = r.find(&out, r.logger)
	if out.Result.Found {
		out.Published = property.Publish(out.Result, r.slot, r.logger)
	}
	return out
}

// Scan augments the search path like Fix does and reports every candidate,
// without publishing anything.
func (r *Resolver) Scan() (Outcome, []library.Candidate) {
	osName := r.env.OSName()
	out := Outcome{OSName: osName, FileName: r.query.FileName()}
	if !platform.ShouldApplyFix(osName) {
		return out, nil
	}
	out.Applied = true

	out.Result = r.find(&out, logging.Nop)
	return out, library.NewScanner(r.fs, logging.Nop).Candidates(out.SearchPath, r.query)
}

// Classify reports the multilib layout of the host
func (r *Resolver) Classify() multilib.Classification {
	return multilib.Detect(r.fs, r.layout)
}

// Slot returns the slot the resolver publishes to
func (r *Resolver) Slot() property.Slot {
	return r.slot
}

func (r *Resolver) find(out *Outcome, logger logging.Logger) library.Result {
	path, ok := r.env.LibraryPath()
	if !ok {
		logger.Debugf("Library path is not set")
		return library.NotFound
	}
	out.OriginalPath = path
	logger.Debugf("Original Path=[%s]", path)

	logger.Debugf("Looking for Ubuntu-style multilib installation.")
	out.Classification = multilib.Detect(r.fs, r.layout)
	arch, hasArch := r.env.Arch()
	out.SearchPath = multilib.Augment(path, out.Classification, arch, hasArch, r.layout, logger)
	logger.Debugf("Path after Ubuntu multilib Fixes=[%s]", out.SearchPath)

	return library.NewScanner(r.fs, logger).Find(out.SearchPath, r.query)
}

// FixNativeLibrary makes libpcsclite.so.1 loadable on GNU/Linux hosts lacking
// the unversioned libpcsclite.so link, by publishing its absolute path to the
// DefaultSlotName environment variable. It does nothing on other platforms.
func FixNativeLibrary() Outcome {
	return New().Fix()
}

// FixNativeLibraryWithLogger is FixNativeLibrary with diagnostics sent to l.
func FixNativeLibraryWithLogger(l logging.Logger) Outcome {
	return New(WithLogger(l)).Fix()
}

// DefaultSlotName is the environment variable FixNativeLibrary publishes to
const DefaultSlotName = property.DefaultName

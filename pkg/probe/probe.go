// Package probe checks that a resolved shared library can actually be loaded.
// It is used for verification only; the resolver itself never loads anything.
package probe

import "errors"

// ErrUnsupported is returned on platforms without dlopen support
var ErrUnsupported = errors.New("probe: unsupported platform")

// Report describes a successful load
type Report struct {
	Path    string   // Library that was loaded
	Symbols []string // Requested symbols that resolved
	Missing []string // Requested symbols that did not resolve
}

// PCSCSymbols are entry points every libpcsclite build exports
var PCSCSymbols = []string{
	"SCardEstablishContext",
	"SCardReleaseContext",
	"SCardListReaders",
	"SCardConnect",
	"SCardTransmit",
}

// pkg/library/nix.go
package library

import (
	"strings"

	"zombiezen.com/go/nix"
)

// nixStoreDir is the default Nix store location
const nixStoreDir = "/nix/store/"

// nixProvider returns the name of the Nix store object containing dir, e.g.
// "pcsclite-2.0.0-lib" for /nix/store/<digest>-pcsclite-2.0.0-lib/lib.
// It returns "" for directories outside the store.
func nixProvider(dir string) string {
	rest, ok := strings.CutPrefix(dir, nixStoreDir)
	if !ok {
		return ""
	}
	base, _, _ := strings.Cut(rest, "/")
	storePath, err := nix.ParseStorePath(nixStoreDir + base)
	if err != nil {
		return ""
	}
	return storePath.Name()
}

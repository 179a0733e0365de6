// internal/cli/hint.go
package cli

import (
	"fmt"

	"github.com/arc-language/libresolve/pkg/platform"
	"github.com/arc-language/libresolve/pkg/registry"
	"github.com/spf13/afero"
)

// installHint names the distribution package that ships the library, or "" if unknown.
func installHint(fs afero.Fs, reg *registry.Registry, name, fileName string) string {
	distro := platform.DetectDistribution(fs)
	backend := distro.Backend()
	if backend == "" {
		logger.Debugf("No package hint: unknown distribution %s", distro)
		return ""
	}

	pkg, err := reg.Resolve(name, backend)
	if err != nil {
		logger.Debugf("No package hint: %v", err)
		return ""
	}
	return fmt.Sprintf("%s is shipped by the %s package %q on %s", fileName, backend, pkg, distro)
}

// internal/cli/host.go
package cli

import (
	"fmt"

	"github.com/arc-language/libresolve/pkg/platform"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show the detected platform and multilib layout",
	Args:  cobra.NoArgs,
	RunE:  runHost,
}

func runHost(cmd *cobra.Command, args []string) error {
	r, err := newResolver(cmd)
	if err != nil {
		return err
	}

	plat := platform.Detect(environment(cmd))
	w := out(cmd)

	fmt.Fprintf(w, "Platform: %s\n", plat)
	fmt.Fprintf(w, "Library path: %s\n", plat.LibraryPath)
	if !plat.Supported {
		return nil
	}
	fmt.Fprintf(w, "Distribution: %s\n", platform.DetectDistribution(afero.NewOsFs()))
	fmt.Fprintf(w, "Multilib: %s\n", r.Classify())
	fmt.Fprintf(w, "  32-bit dir: %s\n", config.Multilib.Dir32)
	fmt.Fprintf(w, "  64-bit dir: %s\n", config.Multilib.Dir64)
	return nil
}

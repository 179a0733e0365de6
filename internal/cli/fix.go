// internal/cli/fix.go
package cli

import (
	"fmt"
	"strings"

	"github.com/arc-language/libresolve/pkg/registry"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	fixExport bool
	fixStrict bool
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Resolve the library and print its path",
	Long: `Resolve the versioned library and print its absolute path.

Nothing is printed when the host is not GNU/Linux or the library is not found.

Examples:
  libresolve fix
  libresolve fix --export          # prints: export SMARTCARDIO_LIBRARY='/usr/lib/libpcsclite.so.1'
  eval "$(libresolve fix --export)"
  libresolve fix --library ccid --version-suffix 0`,
	Args: cobra.NoArgs,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&fixExport, "export", false, "print a shell export statement")
	fixCmd.Flags().BoolVar(&fixStrict, "strict", false, "fail when the library is not resolved")
}

func runFix(cmd *cobra.Command, args []string) error {
	r, err := newResolver(cmd)
	if err != nil {
		return err
	}

	outcome := r.Fix()
	if !outcome.Published {
		logger.Infof("%s not resolved, leaving %s unchanged", outcome.FileName, r.Slot().Name())
		if outcome.Applied {
			if hint := installHint(afero.NewOsFs(), registry.Default(), config.Library, outcome.FileName); hint != "" {
				logger.Info(hint)
			}
		}
		if fixStrict {
			return outcome.Err()
		}
		return nil
	}

	if fixExport {
		fmt.Fprintf(out(cmd), "export %s=%s\n", r.Slot().Name(), shellQuote(outcome.Result.Path))
		return nil
	}
	fmt.Fprintln(out(cmd), outcome.Result.Path)
	return nil
}

// shellQuote quotes s for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

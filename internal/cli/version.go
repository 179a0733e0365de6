// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(out(cmd), "libresolve version %s\n", version)
		fmt.Fprintln(out(cmd), "Native shared library resolver")
		fmt.Fprintln(out(cmd), "https://github.com/arc-language/libresolve")
	},
}

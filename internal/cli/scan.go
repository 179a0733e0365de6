// internal/cli/scan.go
package cli

import (
	"fmt"

	"github.com/arc-language/libresolve/pkg/registry"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show every directory searched for the library",
	Long:  `List the search path after multilib augmentation and whether each directory holds the library.`,
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	r, err := newResolver(cmd)
	if err != nil {
		return err
	}

	outcome, candidates := r.Scan()
	w := out(cmd)

	fmt.Fprintf(w, "OS: %s\n", outcome.OSName)
	if !outcome.Applied {
		fmt.Fprintf(w, "Not a GNU/Linux system, nothing to scan\n")
		return nil
	}
	fmt.Fprintf(w, "Library: %s\n", outcome.FileName)
	fmt.Fprintf(w, "Multilib: %s\n", outcome.Classification)
	fmt.Fprintf(w, "Original path: %s\n", outcome.OriginalPath)
	fmt.Fprintf(w, "Search path: %s\n\n", outcome.SearchPath)

	for _, c := range candidates {
		marker := " "
		if c.Exists {
			marker = "*"
		}
		if outcome.Result.Found && c.Dir == outcome.Result.Dir {
			marker = ">"
		}
		line := fmt.Sprintf("  %s %s", marker, c.Dir)
		if c.Provider != "" {
			line += fmt.Sprintf(" (nix: %s)", c.Provider)
		}
		fmt.Fprintln(w, line)
	}

	if outcome.Result.Found {
		fmt.Fprintf(w, "\n> = selected: %s\n", outcome.Result.Path)
	} else {
		fmt.Fprintf(w, "\n%s not found\n", outcome.FileName)
		if hint := installHint(afero.NewOsFs(), registry.Default(), config.Library, outcome.FileName); hint != "" {
			fmt.Fprintln(w, hint)
		}
	}
	return nil
}

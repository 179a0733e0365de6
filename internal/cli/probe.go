// internal/cli/probe.go
package cli

import (
	"fmt"

	"github.com/arc-language/libresolve/pkg/probe"
	"github.com/spf13/cobra"
)

var probeSymbols []string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Resolve the library and check that it loads",
	Long: `Resolve the library, then dlopen it and look up symbols to confirm the
file is a loadable shared object for this process.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringSliceVar(&probeSymbols, "symbol", probe.PCSCSymbols, "symbols to look up")
}

func runProbe(cmd *cobra.Command, args []string) error {
	r, err := newResolver(cmd)
	if err != nil {
		return err
	}

	outcome, _ := r.Scan()
	if err := outcome.Err(); err != nil {
		return err
	}

	report, err := probe.Load(outcome.Result.Path, probeSymbols...)
	if err != nil {
		return fmt.Errorf("loading %s: %w", outcome.Result.Path, err)
	}

	w := out(cmd)
	fmt.Fprintf(w, "Loaded %s\n", report.Path)
	for _, s := range report.Symbols {
		fmt.Fprintf(w, "  ✓ %s\n", s)
	}
	for _, s := range report.Missing {
		fmt.Fprintf(w, "  ✗ %s\n", s)
	}
	if len(report.Missing) > 0 {
		return fmt.Errorf("%d of %d symbols missing", len(report.Missing), len(probeSymbols))
	}
	return nil
}

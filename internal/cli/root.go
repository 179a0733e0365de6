// internal/cli/root.go
package cli

import (
	"fmt"
	"io"

	"github.com/arc-language/libresolve"
	"github.com/arc-language/libresolve/pkg/core"
	"github.com/arc-language/libresolve/pkg/platform"
	"github.com/arc-language/libresolve/pkg/property"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	debug         bool
	libraryName   string
	versionSuffix int
	slotName      string
	osOverride    string
	archOverride  string
	pathOverride  string
	config        *core.Config
	logger        = logrus.New()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "libresolve",
	Short: "Native shared library resolver",
	Long: `libresolve - Native shared library resolver

Locates a versioned shared library such as libpcsclite.so.1 across GNU/Linux
distribution layouts (including Debian/Ubuntu multilib) and publishes its
absolute path, for hosts that lack the unversioned libpcsclite.so link.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/libresolve/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&libraryName, "library", "", "library base name (default pcsclite)")
	rootCmd.PersistentFlags().IntVar(&versionSuffix, "version-suffix", -1, "required library version suffix (default 1)")
	rootCmd.PersistentFlags().StringVar(&slotName, "slot", "", "environment variable receiving the library path")
	rootCmd.PersistentFlags().StringVar(&osOverride, "os", "", "operating system name to assume")
	rootCmd.PersistentFlags().StringVar(&archOverride, "arch", "", "process architecture token to assume (i386, amd64)")
	rootCmd.PersistentFlags().StringVar(&pathOverride, "path", "", "library search path to use instead of the environment")

	// Add commands
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	logger.SetOutput(cmd.ErrOrStderr())

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if libraryName != "" {
		config.Library = libraryName
	}
	if versionSuffix >= 0 {
		config.Version = versionSuffix
	}
	if slotName != "" {
		config.Slot = slotName
	}
	if debug {
		config.Debug = true
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if config.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return nil
}

// environment returns the host environment with command line overrides applied
func environment(cmd *cobra.Command) platform.Environment {
	env := platform.System(config.SystemOptions())
	o := platform.Static{Name: osOverride, Token: archOverride, HasArch: archOverride != ""}
	if cmd.Flags().Changed("path") {
		o.Path, o.HasPath = pathOverride, true
	}
	return platform.Override(env, o)
}

// newResolver builds a resolver from the loaded config
func newResolver(cmd *cobra.Command) (*libresolve.Resolver, error) {
	slot, err := property.NewEnv(config.Slot)
	if err != nil {
		return nil, err
	}
	return libresolve.New(
		libresolve.WithEnvironment(environment(cmd)),
		libresolve.WithSlot(slot),
		libresolve.WithLogger(logger),
		libresolve.WithLayout(config.Multilib),
		libresolve.WithLibrary(config.Library, config.Version),
	), nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

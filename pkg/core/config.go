// pkg/core/config.go
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arc-language/libresolve/pkg/multilib"
	"github.com/arc-language/libresolve/pkg/platform"
	"github.com/arc-language/libresolve/pkg/property"
	"gopkg.in/yaml.v3"
)

// ConfigEnv overrides the default config file location
const ConfigEnv = "LIBRESOLVE_CONFIG"

// ErrInvalidConfig indicates the configuration is invalid
var ErrInvalidConfig = errors.New("invalid config")

// Config holds libresolve configuration
type Config struct {
	Library        string          `yaml:"library"`
	Version        int             `yaml:"version"`
	Slot           string          `yaml:"slot"`
	LibraryPathEnv string          `yaml:"library_path_env"`
	NoDefaultDirs  bool            `yaml:"no_default_dirs"`
	OSName         string          `yaml:"os_name,omitempty"`
	Arch           string          `yaml:"arch,omitempty"`
	Multilib       multilib.Layout `yaml:"multilib"`
	Debug          bool            `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Library:        "pcsclite",
		Version:        1,
		Slot:           property.DefaultName,
		LibraryPathEnv: platform.DefaultLibraryPathEnv,
		Multilib:       multilib.DefaultLayout(),
	}
}

// DefaultPath returns the config file used when none is given
func DefaultPath() (string, error) {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "libresolve", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Multilib = cfg.Multilib.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the resolver cannot use
func (c *Config) Validate() error {
	if c.Library == "" {
		return fmt.Errorf("%w: library name is required", ErrInvalidConfig)
	}
	if c.Version < 0 {
		return fmt.Errorf("%w: version must not be negative, got %d", ErrInvalidConfig, c.Version)
	}
	if err := property.ValidateName(c.Slot); err != nil {
		return fmt.Errorf("%w: slot: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SystemOptions returns the host environment options described by c
func (c *Config) SystemOptions() platform.SystemOptions {
	return platform.SystemOptions{
		LibraryPathEnv: c.LibraryPathEnv,
		OSName:         c.OSName,
		Arch:           c.Arch,
		NoDefaultDirs:  c.NoDefaultDirs,
	}
}

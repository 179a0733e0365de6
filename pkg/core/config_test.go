package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arc-language/libresolve/pkg/multilib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
library: ccid
version: 2
multilib:
  dir64: /lib/aarch64-linux-gnu
  arch64: aarch64
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ccid", cfg.Library)
	assert.Equal(t, 2, cfg.Version)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "SMARTCARDIO_LIBRARY", cfg.Slot)
	assert.Equal(t, "LD_LIBRARY_PATH", cfg.LibraryPathEnv)
	assert.Equal(t, multilib.Layout{
		Dir32:  multilib.Dir32,
		Dir64:  "/lib/aarch64-linux-gnu",
		Arch32: multilib.Arch32,
		Arch64: "aarch64",
	}, cfg.Multilib)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty library":    "library: \"\"\n",
		"negative version": "version: -1\n",
		"bad slot":         "slot: \"A=B\"\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Arch = "i386"

	require.NoError(t, SaveConfig(cfg, path))
	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(ConfigEnv, "/etc/libresolve.yaml")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/libresolve.yaml", path)
}

func TestSystemOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OSName = "Linux"
	cfg.NoDefaultDirs = true

	opts := cfg.SystemOptions()
	assert.Equal(t, "Linux", opts.OSName)
	assert.Equal(t, "LD_LIBRARY_PATH", opts.LibraryPathEnv)
	assert.True(t, opts.NoDefaultDirs)
}

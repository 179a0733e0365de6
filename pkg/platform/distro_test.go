package platform

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDistribution(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `# comment
NAME="Ubuntu"
PRETTY_NAME="Ubuntu 22.04.4 LTS"
ID=ubuntu
ID_LIKE=debian
`
	require.NoError(t, afero.WriteFile(fs, OSReleasePath, []byte(data), 0o644))

	d := DetectDistribution(fs)

	assert.Equal(t, Distribution{ID: "ubuntu", Like: []string{"debian"}, Name: "Ubuntu 22.04.4 LTS"}, d)
	assert.Equal(t, "apt", d.Backend())
	assert.Equal(t, "Ubuntu 22.04.4 LTS", d.String())
}

func TestDetectDistribution_Missing(t *testing.T) {
	d := DetectDistribution(afero.NewMemMapFs())

	assert.Equal(t, Distribution{}, d)
	assert.Equal(t, "", d.Backend())
	assert.Equal(t, "unknown", d.String())
}

func TestDistribution_Backend(t *testing.T) {
	tests := []struct {
		d    Distribution
		want string
	}{
		{Distribution{ID: "fedora"}, "dnf"},
		{Distribution{ID: "rocky", Like: []string{"rhel", "centos", "fedora"}}, "dnf"},
		{Distribution{ID: "opensuse-tumbleweed", Like: []string{"opensuse", "suse"}}, "zypper"},
		{Distribution{ID: "manjaro", Like: []string{"arch"}}, "pacman"},
		{Distribution{ID: "alpine"}, "apk"},
		{Distribution{ID: "nixos"}, "nix"},
		{Distribution{ID: "gentoo"}, ""},
		{Distribution{ID: "elementary", Like: []string{"ubuntu", "debian"}}, "apt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Backend(), "id=%s", tt.d.ID)
	}
}

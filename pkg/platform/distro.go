// pkg/platform/distro.go
package platform

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/spf13/afero"
)

// OSReleasePath is the os-release file read by DetectDistribution
const OSReleasePath = "/etc/os-release"

// Distribution identifies a GNU/Linux distribution from os-release
type Distribution struct {
	ID   string   // e.g. "ubuntu"
	Like []string // e.g. ["debian"]
	Name string   // e.g. "Ubuntu 22.04.4 LTS"
}

// DetectDistribution reads os-release from fs. Unreadable files yield the zero value.
func DetectDistribution(fs afero.Fs) Distribution {
	data, err := afero.ReadFile(fs, OSReleasePath)
	if err != nil {
		return Distribution{}
	}
	return parseOSRelease(data)
}

func parseOSRelease(data []byte) Distribution {
	var d Distribution
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "ID":
			d.ID = strings.ToLower(value)
		case "ID_LIKE":
			d.Like = strings.Fields(strings.ToLower(value))
		case "PRETTY_NAME":
			d.Name = value
		}
	}
	return d
}

// Backend returns the package manager family of the distribution, e.g. "apt".
// It returns "" when the distribution is unknown.
func (d Distribution) Backend() string {
	for _, id := range append([]string{d.ID}, d.Like...) {
		switch id {
		case "debian", "ubuntu", "linuxmint", "pop", "raspbian":
			return "apt"
		case "fedora", "rhel", "centos", "rocky", "almalinux":
			return "dnf"
		case "opensuse", "opensuse-leap", "opensuse-tumbleweed", "sles", "suse":
			return "zypper"
		case "arch", "manjaro", "endeavouros":
			return "pacman"
		case "alpine":
			return "apk"
		case "nixos":
			return "nix"
		}
	}
	return ""
}

// String returns a string representation of the distribution
func (d Distribution) String() string {
	switch {
	case d.Name != "":
		return d.Name
	case d.ID != "":
		return d.ID
	default:
		return "unknown"
	}
}

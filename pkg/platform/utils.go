// pkg/platform/utils.go
package platform

import (
	"runtime"
	"strings"
)

// archToken maps a Go architecture name to the token a JVM reports for it.
func archToken(goarch string) string {
	switch goarch {
	case "386":
		return "i386"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

// is64Bit reports whether goarch is a 64-bit architecture
func is64Bit(goarch string) bool {
	switch goarch {
	case "amd64", "arm64", "ppc64", "ppc64le", "mips64", "mips64le", "riscv64", "s390x", "loong64", "sparc64":
		return true
	}
	return false
}

// defaultLibraryDirs returns the directories a JVM appends to the user library path on Linux.
func defaultLibraryDirs(goarch string) []string {
	if is64Bit(goarch) {
		return []string{"/usr/lib64", "/lib64", "/lib", "/usr/lib"}
	}
	return []string{"/lib", "/usr/lib"}
}

// joinPath joins non-empty entries with the path list separator
func joinPath(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ":")
}

// displayName returns the operating system name for hosts without uname(2).
func displayName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "Mac OS X"
	case "linux":
		return GNULinuxPrefix
	case "":
		return ""
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}

func currentArch() string {
	return archToken(runtime.GOARCH)
}

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package platform

import "runtime"

// osName returns the operating system name on hosts without uname(2).
func osName() string {
	return displayName(runtime.GOOS)
}

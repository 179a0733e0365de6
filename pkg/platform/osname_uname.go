//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// osName returns the kernel name reported by uname(2).
func osName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return displayName(runtime.GOOS)
	}
	if name := unix.ByteSliceToString(uts.Sysname[:]); name != "" {
		return name
	}
	return displayName(runtime.GOOS)
}

// pkg/multilib/augment.go
package multilib

import (
	"strings"

	"github.com/arc-language/libresolve/pkg/logging"
)

// Separator delimits entries in a library search path
const Separator = ":"

// Extend returns path with dir appended, unless dir already occurs in path.
func Extend(path, dir string) string {
	if strings.Contains(path, dir) {
		return path
	}
	return path + Separator + dir
}

// Augment appends the multilib directory matching class to path.
//
// On a DualMultilib host the process architecture picks the directory. An
// absent or unrecognized architecture leaves path unchanged.
func Augment(path string, class Classification, arch string, hasArch bool, layout Layout, logger logging.Logger) string {
	logger = logging.OrNop(logger)

	switch class {
	case Pure32:
		logger.Debugf("pure 32-bit Ubuntu detected, using 32-bit multilib path: %s", layout.Dir32)
		return Extend(path, layout.Dir32)

	case Pure64:
		logger.Debugf("pure 64-bit Ubuntu detected, using 64-bit multilib path: %s", layout.Dir64)
		return Extend(path, layout.Dir64)

	case DualMultilib:
		logger.Debugf("Multilib Ubuntu detected. Using process bitness.")
		if !hasArch {
			logger.Debugf("Process bitness unknown, leaving path unchanged")
			return path
		}

		logger.Debugf("Process bitness is [%s]", arch)
		switch arch {
		case layout.Arch32:
			logger.Debugf("32-bit process, using 32-bit multilib path: %s", layout.Dir32)
			return Extend(path, layout.Dir32)
		case layout.Arch64:
			logger.Debugf("64-bit process, using 64-bit multilib path: %s", layout.Dir64)
			return Extend(path, layout.Dir64)
		}
		logger.Debugf("Unrecognized bitness [%s], leaving path unchanged", arch)

	default:
		logger.Debugf("Did not find Ubuntu-style multilib.")
	}
	return path
}

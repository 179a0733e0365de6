// pkg/property/publish.go
package property

import (
	"github.com/arc-language/libresolve/pkg/library"
	"github.com/arc-language/libresolve/pkg/logging"
)

// Publish writes the found library path into slot. A miss leaves slot untouched.
func Publish(res library.Result, slot Slot, logger logging.Logger) bool {
	if !res.Found {
		return false
	}
	logging.OrNop(logger).Debugf("Setting [%s] to [%s]", slot.Name(), res.Path)
	slot.Set(res.Path)
	return true
}

// errors.go
package libresolve

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotFound indicates the library is in none of the search path directories
	ErrLibraryNotFound = errors.New("library not found")

	// ErrPlatformNotSupported indicates the platform is not GNU/Linux
	ErrPlatformNotSupported = errors.New("platform not supported")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Library string // Library file name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Library != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Library, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Err converts an outcome into an error for callers that need one. It returns
// nil when the library was found.
func (o Outcome) Err() error {
	switch {
	case !o.Applied:
		return &Error{Op: "resolve", Library: o.FileName, Err: fmt.Errorf("%w: %s", ErrPlatformNotSupported, o.OSName)}
	case !o.Result.Found:
		return &Error{Op: "resolve", Library: o.FileName, Err: ErrLibraryNotFound}
	}
	return nil
}

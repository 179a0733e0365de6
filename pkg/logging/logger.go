// pkg/logging/logger.go
package logging

import (
	"log"
	"reflect"
)

// Logger receives diagnostic lines from the resolver. It has a single level.
// *logrus.Logger and similar leveled loggers satisfy it directly.
type Logger interface {
	Debugf(format string, args ...any)
}

type nop struct{}

func (nop) Debugf(string, ...any) {}

// Nop discards everything. It is the default when no logger is supplied.
var Nop Logger = nop{}

// OrNop returns l, or Nop if l is nil or a nil pointer.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop
	}
	if v := reflect.ValueOf(l); v.Kind() == reflect.Pointer && v.IsNil() {
		return Nop
	}
	return l
}

type stdLogger struct {
	l *log.Logger
}

// Std adapts a standard library *log.Logger.
func Std(l *log.Logger) Logger {
	if l == nil {
		return Nop
	}
	return &stdLogger{l: l}
}

func (s *stdLogger) Debugf(format string, args ...any) {
	s.l.Printf(format, args...)
}

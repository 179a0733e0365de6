// pkg/property/slot.go
package property

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// DefaultName is the slot read by the smart card bootstrap to locate libpcsclite
const DefaultName = "SMARTCARDIO_LIBRARY"

// ErrInvalidName indicates a slot name that cannot be used as an environment variable
var ErrInvalidName = errors.New("invalid slot name")

// Slot is a named string configuration value
type Slot interface {
	// Name returns the slot name
	Name() string

	// Get returns the current value and whether one is set
	Get() (string, bool)

	// Set replaces the current value
	Set(value string)
}

// Memory is a Slot held in process memory.
type Memory struct {
	name  string
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemory creates an unset in-memory slot
func NewMemory(name string) *Memory {
	return &Memory{name: name}
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set
}

func (m *Memory) Set(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.set = value, true
}

// Env is a Slot backed by a process environment variable.
type Env struct {
	name string
}

// NewEnv returns the slot for the environment variable name
func NewEnv(name string) (*Env, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Env{name: name}, nil
}

// ValidateName checks that name is usable as an environment variable
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, "=\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (e *Env) Name() string { return e.name }

func (e *Env) Get() (string, bool) {
	return os.LookupEnv(e.name)
}

// Set exports value to the process environment.
func (e *Env) Set(value string) {
	_ = os.Setenv(e.name, value)
}

package property_test

import (
	"os"
	"testing"

	"github.com/arc-language/libresolve/pkg/library"
	"github.com/arc-language/libresolve/pkg/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := property.NewMemory("slot")

	_, ok := m.Get()
	assert.False(t, ok)

	m.Set("/usr/lib/libpcsclite.so.1")
	v, ok := m.Get()
	require.True(t, ok)
	assert.Equal(t, "/usr/lib/libpcsclite.so.1", v)
	assert.Equal(t, "slot", m.Name())
}

func TestEnv(t *testing.T) {
	t.Setenv("LIBRESOLVE_TEST_SLOT", "")
	require.NoError(t, os.Unsetenv("LIBRESOLVE_TEST_SLOT"))

	e, err := property.NewEnv("LIBRESOLVE_TEST_SLOT")
	require.NoError(t, err)

	_, ok := e.Get()
	assert.False(t, ok)

	e.Set("/lib/x86_64-linux-gnu/libpcsclite.so.1")
	assert.Equal(t, "/lib/x86_64-linux-gnu/libpcsclite.so.1", os.Getenv("LIBRESOLVE_TEST_SLOT"))
}

func TestNewEnv_InvalidName(t *testing.T) {
	for _, name := range []string{"", "A=B", "A\x00B"} {
		_, err := property.NewEnv(name)
		assert.ErrorIs(t, err, property.ErrInvalidName, "name=%q", name)
	}
}

func TestPublish_Found(t *testing.T) {
	m := property.NewMemory(property.DefaultName)

	ok := property.Publish(library.Result{Found: true, Path: "/usr/lib/libpcsclite.so.1"}, m, nil)

	assert.True(t, ok)
	v, _ := m.Get()
	assert.Equal(t, "/usr/lib/libpcsclite.so.1", v)
}

func TestPublish_NotFoundKeepsPreviousValue(t *testing.T) {
	m := property.NewMemory(property.DefaultName)
	m.Set("/opt/previous/libpcsclite.so.1")

	ok := property.Publish(library.NotFound, m, nil)

	assert.False(t, ok)
	v, set := m.Get()
	assert.True(t, set)
	assert.Equal(t, "/opt/previous/libpcsclite.so.1", v)
}

func TestPublish_NotFoundLeavesUnset(t *testing.T) {
	m := property.NewMemory(property.DefaultName)

	property.Publish(library.NotFound, m, nil)

	_, set := m.Get()
	assert.False(t, set)
}

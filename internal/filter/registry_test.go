package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	fn := func(w, h uint32, pix []byte, params string) Status { return StatusOK }

	Register("test-noop", fn)
	defer Unregister("test-noop")

	got, ok := Lookup("test-noop")
	require.True(t, ok)
	assert.Equal(t, StatusOK, got(1, 1, make([]byte, 4), "{}"))
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, ok := Lookup("no-such-filter")
	assert.False(t, ok)
}

func TestRegistry_NamesSorted(t *testing.T) {
	Register("zz-test", func(w, h uint32, pix []byte, params string) Status { return StatusOK })
	Register("aa-test", func(w, h uint32, pix []byte, params string) Status { return StatusOK })
	defer Unregister("zz-test")
	defer Unregister("aa-test")

	names := Names()
	require.Contains(t, names, "aa-test")
	require.Contains(t, names, "zz-test")
	assert.IsIncreasing(t, names)
}

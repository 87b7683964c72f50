package cache

import (
	"testing"

	"github.com/halcyon-eth/halcyon/shared/testutil/assert"
)

func TestActiveValidatorCountCache_RoundTrip(t *testing.T) {
	c := NewActiveValidatorCountCache()
	root := [32]byte{'A'}

	_, ok := c.Get(root, 10)
	assert.Equal(t, false, ok, "expected a miss for an empty cache")

	c.Put(root, 10, 16384)
	count, ok := c.Get(root, 10)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint64(16384), count)

	// Same root at a different epoch is a distinct entry.
	_, ok = c.Get(root, 11)
	assert.Equal(t, false, ok)

	// Different root at the same epoch is a distinct entry.
	_, ok = c.Get([32]byte{'B'}, 10)
	assert.Equal(t, false, ok)
}

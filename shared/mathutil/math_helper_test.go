package mathutil

import (
	"math"
	"testing"

	"github.com/halcyon-eth/halcyon/shared/testutil/assert"
	"github.com/halcyon-eth/halcyon/shared/testutil/require"
)

func TestMul64(t *testing.T) {
	got, err := Mul64(32, 74888)
	require.NoError(t, err)
	assert.Equal(t, uint64(2396416), got)

	_, err = Mul64(math.MaxUint64, 2)
	require.ErrorContains(t, "multiplication overflows", err)
}

func TestAdd64(t *testing.T) {
	got, err := Add64(math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)

	_, err = Add64(math.MaxUint64, 1)
	require.ErrorContains(t, "addition overflows", err)
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, uint64(3), Min(3, 5))
	assert.Equal(t, uint64(3), Min(5, 3))
	assert.Equal(t, uint64(5), Max(3, 5))
	assert.Equal(t, uint64(5), Max(5, 3))
}

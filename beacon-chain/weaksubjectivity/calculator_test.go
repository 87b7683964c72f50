package weaksubjectivity

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/shared/testutil"
	"github.com/halcyon-eth/halcyon/shared/testutil/assert"
	"github.com/halcyon-eth/halcyon/shared/testutil/require"
)

func TestComputeWeakSubjectivityPeriod(t *testing.T) {
	c := NewCalculator()
	tests := []struct {
		name   string
		count  uint64
		period types.Epoch
	}{
		// With no active validators the period degrades to the
		// withdrawability delay floor.
		{name: "zero validators", count: 0, period: 256},
		{name: "one validator", count: 1, period: 256},
		{name: "small set", count: 8192, period: 358},
		{name: "mainnet launch size", count: 16384, period: 460},
		{name: "at churn cap", count: 4 * 65536, period: 3532},
		{name: "above churn cap", count: 10 * 65536, period: 3532},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.period, c.ComputeWeakSubjectivityPeriod(tt.count))
		})
	}
}

func TestComputeWeakSubjectivityPeriod_Monotonic(t *testing.T) {
	c := NewCalculator()
	prev := types.Epoch(0)
	for count := uint64(0); count <= 5*65536; count += 1024 {
		period := c.ComputeWeakSubjectivityPeriod(count)
		if period < prev {
			t.Fatalf("period decreased from %d to %d at validator count %d", prev, period, count)
		}
		prev = period
	}
}

func TestIsWithinWeakSubjectivityPeriod_Boundaries(t *testing.T) {
	c := NewCalculator()
	// 8192 active validators yields a period of 358 epochs.
	cs := &CheckpointState{
		Checkpoint: &Checkpoint{Epoch: 100, Root: [32]byte{'a'}},
		State:      testutil.NewBeaconState(100*32, 8192),
	}

	within, err := c.IsWithinWeakSubjectivityPeriod(cs, types.Slot(458*32))
	require.NoError(t, err)
	assert.Equal(t, true, within, "expected checkpoint at the period boundary to be within the period")

	within, err = c.IsWithinWeakSubjectivityPeriod(cs, types.Slot(459*32))
	require.NoError(t, err)
	assert.Equal(t, false, within, "expected checkpoint one epoch past the boundary to be outside the period")
}

func TestActiveValidatorCount_Cached(t *testing.T) {
	c := NewCalculator()
	st := testutil.NewBeaconState(320, 2048)
	cs := &CheckpointState{
		Checkpoint: &Checkpoint{Epoch: 10, Root: [32]byte{'c', 'a', 'c', 'h', 'e'}},
		State:      st,
	}

	count, err := c.ActiveValidatorCount(cs)
	require.NoError(t, err)
	assert.Equal(t, uint64(2048), count)
	assert.Equal(t, 1, st.ReadCount)

	// The second read is served from the cache without rescanning the
	// registry.
	count, err = c.ActiveValidatorCount(cs)
	require.NoError(t, err)
	assert.Equal(t, uint64(2048), count)
	assert.Equal(t, 1, st.ReadCount)
}

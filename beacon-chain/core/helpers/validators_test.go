package helpers

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/shared/params"
	"github.com/halcyon-eth/halcyon/shared/testutil"
	"github.com/halcyon-eth/halcyon/shared/testutil/assert"
	"github.com/halcyon-eth/halcyon/shared/testutil/require"
)

func TestIsActiveValidator(t *testing.T) {
	farFuture := params.BeaconConfig().FarFutureEpoch
	tests := []struct {
		name   string
		val    *testutil.Validator
		epoch  uint64
		active bool
	}{
		{name: "genesis validator", val: &testutil.Validator{Activation: 0, Exit: farFuture}, epoch: 0, active: true},
		{name: "not yet activated", val: &testutil.Validator{Activation: 5, Exit: farFuture}, epoch: 4, active: false},
		{name: "activated at epoch", val: &testutil.Validator{Activation: 5, Exit: farFuture}, epoch: 5, active: true},
		{name: "exited", val: &testutil.Validator{Activation: 0, Exit: 10}, epoch: 10, active: false},
		{name: "about to exit", val: &testutil.Validator{Activation: 0, Exit: 10}, epoch: 9, active: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, IsActiveValidator(tt.val, types.Epoch(tt.epoch)))
		})
	}
}

func TestActiveValidatorCount(t *testing.T) {
	farFuture := params.BeaconConfig().FarFutureEpoch
	st := &testutil.BeaconState{
		StateSlot: 320,
		Validators: []*testutil.Validator{
			{Activation: 0, Exit: farFuture},
			{Activation: 0, Exit: 5},
			{Activation: 20, Exit: farFuture},
			{Activation: 0, Exit: farFuture},
		},
	}
	count, err := ActiveValidatorCount(st, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

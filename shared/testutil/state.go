package testutil

import (
	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/beacon-chain/state"
	"github.com/halcyon-eth/halcyon/shared/params"
)

// Validator is a read-only validator registry entry stub for testing.
type Validator struct {
	Activation types.Epoch
	Exit       types.Epoch
}

// ActivationEpoch returns the validator activation epoch.
func (v *Validator) ActivationEpoch() types.Epoch {
	return v.Activation
}

// ExitEpoch returns the validator exit epoch.
func (v *Validator) ExitEpoch() types.Epoch {
	return v.Exit
}

// BeaconState is a read-only beacon state stub for testing. ReadCount tracks
// how many times the validator registry was scanned.
type BeaconState struct {
	StateSlot  types.Slot
	Validators []*Validator
	ReadCount  int
}

// NewBeaconState creates a state at the given slot whose registry holds
// activeCount validators active from genesis onwards.
func NewBeaconState(slot types.Slot, activeCount uint64) *BeaconState {
	validators := make([]*Validator, 0, activeCount)
	for i := uint64(0); i < activeCount; i++ {
		validators = append(validators, &Validator{
			Activation: 0,
			Exit:       params.BeaconConfig().FarFutureEpoch,
		})
	}
	return &BeaconState{StateSlot: slot, Validators: validators}
}

// Slot returns the state slot.
func (s *BeaconState) Slot() types.Slot {
	return s.StateSlot
}

// NumValidators returns the size of the validator registry.
func (s *BeaconState) NumValidators() int {
	return len(s.Validators)
}

// ReadFromEveryValidator applies the callback to every registry entry.
func (s *BeaconState) ReadFromEveryValidator(f func(idx int, val state.ReadOnlyValidator) error) error {
	s.ReadCount++
	for i, v := range s.Validators {
		if err := f(i, v); err != nil {
			return err
		}
	}
	return nil
}

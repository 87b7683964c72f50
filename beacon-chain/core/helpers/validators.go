package helpers

import (
	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/beacon-chain/state"
)

// IsActiveValidator returns whether the validator is active at the given
// epoch.
//
// Spec pseudocode definition:
//  def is_active_validator(validator: Validator, epoch: Epoch) -> bool:
//    """
//    Check if ``validator`` is active.
//    """
//    return validator.activation_epoch <= epoch < validator.exit_epoch
func IsActiveValidator(val state.ReadOnlyValidator, epoch types.Epoch) bool {
	return val.ActivationEpoch() <= epoch && epoch < val.ExitEpoch()
}

// ActiveValidatorCount returns the number of active validators in the state
// registry at the given epoch.
//
// Spec pseudocode definition:
//  def get_active_validator_indices(state: BeaconState, epoch: Epoch) -> Sequence[ValidatorIndex]:
//    """
//    Return the sequence of active validator indices at ``epoch``.
//    """
//    return [ValidatorIndex(i) for i, v in enumerate(state.validators) if is_active_validator(v, epoch)]
func ActiveValidatorCount(st state.ReadOnlyBeaconState, epoch types.Epoch) (uint64, error) {
	count := uint64(0)
	if err := st.ReadFromEveryValidator(func(idx int, val state.ReadOnlyValidator) error {
		if IsActiveValidator(val, epoch) {
			count++
		}
		return nil
	}); err != nil {
		return 0, err
	}
	return count, nil
}

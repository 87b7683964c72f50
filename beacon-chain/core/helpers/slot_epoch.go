package helpers

import (
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/shared/mathutil"
	"github.com/halcyon-eth/halcyon/shared/params"
)

// SlotToEpoch returns the epoch number of the input slot.
//
// Spec pseudocode definition:
//  def compute_epoch_at_slot(slot: Slot) -> Epoch:
//    """
//    Return the epoch number at ``slot``.
//    """
//    return Epoch(slot // SLOTS_PER_EPOCH)
func SlotToEpoch(slot types.Slot) types.Epoch {
	return types.Epoch(slot / params.BeaconConfig().SlotsPerEpoch)
}

// StartSlot returns the first slot number of the given epoch.
//
// Spec pseudocode definition:
//  def compute_start_slot_at_epoch(epoch: Epoch) -> Slot:
//    """
//    Return the start slot of ``epoch``.
//    """
//    return Slot(epoch * SLOTS_PER_EPOCH)
func StartSlot(epoch types.Epoch) (types.Slot, error) {
	slot, err := mathutil.Mul64(uint64(params.BeaconConfig().SlotsPerEpoch), uint64(epoch))
	if err != nil {
		return types.Slot(slot), errors.Errorf("start slot calculation overflows: %v", err)
	}
	return types.Slot(slot), nil
}

// IsEpochStart returns true if the given slot number is an epoch starting slot
// number.
func IsEpochStart(slot types.Slot) bool {
	return slot%params.BeaconConfig().SlotsPerEpoch == 0
}

// IsEpochEnd returns true if the given slot number is an epoch ending slot
// number.
func IsEpochEnd(slot types.Slot) bool {
	return IsEpochStart(slot + 1)
}

package weaksubjectivity

import (
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/beacon-chain/cache"
	"github.com/halcyon-eth/halcyon/beacon-chain/core/helpers"
	"github.com/halcyon-eth/halcyon/shared/params"
)

// Calculator decides whether a finalized checkpoint is still within the weak
// subjectivity period, as a function of the active validator set size at
// that checkpoint.
type Calculator struct {
	safetyDecay           uint64
	activeValidatorCounts *cache.ActiveValidatorCountCache
}

// NewCalculator initializes a calculator using the safety decay from the
// chain config.
func NewCalculator() *Calculator {
	return &Calculator{
		safetyDecay:           params.BeaconConfig().WeakSubjectivitySafetyDecay,
		activeValidatorCounts: cache.NewActiveValidatorCountCache(),
	}
}

// ActiveValidatorCount returns the number of validators active at the given
// finalized checkpoint. Counts are cached by checkpoint root and epoch so
// repeated period checks against the same checkpoint do not rescan the
// registry.
func (c *Calculator) ActiveValidatorCount(cs *CheckpointState) (uint64, error) {
	if count, ok := c.activeValidatorCounts.Get(cs.Root(), cs.Epoch()); ok {
		return count, nil
	}
	count, err := helpers.ActiveValidatorCount(cs.State, cs.Epoch())
	if err != nil {
		return 0, errors.Wrap(err, "could not count active validators")
	}
	c.activeValidatorCounts.Put(cs.Root(), cs.Epoch(), count)
	return count, nil
}

// ComputeWeakSubjectivityPeriod returns the number of epochs a checkpoint
// remains trustworthy given the active validator count. The result must be
// identical across client implementations for the same inputs, since it
// determines whether a chain is accepted as canonical.
//
// Spec pseudocode definition:
//  def compute_weak_subjectivity_period(state: BeaconState) -> uint64:
//    weak_subjectivity_period = MIN_VALIDATOR_WITHDRAWABILITY_DELAY
//    validator_count = len(get_active_validator_indices(state, get_current_epoch(state)))
//    if validator_count >= MIN_PER_EPOCH_CHURN_LIMIT * CHURN_LIMIT_QUOTIENT:
//        weak_subjectivity_period += SAFETY_DECAY * CHURN_LIMIT_QUOTIENT // (2 * 100)
//    else:
//        weak_subjectivity_period += SAFETY_DECAY * validator_count // (2 * 100 * MIN_PER_EPOCH_CHURN_LIMIT)
//    return weak_subjectivity_period
func (c *Calculator) ComputeWeakSubjectivityPeriod(activeValidatorCount uint64) types.Epoch {
	cfg := params.BeaconConfig()
	// A registry with no active validators degrades to the withdrawability
	// delay floor rather than failing.
	wsPeriod := uint64(cfg.MinValidatorWithdrawabilityDelay)
	if activeValidatorCount >= cfg.MinPerEpochChurnLimit*cfg.ChurnLimitQuotient {
		wsPeriod += c.safetyDecay * cfg.ChurnLimitQuotient / (2 * 100)
	} else {
		wsPeriod += c.safetyDecay * activeValidatorCount / (2 * 100 * cfg.MinPerEpochChurnLimit)
	}
	return types.Epoch(wsPeriod)
}

// IsWithinWeakSubjectivityPeriod returns true if the given finalized
// checkpoint is no older, relative to the current slot, than the weak
// subjectivity period implied by its active validator count.
func (c *Calculator) IsWithinWeakSubjectivityPeriod(cs *CheckpointState, currentSlot types.Slot) (bool, error) {
	count, err := c.ActiveValidatorCount(cs)
	if err != nil {
		return false, err
	}
	wsPeriod := c.ComputeWeakSubjectivityPeriod(count)
	currentEpoch := helpers.SlotToEpoch(currentSlot)
	return cs.Epoch()+wsPeriod >= currentEpoch, nil
}

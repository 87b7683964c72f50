package weaksubjectivity

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/halcyon-eth/halcyon/beacon-chain/core/helpers"
	"github.com/halcyon-eth/halcyon/shared/interfaces"
)

const (
	// maxSuppressedEpochs bounds how long period checks may be silenced via
	// configuration. About a week with mainnet config.
	maxSuppressedEpochs = 1575
	// suppressionWarningPeriodSlots throttles the suppression warning to at
	// most one log line per this many slots.
	suppressionWarningPeriodSlots = 10
)

// ChainDataFetcher provides access to the locally observed canonical chain.
type ChainDataFetcher interface {
	// IsFinalizedEpoch reports whether the given epoch has been finalized.
	IsFinalizedEpoch(epoch types.Epoch) bool
	// BlockInEffectAtSlot returns the canonical block at the given slot, or
	// the most recent canonical block before it when the slot is empty.
	BlockInEffectAtSlot(ctx context.Context, slot types.Slot) (interfaces.SignedBeaconBlock, error)
}

// AncestorResolver looks up ancestors along the fork-choice-selected chain.
type AncestorResolver interface {
	// AncestorRoot returns the root of the ancestor of the given block root
	// at or before the given slot. It errors when the ancestry cannot be
	// resolved, such as when history has been pruned past the target slot.
	AncestorRoot(ctx context.Context, root [32]byte, slot types.Slot) ([32]byte, error)
}

// Validator checks the observed chain against the configured weak
// subjectivity checkpoint and fans detected violations out to an ordered
// list of policies. It is driven by a single finalization worker but
// tolerates incidental concurrent calls.
type Validator struct {
	cfg        *Config
	calculator *Calculator
	policies   []ViolationPolicy

	suppressionOnce    sync.Once
	suppressUntilEpoch *types.Epoch
	lastLoggedSlot     uint64
}

func newValidator(cfg *Config, calculator *Calculator, policies []ViolationPolicy) *Validator {
	return &Validator{
		cfg:        cfg,
		calculator: calculator,
		policies:   policies,
	}
}

// NewStrictValidator returns a validator that logs violations at fatal
// severity and halts the chain through the given halter.
func NewStrictValidator(cfg *Config, halter ChainHalter) *Validator {
	policies := []ViolationPolicy{
		NewLoggingPolicy(logrus.FatalLevel),
		NewStrictPolicy(halter),
	}
	return newValidator(cfg, NewCalculator(), policies)
}

// NewLenientValidator returns a validator that logs violations at trace
// severity and never halts the chain.
func NewLenientValidator(cfg *Config) *Validator {
	return newValidator(cfg, NewCalculator(), []ViolationPolicy{NewLoggingPolicy(logrus.TraceLevel)})
}

// Checkpoint returns the configured weak subjectivity checkpoint, or nil if
// none was configured.
func (v *Validator) Checkpoint() *Checkpoint {
	return v.cfg.Checkpoint
}

// ValidateChainConsistency checks that the observed chain matches the
// configured weak subjectivity checkpoint once the checkpoint epoch has
// been finalized. The check runs asynchronously so the caller is never
// blocked on storage I/O; the returned channel yields at most one error and
// is closed when the check completes. Violations are dispatched to the
// configured policies from within the completion, while the channel error is
// reserved for failures of the lookup machinery itself.
func (v *Validator) ValidateChainConsistency(ctx context.Context, chainData ChainDataFetcher) <-chan error {
	result := make(chan error, 1)
	checkpoint := v.cfg.Checkpoint
	if checkpoint == nil {
		// Nothing to validate against.
		close(result)
		return result
	}
	if !chainData.IsFinalizedEpoch(checkpoint.Epoch) {
		// Checkpoint epoch has not been finalized yet, nothing to check.
		close(result)
		return result
	}

	go func() {
		defer close(result)
		ctx, span := trace.StartSpan(ctx, "weakSubjectivity.ValidateChainConsistency")
		defer span.End()

		startSlot, err := checkpoint.StartSlot()
		if err != nil {
			result <- errors.Wrap(err, "could not compute weak subjectivity checkpoint start slot")
			return
		}
		block, err := chainData.BlockInEffectAtSlot(ctx, startSlot)
		if err != nil {
			result <- errors.Wrapf(err, "could not retrieve block in effect at slot %d", startSlot)
			return
		}
		if block == nil {
			// The epoch is finalized, so a canonical block must exist at or
			// before its start slot.
			result <- errors.Errorf("missing block in effect at slot %d despite epoch %d being finalized", startSlot, checkpoint.Epoch)
			return
		}
		if block.Root() != checkpoint.Root {
			v.handleInconsistentCheckpoint(block)
		}
	}()
	return result
}

// ValidateLatestFinalizedCheckpoint validates the latest finalized
// checkpoint against the configured weak subjectivity checkpoint and the
// weak subjectivity period, given the current slot based on clock time.
// Detected violations are dispatched to the configured policies.
func (v *Validator) ValidateLatestFinalizedCheckpoint(finalized *CheckpointState, currentSlot types.Slot) {
	checkpoint := v.cfg.Checkpoint
	if checkpoint == nil {
		return
	}
	if finalized.Epoch() < checkpoint.Epoch {
		log.WithFields(logrus.Fields{
			"finalizedEpoch":  finalized.Epoch(),
			"checkpointEpoch": checkpoint.Epoch,
		}).Debug("Latest finalized checkpoint is prior to the weak subjectivity checkpoint, deferring validation")
		return
	}

	if finalized.Epoch() == checkpoint.Epoch && finalized.Root() != checkpoint.Root {
		v.handleInconsistentCheckpoint(finalized.Block)
	}

	currentEpoch := helpers.SlotToEpoch(currentSlot)
	suppressionEpoch := v.suppressionEpoch(currentSlot)
	suppressed := suppressionEpoch != nil && *suppressionEpoch > currentEpoch

	withinPeriod, err := v.calculator.IsWithinWeakSubjectivityPeriod(finalized, currentSlot)
	if err != nil {
		v.HandleValidationFailure("Could not determine whether the finalized checkpoint is within the weak subjectivity period", err)
		return
	}
	if !withinPeriod && !suppressed {
		v.handleCheckpointOutsidePeriod(finalized, currentSlot)
	} else if !withinPeriod && suppressed &&
		currentSlot%suppressionWarningPeriodSlots == 0 &&
		v.getAndSetLastLoggedSlot(currentSlot) < currentSlot {
		log.Warnf("Weak subjectivity checks suppressed until epoch %d", *suppressionEpoch)
	}
}

// IsBlockValid determines whether the given candidate block is consistent
// with the configured weak subjectivity checkpoint. Blocks preceding the
// checkpoint epoch, and blocks whose ancestry can no longer be resolved,
// are accepted optimistically and left to finalization-time checks.
func (v *Validator) IsBlockValid(ctx context.Context, block interfaces.SignedBeaconBlock, resolver AncestorResolver) bool {
	checkpoint := v.cfg.Checkpoint
	if checkpoint == nil {
		return true
	}

	blockEpoch := helpers.SlotToEpoch(block.Slot())
	if blockEpoch == checkpoint.Epoch && helpers.IsEpochStart(block.Slot()) {
		// A block at the checkpoint slot must be the checkpoint block itself.
		return block.Root() == checkpoint.Root
	}
	if block.Root() == checkpoint.Root {
		// The block is the checkpoint, regardless of slot alignment.
		return true
	}
	if blockEpoch >= checkpoint.Epoch {
		// At or past the checkpoint epoch, the checkpoint must be an
		// ancestor of the block.
		startSlot, err := checkpoint.StartSlot()
		if err != nil {
			v.HandleValidationFailure("Could not compute weak subjectivity checkpoint start slot", err)
			return true
		}
		ancestor, err := resolver.AncestorRoot(ctx, block.ParentRoot(), startSlot)
		if err != nil {
			// Ancestry is unresolvable, the chain must have moved past the
			// checkpoint already.
			return true
		}
		return ancestor == checkpoint.Root
	}

	// The block precedes the checkpoint epoch, so it cannot be validated
	// yet.
	return true
}

// HandleValidationFailure reports a problem encountered while running
// surrounding validation machinery. The failure is fanned out to every
// configured policy; this path never halts the chain on its own.
func (v *Validator) HandleValidationFailure(message string, err error) {
	weakSubjectivityViolations.WithLabelValues(violationTypeValidationFailure).Inc()
	for _, policy := range v.policies {
		policy.OnFailedToValidate(message, err)
	}
}

func (v *Validator) handleCheckpointOutsidePeriod(finalized *CheckpointState, currentSlot types.Slot) {
	activeValidators, err := v.calculator.ActiveValidatorCount(finalized)
	if err != nil {
		v.HandleValidationFailure("Could not count active validators at the finalized checkpoint", err)
		return
	}
	weakSubjectivityViolations.WithLabelValues(violationTypePeriodExceeded).Inc()
	for _, policy := range v.policies {
		policy.OnFinalizedCheckpointOutsideSafetyPeriod(finalized, activeValidators, currentSlot)
	}
}

func (v *Validator) handleInconsistentCheckpoint(block interfaces.SignedBeaconBlock) {
	weakSubjectivityViolations.WithLabelValues(violationTypeInconsistency).Inc()
	for _, policy := range v.policies {
		policy.OnChainInconsistentWithCheckpoint(v.cfg.Checkpoint, block)
	}
}

// suppressionEpoch returns the effective epoch until which period violations
// are suppressed, or nil when suppression was not configured. The value is
// computed once, on first use, by clamping the configured epoch to at most
// maxSuppressedEpochs ahead of the epoch observed at that first call, and is
// reused for the validator's lifetime regardless of the slot passed to
// subsequent calls.
func (v *Validator) suppressionEpoch(currentSlot types.Slot) *types.Epoch {
	v.suppressionOnce.Do(func() {
		configured := v.cfg.SuppressWSPeriodChecksUntilEpoch
		if configured == nil {
			return
		}
		startupEpoch := helpers.SlotToEpoch(currentSlot)
		maxEpoch := startupEpoch + maxSuppressedEpochs
		effective := *configured
		if maxEpoch < effective {
			effective = maxEpoch
			log.WithFields(logrus.Fields{
				"configuredEpoch": *configured,
				"effectiveEpoch":  effective,
				"currentEpoch":    startupEpoch,
			}).Info("Configured weak subjectivity suppression epoch is too far ahead, clamping")
		}
		log.Warnf("Configured to suppress weak subjectivity period checks until epoch %d", effective)
		v.suppressUntilEpoch = &effective
	})
	return v.suppressUntilEpoch
}

// getAndSetLastLoggedSlot advances the last logged slot to newSlot if it is
// greater, and returns the previous value. The update is a compare-and-swap
// loop so concurrent calls for the same slot log at most once.
func (v *Validator) getAndSetLastLoggedSlot(newSlot types.Slot) types.Slot {
	for {
		last := atomic.LoadUint64(&v.lastLoggedSlot)
		if uint64(newSlot) <= last {
			return types.Slot(last)
		}
		if atomic.CompareAndSwapUint64(&v.lastLoggedSlot, last, uint64(newSlot)) {
			return types.Slot(last)
		}
	}
}

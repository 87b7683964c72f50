package weaksubjectivity

import (
	"fmt"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/sirupsen/logrus"

	"github.com/halcyon-eth/halcyon/shared/bytesutil"
	"github.com/halcyon-eth/halcyon/shared/interfaces"
)

// ViolationPolicy handles detected weak subjectivity violations. The
// validator invokes every configured policy, in order, for every matching
// event.
type ViolationPolicy interface {
	// OnFailedToValidate handles a problem encountered while running a
	// validation, as opposed to a validation that definitively failed. The
	// error may be nil.
	OnFailedToValidate(message string, err error)
	// OnFinalizedCheckpointOutsideSafetyPeriod handles a finalized checkpoint
	// that has fallen outside of the weak subjectivity period.
	OnFinalizedCheckpointOutsideSafetyPeriod(cs *CheckpointState, activeValidatorCount uint64, currentSlot types.Slot)
	// OnChainInconsistentWithCheckpoint handles a canonical block that
	// diverges from the configured weak subjectivity checkpoint.
	OnChainInconsistentWithCheckpoint(checkpoint *Checkpoint, block interfaces.SignedBeaconBlock)
}

// ChainHalter stops further chain progress in response to an unrecoverable
// condition. The beacon node wires this to its shutdown path; the halt is
// observed synchronously by the caller of the failing validation.
type ChainHalter interface {
	HaltChain(reason error)
}

type loggingPolicy struct {
	level logrus.Level
}

// NewLoggingPolicy returns a policy that reports violations at the given
// severity and always returns normally.
func NewLoggingPolicy(level logrus.Level) ViolationPolicy {
	return &loggingPolicy{level: level}
}

func (p *loggingPolicy) OnFailedToValidate(message string, err error) {
	entry := log
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(p.level, message)
}

func (p *loggingPolicy) OnFinalizedCheckpointOutsideSafetyPeriod(cs *CheckpointState, activeValidatorCount uint64, currentSlot types.Slot) {
	log.WithFields(logrus.Fields{
		"finalizedEpoch":   cs.Epoch(),
		"activeValidators": activeValidatorCount,
		"currentSlot":      currentSlot,
	}).Log(p.level, "Finalized checkpoint is outside of the weak subjectivity period. The node may be on a long-range attacked chain, please supply a recent weak subjectivity checkpoint and resync.")
}

func (p *loggingPolicy) OnChainInconsistentWithCheckpoint(checkpoint *Checkpoint, block interfaces.SignedBeaconBlock) {
	blockRoot := block.Root()
	log.WithFields(logrus.Fields{
		"checkpointEpoch": checkpoint.Epoch,
		"checkpointRoot":  fmt.Sprintf("%#x", bytesutil.Trunc(checkpoint.Root[:])),
		"blockSlot":       block.Slot(),
		"blockRoot":       fmt.Sprintf("%#x", bytesutil.Trunc(blockRoot[:])),
	}).Log(p.level, "Chain is inconsistent with the configured weak subjectivity checkpoint")
}

type strictPolicy struct {
	halter ChainHalter
}

// NewStrictPolicy returns a policy that logs at the highest severity and
// halts the chain on deterministic violations. Failures to run a validation
// are logged but do not halt.
func NewStrictPolicy(halter ChainHalter) ViolationPolicy {
	return &strictPolicy{halter: halter}
}

func (p *strictPolicy) OnFailedToValidate(message string, err error) {
	// A check that could not run is distinct from a check that failed. Do
	// not take the node down over a transient infrastructure problem.
	entry := log
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)
}

func (p *strictPolicy) OnFinalizedCheckpointOutsideSafetyPeriod(cs *CheckpointState, activeValidatorCount uint64, currentSlot types.Slot) {
	log.Log(logrus.FatalLevel, "Halting the chain: finalized checkpoint is outside of the weak subjectivity period")
	p.halter.HaltChain(errors.Errorf(
		"finalized checkpoint at epoch %d with %d active validators is outside of the weak subjectivity period at slot %d",
		cs.Epoch(), activeValidatorCount, currentSlot))
}

func (p *strictPolicy) OnChainInconsistentWithCheckpoint(checkpoint *Checkpoint, block interfaces.SignedBeaconBlock) {
	blockRoot := block.Root()
	log.Log(logrus.FatalLevel, "Halting the chain: block is inconsistent with the weak subjectivity checkpoint")
	p.halter.HaltChain(errors.Errorf(
		"block %#x at slot %d is inconsistent with the weak subjectivity checkpoint %s",
		bytesutil.Trunc(blockRoot[:]), block.Slot(), checkpoint))
}

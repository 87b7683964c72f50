package weaksubjectivity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/halcyon-eth/halcyon/shared/testutil"
	"github.com/halcyon-eth/halcyon/shared/testutil/assert"
	"github.com/halcyon-eth/halcyon/shared/testutil/require"
)

type recordingHalter struct {
	reasons []error
}

func (h *recordingHalter) HaltChain(reason error) {
	h.reasons = append(h.reasons, reason)
}

func TestLoggingPolicy_LogsAtConfiguredLevel(t *testing.T) {
	logrus.SetLevel(logrus.TraceLevel)
	defer logrus.SetLevel(logrus.InfoLevel)
	hook := logTest.NewGlobal()
	defer hook.Reset()

	p := NewLoggingPolicy(logrus.TraceLevel)
	cs := &CheckpointState{
		Checkpoint: &Checkpoint{Epoch: 5, Root: [32]byte{'a'}},
		State:      testutil.NewBeaconState(160, 64),
	}
	p.OnFinalizedCheckpointOutsideSafetyPeriod(cs, 64, 12000)
	testutil.AssertLogsContain(t, hook, "outside of the weak subjectivity period")
	require.Equal(t, logrus.TraceLevel, hook.LastEntry().Level)

	hook.Reset()
	p.OnChainInconsistentWithCheckpoint(cs.Checkpoint, &testutil.Block{BlockSlot: 160, BlockRoot: [32]byte{'b'}})
	testutil.AssertLogsContain(t, hook, "inconsistent with the configured weak subjectivity checkpoint")
	require.Equal(t, logrus.TraceLevel, hook.LastEntry().Level)

	hook.Reset()
	p.OnFailedToValidate("Could not run check", errors.New("disk on fire"))
	testutil.AssertLogsContain(t, hook, "Could not run check")
}

func TestStrictPolicy_HaltsOnPeriodViolation(t *testing.T) {
	hook := logTest.NewGlobal()
	defer hook.Reset()

	halter := &recordingHalter{}
	p := NewStrictPolicy(halter)
	cs := &CheckpointState{
		Checkpoint: &Checkpoint{Epoch: 5, Root: [32]byte{'a'}},
		State:      testutil.NewBeaconState(160, 64),
	}
	p.OnFinalizedCheckpointOutsideSafetyPeriod(cs, 64, 12000)

	require.Equal(t, 1, len(halter.reasons))
	require.ErrorContains(t, "outside of the weak subjectivity period", halter.reasons[0])
	require.Equal(t, logrus.FatalLevel, hook.LastEntry().Level)
}

func TestStrictPolicy_HaltsOnInconsistency(t *testing.T) {
	halter := &recordingHalter{}
	p := NewStrictPolicy(halter)
	cp := &Checkpoint{Epoch: 5, Root: [32]byte{'a'}}
	p.OnChainInconsistentWithCheckpoint(cp, &testutil.Block{BlockSlot: 161, BlockRoot: [32]byte{'b'}})

	require.Equal(t, 1, len(halter.reasons))
	require.ErrorContains(t, "inconsistent with the weak subjectivity checkpoint", halter.reasons[0])
}

func TestStrictPolicy_DoesNotHaltOnValidationFailure(t *testing.T) {
	hook := logTest.NewGlobal()
	defer hook.Reset()

	halter := &recordingHalter{}
	p := NewStrictPolicy(halter)
	p.OnFailedToValidate("Could not load chain data", errors.New("boom"))

	assert.Equal(t, 0, len(halter.reasons), "validation execution failures must not halt the chain")
	testutil.AssertLogsContain(t, hook, "Could not load chain data")
}

package weaksubjectivity

import (
	"fmt"

	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/beacon-chain/core/helpers"
	"github.com/halcyon-eth/halcyon/beacon-chain/state"
	"github.com/halcyon-eth/halcyon/shared/interfaces"
)

// Checkpoint is an (epoch, block root) pair. Once configured as the weak
// subjectivity checkpoint it is never mutated; all checks are made relative
// to it.
type Checkpoint struct {
	Epoch types.Epoch
	Root  [32]byte
}

// StartSlot returns the first slot of the checkpoint epoch.
func (c *Checkpoint) StartSlot() (types.Slot, error) {
	return helpers.StartSlot(c.Epoch)
}

// String returns the checkpoint in the standard 0x<root>:<epoch> form.
func (c *Checkpoint) String() string {
	return fmt.Sprintf("%#x:%d", c.Root, c.Epoch)
}

// CheckpointState pairs a finalized checkpoint with its materialized block
// and state snapshot. Instances are produced by the finalization pipeline
// and consumed read-only here; they are not retained beyond the call.
type CheckpointState struct {
	Checkpoint *Checkpoint
	Block      interfaces.SignedBeaconBlock
	State      state.ReadOnlyBeaconState
}

// Epoch returns the epoch of the finalized checkpoint.
func (c *CheckpointState) Epoch() types.Epoch {
	return c.Checkpoint.Epoch
}

// Root returns the block root of the finalized checkpoint.
func (c *CheckpointState) Root() [32]byte {
	return c.Checkpoint.Root
}

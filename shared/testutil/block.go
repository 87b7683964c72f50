package testutil

import (
	types "github.com/prysmaticlabs/eth2-types"
)

// Block is a read-only signed beacon block stub for testing. It satisfies
// interfaces.SignedBeaconBlock.
type Block struct {
	BlockSlot       types.Slot
	BlockRoot       [32]byte
	BlockParentRoot [32]byte
}

// Slot returns the block slot.
func (b *Block) Slot() types.Slot {
	return b.BlockSlot
}

// Root returns the block root.
func (b *Block) Root() [32]byte {
	return b.BlockRoot
}

// ParentRoot returns the parent block root.
func (b *Block) ParentRoot() [32]byte {
	return b.BlockParentRoot
}

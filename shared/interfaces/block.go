// Package interfaces defines read-only views over consensus objects shared
// between beacon chain components.
package interfaces

import (
	types "github.com/prysmaticlabs/eth2-types"
)

// SignedBeaconBlock is a read-only view of a signed beacon block. The root is
// the hash tree root of the inner block, computed by whichever component
// materialized the block.
type SignedBeaconBlock interface {
	Slot() types.Slot
	Root() [32]byte
	ParentRoot() [32]byte
}

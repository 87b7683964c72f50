// Package state defines the read-only accessor interfaces for beacon state
// data. Concrete state implementations live with the storage and state
// transition machinery; consumers in this repository only depend on these
// views.
package state

import (
	types "github.com/prysmaticlabs/eth2-types"
)

// ReadOnlyValidator is a read-only view of a validator registry entry.
type ReadOnlyValidator interface {
	ActivationEpoch() types.Epoch
	ExitEpoch() types.Epoch
}

// ReadOnlyBeaconState is a read-only view of a beacon state snapshot.
type ReadOnlyBeaconState interface {
	Slot() types.Slot
	NumValidators() int
	// ReadFromEveryValidator applies the provided callback to every validator
	// in the registry, stopping at the first error.
	ReadFromEveryValidator(f func(idx int, val ReadOnlyValidator) error) error
}

// Package params defines the chain configuration constants consumed by the
// beacon node, following the upstream consensus specification naming.
package params

import (
	types "github.com/prysmaticlabs/eth2-types"
)

// BeaconChainConfig contains constant configs for a node to participate in
// the beacon chain.
type BeaconChainConfig struct {
	// Constants (non-configurable).
	FarFutureEpoch types.Epoch `yaml:"FAR_FUTURE_EPOCH"` // FarFutureEpoch represents a epoch extremely far away in the future used as the default penalization epoch for validators.
	GenesisEpoch   types.Epoch `yaml:"GENESIS_EPOCH"`    // GenesisEpoch is the first epoch after genesis.
	GenesisSlot    types.Slot  `yaml:"GENESIS_SLOT"`     // GenesisSlot is the first slot of the chain.

	// Time parameters constants.
	SecondsPerSlot                   uint64      `yaml:"SECONDS_PER_SLOT" spec:"true"`                       // SecondsPerSlot is how many seconds are in a single slot.
	SlotsPerEpoch                    types.Slot  `yaml:"SLOTS_PER_EPOCH" spec:"true"`                        // SlotsPerEpoch is the number of slots in an epoch.
	MinValidatorWithdrawabilityDelay types.Epoch `yaml:"MIN_VALIDATOR_WITHDRAWABILITY_DELAY" spec:"true"`    // MinValidatorWithdrawabilityDelay is the shortest amount of time a validator has to wait to withdraw.

	// Validator cycle constants.
	MinPerEpochChurnLimit uint64 `yaml:"MIN_PER_EPOCH_CHURN_LIMIT" spec:"true"` // MinPerEpochChurnLimit is the minimum amount of churn allotted for validator rotations.
	ChurnLimitQuotient    uint64 `yaml:"CHURN_LIMIT_QUOTIENT" spec:"true"`      // ChurnLimitQuotient is used to determine the limit of how many validators can rotate per epoch.

	// Weak subjectivity constants.
	WeakSubjectivitySafetyDecay uint64 `yaml:"SAFETY_DECAY"` // WeakSubjectivitySafetyDecay is the maximum tolerable loss (in percent) of safety margin of FFG finality.
}

var beaconConfig = MainnetConfig()

// BeaconConfig retrieves the beacon chain config.
func BeaconConfig() *BeaconChainConfig {
	return beaconConfig
}

// OverrideBeaconConfig by replacing the config. The preferred pattern is to
// call BeaconConfig(), change the specific parameters, and then call
// OverrideBeaconConfig(c). Any subsequent calls to params.BeaconConfig() will
// return this new configuration.
func OverrideBeaconConfig(c *BeaconChainConfig) {
	beaconConfig = c
}

// Copy returns a copy of the config object.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	config := *b
	return &config
}

package params

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

// UseMainnetConfig for beacon chain services.
func UseMainnetConfig() {
	beaconConfig = MainnetConfig()
}

var mainnetBeaconConfig = &BeaconChainConfig{
	// Constants (non-configurable).
	FarFutureEpoch: 1<<64 - 1,
	GenesisEpoch:   0,
	GenesisSlot:    0,

	// Time parameter constants.
	SecondsPerSlot:                   12,
	SlotsPerEpoch:                    32,
	MinValidatorWithdrawabilityDelay: 256,

	// Validator cycle constants.
	MinPerEpochChurnLimit: 4,
	ChurnLimitQuotient:    1 << 16,

	// Weak subjectivity constants.
	WeakSubjectivitySafetyDecay: 10,
}

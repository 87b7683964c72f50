package params

import (
	"testing"
)

// SetupTestConfigCleanup preserves the global beacon chain config and restores
// it after the test completes, so tests may freely override parameters.
func SetupTestConfigCleanup(t testing.TB) {
	prevConfig := BeaconConfig().Copy()
	t.Cleanup(func() {
		OverrideBeaconConfig(prevConfig)
	})
}

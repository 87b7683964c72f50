// Package cache includes all important caches for running the beacon node.
package cache

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	types "github.com/prysmaticlabs/eth2-types"
)

// maxActiveValidatorCountSize defines the max number of entries the active
// validator count cache can contain. Finalized checkpoints advance slowly, so
// a small cache covers repeated period checks across restarts of the check
// loop.
const maxActiveValidatorCountSize = 16

var (
	activeValidatorCountHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "active_validator_count_cache_hit",
		Help: "The total number of cache hits on the active validator count cache.",
	})
	activeValidatorCountMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "active_validator_count_cache_miss",
		Help: "The total number of cache misses on the active validator count cache.",
	})
)

type activeValidatorCountKey struct {
	root  [32]byte
	epoch types.Epoch
}

// ActiveValidatorCountCache caches the number of active validators derived
// from a finalized state, keyed by the finalized block root and epoch.
type ActiveValidatorCountCache struct {
	cache *lru.Cache
}

// NewActiveValidatorCountCache initializes the cache.
func NewActiveValidatorCountCache() *ActiveValidatorCountCache {
	cache, err := lru.New(maxActiveValidatorCountSize)
	if err != nil {
		panic(err)
	}
	return &ActiveValidatorCountCache{cache: cache}
}

// Get returns the cached active validator count for the given block root and
// epoch, if present.
func (c *ActiveValidatorCountCache) Get(root [32]byte, epoch types.Epoch) (uint64, bool) {
	item, exists := c.cache.Get(activeValidatorCountKey{root: root, epoch: epoch})
	if !exists {
		activeValidatorCountMiss.Inc()
		return 0, false
	}
	activeValidatorCountHit.Inc()
	return item.(uint64), true
}

// Put inserts the active validator count for the given block root and epoch.
func (c *ActiveValidatorCountCache) Put(root [32]byte, epoch types.Epoch, count uint64) {
	c.cache.Add(activeValidatorCountKey{root: root, epoch: epoch}, count)
}

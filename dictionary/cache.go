package dictionary

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/slugkit/slugkit-generator/config"
)

// filteredCache is an N-way striped cache of [FilteredDictionary] values,
// keyed by a selector's 64-bit hash. Each way is an independent
// [lru.Cache], which already serializes its own Get/Add internally;
// striping exists purely so unrelated selectors can hit different ways
// concurrently without contending on the same lock.
type filteredCache struct {
	ways []*lru.Cache[uint64, *FilteredDictionary]
}

// NewFilteredCache returns a filteredCache with the given number of ways
// and per-way capacity. A value <1 for either falls back to the
// [config] package's defaults.
func NewFilteredCache(ways, shardSize int) *filteredCache {
	if ways < 1 {
		ways = config.DefaultCacheWays
	}
	if shardSize < 1 {
		shardSize = config.DefaultCacheShardSize
	}

	c := &filteredCache{ways: make([]*lru.Cache[uint64, *FilteredDictionary], ways)}
	for i := range c.ways {
		// lru.New only errors on a non-positive size, which shardSize
		// is guaranteed not to be by the check above.
		way, _ := lru.New[uint64, *FilteredDictionary](shardSize)
		c.ways[i] = way
	}
	return c
}

func (c *filteredCache) way(key uint64) *lru.Cache[uint64, *FilteredDictionary] {
	return c.ways[key%uint64(len(c.ways))]
}

// Get returns the cached value for key, if present.
func (c *filteredCache) Get(key uint64) (*FilteredDictionary, bool) {
	return c.way(key).Get(key)
}

// Add inserts value for key. A concurrent duplicate insert under a cache
// miss race is tolerated: both goroutines compute an equivalent
// [FilteredDictionary] for the same selector, so either write is an
// acceptable "last writer wins".
func (c *filteredCache) Add(key uint64, value *FilteredDictionary) {
	c.way(key).Add(key, value)
}

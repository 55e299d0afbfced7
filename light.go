package etchash

import "github.com/ethereum/go-ethereum/common"

// Light owns an epoch cache and synthesizes DAG items on demand, trading
// memory for CPU. The zero value is not usable; construct with NewLight.
type Light struct {
	cache       []node
	cacheSize   uint64
	blockNumber uint64
}

// NewLight builds the light verification context for the epoch a block
// belongs to: it derives the seed, sizes and fills the cache.
func NewLight(blockNumber uint64) (*Light, error) {
	light, err := newLightInternal(CacheSize(blockNumber), SeedHash(blockNumber))
	if err != nil {
		return nil, err
	}
	light.blockNumber = blockNumber
	return light, nil
}

// newLightInternal builds a light context from an explicit cache size and
// seed, bypassing the block-number-derived size tables. It mirrors the
// reference implementation's split between etchash_light_new_internal and
// etchash_light_new, and lets tests exercise the cache pipeline at sizes
// far smaller than any real epoch without touching the compiled-in tables.
func newLightInternal(cacheSize uint64, seed common.Hash) (*Light, error) {
	cache, err := generateCache(seed, cacheSize)
	if err != nil {
		return nil, err
	}
	return &Light{cache: cache, cacheSize: cacheSize}, nil
}

// Compute evaluates the hash for (headerHash, nonce) by synthesizing DAG
// items from the cache as needed. Safe to call concurrently on the same
// *Light from multiple goroutines: the cache is immutable after
// construction.
func (l *Light) Compute(headerHash common.Hash, nonce uint64) (ok bool, mixHash, result common.Hash) {
	fullSize := DatasetSize(l.blockNumber)
	return hashimoto(nil, l.cache, fullSize, headerHash, nonce)
}

// BlockNumber returns the block height this context was built for.
func (l *Light) BlockNumber() uint64 { return l.blockNumber }

// CacheSize returns the size in bytes of the underlying cache.
func (l *Light) CacheSize() uint64 { return l.cacheSize }

// Close releases the cache. The context must not be used afterward.
func (l *Light) Close() error {
	l.cache = nil
	return nil
}

package etchash

import "github.com/ethereum/go-ethereum/common"

// generateCache builds an epoch cache from its seed by SeqMemoHash (Sergio
// Lerner, 2014), Each entry folds in its predecessor and,
// across CacheRounds passes, a pseudo-randomly selected sibling, then
// re-hashes — the sequential, data-dependent memory access is what makes
// the cache expensive to compute faster than linearly.
func generateCache(seed common.Hash, cacheSize uint64) ([]node, error) {
	if cacheSize%nodeBytes != 0 {
		return nil, ErrInvalidCacheSize
	}
	numNodes := int(cacheSize / nodeBytes)

	nodes := make([]node, numNodes)
	nodes[0] = keccak512(seed[:])
	for i := 1; i < numNodes; i++ {
		nodes[i] = keccak512(nodes[i-1][:])
	}

	var mixed node
	for round := 0; round < CacheRounds; round++ {
		for i := 0; i < numNodes; i++ {
			srcIdx := (numNodes - 1 + i) % numNodes
			idx := int(nodes[i].word(0) % uint32(numNodes))
			for w := 0; w < NodeWords; w++ {
				mixed.setWord(w, nodes[srcIdx].word(w)^nodes[idx].word(w))
			}
			nodes[i] = keccak512(mixed[:])
		}
	}
	return nodes, nil
}

package etchash

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// hashimoto is the memory-hard hash evaluator. It mixes
// Accesses pseudo-randomly chosen DAG pages into an accumulator and
// compresses the result. Exactly one of fullData (memory-mapped DAG bytes)
// or cache (for on-the-fly synthesis via calcDAGItem) should be supplied;
// the other selects which evaluator mode ran.
func hashimoto(fullData []byte, cache []node, fullSize uint64, headerHash common.Hash, nonce uint64) (ok bool, mixHash, result common.Hash) {
	if fullSize%pageBytes != 0 {
		return false, common.Hash{}, common.Hash{}
	}

	var buf [40]byte
	copy(buf[:32], headerHash[:])
	binary.LittleEndian.PutUint64(buf[32:], nonce)
	s := keccak512(buf[:])

	var mix [MixWords]uint32
	for w := range mix {
		mix[w] = s.word(w % NodeWords)
	}

	numPages := uint32(fullSize / pageBytes)
	for i := uint32(0); i < Accesses; i++ {
		index := fnv(s.word(0)^i, mix[i%MixWords]) % numPages

		for n := 0; n < MixNodes; n++ {
			var d node
			if fullData != nil {
				d = loadNode(fullData, uint64(index)*MixNodes+uint64(n))
			} else {
				d = calcDAGItem(cache, index*MixNodes+uint32(n))
			}
			base := n * NodeWords
			for w := 0; w < NodeWords; w++ {
				mix[base+w] = fnv(mix[base+w], d.word(w))
			}
		}
	}

	// Compress the mix 4-to-1.
	var compressed [MixWords / 4]uint32
	for w := 0; w < MixWords; w += 4 {
		r := mix[w]
		r = r*fnvPrime ^ mix[w+1]
		r = r*fnvPrime ^ mix[w+2]
		r = r*fnvPrime ^ mix[w+3]
		compressed[w/4] = r
	}

	for i, v := range compressed {
		binary.LittleEndian.PutUint32(mixHash[i*4:i*4+4], v)
	}
	result = keccak256(s[:], mixHash[:])
	return true, mixHash, result
}

// QuickHash recomputes the final result from a claimed mix digest without
// needing the cache or DAG at all — the cheap verification
// path a receiving node uses once it already trusts mixHash.
func QuickHash(headerHash common.Hash, nonce uint64, mixHash common.Hash) common.Hash {
	var buf [40]byte
	copy(buf[:32], headerHash[:])
	binary.LittleEndian.PutUint64(buf[32:], nonce)
	s := keccak512(buf[:])
	return keccak256(s[:], mixHash[:])
}

// QuickCheckDifficulty reports whether the quick hash of (headerHash, nonce,
// mixHash) is at or below boundary, both read as 256-bit big-endian
// unsigned integers.
func QuickCheckDifficulty(headerHash common.Hash, nonce uint64, mixHash, boundary common.Hash) bool {
	result := QuickHash(headerHash, nonce, mixHash)
	return new(uint256.Int).SetBytes(result[:]).Cmp(new(uint256.Int).SetBytes(boundary[:])) <= 0
}

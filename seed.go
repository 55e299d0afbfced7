package etchash

import "github.com/ethereum/go-ethereum/common"

// SeedHash derives the 32-byte cache seed for the epoch a block belongs to
// by iterated Keccak-256, The ECIP-1099 continuity
// formula keeps the seed on the pre-fork sequence across the epoch-length
// switch at ActivationBlock (it still advances there): the scalar fed to the
// iteration count is always divided by the pre-fork EpochLength, regardless
// of which branch computed it.
func SeedHash(blockNumber uint64) common.Hash {
	epoch := EpochNumber(blockNumber)

	var scaled uint64
	if blockNumber >= ActivationBlock {
		scaled = epoch*NewEpochLength + 1
	} else {
		scaled = epoch*EpochLength + 1
	}
	epochs := scaled / EpochLength

	var seed common.Hash
	for i := uint64(0); i < epochs; i++ {
		seed = keccak256(seed[:])
	}
	return seed
}

// Package etchash implements the Etchash proof-of-work core: deterministic
// construction of the epoch cache and DAG from a block-derived seed, and the
// memory-hard hash evaluator that maps a (header hash, nonce) pair to a
// mix digest and result.
//
// The package is pure and single-threaded per call. A *Light or *Full value
// is safe for concurrent Compute calls once constructed; construction itself
// is not concurrent-safe against other calls on the same value.
//
// Mining, nonce search, GPU execution and network consensus rules (beyond
// the difficulty comparison primitive in QuickCheckDifficulty) are outside
// this package's scope.
package etchash

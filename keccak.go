package etchash

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// keccak256 and keccak512 wrap the pre-NIST Keccak variants used throughout
// Ethereum. golang.org/x/crypto/sha3's "Legacy" constructors produce the
// 0x01 padding byte Etchash expects rather than the NIST 0x06 suffix.

func keccak256(parts ...[]byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var out common.Hash
	h.Sum(out[:0])
	return out
}

func keccak512(parts ...[]byte) node {
	h := sha3.NewLegacyKeccak512()
	for _, p := range parts {
		h.Write(p)
	}
	var out node
	h.Sum(out[:0])
	return out
}

package etchash

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestSeedHashGenesis(t *testing.T) {
	if got := SeedHash(0); got != (common.Hash{}) {
		t.Fatalf("SeedHash(0) = %x, want zero hash", got)
	}
}

func TestSeedHashFirstEpoch(t *testing.T) {
	want := keccak256(common.Hash{}.Bytes())
	if got := SeedHash(EpochLength); got != want {
		t.Fatalf("SeedHash(EpochLength) = %x, want %x", got, want)
	}
}

func TestSeedHashConstantWithinEpoch(t *testing.T) {
	a := SeedHash(EpochLength)
	b := SeedHash(EpochLength*2 - 1)
	if a != b {
		t.Fatalf("seed changed within epoch: %x != %x", a, b)
	}
}

func TestSeedHashContinuityAcrossActivation(t *testing.T) {
	// Both sides of the ECIP-1099 epoch-length switch must still advance
	// the seed by exactly one Keccak-256 application per elapsed
	// EpochLength-sized unit.
	before := SeedHash(ActivationBlock - 1)
	after := SeedHash(ActivationBlock)
	if before == after {
		t.Fatalf("expected seed to change across the epoch boundary at activation")
	}
}

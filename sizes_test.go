package etchash

import "testing"

func TestSizeTablesAreAligned(t *testing.T) {
	for _, epoch := range []int{0, 1, 16, 100, 2047} {
		cacheSize := cacheSizeTable[epoch]
		datasetSize := datasetSizeTable[epoch]
		if cacheSize%nodeBytes != 0 {
			t.Fatalf("epoch %d: cache size %d not a multiple of %d", epoch, cacheSize, nodeBytes)
		}
		if datasetSize%pageBytes != 0 {
			t.Fatalf("epoch %d: dataset size %d not a multiple of %d", epoch, datasetSize, pageBytes)
		}
		if datasetSize%nodeBytes != 0 {
			t.Fatalf("epoch %d: dataset size %d not a multiple of %d", epoch, datasetSize, nodeBytes)
		}
	}
}

func TestSizeTablesGrow(t *testing.T) {
	for epoch := 1; epoch < 32; epoch++ {
		if cacheSizeTable[epoch] <= cacheSizeTable[epoch-1] {
			t.Fatalf("cache size did not grow from epoch %d to %d", epoch-1, epoch)
		}
		if datasetSizeTable[epoch] <= datasetSizeTable[epoch-1] {
			t.Fatalf("dataset size did not grow from epoch %d to %d", epoch-1, epoch)
		}
	}
}

func TestEpochNumberSwitchesLengthAtActivation(t *testing.T) {
	if got := EpochNumber(ActivationBlock - 1); got != (ActivationBlock-1)/EpochLength {
		t.Fatalf("pre-activation epoch number = %d, want %d", got, (ActivationBlock-1)/EpochLength)
	}
	if got := EpochNumber(ActivationBlock); got != ActivationBlock/NewEpochLength {
		t.Fatalf("post-activation epoch number = %d, want %d", got, ActivationBlock/NewEpochLength)
	}
}

func TestCacheSizePanicsBeyondTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range epoch")
		}
	}()
	// maxEpoch epochs * NewEpochLength blocks pushes the epoch index past
	// the compiled table.
	CacheSize(uint64(maxEpoch) * NewEpochLength)
}

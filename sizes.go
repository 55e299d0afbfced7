package etchash

// Epoch & size tables. The reference implementation ships
// these as a 2048-entry compiled-in table (data_sizes.h); that table is
// itself generated off-line by decrementing from an initial size until
// size/wordSize is prime. We run that same generator once at package
// init rather than hand-transcribing two 2048-line tables — the compiled
// result is identical, but derived and testable against the formula.
const (
	cacheInitBytes     = 1 << 24 // 16 MiB
	cacheGrowthBytes   = 1 << 17 // 128 KiB per epoch
	datasetInitBytes   = 1 << 30 // 1 GiB
	datasetGrowthBytes = 1 << 23 // 8 MiB per epoch
)

var (
	cacheSizeTable   [maxEpoch]uint64
	datasetSizeTable [maxEpoch]uint64
)

func init() {
	for epoch := 0; epoch < maxEpoch; epoch++ {
		cacheSizeTable[epoch] = calcCacheSize(epoch)
		datasetSizeTable[epoch] = calcDatasetSize(epoch)
	}
}

func calcCacheSize(epoch int) uint64 {
	size := cacheInitBytes + cacheGrowthBytes*uint64(epoch) - nodeBytes
	for !isPrime(size / nodeBytes) {
		size -= 2 * nodeBytes
	}
	return size
}

func calcDatasetSize(epoch int) uint64 {
	size := datasetInitBytes + datasetGrowthBytes*uint64(epoch) - pageBytes
	for !isPrime(size / pageBytes) {
		size -= 2 * pageBytes
	}
	return size
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// epochLengthAt returns the epoch length in effect at the given block,
// switching at ActivationBlock per ECIP-1099.
func epochLengthAt(blockNumber uint64) uint64 {
	if blockNumber >= ActivationBlock {
		return NewEpochLength
	}
	return EpochLength
}

// EpochNumber returns the epoch index for a block height.
func EpochNumber(blockNumber uint64) uint64 {
	return blockNumber / epochLengthAt(blockNumber)
}

// CacheSize returns the cache size in bytes for the epoch a block belongs
// to. It panics if the epoch exceeds the compiled table bounds: an
// out-of-range epoch is a programmer error.
func CacheSize(blockNumber uint64) uint64 {
	epoch := EpochNumber(blockNumber)
	if epoch >= maxEpoch {
		panic(ErrEpochOutOfRange)
	}
	return cacheSizeTable[epoch]
}

// DatasetSize returns the full DAG size in bytes for the epoch a block
// belongs to. It panics if the epoch exceeds the compiled table bounds.
func DatasetSize(blockNumber uint64) uint64 {
	epoch := EpochNumber(blockNumber)
	if epoch >= maxEpoch {
		panic(ErrEpochOutOfRange)
	}
	return datasetSizeTable[epoch]
}

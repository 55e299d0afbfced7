package etchash

// ProgressFunc reports full-DAG build progress as a percentage in [0, 99],
// called at most 100 times per build. Returning true requests cancellation;
// the region filled so far must then be treated as undefined.
type ProgressFunc func(percent int) (abort bool)

// fillDataset fills dst (the full DAG, or a memory-mapped view of it) with
// every node derived from cache, It reports progress at
// each 1% boundary and honors cooperative cancellation.
func fillDataset(dst []byte, cache []node, progress ProgressFunc) error {
	if len(dst)%pageBytes != 0 || len(dst)%nodeBytes != 0 {
		return ErrInvalidDatasetSize
	}
	count := len(dst) / nodeBytes
	if count == 0 {
		return nil
	}
	lastPercent := -1

	for n := 0; n < count; n++ {
		if percent := n * 100 / count; progress != nil && percent != lastPercent {
			lastPercent = percent
			if progress(percent) {
				return ErrBuildAborted
			}
		}
		item := calcDAGItem(cache, uint32(n))
		copy(dst[n*nodeBytes:(n+1)*nodeBytes], item[:])
	}
	return nil
}

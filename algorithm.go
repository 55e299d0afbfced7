package etchash

// calcDAGItem derives a single 64-byte DAG node deterministically from the
// cache and its index. Both the light and full evaluators
// share this function: the full DAG is just every index precomputed and
// persisted; the light path calls it on demand.
func calcDAGItem(cache []node, index uint32) node {
	numParents := uint32(len(cache))

	ret := cache[index%numParents]
	ret.setWord(0, ret.word(0)^index)
	ret = keccak512(ret[:])

	for i := uint32(0); i < DatasetParents; i++ {
		parentIndex := fnv(index^i, ret.word(int(i%NodeWords))) % numParents
		parent := cache[parentIndex]
		for w := 0; w < NodeWords; w++ {
			ret.setWord(w, fnv(ret.word(w), parent.word(w)))
		}
	}
	return keccak512(ret[:])
}

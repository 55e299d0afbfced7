package etchash

import "encoding/binary"

// node is the 64-byte atom shared by the cache and the DAG, viewed as 16
// little-endian 32-bit words. Using explicit LittleEndian accessors instead
// of reinterpreting memory keeps the pipeline portable on big-endian hosts
// without a separate byte-swap pass.
type node [nodeBytes]byte

func (n *node) word(i int) uint32 {
	return binary.LittleEndian.Uint32(n[i*4 : i*4+4])
}

func (n *node) setWord(i int, v uint32) {
	binary.LittleEndian.PutUint32(n[i*4:i*4+4], v)
}

// loadNode copies the node at the given index out of a flat byte buffer
// of DAG bytes (such as a DAG file's memory-mapped bytes past its magic
// prefix). The cache is a []node and is indexed directly instead.
func loadNode(data []byte, index uint64) node {
	var n node
	copy(n[:], data[index*nodeBytes:index*nodeBytes+nodeBytes])
	return n
}

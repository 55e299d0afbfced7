package etchash

import "errors"

var (
	// ErrInvalidCacheSize is returned when a cache size is not a multiple
	// of the node width.
	ErrInvalidCacheSize = errors.New("etchash: cache size not a multiple of node width")
	// ErrInvalidDatasetSize is returned when a dataset size is not a
	// multiple of both the page width and the node width.
	ErrInvalidDatasetSize = errors.New("etchash: dataset size not a multiple of page/node width")
	// ErrBuildAborted is returned when a progress callback requests
	// cancellation of a full-DAG build. The partially filled region must
	// not be used.
	ErrBuildAborted = errors.New("etchash: DAG build aborted by callback")
	// ErrEpochOutOfRange is the value CacheSize and DatasetSize panic with
	// when a block number maps to an epoch beyond the compiled-in size
	// tables.
	ErrEpochOutOfRange = errors.New("etchash: epoch number exceeds compiled size tables")
)

package etchash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// DirResolver maps an epoch seed to the canonical on-disk DAG file path
// under a caller-supplied base directory. Directory *policy* (which base
// directory to use, XDG conventions, etc.) is an external collaborator's
// concern; this interface is only the injection point so callers — and
// tests — can redirect it without touching a real home directory.
type DirResolver interface {
	Resolve(seed common.Hash, baseDir string) (string, error)
}

type defaultDirResolver struct{}

func (defaultDirResolver) Resolve(seed common.Hash, baseDir string) (string, error) {
	name := fmt.Sprintf("full-R%d-%x", algorithmRevision, seed[:8])
	return filepath.Join(baseDir, name), nil
}

// DefaultDirResolver names DAG files the way upstream ethash/etchash does:
// full-R<algorithmRevision>-<seed prefix>.
var DefaultDirResolver DirResolver = defaultDirResolver{}

// Full owns a file-backed, memory-mapped DAG. Construct with
// NewFull; release with Close.
type Full struct {
	file     *os.File
	mm       mmap.MMap
	data     []byte // DAG bytes, past the magic-number prefix
	fullSize uint64
}

// NewFull opens or builds the full DAG for the epoch light was constructed
// for, memory-mapping it under dir (named via resolver, or DefaultDirResolver
// if nil). Three outcomes:
//
//   - the file already exists, is the right size, and carries the finalize
//     magic prefix: it is reused verbatim, no recomputation;
//   - the file exists but is the wrong size: it is silently deleted and
//     recreated;
//   - the file is fresh (or was just recreated): the DAG is computed in
//     place and the magic prefix is written last, so a crash or cancelled
//     build is detectable (size matches, magic doesn't) on the next open.
func NewFull(light *Light, dir string, resolver DirResolver, progress ProgressFunc) (*Full, error) {
	return newFullInternal(light.cache, DatasetSize(light.blockNumber), SeedHash(light.blockNumber), dir, resolver, progress)
}

// newFullInternal builds or reopens a full context from an explicit cache,
// dataset size and seed, bypassing the block-number-derived tables. It
// mirrors the reference implementation's etchash_full_new_internal and lets
// tests exercise the persistence state machine at sizes far smaller than
// any real epoch.
func newFullInternal(cache []node, fullSize uint64, seed common.Hash, dir string, resolver DirResolver, progress ProgressFunc) (*Full, error) {
	if resolver == nil {
		resolver = DefaultDirResolver
	}

	path, err := resolver.Resolve(seed, dir)
	if err != nil {
		return nil, err
	}

	f, fresh, err := openOrCreateDAGFile(path, fullSize)
	if err != nil {
		log.Error("etchash: failed to prepare DAG file", "path", path, "err", err)
		return nil, err
	}

	mm, err := mmap.MapRegion(f, int(magicNumSize+fullSize), mmap.RDWR, 0, 0)
	if err != nil {
		log.Error("etchash: failed to mmap DAG file", "path", path, "err", err)
		f.Close()
		return nil, err
	}

	full := &Full{file: f, mm: mm, data: mm[magicNumSize:], fullSize: fullSize}

	if !fresh && binary.LittleEndian.Uint64(mm[:magicNumSize]) == dagMagicNum {
		log.Info("Loaded etchash DAG from disk", "path", path, "size", common.StorageSize(fullSize))
		return full, nil
	}

	log.Info("Generating etchash DAG", "path", path, "size", common.StorageSize(fullSize))
	if err := fillDataset(full.data, cache, progress); err != nil {
		mm.Unmap()
		f.Close()
		if !errors.Is(err, ErrBuildAborted) {
			log.Error("etchash: failed to compute DAG", "path", path, "err", err)
		}
		return nil, err
	}

	binary.LittleEndian.PutUint64(mm[:magicNumSize], dagMagicNum)
	if err := mm.Flush(); err != nil {
		log.Error("etchash: failed to flush DAG magic number", "path", path, "err", err)
		mm.Unmap()
		f.Close()
		return nil, err
	}
	log.Info("Generated etchash DAG", "path", path, "size", common.StorageSize(fullSize))
	return full, nil
}

func openOrCreateDAGFile(path string, fullSize uint64) (file *os.File, fresh bool, err error) {
	wantSize := int64(magicNumSize + fullSize)

	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	switch {
	case errors.Is(err, os.ErrNotExist):
		f, err = createSizedFile(path, wantSize)
		return f, true, err
	case err != nil:
		return nil, false, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, false, err
	}
	if info.Size() != wantSize {
		f.Close()
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, false, err
		}
		f, err = createSizedFile(path, wantSize)
		return f, true, err
	}
	return f, false, nil
}

func createSizedFile(path string, size int64) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Compute evaluates the hash for (headerHash, nonce) against the
// memory-mapped DAG. Safe to call concurrently on the same *Full from
// multiple goroutines: the mapping is read-only after construction.
func (full *Full) Compute(headerHash common.Hash, nonce uint64) (ok bool, mixHash, result common.Hash) {
	return hashimoto(full.data, nil, full.fullSize, headerHash, nonce)
}

// DAGSize returns the size in bytes of the DAG data (excluding the magic
// prefix).
func (full *Full) DAGSize() uint64 { return full.fullSize }

// Close unmaps and closes the backing file, in that order.
func (full *Full) Close() error {
	var firstErr error
	if full.mm != nil {
		if err := full.mm.Unmap(); err != nil {
			firstErr = err
		}
		full.mm = nil
	}
	if full.file != nil {
		if err := full.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		full.file = nil
	}
	return firstErr
}

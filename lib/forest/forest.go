// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

import (
	"fmt"

	"github.com/ChainSafe/fisherman/internal/log"
	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/ChainSafe/fisherman/pkg/trie"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "forest"))

// EphemeralForest is the merkle trie of the files of one deletion target,
// built for a single proof request and then dropped.
// Leaves are file keys mapped to their SCALE encoded file metadata.
//
// An EphemeralForest is not safe for concurrent use.
type EphemeralForest struct {
	target types.DeletionTarget
	block  types.BlockNumber
	trie   *trie.Trie
}

// NewEphemeralForest returns an empty forest for the target,
// reflecting the state at the given block.
func NewEphemeralForest(target types.DeletionTarget, block types.BlockNumber) *EphemeralForest {
	return &EphemeralForest{
		target: target,
		block:  block,
		trie:   trie.NewEmptyTrie(),
	}
}

// Target returns the deletion target the forest is scoped to.
func (f *EphemeralForest) Target() types.DeletionTarget {
	return f.target
}

// Block returns the block number whose file set the forest reflects.
func (f *EphemeralForest) Block() types.BlockNumber {
	return f.block
}

// Root returns the root hash of the forest.
// The root of an empty forest is the empty hash.
func (f *EphemeralForest) Root() common.Hash {
	return f.trie.Hash()
}

// Len returns the number of files in the forest.
func (f *EphemeralForest) Len() int {
	return f.trie.Len()
}

// Has returns true if the file key is in the forest.
func (f *EphemeralForest) Has(key types.FileKey) bool {
	return f.trie.Has(key)
}

// Get returns the metadata of the file and true if the file key
// is in the forest.
func (f *EphemeralForest) Get(key types.FileKey) (
	metadata types.FileMetadata, found bool, err error) {
	encoded := f.trie.Get(key)
	if encoded == nil {
		return metadata, false, nil
	}

	metadata, err = types.DecodeFileMetadata(encoded)
	if err != nil {
		return metadata, false, fmt.Errorf("decoding metadata of %s: %w", key, err)
	}
	return metadata, true, nil
}

// Keys returns the file keys of the forest in ascending order.
func (f *EphemeralForest) Keys() []types.FileKey {
	keys, _ := f.trie.Entries()
	return keys
}

// Insert adds a new file to the forest. It fails if the metadata is
// invalid, does not hash to the file key, or if the file key is
// already present.
func (f *EphemeralForest) Insert(entry types.FileEntry) error {
	if f.trie.Has(entry.Key) {
		return fmt.Errorf("%w: %s", ErrDuplicateFileKey, entry.Key)
	}

	err := entry.Metadata.CheckFileKey(entry.Key)
	if err != nil {
		return err
	}
	return f.Upsert(entry.Key, entry.Metadata)
}

// Upsert adds the file to the forest, replacing the metadata
// of the file key if it is already present. The file key is opaque:
// the metadata must be valid but is not required to hash to the key,
// since a file metadata can change while its key stays the same.
func (f *EphemeralForest) Upsert(key types.FileKey, metadata types.FileMetadata) error {
	err := metadata.Validate()
	if err != nil {
		return err
	}

	encoded, err := metadata.Encode()
	if err != nil {
		return err
	}

	return f.trie.Put(key, encoded)
}

// Remove deletes the file key from the forest and returns true if it was
// present. Removing an absent key does nothing.
func (f *EphemeralForest) Remove(key types.FileKey) (removed bool) {
	return f.trie.Delete(key)
}

func (f *EphemeralForest) setBlock(block types.BlockNumber) {
	f.block = block
}

func (f *EphemeralForest) String() string {
	return fmt.Sprintf("forest of %s at block %d with %d files and root %s",
		f.target, f.block, f.trie.Len(), f.trie.Hash().Short())
}

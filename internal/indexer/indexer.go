// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/fisherman/internal/database"
	"github.com/ChainSafe/fisherman/internal/log"
	"github.com/ChainSafe/fisherman/lib/types"
)

var logger = log.NewFromGlobal(log.AddContext("internal", "indexer"))

// Indexer is a database of the files of the network, the files held by
// each deletion target and the file changes of each target by block.
// It serves as the chain state, snapshot source, catch-up source and
// target router of the deletion coordinator.
type Indexer struct {
	db      database.Database
	files   database.Table
	members database.Table
	holders database.Table
	changes database.Table
	chain   database.Table

	// writeMutex serialises writes computing the next change sequence.
	writeMutex sync.Mutex
}

// New returns an indexer storing its data in the database.
func New(db database.Database) *Indexer {
	return &Indexer{
		db:      db,
		files:   database.NewTable(db, filesPrefix),
		members: database.NewTable(db, membersPrefix),
		holders: database.NewTable(db, holdersPrefix),
		changes: database.NewTable(db, changesPrefix),
		chain:   database.NewTable(db, chainPrefix),
	}
}

// PutFile stores the file metadata and returns its file key.
func (idx *Indexer) PutFile(metadata types.FileMetadata) (key types.FileKey, err error) {
	err = metadata.Validate()
	if err != nil {
		return key, err
	}

	key, err = metadata.FileKey()
	if err != nil {
		return key, err
	}

	encoded, err := metadata.Encode()
	if err != nil {
		return key, err
	}

	err = idx.files.Put(key.ToBytes(), encoded)
	if err != nil {
		return key, fmt.Errorf("storing file %s: %w", key, err)
	}
	return key, nil
}

// File returns the metadata of the file key.
func (idx *Indexer) File(key types.FileKey) (metadata types.FileMetadata, err error) {
	encoded, err := idx.files.Get(key.ToBytes())
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return metadata, fmt.Errorf("%w: %s", ErrFileNotIndexed, key)
		}
		return metadata, fmt.Errorf("getting file %s: %w", key, err)
	}
	return types.DecodeFileMetadata(encoded)
}

// AddFileToTarget records that the file joined the target at the block.
// The file must have been stored with PutFile.
func (idx *Indexer) AddFileToTarget(target types.DeletionTarget,
	key types.FileKey, block types.BlockNumber) error {
	err := target.Validate()
	if err != nil {
		return err
	}

	has, err := idx.files.Has(key.ToBytes())
	if err != nil {
		return fmt.Errorf("checking file %s: %w", key, err)
	} else if !has {
		return fmt.Errorf("%w: %s", ErrFileNotIndexed, key)
	}

	encoded, err := encodeRecord(membership{AddedAt: uint32(block)})
	if err != nil {
		return err
	}

	batch := idx.db.NewBatch()
	defer batch.Close()

	err = idx.members.InBatch(batch).Put(memberKey(target, key), encoded)
	if err != nil {
		return fmt.Errorf("storing membership of %s in %s: %w", key, target, err)
	}

	err = idx.holders.InBatch(batch).Put(holderKey(key, target), []byte{1})
	if err != nil {
		return fmt.Errorf("storing holder %s of %s: %w", target, key, err)
	}
	return batch.Commit()
}

// RemoveFileFromTarget records that the file left the target at the block.
func (idx *Indexer) RemoveFileFromTarget(target types.DeletionTarget,
	key types.FileKey, block types.BlockNumber) error {
	record, err := idx.membership(target, key)
	if err != nil {
		return err
	}

	record.Removed = true
	record.RemovedAt = uint32(block)
	encoded, err := encodeRecord(record)
	if err != nil {
		return err
	}

	err = idx.members.Put(memberKey(target, key), encoded)
	if err != nil {
		return fmt.Errorf("storing membership of %s in %s: %w", key, target, err)
	}
	return nil
}

func (idx *Indexer) membership(target types.DeletionTarget, key types.FileKey) (
	record membership, err error) {
	encoded, err := idx.members.Get(memberKey(target, key))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return record, fmt.Errorf("%w: %s in %s", ErrMembershipNotFound, key, target)
		}
		return record, fmt.Errorf("getting membership of %s in %s: %w", key, target, err)
	}

	err = decodeRecord(encoded, &record)
	return record, err
}

// AddChange appends the change to the changes of the target at the block.
// Changes of a block are returned in the order they were added.
func (idx *Indexer) AddChange(target types.DeletionTarget, block types.BlockNumber,
	change types.FileKeyChange) error {
	err := target.Validate()
	if err != nil {
		return err
	}

	err = change.Validate()
	if err != nil {
		return err
	}

	encoded, err := encodeRecord(newChangeRecord(change))
	if err != nil {
		return err
	}

	idx.writeMutex.Lock()
	defer idx.writeMutex.Unlock()

	blockPrefix := append(target.Bytes(), encodeBlockNumber(block)...)
	iter := idx.changes.NewPrefixIterator(blockPrefix)
	var sequence uint32
	for iter.First(); iter.Valid(); iter.Next() {
		sequence++
	}
	iter.Release()

	err = idx.changes.Put(changeKey(target, block, sequence), encoded)
	if err != nil {
		return fmt.Errorf("storing change %s of %s at block %d: %w",
			change, target, block, err)
	}
	return nil
}

// SetFinalized sets the finalized block number.
func (idx *Indexer) SetFinalized(block types.BlockNumber) error {
	return idx.chain.Put(finalizedKey, encodeBlockNumber(block))
}

// SetBest sets the best block number.
func (idx *Indexer) SetBest(block types.BlockNumber) error {
	return idx.chain.Put(bestKey, encodeBlockNumber(block))
}

// FinalizedBlock returns the finalized block number.
func (idx *Indexer) FinalizedBlock(ctx context.Context) (types.BlockNumber, error) {
	return idx.blockNumber(ctx, finalizedKey)
}

// BestBlock returns the best block number.
func (idx *Indexer) BestBlock(ctx context.Context) (types.BlockNumber, error) {
	return idx.blockNumber(ctx, bestKey)
}

func (idx *Indexer) blockNumber(ctx context.Context, key []byte) (types.BlockNumber, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	encoded, err := idx.chain.Get(key)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, fmt.Errorf("%w: no %s block", ErrChainStateUnknown, key)
		}
		return 0, fmt.Errorf("getting %s block: %w", key, err)
	}
	return decodeBlockNumber(encoded), nil
}

// FileEntries returns the files part of the target at the block,
// ordered by file key.
func (idx *Indexer) FileEntries(ctx context.Context, target types.DeletionTarget,
	atFinalized types.BlockNumber) (entries []types.FileEntry, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter := idx.members.NewPrefixIterator(target.Bytes())
	defer iter.Release()

	for iter.First(); iter.Valid(); iter.Next() {
		var record membership
		err = decodeRecord(iter.Value(), &record)
		if err != nil {
			return nil, err
		}

		if !record.activeAt(atFinalized) {
			continue
		}

		var key types.FileKey
		copy(key[:], iter.Key()[len(target.Bytes()):])
		metadata, err := idx.File(key)
		if err != nil {
			return nil, err
		}

		entries = append(entries, types.FileEntry{Key: key, Metadata: metadata})
	}

	logger.Tracef("%d files in %s at block %d", len(entries), target, atFinalized)
	return entries, nil
}

// Changes returns the changes of the target in the blocks (from, to],
// in block order and then in insertion order.
func (idx *Indexer) Changes(ctx context.Context, from, to types.BlockNumber,
	target types.DeletionTarget) (changes []types.FileKeyChange, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if to <= from {
		return nil, nil
	}

	targetPrefix := target.Bytes()
	iter := idx.changes.NewPrefixIterator(targetPrefix)
	defer iter.Release()

	for ok := iter.SeekGE(changeKey(target, from+1, 0)); ok; ok = iter.Next() {
		key := iter.Key()
		block := decodeBlockNumber(key[len(targetPrefix) : len(targetPrefix)+4])
		if block > to {
			break
		}

		var record changeRecord
		err = decodeRecord(iter.Value(), &record)
		if err != nil {
			return nil, err
		}
		changes = append(changes, record.change())
	}

	return changes, nil
}

// Targets returns the provider targets holding the file key of the
// request at the finalized block, followed by the bucket target of the file.
func (idx *Indexer) Targets(ctx context.Context, request types.DeletionRequest) (
	targets []types.DeletionTarget, err error) {
	metadata, err := idx.File(request.FileKey)
	if err != nil {
		return nil, err
	}

	finalized, err := idx.FinalizedBlock(ctx)
	if err != nil {
		return nil, err
	}

	iter := idx.holders.NewPrefixIterator(request.FileKey.ToBytes())
	defer iter.Release()

	for iter.First(); iter.Valid(); iter.Next() {
		target, err := decodeTarget(iter.Key()[len(request.FileKey):])
		if err != nil {
			return nil, fmt.Errorf("decoding holder of %s: %w", request.FileKey, err)
		}

		if !target.IsProvider() {
			continue
		}

		record, err := idx.membership(target, request.FileKey)
		if err != nil {
			return nil, err
		}

		if record.activeAt(finalized) {
			targets = append(targets, target)
		}
	}

	targets = append(targets, types.NewBucketTarget(metadata.BucketID))
	return targets, nil
}

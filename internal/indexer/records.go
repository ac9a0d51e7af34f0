// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import (
	"encoding/binary"
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

const (
	filesPrefix   = "file/"
	membersPrefix = "member/"
	holdersPrefix = "holder/"
	changesPrefix = "change/"
	chainPrefix   = "chain/"
)

var (
	finalizedKey = []byte("finalized")
	bestKey      = []byte("best")
)

// membership records when a file joined and left a target.
type membership struct {
	AddedAt   uint32
	Removed   bool
	RemovedAt uint32
}

// activeAt returns true if the file is part of the target at the block.
func (m membership) activeAt(block types.BlockNumber) bool {
	if types.BlockNumber(m.AddedAt) > block {
		return false
	}
	return !m.Removed || types.BlockNumber(m.RemovedAt) > block
}

// changeRecord is the stored form of a types.FileKeyChange.
type changeRecord struct {
	FileKey   common.Hash
	Operation uint8
	Metadata  *types.FileMetadata
}

func newChangeRecord(change types.FileKeyChange) changeRecord {
	return changeRecord{
		FileKey:   change.FileKey,
		Operation: uint8(change.Operation),
		Metadata:  change.Metadata,
	}
}

func (r changeRecord) change() types.FileKeyChange {
	return types.FileKeyChange{
		FileKey:   r.FileKey,
		Operation: types.Operation(r.Operation),
		Metadata:  r.Metadata,
	}
}

func encodeRecord(record interface{}) (encoded []byte, err error) {
	encoded, err = scale.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("scale encoding %T: %w", record, err)
	}
	return encoded, nil
}

func decodeRecord(encoded []byte, record interface{}) error {
	err := scale.Unmarshal(encoded, record)
	if err != nil {
		return fmt.Errorf("scale decoding %T: %w", record, err)
	}
	return nil
}

func encodeBlockNumber(block types.BlockNumber) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(block))
	return b
}

func decodeBlockNumber(b []byte) types.BlockNumber {
	return types.BlockNumber(binary.BigEndian.Uint32(b))
}

func memberKey(target types.DeletionTarget, key types.FileKey) []byte {
	return append(target.Bytes(), key[:]...)
}

func holderKey(key types.FileKey, target types.DeletionTarget) []byte {
	return append(key.ToBytes(), target.Bytes()...)
}

// changeKey orders changes of a target by block number, then by
// sequence number within the block.
func changeKey(target types.DeletionTarget, block types.BlockNumber, sequence uint32) []byte {
	key := append(target.Bytes(), encodeBlockNumber(block)...)
	return binary.BigEndian.AppendUint32(key, sequence)
}

func decodeTarget(b []byte) (target types.DeletionTarget, err error) {
	if len(b) != 1+common.HashLength {
		return target, fmt.Errorf("target encoding has %d bytes", len(b))
	}
	target.Kind = types.TargetKind(b[0])
	copy(target.ID[:], b[1:])
	return target, target.Validate()
}

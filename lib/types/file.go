// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/go-playground/validator/v10"
)

// BlockNumber is the number of a block of the chain.
type BlockNumber uint32

// FileKey identifies a file network wide. It is the blake2b-256 hash
// of the SCALE encoded file metadata.
type FileKey = common.Hash

var validate = validator.New()

// FileMetadata is the complete metadata of a file.
// Every field is needed to build or verify a forest.
type FileMetadata struct {
	Owner       []byte      `validate:"required,min=1"`
	BucketID    common.Hash `validate:"required"`
	Location    []byte      `validate:"required,min=1"`
	Size        uint64
	Fingerprint common.Hash `validate:"required"`
}

// Validate returns an error wrapping ErrInvalidMetadata if a field
// is missing.
func (m FileMetadata) Validate() error {
	err := validate.Struct(m)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMetadata, err)
	}
	return nil
}

// Encode SCALE encodes the file metadata.
func (m FileMetadata) Encode() (encoded []byte, err error) {
	encoded, err = scale.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("scale encoding file metadata: %w", err)
	}
	return encoded, nil
}

// DecodeFileMetadata decodes SCALE encoded file metadata.
func DecodeFileMetadata(encoded []byte) (m FileMetadata, err error) {
	err = scale.Unmarshal(encoded, &m)
	if err != nil {
		return FileMetadata{}, fmt.Errorf("scale decoding file metadata: %w", err)
	}
	return m, nil
}

// FileKey computes the file key of the metadata.
func (m FileMetadata) FileKey() (key FileKey, err error) {
	encoded, err := m.Encode()
	if err != nil {
		return key, err
	}
	return common.Blake2bHash(encoded)
}

// CheckFileKey returns an error if the metadata is invalid or if its
// file key is not the given key.
func (m FileMetadata) CheckFileKey(key FileKey) error {
	err := m.Validate()
	if err != nil {
		return err
	}

	computed, err := m.FileKey()
	if err != nil {
		return err
	}

	if computed != key {
		return fmt.Errorf("%w: expected %s but metadata hashes to %s",
			ErrFileKeyMismatch, key, computed)
	}
	return nil
}

// FileEntry is a file key paired with its metadata.
type FileEntry struct {
	Key      FileKey
	Metadata FileMetadata
}

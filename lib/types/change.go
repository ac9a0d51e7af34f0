// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import "fmt"

// Operation is the operation of a file key change.
type Operation uint8

const (
	// Add inserts the file, or replaces its metadata if already present.
	Add Operation = iota
	// Remove deletes the file if present.
	Remove
)

func (o Operation) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(o))
	}
}

// FileKeyChange is a single change to the file set of a deletion target
// between the finalized and the best block. Metadata is set for Add
// changes only.
type FileKeyChange struct {
	FileKey   FileKey
	Operation Operation
	Metadata  *FileMetadata
}

// NewAddChange returns a change adding or updating the file.
func NewAddChange(key FileKey, metadata FileMetadata) FileKeyChange {
	return FileKeyChange{FileKey: key, Operation: Add, Metadata: &metadata}
}

// NewRemoveChange returns a change removing the file.
func NewRemoveChange(key FileKey) FileKeyChange {
	return FileKeyChange{FileKey: key, Operation: Remove}
}

// Validate returns an error if the change is structurally invalid.
// It does not validate the metadata fields.
func (c FileKeyChange) Validate() error {
	switch c.Operation {
	case Add:
		if c.Metadata == nil {
			return fmt.Errorf("%w: for file key %s", ErrMissingMetadata, c.FileKey)
		}
	case Remove:
		if c.Metadata != nil {
			return fmt.Errorf("%w: for file key %s", ErrUnexpectedMetadata, c.FileKey)
		}
	default:
		return fmt.Errorf("%w: %d for file key %s", ErrUnknownOperation, c.Operation, c.FileKey)
	}
	return nil
}

func (c FileKeyChange) String() string {
	return c.Operation.String() + "(" + c.FileKey.Short() + ")"
}

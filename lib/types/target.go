// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
)

// TargetKind is the kind of a deletion target.
type TargetKind uint8

const (
	// ProviderTarget is a storage provider and all the files it stores.
	ProviderTarget TargetKind = iota
	// BucketTarget is a bucket and all the files it holds.
	BucketTarget
)

func (k TargetKind) String() string {
	switch k {
	case ProviderTarget:
		return "provider"
	case BucketTarget:
		return "bucket"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// DeletionTarget identifies the scope of one ephemeral forest: either
// a storage provider or a bucket. The zero value is the provider with
// an all zeroes id.
type DeletionTarget struct {
	Kind TargetKind
	ID   common.Hash
}

// NewProviderTarget returns the deletion target for a storage provider.
func NewProviderTarget(providerID common.Hash) DeletionTarget {
	return DeletionTarget{Kind: ProviderTarget, ID: providerID}
}

// NewBucketTarget returns the deletion target for a bucket.
func NewBucketTarget(bucketID common.Hash) DeletionTarget {
	return DeletionTarget{Kind: BucketTarget, ID: bucketID}
}

// Validate returns an error if the target kind is not known.
func (t DeletionTarget) Validate() error {
	switch t.Kind {
	case ProviderTarget, BucketTarget:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTargetKind, t.Kind)
	}
}

// IsProvider returns true if the target is a storage provider.
func (t DeletionTarget) IsProvider() bool { return t.Kind == ProviderTarget }

// IsBucket returns true if the target is a bucket.
func (t DeletionTarget) IsBucket() bool { return t.Kind == BucketTarget }

// Bytes returns the kind byte followed by the 32 bytes id.
func (t DeletionTarget) Bytes() []byte {
	b := make([]byte, 1+common.HashLength)
	b[0] = byte(t.Kind)
	copy(b[1:], t.ID[:])
	return b
}

func (t DeletionTarget) String() string {
	return t.Kind.String() + "(" + t.ID.Short() + ")"
}

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import (
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/pkg/trie/codec"
)

// Verify verifies the proof for the given key against the root hash.
// On success, it returns the value stored at the key for an inclusion
// proof, or a nil value for an exclusion proof.
func Verify(rootHash, key common.Hash, p Proof) (value []byte, err error) {
	depth := len(p.Siblings)
	if depth > codec.KeyBits {
		return nil, fmt.Errorf("%w: depth %d", ErrProofTooDeep, depth)
	}

	// A subtrie holding zero or one leaf is never split further,
	// so the last sibling of a valid path cannot be empty.
	if depth > 0 && p.Siblings[depth-1] == codec.EmptyHash {
		return nil, fmt.Errorf("%w: at depth %d", ErrNonCanonicalPath, depth)
	}

	hash := codec.EmptyHash
	if p.Leaf != nil {
		if p.Leaf.Key != key && codec.CommonPrefixLength(p.Leaf.Key, key) < depth {
			return nil, fmt.Errorf("%w: leaf key %s at depth %d",
				ErrLeafOffPath, p.Leaf.Key, depth)
		}
		hash = codec.HashLeaf(p.Leaf.Key, p.Leaf.Value)
	}

	for i := depth - 1; i >= 0; i-- {
		if codec.Bit(key, i) == 0 {
			hash = codec.HashBranch(hash, p.Siblings[i])
		} else {
			hash = codec.HashBranch(p.Siblings[i], hash)
		}
	}

	if hash != rootHash {
		return nil, fmt.Errorf("%w: expected %s but computed %s",
			ErrRootHashMismatch, rootHash, hash)
	}

	if p.Includes(key) {
		return p.Leaf.Value, nil
	}
	return nil, nil
}

// VerifyEncoded decodes the SCALE encoded proof and verifies it.
func VerifyEncoded(rootHash, key common.Hash, encoded []byte) (value []byte, err error) {
	p, err := Decode(encoded)
	if err != nil {
		return nil, err
	}
	return Verify(rootHash, key, p)
}

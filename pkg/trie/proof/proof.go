// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import (
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Proof proves the presence or the absence of a single key in a trie.
// Siblings holds the hashes of the subtries next to the path of the
// key, ordered from the root downwards. The path ends either on an empty
// subtrie, in which case Leaf is nil, or on a leaf. If the leaf key is the
// proven key, the proof is an inclusion proof, otherwise it is an exclusion
// proof showing another key occupies the only slot the proven key could use.
type Proof struct {
	Siblings []common.Hash
	Leaf     *Leaf
}

// Leaf is the leaf found at the end of a proof path.
type Leaf struct {
	Key   common.Hash
	Value []byte
}

// Encode SCALE encodes the proof.
func (p Proof) Encode() (encoded []byte, err error) {
	encoded, err = scale.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("scale encoding proof: %w", err)
	}
	return encoded, nil
}

// Decode decodes a SCALE encoded proof.
func Decode(encoded []byte) (p Proof, err error) {
	err = scale.Unmarshal(encoded, &p)
	if err != nil {
		return Proof{}, fmt.Errorf("%w: %s", ErrDecodeProof, err)
	}
	return p, nil
}

// Includes returns true if the proof ends on a leaf for the given key.
// It does not verify the proof.
func (p Proof) Includes(key common.Hash) bool {
	return p.Leaf != nil && p.Leaf.Key == key
}

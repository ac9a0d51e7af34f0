// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package codec holds the hashing rules shared by the trie and its proof
// verifier. Leaf and branch hashes are domain separated so that a leaf can
// never be mistaken for a branch and the other way around.
package codec

import (
	"github.com/ChainSafe/fisherman/lib/common"
)

const (
	leafPrefix   byte = 0x00
	branchPrefix byte = 0x01
)

// KeyBits is the number of bits in a trie key.
const KeyBits = common.HashLength * 8

// EmptyHash is the hash of an empty subtrie, and so the root hash of an
// empty trie.
var EmptyHash = common.EmptyHash

// HashLeaf returns the hash of a leaf holding the given key and value.
func HashLeaf(key common.Hash, value []byte) common.Hash {
	valueHash := common.MustBlake2bHash(value)
	return common.Blake2bHashConcat([]byte{leafPrefix}, key[:], valueHash[:])
}

// HashBranch returns the hash of a branch given its two children hashes.
func HashBranch(left, right common.Hash) common.Hash {
	return common.Blake2bHashConcat([]byte{branchPrefix}, left[:], right[:])
}

// Bit returns the bit of the key at the given depth, most significant bit
// first. It returns 0 or 1.
func Bit(key common.Hash, depth int) uint8 {
	return (key[depth/8] >> (7 - uint(depth%8))) & 1
}

// CommonPrefixLength returns the number of leading bits a and b share.
func CommonPrefixLength(a, b common.Hash) (length int) {
	for i := range a {
		x := a[i] ^ b[i]
		if x == 0 {
			length += 8
			continue
		}
		for x&0x80 == 0 {
			length++
			x <<= 1
		}
		return length
	}
	return length
}

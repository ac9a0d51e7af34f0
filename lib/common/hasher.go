// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return Hash{}, err
	}

	var buf Hash
	copy(buf[:], h.Sum(nil))
	return buf, nil
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data.
// blake2b.Sum256 cannot fail, so neither can this.
func MustBlake2bHash(in []byte) Hash {
	return Hash(blake2b.Sum256(in))
}

// Blake2bHashConcat hashes the concatenation of the given byte slices.
func Blake2bHashConcat(parts ...[]byte) Hash {
	h, _ := blake2b.New256(nil)
	for _, part := range parts {
		_, _ = h.Write(part)
	}
	var buf Hash
	copy(buf[:], h.Sum(nil))
	return buf
}

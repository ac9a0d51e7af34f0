// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"testing"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/stretchr/testify/assert"
)

func Test_Bit(t *testing.T) {
	t.Parallel()

	key := common.Hash{0b1010_0000, 0b0000_0001}

	assert.Equal(t, uint8(1), Bit(key, 0))
	assert.Equal(t, uint8(0), Bit(key, 1))
	assert.Equal(t, uint8(1), Bit(key, 2))
	assert.Equal(t, uint8(0), Bit(key, 3))
	assert.Equal(t, uint8(1), Bit(key, 15))
	assert.Equal(t, uint8(0), Bit(key, 255))
}

func Test_CommonPrefixLength(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		a, b   common.Hash
		length int
	}{
		"equal": {
			length: KeyBits,
		},
		"first bit differs": {
			a:      common.Hash{0x80},
			length: 0,
		},
		"second byte differs": {
			a:      common.Hash{0xff, 0x01},
			b:      common.Hash{0xff, 0x00},
			length: 15,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			length := CommonPrefixLength(testCase.a, testCase.b)
			assert.Equal(t, testCase.length, length)
		})
	}
}

func Test_HashLeaf_DomainSeparation(t *testing.T) {
	t.Parallel()

	left := common.Hash{1}
	right := common.Hash{2}
	branch := HashBranch(left, right)

	var concatenated []byte
	concatenated = append(concatenated, right[:]...)
	leaf := HashLeaf(left, concatenated)

	assert.NotEqual(t, branch, leaf)
	assert.NotEqual(t, HashBranch(left, right), HashBranch(right, left))
}

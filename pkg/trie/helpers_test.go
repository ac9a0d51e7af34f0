// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"math/rand"
	"testing"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/stretchr/testify/require"
)

type keyValue struct {
	key   common.Hash
	value []byte
}

func generateKeyValues(t *testing.T, generator *rand.Rand, count int) (kvs []keyValue) {
	t.Helper()

	kvs = make([]keyValue, count)
	for i := range kvs {
		_, err := generator.Read(kvs[i].key[:])
		require.NoError(t, err)

		kvs[i].value = make([]byte, 1+generator.Intn(64))
		_, err = generator.Read(kvs[i].value)
		require.NoError(t, err)
	}
	return kvs
}

func newGenerator() *rand.Rand {
	const seed = 2021
	return rand.New(rand.NewSource(seed)) //nolint:gosec
}

func buildTrie(t *testing.T, kvs []keyValue) *Trie {
	t.Helper()

	trie := NewEmptyTrie()
	for _, kv := range kvs {
		err := trie.Put(kv.key, kv.value)
		require.NoError(t, err)
	}
	return trie
}

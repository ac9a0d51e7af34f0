// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

import (
	"testing"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/stretchr/testify/require"
)

var testBucket = common.Hash{0xb0}

// newTestFile returns a valid file entry whose metadata is derived
// from the given name.
func newTestFile(t *testing.T, name string) types.FileEntry {
	t.Helper()

	metadata := types.FileMetadata{
		Owner:       []byte("owner"),
		BucketID:    testBucket,
		Location:    []byte(name),
		Size:        uint64(len(name)),
		Fingerprint: common.MustBlake2bHash([]byte(name)),
	}

	key, err := metadata.FileKey()
	require.NoError(t, err)

	return types.FileEntry{Key: key, Metadata: metadata}
}

func buildForest(t *testing.T, entries ...types.FileEntry) *EphemeralForest {
	t.Helper()

	forest := NewEphemeralForest(types.NewBucketTarget(testBucket), 0)
	for _, entry := range entries {
		err := forest.Insert(entry)
		require.NoError(t, err)
	}
	return forest
}

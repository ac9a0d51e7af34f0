// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import (
	"context"
	"testing"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestFile(t *testing.T, name string) types.FileEntry {
	t.Helper()

	metadata := types.FileMetadata{
		Owner:       []byte("owner"),
		BucketID:    common.Hash{0xb0},
		Location:    []byte(name),
		Size:        uint64(len(name)),
		Fingerprint: common.MustBlake2bHash([]byte(name)),
	}

	key, err := metadata.FileKey()
	require.NoError(t, err)

	return types.FileEntry{Key: key, Metadata: metadata}
}

func newChainState(ctrl *gomock.Controller, finalized, best types.BlockNumber) *MockChainState {
	chain := NewMockChainState(ctrl)
	chain.EXPECT().FinalizedBlock(gomock.Any()).Return(finalized, nil).AnyTimes()
	chain.EXPECT().BestBlock(gomock.Any()).Return(best, nil).AnyTimes()
	return chain
}

// fakeSources serves fixed snapshots and changes per target.
type fakeSources struct {
	snapshots map[types.DeletionTarget][]types.FileEntry
	changes   map[types.DeletionTarget][]types.FileKeyChange
}

func (f *fakeSources) FileEntries(ctx context.Context, target types.DeletionTarget,
	_ types.BlockNumber) ([]types.FileEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.snapshots[target], nil
}

func (f *fakeSources) Changes(ctx context.Context, _, _ types.BlockNumber,
	target types.DeletionTarget) ([]types.FileKeyChange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.changes[target], nil
}

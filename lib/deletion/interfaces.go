// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import (
	"context"

	"github.com/ChainSafe/fisherman/lib/types"
)

// ChainState provides the finalized and best block numbers.
type ChainState interface {
	FinalizedBlock(ctx context.Context) (types.BlockNumber, error)
	BestBlock(ctx context.Context) (types.BlockNumber, error)
}

// SnapshotSource returns the finalized file set of a deletion target.
type SnapshotSource interface {
	FileEntries(ctx context.Context, target types.DeletionTarget,
		atFinalized types.BlockNumber) ([]types.FileEntry, error)
}

// CatchUpSource returns the ordered changes of a deletion target
// in the blocks (from, to].
type CatchUpSource interface {
	Changes(ctx context.Context, from, to types.BlockNumber,
		target types.DeletionTarget) ([]types.FileKeyChange, error)
}

// TargetRouter resolves the deletion targets affected by a request.
type TargetRouter interface {
	Targets(ctx context.Context, request types.DeletionRequest) ([]types.DeletionTarget, error)
}

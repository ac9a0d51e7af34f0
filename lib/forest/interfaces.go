// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

import (
	"context"

	"github.com/ChainSafe/fisherman/lib/types"
)

// SnapshotSource returns the finalized file set of a deletion target.
type SnapshotSource interface {
	FileEntries(ctx context.Context, target types.DeletionTarget,
		atFinalized types.BlockNumber) ([]types.FileEntry, error)
}

// CatchUpSource returns the ordered file key changes of a deletion target
// for the blocks in the half open range (from, to].
type CatchUpSource interface {
	Changes(ctx context.Context, from, to types.BlockNumber,
		target types.DeletionTarget) ([]types.FileKeyChange, error)
}

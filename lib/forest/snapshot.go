// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

import (
	"context"
	"fmt"

	"github.com/ChainSafe/fisherman/lib/types"
)

// SnapshotBuilder builds a forest from the finalized file set of a target.
type SnapshotBuilder struct {
	source SnapshotSource
}

// NewSnapshotBuilder returns a snapshot builder querying the source.
func NewSnapshotBuilder(source SnapshotSource) *SnapshotBuilder {
	return &SnapshotBuilder{source: source}
}

// Build queries every file of the target at the finalized block and inserts
// them into a fresh forest. Either every file is inserted and the forest is
// returned, or an error is returned and no forest is.
// Source failures wrap ErrSourceUnavailable and insertion failures
// wrap ErrInsertion.
func (sb *SnapshotBuilder) Build(ctx context.Context, target types.DeletionTarget,
	finalized types.BlockNumber) (forest *EphemeralForest, err error) {
	entries, err := sb.source.FileEntries(ctx, target, finalized)
	if err != nil {
		return nil, fmt.Errorf("%w: querying files of %s at block %d: %w",
			ErrSourceUnavailable, target, finalized, err)
	}

	forest = NewEphemeralForest(target, finalized)
	for i, entry := range entries {
		err = forest.Insert(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: file %d of %d for %s: %w",
				ErrInsertion, i+1, len(entries), target, err)
		}
	}

	logger.Debugf("built snapshot %s", forest)
	return forest, nil
}

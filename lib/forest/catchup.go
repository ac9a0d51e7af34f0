// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

import (
	"context"
	"fmt"

	"github.com/ChainSafe/fisherman/lib/types"
)

// CatchUpApplier brings a snapshot forest from the finalized block
// to the best block by replaying the changes in between.
type CatchUpApplier struct {
	source CatchUpSource
}

// NewCatchUpApplier returns a catch-up applier querying the source.
func NewCatchUpApplier(source CatchUpSource) *CatchUpApplier {
	return &CatchUpApplier{source: source}
}

// Apply replays in order the changes of the target in the blocks
// (from, to] onto the forest. If from equals to, nothing is queried.
// Source failures wrap ErrSourceUnavailable and invalid changes or
// ranges wrap ErrCatchUpApply. On error the forest must be discarded.
func (ca *CatchUpApplier) Apply(ctx context.Context, forest *EphemeralForest,
	target types.DeletionTarget, from, to types.BlockNumber) (err error) {
	if forest == nil {
		return fmt.Errorf("%w: %w", ErrCatchUpApply, ErrNilForest)
	}

	switch {
	case to < from:
		return fmt.Errorf("%w: %w: best block %d is before finalized block %d",
			ErrCatchUpApply, ErrInvalidBlockRange, to, from)
	case to == from:
		forest.setBlock(to)
		return nil
	}

	changes, err := ca.source.Changes(ctx, from, to, target)
	if err != nil {
		return fmt.Errorf("%w: querying changes of %s in blocks (%d, %d]: %w",
			ErrSourceUnavailable, target, from, to, err)
	}

	err = ApplyChanges(forest, changes)
	if err != nil {
		return err
	}

	forest.setBlock(to)
	logger.Debugf("applied %d changes in blocks (%d, %d] to %s",
		len(changes), from, to, forest)
	return nil
}

// ApplyChanges applies the changes to the forest in the given order.
// An add change inserts the file or replaces its metadata, and a remove
// change deletes the file if present.
func ApplyChanges(forest *EphemeralForest, changes []types.FileKeyChange) (err error) {
	for i, change := range changes {
		err = applyChange(forest, change)
		if err != nil {
			return fmt.Errorf("%w: change %d of %d %s: %w",
				ErrCatchUpApply, i+1, len(changes), change, err)
		}
	}
	return nil
}

func applyChange(forest *EphemeralForest, change types.FileKeyChange) error {
	err := change.Validate()
	if err != nil {
		return err
	}

	switch change.Operation {
	case types.Add:
		return forest.Upsert(change.FileKey, *change.Metadata)
	case types.Remove:
		forest.Remove(change.FileKey)
		return nil
	default:
		panic(fmt.Sprintf("operation not implemented: %s", change.Operation))
	}
}

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/ChainSafe/fisherman/lib/forest"
	"github.com/ChainSafe/fisherman/lib/types"
)

// TargetPipeline proves a file key against the forest of a single target.
// It runs the start, snapshot, catch-up and prove phases in sequence and
// stops at the first failure. Every run builds its own forest, so a
// TargetPipeline can run for many targets concurrently.
type TargetPipeline struct {
	chain     ChainState
	builder   *forest.SnapshotBuilder
	applier   *forest.CatchUpApplier
	generator *forest.ProofGenerator
	metrics   *Metrics
}

// NewTargetPipeline creates a target pipeline.
// The metrics argument can be nil.
func NewTargetPipeline(chain ChainState, snapshots SnapshotSource,
	changes CatchUpSource, metrics *Metrics) *TargetPipeline {
	return &TargetPipeline{
		chain:     chain,
		builder:   forest.NewSnapshotBuilder(snapshots),
		applier:   forest.NewCatchUpApplier(changes),
		generator: forest.NewProofGenerator(),
		metrics:   metrics,
	}
}

// Run builds the forest of the target as of the best block and proves the
// file key against it. Any error returned is a *PipelineError, including
// panics recovered during the run.
func (tp *TargetPipeline) Run(ctx context.Context, target types.DeletionTarget,
	fileKey types.FileKey) (result forest.ProofResult, err error) {
	phase := PhaseStart
	phaseStart := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = panicError(phase, r)
		}

		if err != nil {
			logger.Debugf("pipeline for %s failed in %s phase: %s", target, phase, err)
			err = &PipelineError{Target: target, Phase: phase, Err: err}
			result = forest.ProofResult{}
		}
	}()

	nextPhase := func(next Phase) {
		tp.metrics.observePhase(phase, phaseStart)
		phase = next
		phaseStart = time.Now()
	}

	err = target.Validate()
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	finalized, err := tp.chain.FinalizedBlock(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: getting finalized block: %w", ErrSourceUnavailable, err)
	}

	best, err := tp.chain.BestBlock(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: getting best block: %w", ErrSourceUnavailable, err)
	}

	nextPhase(PhaseSnapshot)
	ephemeralForest, err := tp.builder.Build(ctx, target, finalized)
	if err != nil {
		return result, err
	}

	nextPhase(PhaseCatchUp)
	err = tp.applier.Apply(ctx, ephemeralForest, target, finalized, best)
	if err != nil {
		return result, err
	}

	nextPhase(PhaseProve)
	result, err = tp.generator.Prove(ephemeralForest, fileKey)
	if err != nil {
		return result, err
	}

	nextPhase(PhaseDone)
	return result, nil
}

var allocationFailures = []string{
	"out of memory",
	"makeslice",
	"makemap",
	"growslice",
}

func panicError(phase Phase, r interface{}) error {
	kind := phase.kind()

	runtimeErr, ok := r.(runtime.Error)
	if ok {
		message := runtimeErr.Error()
		for _, allocationFailure := range allocationFailures {
			if strings.Contains(message, allocationFailure) {
				kind = ErrResourceExhaustion
				break
			}
		}
	}

	return fmt.Errorf("%w: %w: %v", kind, ErrPanic, r)
}

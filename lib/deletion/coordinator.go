// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/fisherman/internal/log"
	"github.com/ChainSafe/fisherman/lib/forest"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "deletion"))

// Coordinator runs one target pipeline per target affected by a
// deletion request. Pipelines run concurrently and a failing or
// panicking pipeline never affects the others.
type Coordinator struct {
	router   TargetRouter
	pipeline *TargetPipeline
	config   Config
	metrics  *Metrics
}

// NewCoordinator creates a deletion coordinator.
// The metrics argument can be nil.
func NewCoordinator(config Config, router TargetRouter,
	pipeline *TargetPipeline, metrics *Metrics) *Coordinator {
	return &Coordinator{
		router:   router,
		pipeline: pipeline,
		config:   config,
		metrics:  metrics,
	}
}

// Process resolves the targets of the request and returns one outcome per
// target, in the order given by the router. An error is returned only if
// the targets cannot be resolved, wrapping ErrRouting.
func (c *Coordinator) Process(ctx context.Context, request types.DeletionRequest) (
	outcomes Outcomes, err error) {
	targets, err := c.router.Targets(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%w %s for file key %s: %w",
			ErrRouting, request.ID, request.FileKey, err)
	}

	logger.Debugf("request %s for file key %s affects %d targets",
		request.ID, request.FileKey, len(targets))

	outcomes = make(Outcomes, len(targets))

	// Pipeline failures are reported in the outcomes and must not cancel
	// the other pipelines, so the group has no context.
	group := new(errgroup.Group)
	if c.config.MaxConcurrentTargets > 0 {
		group.SetLimit(c.config.MaxConcurrentTargets)
	}

	for i, target := range targets {
		i, target := i, target
		group.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("request %s: target %s panicked: %v", request.ID, target, r)
					outcomes[i] = PerTargetOutcome{
						Target: target,
						Err: &PipelineError{Target: target, Phase: PhaseDone,
							Err: fmt.Errorf("%w: %v", ErrPanic, r)},
					}
				}
			}()
			outcomes[i] = c.processTarget(ctx, request, target)
			return nil
		})
	}
	_ = group.Wait()

	logger.Infof("request %s for file key %s: %d targets proven, %d failed",
		request.ID, request.FileKey.Short(), len(outcomes)-outcomes.Failed(), outcomes.Failed())
	return outcomes, nil
}

func (c *Coordinator) processTarget(ctx context.Context, request types.DeletionRequest,
	target types.DeletionTarget) (outcome PerTargetOutcome) {
	c.metrics.targetStarted()
	outcome.Target = target

	result, err := c.runPipeline(ctx, target, request.FileKey)
	c.metrics.targetFinished(err)
	if err != nil {
		logger.Warnf("request %s: %s", request.ID, err)
		outcome.Err = err
		return outcome
	}

	outcome.Result = &result
	return outcome
}

func (c *Coordinator) runPipeline(ctx context.Context, target types.DeletionTarget,
	fileKey types.FileKey) (result forest.ProofResult, err error) {
	if c.config.Retries == 0 {
		return c.pipeline.Run(ctx, target, fileKey)
	}

	backoff, err := retry.NewExponential(c.config.RetryBackoff)
	if err != nil {
		return result, &PipelineError{Target: target, Phase: PhaseStart,
			Err: fmt.Errorf("%w: creating backoff: %w", ErrSourceUnavailable, err)}
	}
	if c.config.MaxRetryBackoff > 0 {
		backoff = retry.WithCappedDuration(c.config.MaxRetryBackoff, backoff)
	}
	backoff = retry.WithMaxRetries(c.config.Retries, backoff)

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		result, err = c.pipeline.Run(ctx, target, fileKey)
		if err != nil && errors.Is(err, ErrSourceUnavailable) && ctx.Err() == nil {
			logger.Debugf("attempt %d for %s failed, retrying: %s", attempt, target, err)
			return retry.RetryableError(err)
		}
		return err
	})

	var pipelineErr *PipelineError
	if err != nil && !errors.As(err, &pipelineErr) {
		// The context got canceled while waiting to retry.
		err = &PipelineError{Target: target, Phase: PhaseStart,
			Err: fmt.Errorf("%w: %w", ErrSourceUnavailable, err)}
	}
	return result, err
}

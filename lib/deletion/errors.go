// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/fisherman/lib/forest"
	"github.com/ChainSafe/fisherman/lib/types"
)

// Error kinds a target pipeline can fail with, to match with errors.Is.
var (
	ErrSourceUnavailable  = forest.ErrSourceUnavailable
	ErrInsertion          = forest.ErrInsertion
	ErrCatchUpApply       = forest.ErrCatchUpApply
	ErrProofConstruction  = forest.ErrProofConstruction
	ErrResourceExhaustion = errors.New("resource exhaustion")
	// ErrInvalidTarget is returned for a target the router should never
	// have produced. It is permanent and never retried.
	ErrInvalidTarget = errors.New("invalid deletion target")
)

var (
	ErrRouting = errors.New("routing deletion request")
	ErrPanic   = errors.New("pipeline panicked")
)

// PipelineError is the failure of the pipeline of a single target.
type PipelineError struct {
	Target types.DeletionTarget
	Phase  Phase
	Err    error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline for %s failed in %s phase: %s",
		e.Target, e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Kind returns the error kind of the failure, or nil if the
// failure matches no known kind.
func (e *PipelineError) Kind() error {
	for _, kind := range []error{
		ErrResourceExhaustion,
		ErrInvalidTarget,
		ErrSourceUnavailable,
		ErrInsertion,
		ErrCatchUpApply,
		ErrProofConstruction,
	} {
		if errors.Is(e.Err, kind) {
			return kind
		}
	}
	return nil
}

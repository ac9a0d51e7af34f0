// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import (
	"github.com/ChainSafe/fisherman/lib/forest"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/hashicorp/go-multierror"
)

// PerTargetOutcome is the outcome of the pipeline of one target.
// Exactly one of Result and Err is set.
type PerTargetOutcome struct {
	Target types.DeletionTarget
	Result *forest.ProofResult
	Err    error
}

// Succeeded returns true if the pipeline produced a proof.
func (o PerTargetOutcome) Succeeded() bool {
	return o.Err == nil
}

// Outcomes are the outcomes of a request, one per target
// in the order the targets were routed.
type Outcomes []PerTargetOutcome

// Results returns the proof results of the succeeded targets.
func (o Outcomes) Results() (results []forest.ProofResult) {
	for _, outcome := range o {
		if outcome.Succeeded() {
			results = append(results, *outcome.Result)
		}
	}
	return results
}

// Failed returns the number of failed targets.
func (o Outcomes) Failed() (failed int) {
	for _, outcome := range o {
		if !outcome.Succeeded() {
			failed++
		}
	}
	return failed
}

// Err returns an error aggregating the failures of every target,
// or nil if every target succeeded.
func (o Outcomes) Err() error {
	var merr *multierror.Error
	for _, outcome := range o {
		if outcome.Err != nil {
			merr = multierror.Append(merr, outcome.Err)
		}
	}
	return merr.ErrorOrNil()
}

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import "fmt"

// Phase is a step of a target pipeline.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseSnapshot
	PhaseCatchUp
	PhaseProve
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseSnapshot:
		return "snapshot"
	case PhaseCatchUp:
		return "catch-up"
	case PhaseProve:
		return "prove"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// kind returns the error kind a panic in the phase is reported as.
func (p Phase) kind() error {
	switch p {
	case PhaseSnapshot:
		return ErrInsertion
	case PhaseCatchUp:
		return ErrCatchUpApply
	case PhaseProve:
		return ErrProofConstruction
	default:
		return ErrSourceUnavailable
	}
}

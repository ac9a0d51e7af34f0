// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

import "errors"

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrInsertion         = errors.New("snapshot insertion failed")
	ErrCatchUpApply      = errors.New("catch-up apply failed")
	ErrProofConstruction = errors.New("proof construction failed")

	ErrDuplicateFileKey  = errors.New("duplicate file key")
	ErrInvalidBlockRange = errors.New("invalid block range")
	ErrNilForest         = errors.New("forest is nil")
	ErrInclusionMismatch = errors.New("proof inclusion does not match result")
)

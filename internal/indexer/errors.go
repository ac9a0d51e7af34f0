// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import "errors"

var (
	ErrFileNotIndexed     = errors.New("file not indexed")
	ErrMembershipNotFound = errors.New("file is not part of target")
	ErrChainStateUnknown  = errors.New("chain state unknown")
	ErrInvalidFixture     = errors.New("invalid fixture")
)

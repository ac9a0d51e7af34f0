// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import "errors"

var (
	ErrDecodeProof      = errors.New("cannot decode proof")
	ErrProofTooDeep     = errors.New("proof is deeper than the key length")
	ErrLeafOffPath      = errors.New("proof leaf is not on the path of the key")
	ErrNonCanonicalPath = errors.New("proof path ends below an empty sibling")
	ErrRootHashMismatch = errors.New("root hash computed from proof does not match")
)

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/google/uuid"
)

// DeletionRequest is a request to prove that a file key is, or is no
// longer, part of the forests of every target affected by its deletion.
type DeletionRequest struct {
	ID      string
	FileKey FileKey
}

// NewDeletionRequest returns a deletion request for the file key with a
// fresh random id.
func NewDeletionRequest(key FileKey) DeletionRequest {
	return DeletionRequest{
		ID:      uuid.New().String(),
		FileKey: key,
	}
}

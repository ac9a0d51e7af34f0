// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import "errors"

var (
	ErrUnknownTargetKind  = errors.New("unknown deletion target kind")
	ErrUnknownOperation   = errors.New("unknown file key change operation")
	ErrMissingMetadata    = errors.New("add change has no file metadata")
	ErrUnexpectedMetadata = errors.New("remove change carries file metadata")
	ErrInvalidMetadata    = errors.New("file metadata is invalid")
	ErrFileKeyMismatch    = errors.New("file key does not match file metadata")
)

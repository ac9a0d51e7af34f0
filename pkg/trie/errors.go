// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import "errors"

var (
	ErrEmptyValue     = errors.New("cannot insert an empty value")
	ErrKeyLengthWrong = errors.New("key length is not 32 bytes")
)

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . SnapshotSource,CatchUpSource

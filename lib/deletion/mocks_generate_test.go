// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . ChainState,SnapshotSource,CatchUpSource,TargetRouter

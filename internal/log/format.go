// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Format is the format of the log lines.
type Format uint8

const (
	// FormatConsole writes plain text lines.
	FormatConsole Format = iota
	// FormatColoured writes plain text lines with the level coloured.
	FormatColoured
)

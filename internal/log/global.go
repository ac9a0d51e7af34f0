// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import "io"

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global logger and all its child loggers.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

func valueOr(writer, fallback io.Writer) io.Writer {
	if writer == nil {
		return fallback
	}
	return writer
}

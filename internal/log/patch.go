// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Patch patches the existing settings with any option given.
// This is thread safe and propagates to all child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patchWithoutLocking(newSettings(options))
}

func (l *Logger) patchWithoutLocking(patch settings) {
	l.settings.writer = valueOr(patch.writer, l.settings.writer)
	if patch.level != nil {
		value := *patch.level
		l.settings.level = &value
	}
	if patch.format != nil {
		value := *patch.format
		l.settings.format = &value
	}

	for _, child := range l.childs {
		child.patchWithoutLocking(patch)
	}
}

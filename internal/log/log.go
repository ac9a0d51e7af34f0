// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"io"
	"strings"
	"time"
)

func (l *Logger) log(logLevel Level, s string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if *l.settings.level > logLevel {
		return
	}

	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}

	line := formatLine(time.Now(), logLevel, *l.settings.format, s, l.settings.context)
	_, _ = io.WriteString(l.settings.writer, line)
}

// formatLine returns the log line, for example
// 2026-01-02T15:04:05Z WARN     message\tpkg=forest target=a,b
func formatLine(now time.Time, level Level, format Format, message string,
	context []contextKeyValues) string {
	const levelPadding = 8
	levelString := level.String()
	padding := ""
	if n := levelPadding - len(levelString); n > 0 {
		padding = strings.Repeat(" ", n)
	}
	if format == FormatColoured {
		levelString = level.ColouredString()
	}

	var builder strings.Builder
	builder.WriteString(now.Format(time.RFC3339))
	builder.WriteString(" ")
	builder.WriteString(levelString + padding)
	builder.WriteString(" ")
	builder.WriteString(message)

	for i, kvs := range context {
		separator := " "
		if i == 0 {
			separator = "\t"
		}
		builder.WriteString(separator + kvs.key + "=" + strings.Join(kvs.values, ","))
	}

	builder.WriteString("\n")
	return builder.String()
}

// Trace logs with the TRACE level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the DEBUG level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the INFO level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the WARN level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the ERROR level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs with the CRITICAL level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the TRACE level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(Trace, format, args...)
}

// Debugf formats and logs at the DEBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(Debug, format, args...)
}

// Infof formats and logs at the INFO level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(Info, format, args...)
}

// Warnf formats and logs at the WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(Warn, format, args...)
}

// Errorf formats and logs at the ERROR level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(Error, format, args...)
}

// Criticalf formats and logs at the CRITICAL level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(Critical, format, args...)
}

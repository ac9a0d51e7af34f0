// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

// Levels from the most to the least verbose.
const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	// Critical is the level of failures leaving the database or a
	// forest in an unexpected state.
	Critical
)

var levels = [...]struct {
	name   string
	colour color.Attribute
}{
	Trace:    {name: "TRACE", colour: color.FgHiCyan},
	Debug:    {name: "DEBUG", colour: color.FgHiBlue},
	Info:     {name: "INFO", colour: color.FgCyan},
	Warn:     {name: "WARN", colour: color.FgYellow},
	Error:    {name: "ERROR", colour: color.FgHiRed},
	Critical: {name: "CRITICAL", colour: color.FgRed},
}

func (level Level) String() string {
	if int(level) >= len(levels) {
		return "???"
	}
	return levels[level].name
}

// ColouredString returns the level name coloured for terminals.
func (level Level) ColouredString() string {
	if int(level) >= len(levels) {
		return level.String()
	}
	return color.New(levels[level].colour).Sprint(levels[level].name)
}

// ErrLevelNotRecognised is returned by ParseLevel for an unknown level name.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a case insensitive level name.
func ParseLevel(s string) (level Level, err error) {
	for i, l := range levels {
		if strings.EqualFold(s, l.name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package deletion

import "time"

// Config configures the deletion coordinator.
type Config struct {
	// MaxConcurrentTargets bounds the number of target pipelines running
	// at the same time for one request. Zero means no bound.
	MaxConcurrentTargets int `mapstructure:"max-concurrent-targets" validate:"gte=0"`
	// Retries is the number of times a pipeline failing because a source
	// is unavailable is run again from scratch. Zero disables retries.
	Retries uint64 `mapstructure:"retries"`
	// RetryBackoff is the base duration of the exponential backoff
	// between retries.
	RetryBackoff time.Duration `mapstructure:"retry-backoff" validate:"required_with=Retries"`
	// MaxRetryBackoff caps the duration between two retries.
	// Zero means no cap.
	MaxRetryBackoff time.Duration `mapstructure:"max-retry-backoff" validate:"omitempty,gtefield=RetryBackoff"`
}

// DefaultConfig returns a configuration with no concurrency bound
// and no retries.
func DefaultConfig() Config {
	return Config{
		RetryBackoff:    100 * time.Millisecond,
		MaxRetryBackoff: 5 * time.Second,
	}
}

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/fisherman/internal/log"
	"github.com/ChainSafe/fisherman/lib/deletion"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultDatabasePath is the default indexer database directory
	DefaultDatabasePath = "~/.fisherman/db"
	// DefaultMetricsAddress is the default listening address of the metrics server
	DefaultMetricsAddress = "localhost:9876"
)

// Config is the configuration of the fisherman.
type Config struct {
	Log      LogConfig       `mapstructure:"log"`
	Database DatabaseConfig  `mapstructure:"database"`
	Deletion deletion.Config `mapstructure:"deletion"`
	Metrics  MetricsConfig   `mapstructure:"metrics"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error critical"`
	// Colour colours the level of log lines.
	Colour bool `mapstructure:"colour"`
}

// DatabaseConfig is the indexer database configuration.
type DatabaseConfig struct {
	Path     string `mapstructure:"path" validate:"required_without=InMemory"`
	InMemory bool   `mapstructure:"in-memory"`
}

// MetricsConfig is the prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address" validate:"omitempty,hostname_port"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Database: DatabaseConfig{
			Path: DefaultDatabasePath,
		},
		Deletion: deletion.DefaultConfig(),
		Metrics: MetricsConfig{
			Address: DefaultMetricsAddress,
		},
	}
}

var validate = validator.New()

// ErrMetricsAddressMissing is returned by Validate if metrics are
// enabled without a listening address.
var ErrMetricsAddressMissing = errors.New("metrics enabled without address")

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("invalid configuration: %w", ErrMetricsAddressMissing)
	}
	return nil
}

// LogOptions returns the options to patch the global logger with.
func (c *Config) LogOptions() ([]log.Option, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	format := log.FormatConsole
	if c.Log.Colour {
		format = log.FormatColoured
	}
	return []log.Option{log.SetLevel(level), log.SetFormat(format)}, nil
}

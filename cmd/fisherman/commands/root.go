// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"strings"

	cfg "github.com/ChainSafe/fisherman/config"
	"github.com/ChainSafe/fisherman/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables overriding
// configuration values, for example FISHERMAN_LOG_LEVEL.
const EnvPrefix = "FISHERMAN"

var (
	config = cfg.Default()
	logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))
)

// ParseConfig builds the configuration from, in increasing order of
// precedence, the defaults, the config file, the environment and the flags.
func ParseConfig(v *viper.Viper) (*cfg.Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	con := cfg.Default()
	err := v.Unmarshal(con)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !con.Database.InMemory {
		con.Database.Path, err = expandDir(con.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to expand database path: %w", err)
		}
	}

	if err := con.Validate(); err != nil {
		return nil, fmt.Errorf("error in config: %w", err)
	}

	return con, nil
}

// NewRootCommand creates the root command
func NewRootCommand() (*cobra.Command, error) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "fisherman",
		Short: "Storage deletion proofs command-line interface",
		Long: `Fisherman builds ephemeral merkle forests of storage providers and buckets
from the indexer database and proves that a file key is, or is no longer,
part of them.
Usage:
	fisherman import ./fixture.yaml
	fisherman prove 0x3c5d...e1f0
	fisherman --in-memory prove --fixture ./fixture.yaml 0x3c5d...e1f0`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			config, err = ParseConfig(v)
			if err != nil {
				return err
			}

			logOptions, err := config.LogOptions()
			if err != nil {
				return err
			}
			log.Patch(append(logOptions, log.SetWriter(cmd.ErrOrStderr()))...)
			logger.Debugf("configuration: %+v", *config)
			return nil
		},
	}

	if err := addRootFlags(cmd, v); err != nil {
		return nil, err
	}

	cmd.AddCommand(newImportCommand(), newProveCommand())
	return cmd, nil
}

// addRootFlags adds the root flags to the command
func addRootFlags(cmd *cobra.Command, v *viper.Viper) error {
	defaults := cfg.Default()

	if err := addStringFlagBindViper(cmd, v,
		"config",
		"",
		"Path to a toml, yaml or json config file",
		"config"); err != nil {
		return fmt.Errorf("failed to add --config flag: %s", err)
	}

	// Log Config
	if err := addStringFlagBindViper(cmd, v,
		"log",
		defaults.Log.Level,
		"Log level. Supports levels critical (silent), error, warn, info, debug and trace",
		"log.level"); err != nil {
		return fmt.Errorf("failed to add --log flag: %s", err)
	}

	if err := addBoolFlagBindViper(cmd, v,
		"log-colour",
		defaults.Log.Colour,
		"Colour the level of log lines",
		"log.colour"); err != nil {
		return fmt.Errorf("failed to add --log-colour flag: %s", err)
	}

	// Database Config
	if err := addStringFlagBindViper(cmd, v,
		"db-path",
		defaults.Database.Path,
		"Directory of the indexer database",
		"database.path"); err != nil {
		return fmt.Errorf("failed to add --db-path flag: %s", err)
	}
	if err := addBoolFlagBindViper(cmd, v,
		"in-memory",
		defaults.Database.InMemory,
		"Keep the indexer database in memory",
		"database.in-memory"); err != nil {
		return fmt.Errorf("failed to add --in-memory flag: %s", err)
	}

	// Deletion Config
	if err := addIntFlagBindViper(cmd, v,
		"max-concurrent-targets",
		defaults.Deletion.MaxConcurrentTargets,
		"Maximum number of targets proven at the same time, 0 for no limit",
		"deletion.max-concurrent-targets"); err != nil {
		return fmt.Errorf("failed to add --max-concurrent-targets flag: %s", err)
	}
	if err := addUint64FlagBindViper(cmd, v,
		"retries",
		defaults.Deletion.Retries,
		"Number of retries of a target pipeline failing on an unavailable source",
		"deletion.retries"); err != nil {
		return fmt.Errorf("failed to add --retries flag: %s", err)
	}
	if err := addDurationFlagBindViper(cmd, v,
		"retry-backoff",
		defaults.Deletion.RetryBackoff,
		"Base duration of the exponential backoff between retries",
		"deletion.retry-backoff"); err != nil {
		return fmt.Errorf("failed to add --retry-backoff flag: %s", err)
	}
	if err := addDurationFlagBindViper(cmd, v,
		"max-retry-backoff",
		defaults.Deletion.MaxRetryBackoff,
		"Maximum duration between retries",
		"deletion.max-retry-backoff"); err != nil {
		return fmt.Errorf("failed to add --max-retry-backoff flag: %s", err)
	}

	// Metrics Config
	if err := addBoolFlagBindViper(cmd, v,
		"metrics",
		defaults.Metrics.Enabled,
		"Serve prometheus metrics",
		"metrics.enabled"); err != nil {
		return fmt.Errorf("failed to add --metrics flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd, v,
		"metrics-address",
		defaults.Metrics.Address,
		"Listen address of the metric server",
		"metrics.address"); err != nil {
		return fmt.Errorf("failed to add --metrics-address flag: %s", err)
	}

	return nil
}

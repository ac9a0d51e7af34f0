// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfg "github.com/ChainSafe/fisherman/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments and returns
// what it wrote to its standard output.
func execute(t *testing.T, args ...string) (output []byte, err error) {
	t.Helper()

	cmd, err := NewRootCommand()
	require.NoError(t, err)

	buffer := bytes.NewBuffer(nil)
	cmd.SetOut(buffer)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return buffer.Bytes(), err
}

func Test_ParseConfig(t *testing.T) {
	dbPath := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	const configData = `log:
  level: warn
database:
  path: %s
deletion:
  retries: 3
  retry-backoff: 1s
`
	err := os.WriteFile(configPath, []byte(fmt.Sprintf(configData, dbPath)), 0o600)
	require.NoError(t, err)

	t.Setenv("FISHERMAN_LOG_LEVEL", "debug")

	v := viper.New()
	v.Set("config", configPath)

	config, err := ParseConfig(v)
	require.NoError(t, err)

	expected := cfg.Default()
	expected.Log.Level = "debug"
	expected.Database.Path = dbPath
	expected.Deletion.Retries = 3
	expected.Deletion.RetryBackoff = time.Second
	assert.Equal(t, expected, config)
}

func Test_ParseConfig_Errors(t *testing.T) {
	testCases := map[string]struct {
		settings map[string]interface{}
		errMsg   string
	}{
		"missing config file": {
			settings: map[string]interface{}{
				"config": filepath.Join(t.TempDir(), "missing.toml"),
			},
			errMsg: "failed to read config file",
		},
		"invalid log level": {
			settings: map[string]interface{}{
				"log.level": "loud",
			},
			errMsg: "error in config",
		},
		"metrics without address": {
			settings: map[string]interface{}{
				"metrics.enabled": true,
				"metrics.address": "",
			},
			errMsg: "metrics enabled without address",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for key, value := range testCase.settings {
				v.Set(key, value)
			}

			_, err := ParseConfig(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.errMsg)
		})
	}
}

func Test_RootCommand_Flags(t *testing.T) {
	dbPath := t.TempDir()

	_, err := execute(t,
		"--db-path", dbPath,
		"--log", "error",
		"--max-concurrent-targets", "2",
		"--retry-backoff", "10ms",
		"import", filepath.Join("testdata", "fixture.yaml"))
	require.NoError(t, err)

	assert.Equal(t, dbPath, config.Database.Path)
	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, 2, config.Deletion.MaxConcurrentTargets)
	assert.Equal(t, 10*time.Millisecond, config.Deletion.RetryBackoff)
}

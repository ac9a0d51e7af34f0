// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/deletion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testFixturePath = filepath.Join("testdata", "fixture.yaml")

func importKeys(t *testing.T, args ...string) map[string]string {
	t.Helper()

	args = append(args, "import", testFixturePath)
	output, err := execute(t, args...)
	require.NoError(t, err)

	var keys map[string]string
	err = yaml.Unmarshal(output, &keys)
	require.NoError(t, err)
	return keys
}

func Test_ImportCommand(t *testing.T) {
	keys := importKeys(t, "--in-memory")

	require.Len(t, keys, 4)
	for _, name := range []string{"a", "c", "d", "e"} {
		_, err := common.HexToHash(keys[name])
		assert.NoError(t, err, name)
	}
}

func Test_ImportCommand_MissingFixture(t *testing.T) {
	_, err := execute(t, "--in-memory", "import", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func assertProveOutput(t *testing.T, output []byte, fileKey string) {
	t.Helper()

	var result proveOutput
	err := yaml.Unmarshal(output, &result)
	require.NoError(t, err)

	assert.Equal(t, fileKey, result.FileKey)
	assert.NotEmpty(t, result.Request)
	require.Len(t, result.Outcomes, 2)

	provider := result.Outcomes[0]
	assert.Equal(t, "provider", provider.Kind)
	require.NotNil(t, provider.Inclusion)
	assert.False(t, *provider.Inclusion)
	assert.Equal(t, uint32(12), provider.BestBlock)
	assert.NotEmpty(t, provider.Proof)
	assert.Empty(t, provider.Error)

	bucket := result.Outcomes[1]
	assert.Equal(t, "bucket", bucket.Kind)
	require.NotNil(t, bucket.Inclusion)
	assert.True(t, *bucket.Inclusion)
	assert.Empty(t, bucket.Error)
}

func Test_ProveCommand_Database(t *testing.T) {
	dbPath := t.TempDir()
	keys := importKeys(t, "--db-path", dbPath)

	output, err := execute(t, "--db-path", dbPath, "prove", keys["c"])
	require.NoError(t, err)

	assertProveOutput(t, output, keys["c"])
}

func Test_ProveCommand_InMemoryFixture(t *testing.T) {
	keys := importKeys(t, "--in-memory")

	output, err := execute(t, "--in-memory", "prove", "--fixture", testFixturePath, keys["c"])
	require.NoError(t, err)

	assertProveOutput(t, output, keys["c"])
}

func Test_ProveCommand_Errors(t *testing.T) {
	testCases := map[string]struct {
		fileKey    string
		errWrapped error
		errMsg     string
	}{
		"invalid file key": {
			fileKey: "0xzz",
			errMsg:  "invalid file key",
		},
		"file not indexed": {
			fileKey:    "0xff" + strings.Repeat("00", 31),
			errWrapped: deletion.ErrRouting,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "--in-memory", "prove", "--fixture", testFixturePath, testCase.fileKey)
			require.Error(t, err)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			if testCase.errMsg != "" {
				assert.Contains(t, err.Error(), testCase.errMsg)
			}
		})
	}
}

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/deletion"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type proveOutput struct {
	Request  string          `yaml:"request"`
	FileKey  string          `yaml:"file_key"`
	Outcomes []outcomeOutput `yaml:"outcomes"`
}

type outcomeOutput struct {
	Kind      string `yaml:"kind"`
	ID        string `yaml:"id"`
	Inclusion *bool  `yaml:"inclusion,omitempty"`
	Root      string `yaml:"root,omitempty"`
	BestBlock uint32 `yaml:"best_block,omitempty"`
	Proof     string `yaml:"proof,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

func newProveOutput(request types.DeletionRequest, outcomes deletion.Outcomes) proveOutput {
	output := proveOutput{
		Request:  request.ID,
		FileKey:  request.FileKey.String(),
		Outcomes: make([]outcomeOutput, len(outcomes)),
	}

	for i, outcome := range outcomes {
		output.Outcomes[i] = outcomeOutput{
			Kind: outcome.Target.Kind.String(),
			ID:   outcome.Target.ID.String(),
		}

		if outcome.Err != nil {
			output.Outcomes[i].Error = outcome.Err.Error()
			continue
		}

		result := outcome.Result
		inclusion := result.Inclusion
		output.Outcomes[i].Inclusion = &inclusion
		output.Outcomes[i].Root = result.Root.String()
		output.Outcomes[i].BestBlock = uint32(result.BestBlock)
		output.Outcomes[i].Proof = common.BytesToHex(result.Proof)
	}

	return output
}

func writeYAML(cmd *cobra.Command, value interface{}) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return encoder.Close()
}

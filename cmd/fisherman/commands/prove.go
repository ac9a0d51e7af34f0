// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/fisherman/internal/indexer"
	"github.com/ChainSafe/fisherman/internal/metrics"
	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/deletion"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// ErrTargetsFailed is returned by the prove command if the pipeline
// of at least one target failed.
var ErrTargetsFailed = errors.New("targets failed")

func newProveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prove <file-key>",
		Short: "Prove a file key against the forest of every affected target",
		Long: `prove <file-key> resolves the storage providers and the bucket affected by
the deletion of the 0x prefixed file key, builds the forest of each of them as
of the best block and prints an inclusion or exclusion proof per target.
It exits with an error if any target failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execProve(cmd, args[0])
		},
	}

	cmd.Flags().String("fixture", "", "YAML fixture to import before proving")
	return cmd
}

func execProve(cmd *cobra.Command, fileKeyHex string) (err error) {
	fileKey, err := common.HexToHash(fileKeyHex)
	if err != nil {
		return fmt.Errorf("invalid file key: %w", err)
	}

	fixturePath, err := cmd.Flags().GetString("fixture")
	if err != nil {
		return fmt.Errorf("failed to get fixture: %s", err)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
	}()

	idx := indexer.New(db)
	if fixturePath != "" {
		_, err = importFixture(idx, fixturePath)
		if err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	pipelineMetrics, err := deletion.NewMetrics(registry)
	if err != nil {
		return err
	}

	if config.Metrics.Enabled {
		server := metrics.NewServer(config.Metrics.Address, registry)
		err = server.Start()
		if err != nil {
			return err
		}
		defer func() {
			stopErr := server.Stop()
			if stopErr != nil {
				logger.Warnf("stopping metrics server: %s", stopErr)
			}
		}()
	}

	pipeline := deletion.NewTargetPipeline(idx, idx, idx, pipelineMetrics)
	coordinator := deletion.NewCoordinator(config.Deletion, idx, pipeline, pipelineMetrics)

	request := types.NewDeletionRequest(fileKey)
	outcomes, err := coordinator.Process(cmd.Context(), request)
	if err != nil {
		return err
	}

	err = writeYAML(cmd, newProveOutput(request, outcomes))
	if err != nil {
		return err
	}

	if failed := outcomes.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d: %w", ErrTargetsFailed, failed, len(outcomes), outcomes.Err())
	}
	return nil
}

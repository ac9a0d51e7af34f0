// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	"github.com/ChainSafe/fisherman/internal/database"
	"github.com/ChainSafe/fisherman/internal/indexer"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <fixture.yaml>",
		Short: "Import a YAML fixture into the indexer database",
		Long: `import <fixture.yaml> loads the files, target memberships, changes and
chain state described by the fixture into the indexer database, and prints
the file key of each fixture file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execImport(cmd, args[0])
		},
	}
}

func execImport(cmd *cobra.Command, fixturePath string) (err error) {
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

	keys, err := importFixture(indexer.New(db), fixturePath)
	if err != nil {
		return err
	}

	return writeYAML(cmd, keys)
}

func importFixture(idx *indexer.Indexer, fixturePath string) (
	keys map[string]string, err error) {
	fixture, err := indexer.LoadFixture(fixturePath)
	if err != nil {
		return nil, err
	}

	fileKeys, err := idx.Import(fixture)
	if err != nil {
		return nil, fmt.Errorf("failed to import fixture: %w", err)
	}

	keys = make(map[string]string, len(fileKeys))
	for name, key := range fileKeys {
		keys[name] = key.String()
	}
	return keys, nil
}

func openDatabase() (database.Database, error) {
	db, err := database.NewPebble(config.Database.Path, config.Database.InMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

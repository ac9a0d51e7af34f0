// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import (
	"fmt"
	"os"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/types"
	"gopkg.in/yaml.v3"
)

// Fixture is a YAML description of the indexer content.
// Files are referenced by name in targets and changes.
type Fixture struct {
	Finalized uint32          `yaml:"finalized"`
	Best      uint32          `yaml:"best"`
	Files     []FixtureFile   `yaml:"files"`
	Targets   []FixtureTarget `yaml:"targets"`
	Changes   []FixtureChange `yaml:"changes"`
}

// FixtureFile describes a file. If the fingerprint is empty, the
// blake2b-256 hash of the location is used.
type FixtureFile struct {
	Name        string `yaml:"name"`
	Owner       string `yaml:"owner"`
	Bucket      string `yaml:"bucket"`
	Location    string `yaml:"location"`
	Size        uint64 `yaml:"size"`
	Fingerprint string `yaml:"fingerprint,omitempty"`
}

// FixtureTarget describes the files of a provider or of a bucket.
// Exactly one of Provider and Bucket must be set.
type FixtureTarget struct {
	Provider string              `yaml:"provider,omitempty"`
	Bucket   string              `yaml:"bucket,omitempty"`
	Files    []FixtureMembership `yaml:"files"`
}

// FixtureMembership describes when a file joined and optionally left a target.
type FixtureMembership struct {
	File    string  `yaml:"file"`
	Added   uint32  `yaml:"added"`
	Removed *uint32 `yaml:"removed,omitempty"`
}

// FixtureChange describes a change of a target at a block.
// Exactly one of Add and Remove must be set.
type FixtureChange struct {
	Provider string `yaml:"provider,omitempty"`
	Bucket   string `yaml:"bucket,omitempty"`
	Block    uint32 `yaml:"block"`
	Add      string `yaml:"add,omitempty"`
	Remove   string `yaml:"remove,omitempty"`
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(data []byte) (fixture Fixture, err error) {
	err = yaml.Unmarshal(data, &fixture)
	if err != nil {
		return fixture, fmt.Errorf("%w: %s", ErrInvalidFixture, err)
	}
	return fixture, nil
}

// LoadFixture reads and decodes the YAML fixture file at path.
func LoadFixture(path string) (fixture Fixture, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture, fmt.Errorf("reading fixture: %w", err)
	}
	return ParseFixture(data)
}

// Import loads the fixture into the indexer and returns the
// file key of each fixture file by name.
func (idx *Indexer) Import(fixture Fixture) (keys map[string]types.FileKey, err error) {
	keys = make(map[string]types.FileKey, len(fixture.Files))
	files := make(map[string]types.FileMetadata, len(fixture.Files))

	for _, file := range fixture.Files {
		metadata, err := file.metadata()
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", file.Name, err)
		}

		key, err := idx.PutFile(metadata)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", file.Name, err)
		}
		keys[file.Name] = key
		files[file.Name] = metadata
	}

	for _, fixtureTarget := range fixture.Targets {
		target, err := parseTarget(fixtureTarget.Provider, fixtureTarget.Bucket)
		if err != nil {
			return nil, err
		}

		for _, member := range fixtureTarget.Files {
			key, ok := keys[member.File]
			if !ok {
				return nil, fmt.Errorf("%w: unknown file %q in %s",
					ErrInvalidFixture, member.File, target)
			}

			err = idx.AddFileToTarget(target, key, types.BlockNumber(member.Added))
			if err != nil {
				return nil, err
			}

			if member.Removed != nil {
				err = idx.RemoveFileFromTarget(target, key, types.BlockNumber(*member.Removed))
				if err != nil {
					return nil, err
				}
			}
		}
	}

	for i, fixtureChange := range fixture.Changes {
		target, err := parseTarget(fixtureChange.Provider, fixtureChange.Bucket)
		if err != nil {
			return nil, fmt.Errorf("change %d: %w", i+1, err)
		}

		change, err := fixtureChange.change(keys, files)
		if err != nil {
			return nil, fmt.Errorf("change %d: %w", i+1, err)
		}

		err = idx.AddChange(target, types.BlockNumber(fixtureChange.Block), change)
		if err != nil {
			return nil, fmt.Errorf("change %d: %w", i+1, err)
		}
	}

	err = idx.SetFinalized(types.BlockNumber(fixture.Finalized))
	if err != nil {
		return nil, err
	}

	err = idx.SetBest(types.BlockNumber(fixture.Best))
	if err != nil {
		return nil, err
	}

	logger.Infof("imported %d files, %d targets and %d changes",
		len(fixture.Files), len(fixture.Targets), len(fixture.Changes))
	return keys, nil
}

func (f FixtureFile) metadata() (metadata types.FileMetadata, err error) {
	bucket, err := common.HexToHash(f.Bucket)
	if err != nil {
		return metadata, fmt.Errorf("%w: bucket: %s", ErrInvalidFixture, err)
	}

	fingerprint := common.MustBlake2bHash([]byte(f.Location))
	if f.Fingerprint != "" {
		fingerprint, err = common.HexToHash(f.Fingerprint)
		if err != nil {
			return metadata, fmt.Errorf("%w: fingerprint: %s", ErrInvalidFixture, err)
		}
	}

	return types.FileMetadata{
		Owner:       []byte(f.Owner),
		BucketID:    bucket,
		Location:    []byte(f.Location),
		Size:        f.Size,
		Fingerprint: fingerprint,
	}, nil
}

func (c FixtureChange) change(keys map[string]types.FileKey,
	files map[string]types.FileMetadata) (change types.FileKeyChange, err error) {
	switch {
	case c.Add != "" && c.Remove == "":
		key, ok := keys[c.Add]
		if !ok {
			return change, fmt.Errorf("%w: unknown file %q", ErrInvalidFixture, c.Add)
		}
		return types.NewAddChange(key, files[c.Add]), nil
	case c.Remove != "" && c.Add == "":
		key, ok := keys[c.Remove]
		if !ok {
			return change, fmt.Errorf("%w: unknown file %q", ErrInvalidFixture, c.Remove)
		}
		return types.NewRemoveChange(key), nil
	default:
		return change, fmt.Errorf("%w: change must either add or remove a file", ErrInvalidFixture)
	}
}

func parseTarget(provider, bucket string) (target types.DeletionTarget, err error) {
	switch {
	case provider != "" && bucket == "":
		id, err := common.HexToHash(provider)
		if err != nil {
			return target, fmt.Errorf("%w: provider: %s", ErrInvalidFixture, err)
		}
		return types.NewProviderTarget(id), nil
	case bucket != "" && provider == "":
		id, err := common.HexToHash(bucket)
		if err != nil {
			return target, fmt.Errorf("%w: bucket: %s", ErrInvalidFixture, err)
		}
		return types.NewBucketTarget(id), nil
	default:
		return target, fmt.Errorf("%w: target must be either a provider or a bucket", ErrInvalidFixture)
	}
}

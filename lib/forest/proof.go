// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package forest

import (
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/lib/types"
	"github.com/ChainSafe/fisherman/pkg/trie/proof"
)

// ProofGenerator generates file key proofs from a forest.
type ProofGenerator struct{}

// NewProofGenerator returns a proof generator.
func NewProofGenerator() *ProofGenerator {
	return &ProofGenerator{}
}

// Prove returns an inclusion proof for the file key if it is in the forest,
// or an exclusion proof if it is not. An absent key is not an error.
// Errors wrap ErrProofConstruction.
func (pg *ProofGenerator) Prove(forest *EphemeralForest, key types.FileKey) (
	result ProofResult, err error) {
	if forest == nil {
		return result, fmt.Errorf("%w: %w", ErrProofConstruction, ErrNilForest)
	}

	root := forest.Root()
	generated := forest.trie.GenerateProof(key)

	_, err = proof.Verify(root, key, generated)
	if err != nil {
		return result, fmt.Errorf("%w: for %s in %s: %w",
			ErrProofConstruction, key, forest, err)
	}

	encoded, err := generated.Encode()
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrProofConstruction, err)
	}

	result = ProofResult{
		Target:    forest.Target(),
		FileKey:   key,
		Proof:     encoded,
		Root:      root,
		Inclusion: generated.Includes(key),
		BestBlock: forest.Block(),
	}
	logger.Debugf("generated %s", result)
	return result, nil
}

// ProofResult is a proof that a file key is, or is not, in the forest of
// a deletion target at a given block.
type ProofResult struct {
	Target    types.DeletionTarget
	FileKey   types.FileKey
	Proof     []byte
	Root      common.Hash
	Inclusion bool
	BestBlock types.BlockNumber
}

// Verify checks the proof bytes against the root and file key of the result.
// It returns true if the proof shows the file key is included.
func (r ProofResult) Verify() (included bool, err error) {
	value, err := proof.VerifyEncoded(r.Root, r.FileKey, r.Proof)
	if err != nil {
		return false, err
	}

	included = value != nil
	if included != r.Inclusion {
		return false, fmt.Errorf("%w: proof shows inclusion %t",
			ErrInclusionMismatch, included)
	}
	return included, nil
}

// Metadata returns the file metadata carried by an inclusion proof.
// It returns false for an exclusion proof.
func (r ProofResult) Metadata() (metadata types.FileMetadata, ok bool, err error) {
	value, err := proof.VerifyEncoded(r.Root, r.FileKey, r.Proof)
	if err != nil {
		return metadata, false, err
	} else if value == nil {
		return metadata, false, nil
	}

	metadata, err = types.DecodeFileMetadata(value)
	if err != nil {
		return metadata, false, err
	}
	return metadata, true, nil
}

// MatchesRoot returns true if the proof was generated against the given
// root. A false value means the on-chain root moved since generation
// and the proof is stale.
func (r ProofResult) MatchesRoot(root common.Hash) bool {
	return r.Root == root
}

func (r ProofResult) String() string {
	kind := "exclusion"
	if r.Inclusion {
		kind = "inclusion"
	}
	return fmt.Sprintf("%s proof of %s for %s at block %d with root %s",
		kind, r.FileKey.Short(), r.Target, r.BestBlock, r.Root.Short())
}

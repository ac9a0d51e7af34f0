// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/pkg/trie/codec"
)

// Node is a node of the trie, either a leaf or a branch.
// A nil *Node is an empty subtrie.
type Node struct {
	// Leaf fields
	Key   common.Hash
	Value []byte

	// Branch fields
	Children [2]*Node

	// hashDigest caches the node hash, nil if the node changed
	// since it was last hashed.
	hashDigest *common.Hash
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind {
	switch {
	case n == nil:
		return Empty
	case n.Children[0] == nil && n.Children[1] == nil:
		return Leaf
	default:
		return Branch
	}
}

// Kind is the kind of a node.
type Kind uint8

const (
	// Empty is the kind of an empty subtrie.
	Empty Kind = iota
	// Leaf is the kind of a node holding a single key value pair.
	Leaf
	// Branch is the kind of a node with two children subtries.
	Branch
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	default:
		return "unknown"
	}
}

func newLeaf(key common.Hash, value []byte) *Node {
	return &Node{Key: key, Value: value}
}

func newBranch(left, right *Node) *Node {
	return &Node{Children: [2]*Node{left, right}}
}

// Hash returns the hash of the node, computing and caching it if needed.
func (n *Node) Hash() common.Hash {
	if n == nil {
		return codec.EmptyHash
	}

	if n.hashDigest != nil {
		return *n.hashDigest
	}

	var digest common.Hash
	if n.Kind() == Leaf {
		digest = codec.HashLeaf(n.Key, n.Value)
	} else {
		digest = codec.HashBranch(n.Children[0].Hash(), n.Children[1].Hash())
	}
	n.hashDigest = &digest
	return digest
}

func (n *Node) setDirty() {
	n.hashDigest = nil
}

// Copyright 2026 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/fisherman/lib/common"
	"github.com/ChainSafe/fisherman/pkg/trie/codec"
	"github.com/ChainSafe/fisherman/pkg/trie/proof"
)

// Trie is an in-memory binary merkle trie keyed by 32 byte keys.
// A subtrie holding a single key value pair is stored as a lone leaf,
// and a subtrie holding two or more is a branch splitting on the next key
// bit. The shape of the trie, and so its root hash, only depends on the set
// of key value pairs it holds and never on the order they were inserted in.
//
// A Trie is not safe for concurrent use.
type Trie struct {
	root *Node
	size int
}

// NewEmptyTrie creates a trie with no key.
func NewEmptyTrie() *Trie {
	return &Trie{}
}

// RootNode returns the root node of the trie.
func (t *Trie) RootNode() *Node {
	return t.root
}

// Len returns the number of keys in the trie.
func (t *Trie) Len() int {
	return t.size
}

// Hash returns the root hash of the trie.
func (t *Trie) Hash() common.Hash {
	return t.root.Hash()
}

// Get returns the value stored at the key, or nil if the key is absent.
func (t *Trie) Get(key common.Hash) (value []byte) {
	n := t.root
	for depth := 0; n != nil; depth++ {
		if n.Kind() == Leaf {
			if n.Key == key {
				return n.Value
			}
			return nil
		}
		n = n.Children[codec.Bit(key, depth)]
	}
	return nil
}

// Has returns true if the key is in the trie.
func (t *Trie) Has(key common.Hash) bool {
	return t.Get(key) != nil
}

// Put inserts the value at the key, replacing any existing value.
// The value cannot be empty.
func (t *Trie) Put(key common.Hash, value []byte) (err error) {
	if len(value) == 0 {
		return fmt.Errorf("%w: for key %s", ErrEmptyValue, key)
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	var inserted bool
	t.root, inserted = put(t.root, key, valueCopy, 0)
	if inserted {
		t.size++
	}
	return nil
}

// PutBytes is Put taking the key as a byte slice.
func (t *Trie) PutBytes(key, value []byte) (err error) {
	if len(key) != common.HashLength {
		return fmt.Errorf("%w: got %d bytes", ErrKeyLengthWrong, len(key))
	}
	return t.Put(common.NewHash(key), value)
}

func put(parent *Node, key common.Hash, value []byte, depth int) (
	newParent *Node, inserted bool) {
	switch parent.Kind() {
	case Empty:
		return newLeaf(key, value), true
	case Leaf:
		if parent.Key == key {
			if !bytes.Equal(parent.Value, value) {
				parent.Value = value
				parent.setDirty()
			}
			return parent, false
		}
		return split(parent, newLeaf(key, value), depth), true
	default:
		bit := codec.Bit(key, depth)
		parent.Children[bit], inserted = put(parent.Children[bit], key, value, depth+1)
		parent.setDirty()
		return parent, inserted
	}
}

// split creates the branches needed below depth to hold the two
// leaves, which have distinct keys.
func split(a, b *Node, depth int) *Node {
	commonLength := codec.CommonPrefixLength(a.Key, b.Key)

	var children [2]*Node
	children[codec.Bit(a.Key, commonLength)] = a
	children[codec.Bit(b.Key, commonLength)] = b
	n := newBranch(children[0], children[1])

	for d := commonLength - 1; d >= depth; d-- {
		if codec.Bit(a.Key, d) == 0 {
			n = newBranch(n, nil)
		} else {
			n = newBranch(nil, n)
		}
	}
	return n
}

// Delete removes the key from the trie, returning true if it was present.
// Deleting an absent key is a no-op.
func (t *Trie) Delete(key common.Hash) (deleted bool) {
	t.root, deleted = remove(t.root, key, 0)
	if deleted {
		t.size--
	}
	return deleted
}

func remove(parent *Node, key common.Hash, depth int) (
	newParent *Node, deleted bool) {
	switch parent.Kind() {
	case Empty:
		return nil, false
	case Leaf:
		if parent.Key != key {
			return parent, false
		}
		return nil, true
	}

	bit := codec.Bit(key, depth)
	parent.Children[bit], deleted = remove(parent.Children[bit], key, depth+1)
	if !deleted {
		return parent, false
	}

	left, right := parent.Children[0], parent.Children[1]
	switch {
	case left == nil && right == nil:
		return nil, true
	case left == nil && right.Kind() == Leaf:
		return right, true
	case right == nil && left.Kind() == Leaf:
		return left, true
	}

	parent.setDirty()
	return parent, true
}

// Entries returns all the key value pairs of the trie,
// ordered by key.
func (t *Trie) Entries() (keys []common.Hash, values [][]byte) {
	keys = make([]common.Hash, 0, t.size)
	values = make([][]byte, 0, t.size)
	var walk func(n *Node)
	walk = func(n *Node) {
		switch n.Kind() {
		case Empty:
		case Leaf:
			keys = append(keys, n.Key)
			values = append(values, n.Value)
		default:
			walk(n.Children[0])
			walk(n.Children[1])
		}
	}
	walk(t.root)
	return keys, values
}

// GenerateProof returns an inclusion proof for the key if it is in the
// trie, or an exclusion proof if it is not.
func (t *Trie) GenerateProof(key common.Hash) (p proof.Proof) {
	n := t.root
	for depth := 0; n != nil; depth++ {
		if n.Kind() == Leaf {
			p.Leaf = &proof.Leaf{Key: n.Key, Value: n.Value}
			return p
		}
		bit := codec.Bit(key, depth)
		p.Siblings = append(p.Siblings, n.Children[1-bit].Hash())
		n = n.Children[bit]
	}
	return p
}

// String returns the number of keys and the root hash of the trie.
func (t *Trie) String() string {
	return fmt.Sprintf("trie with %d keys and root %s", t.size, t.Hash())
}

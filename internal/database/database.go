// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database is the key value store of the indexer, backed by
// pebble and split into prefixed tables.
package database

import (
	"io"
)

// Reader reads values by key.
type Reader interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// Writer writes and deletes values by key.
type Writer interface {
	Put(key, value []byte) error
	Del(key []byte) error
}

// Iterator walks key value pairs in ascending key order.
// Key and Value are only valid until the next move of the iterator.
// It must be released after use.
type Iterator interface {
	First() bool
	SeekGE(key []byte) bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	Release()
}

// Batch collects writes, possibly to several tables, and applies them
// atomically on Commit.
type Batch interface {
	Writer
	io.Closer

	// Len is the number of writes collected.
	Len() int
	Commit() error
}

// Database is safe for concurrent use.
type Database interface {
	Reader
	Writer
	io.Closer

	Path() string
	NewBatch() Batch
	NewPrefixIterator(prefix []byte) Iterator
	NewRangeIterator(lower, upper []byte) Iterator
}

// Table is a view of the database where every key carries the table prefix.
// Its iterators return keys with the prefix stripped.
type Table interface {
	Reader
	Writer

	Prefix() []byte
	// InBatch returns a writer adding the table writes to the batch.
	InBatch(batch Batch) Writer
	NewPrefixIterator(prefix []byte) Iterator
	NewRangeIterator(lower, upper []byte) Iterator
}

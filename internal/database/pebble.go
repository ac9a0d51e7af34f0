// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/fisherman/internal/log"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var logger = log.NewFromGlobal(log.AddContext("internal", "database"))

// ErrNotFound is returned by Get if the key does not exist.
var ErrNotFound = pebble.ErrNotFound

var (
	_ Database = (*pebbleDB)(nil)
	_ Batch    = (*pebbleBatch)(nil)
	_ Iterator = (*pebbleIterator)(nil)
)

type pebbleDB struct {
	path string
	db   *pebble.DB
}

// NewPebble opens the pebble database at path, creating it if needed.
// If inMemory is true, nothing is written to disk and path is only
// used as a name.
func NewPebble(path string, inMemory bool) (Database, error) {
	options := &pebble.Options{}
	if inMemory {
		options.FS = vfs.NewMem()
	} else if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := pebble.Open(path, options)
	if err != nil {
		return nil, fmt.Errorf("opening pebble database: %w", err)
	}

	logger.Debugf("opened database at %s (in memory: %t)", path, inMemory)
	return &pebbleDB{path: path, db: db}, nil
}

func (p *pebbleDB) Path() string {
	return p.path
}

func (p *pebbleDB) Put(key, value []byte) error {
	err := p.db.Set(key, value, pebble.Sync)
	if err != nil {
		return fmt.Errorf("writing 0x%x: %w", key, err)
	}
	return nil
}

// Get returns a copy of the value stored at key.
func (p *pebbleDB) Get(key []byte) (value []byte, err error) {
	stored, closer, err := p.db.Get(key)
	if err != nil {
		return nil, fmt.Errorf("getting 0x%x: %w", key, err)
	}
	defer closer.Close()

	value = make([]byte, len(stored))
	copy(value, stored)
	return value, nil
}

func (p *pebbleDB) Has(key []byte) (bool, error) {
	_, closer, err := p.db.Get(key)
	switch {
	case errors.Is(err, pebble.ErrNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("getting 0x%x: %w", key, err)
	}
	return true, closer.Close()
}

func (p *pebbleDB) Del(key []byte) error {
	err := p.db.Delete(key, pebble.Sync)
	if err != nil {
		return fmt.Errorf("deleting 0x%x: %w", key, err)
	}
	return nil
}

func (p *pebbleDB) Close() error {
	return p.db.Close()
}

func (p *pebbleDB) NewBatch() Batch {
	return &pebbleBatch{batch: p.db.NewBatch()}
}

func (p *pebbleDB) NewPrefixIterator(prefix []byte) Iterator {
	return p.NewRangeIterator(prefix, prefixUpperBound(prefix))
}

// NewRangeIterator iterates over the keys in [lower, upper).
// A nil bound leaves that side open.
func (p *pebbleDB) NewRangeIterator(lower, upper []byte) Iterator {
	return &pebbleIterator{
		Iterator: p.db.NewIter(&pebble.IterOptions{
			LowerBound: lower,
			UpperBound: upper,
		}),
	}
}

// prefixUpperBound returns the smallest key greater than every key
// starting with prefix, or nil if there is no such key.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)

	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}

	return nil
}

type pebbleBatch struct {
	batch *pebble.Batch
}

func (pb *pebbleBatch) Put(key, value []byte) error {
	err := pb.batch.Set(key, value, nil)
	if err != nil {
		return fmt.Errorf("adding write of 0x%x to batch: %w", key, err)
	}
	return nil
}

func (pb *pebbleBatch) Del(key []byte) error {
	err := pb.batch.Delete(key, nil)
	if err != nil {
		return fmt.Errorf("adding deletion of 0x%x to batch: %w", key, err)
	}
	return nil
}

func (pb *pebbleBatch) Len() int {
	return int(pb.batch.Count())
}

func (pb *pebbleBatch) Commit() error {
	err := pb.batch.Commit(pebble.Sync)
	if err != nil {
		return fmt.Errorf("committing batch of %d writes: %w", pb.Len(), err)
	}
	return nil
}

func (pb *pebbleBatch) Close() error {
	return pb.batch.Close()
}

type pebbleIterator struct {
	*pebble.Iterator
}

func (pi *pebbleIterator) Release() {
	err := pi.Close()
	if err != nil {
		logger.Errorf("closing iterator: %s", err)
	}
}

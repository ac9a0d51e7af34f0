// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

import (
	"bytes"
)

var _ Table = (*table)(nil)

type table struct {
	db     Database
	prefix []byte
}

// NewTable returns the table of the database with the given key prefix.
// Tables sharing a database must not have prefixes of one another.
func NewTable(db Database, prefix string) Table {
	return &table{
		db:     db,
		prefix: []byte(prefix),
	}
}

func (t *table) key(key []byte) []byte {
	return bytes.Join([][]byte{t.prefix, key}, nil)
}

func (t *table) Prefix() []byte {
	return t.prefix
}

func (t *table) Get(key []byte) ([]byte, error) {
	return t.db.Get(t.key(key))
}

func (t *table) Has(key []byte) (bool, error) {
	return t.db.Has(t.key(key))
}

func (t *table) Put(key, value []byte) error {
	return t.db.Put(t.key(key), value)
}

func (t *table) Del(key []byte) error {
	return t.db.Del(t.key(key))
}

func (t *table) InBatch(batch Batch) Writer {
	return &tableWriter{table: t, batch: batch}
}

func (t *table) NewPrefixIterator(prefix []byte) Iterator {
	return &tableIterator{
		Iterator: t.db.NewPrefixIterator(t.key(prefix)),
		table:    t,
	}
}

// NewRangeIterator iterates over the table keys in [lower, upper).
// A nil upper bound iterates until the end of the table.
func (t *table) NewRangeIterator(lower, upper []byte) Iterator {
	tableUpper := prefixUpperBound(t.prefix)
	if upper != nil {
		tableUpper = t.key(upper)
	}
	return &tableIterator{
		Iterator: t.db.NewRangeIterator(t.key(lower), tableUpper),
		table:    t,
	}
}

type tableIterator struct {
	Iterator
	table *table
}

func (ti *tableIterator) Key() []byte {
	return bytes.TrimPrefix(ti.Iterator.Key(), ti.table.prefix)
}

func (ti *tableIterator) SeekGE(key []byte) bool {
	return ti.Iterator.SeekGE(ti.table.key(key))
}

type tableWriter struct {
	table *table
	batch Batch
}

func (tw *tableWriter) Put(key, value []byte) error {
	return tw.batch.Put(tw.table.key(key), value)
}

func (tw *tableWriter) Del(key []byte) error {
	return tw.batch.Del(tw.table.key(key))
}

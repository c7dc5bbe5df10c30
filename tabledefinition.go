// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

// TableDefinition owns a table's column, index, and long-value catalog
// descriptors (§3, §4.4, C7). Lists are insertion-ordered, matching the
// original's intrusive linked lists (Design Notes "Doubly-linked catalog
// lists") collapsed to plain slices per that same note's recommendation.
type TableDefinition struct {
	table *DataDefinition

	columns    []*DataDefinition
	indexes    []*DataDefinition
	longValues []*DataDefinition
}

// NewTableDefinition constructs a TableDefinition from a TABLE Data
// Definition. Fails with ErrCatalogMismatch if table.Kind() != KindTable
// (§4.4).
func NewTableDefinition(table *DataDefinition) (*TableDefinition, error) {
	if table == nil {
		return nil, ErrArgumentInvalid
	}
	if table.Kind() != KindTable {
		return nil, ErrCatalogMismatch
	}
	return &TableDefinition{table: table}, nil
}

// Table returns the owned TABLE Data Definition.
func (t *TableDefinition) Table() *DataDefinition {
	return t.table
}

// AppendColumn appends a COLUMN Data Definition. Fails with
// ErrCatalogMismatch if col.Kind() != KindColumn.
func (t *TableDefinition) AppendColumn(col *DataDefinition) error {
	if col == nil {
		return ErrArgumentInvalid
	}
	if col.Kind() != KindColumn {
		return ErrCatalogMismatch
	}
	t.columns = append(t.columns, col)
	return nil
}

// AppendIndex appends an INDEX Data Definition. Fails with
// ErrCatalogMismatch if idx.Kind() != KindIndex.
func (t *TableDefinition) AppendIndex(idx *DataDefinition) error {
	if idx == nil {
		return ErrArgumentInvalid
	}
	if idx.Kind() != KindIndex {
		return ErrCatalogMismatch
	}
	t.indexes = append(t.indexes, idx)
	return nil
}

// AppendLongValue appends a LONG_VALUE Data Definition (as built by
// NewLongValueDataDefinition). Fails with ErrCatalogMismatch if
// lv.Kind() != KindLongValue.
func (t *TableDefinition) AppendLongValue(lv *DataDefinition) error {
	if lv == nil {
		return ErrArgumentInvalid
	}
	if lv.Kind() != KindLongValue {
		return ErrCatalogMismatch
	}
	t.longValues = append(t.longValues, lv)
	return nil
}

// Columns returns the table's column descriptors, in insertion order.
// The returned slice must not be mutated by the caller.
func (t *TableDefinition) Columns() []*DataDefinition {
	return t.columns
}

// Indexes returns the table's index descriptors, in insertion order.
func (t *TableDefinition) Indexes() []*DataDefinition {
	return t.indexes
}

// LongValues returns the table's long-value descriptors, in insertion
// order.
func (t *TableDefinition) LongValues() []*DataDefinition {
	return t.longValues
}

// ColumnCatalogEntries extracts the underlying column catalog entries
// in insertion order, the shape DecodeRecord takes as its catalog.
func (t *TableDefinition) ColumnCatalogEntries() []*ColumnCatalogEntry {
	entries := make([]*ColumnCatalogEntry, len(t.columns))
	for i, c := range t.columns {
		entries[i] = c.Column()
	}
	return entries
}

// Close releases the table definition's owned lists. It frees the
// long-value list, then the index list, then the column list, then
// drops the reference to the owned table Data Definition — the same
// order libesedb_table_definition_free uses (SPEC_FULL.md item 2),
// clearing each list independently of the others.
func (t *TableDefinition) Close() {
	t.longValues = nil
	t.indexes = nil
	t.columns = nil
	t.table = nil
}

// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

// Kind discriminates the five shapes a DataDefinition can take (§3).
type Kind int

const (
	// KindUnset is the zero value; a freshly allocated DataDefinition has
	// no kind until one of the Init* methods is called.
	KindUnset Kind = iota
	KindTable
	KindColumn
	KindIndex
	KindRecord
	KindLongValue
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "TABLE"
	case KindColumn:
		return "COLUMN"
	case KindIndex:
		return "INDEX"
	case KindRecord:
		return "RECORD"
	case KindLongValue:
		return "LONG_VALUE"
	default:
		return "UNSET"
	}
}

// IndexCatalogEntry is an immutable index descriptor (§3: "TABLE, COLUMN,
// INDEX: catalog-descriptor placeholder"). The record decoder does not
// consult index descriptors; they are carried by TableDefinition purely
// for catalog completeness, matching the out-of-scope index-key
// comparison named in §1's Non-goals.
type IndexCatalogEntry struct {
	Identifier uint32
	Name       string
}

// DataDefinition is the tagged variant described in §3 and Design Notes
// "Opaque polymorphic free": exactly one of its payload fields is valid,
// selected by Kind, set exactly once (invariant 1). Every Data
// Definition additionally owns an optional Key buffer (§3).
type DataDefinition struct {
	kind Kind
	Key  KeyBuffer

	column    *ColumnCatalogEntry
	index     *IndexCatalogEntry
	record    *recordData
	longValue *LongValue
}

// NewDataDefinition returns an uninitialized Data Definition; call
// exactly one Init* method before using it.
func NewDataDefinition() *DataDefinition {
	return &DataDefinition{}
}

// Kind returns the Data Definition's kind, or KindUnset if no Init*
// method has been called yet.
func (d *DataDefinition) Kind() Kind {
	return d.kind
}

func (d *DataDefinition) setKind(k Kind) error {
	if d.kind != KindUnset {
		return ErrStateAlreadySet
	}
	d.kind = k
	return nil
}

// InitTable fixes the kind to TABLE. A TABLE Data Definition carries no
// payload of its own beyond the key; it exists so TableDefinition has
// something kind-checked to own (§3).
func (d *DataDefinition) InitTable() error {
	return d.setKind(KindTable)
}

// InitColumn fixes the kind to COLUMN and attaches the column's catalog
// descriptor.
func (d *DataDefinition) InitColumn(entry *ColumnCatalogEntry) error {
	if entry == nil {
		return ErrArgumentInvalid
	}
	if err := d.setKind(KindColumn); err != nil {
		return err
	}
	d.column = entry
	return nil
}

// InitIndex fixes the kind to INDEX and attaches the index's catalog
// descriptor.
func (d *DataDefinition) InitIndex(entry *IndexCatalogEntry) error {
	if entry == nil {
		return ErrArgumentInvalid
	}
	if err := d.setKind(KindIndex); err != nil {
		return err
	}
	d.index = entry
	return nil
}

// Column returns the column descriptor for a COLUMN Data Definition. It
// panics if Kind() != KindColumn: kind mismatches here are a programming
// error in the caller, not a runtime condition callers should branch on
// (§7 reserves error returns for conditions the *input data* can
// trigger).
func (d *DataDefinition) Column() *ColumnCatalogEntry {
	if d.kind != KindColumn {
		panic("esedb: Column() called on non-COLUMN DataDefinition")
	}
	return d.column
}

// Index returns the index descriptor for an INDEX Data Definition. See
// Column's panic-on-mismatch note.
func (d *DataDefinition) Index() *IndexCatalogEntry {
	if d.kind != KindIndex {
		panic("esedb: Index() called on non-INDEX DataDefinition")
	}
	return d.index
}

// recordData is the RECORD payload: an ordered vector of value cells,
// one per column of the effective catalog used to decode it (invariant
// 2).
type recordData struct {
	cells []ValueCell
}

// initRecord fixes the kind to RECORD and attaches the decoded cells. It
// is unexported: records are only ever produced by DecodeRecord.
func (d *DataDefinition) initRecord(cells []ValueCell) error {
	if err := d.setKind(KindRecord); err != nil {
		return err
	}
	d.record = &recordData{cells: cells}
	return nil
}

// Cells returns the RECORD Data Definition's value cells, in effective
// catalog order. Panics if Kind() != KindRecord.
func (d *DataDefinition) Cells() []ValueCell {
	if d.kind != KindRecord {
		panic("esedb: Cells() called on non-RECORD DataDefinition")
	}
	return d.record.cells
}

// initLongValue fixes the kind to LONG_VALUE and attaches the segment
// assembler. Unexported: only NewLongValueDataDefinition constructs one.
func (d *DataDefinition) initLongValue(lv *LongValue) error {
	if err := d.setKind(KindLongValue); err != nil {
		return err
	}
	d.longValue = lv
	return nil
}

// LongValue returns the LONG_VALUE Data Definition's segment assembler.
// Panics if Kind() != KindLongValue.
func (d *DataDefinition) LongValue() *LongValue {
	if d.kind != KindLongValue {
		panic("esedb: LongValue() called on non-LONG_VALUE DataDefinition")
	}
	return d.longValue
}

// NewTableDataDefinition is a convenience constructor combining
// NewDataDefinition and InitTable, used by callers that only ever need a
// TABLE kind (e.g. TableDefinition's constructor).
func NewTableDataDefinition() (*DataDefinition, error) {
	d := NewDataDefinition()
	if err := d.InitTable(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewColumnDataDefinition is a convenience constructor combining
// NewDataDefinition and InitColumn.
func NewColumnDataDefinition(entry *ColumnCatalogEntry) (*DataDefinition, error) {
	d := NewDataDefinition()
	if err := d.InitColumn(entry); err != nil {
		return nil, err
	}
	return d, nil
}

// NewIndexDataDefinition is a convenience constructor combining
// NewDataDefinition and InitIndex.
func NewIndexDataDefinition(entry *IndexCatalogEntry) (*DataDefinition, error) {
	d := NewDataDefinition()
	if err := d.InitIndex(entry); err != nil {
		return nil, err
	}
	return d, nil
}

// NewLongValueDataDefinition fixes the kind to LONG_VALUE, reading the
// 8-byte opaque header per §4.2.
func NewLongValueDataDefinition(header []byte) (*DataDefinition, error) {
	lv, err := newLongValue(header)
	if err != nil {
		return nil, err
	}
	d := NewDataDefinition()
	if err := d.initLongValue(lv); err != nil {
		return nil, err
	}
	return d, nil
}

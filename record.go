// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import (
	"github.com/arukaminado/libesedb/log"
)

// recordHeaderSize is the fixed header every record blob begins with
// (§4.1.2, §6).
const recordHeaderSize = 4

// DecodeTrace carries optional, purely observational side channels for
// DecodeRecord: a logger for recoverable-anomaly tracing, and an
// Anomalies accumulator. DecodeRecord's return value never depends on
// whether a trace was supplied — passing nil keeps decoding a pure
// function of (catalog, io, data, fileOffset), matching §6's "no
// persisted state" contract; a trace is purely a side door for
// diagnostics, never a substitute for an error return.
type DecodeTrace struct {
	Logger    *log.Helper
	Anomalies []string
}

func (t *DecodeTrace) notef(format string, args ...interface{}) {
	if t == nil {
		return
	}
	if t.Logger != nil {
		t.Logger.Debugf(format, args...)
	}
}

func (t *DecodeTrace) anomaly(msg string) {
	if t == nil {
		return
	}
	t.Anomalies = append(t.Anomalies, msg)
}

// columnEntries extracts and kind-validates the COLUMN Data Definitions
// in a catalog list, in order. Returns ErrCatalogMismatch for any
// element that is nil or not KindColumn (§4.1.5: "A catalog list element
// of non-COLUMN kind").
func columnEntries(list []*DataDefinition) ([]*ColumnCatalogEntry, error) {
	out := make([]*ColumnCatalogEntry, len(list))
	for i, d := range list {
		if d == nil || d.Kind() != KindColumn {
			return nil, ErrCatalogMismatch
		}
		out[i] = d.Column()
	}
	return out, nil
}

// EffectiveCatalog builds the ordered column list DecodeRecord walks
// (§4.1.1). template may be nil, meaning the table carries no template
// and the effective catalog is simply its own column list. When template
// is non-nil, every column of table must be tagged (identifier >= 256)
// and table must be no longer than template; violating either fails
// with ErrCatalogMismatch.
func EffectiveCatalog(template, table []*DataDefinition) ([]*ColumnCatalogEntry, error) {
	tableColumns, err := columnEntries(table)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return tableColumns, nil
	}
	templateColumns, err := columnEntries(template)
	if err != nil {
		return nil, err
	}
	if len(tableColumns) > len(templateColumns) {
		return nil, ErrCatalogMismatch
	}
	for _, col := range tableColumns {
		if col.Identifier < MinTaggedColumnIdentifier {
			return nil, ErrCatalogMismatch
		}
	}
	effective := make([]*ColumnCatalogEntry, 0, len(templateColumns)+len(tableColumns))
	effective = append(effective, templateColumns...)
	effective = append(effective, tableColumns...)
	return effective, nil
}

// variableIndexEntry is the precomputed decode of one variable-size
// index slot (§4.1.2 region 2): either NULL, or a [relStart, relEnd)
// span relative to the start of the variable-size value region.
type variableIndexEntry struct {
	isNull           bool
	relStart, relEnd int
}

// parseVariableIndex decodes the variable-size index and locates the
// value region it addresses into (§4.1.2 regions 2-3). It processes
// every index slot up to last_variable_size_data_type regardless of
// which identifiers the caller's catalog actually uses, since the
// region boundaries (and the "previous end" that NULL slots must not
// advance, §8) are a property of the on-disk index, not of the catalog.
func parseVariableIndex(data []byte, varOffset int, lastVariable uint8) (entries []variableIndexEntry, valueRegionStart, valueRegionEnd int, err error) {
	n := 0
	if lastVariable > MaxFixedColumnIdentifier {
		n = int(lastVariable) - MaxFixedColumnIdentifier
	}
	indexEnd := varOffset + 2*n
	if indexEnd > len(data) {
		return nil, 0, 0, ErrBoundsExceeded
	}
	valueRegionStart = indexEnd

	r := newByteReader(data)
	entries = make([]variableIndexEntry, n)
	previousEnd := 0
	for k := 0; k < n; k++ {
		raw, err := r.uint16At(varOffset + 2*k)
		if err != nil {
			return nil, 0, 0, err
		}
		if raw&taggedNullMask != 0 {
			entries[k] = variableIndexEntry{isNull: true, relStart: previousEnd, relEnd: previousEnd}
			continue
		}
		end := int(raw & 0x7FFF)
		if end < previousEnd {
			return nil, 0, 0, ErrBoundsExceeded
		}
		if valueRegionStart+end > len(data) {
			return nil, 0, 0, ErrBoundsExceeded
		}
		entries[k] = variableIndexEntry{isNull: false, relStart: previousEnd, relEnd: end}
		previousEnd = end
	}
	valueRegionEnd = valueRegionStart + previousEnd
	return entries, valueRegionStart, valueRegionEnd, nil
}

// decodeFixedColumn implements §4.1.4 step 1.
func decodeFixedColumn(col *ColumnCatalogEntry, data []byte, cursor *int, lastFixed uint8, varOffset int, fileOffset int64) (ValueCell, error) {
	if int(col.Identifier) > int(lastFixed) {
		return ValueCell{Column: col}, nil
	}
	if col.Size < 0 {
		return ValueCell{}, ErrArgumentInvalid
	}
	start := *cursor
	end := start + col.Size
	if end > varOffset || end > len(data) {
		return ValueCell{}, ErrBoundsExceeded
	}
	*cursor = end
	return ValueCell{Column: col, Data: data[start:end], Offset: fileOffset + int64(start)}, nil
}

// decodeVariableColumn implements §4.1.4 step 2, looking up the
// precomputed index slot for col's identifier directly (entry k
// corresponds to identifier 128+k).
func decodeVariableColumn(col *ColumnCatalogEntry, entries []variableIndexEntry, valueRegionStart int, data []byte, fileOffset int64) ValueCell {
	k := int(col.Identifier) - (MaxFixedColumnIdentifier + 1)
	if k < 0 || k >= len(entries) {
		return ValueCell{Column: col}
	}
	e := entries[k]
	if e.isNull {
		return ValueCell{Column: col}
	}
	start := valueRegionStart + e.relStart
	end := valueRegionStart + e.relEnd
	return ValueCell{
		Column: col,
		Data:   data[start:end],
		Offset: fileOffset + int64(start),
	}
}

// decodeTaggedColumn implements §4.1.4 step 3: peek the pending entry
// and only consume it if its identifier matches col's.
func decodeTaggedColumn(col *ColumnCatalogEntry, tc taggedCursor, data []byte, fileOffset int64, trace *DecodeTrace) (ValueCell, error) {
	id, ok, err := tc.peek()
	if err != nil {
		return ValueCell{}, err
	}
	if !ok || id != col.Identifier {
		return ValueCell{Column: col}, nil
	}
	payload, flags, hasFlags, payloadOffset, err := tc.consume()
	if err != nil {
		return ValueCell{}, err
	}
	if len(payload) == 0 {
		// Open question (i): a zero-size tagged value is a present,
		// empty cell, not NULL (§9).
		trace.notef("esedb: zero-size tagged value for column %d", col.Identifier)
		trace.anomaly("zero-size tagged value")
	}
	cell := ValueCell{
		Column: col,
		Data:   payload,
		Offset: fileOffset + int64(payloadOffset),
	}
	if hasFlags {
		cell.Flags = flags
		cell.HasFlags = true
	}
	return cell, nil
}

// DecodeRecord parses one record blob against an already-built effective
// catalog (§4.1, C5 — the core of this package). data must outlive the
// returned DataDefinition: ValueCell.Data slices alias it rather than
// copying (SPEC_FULL.md item 4). trace may be nil.
//
// On any error, DecodeRecord returns (nil, err); no partial
// DataDefinition is ever handed back to the caller (§5's resource
// discipline — a Go slice of partially built cells simply becomes
// unreachable and is collected, satisfying the same contract the
// original's explicit free-on-failure path enforces in a
// non-garbage-collected language).
func DecodeRecord(catalog []*ColumnCatalogEntry, io IOContext, data []byte, fileOffset int64, trace *DecodeTrace) (*DataDefinition, error) {
	if len(data) < recordHeaderSize {
		return nil, ErrBoundsExceeded
	}
	header := newByteReader(data)
	lastFixed, err := header.readUint8()
	if err != nil {
		return nil, err
	}
	lastVariable, err := header.readUint8()
	if err != nil {
		return nil, err
	}
	varOffset16, err := header.readUint16()
	if err != nil {
		return nil, err
	}
	varOffset := int(varOffset16)
	if varOffset < recordHeaderSize || varOffset > len(data) {
		return nil, ErrBoundsExceeded
	}

	entries, valueRegionStart, valueRegionEnd, err := parseVariableIndex(data, varOffset, lastVariable)
	if err != nil {
		return nil, err
	}

	cells := make([]ValueCell, 0, len(catalog))
	fixedCursor := recordHeaderSize
	var tc taggedCursor

	for _, col := range catalog {
		if col == nil || col.Identifier == 0 {
			return nil, ErrCatalogMismatch
		}
		switch {
		case col.IsFixed():
			cell, err := decodeFixedColumn(col, data, &fixedCursor, lastFixed, varOffset, fileOffset)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		case col.IsVariable():
			cells = append(cells, decodeVariableColumn(col, entries, valueRegionStart, data, fileOffset))
		default:
			if tc == nil {
				tc, err = newTaggedCursor(io.TaggedLayout(), data, valueRegionEnd, io)
				if err != nil {
					return nil, err
				}
			}
			cell, err := decodeTaggedColumn(col, tc, data, fileOffset, trace)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
	}

	rec := NewDataDefinition()
	if err := rec.initRecord(cells); err != nil {
		return nil, err
	}
	return rec, nil
}

// DecodeTableRecord is the host-facing convenience wrapper §2 describes:
// given a table (and optional template) TableDefinition, build the
// effective catalog and decode one record against it in a single call.
func DecodeTableRecord(table, template *TableDefinition, io IOContext, data []byte, fileOffset int64, trace *DecodeTrace) (*DataDefinition, error) {
	if table == nil {
		return nil, ErrArgumentInvalid
	}
	var templateColumns []*DataDefinition
	if template != nil {
		templateColumns = template.Columns()
	}
	catalog, err := EffectiveCatalog(templateColumns, table.Columns())
	if err != nil {
		return nil, err
	}
	return DecodeRecord(catalog, io, data, fileOffset, trace)
}

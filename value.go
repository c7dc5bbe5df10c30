// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

// ValueCell holds one column's decoded bytes for one record (§3, C3).
//
// Data policy: Data is a sub-slice of the record blob the decoder was
// given (reference semantics, SPEC_FULL.md item 4) — it is never copied.
// The blob passed to DecodeRecord must outlive every ValueCell produced
// from it. Callers that need an owned copy (e.g. to release the
// underlying page buffer) must copy Data themselves.
type ValueCell struct {
	// Column is the catalog entry this cell decodes a value for.
	Column *ColumnCatalogEntry

	// Data is the cell's raw bytes, or nil if the column is NULL. A
	// present-but-empty column (the zero-size tagged value open
	// question, §9) is represented by a non-nil, zero-length slice.
	Data []byte

	// Flags is the tagged-column flags byte, meaningful only when
	// Column.IsTagged() and HasFlags is true.
	Flags uint8

	// HasFlags reports whether Flags was actually present on disk for
	// this cell (LINEAR layout's high bit, or INDEX layout's
	// always/conditionally-present leading byte, §4.1.3).
	HasFlags bool

	// Offset is the absolute file offset at which Data begins, for later
	// lazy re-reads (e.g. resolving a long-value reference). Meaningless
	// when Data is nil.
	Offset int64
}

// IsNull reports whether the cell has no value.
func (v ValueCell) IsNull() bool {
	return v.Data == nil
}

// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

// fuzzCatalog is a small, fixed effective catalog exercising all three
// decode regions (one fixed Long column, one variable Binary column, one
// tagged LongText column), so Fuzz drives DecodeRecord's full region walk
// on whatever bytes the fuzzer hands it.
var fuzzCatalog = []*ColumnCatalogEntry{
	{Identifier: 1, Type: ColumnTypeLong, Size: 4, Name: "fixed_long"},
	{Identifier: 128, Type: ColumnTypeBinary, Name: "variable_binary"},
	{Identifier: 256, Type: ColumnTypeLongText, Name: "tagged_text"},
}

// Fuzz is a go-fuzz entry point (SPEC_FULL.md ambient stack: fuzzing),
// adapted from the teacher's fuzz.go harness convention to drive
// DecodeRecord instead of a PE file parse.
func Fuzz(data []byte) int {
	io := IOContext{FormatVersion: FormatVersion620, FormatRevision: 11}
	if _, err := DecodeRecord(fuzzCatalog, io, data, 0, nil); err != nil {
		return 0
	}
	return 1
}

// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import "errors"

// Errors returned by the record decoder, long-value assembler, key
// buffer, and table definition. Each corresponds to one category of
// §7's error taxonomy.
var (
	// ErrArgumentInvalid is returned when a caller-supplied parameter is
	// nil or outside its valid range.
	ErrArgumentInvalid = errors.New("esedb: invalid argument")

	// ErrStateAlreadySet is returned when a one-shot field (a Data
	// Definition's kind, a key buffer's common prefix) is initialized a
	// second time.
	ErrStateAlreadySet = errors.New("esedb: state already set")

	// ErrStateMissing is returned when an operation requires a
	// prerequisite that was never established, such as consuming a
	// tagged entry after the tagged region is exhausted.
	ErrStateMissing = errors.New("esedb: required state missing")

	// ErrBoundsExceeded is returned when a parsed offset or size would
	// walk past the end of the record blob or the long-value block.
	ErrBoundsExceeded = errors.New("esedb: bounds exceeded")

	// ErrCatalogMismatch is returned when a catalog list element has the
	// wrong Data Definition kind, a template-extended table violates
	// §4.1.1's constraints, or tagged offsets are non-monotonic. Column
	// types are not checked, so no column is rejected for its type.
	ErrCatalogMismatch = errors.New("esedb: catalog mismatch")

	// ErrUnsupported is returned for a tagged-region layout selector that
	// cannot be reached, or a long-value segment whose size at
	// initialization is not 8 bytes.
	ErrUnsupported = errors.New("esedb: unsupported")

	// ErrAllocationFailure is returned when backing memory could not be
	// obtained. Go rarely surfaces this directly (it panics instead), but
	// the sentinel exists so callers that wrap allocation (e.g. a
	// pooled-buffer SegmentSource) have a taxonomy slot to report into.
	ErrAllocationFailure = errors.New("esedb: allocation failure")
)

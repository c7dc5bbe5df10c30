// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import "sort"

// longValueHeaderSize is the fixed size of the opaque long-value header
// (§4.2, §9 open question ii): two unused/opaque u32 LE fields.
const longValueHeaderSize = 8

// segment is one chained out-of-row piece of a long value: length bytes
// live at FileOffset in the backing store, and LogicalStart is this
// segment's offset in the assembled logical byte stream.
type segment struct {
	LogicalStart int64
	FileOffset   int64
	Length       int64
}

// LongValue accumulates out-of-row segments into a contiguous logical
// byte stream (§4.2, C6). Segments are recorded as (file_offset, length)
// pairs; the raw bytes are never copied into the assembler itself
// (Design Notes "Segment chains for long values").
type LongValue struct {
	// Reserved1 and Reserved2 are the long-value header's two opaque u32
	// fields, accepted but never interpreted (§9 open question ii).
	Reserved1 uint32
	Reserved2 uint32

	segments []segment
	size     int64
}

// newLongValue reads the 8-byte header and returns an initialized,
// empty assembler. It is unexported; callers go through
// NewLongValueDataDefinition so a LongValue is always reached wrapped in
// a LONG_VALUE DataDefinition.
func newLongValue(header []byte) (*LongValue, error) {
	if len(header) != longValueHeaderSize {
		return nil, ErrUnsupported
	}
	r := newByteReader(header)
	reserved1, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	reserved2, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	return &LongValue{Reserved1: reserved1, Reserved2: reserved2}, nil
}

// Size returns the long value's current total logical size.
func (lv *LongValue) Size() int64 {
	return lv.size
}

// NumSegments returns the number of segments appended so far.
func (lv *LongValue) NumSegments() int {
	return len(lv.segments)
}

// AppendSegment records a new out-of-row segment. segmentOffset is the
// logical offset the caller asserts this segment starts at; it must
// equal the assembler's current total logical size, or the append fails
// with ErrBoundsExceeded (no gaps, no overlaps, no reordering — §4.2,
// invariant 4). length must be >= 0.
func (lv *LongValue) AppendSegment(segmentOffset int64, fileOffset int64, length int64) error {
	if length < 0 {
		return ErrArgumentInvalid
	}
	if segmentOffset != lv.size {
		return ErrBoundsExceeded
	}
	lv.segments = append(lv.segments, segment{
		LogicalStart: segmentOffset,
		FileOffset:   fileOffset,
		Length:       length,
	})
	lv.size += length
	return nil
}

// FileRange is one (file_offset, length) piece of the underlying store
// that a logical [a, b) read resolves to, in logical order.
type FileRange struct {
	FileOffset int64
	Length     int64
}

// Resolve maps a logical range [start, end) of the assembled long value
// onto one or more underlying file ranges, in ascending logical order.
// It fails with ErrBoundsExceeded if the requested range is not fully
// covered by appended segments.
func (lv *LongValue) Resolve(start, end int64) ([]FileRange, error) {
	if start < 0 || end < start {
		return nil, ErrArgumentInvalid
	}
	if end > lv.size {
		return nil, ErrBoundsExceeded
	}
	if start == end {
		return nil, nil
	}

	// Binary search for the first segment whose span could contain
	// `start`: the cumulative logical-size index is monotonically
	// increasing since AppendSegment enforces strict contiguity.
	idx := sort.Search(len(lv.segments), func(i int) bool {
		seg := lv.segments[i]
		return seg.LogicalStart+seg.Length > start
	})

	var out []FileRange
	pos := start
	for i := idx; i < len(lv.segments) && pos < end; i++ {
		seg := lv.segments[i]
		segEnd := seg.LogicalStart + seg.Length
		if pos < seg.LogicalStart {
			// A gap would violate invariant 4; AppendSegment should have
			// prevented this from ever being constructible.
			return nil, ErrBoundsExceeded
		}
		rangeEnd := segEnd
		if end < rangeEnd {
			rangeEnd = end
		}
		out = append(out, FileRange{
			FileOffset: seg.FileOffset + (pos - seg.LogicalStart),
			Length:     rangeEnd - pos,
		})
		pos = rangeEnd
	}
	if pos < end {
		return nil, ErrBoundsExceeded
	}
	return out, nil
}

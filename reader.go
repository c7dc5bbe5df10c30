// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import "encoding/binary"

// byteReader is a bounds-checked little-endian reader over a slice, with
// an advancing cursor. It never panics on out-of-range reads; instead it
// returns ErrBoundsExceeded, mirroring the overflow-then-range check used
// throughout the teacher's structUnpack/ReadBytesAtOffset helpers.
type byteReader struct {
	data   []byte
	offset int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func newByteReaderAt(data []byte, offset int) *byteReader {
	return &byteReader{data: data, offset: offset}
}

// remaining reports how many bytes are left unread.
func (r *byteReader) remaining() int {
	return len(r.data) - r.offset
}

func (r *byteReader) checkBounds(size int) error {
	if size < 0 {
		return ErrArgumentInvalid
	}
	end := r.offset + size
	// Overflow guard: if the sum wrapped, it cannot be a valid extent.
	if end < r.offset {
		return ErrBoundsExceeded
	}
	if r.offset < 0 || end > len(r.data) {
		return ErrBoundsExceeded
	}
	return nil
}

// readUint8 reads one byte and advances the cursor.
func (r *byteReader) readUint8() (uint8, error) {
	if err := r.checkBounds(1); err != nil {
		return 0, err
	}
	v := r.data[r.offset]
	r.offset++
	return v, nil
}

// readUint16 reads a little-endian u16 and advances the cursor.
func (r *byteReader) readUint16() (uint16, error) {
	if err := r.checkBounds(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.offset : r.offset+2])
	r.offset += 2
	return v, nil
}

// readUint32 reads a little-endian u32 and advances the cursor.
func (r *byteReader) readUint32() (uint32, error) {
	if err := r.checkBounds(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset : r.offset+4])
	r.offset += 4
	return v, nil
}

// slice returns the next size bytes as a sub-slice of the reader's
// backing array (reference semantics — see the value-cell data-pointer
// policy in SPEC_FULL.md) and advances the cursor.
func (r *byteReader) slice(size int) ([]byte, error) {
	if err := r.checkBounds(size); err != nil {
		return nil, err
	}
	s := r.data[r.offset : r.offset+size]
	r.offset += size
	return s, nil
}

// sliceAt returns a sub-slice [start, end) of the reader's backing array
// without touching the cursor, used by the variable-size and tagged
// region walks which address by absolute offset rather than by
// sequential consumption.
func (r *byteReader) sliceAt(start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(r.data) {
		return nil, ErrBoundsExceeded
	}
	return r.data[start:end], nil
}

// uint16At reads a little-endian u16 at an absolute offset without
// touching the cursor.
func (r *byteReader) uint16At(offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(r.data) {
		return 0, ErrBoundsExceeded
	}
	return binary.LittleEndian.Uint16(r.data[offset : offset+2]), nil
}

// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

// taggedSizeMask strips the flags-present marker (0x8000) and the undocumented bit
// 0x2000 from a LINEAR tagged-record size field, leaving the payload
// length (plus one, when a flags byte is present). Preserved verbatim
// per Design Notes "Ambiguous bits" — its full semantics are not
// documented by Microsoft.
const taggedSizeMask = 0x5FFF

// taggedNullMask marks a variable-size index entry as NULL. In a LINEAR
// tagged-record size field the same bit instead marks a leading flags byte.
const taggedNullMask = 0x8000

// taggedOffsetMask strips the per-column "has flags" marker (0x4000)
// from an INDEX layout offset, leaving the table-relative byte offset in
// its low 14 bits.
const taggedOffsetMask = 0x3FFF

// taggedFlagsPresentMask is the INDEX layout's per-column marker that a
// flags byte precedes the payload when format_revision predates
// ExtendedPageHeaderRevision (§4.1.3). Preserved verbatim per Design
// Notes "Ambiguous bits".
const taggedFlagsPresentMask = 0x4000

// taggedCursor walks the tagged region (§4.1.3) one column at a time, in
// on-disk order, matching the per-column driver in §4.1.4 step 3: peek
// the next pending (identifier, payload) pair without consuming it, and
// only consume when the caller's current catalog column matches.
type taggedCursor interface {
	// peek returns the identifier of the next not-yet-consumed tagged
	// entry, or ok == false if the region is exhausted.
	peek() (identifier uint16, ok bool, err error)

	// consume decodes and returns the entry peek just reported, advancing
	// past it. payloadOffset is the entry's payload start, relative to
	// the record blob, for stamping ValueCell.Offset.
	consume() (payload []byte, flags uint8, hasFlags bool, payloadOffset int, err error)
}

// newTaggedCursor constructs the cursor matching io's layout selector
// (§4.1.3, §6).
func newTaggedCursor(layout TaggedLayout, data []byte, regionStart int, io IOContext) (taggedCursor, error) {
	if regionStart < 0 || regionStart > len(data) {
		return nil, ErrBoundsExceeded
	}
	switch layout {
	case TaggedLayoutLinear:
		return &linearTaggedCursor{data: data, pos: regionStart}, nil
	case TaggedLayoutIndex:
		return newIndexTaggedCursor(data, regionStart, io)
	default:
		return nil, ErrUnsupported
	}
}

// linearTaggedCursor implements the LINEAR layout: a flat stream of
// [u16 identifier][u16 size][payload] records running to the end of the
// blob (§4.1.3).
type linearTaggedCursor struct {
	data []byte
	pos  int
}

func (c *linearTaggedCursor) peek() (uint16, bool, error) {
	remaining := len(c.data) - c.pos
	if remaining == 0 {
		return 0, false, nil
	}
	if remaining < 4 {
		return 0, false, ErrBoundsExceeded
	}
	id, err := newByteReader(c.data).uint16At(c.pos)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (c *linearTaggedCursor) consume() ([]byte, uint8, bool, int, error) {
	if len(c.data)-c.pos < 4 {
		return nil, 0, false, 0, ErrBoundsExceeded
	}
	sizeField, err := newByteReader(c.data).uint16At(c.pos + 2)
	if err != nil {
		return nil, 0, false, 0, err
	}
	c.pos += 4

	hasFlags := sizeField&taggedNullMask != 0
	length := int(sizeField & taggedSizeMask)
	if hasFlags {
		length--
	}
	if length < 0 {
		return nil, 0, false, 0, ErrBoundsExceeded
	}
	total := length
	if hasFlags {
		total++
	}
	if c.pos+total > len(c.data) {
		return nil, 0, false, 0, ErrBoundsExceeded
	}

	var flags uint8
	var payload []byte
	payloadOffset := c.pos
	if hasFlags {
		flags = c.data[c.pos]
		payloadOffset = c.pos + 1
		payload = c.data[c.pos+1 : c.pos+1+length]
	} else {
		payload = c.data[c.pos : c.pos+length]
	}
	c.pos += total
	return payload, flags, hasFlags, payloadOffset, nil
}

// indexTaggedOffsetEntry is one [identifier, offset] pair from the
// INDEX layout's offset table.
type indexTaggedOffsetEntry struct {
	identifier uint16
	offset     uint16
}

// indexTaggedCursor implements the INDEX layout: an offset table at the
// start of the tagged region, followed by concatenated payloads
// (§4.1.3).
type indexTaggedCursor struct {
	data        []byte
	regionStart int
	entries     []indexTaggedOffsetEntry
	idx         int
	io          IOContext
}

func newIndexTaggedCursor(data []byte, regionStart int, io IOContext) (*indexTaggedCursor, error) {
	if regionStart == len(data) {
		// Tagged region empty: all tagged columns NULL (§8 boundary
		// behaviors).
		return &indexTaggedCursor{data: data, regionStart: regionStart, io: io}, nil
	}
	if regionStart+4 > len(data) {
		return nil, ErrBoundsExceeded
	}
	r := newByteReader(data)
	firstOffset, err := r.uint16At(regionStart + 2)
	if err != nil {
		return nil, err
	}
	tableLength := int(firstOffset & taggedOffsetMask)
	if tableLength < 4 || regionStart+tableLength > len(data) {
		return nil, ErrBoundsExceeded
	}
	if tableLength%4 != 0 {
		return nil, ErrBoundsExceeded
	}
	numEntries := tableLength / 4

	entries := make([]indexTaggedOffsetEntry, numEntries)
	for i := 0; i < numEntries; i++ {
		off := regionStart + 4*i
		identifier, err := r.uint16At(off)
		if err != nil {
			return nil, err
		}
		offset, err := r.uint16At(off + 2)
		if err != nil {
			return nil, err
		}
		entries[i] = indexTaggedOffsetEntry{identifier: identifier, offset: offset}
	}
	for i := 1; i < numEntries; i++ {
		if entries[i].offset&taggedOffsetMask < entries[i-1].offset&taggedOffsetMask {
			return nil, ErrCatalogMismatch
		}
	}
	return &indexTaggedCursor{data: data, regionStart: regionStart, entries: entries, io: io}, nil
}

func (c *indexTaggedCursor) peek() (uint16, bool, error) {
	if c.idx >= len(c.entries) {
		return 0, false, nil
	}
	return c.entries[c.idx].identifier, true, nil
}

func (c *indexTaggedCursor) consume() ([]byte, uint8, bool, int, error) {
	if c.idx >= len(c.entries) {
		return nil, 0, false, 0, ErrStateMissing
	}
	entry := c.entries[c.idx]
	start := c.regionStart + int(entry.offset&taggedOffsetMask)

	var end int
	if c.idx+1 < len(c.entries) {
		end = c.regionStart + int(c.entries[c.idx+1].offset&taggedOffsetMask)
	} else {
		end = len(c.data)
	}
	if start > end || end > len(c.data) {
		return nil, 0, false, 0, ErrBoundsExceeded
	}

	// format_revision < EXTENDED_PAGE_HEADER gates the flags byte on this
	// column's own offset bit 0x4000 (§4.1.3).
	hasFlags := c.io.hasExtendedPageHeader() || entry.offset&taggedFlagsPresentMask != 0
	c.idx++

	if hasFlags {
		if start >= end {
			return nil, 0, false, 0, ErrBoundsExceeded
		}
		flags := c.data[start]
		return c.data[start+1 : end], flags, true, start + 1, nil
	}
	return c.data[start:end], 0, false, start, nil
}

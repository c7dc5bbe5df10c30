// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

// Format-version and format-revision sentinels (§6).
const (
	// FormatVersion620 is the only format_version value the tagged-region
	// layout selector inspects (§4.1.3).
	FormatVersion620 = 0x620

	// ExtendedPageHeaderRevision is the format_revision threshold at or
	// above which INDEX-layout tagged payloads always carry a leading
	// flags byte (§4.1.3, §6).
	ExtendedPageHeaderRevision = 0x11
)

// TaggedLayout identifies which of the two on-disk tagged-region layouts
// a record uses (§4.1.3).
type TaggedLayout int

const (
	// TaggedLayoutLinear is the `[id][size][payload]...` stream used by
	// format_version 0x620 with format_revision <= 2.
	TaggedLayoutLinear TaggedLayout = iota

	// TaggedLayoutIndex is the offset-table-prefixed layout used by every
	// other format version/revision combination.
	TaggedLayoutIndex
)

// IOContext carries the file-header-derived values the record decoder
// needs but does not itself parse (§1's "out of scope: file-header
// parsing beyond supplying format_version, format_revision, and
// ascii_codepage"). ascii_codepage is carried opaquely: the decoder never
// interprets it, matching the core's exclusion of character-set
// decoding (§1).
type IOContext struct {
	FormatVersion  uint16
	FormatRevision uint8
	AsciiCodepage  uint32
}

// TaggedLayout selects LINEAR or INDEX per §4.1.3's sentinel rule.
func (io IOContext) TaggedLayout() TaggedLayout {
	if io.FormatVersion == FormatVersion620 && io.FormatRevision <= 2 {
		return TaggedLayoutLinear
	}
	return TaggedLayoutIndex
}

// hasExtendedPageHeader reports whether the INDEX layout's flags byte is
// unconditionally present regardless of the per-column 0x4000 marker
// (§4.1.3).
func (io IOContext) hasExtendedPageHeader() bool {
	return io.FormatRevision >= ExtendedPageHeaderRevision
}

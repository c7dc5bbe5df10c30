// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// DecodeUnicodeText decodes a ColumnTypeLongText/ColumnTypeText cell's raw
// bytes as UTF-16LE, for display purposes only (cmd/esedbdump). The core
// decoder never interprets column bytes by type (§1 Non-goals); this is
// strictly a presentation helper adapted from the teacher's
// DecodeUTF16String.
func DecodeUnicodeText(b []byte) (string, error) {
	n := bytes.Index(b, []byte{0, 0})
	if n < 0 {
		n = len(b) - 1
	}
	if n <= 0 {
		return "", nil
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := decoder.Bytes(b[:n+1])
	if err != nil {
		return "", err
	}
	return string(s), nil
}

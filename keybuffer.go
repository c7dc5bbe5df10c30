// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

// KeyBuffer is the two-phase key assembly described in §4.3: a common
// prefix is set at most once, after which any number of local suffixes
// may be appended. Once a local suffix has been appended the common
// portion is frozen — a later SetCommon call fails.
type KeyBuffer struct {
	data          []byte
	commonSet     bool
	localAppended bool
}

// SetCommon installs the key's common (page-shared) prefix. It fails
// with ErrStateAlreadySet if a common prefix was already installed.
func (k *KeyBuffer) SetCommon(common []byte) error {
	if k.commonSet || k.localAppended {
		return ErrStateAlreadySet
	}
	buf := make([]byte, len(common))
	copy(buf, common)
	k.data = buf
	k.commonSet = true
	return nil
}

// AppendLocal appends the leaf entry's local suffix. Always allowed, even
// without a prior SetCommon call; freezes the common portion.
func (k *KeyBuffer) AppendLocal(local []byte) error {
	k.data = append(k.data, local...)
	k.localAppended = true
	return nil
}

// Size returns the key's current total length.
func (k *KeyBuffer) Size() int {
	return len(k.data)
}

// Bytes returns the assembled key. The returned slice aliases the
// buffer's internal storage and must not be mutated by the caller.
func (k *KeyBuffer) Bytes() []byte {
	return k.data
}

// Frozen reports whether a local suffix has been appended, after which
// the common prefix may no longer be changed.
func (k *KeyBuffer) Frozen() bool {
	return k.localAppended
}

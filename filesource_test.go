// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemorySourceReadAt(t *testing.T) {
	src := OpenBytes([]byte("HELLO WORLD"))
	defer src.Close()

	if src.Size() != 11 {
		t.Fatalf("Size() = %d, want 11", src.Size())
	}
	got, err := src.ReadAt(6, 5)
	if err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if string(got) != "WORLD" {
		t.Fatalf("ReadAt() = %q, want WORLD", got)
	}
}

func TestMemorySourceReadAtOutOfRange(t *testing.T) {
	src := OpenBytes([]byte("ABC"))
	if _, err := src.ReadAt(0, 10); !errors.Is(err, ErrBoundsExceeded) {
		t.Fatalf("ReadAt() error = %v, want ErrBoundsExceeded", err)
	}
}

func TestMemorySourceReadAtNegativeRejected(t *testing.T) {
	src := OpenBytes([]byte("ABC"))
	if _, err := src.ReadAt(-1, 1); !errors.Is(err, ErrArgumentInvalid) {
		t.Fatalf("ReadAt(-1, ...) error = %v, want ErrArgumentInvalid", err)
	}
	if _, err := src.ReadAt(0, -1); !errors.Is(err, ErrArgumentInvalid) {
		t.Fatalf("ReadAt(..., -1) error = %v, want ErrArgumentInvalid", err)
	}
}

func TestOpenMmapsFileReadOnly(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "record.bin")
	want := []byte("DEADBEEFCAFEBABE")
	if err := os.WriteFile(name, want, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	src, err := Open(name, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	if src.Size() != int64(len(want)) {
		t.Fatalf("Size() = %d, want %d", src.Size(), len(want))
	}
	got, err := src.ReadAt(4, 4)
	if err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if string(got) != "BEEF" {
		t.Fatalf("ReadAt() = %q, want BEEF", got)
	}
}

func TestOpenMissingFileFails(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.bin"), nil); err == nil {
		t.Fatalf("Open() on a missing file error = nil, want non-nil")
	}
}

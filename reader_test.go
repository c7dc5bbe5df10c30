// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import (
	"errors"
	"reflect"
	"testing"
)

func TestByteReaderReadUints(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	r := newByteReader(data)

	u8, err := r.readUint8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("readUint8() = %v, %v, want 0x01, nil", u8, err)
	}
	u16, err := r.readUint16()
	if err != nil || u16 != 0x0302 {
		t.Fatalf("readUint16() = %v, %v, want 0x0302, nil", u16, err)
	}
	u32, err := r.readUint32()
	if err != nil || u32 != 0x07060504 {
		t.Fatalf("readUint32() = %v, %v, want 0x07060504, nil", u32, err)
	}
}

func TestByteReaderBoundsExceeded(t *testing.T) {
	r := newByteReader([]byte{0x01})
	if _, err := r.readUint16(); !errors.Is(err, ErrBoundsExceeded) {
		t.Fatalf("readUint16() error = %v, want ErrBoundsExceeded", err)
	}
}

func TestByteReaderSlice(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	r := newByteReaderAt(data, 1)
	s, err := r.slice(2)
	if err != nil {
		t.Fatalf("slice() error = %v", err)
	}
	if !reflect.DeepEqual(s, []byte{0xBB, 0xCC}) {
		t.Fatalf("slice() = %v, want [0xBB 0xCC]", s)
	}
	if r.remaining() != 1 {
		t.Fatalf("remaining() = %d, want 1", r.remaining())
	}
}

func TestByteReaderSliceAt(t *testing.T) {
	data := []byte{0x00, 0x11, 0x22, 0x33}
	r := newByteReader(data)
	s, err := r.sliceAt(1, 3)
	if err != nil {
		t.Fatalf("sliceAt() error = %v", err)
	}
	if !reflect.DeepEqual(s, []byte{0x11, 0x22}) {
		t.Fatalf("sliceAt() = %v, want [0x11 0x22]", s)
	}
	if _, err := r.sliceAt(3, 1); !errors.Is(err, ErrBoundsExceeded) {
		t.Fatalf("sliceAt(3,1) error = %v, want ErrBoundsExceeded", err)
	}
	if _, err := r.sliceAt(0, 5); !errors.Is(err, ErrBoundsExceeded) {
		t.Fatalf("sliceAt(0,5) error = %v, want ErrBoundsExceeded", err)
	}
}

func TestByteReaderUint16At(t *testing.T) {
	data := []byte{0x00, 0x34, 0x12}
	r := newByteReader(data)
	v, err := r.uint16At(1)
	if err != nil || v != 0x1234 {
		t.Fatalf("uint16At(1) = %v, %v, want 0x1234, nil", v, err)
	}
	if _, err := r.uint16At(2); !errors.Is(err, ErrBoundsExceeded) {
		t.Fatalf("uint16At(2) error = %v, want ErrBoundsExceeded", err)
	}
}

func TestByteReaderNegativeSizeRejected(t *testing.T) {
	r := newByteReaderAt([]byte{0x01, 0x02}, 1)
	if err := r.checkBounds(-1); !errors.Is(err, ErrArgumentInvalid) {
		t.Fatalf("checkBounds(-1) error = %v, want ErrArgumentInvalid", err)
	}
}

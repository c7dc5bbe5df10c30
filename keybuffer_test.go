// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import (
	"errors"
	"reflect"
	"testing"
)

func TestKeyBufferSetCommonThenAppend(t *testing.T) {
	var k KeyBuffer
	if err := k.SetCommon([]byte{0x01, 0x02}); err != nil {
		t.Fatalf("SetCommon() error = %v", err)
	}
	if err := k.AppendLocal([]byte{0x03}); err != nil {
		t.Fatalf("AppendLocal() error = %v", err)
	}
	if !reflect.DeepEqual(k.Bytes(), []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("Bytes() = %v, want [1 2 3]", k.Bytes())
	}
	if k.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", k.Size())
	}
	if !k.Frozen() {
		t.Fatalf("Frozen() = false, want true after AppendLocal")
	}
}

func TestKeyBufferSetCommonTwiceFails(t *testing.T) {
	var k KeyBuffer
	if err := k.SetCommon([]byte{0x01}); err != nil {
		t.Fatalf("SetCommon() error = %v", err)
	}
	if err := k.SetCommon([]byte{0x02}); !errors.Is(err, ErrStateAlreadySet) {
		t.Fatalf("second SetCommon() error = %v, want ErrStateAlreadySet", err)
	}
}

func TestKeyBufferAppendLocalFreezesCommon(t *testing.T) {
	var k KeyBuffer
	if err := k.AppendLocal([]byte{0x09}); err != nil {
		t.Fatalf("AppendLocal() error = %v", err)
	}
	if err := k.SetCommon([]byte{0x01}); !errors.Is(err, ErrStateAlreadySet) {
		t.Fatalf("SetCommon() after AppendLocal error = %v, want ErrStateAlreadySet", err)
	}
}

func TestKeyBufferAppendLocalWithoutCommon(t *testing.T) {
	var k KeyBuffer
	if err := k.AppendLocal([]byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("AppendLocal() error = %v", err)
	}
	if !reflect.DeepEqual(k.Bytes(), []byte{0xAA, 0xBB}) {
		t.Fatalf("Bytes() = %v, want [0xAA 0xBB]", k.Bytes())
	}
}

func TestKeyBufferMultipleAppends(t *testing.T) {
	var k KeyBuffer
	k.AppendLocal([]byte{0x01})
	k.AppendLocal([]byte{0x02, 0x03})
	if !reflect.DeepEqual(k.Bytes(), []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("Bytes() = %v, want [1 2 3]", k.Bytes())
	}
}

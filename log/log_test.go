// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdLoggerWritesLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLogger(&buf)
	if err := logger.Log(LevelInfo, "key", "value"); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "INFO") || !strings.Contains(got, "key=value") {
		t.Fatalf("Log() output = %q, want it to contain level and key=value", got)
	}
}

func TestFilterDropsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFilter(NewStdLogger(&buf), FilterLevel(LevelError))

	if err := logger.Log(LevelInfo, "msg", "dropped"); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("filtered LevelInfo call wrote output: %q", buf.String())
	}

	if err := logger.Log(LevelError, "msg", "kept"); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("LevelError call was filtered out, output = %q", buf.String())
	}
}

func TestHelperNilIsSafe(t *testing.T) {
	var h *Helper
	h.Debugf("should not panic: %d", 1)
}

func TestHelperErrorf(t *testing.T) {
	var buf bytes.Buffer
	h := NewHelper(NewStdLogger(&buf))
	h.Errorf("boom %d", 42)
	if !strings.Contains(buf.String(), "boom 42") {
		t.Fatalf("Errorf() output = %q, want it to contain formatted message", buf.String())
	}
}

// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import "testing"

func TestValueCellIsNull(t *testing.T) {
	tests := []struct {
		name string
		cell ValueCell
		want bool
	}{
		{"nil data is null", ValueCell{}, true},
		{"empty non-nil data is present", ValueCell{Data: []byte{}}, false},
		{"populated data is present", ValueCell{Data: []byte{1, 2}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.IsNull(); got != tt.want {
				t.Errorf("IsNull() = %v, want %v", got, tt.want)
			}
		})
	}
}

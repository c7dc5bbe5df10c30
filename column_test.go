// Copyright 2024 The libesedb authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package esedb

import "testing"

func TestColumnCatalogEntryIdentifierRanges(t *testing.T) {
	tests := []struct {
		name       string
		identifier uint16
		fixed      bool
		variable   bool
		tagged     bool
	}{
		{"lowest fixed", 1, true, false, false},
		{"highest fixed", MaxFixedColumnIdentifier, true, false, false},
		{"lowest variable", MaxFixedColumnIdentifier + 1, false, true, false},
		{"highest variable", MaxVariableColumnIdentifier, false, true, false},
		{"lowest tagged", MinTaggedColumnIdentifier, false, false, true},
		{"high tagged", 65535, false, false, true},
		{"zero identifier", 0, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ColumnCatalogEntry{Identifier: tt.identifier}
			if got := c.IsFixed(); got != tt.fixed {
				t.Errorf("IsFixed() = %v, want %v", got, tt.fixed)
			}
			if got := c.IsVariable(); got != tt.variable {
				t.Errorf("IsVariable() = %v, want %v", got, tt.variable)
			}
			if got := c.IsTagged(); got != tt.tagged {
				t.Errorf("IsTagged() = %v, want %v", got, tt.tagged)
			}
		})
	}
}

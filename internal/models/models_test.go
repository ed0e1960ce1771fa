// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package models

import "testing"

func TestNativeLabel(t *testing.T) {
	tests := []struct {
		native bool
		want   string
	}{
		{true, "Native"},
		{false, "Non-native"},
	}

	for _, tt := range tests {
		if got := NativeLabel(tt.native); got != tt.want {
			t.Errorf("NativeLabel(%v) = %q, want %q", tt.native, got, tt.want)
		}
		tree := Tree{Native: tt.native}
		if got := tree.NativeLabel(); got != tt.want {
			t.Errorf("Tree.NativeLabel() = %q, want %q", got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	want := []string{
		"common_name", "scientific_name", "city", "state",
		"latitude_coordinate", "longitude_coordinate", "diameter_breast_height_CM", "native",
	}
	if len(Columns) != len(want) {
		t.Fatalf("len(Columns) = %d, want %d", len(Columns), len(want))
	}
	for i := range want {
		if Columns[i] != want[i] {
			t.Errorf("Columns[%d] = %q, want %q", i, Columns[i], want[i])
		}
	}
}

package main

import "testing"

func TestNumberedPath(t *testing.T) {
	tests := []struct {
		path     string
		i        int
		expected string
	}{
		{"field.svg", 0, "field_000.svg"},
		{"out/field.svg", 12, "out/field_012.svg"},
		{"noext", 3, "noext_003"},
	}

	for _, tt := range tests {
		if got := numberedPath(tt.path, tt.i); got != tt.expected {
			t.Errorf("numberedPath(%q, %d) = %q, want %q", tt.path, tt.i, got, tt.expected)
		}
	}
}

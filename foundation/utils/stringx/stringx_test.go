// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for the stringx helpers, covering edge cases and
//              Unicode handling.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-08-04 v0.3.0: Tests for ToEnvName and ContainsSpace

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n", true},
		{"normal string", "hello", false},
		{"padded string", "  hi  ", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"first wins", []string{"de", "en"}, "de"},
		{"skips blanks", []string{"", "  ", "en"}, "en"},
		{"all blank", []string{"", " "}, ""},
		{"no input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonBlank(tt.input...); got != tt.expected {
				t.Errorf("FirstNonBlank(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContainsSpace(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"build", false},
		{"a b", true},
		{"tab\there", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := ContainsSpace(tt.input); got != tt.expected {
			t.Errorf("ContainsSpace(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "hello", 10, "...", "hello"},
		{"exact", "hello", 5, "...", "hello"},
		{"cut", "hello world", 8, "...", "hello..."},
		{"unicode", "こんにちは世界", 4, "…", "こんに…"},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestToEnvName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"target", "TARGET"},
		{"dry-run", "DRY_RUN"},
		{"a.b", "A_B"},
		{"Mixed9", "MIXED9"},
		{"ümlaut", "_MLAUT"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToEnvName(tt.input); got != tt.expected {
			t.Errorf("ToEnvName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

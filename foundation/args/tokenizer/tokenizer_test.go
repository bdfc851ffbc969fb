// File: tokenizer_test.go
// Title: Command Line Tokenizer Tests
// Description: Table tests for quoting, escaping and recovery from
//              unterminated quotes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial test suite

package tokenizer

import (
	"testing"
)

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"only spaces", "   ", nil},
		{"plain words", "build target", []string{"build", "target"}},
		{"runs of spaces", "  a   b  ", []string{"a", "b"}},
		{"double quoted region", `a "b c" d`, []string{"a", "b c", "d"}},
		{"single quoted region", `'x y' z`, []string{"x y", "z"}},
		{"escaped quotes are literal", `a \"b\" c`, []string{"a", `"b"`, "c"}},
		{"quote inside a word", `it's fine`, []string{"it's", "fine"}},
		{"other quote inside region", `"it's here"`, []string{"it's here"}},
		{"escaped quote inside region", `"a\" b"`, []string{`a" b`}},
		{"quoted empty region", `a "" b`, []string{"a", "", "b"}},
		{"quoted empty at end", `a ''`, []string{"a", ""}},
		{"escaped space joins", `a\ b c`, []string{"a b", "c"}},
		{"escaped backslash before space splits", `a\\ b`, []string{`a\`, "b"}},
		{"trailing backslash kept", `a\`, []string{`a\`}},
		{"unterminated quote", `a "b c`, []string{"a", `"b`, "c"}},
		{"unterminated after a closed region", `"a" "b`, []string{"a", `"b`}},
		{"close needs a following space", `"b c"d`, []string{`"b`, `c"d`}},
		{"two unterminated quotes", `"a 'b`, []string{`"a`, `'b`}},
		{"unicode", `grüße "schöne welt"`, []string{"grüße", "schöne welt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_QuotedTokenKeepsEmbeddedSpace(t *testing.T) {
	got := Tokenize(`a "b c" d`)
	if len(got) != 3 || got[1] != "b c" {
		t.Fatalf("Tokenize() = %q, want one token with an embedded space", got)
	}
}

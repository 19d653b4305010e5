package ast_test

import (
	"testing"

	"github.com/facebook/libfbjs/pkg/ast"
)

func TestIsIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"a", true},
		{"validName", true},
		{"_private", true},
		{"$jquery", true},
		{"a1", true},
		{"A$_0", true},
		{"", false},
		{"1a", false},
		{"123abc", false},
		{"has-dash", false},
		{"has space", false},
		{"for", false},
		{"in", false},
		{"instanceof", false},
		{"class", false},
		{"true", false},
		{"false", false},
		{"null", false},
		{"forEach", true},
		{"indexer", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ast.IsIdentifier(tt.name); got != tt.want {
				t.Errorf("IsIdentifier(%q): got %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsReservedWord(t *testing.T) {
	t.Parallel()

	reserved := []string{"break", "delete", "typeof", "enum", "super", "null", "true"}
	for _, word := range reserved {
		if !ast.IsReservedWord(word) {
			t.Errorf("%q should be reserved", word)
		}
	}

	free := []string{"undefined", "eval", "arguments", "let", "async"}
	for _, word := range free {
		if ast.IsReservedWord(word) {
			t.Errorf("%q should not be reserved", word)
		}
	}
}

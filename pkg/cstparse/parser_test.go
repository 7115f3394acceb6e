package cstparse

import (
	"testing"

	"github.com/odvcencio/mergecraft/pkg/types"
)

func TestParseGo_RoundTripsSource(t *testing.T) {
	src := []byte("package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n")

	root, err := Parse(src, types.LangGo, types.NewIDGen())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := root.ToSource(); got != string(src) {
		t.Errorf("ToSource() = %q, want %q", got, string(src))
	}
}

func TestParse_UnsupportedLanguage(t *testing.T) {
	_, err := Parse([]byte("x"), types.LangUnknown, types.NewIDGen())
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	var langErr *LanguageError
	if _, ok := err.(*LanguageError); !ok {
		t.Errorf("expected *LanguageError, got %T (%v)", err, langErr)
	}
}

func TestParseGo_AssignsUniqueIDs(t *testing.T) {
	src := []byte("package main\n\nvar x = 1\nvar y = 2\n")
	root, err := Parse(src, types.LangGo, types.NewIDGen())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	seen := map[types.NodeID]bool{}
	var walk func(n *types.CstNode)
	walk = func(n *types.CstNode) {
		if n == nil {
			return
		}
		if seen[n.ID] {
			t.Fatalf("duplicate node id %d", n.ID)
		}
		seen[n.ID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	if len(seen) < 2 {
		t.Fatalf("expected multiple nodes, got %d", len(seen))
	}
}

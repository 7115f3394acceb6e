package types

import "testing"

func TestToSourceRoundTrip(t *testing.T) {
	gen := NewIDGen()
	leaf1 := NewLeaf(gen.Next(), "identifier", "foo")
	leaf2 := NewLeaf(gen.Next(), "punctuation", "()")
	fn := NewConstructed(gen.Next(), "call_expression", []*CstNode{leaf1, leaf2})

	if got := fn.ToSource(); got != "foo()" {
		t.Errorf("ToSource() = %q, want %q", got, "foo()")
	}
}

func TestStructurallyEqualIgnoresIDs(t *testing.T) {
	gen := NewIDGen()
	a := NewList(gen.Next(), "statement_list", Ordered, []*CstNode{
		NewLeaf(gen.Next(), "identifier", "x"),
		NewLeaf(gen.Next(), "identifier", "y"),
	})

	clone := CloneWithFreshIDs(a, gen)
	if clone.ID == a.ID {
		t.Fatalf("expected fresh id, got same id %d", clone.ID)
	}
	if !StructurallyEqual(a, clone) {
		t.Errorf("clone with fresh ids should still be structurally equal")
	}
}

func TestStructurallyEqualDetectsDifference(t *testing.T) {
	gen := NewIDGen()
	a := NewLeaf(gen.Next(), "identifier", "x")
	b := NewLeaf(gen.Next(), "identifier", "y")
	if StructurallyEqual(a, b) {
		t.Errorf("expected leaves with different values to be unequal")
	}
}

func TestLeafCountAndValues(t *testing.T) {
	gen := NewIDGen()
	tree := NewConstructed(gen.Next(), "binary_expression", []*CstNode{
		NewLeaf(gen.Next(), "identifier", "a"),
		NewLeaf(gen.Next(), "operator", "+"),
		NewLeaf(gen.Next(), "identifier", "b"),
	})
	if got := tree.LeafCount(); got != 3 {
		t.Errorf("LeafCount() = %d, want 3", got)
	}
	values := tree.LeafValues()
	want := []string{"a", "+", "b"}
	if len(values) != len(want) {
		t.Fatalf("LeafValues() = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("LeafValues()[%d] = %q, want %q", i, values[i], want[i])
		}
	}
}

func TestIDGenReset(t *testing.T) {
	gen := NewIDGen()
	first := gen.Next()
	gen.Next()
	gen.Reset()
	if got := gen.Next(); got != first {
		t.Errorf("after Reset, Next() = %d, want %d", got, first)
	}
}

func TestLanguageFromExtension(t *testing.T) {
	cases := map[string]Language{
		"rs":   LangRust,
		".rs":  LangRust,
		"js":   LangJavaScript,
		"mjs":  LangJavaScript,
		"ts":   LangTypeScript,
		"tsx":  LangTypeScript,
		"py":   LangPython,
		"java": LangJava,
		"go":   LangGo,
		"c":    LangC,
		"h":    LangC,
		"cpp":  LangCpp,
		"hpp":  LangCpp,
		"rb":   LangUnknown,
	}
	for ext, want := range cases {
		if got := LanguageFromExtension(ext); got != want {
			t.Errorf("LanguageFromExtension(%q) = %v, want %v", ext, got, want)
		}
	}
}

func TestConfidenceOrdering(t *testing.T) {
	if !(Low < Medium && Medium < High) {
		t.Fatalf("expected Low < Medium < High")
	}
	if !High.AtLeast(Medium) {
		t.Errorf("High should be at least Medium")
	}
	if Low.AtLeast(Medium) {
		t.Errorf("Low should not be at least Medium")
	}
}

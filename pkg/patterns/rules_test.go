package patterns

import (
	"testing"

	"github.com/odvcencio/mergecraft/pkg/types"
)

func scenario(base, left, right string) types.MergeScenario[string] {
	return types.MergeScenario[string]{Base: base, Left: left, Right: right}
}

func TestWhitespaceOnly(t *testing.T) {
	out, ok := whitespaceOnly.resolve(scenario("x", "a  b\n", "a\tb\n"))
	if !ok {
		t.Fatal("expected whitespace-only to fire")
	}
	if out != "a  b\n" {
		t.Errorf("got %q", out)
	}
}

func TestIdenticalChange(t *testing.T) {
	out, ok := identicalChange.resolve(scenario("x", "same\n", "same\n"))
	if !ok || out != "same\n" {
		t.Fatalf("got %q, %v", out, ok)
	}
}

func TestBothAddLines(t *testing.T) {
	out, ok := bothAddLines.resolve(scenario("", "left-line\n", "right-line\n"))
	if !ok {
		t.Fatal("expected both-add-lines to fire")
	}
	if out != "left-line\nright-line\n" {
		t.Errorf("got %q", out)
	}
}

func TestOneEmpty(t *testing.T) {
	out, ok := oneEmpty.resolve(scenario("x", "", "kept\n"))
	if !ok || out != "kept\n" {
		t.Fatalf("got %q, %v", out, ok)
	}
}

func TestPrefixSuffix(t *testing.T) {
	out, ok := prefixSuffix.resolve(scenario("foo", "foo bar\n", "foo bar baz\n"))
	if !ok || out != "foo bar baz\n" {
		t.Fatalf("got %q, %v", out, ok)
	}
}

func TestImportUnion(t *testing.T) {
	base := "import \"fmt\"\n"
	left := "import \"fmt\"\nimport \"os\"\n"
	right := "import \"fmt\"\nimport \"strings\"\n"

	out, ok := importUnion.resolve(scenario(base, left, right))
	if !ok {
		t.Fatal("expected import-union to fire")
	}
	for _, want := range []string{`import "fmt"`, `import "os"`, `import "strings"`} {
		if !containsLine(out, want) {
			t.Errorf("merged imports missing %q: %q", want, out)
		}
	}
}

func TestAdjacentEdit(t *testing.T) {
	base := "a\nb\nc\n"
	left := "A\nb\nc\n"
	right := "a\nb\nC\n"

	out, ok := adjacentEdit.resolve(scenario(base, left, right))
	if !ok {
		t.Fatal("expected adjacent-edit to fire")
	}
	want := "A\nb\nC\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestAdjacentEdit_TrueConflictDoesNotFire(t *testing.T) {
	base := "a\nb\nc\n"
	left := "A\nb\nc\n"
	right := "B\nb\nc\n"

	_, ok := adjacentEdit.resolve(scenario(base, left, right))
	if ok {
		t.Fatal("expected adjacent-edit not to fire on a genuine same-line conflict")
	}
}

func TestTryResolve_FirstMatchWins(t *testing.T) {
	cand, ok := TryResolve(scenario("same\n", "same\n", "same\n"))
	if !ok {
		t.Fatal("expected a rule to fire")
	}
	if cand.Strategy != types.StrategyPatternRule {
		t.Errorf("Strategy = %v, want PatternRule", cand.Strategy)
	}
}

func containsLine(haystack, needle string) bool {
	for _, line := range splitLines(haystack) {
		if line == needle {
			return true
		}
	}
	return false
}

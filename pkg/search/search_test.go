package search

import (
	"testing"

	"github.com/odvcencio/mergecraft/pkg/types"
)

func TestResolve_Deterministic(t *testing.T) {
	s := types.MergeScenario[string]{
		Base:  "a\nb\nc\n",
		Left:  "a\nb-left\nc\n",
		Right: "a\nb-right\nc\n",
	}
	cfg := DefaultConfig()

	first := Resolve(s, cfg)
	second := Resolve(s, cfg)

	if len(first) != len(second) {
		t.Fatalf("non-deterministic candidate count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("candidate %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestResolve_ReturnsSearchBasedLow(t *testing.T) {
	s := types.MergeScenario[string]{
		Base:  "x\n",
		Left:  "x\nleft\n",
		Right: "x\nright\n",
	}
	candidates := Resolve(s, DefaultConfig())

	if len(candidates) == 0 {
		t.Fatal("expected at least one candidate")
	}
	for _, c := range candidates {
		if c.Strategy != types.StrategySearchBased {
			t.Errorf("Strategy = %v, want SearchBased", c.Strategy)
		}
		if c.Confidence != types.Low {
			t.Errorf("Confidence = %v, want Low", c.Confidence)
		}
	}
}

func TestResolve_RespectsMaxCandidates(t *testing.T) {
	s := types.MergeScenario[string]{
		Base:  "",
		Left:  "alpha\nbeta\n",
		Right: "gamma\ndelta\n",
	}
	cfg := Config{MaxGenerations: 3, MaxCandidates: 2}

	candidates := Resolve(s, cfg)
	if len(candidates) > 2 {
		t.Errorf("got %d candidates, want at most 2", len(candidates))
	}
}

func TestResolve_CandidatesAreUnique(t *testing.T) {
	s := types.MergeScenario[string]{
		Base:  "one\n",
		Left:  "one\ntwo\n",
		Right: "one\nthree\n",
	}
	candidates := Resolve(s, DefaultConfig())

	seen := map[string]bool{}
	for _, c := range candidates {
		if seen[c.Content] {
			t.Errorf("duplicate candidate content: %q", c.Content)
		}
		seen[c.Content] = true
	}
}

func TestResolve_OrderedByDescendingFitness(t *testing.T) {
	s := types.MergeScenario[string]{
		Base:  "shared\n",
		Left:  "shared\nleft-only\n",
		Right: "shared\nright-only\n",
	}
	candidates := Resolve(s, DefaultConfig())
	if len(candidates) < 2 {
		t.Skip("not enough candidates to check ordering")
	}
	for i := 1; i < len(candidates); i++ {
		fPrev := fitness(candidates[i-1].Content, s.Base, s.Left, s.Right)
		fCurr := fitness(candidates[i].Content, s.Base, s.Left, s.Right)
		if fCurr > fPrev {
			t.Errorf("candidate %d fitness %f exceeds candidate %d fitness %f, expected descending order", i, fCurr, i-1, fPrev)
		}
	}
}

func TestCrossover_SplitsAtMidpoint(t *testing.T) {
	got := crossover("a\nb\nc\nd\n", "w\nx\ny\nz\n")
	want := "a\nb\ny\nz\n"
	if got != want {
		t.Errorf("crossover = %q, want %q", got, want)
	}
}

func TestMutate_SwapsMiddleLine(t *testing.T) {
	got := mutate("a\nb\nc\n", "x\ny\nz\n")
	want := "a\ny\nc\n"
	if got != want {
		t.Errorf("mutate = %q, want %q", got, want)
	}
}

func TestMutate_EmptyInputsReturnUnchanged(t *testing.T) {
	if got := mutate("", "x\n"); got != "" {
		t.Errorf("mutate with empty a = %q, want empty", got)
	}
}

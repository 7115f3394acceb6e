package diff3

import (
	"strings"
	"testing"
)

func TestMyersDiff_Basic(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}

	ops := MyersDiff(a, b)

	wantTypes := []DiffType{Equal, Delete, Insert, Equal}
	wantLines := []string{"a", "b", "x", "c"}

	if len(ops) != len(wantTypes) {
		t.Fatalf("got %d ops, want %d: %v", len(ops), len(wantTypes), ops)
	}
	for i, op := range ops {
		if op.Type != wantTypes[i] || op.Line != wantLines[i] {
			t.Errorf("op[%d] = {%v, %q}, want {%v, %q}", i, op.Type, op.Line, wantTypes[i], wantLines[i])
		}
	}
}

func TestMyersDiff_EmptyToNonEmpty(t *testing.T) {
	ops := MyersDiff(nil, []string{"a", "b"})
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	for _, op := range ops {
		if op.Type != Insert {
			t.Errorf("expected all Insert ops, got %v", op)
		}
	}
}

func TestMyersDiff_NonEmptyToEmpty(t *testing.T) {
	ops := MyersDiff([]string{"a", "b"}, nil)
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	for _, op := range ops {
		if op.Type != Delete {
			t.Errorf("expected all Delete ops, got %v", op)
		}
	}
}

func TestMyersDiff_Identical(t *testing.T) {
	a := []string{"a", "b", "c"}
	for _, op := range MyersDiff(a, a) {
		if op.Type != Equal {
			t.Errorf("expected all Equal ops, got %v", op)
		}
	}
}

// Scenario 1: no-op. Left and right both equal base.
func TestMerge_NoOp(t *testing.T) {
	base := "line1\nline2\nline3\n"
	r := Merge(base, base, base)
	if r.IsConflict() {
		t.Fatal("expected resolved merge for identical inputs")
	}
	if r.Text != base {
		t.Errorf("Text = %q, want %q", r.Text, base)
	}
}

// Scenario 2: left-only line edit.
func TestMerge_LeftOnly(t *testing.T) {
	base := "aaa\nbbb\nccc\n"
	left := "aaa\nBBB\nccc\n"
	right := base

	r := Merge(base, left, right)
	if r.IsConflict() {
		t.Fatal("expected resolved merge")
	}
	if r.Text != left {
		t.Errorf("Text = %q, want %q", r.Text, left)
	}
}

func TestMerge_RightOnly(t *testing.T) {
	base := "aaa\nbbb\nccc\n"
	left := base
	right := "aaa\nBBB\nccc\n"

	r := Merge(base, left, right)
	if r.IsConflict() {
		t.Fatal("expected resolved merge")
	}
	if r.Text != right {
		t.Errorf("Text = %q, want %q", r.Text, right)
	}
}

// Scenario 3: identical change on both sides resolves clean.
func TestMerge_IdenticalChange(t *testing.T) {
	base := "aaa\nbbb\nccc\n"
	both := "aaa\nSAME\nccc\n"

	r := Merge(base, both, both)
	if r.IsConflict() {
		t.Fatal("expected resolved merge when both sides make the same change")
	}
	if r.Text != both {
		t.Errorf("Text = %q, want %q", r.Text, both)
	}
}

func TestMerge_Conflict(t *testing.T) {
	base := "aaa\nbbb\nccc\n"
	left := "aaa\nLEFT\nccc\n"
	right := "aaa\nRIGHT\nccc\n"

	r := Merge(base, left, right)
	if !r.IsConflict() {
		t.Fatal("expected conflict")
	}
	if !strings.Contains(r.Left, "LEFT") {
		t.Errorf("conflict Left region missing LEFT: %q", r.Left)
	}
	if !strings.Contains(r.Right, "RIGHT") {
		t.Errorf("conflict Right region missing RIGHT: %q", r.Right)
	}
	if !strings.Contains(r.Base, "bbb") {
		t.Errorf("conflict Base region missing bbb: %q", r.Base)
	}

	hunks := Diff3(splitLines(base), splitLines(left), splitLines(right))
	conflicts := ExtractConflicts(hunks)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict scenario, got %d", len(conflicts))
	}
}

func TestMerge_NonOverlappingInserts(t *testing.T) {
	base := "aaa\nbbb\nccc\nddd\neee\n"
	left := "aaa\nLEFT-INSERT\nbbb\nccc\nddd\neee\n"
	right := "aaa\nbbb\nccc\nddd\nRIGHT-INSERT\neee\n"

	r := Merge(base, left, right)
	if r.IsConflict() {
		t.Fatalf("expected resolved merge, got conflict:\nbase=%q\nleft=%q\nright=%q", r.Base, r.Left, r.Right)
	}
	want := "aaa\nLEFT-INSERT\nbbb\nccc\nddd\nRIGHT-INSERT\neee\n"
	if r.Text != want {
		t.Errorf("Text =\n%s\nwant =\n%s", r.Text, want)
	}
}

// Design Note (i): a side deleting a region while the other modifies it
// must produce a conflict, not a silent accept.
func TestMerge_DeleteVsModify(t *testing.T) {
	base := "aaa\nbbb\nccc\n"
	left := "aaa\nccc\n"
	right := "aaa\nBBB-MOD\nccc\n"

	r := Merge(base, left, right)
	if !r.IsConflict() {
		t.Fatal("expected conflict when one side deletes and the other modifies")
	}
}

func TestMerge_EmptyBase(t *testing.T) {
	r := Merge("", "hello\n", "world\n")
	if !r.IsConflict() {
		t.Fatal("expected conflict when both sides add to an empty base")
	}
}

func TestMerge_EmptyLeft(t *testing.T) {
	base := "aaa\nbbb\n"
	r := Merge(base, "", base)
	if r.IsConflict() {
		t.Fatal("expected resolved merge")
	}
	if r.Text != "" {
		t.Errorf("Text = %q, want empty", r.Text)
	}
}

func TestMerge_AllEmpty(t *testing.T) {
	r := Merge("", "", "")
	if r.IsConflict() {
		t.Fatal("expected resolved merge for all-empty inputs")
	}
	if r.Text != "" {
		t.Errorf("Text = %q, want empty", r.Text)
	}
}

func TestDiff3_ConflictsAroundStableLine(t *testing.T) {
	base := "a\nb\nc\nd\n"
	left := "A\nb\nC\nd\n"
	right := "X\nb\nY\nd\n"

	hunks := Diff3(splitLines(base), splitLines(left), splitLines(right))

	conflictCount := 0
	for _, h := range hunks {
		if h.Kind == Conflict {
			conflictCount++
		}
	}
	if conflictCount == 0 {
		t.Fatal("expected at least one conflict hunk")
	}
}

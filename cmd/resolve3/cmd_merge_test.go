package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMergeCmdFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func TestMergeCmdResolvesIdenticalChangeCleanly(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.txt")
	left := filepath.Join(dir, "left.txt")
	right := filepath.Join(dir, "right.txt")
	writeMergeCmdFile(t, base, "x=1\n")
	writeMergeCmdFile(t, left, "x=2\n")
	writeMergeCmdFile(t, right, "x=2\n")

	var out bytes.Buffer
	cmd := newMergeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{base, left, right})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v\noutput:\n%s", err, out.String())
	}
	if out.String() != "x=2\n" {
		t.Fatalf("merged output = %q, want %q", out.String(), "x=2\n")
	}
}

func TestMergeCmdReportsUnresolvedConflict(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.txt")
	left := filepath.Join(dir, "left.txt")
	right := filepath.Join(dir, "right.txt")
	writeMergeCmdFile(t, base, "a\n")
	writeMergeCmdFile(t, left, "b\n")
	writeMergeCmdFile(t, right, "c\n")

	var out bytes.Buffer
	cmd := newMergeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--threshold", "high", base, left, right})
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("Execute: expected an unresolved-conflict error, got nil\noutput:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "conflict") {
		t.Fatalf("output = %q, want it to mention the unresolved conflict", out.String())
	}
}

func TestMergeCmdWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.txt")
	left := filepath.Join(dir, "left.txt")
	right := filepath.Join(dir, "right.txt")
	writeMergeCmdFile(t, base, "a\nb\nc\n")
	writeMergeCmdFile(t, left, "A\nb\nc\n")
	writeMergeCmdFile(t, right, "a\nb\nc\n")

	outPath := filepath.Join(dir, "merged.txt")
	var out bytes.Buffer
	cmd := newMergeCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--out", outPath, base, left, right})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v\noutput:\n%s", err, out.String())
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", outPath, err)
	}
	if string(got) != "A\nb\nc\n" {
		t.Fatalf("merged file = %q, want %q", string(got), "A\nb\nc\n")
	}
}

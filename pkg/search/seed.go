// Package search is the resolution pipeline's last resort: a fully
// deterministic evolutionary search over candidate texts for a conflict
// that no pattern rule, structural merge, or version-space ranking could
// settle. No randomness or wall-clock time ever enters the algorithm —
// every run over the same scenario produces the same candidates in the
// same order.
package search

import "strings"

// seed produces the deterministic starting population for a conflict
// scenario, one candidate (or run of candidates) per named construction
// strategy, in the fixed order spec.md lists them:
//  1. left then right
//  2. right then left
//  3. left alone
//  4. right alone
//  5. index-wise interleaving of left and right, skipping equal pairs
//  6. every split point k: left[:k]+right[k:], and symmetrically
//  7. line selections: all-left, all-right, index-parity alternating
func seed(left, right string) []string {
	leftLines := splitLines(left)
	rightLines := splitLines(right)

	out := []string{
		concatLines(leftLines, rightLines),
		concatLines(rightLines, leftLines),
		concatLines(leftLines, nil),
		concatLines(rightLines, nil),
		interleave(leftLines, rightLines),
	}
	out = append(out, chunkSplits(leftLines, rightLines)...)
	out = append(out,
		concatLines(leftLines, nil),
		concatLines(rightLines, nil),
		indexParityAlternate(leftLines, rightLines),
	)
	return out
}

func concatLines(a, b []string) string {
	return joinLines(append(append([]string(nil), a...), b...))
}

// interleave walks both sides index by index. A pair that agrees at index
// i contributes its line once rather than twice, so two sides that only
// disagree on a handful of lines don't inflate the candidate with
// redundant repeats of everything they share.
func interleave(a, b []string) string {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var out []string
	for i := 0; i < n; i++ {
		hasA := i < len(a)
		hasB := i < len(b)
		if hasA && hasB && a[i] == b[i] {
			out = append(out, a[i])
			continue
		}
		if hasA {
			out = append(out, a[i])
		}
		if hasB {
			out = append(out, b[i])
		}
	}
	return joinLines(out)
}

// chunkSplits produces, for every split point k from 0 to the longer
// side's length, the candidate a[:k]+b[k:] and its symmetric
// counterpart b[:k]+a[k:].
func chunkSplits(a, b []string) []string {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	out := make([]string, 0, 2*(maxLen+1))
	for k := 0; k <= maxLen; k++ {
		out = append(out, chunkAt(a, b, k), chunkAt(b, a, k))
	}
	return out
}

// chunkAt splits a at index k (clamped to len(a)) and b at index k
// (clamped to len(b)), returning a's head joined to b's tail.
func chunkAt(a, b []string, k int) string {
	ak := k
	if ak > len(a) {
		ak = len(a)
	}
	bk := k
	if bk > len(b) {
		bk = len(b)
	}
	out := append(append([]string(nil), a[:ak]...), b[bk:]...)
	return joinLines(out)
}

// indexParityAlternate picks a line for each index i, alternating which
// side goes first: a[i] on even i, b[i] on odd i, falling back to
// whichever side still has a line at i once the other runs out.
func indexParityAlternate(a, b []string) string {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var out []string
	for i := 0; i < n; i++ {
		primary, secondary := a, b
		if i%2 != 0 {
			primary, secondary = b, a
		}
		switch {
		case i < len(primary):
			out = append(out, primary[i])
		case i < len(secondary):
			out = append(out, secondary[i])
		}
	}
	return joinLines(out)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

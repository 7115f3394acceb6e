// Package vsa implements a Version Space Algebra over text conflict
// candidates: a compact representation of a set of candidate resolutions,
// built without ever materializing every candidate up front, together with
// deterministic enumeration and a similarity-based ranking.
package vsa

import "github.com/odvcencio/mergecraft/pkg/types"

// VersionSpace is a compact description of a set of candidate strings.
// Concrete variants are Atom, Join, Union and ListJoin.
type VersionSpace interface {
	isVersionSpace()
}

// Atom is a single fixed candidate.
type Atom struct {
	Text string
}

func (Atom) isVersionSpace() {}

// Join concatenates the candidate text of each part, in order. The
// candidate set is the cartesian product of the parts' candidate sets.
type Join struct {
	Parts []VersionSpace
}

func (Join) isVersionSpace() {}

// Union offers alternative sub-spaces; the candidate set is their union,
// in the order the options are listed.
type Union struct {
	Options []VersionSpace
}

func (Union) isVersionSpace() {}

// ListJoin represents two independent insertions whose relative order is
// unresolved: it contributes exactly two candidates, Left-then-Right and
// Right-then-Left.
type ListJoin struct {
	Left, Right VersionSpace
}

func (ListJoin) isVersionSpace() {}

// Build constructs a VersionSpace over a text conflict scenario. It first
// classifies each base line against both sides — kept where neither side
// dropped it, or contributed by only one side as an addition — then joins
// the retained lines to a ListJoin of the two sides' additions, so the
// space captures the ordering ambiguity between what left added and what
// right added rather than just re-concatenating the raw sides. The space
// also always contains each side verbatim, base itself as a fallback, and
// any candidate a pattern rule independently proposes — reusing the
// pattern registry's output as additional atoms rather than re-deriving
// the same heuristics here.
func Build(s types.MergeScenario[string], patternCandidates []string) VersionSpace {
	retained, leftAdded, rightAdded := classifyBaseItems(splitLines(s.Base), splitLines(s.Left), splitLines(s.Right))

	options := []VersionSpace{
		Atom{Text: s.Left},
		Atom{Text: s.Right},
		Atom{Text: s.Base},
		Join{Parts: []VersionSpace{
			Atom{Text: joinLines(retained)},
			ListJoin{Left: Atom{Text: joinLines(leftAdded)}, Right: Atom{Text: joinLines(rightAdded)}},
		}},
	}
	for _, c := range patternCandidates {
		options = append(options, Atom{Text: c})
	}
	return Union{Options: options}
}

// classifyBaseItems splits base's lines into those retained (present on
// both sides) and each side's additions (lines it carries that base never
// had), preserving each source's own line order.
func classifyBaseItems(base, left, right []string) (retained, leftAdded, rightAdded []string) {
	baseSet := toLineSet(base)
	leftSet := toLineSet(left)
	rightSet := toLineSet(right)

	for _, b := range base {
		if leftSet[b] && rightSet[b] {
			retained = append(retained, b)
		}
	}
	for _, l := range left {
		if !baseSet[l] {
			leftAdded = append(leftAdded, l)
		}
	}
	for _, r := range right {
		if !baseSet[r] {
			rightAdded = append(rightAdded, r)
		}
	}
	return retained, leftAdded, rightAdded
}

func toLineSet(lines []string) map[string]bool {
	m := make(map[string]bool, len(lines))
	for _, l := range lines {
		m[l] = true
	}
	return m
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}

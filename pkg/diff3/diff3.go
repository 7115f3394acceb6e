// Package diff3 computes a line-level three-way diff, producing a hunk
// sequence classified as Stable, LeftChanged, RightChanged or Conflict, and
// a flattened MergeResult.
//
// diff3 itself never emits conflict-marker text; it returns raw base/left/
// right region content for each Conflict hunk. Marker formatting is the
// Resolver's job.
package diff3

import (
	"strings"

	"github.com/odvcencio/mergecraft/pkg/types"
)

// HunkKind classifies a Hunk produced by a three-way diff.
type HunkKind int

const (
	Stable HunkKind = iota
	LeftChanged
	RightChanged
	Conflict
)

func (k HunkKind) String() string {
	switch k {
	case Stable:
		return "Stable"
	case LeftChanged:
		return "LeftChanged"
	case RightChanged:
		return "RightChanged"
	case Conflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}

// Hunk is a contiguous region of the merge output. For Stable, LeftChanged
// and RightChanged, Lines holds the contributing content. For Conflict,
// Base, Left and Right hold the three unresolved regions instead.
type Hunk struct {
	Kind  HunkKind
	Lines []string
	Base  []string
	Left  []string
	Right []string
}

// chunk is a contiguous region relative to the base, carrying the
// replacement lines one side produced for it.
type chunk struct {
	baseStart, baseEnd int
	lines              []string
	changed            bool
}

// buildChunks converts a two-way diff (base -> side) into chunks anchored
// to base-line ranges: a run of Equal ops becomes one unchanged chunk per
// line, and a run of Delete/Insert ops between two Equal ops becomes one
// changed chunk spanning the deleted base range.
func buildChunks(base, side []string) []chunk {
	ops := MyersDiff(base, side)

	var chunks []chunk
	baseIdx := 0
	i := 0
	for i < len(ops) {
		op := ops[i]
		if op.Type == Equal {
			chunks = append(chunks, chunk{baseStart: baseIdx, baseEnd: baseIdx + 1, lines: []string{op.Line}})
			baseIdx++
			i++
			continue
		}

		chunkStart := baseIdx
		var sideLines []string
		for i < len(ops) && ops[i].Type != Equal {
			if ops[i].Type == Delete {
				baseIdx++
			} else {
				sideLines = append(sideLines, ops[i].Line)
			}
			i++
		}
		chunks = append(chunks, chunk{baseStart: chunkStart, baseEnd: baseIdx, lines: sideLines, changed: true})
	}
	return chunks
}

// Diff3 computes the hunk sequence for a three-way merge of base, left and
// right. Hunks of the same kind that the walk produces back to back are
// coalesced into one.
func Diff3(base, left, right []string) []Hunk {
	leftChunks := buildChunks(base, left)
	rightChunks := buildChunks(base, right)
	return coalesce(walkChunks(base, leftChunks, rightChunks))
}

// walkChunks walks leftChunks and rightChunks in lockstep, aligned by
// base-line position, deciding a Hunk for each base region covered.
func walkChunks(base []string, leftChunks, rightChunks []chunk) []Hunk {
	var hunks []Hunk

	li, ri := 0, 0
	for li < len(leftChunks) || ri < len(rightChunks) {
		var lc, rc *chunk
		if li < len(leftChunks) {
			lc = &leftChunks[li]
		}
		if ri < len(rightChunks) {
			rc = &rightChunks[ri]
		}

		switch {
		case lc == nil:
			hunks = append(hunks, oneSidedHunk(rc, false))
			ri++
		case rc == nil:
			hunks = append(hunks, oneSidedHunk(lc, true))
			li++
		case lc.baseStart == rc.baseStart && lc.baseEnd == rc.baseEnd:
			hunks = append(hunks, alignedHunk(base, lc, rc))
			li++
			ri++
		default:
			// Misaligned: one side's change spans a different base range
			// than the other's. Gather every chunk overlapping the union
			// region on both sides before deciding.
			regionEnd := maxInt(lc.baseEnd, rc.baseEnd)

			var leftRegion []chunk
			for li < len(leftChunks) && leftChunks[li].baseStart < regionEnd {
				leftRegion = append(leftRegion, leftChunks[li])
				if leftChunks[li].baseEnd > regionEnd {
					regionEnd = leftChunks[li].baseEnd
				}
				li++
			}
			var rightRegion []chunk
			for ri < len(rightChunks) && rightChunks[ri].baseStart < regionEnd {
				rightRegion = append(rightRegion, rightChunks[ri])
				if rightChunks[ri].baseEnd > regionEnd {
					regionEnd = rightChunks[ri].baseEnd
				}
				ri++
			}

			regionStart := minInt(lc.baseStart, rc.baseStart)
			baseRegion := base[regionStart:regionEnd]
			leftOut := assembleRegion(leftRegion)
			rightOut := assembleRegion(rightRegion)
			hunks = append(hunks, decideHunk(baseRegion, leftOut, rightOut, anyChanged(leftRegion), anyChanged(rightRegion)))
		}
	}

	return hunks
}

// oneSidedHunk builds a Hunk for a chunk whose opposite side's chunk
// stream is already exhausted.
func oneSidedHunk(c *chunk, isLeft bool) Hunk {
	if !c.changed {
		return Hunk{Kind: Stable, Lines: c.lines}
	}
	if isLeft {
		return Hunk{Kind: LeftChanged, Lines: c.lines}
	}
	return Hunk{Kind: RightChanged, Lines: c.lines}
}

// alignedHunk decides the hunk kind for chunks covering the identical base
// range on both sides.
func alignedHunk(base []string, lc, rc *chunk) Hunk {
	baseRegion := base[lc.baseStart:lc.baseEnd]
	return decideHunk(baseRegion, lc.lines, rc.lines, lc.changed, rc.changed)
}

// decideHunk applies the shared priority rules to a base region and the
// lines each side contributed to it:
//  1. neither side changed it -> Stable (base content)
//  2. exactly one side changed it -> LeftChanged/RightChanged
//  3. both changed it identically -> Stable (identical change)
//  4. both changed it and disagree -> Conflict
//
// Rule 4 also covers the delete-vs-modify case: a side that deletes the
// region contributes an empty line slice, which never equals a non-empty
// slice from the other side, so it falls straight into Conflict rather
// than being silently accepted.
func decideHunk(baseRegion, leftOut, rightOut []string, leftChanged, rightChanged bool) Hunk {
	switch {
	case !leftChanged && !rightChanged:
		return Hunk{Kind: Stable, Lines: baseRegion}
	case leftChanged && !rightChanged:
		return Hunk{Kind: LeftChanged, Lines: leftOut}
	case !leftChanged && rightChanged:
		return Hunk{Kind: RightChanged, Lines: rightOut}
	default:
		if linesEqual(leftOut, rightOut) {
			return Hunk{Kind: Stable, Lines: leftOut}
		}
		return Hunk{
			Kind:  Conflict,
			Base:  append([]string(nil), baseRegion...),
			Left:  leftOut,
			Right: rightOut,
		}
	}
}

// coalesce merges consecutive hunks of the same kind into one.
func coalesce(hunks []Hunk) []Hunk {
	if len(hunks) == 0 {
		return hunks
	}
	out := []Hunk{hunks[0]}
	for _, h := range hunks[1:] {
		last := &out[len(out)-1]
		if last.Kind != h.Kind {
			out = append(out, h)
			continue
		}
		if h.Kind == Conflict {
			last.Base = append(last.Base, h.Base...)
			last.Left = append(last.Left, h.Left...)
			last.Right = append(last.Right, h.Right...)
			continue
		}
		last.Lines = append(last.Lines, h.Lines...)
	}
	return out
}

// Merge performs a three-way merge of base, left and right text, returning
// a types.MergeResult. If any hunk is a Conflict, the result's conflict
// region is the concatenation of every conflicting hunk's base/left/right
// text, in document order; per-hunk scenarios are recovered with
// ExtractConflicts.
func Merge(base, left, right string) types.MergeResult {
	hunks := Diff3(splitLines(base), splitLines(left), splitLines(right))
	return flatten(hunks)
}

func flatten(hunks []Hunk) types.MergeResult {
	hasConflict := false
	var merged, conflictBase, conflictLeft, conflictRight strings.Builder

	for _, h := range hunks {
		if h.Kind == Conflict {
			hasConflict = true
			writeLines(&conflictBase, h.Base)
			writeLines(&conflictLeft, h.Left)
			writeLines(&conflictRight, h.Right)
			continue
		}
		writeLines(&merged, h.Lines)
	}

	if !hasConflict {
		return types.Resolved(merged.String())
	}
	return types.ConflictResult(types.MergeScenario[string]{
		Base:  conflictBase.String(),
		Left:  conflictLeft.String(),
		Right: conflictRight.String(),
	})
}

// ExtractConflicts returns the per-hunk (base, left, right) scenario for
// every Conflict hunk in hunks, in document order. Callers that got a
// Conflict back from Merge use this to recover the individual conflict
// regions to drive the resolution strategies.
func ExtractConflicts(hunks []Hunk) []types.MergeScenario[string] {
	var out []types.MergeScenario[string]
	for _, h := range hunks {
		if h.Kind != Conflict {
			continue
		}
		out = append(out, types.MergeScenario[string]{
			Base:  joinLines(h.Base),
			Left:  joinLines(h.Left),
			Right: joinLines(h.Right),
		})
	}
	return out
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
}

func joinLines(lines []string) string {
	var b strings.Builder
	writeLines(&b, lines)
	return b.String()
}

// splitLines splits s into lines. A trailing newline does not produce an
// extra empty element, matching standard text-file conventions.
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

func linesEqual(a, b []string) bool {
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

func assembleRegion(chunks []chunk) []string {
	var lines []string
	for _, c := range chunks {
		lines = append(lines, c.lines...)
	}
	return lines
}

func anyChanged(chunks []chunk) bool {
	for _, c := range chunks {
		if c.changed {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

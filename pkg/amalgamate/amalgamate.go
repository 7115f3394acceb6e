// Package amalgamate performs three-way structural merge of CST subtrees,
// generalizing the old flat per-entity disposition switch into a recursive
// per-node decision that can descend into unresolved regions instead of
// giving up at the first disagreement.
package amalgamate

import (
	"github.com/odvcencio/mergecraft/pkg/match"
	"github.com/odvcencio/mergecraft/pkg/types"
)

// Disposition classifies how a single node's three revisions relate.
type Disposition int

const (
	Stable Disposition = iota
	LeftChanged
	RightChanged
	BothSame
	ConflictDisposition
	Added
	Deleted
)

func (d Disposition) String() string {
	switch d {
	case Stable:
		return "Stable"
	case LeftChanged:
		return "LeftChanged"
	case RightChanged:
		return "RightChanged"
	case BothSame:
		return "BothSame"
	case ConflictDisposition:
		return "Conflict"
	case Added:
		return "Added"
	case Deleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

// Result is the outcome of amalgamating one node's three revisions.
type Result struct {
	Node     *types.CstNode // non-nil unless the node was deleted or conflicted
	Deleted  bool
	Conflict *types.MergeScenario[*types.CstNode] // non-nil when unresolved
}

// gen supplies fresh ids for any node amalgamate constructs or clones.
type amalgamator struct {
	gen *types.IDGen
}

// Amalgamate merges base/left/right revisions of the same logical node
// into a single Result. gen assigns ids to newly constructed nodes.
func Amalgamate(base, left, right *types.CstNode, gen *types.IDGen) Result {
	a := &amalgamator{gen: gen}
	return a.node(base, left, right)
}

func (a *amalgamator) node(base, left, right *types.CstNode) Result {
	switch {
	case left == nil && right == nil:
		return Result{Deleted: true}
	case left == nil:
		// Left deleted this node; right may have kept or changed it.
		if types.StructurallyEqual(base, right) {
			return Result{Deleted: true}
		}
		return a.conflict(base, left, right)
	case right == nil:
		if types.StructurallyEqual(base, left) {
			return Result{Deleted: true}
		}
		return a.conflict(base, left, right)
	}

	if base == nil {
		// Node has no base counterpart: both sides independently added it.
		if types.StructurallyEqual(left, right) {
			return Result{Node: types.CloneWithFreshIDs(left, a.gen)}
		}
		return a.conflict(base, left, right)
	}

	leftChanged := !types.StructurallyEqual(base, left)
	rightChanged := !types.StructurallyEqual(base, right)

	switch {
	case !leftChanged && !rightChanged:
		return Result{Node: types.CloneWithFreshIDs(base, a.gen)}
	case leftChanged && !rightChanged:
		return Result{Node: types.CloneWithFreshIDs(left, a.gen)}
	case !leftChanged && rightChanged:
		return Result{Node: types.CloneWithFreshIDs(right, a.gen)}
	}

	// Both changed. Identical changes resolve clean.
	if types.StructurallyEqual(left, right) {
		return Result{Node: types.CloneWithFreshIDs(left, a.gen)}
	}

	// Both changed and disagree. If the node shape still matches on both
	// sides (same Kind and Variant), descend and try to isolate the
	// disagreement to a smaller subtree instead of giving up here.
	if base.Kind == left.Kind && base.Kind == right.Kind &&
		base.Variant == left.Variant && base.Variant == right.Variant &&
		base.Variant != types.VariantLeaf {
		return a.children(base, left, right)
	}

	return a.conflict(base, left, right)
}

func (a *amalgamator) conflict(base, left, right *types.CstNode) Result {
	return Result{Conflict: &types.MergeScenario[*types.CstNode]{Base: base, Left: left, Right: right}}
}

// children amalgamates a non-leaf node by matching base's children against
// left's and against right's, resolving each base child recursively, and
// reassembling the result according to the parent's Ordering.
func (a *amalgamator) children(base, left, right *types.CstNode) Result {
	baseToLeft := match.MatchChildren(base, base.Children, left.Children)
	baseToRight := match.MatchChildren(base, base.Children, right.Children)

	leftOf := make(map[int]int, len(baseToLeft))
	for _, p := range baseToLeft {
		leftOf[p.LeftIdx] = p.RightIdx
	}
	rightOf := make(map[int]int, len(baseToRight))
	for _, p := range baseToRight {
		rightOf[p.LeftIdx] = p.RightIdx
	}

	if base.Variant == types.VariantList && base.Ordering == types.Unordered {
		return a.unorderedChildren(base, left, right, leftOf, rightOf)
	}
	return a.orderedChildren(base, left, right, leftOf, rightOf)
}

// orderedChildren walks base's children in order, resolving each against
// its matched left/right counterpart, and splices in any unmatched
// (newly inserted) children from left then right at the point they
// appeared adjacent to in their own sequence.
func (a *amalgamator) orderedChildren(base, left, right *types.CstNode, leftOf, rightOf map[int]int) Result {
	leftInserts := unmatchedBuckets(leftOf, len(left.Children))
	rightInserts := unmatchedBuckets(rightOf, len(right.Children))

	var out []*types.CstNode
	conflicted := false
	var conflictBase, conflictLeft, conflictRight []*types.CstNode

	emitInserts := func(bucket int) {
		for _, idx := range leftInserts[bucket] {
			out = append(out, types.CloneWithFreshIDs(left.Children[idx], a.gen))
		}
		for _, idx := range rightInserts[bucket] {
			out = append(out, types.CloneWithFreshIDs(right.Children[idx], a.gen))
		}
	}

	emitInserts(-1)
	for i, baseChild := range base.Children {
		var leftChild, rightChild *types.CstNode
		if idx, ok := leftOf[i]; ok {
			leftChild = left.Children[idx]
		}
		if idx, ok := rightOf[i]; ok {
			rightChild = right.Children[idx]
		}

		res := a.node(baseChild, leftChild, rightChild)
		switch {
		case res.Conflict != nil:
			conflicted = true
			conflictBase = append(conflictBase, res.Conflict.Base)
			conflictLeft = append(conflictLeft, res.Conflict.Left)
			conflictRight = append(conflictRight, res.Conflict.Right)
		case !res.Deleted:
			out = append(out, res.Node)
		}
		emitInserts(i)
	}

	if conflicted {
		return Result{Conflict: &types.MergeScenario[*types.CstNode]{
			Base:  types.NewList(a.gen.Next(), base.Kind, base.Ordering, conflictBase),
			Left:  types.NewList(a.gen.Next(), base.Kind, base.Ordering, conflictLeft),
			Right: types.NewList(a.gen.Next(), base.Kind, base.Ordering, conflictRight),
		}}
	}

	merged := &types.CstNode{
		ID:       a.gen.Next(),
		Kind:     base.Kind,
		Variant:  base.Variant,
		Ordering: base.Ordering,
		Children: out,
	}
	return Result{Node: merged}
}

// unorderedChildren treats base's children as a multiset: stable children
// are kept once, and additions from left and right are unioned, with
// identical additions on both sides collapsed to a single copy.
func (a *amalgamator) unorderedChildren(base, left, right *types.CstNode, leftOf, rightOf map[int]int) Result {
	var out []*types.CstNode

	for i, baseChild := range base.Children {
		var leftChild, rightChild *types.CstNode
		if idx, ok := leftOf[i]; ok {
			leftChild = left.Children[idx]
		}
		if idx, ok := rightOf[i]; ok {
			rightChild = right.Children[idx]
		}
		res := a.node(baseChild, leftChild, rightChild)
		if res.Conflict != nil {
			// Even within an unordered set, a real disagreement over the
			// same logical member still needs a human decision.
			return Result{Conflict: &types.MergeScenario[*types.CstNode]{
				Base:  base,
				Left:  left,
				Right: right,
			}}
		}
		if !res.Deleted {
			out = append(out, res.Node)
		}
	}

	leftAdded := unmatchedIndices(leftOf, len(left.Children))
	rightAdded := unmatchedIndices(rightOf, len(right.Children))

	leftAddedNodes := indexNodes(left.Children, leftAdded)
	rightAddedNodes := indexNodes(right.Children, rightAdded)

	shared := match.MatchUnordered(leftAddedNodes, rightAddedNodes)
	sharedRight := make(map[int]bool, len(shared))
	for _, p := range shared {
		if types.StructurallyEqual(leftAddedNodes[p.LeftIdx], rightAddedNodes[p.RightIdx]) {
			sharedRight[p.RightIdx] = true
		}
	}

	for _, n := range leftAddedNodes {
		out = append(out, types.CloneWithFreshIDs(n, a.gen))
	}
	for i, n := range rightAddedNodes {
		if sharedRight[i] {
			continue
		}
		out = append(out, types.CloneWithFreshIDs(n, a.gen))
	}

	merged := &types.CstNode{
		ID:       a.gen.Next(),
		Kind:     base.Kind,
		Variant:  base.Variant,
		Ordering: base.Ordering,
		Children: out,
	}
	return Result{Node: merged}
}

// unmatchedBuckets groups unmatched side indices by the base index they
// immediately follow in the side's own sequence (-1 if before the first
// matched child), preserving the side's relative order within a bucket.
func unmatchedBuckets(matchOf map[int]int, nSide int) map[int][]int {
	sideToBase := make(map[int]int, len(matchOf))
	for base, side := range matchOf {
		sideToBase[side] = base
	}

	buckets := map[int][]int{}
	lastBase := -1
	for side := 0; side < nSide; side++ {
		if base, ok := sideToBase[side]; ok {
			lastBase = base
			continue
		}
		buckets[lastBase] = append(buckets[lastBase], side)
	}
	return buckets
}

func unmatchedIndices(matchOf map[int]int, nSide int) []int {
	matched := make(map[int]bool, len(matchOf))
	for _, side := range matchOf {
		matched[side] = true
	}
	var out []int
	for i := 0; i < nSide; i++ {
		if !matched[i] {
			out = append(out, i)
		}
	}
	return out
}

func indexNodes(children []*types.CstNode, idx []int) []*types.CstNode {
	out := make([]*types.CstNode, len(idx))
	for i, j := range idx {
		out[i] = children[j]
	}
	return out
}

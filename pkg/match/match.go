package match

import "github.com/odvcencio/mergecraft/pkg/types"

// MatchChildren dispatches to the ordered or unordered matcher depending on
// parent's Ordering. Constructed nodes (fixed arity) are matched
// positionally without any algorithm: index i on the left always pairs
// with index i on the right, since both sides are expected to carry the
// same fixed arity for the same Kind.
func MatchChildren(parent *types.CstNode, left, right []*types.CstNode) []MatchPair {
	if parent != nil && parent.Variant == types.VariantConstructed {
		n := len(left)
		if len(right) < n {
			n = len(right)
		}
		pairs := make([]MatchPair, n)
		for i := 0; i < n; i++ {
			pairs[i] = MatchPair{LeftIdx: i, RightIdx: i, Score: TreeSimilarity(left[i], right[i])}
		}
		return pairs
	}

	if parent != nil && parent.Ordering == types.Unordered {
		return MatchUnordered(left, right)
	}
	return MatchOrdered(left, right)
}

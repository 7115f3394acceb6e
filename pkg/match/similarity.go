package match

import "github.com/odvcencio/mergecraft/pkg/types"

// TreeSimilarity scores how alike two subtrees are by the length of the
// longest common subsequence of their pre-order leaf-value sequences,
// normalized by the longer sequence's length. Result is in [0, 1]; two nil
// or two leafless trees are considered identical (1.0).
func TreeSimilarity(a, b *types.CstNode) float64 {
	av := a.LeafValues()
	bv := b.LeafValues()
	if len(av) == 0 && len(bv) == 0 {
		return 1.0
	}
	l := lcsLength(av, bv)
	denom := len(av)
	if len(bv) > denom {
		denom = len(bv)
	}
	return float64(l) / float64(denom)
}

// lcsLength computes the length of the longest common subsequence between
// two string slices via the standard O(n*m) DP.
func lcsLength(a, b []string) int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0
	}
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

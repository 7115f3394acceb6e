package match

import "github.com/odvcencio/mergecraft/pkg/types"

// MatchUnordered solves maximum-weight bipartite assignment between two
// unordered child sets with the Hungarian (Kuhn-Munkres) algorithm,
// running in O(max(n,m)^3). Only positive-weight pairs (same Kind, nonzero
// similarity) are matched; everything else is left unmatched so it falls
// through to the amalgamator's union/multiset handling for unmatched
// children.
func MatchUnordered(left, right []*types.CstNode) []MatchPair {
	n, m := len(left), len(right)
	if n == 0 || m == 0 {
		return nil
	}

	size := n
	if m > size {
		size = m
	}

	// Build a size x size weight matrix, padding with zero-weight dummy
	// rows/columns so the square Hungarian algorithm applies directly.
	weight := make([][]float64, size)
	for i := range weight {
		weight[i] = make([]float64, size)
		if i < n {
			for j := 0; j < m; j++ {
				if left[i].Kind == right[j].Kind {
					weight[i][j] = TreeSimilarity(left[i], right[j])
				}
			}
		}
	}

	assignment := hungarianMaxWeight(weight)

	var pairs []MatchPair
	for i := 0; i < n; i++ {
		j := assignment[i]
		if j < 0 || j >= m {
			continue
		}
		if weight[i][j] <= 0 {
			continue
		}
		pairs = append(pairs, MatchPair{LeftIdx: i, RightIdx: j, Score: weight[i][j]})
	}
	return pairs
}

// hungarianMaxWeight solves the square maximum-weight assignment problem
// via the Kuhn-Munkres algorithm adapted for maximization: it negates
// weights and runs the classical minimum-cost formulation with the
// Hungarian potential/augmenting-path method. Returns, for each row, the
// assigned column.
func hungarianMaxWeight(weight [][]float64) []int {
	n := len(weight)
	if n == 0 {
		return nil
	}

	const inf = 1e18
	cost := make([][]float64, n+1)
	for i := range cost {
		cost[i] = make([]float64, n+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			cost[i][j] = -weight[i-1][j-1]
		}
	}

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row assigned to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minV := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minV {
			minV[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0][j] - u[i0] - v[j]
				if cur < minV[j] {
					minV[j] = cur
					way[j] = j0
				}
				if minV[j] < delta {
					delta = minV[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minV[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowAssignment := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			rowAssignment[p[j]-1] = j - 1
		}
	}
	return rowAssignment
}

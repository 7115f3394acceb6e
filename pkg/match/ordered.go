package match

import "github.com/odvcencio/mergecraft/pkg/types"

// MatchPair records that leftIdx's child was matched against rightIdx's
// child with the given similarity score, where leftIdx/rightIdx are
// positions within the respective child slices passed to the matcher.
type MatchPair struct {
	LeftIdx, RightIdx int
	Score             float64
}

type choice int

const (
	choiceNone choice = iota
	choiceMatch
	choiceSkipLeft
	choiceSkipRight
)

// MatchOrdered aligns two ordered child sequences with a Yang-style
// dynamic program: the classic LCS recurrence generalized from character
// equality to a continuous similarity score, keeping relative order intact
// on both sides. Ties prefer match over skip-left over skip-right, so the
// alignment is maximal and deterministic.
//
// A pair is only emitted when left[i] and right[j] share the same Kind;
// cross-kind pairs are never matched even if their leaf content happens to
// coincide.
func MatchOrdered(left, right []*types.CstNode) []MatchPair {
	n, m := len(left), len(right)
	score := make([][]float64, n+1)
	pick := make([][]choice, n+1)
	for i := range score {
		score[i] = make([]float64, m+1)
		pick[i] = make([]choice, m+1)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			var matchScore float64
			sim := TreeSimilarity(left[i-1], right[j-1])
			canMatch := left[i-1].Kind == right[j-1].Kind && sim > 0
			if canMatch {
				matchScore = score[i-1][j-1] + sim
			}
			skipLeft := score[i-1][j]
			skipRight := score[i][j-1]

			best := skipLeft
			bestChoice := choiceSkipLeft
			if skipRight > best {
				best = skipRight
				bestChoice = choiceSkipRight
			}
			if canMatch && matchScore >= best {
				best = matchScore
				bestChoice = choiceMatch
			}
			score[i][j] = best
			pick[i][j] = bestChoice
		}
	}

	var pairs []MatchPair
	i, j := n, m
	for i > 0 && j > 0 {
		switch pick[i][j] {
		case choiceMatch:
			pairs = append(pairs, MatchPair{LeftIdx: i - 1, RightIdx: j - 1, Score: TreeSimilarity(left[i-1], right[j-1])})
			i--
			j--
		case choiceSkipLeft:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	return pairs
}

package vsa

import (
	"sort"
	"strings"

	"github.com/odvcencio/mergecraft/pkg/types"
)

// RankCandidates scores each candidate by how well it reconciles left and
// right while straying from base, deduplicates identical text, and tags
// the top-ranked survivor Medium confidence with everything else Low —
// VSA candidates are never trusted as much as a PatternRule hit, but the
// best of them is still worth more than an unranked search result.
func RankCandidates(candidates []string, s types.MergeScenario[string]) []types.ResolutionCandidate {
	type scored struct {
		text  string
		score float64
	}

	seen := map[string]bool{}
	var unique []scored
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, scored{text: c, score: rankScore(c, s)})
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].score > unique[j].score
	})

	out := make([]types.ResolutionCandidate, len(unique))
	for i, u := range unique {
		conf := types.Low
		if i == 0 {
			conf = types.Medium
		}
		out[i] = types.ResolutionCandidate{
			Content:    u.text,
			Confidence: conf,
			Strategy:   types.StrategyVersionSpaceAlgebra,
		}
	}
	return out
}

// rankScore implements (sim(c,left) + sim(c,right) - 0.5*sim(c,base)) /
// max(1, size(c)), where sim is a line-level LCS similarity count and
// size is the candidate's line count.
func rankScore(candidate string, s types.MergeScenario[string]) float64 {
	cLines := splitLines(candidate)
	size := len(cLines)
	if size == 0 {
		size = 1
	}

	simLeft := float64(lcsLength(cLines, splitLines(s.Left)))
	simRight := float64(lcsLength(cLines, splitLines(s.Right)))
	simBase := float64(lcsLength(cLines, splitLines(s.Base)))

	return (simLeft + simRight - 0.5*simBase) / float64(size)
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

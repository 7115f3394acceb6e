// Package resolver wires the pattern, structural-merge, version-space, and
// search tiers into a single escalating pipeline, and is the only package
// that emits conflict-marker text.
package resolver

import (
	"sort"
	"strings"

	"github.com/odvcencio/mergecraft/pkg/amalgamate"
	"github.com/odvcencio/mergecraft/pkg/cstparse"
	"github.com/odvcencio/mergecraft/pkg/diff3"
	"github.com/odvcencio/mergecraft/pkg/patterns"
	"github.com/odvcencio/mergecraft/pkg/search"
	"github.com/odvcencio/mergecraft/pkg/types"
	"github.com/odvcencio/mergecraft/pkg/vsa"
)

// Resolver escalates a text conflict through PatternRule, StructuredMerge,
// VersionSpaceAlgebra, and SearchBased tiers in that order, stopping at
// the first tier whose best candidate meets AutoAcceptThreshold.
type Resolver struct {
	cfg Config
}

// New builds a Resolver bound to cfg.
func New(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// ResolverOutput is the outcome of resolving one conflict region.
type ResolverOutput struct {
	Resolved   bool
	Content    string // resolved text, or marker-formatted conflict text
	Confidence types.Confidence
	Strategy   types.Strategy
	Candidates []types.ResolutionCandidate // runner-up candidates for manual review
}

// FileResolverOutput is the outcome of resolving every conflict in a file.
type FileResolverOutput struct {
	MergedContent string
	Conflicts     []ResolverOutput
	AllResolved   bool
}

// ResolveFile runs diff3 over the three revisions and resolves each
// resulting conflict hunk independently, reassembling the file in
// document order. Non-conflict hunks pass through unchanged.
func (r *Resolver) ResolveFile(base, left, right string) FileResolverOutput {
	hunks := diff3.Diff3(splitLines(base), splitLines(left), splitLines(right))

	var out strings.Builder
	var conflicts []ResolverOutput
	allResolved := true

	for _, h := range hunks {
		if h.Kind != diff3.Conflict {
			writeLines(&out, h.Lines)
			continue
		}

		scenario := types.MergeScenario[string]{
			Base:  joinLines(h.Base),
			Left:  joinLines(h.Left),
			Right: joinLines(h.Right),
		}
		result := r.ResolveConflict(scenario)
		conflicts = append(conflicts, result)
		if result.Resolved {
			out.WriteString(result.Content)
		} else {
			allResolved = false
			out.WriteString(result.Content)
		}
	}

	return FileResolverOutput{
		MergedContent: out.String(),
		Conflicts:     conflicts,
		AllResolved:   allResolved,
	}
}

// ResolveConflict escalates a single conflict scenario through the tiers,
// returning the first candidate that clears AutoAcceptThreshold. If none
// does, it returns the scenario's three regions as conflict-marker text,
// carrying every candidate seen along the way for manual review.
func (r *Resolver) ResolveConflict(s types.MergeScenario[string]) ResolverOutput {
	var seen []types.ResolutionCandidate

	if c, ok := r.patternTier(s); ok {
		seen = append(seen, c)
		if c.Confidence.AtLeast(r.cfg.AutoAcceptThreshold) {
			return resolved(c, seen)
		}
	}

	if c, ok := r.structuredTier(s); ok {
		seen = append(seen, c)
		if c.Confidence.AtLeast(r.cfg.AutoAcceptThreshold) {
			return resolved(c, seen)
		}
	}

	if c, ok := r.vsaTier(s); ok {
		seen = append(seen, c)
		if c.Confidence.AtLeast(r.cfg.AutoAcceptThreshold) {
			return resolved(c, seen)
		}
	}

	if c, ok := r.searchTier(s); ok {
		seen = append(seen, c)
		if c.Confidence.AtLeast(r.cfg.AutoAcceptThreshold) {
			return resolved(c, seen)
		}
	}

	return ResolverOutput{
		Resolved:   false,
		Content:    FormatConflict(s),
		Confidence: types.Low,
		Strategy:   types.StrategySearchBased,
		Candidates: rankCandidates(seen),
	}
}

// rankCandidates sorts candidates by confidence descending (stable, so
// ties keep the tier-visitation order they were seen in) and deduplicates
// by content, keeping the first occurrence of each distinct text.
func rankCandidates(candidates []types.ResolutionCandidate) []types.ResolutionCandidate {
	sorted := append([]types.ResolutionCandidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	seen := map[string]bool{}
	out := make([]types.ResolutionCandidate, 0, len(sorted))
	for _, c := range sorted {
		if seen[c.Content] {
			continue
		}
		seen[c.Content] = true
		out = append(out, c)
	}
	return out
}

func resolved(c types.ResolutionCandidate, seen []types.ResolutionCandidate) ResolverOutput {
	return ResolverOutput{
		Resolved:   true,
		Content:    c.Content,
		Confidence: c.Confidence,
		Strategy:   c.Strategy,
		Candidates: rankCandidates(seen),
	}
}

func (r *Resolver) patternTier(s types.MergeScenario[string]) (types.ResolutionCandidate, bool) {
	c, ok := patterns.TryResolve(s)
	if !ok {
		return types.ResolutionCandidate{}, false
	}
	return *c, true
}

// structuredTier parses all three revisions into CSTs and amalgamates
// them. Any parse failure or unresolved structural conflict falls through
// to the next tier rather than failing the whole resolution.
func (r *Resolver) structuredTier(s types.MergeScenario[string]) (types.ResolutionCandidate, bool) {
	if r.cfg.Language == types.LangUnknown {
		return types.ResolutionCandidate{}, false
	}

	baseNode, err := cstparse.Parse([]byte(s.Base), r.cfg.Language, types.NewIDGen())
	if err != nil {
		return types.ResolutionCandidate{}, false
	}
	leftNode, err := cstparse.Parse([]byte(s.Left), r.cfg.Language, types.NewIDGen())
	if err != nil {
		return types.ResolutionCandidate{}, false
	}
	rightNode, err := cstparse.Parse([]byte(s.Right), r.cfg.Language, types.NewIDGen())
	if err != nil {
		return types.ResolutionCandidate{}, false
	}

	gen := types.NewIDGen()
	result := amalgamate.Amalgamate(baseNode, leftNode, rightNode, gen)
	if result.Conflict != nil {
		return types.ResolutionCandidate{}, false
	}
	if result.Deleted {
		return types.ResolutionCandidate{Content: "", Confidence: types.High, Strategy: types.StrategyStructuredMerge}, true
	}
	return types.ResolutionCandidate{
		Content:    result.Node.ToSource(),
		Confidence: types.High,
		Strategy:   types.StrategyStructuredMerge,
	}, true
}

func (r *Resolver) vsaTier(s types.MergeScenario[string]) (types.ResolutionCandidate, bool) {
	patternCandidates := contentsOf(patterns.TryResolveAll(s))
	space := vsa.Build(s, patternCandidates)

	max := r.cfg.MaxVSACandidates
	if max <= 0 {
		max = 500
	}
	candidates, _ := vsa.Enumerate(space, max)
	if len(candidates) == 0 {
		return types.ResolutionCandidate{}, false
	}

	ranked := vsa.RankCandidates(candidates, s)
	if len(ranked) == 0 {
		return types.ResolutionCandidate{}, false
	}
	return ranked[0], true
}

func (r *Resolver) searchTier(s types.MergeScenario[string]) (types.ResolutionCandidate, bool) {
	candidates := search.Resolve(s, r.cfg.Search.toSearchConfig())
	if len(candidates) == 0 {
		return types.ResolutionCandidate{}, false
	}
	return candidates[0], true
}

func contentsOf(candidates []types.ResolutionCandidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Content
	}
	return out
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
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

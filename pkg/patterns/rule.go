// Package patterns implements a small ordered registry of declarative text
// conflict rules, the first tier of the resolution pipeline: cheap,
// specific heuristics tried before any structural or search-based
// strategy gets a chance.
package patterns

import "github.com/odvcencio/mergecraft/pkg/types"

// Rule is a single named conflict-resolution heuristic operating on raw
// conflict text.
type Rule struct {
	Name       string
	Confidence types.Confidence
	resolve    func(s types.MergeScenario[string]) (string, bool)
}

// TryResolve runs resolve and reports whether the rule fired.
func (r Rule) TryResolve(s types.MergeScenario[string]) (string, bool) {
	return r.resolve(s)
}

// Registry is the ordered list of rules tried by TryResolve/TryResolveAll.
// Order matters: it is the order in which rules are attempted, and ties in
// applicability are broken by registry position.
var Registry = []Rule{
	whitespaceOnly,
	identicalChange,
	bothAddLines,
	oneEmpty,
	prefixSuffix,
	importUnion,
	adjacentEdit,
}

// TryResolve runs the registry in order and returns the first rule that
// fires.
func TryResolve(s types.MergeScenario[string]) (*types.ResolutionCandidate, bool) {
	for _, r := range Registry {
		if out, ok := r.resolve(s); ok {
			return &types.ResolutionCandidate{
				Content:    out,
				Confidence: r.Confidence,
				Strategy:   types.StrategyPatternRule,
			}, true
		}
	}
	return nil, false
}

// TryResolveAll runs every rule and collects every candidate that fires,
// in registry order. Used upstream to feed VSA/search dedup passes a
// richer candidate pool instead of stopping at the first match.
func TryResolveAll(s types.MergeScenario[string]) []types.ResolutionCandidate {
	var out []types.ResolutionCandidate
	for _, r := range Registry {
		if content, ok := r.resolve(s); ok {
			out = append(out, types.ResolutionCandidate{
				Content:    content,
				Confidence: r.Confidence,
				Strategy:   types.StrategyPatternRule,
			})
		}
	}
	return out
}

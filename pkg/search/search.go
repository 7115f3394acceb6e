package search

import (
	"sort"

	"github.com/odvcencio/mergecraft/pkg/types"
)

// Config bounds the search: MaxGenerations caps how many breeding rounds
// run, PopulationSize caps how many individuals survive selection each
// generation, and MaxCandidates caps how many results are returned.
type Config struct {
	MaxGenerations int
	PopulationSize int
	MaxCandidates  int
}

// DefaultConfig matches the values used when a caller supplies none.
func DefaultConfig() Config {
	return Config{MaxGenerations: 8, PopulationSize: 20, MaxCandidates: 5}
}

type individual struct {
	text    string
	fitness float64
}

// Resolve runs the deterministic evolutionary search over a conflict
// scenario and returns up to cfg.MaxCandidates unique candidates, highest
// fitness first, each tagged SearchBased/Low.
func Resolve(s types.MergeScenario[string], cfg Config) []types.ResolutionCandidate {
	populationSize := cfg.PopulationSize
	if populationSize <= 0 {
		populationSize = DefaultConfig().PopulationSize
	}

	pop := selectTop(rank(dedupTexts(seed(s.Left, s.Right)), s), populationSize)

	for gen := 0; gen < cfg.MaxGenerations; gen++ {
		children := breed(pop)
		pop = selectTop(rank(dedupTexts(append(textsOf(pop), children...)), s), populationSize)
	}

	n := cfg.MaxCandidates
	if n > len(pop) {
		n = len(pop)
	}
	out := make([]types.ResolutionCandidate, n)
	for i := 0; i < n; i++ {
		out[i] = types.ResolutionCandidate{
			Content:    pop[i].text,
			Confidence: types.Low,
			Strategy:   types.StrategySearchBased,
		}
	}
	return out
}

// selectTop sorts pop by fitness descending (stable, so equal-fitness
// individuals keep their relative order) and keeps at most n.
func selectTop(pop []individual, n int) []individual {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].fitness > pop[j].fitness })
	if len(pop) > n {
		pop = pop[:n]
	}
	return pop
}

func rank(texts []string, s types.MergeScenario[string]) []individual {
	out := make([]individual, len(texts))
	for i, t := range texts {
		out[i] = individual{text: t, fitness: fitness(t, s.Base, s.Left, s.Right)}
	}
	return out
}

func textsOf(pop []individual) []string {
	out := make([]string, len(pop))
	for i, p := range pop {
		out[i] = p.text
	}
	return out
}

func dedupTexts(texts []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range texts {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// breed produces one crossover child and one mutated child per adjacent
// pair in the current population, in a fixed deterministic order: no
// random pairing, no random split point.
func breed(pop []individual) []string {
	var children []string
	for i := 0; i+1 < len(pop); i++ {
		children = append(children, crossover(pop[i].text, pop[i+1].text))
		children = append(children, mutate(pop[i].text, pop[i+1].text))
	}
	return children
}

// crossover splits both parents at their midpoint line and joins the
// first parent's head with the second parent's tail.
func crossover(a, b string) string {
	aLines := splitLines(a)
	bLines := splitLines(b)
	aHalf := len(aLines) / 2
	bHalf := len(bLines) / 2
	out := append(append([]string(nil), aLines[:aHalf]...), bLines[bHalf:]...)
	return joinLines(out)
}

// mutate swaps a's middle line for b's middle line, leaving the rest of a
// untouched.
func mutate(a, b string) string {
	aLines := append([]string(nil), splitLines(a)...)
	bLines := splitLines(b)
	if len(aLines) == 0 || len(bLines) == 0 {
		return a
	}
	aMid := len(aLines) / 2
	bMid := len(bLines) / 2
	aLines[aMid] = bLines[bMid]
	return joinLines(aLines)
}

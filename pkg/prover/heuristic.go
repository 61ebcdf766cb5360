package prover

import "fmt"

// Scorer assigns a non-negative priority to a clause; lower means higher
// priority (§4.G: "lower value = higher priority"). All six named scorers
// share this shape, "a tagged selector rather than a dispatch table tied
// to any language feature" per §9's design note — the registry below is
// that tag.
type Scorer func(c *Clause) int

const (
	HeuristicPreferEmpty            = "prefer_empty"
	HeuristicDepth                  = "depth"
	HeuristicDisjunctCount          = "disjunct_count"
	HeuristicSymbolCount            = "symbol_count"
	HeuristicDisjunctCountPlusDepth = "disjunct_count_plus_depth"
	HeuristicSymbolCountPlusDepth   = "symbol_count_plus_depth"
)

var heuristics = map[string]Scorer{
	HeuristicPreferEmpty:   func(c *Clause) int { return c.Metrics.LiteralCount },
	HeuristicDepth:         func(c *Clause) int { return c.Metrics.Depth },
	HeuristicDisjunctCount: func(c *Clause) int { return c.Metrics.LiteralCount },
	HeuristicSymbolCount:   func(c *Clause) int { return c.Metrics.SymbolCount },
	HeuristicDisjunctCountPlusDepth: func(c *Clause) int {
		return c.Metrics.LiteralCount + c.Metrics.Depth
	},
	HeuristicSymbolCountPlusDepth: func(c *Clause) int {
		return c.Metrics.SymbolCount + c.Metrics.Depth
	},
}

// HeuristicNames returns the six names from §4.G in table order.
func HeuristicNames() []string {
	return []string{
		HeuristicPreferEmpty,
		HeuristicDepth,
		HeuristicDisjunctCount,
		HeuristicSymbolCount,
		HeuristicDisjunctCountPlusDepth,
		HeuristicSymbolCountPlusDepth,
	}
}

// LookupHeuristic resolves a heuristic by name, or reports an error for any
// name outside the closed set in §4.G (a configuration error, not a panic,
// per the ambient error-handling design).
func LookupHeuristic(name string) (Scorer, error) {
	s, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q (want one of %v)", name, HeuristicNames())
	}
	return s, nil
}

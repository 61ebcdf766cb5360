package prover

import (
	"strings"
	"sync/atomic"
)

// Origin tags a clause's provenance category (§3).
type Origin int

const (
	// OriginPremise marks a clause derived from the sequent's premises.
	OriginPremise Origin = iota
	// OriginNegatedGoal marks a clause derived from the negated conclusion.
	OriginNegatedGoal
	// OriginDerived marks a clause produced by an inference rule.
	OriginDerived
)

func (o Origin) String() string {
	switch o {
	case OriginPremise:
		return "premise"
	case OriginNegatedGoal:
		return "negated-goal"
	default:
		return "derived"
	}
}

// Provenance records how a clause was produced, for the §4.H trace.
type Provenance struct {
	Rule    string
	Parents []int
	Unifier Substitution
}

// Metrics are cached, derived facts about a clause (§3): depth, literal
// count, and total symbol count. They are computed once at construction
// and never recomputed implicitly — I2 in §8 requires them to always equal
// what a fresh computation over Literals would produce, so every
// constructor in this file (and only those constructors) is responsible
// for keeping them in sync.
type Metrics struct {
	Depth        int
	LiteralCount int
	SymbolCount  int
}

// Clause is an unordered multiset of literals, interpreted as their
// disjunction (§3). The zero Clause is not valid; use NewClause.
type Clause struct {
	ID         int
	Literals   []Literal
	Provenance Provenance
	Metrics    Metrics
	Origin     Origin
}

var clauseIDCounter int64

// nextClauseID hands out monotonically increasing clause identifiers
// (§3: "an identifier, monotonically assigned").
func nextClauseID() int {
	return int(atomic.AddInt64(&clauseIDCounter, 1))
}

// ResetClauseIDs resets the global clause id counter to 0. It exists for
// deterministic, order-independent tests (each test gets ids starting
// from 1); the CLI never calls it. The counter is process-wide, so the
// `prove race` subcommand's concurrent heuristics draw their derived
// clause ids from the same counter and share one initial clause set.
func ResetClauseIDs() { atomic.StoreInt64(&clauseIDCounter, 0) }

// NewAxiomClause constructs a premise/negated-goal clause (depth 0, §3).
func NewAxiomClause(lits []Literal, origin Origin) *Clause {
	return newClauseWithDepth(lits, origin, 0, Provenance{Rule: "axiom"})
}

// NewDerivedClause constructs a clause produced by an inference rule whose
// parents are parentDepths (their cached Metrics.Depth values) and
// parentIDs; depth is 1 + max(parentDepths) per §3.
func NewDerivedClause(lits []Literal, rule string, parentIDs []int, parentDepths []int, unifier Substitution) *Clause {
	maxDepth := 0
	for _, d := range parentDepths {
		if d > maxDepth {
			maxDepth = d
		}
	}
	return newClauseWithDepth(lits, OriginDerived, maxDepth+1, Provenance{
		Rule:    rule,
		Parents: append([]int(nil), parentIDs...),
		Unifier: unifier,
	})
}

func newClauseWithDepth(lits []Literal, origin Origin, depth int, prov Provenance) *Clause {
	litCount := len(lits)
	symCount := 0
	for _, l := range lits {
		symCount += l.symbolCount()
	}
	return &Clause{
		ID:         nextClauseID(),
		Literals:   lits,
		Provenance: prov,
		Origin:     origin,
		Metrics:    Metrics{Depth: depth, LiteralCount: litCount, SymbolCount: symCount},
	}
}

// IsEmpty reports whether the clause is the empty clause ⊥ (§3).
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// IsTautology reports whether the clause contains a literal and its
// negation, or a reflexive positive equation (§3 invariant 2).
func (c *Clause) IsTautology() bool {
	for i, li := range c.Literals {
		if li.IsReflexiveEquation() {
			return true
		}
		for j, lj := range c.Literals {
			if i == j {
				continue
			}
			if li.Positive != lj.Positive && li.Pred.Equal(lj.Pred) {
				return true
			}
		}
	}
	return false
}

// Dedup returns a copy of lits with syntactically identical literals
// removed (§3 invariant 1: "no clause contains two syntactically identical
// literals; factoring is eager" — Dedup enforces the cheaper, exact-match
// half of that; MGU-based factoring is infer.go's Factor).
func Dedup(lits []Literal) []Literal {
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, o := range out {
			if l.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

// FreeVars returns the set of variables occurring in the clause.
func (c *Clause) FreeVars() map[Variable]struct{} {
	out := map[Variable]struct{}{}
	for _, l := range c.Literals {
		l.freeVars(out)
	}
	return out
}

// String renders the clause as "L1 | L2 | ..." or "[]" when empty.
func (c *Clause) String() string {
	if c.IsEmpty() {
		return "[]"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ")
}

// hash computes a structural FNV-style hash of the clause. Variables are
// numbered by first occurrence, so two clauses whose literals come in the
// same order and differ only by a variable renaming hash the same.
// Nothing in this package calls it; clauseset.go matches literals
// directly.
func (c *Clause) hash() uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	varIndex := map[Variable]int{}
	for _, l := range c.Literals {
		l.hashInto(&h, varIndex)
	}
	return h
}

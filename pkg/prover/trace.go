package prover

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Verdict is the §4.H / §6 terminating result of a Prove call.
type Verdict struct {
	// Sat is true when the negated goal was refuted (entailment holds,
	// §1: "reported as sat"); false means the budget or passive set was
	// exhausted without deriving the empty clause.
	Sat bool

	// RunID correlates this verdict with the log lines emitted during the
	// run that produced it (ambient-stack addition; does not change the
	// stable §6 output format).
	RunID uuid.UUID

	// Summary counts, always populated regardless of verbosity (§4.H:
	// "optional summary counts" made concrete in SPEC_FULL.md).
	ClausesGenerated int
	Steps            int
	Elapsed          time.Duration

	// Exhausted distinguishes the two unsat causes: true means the passive
	// set ran dry (a genuine, budget-independent search exhaustion), false
	// with Sat == false means the step budget or deadline cut the search
	// short (§7 BudgetExceeded).
	Exhausted bool

	// Derivation is the linear proof chain from axioms to the empty
	// clause, populated only when Sat is true and the run was invoked
	// with verbose tracing.
	Derivation []*Clause

	// Empty is the derived empty clause itself, when Sat is true.
	Empty *Clause
}

// BuildDerivation walks provenance from the empty clause upward (§4.H),
// returning axioms and derived clauses in an order where every clause
// appears after all of its parents (a topological order of the
// provenance DAG), suitable for direct top-to-bottom printing.
func BuildDerivation(empty *Clause, byID map[int]*Clause) []*Clause {
	var order []*Clause
	visited := map[int]bool{}
	var visit func(c *Clause)
	visit = func(c *Clause) {
		if c == nil || visited[c.ID] {
			return
		}
		visited[c.ID] = true
		for _, pid := range c.Provenance.Parents {
			visit(byID[pid])
		}
		order = append(order, c)
	}
	visit(empty)
	return order
}

// FormatVerdict renders the §6 stable output format: first line "sat" or
// "unsat"; if verbose, one derivation line per clause, in the format
// "<id>: <literals> [<rule> <parent-ids> <sigma>]" for derived clauses and
// "<id>: <literals> [<origin>]" for axioms (see FormatClauseLine).
func FormatVerdict(v Verdict, verbose bool) string {
	var b strings.Builder
	if v.Sat {
		b.WriteString("sat\n")
	} else {
		b.WriteString("unsat\n")
	}
	if verbose {
		for _, c := range v.Derivation {
			b.WriteString(FormatClauseLine(c))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatClauseLine renders one derivation line for clause c.
func FormatClauseLine(c *Clause) string {
	if c.Provenance.Rule == "axiom" || c.Provenance.Rule == "" {
		return fmt.Sprintf("%d: %s [%s]", c.ID, c.String(), c.Origin)
	}
	parents := make([]string, len(c.Provenance.Parents))
	for i, p := range c.Provenance.Parents {
		parents[i] = fmt.Sprintf("%d", p)
	}
	return fmt.Sprintf("%d: %s [%s %s %s]", c.ID, c.String(), c.Provenance.Rule,
		strings.Join(parents, ","), formatSigma(c.Provenance.Unifier))
}

func formatSigma(sigma Substitution) string {
	if sigma.Len() == 0 {
		return "{}"
	}
	parts := make([]string, 0, sigma.Len())
	for v, t := range sigma.bindings {
		parts = append(parts, fmt.Sprintf("%s/%s", v, t))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// NewRunID generates a correlation id for one Prove invocation.
func NewRunID() uuid.UUID { return uuid.New() }

package surface

import (
	"github.com/hashicorp/go-multierror"

	"github.com/gitrdm/foprover/pkg/prover"
)

// occurrence records where a predicate symbol was seen, for the source
// span attached to a reported ArityMismatch.
type occurrence struct {
	arity     int
	line, col int
}

// CheckArities reports every predicate symbol used with more than one
// distinct arity across the recorded occurrences, aggregated into a single
// *multierror.Error of *prover.ArityMismatch values so one parse reports
// every offending symbol instead of stopping at the first (§7).
//
// This package tracks source positions during parsing separately from
// prover.Formula (which carries no position info, since pkg/prover treats
// the AST as already-validated input) — CheckArities is therefore the only
// place arity violations carry a line:col.
func CheckArities(occurrences map[string][]occurrence) error {
	var result *multierror.Error
	for name, occs := range occurrences {
		if len(occs) < 2 {
			continue
		}
		first := occs[0]
		for _, occ := range occs[1:] {
			if occ.arity != first.arity {
				result = multierror.Append(result, &prover.ArityMismatch{
					Symbol:        prover.Intern(name),
					FirstArity:    first.arity,
					ConflictArity: occ.arity,
					Line:          occ.line,
					Col:           occ.col,
				})
			}
		}
	}
	return result.ErrorOrNil()
}

package prover

// Set holds the active/passive partition from §4.E. Passive ordering is
// owned by saturate.go's priority queue; Set itself is only responsible
// for membership and the redundancy checks (tautology + forward/backward
// subsumption) run on every insertion attempt.
type Set struct {
	active  []*Clause
	passive []*Clause
}

// NewSet returns an empty clause set.
func NewSet() *Set { return &Set{} }

// Active returns the current active clauses (read-only view).
func (s *Set) Active() []*Clause { return s.active }

// Passive returns the current passive clauses (read-only view).
func (s *Set) Passive() []*Clause { return s.passive }

// TryInsert implements §4.E's redundancy algorithm for a candidate clause
// c. It reports (false, nil) when c is dropped (tautology or subsumed),
// and otherwise inserts c into passive, removes every clause in active ∪
// passive that c subsumes (backward subsumption), and returns (true,
// removedIDs) so callers (saturate.go) can drop those ids from any
// external bookkeeping (e.g. a priority heap).
func (s *Set) TryInsert(c *Clause) (inserted bool, removed []int) {
	if c.IsTautology() {
		return false, nil
	}
	for _, d := range s.active {
		if Subsumes(d, c) {
			return false, nil
		}
	}
	for _, d := range s.passive {
		if Subsumes(d, c) {
			return false, nil
		}
	}

	s.passive = append(s.passive, c)

	s.active, removed = removeSubsumed(s.active, c, removed)
	s.passive, removed = removeSubsumed(s.passive, c, removed)

	return true, removed
}

func removeSubsumed(clauses []*Clause, by *Clause, removed []int) ([]*Clause, []int) {
	out := clauses[:0:0]
	for _, d := range clauses {
		if d.ID != by.ID && Subsumes(by, d) {
			removed = append(removed, d.ID)
			continue
		}
		out = append(out, d)
	}
	return out, removed
}

// PopPassiveByID removes and returns the passive clause with the given id,
// used by saturate.go once its priority heap selects a given clause.
func (s *Set) PopPassiveByID(id int) *Clause {
	for i, c := range s.passive {
		if c.ID == id {
			s.passive = append(s.passive[:i], s.passive[i+1:]...)
			return c
		}
	}
	return nil
}

// Activate moves c into the active set (§3's passive → active transition).
func (s *Set) Activate(c *Clause) { s.active = append(s.active, c) }

// IsRedundantAgainstActive reports whether c is subsumed by some active
// clause — the check saturate.go makes at step 3 of §4.F before spending
// any inference work on a popped given clause.
func (s *Set) IsRedundantAgainstActive(c *Clause) bool {
	for _, d := range s.active {
		if Subsumes(d, c) {
			return true
		}
	}
	return false
}

// Subsumes reports whether d subsumes c (§4.E, §GLOSSARY): there exists a
// substitution σ over d's variables such that dσ is a sub-multiset of c,
// and |d| ≤ |c|. This is a backtracking literal-multiset match; the corpus's
// SAT/resolution examples index candidates more aggressively (feature
// vectors, discrimination trees), which §4.E explicitly says
// implementations "may" but are "not required to" do — this module omits
// that indexing layer and matches the teacher's and the pack's simpler
// resolution engines (e.g. the retrieved Talismanch1k resolution engine),
// which also subsume/match by direct literal comparison.
func Subsumes(d, c *Clause) bool {
	if len(d.Literals) > len(c.Literals) {
		return false
	}
	used := make([]bool, len(c.Literals))
	return subsumeFrom(d.Literals, 0, c.Literals, used, NewSubstitution())
}

func subsumeFrom(dLits []Literal, idx int, cLits []Literal, used []bool, sigma Substitution) bool {
	if idx == len(dLits) {
		return true
	}
	dl := dLits[idx]
	for j, cl := range cLits {
		if used[j] || dl.Positive != cl.Positive || dl.Pred.Kind != cl.Pred.Kind {
			continue
		}
		if matched, next := matchLiteralInto(dl, cl, sigma); matched {
			used[j] = true
			if subsumeFrom(dLits, idx+1, cLits, used, next) {
				return true
			}
			used[j] = false
		}
	}
	return false
}

// matchLiteralInto attempts to extend sigma so that sigma(dl) == cl
// syntactically (a one-directional match, not a full unification: only
// dl's variables may be bound, never cl's — matching is not symmetric).
func matchLiteralInto(dl, cl Literal, sigma Substitution) (bool, Substitution) {
	if dl.Pred.Kind == PredEq {
		ok1, s1 := matchTermInto(dl.Pred.Lhs, cl.Pred.Lhs, sigma)
		if !ok1 {
			return false, sigma
		}
		return matchTermInto(dl.Pred.Rhs, cl.Pred.Rhs, s1)
	}
	if dl.Pred.Name != cl.Pred.Name || len(dl.Pred.Args) != len(cl.Pred.Args) {
		return false, sigma
	}
	cur := sigma
	for i := range dl.Pred.Args {
		ok, next := matchTermInto(dl.Pred.Args[i], cl.Pred.Args[i], cur)
		if !ok {
			return false, sigma
		}
		cur = next
	}
	return true, cur
}

func matchTermInto(pattern, target Term, sigma Substitution) (bool, Substitution) {
	if pattern.IsVar() {
		if bound, ok := sigma.Lookup(pattern.Var()); ok {
			return bound.Equal(target), sigma
		}
		return true, sigma.bind(pattern.Var(), target)
	}
	if target.IsVar() || pattern.Fn() != target.Fn() || pattern.Arity() != target.Arity() {
		return false, sigma
	}
	cur := sigma
	for i := range pattern.Args() {
		ok, next := matchTermInto(pattern.Args()[i], target.Args()[i], cur)
		if !ok {
			return false, sigma
		}
		cur = next
	}
	return true, cur
}

package prover

// Substitution is a finite mapping from Variable to Term, maintained in
// idempotent form per §4.B: no variable in the domain appears free in any
// range term. Unify and Compose are the only constructors that extend a
// Substitution, and both preserve idempotence.
type Substitution struct {
	bindings map[Variable]Term
}

// NewSubstitution returns the empty substitution.
func NewSubstitution() Substitution {
	return Substitution{bindings: make(map[Variable]Term)}
}

// Lookup returns the term bound to v, if any.
func (s Substitution) Lookup(v Variable) (Term, bool) {
	if s.bindings == nil {
		return Term{}, false
	}
	t, ok := s.bindings[v]
	return t, ok
}

// Len reports the number of bindings.
func (s Substitution) Len() int { return len(s.bindings) }

// clone returns a shallow copy whose map is independent of s's.
func (s Substitution) clone() Substitution {
	out := make(map[Variable]Term, len(s.bindings))
	for k, v := range s.bindings {
		out[k] = v
	}
	return Substitution{bindings: out}
}

// bind returns a new substitution extending s with v := t. t is first
// resolved through s, and v's binding is then applied through every
// existing range term so no range term can come to mention v afterward
// (idempotence).
func (s Substitution) bind(v Variable, t Term) Substitution {
	next := s.clone()
	// t may itself mention variables already bound in s; resolve those
	// first so the new binding's range is already in normal form.
	resolved := s.Apply(t)
	for k, rangeTerm := range next.bindings {
		next.bindings[k] = substituteVarInTerm(rangeTerm, v, resolved)
	}
	next.bindings[v] = resolved
	return next
}

func substituteVarInTerm(t Term, v Variable, repl Term) Term {
	if t.IsVar() {
		if t.Var() == v {
			return repl
		}
		return t
	}
	if t.Arity() == 0 {
		return t
	}
	args := make([]Term, len(t.Args()))
	changed := false
	for i, a := range t.Args() {
		na := substituteVarInTerm(a, v, repl)
		if !na.Equal(a) {
			changed = true
		}
		args[i] = na
	}
	if !changed {
		return t
	}
	return FnTerm(t.Fn(), args...)
}

// Apply extends σ pointwise over term, returning a fresh term (§4.A).
func (s Substitution) Apply(t Term) Term {
	if s.bindings == nil {
		return t
	}
	if t.IsVar() {
		if bound, ok := s.bindings[t.Var()]; ok {
			return bound
		}
		return t
	}
	if t.Arity() == 0 {
		return t
	}
	args := make([]Term, len(t.Args()))
	for i, a := range t.Args() {
		args[i] = s.Apply(a)
	}
	return FnTerm(t.Fn(), args...)
}

// ApplyLiteral extends σ pointwise over a literal.
func (s Substitution) ApplyLiteral(l Literal) Literal { return applySubstLiteral(s, l) }

// ApplyClauseLiterals extends σ pointwise over every literal of lits,
// producing a fresh slice.
func (s Substitution) ApplyClauseLiterals(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	for i, l := range lits {
		out[i] = s.ApplyLiteral(l)
	}
	return out
}

// Compose returns the substitution equivalent to applying s then tau
// (§4.B): for every term t, Compose(s, tau).Apply(t) == tau.Apply(s.Apply(t)).
func Compose(s, tau Substitution) Substitution {
	out := make(map[Variable]Term, len(s.bindings)+len(tau.bindings))
	for v, t := range s.bindings {
		out[v] = tau.Apply(t)
	}
	for v, t := range tau.bindings {
		if _, already := out[v]; !already {
			out[v] = t
		}
	}
	return Substitution{bindings: out}
}

// RenameApart returns a substitution mapping every free variable of lits to
// a fresh Variable, and the literals with that renaming already applied.
// Every inference rule in infer.go calls this on its parent clause(s)
// before unifying, per §3's scoping invariant: "when a clause is used in
// an inference, a fresh renaming is applied first so variable names never
// collide across parents."
func RenameApart(lits []Literal) ([]Literal, Substitution) {
	free := map[Variable]struct{}{}
	for _, l := range lits {
		l.freeVars(free)
	}
	ren := NewSubstitution()
	for v := range free {
		ren.bindings[v] = VarTerm(FreshVariable(v.name))
	}
	return ren.ApplyClauseLiterals(lits), ren
}

package prover

// Unify computes the most general unifier of t1 and t2 under the existing
// substitution s (pass NewSubstitution() for a fresh problem), per §4.B.
// It returns UnificationFailure on functor/arity mismatch or when the
// occurs check triggers. The result is deterministic: for a given (t1, t2,
// s) the returned substitution's bindings are uniquely determined (no
// fresh variables are ever introduced by unification itself).
//
// Equality literals are not unified by this function directly — Literal
// unification for resolution/paramodulation composes Unify over the
// literal's constituent terms; paramodulation additionally tries the
// swapped orientation of an equality itself, as §4.B's contract requires
// ("the caller is responsible for also trying the swapped orientation").
func Unify(t1, t2 Term, s Substitution) (Substitution, error) {
	w1 := s.Apply(t1)
	w2 := s.Apply(t2)

	if w1.IsVar() && w2.IsVar() && w1.Var() == w2.Var() {
		return s, nil
	}
	if w1.IsVar() {
		return bindVar(w1.Var(), w2, s)
	}
	if w2.IsVar() {
		return bindVar(w2.Var(), w1, s)
	}
	if w1.Fn() != w2.Fn() || w1.Arity() != w2.Arity() {
		return Substitution{}, &UnificationFailure{reason: "functor/arity mismatch: " + w1.String() + " vs " + w2.String()}
	}
	cur := s
	for i := range w1.Args() {
		var err error
		cur, err = Unify(w1.Args()[i], w2.Args()[i], cur)
		if err != nil {
			return Substitution{}, err
		}
	}
	return cur, nil
}

func bindVar(v Variable, t Term, s Substitution) (Substitution, error) {
	if t.IsVar() && t.Var() == v {
		return s, nil
	}
	if occurs(v, t) {
		return Substitution{}, &UnificationFailure{reason: "occurs check: " + v.String() + " occurs in " + t.String()}
	}
	return s.bind(v, t), nil
}

// occurs reports whether v appears free in t, the occurs check §4.B requires.
func occurs(v Variable, t Term) bool {
	if t.IsVar() {
		return t.Var() == v
	}
	for _, a := range t.Args() {
		if occurs(v, a) {
			return true
		}
	}
	return false
}

// UnifyLiterals attempts to unify the predicates of two literals; polarity
// is not checked. It is the building block resolution and factoring use:
// it unifies predicate name/arity (or, for equality, Lhs with Lhs and Rhs
// with Rhs; the swapped orientation is not tried) and composes the
// per-argument unifiers in order, failing fast.
func UnifyLiterals(a, b Literal, s Substitution) (Substitution, error) {
	if a.Pred.Kind != b.Pred.Kind {
		return Substitution{}, &UnificationFailure{reason: "predicate/equality kind mismatch"}
	}
	if a.Pred.Kind == PredEq {
		cur, err := Unify(a.Pred.Lhs, b.Pred.Lhs, s)
		if err != nil {
			return Substitution{}, err
		}
		return Unify(a.Pred.Rhs, b.Pred.Rhs, cur)
	}
	if a.Pred.Name != b.Pred.Name || len(a.Pred.Args) != len(b.Pred.Args) {
		return Substitution{}, &UnificationFailure{reason: "predicate symbol/arity mismatch"}
	}
	cur := s
	for i := range a.Pred.Args {
		var err error
		cur, err = Unify(a.Pred.Args[i], b.Pred.Args[i], cur)
		if err != nil {
			return Substitution{}, err
		}
	}
	return cur, nil
}

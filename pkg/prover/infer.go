package prover

// This file implements §4.D's four inference rules. Resolve, Paramodulate
// and ReflexivityResolve rename their parent(s) apart first (RenameApart,
// §3/§9; Factor works within one clause and does not rename), attempt
// unification, and on
// success builds a NewDerivedClause with full provenance. Every child is
// immediately run through Factor before being handed to the clause set
// (§4.D: "Every emitted child is immediately factored").

// Resolve generates every binary resolvent of c and d (§4.D "Binary
// resolution"): for each ordered pair of opposite-polarity literals (one
// from c, one from d) that unify, emit (C ∨ D)σ with that literal pair
// removed.
func Resolve(c, d *Clause) []*Clause {
	cLits, _ := RenameApart(c.Literals)
	dLits, _ := RenameApart(d.Literals)

	var out []*Clause
	for i, li := range cLits {
		for j, lj := range dLits {
			if li.Positive == lj.Positive || li.Pred.Kind != lj.Pred.Kind {
				continue
			}
			sigma, err := UnifyLiterals(li, lj, NewSubstitution())
			if err != nil {
				continue
			}
			child := buildResolvent(cLits, i, dLits, j, sigma, c, d)
			out = append(out, Factor(child))
		}
	}
	return out
}

func buildResolvent(cLits []Literal, skipC int, dLits []Literal, skipD int, sigma Substitution, c, d *Clause) *Clause {
	lits := make([]Literal, 0, len(cLits)+len(dLits)-2)
	for i, l := range cLits {
		if i == skipC {
			continue
		}
		lits = append(lits, sigma.ApplyLiteral(l))
	}
	for j, l := range dLits {
		if j == skipD {
			continue
		}
		lits = append(lits, sigma.ApplyLiteral(l))
	}
	return NewDerivedClause(lits, "resolution", []int{c.ID, d.ID}, []int{c.Metrics.Depth, d.Metrics.Depth}, sigma)
}

// Factor applies §4.D's factoring rule eagerly and exhaustively: given
// C ∨ L ∨ L′ with σ = mgu(L, L′) and matching polarity, emit (C ∨ L)σ. It
// repeats until no further factoring applies (the invariant in §3 is "no
// clause contains two syntactically identical literals", which a single
// factoring pass does not always reach when earlier substitutions expose
// new coincidences).
func Factor(c *Clause) *Clause {
	cur := c
	for {
		next, factored := factorOnce(cur)
		if !factored {
			return next
		}
		cur = next
	}
}

func factorOnce(c *Clause) (*Clause, bool) {
	lits := c.Literals
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			li, lj := lits[i], lits[j]
			if li.Positive != lj.Positive || li.Pred.Kind != lj.Pred.Kind {
				continue
			}
			sigma, err := UnifyLiterals(li, lj, NewSubstitution())
			if err != nil {
				continue
			}
			out := make([]Literal, 0, len(lits)-1)
			for k, l := range lits {
				if k == j {
					continue
				}
				out = append(out, sigma.ApplyLiteral(l))
			}
			out = Dedup(out)
			child := NewDerivedClause(out, "factoring", []int{c.ID}, []int{c.Metrics.Depth}, sigma)
			return child, true
		}
	}
	return c, false
}

// Paramodulate generates every paramodulant of an equality clause eq
// (containing a positive Eq(s, t) literal) into every subterm of into
// (§4.D "Paramodulation"). Both left-to-right and right-to-left
// orientations of the equality are tried.
func Paramodulate(eq, into *Clause) []*Clause {
	eqLits, _ := RenameApart(eq.Literals)
	intoLits, _ := RenameApart(into.Literals)

	var out []*Clause
	for ei, el := range eqLits {
		if !el.Positive || el.Pred.Kind != PredEq {
			continue
		}
		for _, orient := range [2][2]Term{{el.Pred.Lhs, el.Pred.Rhs}, {el.Pred.Rhs, el.Pred.Lhs}} {
			s, t := orient[0], orient[1]
			for ii, il := range intoLits {
				if ii == ei && eq == into {
					continue
				}
				found := collectRewriteSites(il, s)
				for _, site := range found {
					sigma, err := Unify(s, site, NewSubstitution())
					if err != nil {
						continue
					}
					newLit := rewriteAt(il, site, t, sigma)
					lits := make([]Literal, 0, len(eqLits)+len(intoLits)-1)
					for k, l := range eqLits {
						if k == ei {
							continue
						}
						lits = append(lits, sigma.ApplyLiteral(l))
					}
					for k, l := range intoLits {
						if k == ii {
							lits = append(lits, newLit)
							continue
						}
						lits = append(lits, sigma.ApplyLiteral(l))
					}
					child := NewDerivedClause(lits, "paramodulation", []int{eq.ID, into.ID}, []int{eq.Metrics.Depth, into.Metrics.Depth}, sigma)
					out = append(out, Factor(child))
				}
			}
		}
	}
	return out
}

// collectRewriteSites returns every subterm of l's predicate arguments (or
// of both sides of an equation), variables included. It does not filter
// by s; the caller's Unify decides whether a site is usable.
func collectRewriteSites(l Literal, s Term) []Term {
	var sites []Term
	var walk func(t Term)
	walk = func(t Term) {
		sites = append(sites, t)
		for _, a := range t.Args() {
			walk(a)
		}
	}
	if l.Pred.Kind == PredEq {
		walk(l.Pred.Lhs)
		walk(l.Pred.Rhs)
	} else {
		for _, a := range l.Pred.Args {
			walk(a)
		}
	}
	return sites
}

// rewriteAt replaces every occurrence of the site subterm (compared after
// applying sigma, since site was unified with s under sigma) with σ(t)
// inside l, applying σ everywhere else.
func rewriteAt(l Literal, site, t Term, sigma Substitution) Literal {
	target := sigma.Apply(site)
	replacement := sigma.Apply(t)
	var rewrite func(term Term) Term
	rewrite = func(term Term) Term {
		walked := sigma.Apply(term)
		if walked.Equal(target) {
			return replacement
		}
		if walked.Arity() == 0 {
			return walked
		}
		args := make([]Term, len(walked.Args()))
		for i, a := range walked.Args() {
			args[i] = rewrite(a)
		}
		return FnTerm(walked.Fn(), args...)
	}
	if l.Pred.Kind == PredEq {
		return Literal{Positive: l.Positive, Pred: Eq(rewrite(l.Pred.Lhs), rewrite(l.Pred.Rhs))}
	}
	args := make([]Term, len(l.Pred.Args))
	for i, a := range l.Pred.Args {
		args[i] = rewrite(a)
	}
	return Literal{Positive: l.Positive, Pred: App(l.Pred.Name, args...)}
}

// ReflexivityResolve applies §4.D's equality reflexivity resolution: given
// C ∨ ¬Eq(s, t) with σ = mgu(s, t), emit Cσ. This is the rule that closes
// proofs reducing to ¬(x = x).
func ReflexivityResolve(c *Clause) []*Clause {
	lits, _ := RenameApart(c.Literals)
	var out []*Clause
	for i, l := range lits {
		if l.Positive || l.Pred.Kind != PredEq {
			continue
		}
		sigma, err := Unify(l.Pred.Lhs, l.Pred.Rhs, NewSubstitution())
		if err != nil {
			continue
		}
		rest := make([]Literal, 0, len(lits)-1)
		for j, lj := range lits {
			if j == i {
				continue
			}
			rest = append(rest, sigma.ApplyLiteral(lj))
		}
		rest = Dedup(rest)
		out = append(out, Factor(NewDerivedClause(rest, "eq-reflexivity", []int{c.ID}, []int{c.Metrics.Depth}, sigma)))
	}
	return out
}

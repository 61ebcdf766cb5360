package prover

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

// cnfExpansionCap is the "implementation-defined cap" from §4.C.6: up to
// this many clauses, a disjunction is expanded by direct distribution;
// above it, one side is named via a fresh Tseitin atom instead.
const cnfExpansionCap = 64

// Normalize runs the full §4.C pipeline over a parsed sequent: desugar,
// NNF, constant-fold, goal-negation, Skolemization (a documented no-op for
// this surface), CNF, and clause emission, followed by the automatic
// equality axioms. It returns the initial clause set ready to seed
// saturate.go's passive set.
func Normalize(seq Sequent) ([]*Clause, error) {
	if err := checkArities(seq); err != nil {
		return nil, err
	}

	var clauses []*Clause

	for _, p := range seq.Premises {
		nf := foldConstants(nnf(desugar(p), false))
		skolemize(nf) // no-op for this surface; see function doc
		clauses = append(clauses, emitClauses(nf, OriginPremise)...)
	}

	var conj *Formula
	for _, c := range seq.Conclusions {
		d := desugar(c)
		if conj == nil {
			conj = d
		} else {
			conj = And(conj, d)
		}
	}
	if conj == nil {
		conj = True()
	}
	negatedGoal := foldConstants(nnf(conj, true))
	skolemize(negatedGoal)
	clauses = append(clauses, emitClauses(negatedGoal, OriginNegatedGoal)...)

	if anyEquality(clauses) {
		clauses = append(clauses, equalityAxioms(clauses)...)
	}

	return clauses, nil
}

// desugar eliminates ↔, →, ←, ⊕, and != in terms of ¬, ∧, ∨ and == (§4.C.1).
func desugar(f *Formula) *Formula {
	switch f.Kind {
	case FormTrue, FormFalse, FormAtom, FormPred, FormEq:
		return f
	case FormNeq:
		return Not(EqF(f.Lhs, f.Rhs))
	case FormConn:
		l := desugar(f.L)
		switch f.Conn {
		case ConnNot:
			return Not(l)
		case ConnAnd:
			return And(l, desugar(f.R))
		case ConnOr:
			return Or(l, desugar(f.R))
		case ConnXor:
			r := desugar(f.R)
			return Or(And(l, Not(r)), And(Not(l), r))
		case ConnImplies:
			return Or(Not(l), desugar(f.R))
		case ConnImpliedBy:
			return Or(l, Not(desugar(f.R)))
		case ConnIff:
			r := desugar(f.R)
			return And(Or(Not(l), r), Or(Not(r), l))
		}
	}
	panic("desugar: unreachable formula kind")
}

// nnf pushes negation inward (§4.C.2). If neg is true, the result
// represents ¬f; otherwise it represents f. After nnf, the only place a
// Not node can appear is directly wrapping a leaf (Atom, Pred, or Eq);
// everything else is And/Or of such leaves, or True/False.
func nnf(f *Formula, neg bool) *Formula {
	switch f.Kind {
	case FormTrue:
		if neg {
			return False()
		}
		return f
	case FormFalse:
		if neg {
			return True()
		}
		return f
	case FormAtom, FormPred, FormEq:
		if neg {
			return Not(f)
		}
		return f
	case FormConn:
		switch f.Conn {
		case ConnNot:
			return nnf(f.L, !neg)
		case ConnAnd:
			if !neg {
				return And(nnf(f.L, false), nnf(f.R, false))
			}
			return Or(nnf(f.L, true), nnf(f.R, true))
		case ConnOr:
			if !neg {
				return Or(nnf(f.L, false), nnf(f.R, false))
			}
			return And(nnf(f.L, true), nnf(f.R, true))
		}
	}
	panic("nnf: formula must be desugared to Not/And/Or before calling nnf")
}

// foldConstants simplifies x∧*→x, x∧~→~, x∨*→*, x∨~→x bottom-up (§4.C.3).
func foldConstants(f *Formula) *Formula {
	if f.Kind != FormConn {
		return f
	}
	if f.Conn == ConnNot {
		return Not(foldConstants(f.L))
	}
	l := foldConstants(f.L)
	r := foldConstants(f.R)
	if f.Conn == ConnAnd {
		if l.Kind == FormFalse || r.Kind == FormFalse {
			return False()
		}
		if l.Kind == FormTrue {
			return r
		}
		if r.Kind == FormTrue {
			return l
		}
		return And(l, r)
	}
	// ConnOr
	if l.Kind == FormTrue || r.Kind == FormTrue {
		return True()
	}
	if l.Kind == FormFalse {
		return r
	}
	if r.Kind == FormFalse {
		return l
	}
	return Or(l, r)
}

// skolemize is the §4.C.5 step. The supported surface has no binders: every
// argument-position identifier is a term constant (§9's Open Question,
// resolved as documented there), so no existential elimination ever
// introduces a fresh Skolem constant. The function is kept as an explicit
// pass — rather than simply omitting it — so the pipeline has a concrete,
// named place where a future surface grammar with real quantifiers would
// plug in Skolem-constant introduction for goal-side existentials.
func skolemize(f *Formula) { _ = f }

// emitClauses performs §4.C.6-7: CNF conversion by direct distribution
// (Tseitin-naming above cnfExpansionCap) followed by clause emission with
// tautology/duplicate-literal filtering, in deterministic traversal order.
func emitClauses(f *Formula, origin Origin) []*Clause {
	raw := toCNF(f)
	out := make([]*Clause, 0, len(raw))
	for _, lits := range raw {
		lits = Dedup(lits)
		c := NewAxiomClause(lits, origin)
		if c.IsTautology() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func toCNF(f *Formula) [][]Literal {
	switch f.Kind {
	case FormTrue:
		return nil
	case FormFalse:
		return [][]Literal{{}}
	case FormAtom:
		return [][]Literal{{Pos(App(Intern(f.Name)))}}
	case FormPred:
		args := make([]Term, len(f.Args))
		for i, a := range f.Args {
			args[i] = ConstTerm(Intern(a))
		}
		return [][]Literal{{Pos(App(Intern(f.Name), args...))}}
	case FormEq:
		return [][]Literal{{Pos(Eq(ConstTerm(Intern(f.Lhs)), ConstTerm(Intern(f.Rhs))))}}
	case FormConn:
		switch f.Conn {
		case ConnNot:
			leaf := toCNF(f.L)
			return [][]Literal{{leaf[0][0].Negate()}}
		case ConnAnd:
			return append(toCNF(f.L), toCNF(f.R)...)
		case ConnOr:
			return distribute(toCNF(f.L), toCNF(f.R))
		}
	}
	panic("toCNF: formula not in NNF")
}

// distribute implements CNF's disjunction-over-conjunction distribution,
// naming one side via a fresh propositional symbol when the direct
// cross-product would exceed cnfExpansionCap (§4.C.6).
func distribute(cl, cr [][]Literal) [][]Literal {
	if len(cl) == 0 {
		return cr
	}
	if len(cr) == 0 {
		return cl
	}
	if len(cl)*len(cr) > cnfExpansionCap {
		if len(cl) >= len(cr) {
			nameLit, extra := tseitinName(cl)
			return append(extra, distribute([][]Literal{{nameLit}}, cr)...)
		}
		nameLit, extra := tseitinName(cr)
		return append(extra, distribute(cl, [][]Literal{{nameLit}})...)
	}
	out := make([][]Literal, 0, len(cl)*len(cr))
	for _, a := range cl {
		for _, b := range cr {
			merged := make([]Literal, 0, len(a)+len(b))
			merged = append(merged, a...)
			merged = append(merged, b...)
			out = append(out, merged)
		}
	}
	return out
}

var tseitinCounter int64

// tseitinName introduces a fresh propositional symbol A and returns (a
// positive unit literal over A, the defining clauses {¬A ∨ c : c ∈
// clauses}). This is a one-directional (A → original) Tseitin encoding,
// which is enough for equisatisfiability of the enclosing disjunction
// because the input is in NNF, so A only ever occurs positively in place
// of the named conjunction.
func tseitinName(clauses [][]Literal) (Literal, [][]Literal) {
	id := atomic.AddInt64(&tseitinCounter, 1)
	sym := Intern(fmt.Sprintf("$tseitin%d", id))
	nameLit := Pos(App(sym))
	extra := make([][]Literal, 0, len(clauses))
	for _, c := range clauses {
		nc := make([]Literal, 0, len(c)+1)
		nc = append(nc, Neg(App(sym)))
		nc = append(nc, c...)
		extra = append(extra, nc)
	}
	return nameLit, extra
}

// anyEquality reports whether any literal among clauses mentions the
// built-in equality predicate, the trigger condition for the automatic
// equality axioms (§4.C, "Equality axioms added automatically...").
func anyEquality(clauses []*Clause) bool {
	for _, c := range clauses {
		for _, l := range c.Literals {
			if l.Pred.Kind == PredEq {
				return true
			}
		}
	}
	return false
}

// equalityAxioms builds reflexivity, symmetry, transitivity, and one
// congruence clause per (symbol, argument position) observed in clauses.
func equalityAxioms(clauses []*Clause) []*Clause {
	funcs, preds := collectSignatures(clauses)

	var axioms []*Clause

	x, y, z := VarTerm(FreshVariable("X")), VarTerm(FreshVariable("Y")), VarTerm(FreshVariable("Z"))
	axioms = append(axioms, NewAxiomClause([]Literal{Pos(Eq(x, x))}, OriginPremise))

	x2, y2 := VarTerm(FreshVariable("X")), VarTerm(FreshVariable("Y"))
	axioms = append(axioms, NewAxiomClause([]Literal{Neg(Eq(x2, y2)), Pos(Eq(y2, x2))}, OriginPremise))

	axioms = append(axioms, NewAxiomClause([]Literal{Neg(Eq(x, y)), Neg(Eq(y, z)), Pos(Eq(x, z))}, OriginPremise))

	for _, sig := range sortedSignatures(funcs) {
		for pos := 0; pos < sig.arity; pos++ {
			axioms = append(axioms, congruenceFunctionClause(sig.sym, sig.arity, pos))
		}
	}
	for _, sig := range sortedSignatures(preds) {
		for pos := 0; pos < sig.arity; pos++ {
			axioms = append(axioms, congruencePredicateClause(sig.sym, sig.arity, pos))
		}
	}

	return axioms
}

type signature struct {
	sym   Symbol
	arity int
}

func sortedSignatures(m map[Symbol]int) []signature {
	out := make([]signature, 0, len(m))
	for s, a := range m {
		out = append(out, signature{s, a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].sym.String() < out[j].sym.String() })
	return out
}

func congruenceFunctionClause(sym Symbol, arity, pos int) *Clause {
	xs := make([]Term, arity)
	ys := make([]Term, arity)
	for i := 0; i < arity; i++ {
		xs[i] = VarTerm(FreshVariable(fmt.Sprintf("X%d", i)))
		if i == pos {
			ys[i] = VarTerm(FreshVariable(fmt.Sprintf("Y%d", i)))
		} else {
			ys[i] = xs[i]
		}
	}
	lits := []Literal{
		Neg(Eq(xs[pos], ys[pos])),
		Pos(Eq(FnTerm(sym, xs...), FnTerm(sym, ys...))),
	}
	return NewAxiomClause(lits, OriginPremise)
}

func congruencePredicateClause(sym Symbol, arity, pos int) *Clause {
	xs := make([]Term, arity)
	ys := make([]Term, arity)
	for i := 0; i < arity; i++ {
		xs[i] = VarTerm(FreshVariable(fmt.Sprintf("X%d", i)))
		if i == pos {
			ys[i] = VarTerm(FreshVariable(fmt.Sprintf("Y%d", i)))
		} else {
			ys[i] = xs[i]
		}
	}
	lits := []Literal{
		Neg(Eq(xs[pos], ys[pos])),
		Neg(App(sym, xs...)),
		Pos(App(sym, ys...)),
	}
	return NewAxiomClause(lits, OriginPremise)
}

// collectSignatures walks every literal of clauses and records the arity
// of every function symbol (term position) and predicate symbol (atom
// position, excluding the built-in equality) it finds.
func collectSignatures(clauses []*Clause) (funcs, preds map[Symbol]int) {
	funcs = map[Symbol]int{}
	preds = map[Symbol]int{}
	var walkTerm func(t Term)
	walkTerm = func(t Term) {
		if t.IsVar() {
			return
		}
		if t.Arity() > 0 {
			funcs[t.Fn()] = t.Arity()
		}
		for _, a := range t.Args() {
			walkTerm(a)
		}
	}
	for _, c := range clauses {
		for _, l := range c.Literals {
			if l.Pred.Kind == PredEq {
				walkTerm(l.Pred.Lhs)
				walkTerm(l.Pred.Rhs)
				continue
			}
			if len(l.Pred.Args) > 0 {
				preds[l.Pred.Name] = len(l.Pred.Args)
			}
			for _, a := range l.Pred.Args {
				walkTerm(a)
			}
		}
	}
	return funcs, preds
}

// checkArities implements §7's ArityMismatch detection over the parsed
// AST, before any clause is built: every symbol used in predicate
// position must be used with the same argument count everywhere in the
// sequent. Results are aggregated with go-multierror so a single run
// reports every conflicting symbol instead of stopping at the first.
func checkArities(seq Sequent) error {
	seen := map[string]int{}
	var result *multierror.Error

	var walk func(f *Formula)
	walk = func(f *Formula) {
		switch f.Kind {
		case FormAtom, FormPred:
			arity := len(f.Args)
			if prev, ok := seen[f.Name]; ok {
				if prev != arity {
					result = multierror.Append(result, &ArityMismatch{
						Symbol:        Intern(f.Name),
						FirstArity:    prev,
						ConflictArity: arity,
					})
				}
			} else {
				seen[f.Name] = arity
			}
		case FormConn:
			walk(f.L)
			if f.R != nil {
				walk(f.R)
			}
		}
	}
	for _, p := range seq.Premises {
		walk(p)
	}
	for _, c := range seq.Conclusions {
		walk(c)
	}
	return result.ErrorOrNil()
}

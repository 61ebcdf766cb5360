package prover

import "fmt"

// PredKind distinguishes ordinary predicate application from the built-in
// equality predicate (§3: "the core treats == and != as the built-in
// equality predicate").
type PredKind int

const (
	// PredApp is an ordinary predicate application App(Symbol, args).
	PredApp PredKind = iota
	// PredEq is the built-in equality predicate Eq(lhs, rhs).
	PredEq
)

// Predicate is either App(Symbol, args) or Eq(lhs, rhs).
type Predicate struct {
	Kind   PredKind
	Name   Symbol // meaningful when Kind == PredApp
	Args   []Term // meaningful when Kind == PredApp
	Lhs    Term   // meaningful when Kind == PredEq
	Rhs    Term   // meaningful when Kind == PredEq
}

// App builds an ordinary predicate application.
func App(name Symbol, args ...Term) Predicate {
	return Predicate{Kind: PredApp, Name: name, Args: args}
}

// Eq builds an equality predicate.
func Eq(lhs, rhs Term) Predicate {
	return Predicate{Kind: PredEq, Lhs: lhs, Rhs: rhs}
}

// Arity reports the predicate's argument count (2 for equality).
func (p Predicate) Arity() int {
	if p.Kind == PredEq {
		return 2
	}
	return len(p.Args)
}

// Equal reports structural equality of two predicates.
func (p Predicate) Equal(o Predicate) bool {
	if p.Kind != o.Kind {
		return false
	}
	if p.Kind == PredEq {
		return p.Lhs.Equal(o.Lhs) && p.Rhs.Equal(o.Rhs)
	}
	if p.Name != o.Name || len(p.Args) != len(o.Args) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (p Predicate) String() string {
	if p.Kind == PredEq {
		return fmt.Sprintf("%s == %s", p.Lhs, p.Rhs)
	}
	if len(p.Args) == 0 {
		return p.Name.String()
	}
	return Term{fn: p.Name, args: p.Args}.String()
}

func (p Predicate) freeVars(out map[Variable]struct{}) {
	if p.Kind == PredEq {
		p.Lhs.FreeVars(out)
		p.Rhs.FreeVars(out)
		return
	}
	for _, a := range p.Args {
		a.FreeVars(out)
	}
}

func (p Predicate) hashInto(h *uint64, varIndex map[Variable]int) {
	mix := func(x uint64) { *h ^= x; *h *= 1099511628211 }
	if p.Kind == PredEq {
		mix(3)
		p.Lhs.hashInto(h, varIndex)
		p.Rhs.hashInto(h, varIndex)
		return
	}
	mix(4)
	for _, r := range p.Name.name {
		mix(uint64(r))
	}
	for _, a := range p.Args {
		a.hashInto(h, varIndex)
	}
}

// Literal is a signed atomic predicate or equality: (polarity, Predicate).
// "a != b" is stored as Literal{Positive: false, Pred: Eq(a, b)}.
type Literal struct {
	Positive bool
	Pred     Predicate
}

// Pos builds a positive literal.
func Pos(p Predicate) Literal { return Literal{Positive: true, Pred: p} }

// Neg builds a negative literal.
func Neg(p Predicate) Literal { return Literal{Positive: false, Pred: p} }

// Negate returns the literal with flipped polarity.
func (l Literal) Negate() Literal { return Literal{Positive: !l.Positive, Pred: l.Pred} }

// Equal reports structural equality including polarity.
func (l Literal) Equal(o Literal) bool {
	return l.Positive == o.Positive && l.Pred.Equal(o.Pred)
}

// IsReflexiveEquation reports whether the literal is (+, Eq(t, t)) for some
// syntactically identical t — the tautology case singled out in §3 I2.
func (l Literal) IsReflexiveEquation() bool {
	return l.Positive && l.Pred.Kind == PredEq && l.Pred.Lhs.Equal(l.Pred.Rhs)
}

func (l Literal) String() string {
	if l.Positive {
		return l.Pred.String()
	}
	if l.Pred.Kind == PredEq {
		return fmt.Sprintf("%s != %s", l.Pred.Lhs, l.Pred.Rhs)
	}
	return "!" + l.Pred.String()
}

func (l Literal) freeVars(out map[Variable]struct{}) { l.Pred.freeVars(out) }

// symbolCount counts function/predicate symbol occurrences for the
// symbol_count heuristics and clause metrics (§3 "total symbol count").
func (l Literal) symbolCount() int {
	n := 0
	var walk func(t Term)
	walk = func(t Term) {
		if t.IsVar() {
			return
		}
		n++
		for _, a := range t.Args() {
			walk(a)
		}
	}
	if l.Pred.Kind == PredEq {
		walk(l.Pred.Lhs)
		walk(l.Pred.Rhs)
	} else {
		n++ // the predicate symbol itself
		for _, a := range l.Pred.Args {
			walk(a)
		}
	}
	return n
}

func (l Literal) hashInto(h *uint64, varIndex map[Variable]int) {
	mix := func(x uint64) { *h ^= x; *h *= 1099511628211 }
	if l.Positive {
		mix(5)
	} else {
		mix(6)
	}
	l.Pred.hashInto(h, varIndex)
}

// applySubstLiteral applies σ to every term in l, returning a fresh literal.
func applySubstLiteral(sigma Substitution, l Literal) Literal {
	if l.Pred.Kind == PredEq {
		return Literal{Positive: l.Positive, Pred: Eq(sigma.Apply(l.Pred.Lhs), sigma.Apply(l.Pred.Rhs))}
	}
	args := make([]Term, len(l.Pred.Args))
	for i, a := range l.Pred.Args {
		args[i] = sigma.Apply(a)
	}
	return Literal{Positive: l.Positive, Pred: App(l.Pred.Name, args...)}
}

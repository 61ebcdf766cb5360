package prover

import (
	"fmt"
	"strings"
)

// Term is the tagged union from §3: either a Var or an Fn application.
// Constants are Fn(s, nil) — an Fn with zero arguments.
type Term struct {
	isVar bool
	v     Variable
	fn    Symbol
	args  []Term
}

// VarTerm builds a variable term.
func VarTerm(v Variable) Term { return Term{isVar: true, v: v} }

// FnTerm builds a function (or, with no args, constant) term.
func FnTerm(fn Symbol, args ...Term) Term { return Term{fn: fn, args: args} }

// ConstTerm builds a 0-arity constant term.
func ConstTerm(fn Symbol) Term { return FnTerm(fn) }

// IsVar reports whether this term is a variable.
func (t Term) IsVar() bool { return t.isVar }

// Var returns the term's variable; only meaningful when IsVar() is true.
func (t Term) Var() Variable { return t.v }

// Fn returns the term's function symbol; only meaningful when !IsVar().
func (t Term) Fn() Symbol { return t.fn }

// Args returns the term's arguments; empty for variables and constants.
func (t Term) Args() []Term { return t.args }

// Arity returns the number of arguments (0 for variables and constants).
func (t Term) Arity() int { return len(t.args) }

// Equal reports structural equality (no renaming).
func (t Term) Equal(o Term) bool {
	if t.isVar != o.isVar {
		return false
	}
	if t.isVar {
		return t.v == o.v
	}
	if t.fn != o.fn || len(t.args) != len(o.args) {
		return false
	}
	for i := range t.args {
		if !t.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

// FreeVars adds every variable occurring in t to out.
func (t Term) FreeVars(out map[Variable]struct{}) {
	if t.isVar {
		out[t.v] = struct{}{}
		return
	}
	for _, a := range t.args {
		a.FreeVars(out)
	}
}

// String renders the term in surface-like notation, e.g. "f(a, X)".
func (t Term) String() string {
	if t.isVar {
		return t.v.String()
	}
	if len(t.args) == 0 {
		return t.fn.String()
	}
	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", t.fn, strings.Join(parts, ", "))
}

// hashInto folds a canonical encoding of t into h, used by
// Literal.hashInto and Clause.hash. Variables hash by role only (their position in the
// local enumeration supplied by the caller), never by their global id,
// since two clauses that differ only by variable renaming must hash the
// same under alpha-equivalence-sensitive callers; callers that want
// identity-sensitive hashing pass a nil varIndex.
func (t Term) hashInto(h *uint64, varIndex map[Variable]int) {
	const prime = 1099511628211
	mix := func(x uint64) {
		*h ^= x
		*h *= prime
	}
	if t.isVar {
		mix(1)
		if varIndex != nil {
			idx, ok := varIndex[t.v]
			if !ok {
				idx = len(varIndex)
				varIndex[t.v] = idx
			}
			mix(uint64(idx))
		} else {
			mix(uint64(t.v.id))
		}
		return
	}
	mix(2)
	for _, r := range t.fn.name {
		mix(uint64(r))
	}
	mix(uint64(len(t.args)))
	for _, a := range t.args {
		a.hashInto(h, varIndex)
	}
}

package prover

import (
	"sync"
	"sync/atomic"
)

// Symbol is an interned identifier drawn from the surface syntax. The same
// textual name always maps to the same Symbol value, so Symbols compare
// with ==. A Symbol plays one of two roles depending on where it appears in
// a Term/Predicate: function/constant symbol (term position) or predicate
// symbol (atom position); the core never needs to disambiguate the two
// since they live in disjoint syntactic positions.
type Symbol struct {
	name string
}

// String returns the symbol's surface name.
func (s Symbol) String() string { return s.name }

var (
	internMu sync.Mutex
	interned = map[string]Symbol{}
)

// Intern returns the Symbol for name, creating it on first use. Intern is
// safe for concurrent use so independent prover instances racing in
// internal/parallel never observe distinct Symbols for the same name.
func Intern(name string) Symbol {
	internMu.Lock()
	defer internMu.Unlock()
	if s, ok := interned[name]; ok {
		return s
	}
	s := Symbol{name: name}
	interned[name] = s
	return s
}

// Variable is a logic variable tag, disjoint from Symbol. Every clause owns
// its own variable namespace (§3): a Variable's identity is its id, and
// fresh ids are handed out by RenameApart before a clause is used in an
// inference so variable names never collide across parents.
type Variable struct {
	id   int64
	name string
}

// String returns a debug-friendly rendering of the variable.
func (v Variable) String() string {
	if v.name != "" {
		return v.name
	}
	return "_G"
}

var varCounter int64

// FreshVariable generates a new logic variable with a globally unique id.
// The debug name is cosmetic only — two variables are the same iff their
// ids match, regardless of name.
func FreshVariable(name string) Variable {
	id := atomic.AddInt64(&varCounter, 1)
	return Variable{id: id, name: name}
}

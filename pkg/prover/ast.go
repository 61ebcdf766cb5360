package prover

// This file defines the AST contract between an external surface parser
// (internal/surface in this module) and the normaliser: §1/§9 call the
// parser "an opaque external collaborator" — these are the types it must
// deliver, and normalize.go is the only consumer.

// ConnKind enumerates the connectives of §4.C's input grammar.
type ConnKind int

const (
	ConnNot ConnKind = iota
	ConnAnd
	ConnOr
	ConnXor
	ConnImplies   // a -> b
	ConnImpliedBy // a <- b
	ConnIff       // a <-> b
)

// FormulaKind tags a Formula node's shape.
type FormulaKind int

const (
	FormTrue FormulaKind = iota // the constant *
	FormFalse                  // the constant ~
	FormAtom                    // a 0-ary predicate symbol used propositionally
	FormPred                    // P(a1, ..., an)
	FormEq                      // a == b
	FormNeq                     // a != b
	FormConn                    // a connective applied to one or two sub-formulas
)

// Formula is a node of the parsed AST. Not/And/Or/Xor/Implies/ImpliedBy/Iff
// are all represented uniformly as FormConn with Conn set and, for the
// unary ConnNot, only L populated.
type Formula struct {
	Kind FormulaKind
	Name string   // FormAtom, FormPred: predicate symbol name
	Args []string // FormPred: argument symbol names (term constants, §4.C.5)
	Lhs  string   // FormEq, FormNeq: left term symbol name
	Rhs  string   // FormEq, FormNeq: right term symbol name
	Conn ConnKind // FormConn
	L, R *Formula // FormConn operands; R is nil for ConnNot
}

func True() *Formula  { return &Formula{Kind: FormTrue} }
func False() *Formula { return &Formula{Kind: FormFalse} }

// Atom builds a 0-ary propositional atom.
func Atom(name string) *Formula { return &Formula{Kind: FormAtom, Name: name} }

// Pred builds a predicate application.
func Pred(name string, args ...string) *Formula {
	return &Formula{Kind: FormPred, Name: name, Args: args}
}

// EqF builds an equality formula between two term symbols.
func EqF(lhs, rhs string) *Formula { return &Formula{Kind: FormEq, Lhs: lhs, Rhs: rhs} }

// NeqF builds a disequality formula between two term symbols.
func NeqF(lhs, rhs string) *Formula { return &Formula{Kind: FormNeq, Lhs: lhs, Rhs: rhs} }

func Not(f *Formula) *Formula { return &Formula{Kind: FormConn, Conn: ConnNot, L: f} }
func And(l, r *Formula) *Formula {
	return &Formula{Kind: FormConn, Conn: ConnAnd, L: l, R: r}
}
func Or(l, r *Formula) *Formula { return &Formula{Kind: FormConn, Conn: ConnOr, L: l, R: r} }
func Xor(l, r *Formula) *Formula {
	return &Formula{Kind: FormConn, Conn: ConnXor, L: l, R: r}
}
func Implies(l, r *Formula) *Formula {
	return &Formula{Kind: FormConn, Conn: ConnImplies, L: l, R: r}
}
func ImpliedBy(l, r *Formula) *Formula {
	return &Formula{Kind: FormConn, Conn: ConnImpliedBy, L: l, R: r}
}
func Iff(l, r *Formula) *Formula { return &Formula{Kind: FormConn, Conn: ConnIff, L: l, R: r} }

// Sequent is the full parsed input: `Premises |- Conclusions` (§6).
// Either list may be empty.
type Sequent struct {
	Premises    []*Formula
	Conclusions []*Formula
}

package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scenario is one end-to-end case. scenarios() builds each sequent directly
// from the AST constructors in ast.go instead of parsing it, so these tests
// don't take an import-cycle-inducing dependency on internal/surface.
type scenario struct {
	name string
	seq  Sequent
	sat  bool
}

func scenarios() []scenario {
	a, b, c := Atom("A"), Atom("B"), Atom("C")
	return []scenario{
		{
			// !(A & B) |- (!A | !B)
			name: "demorgan",
			seq: Sequent{
				Premises:    []*Formula{Not(And(Atom("A"), Atom("B")))},
				Conclusions: []*Formula{Or(Not(Atom("A")), Not(Atom("B")))},
			},
			sat: true,
		},
		{
			// A |- !A
			name: "contradiction",
			seq: Sequent{
				Premises:    []*Formula{Atom("A")},
				Conclusions: []*Formula{Not(Atom("A"))},
			},
			sat: false,
		},
		{
			// |- *
			name: "trivial-true-goal",
			seq: Sequent{
				Conclusions: []*Formula{True()},
			},
			sat: true,
		},
		{
			// P(a, b), a==b |- P(b, a)
			name: "equality-congruence",
			seq: Sequent{
				Premises:    []*Formula{Pred("P", "a", "b"), EqF("a", "b")},
				Conclusions: []*Formula{Pred("P", "b", "a")},
			},
			sat: true,
		},
		{
			// a==b, b==c |- c==a
			name: "equality-transitivity",
			seq: Sequent{
				Premises:    []*Formula{EqF("a", "b"), EqF("b", "c")},
				Conclusions: []*Formula{EqF("c", "a")},
			},
			sat: true,
		},
		{
			// A, A -> B, B -> C |- C
			name: "chained-modus-ponens",
			seq: Sequent{
				Premises:    []*Formula{a, Implies(a, b), Implies(b, c)},
				Conclusions: []*Formula{c},
			},
			sat: true,
		},
	}
}

func TestScenariosAgreeAcrossHeuristics(t *testing.T) {
	for _, sc := range scenarios() {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			for _, h := range HeuristicNames() {
				h := h
				t.Run(h, func(t *testing.T) {
					ResetClauseIDs()
					opts := DefaultOptions()
					opts.Heuristic = h
					verdict, err := Prove(sc.seq, opts)
					require.NoError(t, err)
					assert.Equal(t, sc.sat, verdict.Sat, "heuristic %s", h)
				})
			}
		})
	}
}

func TestEmptyInputIsUnsat(t *testing.T) {
	for _, h := range HeuristicNames() {
		h := h
		t.Run(h, func(t *testing.T) {
			ResetClauseIDs()
			opts := DefaultOptions()
			opts.Heuristic = h
			verdict, err := Prove(Sequent{Conclusions: []*Formula{False()}}, opts)
			require.NoError(t, err)
			assert.False(t, verdict.Sat)
			assert.True(t, verdict.Exhausted)
		})
	}
}

func TestVerboseProducesDerivation(t *testing.T) {
	ResetClauseIDs()
	opts := DefaultOptions()
	opts.Verbose = true
	seq := Sequent{
		Premises:    []*Formula{Atom("A")},
		Conclusions: []*Formula{Not(Atom("A"))},
	}
	verdict, err := Prove(seq, opts)
	require.NoError(t, err)
	assert.False(t, verdict.Sat)
	assert.Empty(t, verdict.Derivation)

	// The De Morgan case is sat and should carry a non-empty derivation
	// ending in the empty clause when run verbosely.
	seq2 := Sequent{
		Premises:    []*Formula{Not(And(Atom("A"), Atom("B")))},
		Conclusions: []*Formula{Or(Not(Atom("A")), Not(Atom("B")))},
	}
	verdict2, err := Prove(seq2, opts)
	require.NoError(t, err)
	require.True(t, verdict2.Sat)
	require.NotEmpty(t, verdict2.Derivation)
	last := verdict2.Derivation[len(verdict2.Derivation)-1]
	assert.True(t, last.IsEmpty())
}

func TestBudgetExceededYieldsUnsatNotExhausted(t *testing.T) {
	ResetClauseIDs()
	opts := DefaultOptions()
	opts.Budget = 1
	// A harder unsatisfiable-looking search with equality chains, forced
	// to cut off almost immediately by a budget of one step.
	seq := Sequent{
		Premises: []*Formula{
			EqF("a", "b"), EqF("b", "c"), EqF("c", "d"), EqF("d", "e"),
		},
		Conclusions: []*Formula{EqF("e", "a")},
	}
	verdict, err := Prove(seq, opts)
	require.NoError(t, err)
	assert.False(t, verdict.Sat)
	assert.False(t, verdict.Exhausted)
}

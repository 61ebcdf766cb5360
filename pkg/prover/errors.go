package prover

import "fmt"

// ParseError reports a surface grammar violation. The core never
// constructs one itself — it is defined here only so internal/surface and
// cmd/prove share one vocabulary for §7's error kinds; the core treats it
// as an opaque error returned by the parser boundary.
type ParseError struct {
	Line, Col int
	Msg       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ArityMismatch reports a symbol used with inconsistent arity across the
// input (§7). Line/Col are zero when the occurrence's source span is not
// tracked (e.g. when constructed programmatically rather than parsed).
type ArityMismatch struct {
	Symbol        Symbol
	FirstArity    int
	ConflictArity int
	Line, Col     int
}

func (e *ArityMismatch) Error() string {
	return fmt.Sprintf("symbol %q used with arity %d and arity %d", e.Symbol, e.FirstArity, e.ConflictArity)
}

// UnificationFailure is returned by Unify on functor/arity mismatch or a
// triggered occurs check. Per §7 it is internal: every inference call site
// in infer.go treats it as "skip this inference" and never lets it escape
// pkg/prover.
type UnificationFailure struct {
	reason string
}

func (e *UnificationFailure) Error() string { return "unification failed: " + e.reason }

// BudgetExceeded signals that the saturation loop's step counter reached
// its budget (or its wall-clock deadline elapsed) before reaching either
// the empty clause or an exhausted passive set. Per §7 this is not an
// error condition for the verdict — it simply yields unsat — but the
// concrete event is still modeled as a value so callers that want to tell
// "ran out of budget" apart from "genuinely exhausted the search space"
// can inspect Verdict.Exhausted.
type BudgetExceeded struct {
	Steps, Budget int
}

func (e *BudgetExceeded) Error() string {
	return fmt.Sprintf("step budget exceeded: %d/%d", e.Steps, e.Budget)
}

// InternalInvariantViolated marks a prover bug: a data-model invariant
// from §3/§8 was found broken at runtime (e.g. a non-idempotent
// substitution escaping the unifier). No code in pkg/prover checks these
// invariants at runtime or constructs this value; cmd/prove's main recovers
// a panic carrying a *InternalInvariantViolated at the process boundary and
// turns it into exit code 2 plus a diagnostic instead of a bare Go panic
// trace.
type InternalInvariantViolated struct {
	Invariant string
	Detail    string
}

func (e *InternalInvariantViolated) Error() string {
	return fmt.Sprintf("internal invariant violated (%s): %s", e.Invariant, e.Detail)
}

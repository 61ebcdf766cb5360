package prover

import (
	"container/heap"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures one Prove invocation (§6's invocation surface).
type Options struct {
	// Heuristic names one of the six §4.G scorers.
	Heuristic string
	// Budget is the positive step-budget from §6; the zero value means
	// DefaultBudget.
	Budget int
	// Deadline, if non-zero, is an absolute wall-clock cutoff checked at
	// the top of every iteration (§5).
	Deadline time.Time
	// Verbose enables §4.H trace emission in the returned Verdict.
	Verbose bool
	// Logger receives structured progress events; a no-op logger is used
	// if nil (pkg/prover never builds a production sink itself — see
	// SPEC_FULL.md's logging section).
	Logger *zap.Logger
}

// DefaultBudget is used when Options.Budget is zero or negative.
const DefaultBudget = 5000

// DefaultOptions returns an Options value with the defaults from §6.
func DefaultOptions() Options {
	return Options{Heuristic: HeuristicPreferEmpty, Budget: DefaultBudget}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Prove runs the full pipeline: normalize the sequent, then saturate
// (§4.F) using the requested heuristic until the empty clause is derived
// (Sat) or the budget/deadline/passive set is exhausted (Unsat).
func Prove(seq Sequent, opts Options) (Verdict, error) {
	clauses, err := Normalize(seq)
	if err != nil {
		return Verdict{}, err
	}
	return Saturate(clauses, opts)
}

// Saturate runs the §4.F given-clause algorithm directly over an already
// normalized clause set. Exposed separately from Prove so tests and the
// `prove race` CLI subcommand can share one normalized set across several
// heuristic runs without re-normalizing per run. Each call owns a private
// Set and priority heap; per §5, racing instances never share a store.
func Saturate(initial []*Clause, opts Options) (Verdict, error) {
	if opts.Heuristic == "" {
		opts.Heuristic = HeuristicPreferEmpty
	}
	if opts.Budget <= 0 {
		opts.Budget = DefaultBudget
	}
	score, err := LookupHeuristic(opts.Heuristic)
	if err != nil {
		return Verdict{}, err
	}
	runID := NewRunID()
	log := opts.logger().With(zap.String("run_id", runID.String()), zap.String("heuristic", opts.Heuristic))
	log.Debug("saturation start", zap.Int("budget", opts.Budget), zap.Int("initial_clauses", len(initial)))

	start := time.Now()
	set := NewSet()
	byID := map[int]*Clause{}
	pq := &priorityQueue{score: score}
	heap.Init(pq)

	// insert records c in byID and, if non-empty, pushes it onto passive;
	// it returns c itself once the empty clause turns up so callers can
	// terminate immediately (§4.F step 2/5).
	insert := func(c *Clause) (empty *Clause) {
		byID[c.ID] = c
		if c.IsEmpty() {
			return c
		}
		inserted, removed := set.TryInsert(c)
		if !inserted {
			return nil
		}
		for _, id := range removed {
			pq.removeID(id)
		}
		heap.Push(pq, c)
		return nil
	}

	for _, c := range initial {
		if empty := insert(c); empty != nil {
			return finishSat(empty, byID, runID, start, 0, opts, log), nil
		}
	}

	steps := 0
	for {
		if pq.Len() == 0 {
			log.Debug("passive exhausted", zap.Int("steps", steps))
			return finishUnsat(true, byID, runID, start, steps, opts, log), nil
		}
		if steps >= opts.Budget {
			log.Debug("budget exceeded", zap.Int("steps", steps))
			return finishUnsat(false, byID, runID, start, steps, opts, log), nil
		}
		if !opts.Deadline.IsZero() && time.Now().After(opts.Deadline) {
			log.Debug("deadline exceeded", zap.Int("steps", steps))
			return finishUnsat(false, byID, runID, start, steps, opts, log), nil
		}

		given := heap.Pop(pq).(*Clause)
		set.PopPassiveByID(given.ID)
		if set.IsRedundantAgainstActive(given) {
			log.Debug("discarded redundant given clause", zap.Int("clause_id", given.ID))
			continue
		}

		for _, child := range generateInferences(given, set.Active()) {
			if empty := insert(child); empty != nil {
				log.Info("empty clause derived", zap.Int("clause_id", empty.ID), zap.Int("steps", steps+1))
				return finishSat(empty, byID, runID, start, steps+1, opts, log), nil
			}
		}

		set.Activate(given)
		steps++
	}
}

// generateInferences computes every child of given against the active set
// plus given's own factoring/reflexivity self-inferences (§4.F step 4).
func generateInferences(given *Clause, active []*Clause) []*Clause {
	var out []*Clause
	out = append(out, ReflexivityResolve(given)...)
	out = append(out, Factor(given))
	for _, a := range active {
		out = append(out, Resolve(given, a)...)
		out = append(out, Paramodulate(given, a)...)
		out = append(out, Paramodulate(a, given)...)
	}
	return out
}

func finishSat(empty *Clause, byID map[int]*Clause, runID uuid.UUID, start time.Time, steps int, opts Options, log *zap.Logger) Verdict {
	v := baseVerdict(true, byID, runID, start, steps, log)
	v.Empty = empty
	if opts.Verbose {
		v.Derivation = BuildDerivation(empty, byID)
	}
	return v
}

func finishUnsat(exhausted bool, byID map[int]*Clause, runID uuid.UUID, start time.Time, steps int, opts Options, log *zap.Logger) Verdict {
	v := baseVerdict(false, byID, runID, start, steps, log)
	v.Exhausted = exhausted
	return v
}

func baseVerdict(sat bool, byID map[int]*Clause, runID uuid.UUID, start time.Time, steps int, log *zap.Logger) Verdict {
	v := Verdict{
		Sat:              sat,
		RunID:            runID,
		ClausesGenerated: len(byID),
		Steps:            steps,
		Elapsed:          time.Since(start),
	}
	log.Info("saturation finished", zap.Bool("sat", sat), zap.Int("steps", steps), zap.Int("clauses_generated", v.ClausesGenerated))
	return v
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/foprover/internal/parallel"
	"github.com/gitrdm/foprover/internal/surface"
	"github.com/gitrdm/foprover/pkg/prover"
)

var raceCmd = &cobra.Command{
	Use:   "race <file>",
	Short: "Race all six heuristics and report the first to finish",
	Long: `race normalizes the sequent in file once, then runs every §4.G
heuristic concurrently, each against its own clause store, and prints the
verdict and heuristic name of whichever terminates first.`,
	Args: cobra.ExactArgs(1),
	RunE: runRace,
}

func runRace(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	seq, err := surface.ParseSequentChecked(src)
	if err != nil {
		return err
	}

	clauses, err := prover.Normalize(seq)
	if err != nil {
		return err
	}

	baseOpts, err := buildOptions()
	if err != nil {
		return err
	}

	tasks := make(map[string]func(ctx context.Context) (any, error))
	for _, name := range prover.HeuristicNames() {
		name := name
		tasks[name] = func(ctx context.Context) (any, error) {
			opts := baseOpts
			opts.Heuristic = name
			if logger != nil {
				opts.Logger = logger.Named(name)
			}
			return prover.Saturate(clauses, opts)
		}
	}

	winner, all, err := parallel.Race(context.Background(), tasks)
	if err != nil {
		return err
	}

	verdict := winner.Value.(prover.Verdict)
	fmt.Fprintf(os.Stderr, "winner: %s (%d/%d racers reported)\n", winner.Name, len(all), len(tasks))
	fmt.Print(prover.FormatVerdict(verdict, flagVerbose || flagVVerbose))
	return nil
}

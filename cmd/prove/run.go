package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/gitrdm/foprover/internal/surface"
	"github.com/gitrdm/foprover/pkg/prover"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Prove a single sequent",
	Long: `run reads a sequent from file, or from stdin when file is "-" or
omitted, and reports sat or unsat using the heuristic named by --heuristic.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	seq, err := surface.ParseSequentChecked(src)
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	verdict, err := prover.Prove(seq, opts)
	if err != nil {
		return err
	}

	fmt.Print(prover.FormatVerdict(verdict, flagVerbose || flagVVerbose))
	if flagVVerbose {
		for _, c := range verdict.Derivation {
			fmt.Printf("%# v\n", pretty.Formatter(c))
		}
	}
	return nil
}

// readInput reads the sequent source from args[0], or stdin when args is
// empty or args[0] is "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

// buildOptions assembles a prover.Options from the persistent flags
// shared by run and race.
func buildOptions() (prover.Options, error) {
	opts := prover.DefaultOptions()
	opts.Heuristic = flagHeuristic
	opts.Budget = flagBudget
	opts.Verbose = flagVerbose || flagVVerbose
	opts.Logger = logger

	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return prover.Options{}, fmt.Errorf("invalid --timeout %q: %w", flagTimeout, err)
		}
		opts.Deadline = time.Now().Add(d)
	}

	if _, err := prover.LookupHeuristic(opts.Heuristic); err != nil {
		return prover.Options{}, err
	}
	return opts, nil
}

// Package main implements the foprover CLI: a thin front door over
// internal/surface (parsing) and pkg/prover (saturation), following §6's
// invocation surface.
//
// File index:
//   - main.go - entry point, rootCmd, persistent flags, logger construction
//   - run.go  - `prove run` subcommand
//   - race.go - `prove race` subcommand
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gitrdm/foprover/pkg/prover"
)

var (
	flagHeuristic string
	flagBudget    int
	flagTimeout   string
	flagVerbose   bool
	flagVVerbose  bool

	logger *zap.Logger
)

// rootCmd is the foprover base command.
var rootCmd = &cobra.Command{
	Use:   "prove",
	Short: "A resolution-based first-order theorem prover",
	Long: `prove reads a sequent in the surface grammar (premises |- conclusions)
and reports whether it is sat (refuted) or unsat, via saturation-based
first-order resolution with equality.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		switch {
		case flagVVerbose:
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		case flagVerbose:
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		default:
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHeuristic, "heuristic", prover.HeuristicPreferEmpty,
		fmt.Sprintf("clause-selection heuristic, one of %v", prover.HeuristicNames()))
	rootCmd.PersistentFlags().IntVar(&flagBudget, "budget", prover.DefaultBudget, "maximum given-clause steps")
	rootCmd.PersistentFlags().StringVar(&flagTimeout, "timeout", "", "wall-clock deadline (e.g. 30s); default none")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "emit the derivation trace")
	rootCmd.PersistentFlags().BoolVar(&flagVVerbose, "vv", false, "emit the derivation trace plus pretty clause dumps")

	rootCmd.AddCommand(runCmd, raceCmd)
}

// main recovers from prover.InternalInvariantViolated at the process
// boundary (§7: fatal, but the CLI still owes the shell a clean exit
// code and a diagnostic rather than a bare Go panic trace).
func main() {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*prover.InternalInvariantViolated); ok {
				fmt.Fprintf(os.Stderr, "internal invariant violated: %s\n", iv.Error())
				os.Exit(2)
			}
			panic(r)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the §6 exit-code contract: 2 for
// ParseError/ArityMismatch, 1 for everything else (I/O and configuration
// failures).
func exitCodeFor(err error) int {
	switch err.(type) {
	case *prover.ParseError, *prover.ArityMismatch:
		return 2
	}
	if me, ok := err.(interface{ WrappedErrors() []error }); ok {
		for _, e := range me.WrappedErrors() {
			if code := exitCodeFor(e); code == 2 {
				return 2
			}
		}
	}
	return 1
}

package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlath-labs/partsp/bbsearch"
	"github.com/lvlath-labs/partsp/runner"
	"github.com/lvlath-labs/partsp/tsplib"
)

var (
	verbose     bool
	noColor     bool
	seqBaseline bool
)

// run builds and executes the root command against args, returning the
// process exit code: 0 on success, 1 on argument or file error.
func run(args []string) int {
	rootCmd := &cobra.Command{
		Use:           "partsp <file.tsp> <num_cities> <num_threads> [cutoff]",
		Short:         "Parallel branch-and-bound solver for symmetric Euclidean TSP",
		Args:          cobra.RangeArgs(3, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolve,
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored report output")
	rootCmd.Flags().BoolVar(&seqBaseline, "seq-baseline", false, "run the sequential reference solver first and report speedup")
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(color.New(color.FgRed).Sprintf("error: %v", err))
		return 1
	}
	return 0
}

func runSolve(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	// color.NoColor already auto-detects a non-TTY stdout at package init;
	// --no-color only ever tightens that default, never loosens it.
	if noColor {
		color.NoColor = true
	}

	file := args[0]
	numCities, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("num_cities: %w", err)
	}
	numThreads, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("num_threads: %w", err)
	}
	cutoff := 0
	if len(args) == 4 {
		cutoff, err = strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("cutoff: %w", err)
		}
	}

	instance, err := tsplib.Load(file)
	if err != nil {
		return err
	}
	if numCities > 0 && numCities < instance.Size() {
		instance = instance.Truncate(numCities)
	}

	log := logrus.NewEntry(logrus.StandardLogger())

	var seqStats *runner.Stats
	if seqBaseline {
		seqCtx, err := bbsearch.NewSearchContext(instance, cutoff, log)
		if err != nil {
			return err
		}
		seqRoot, err := bbsearch.NewRootSearchTask(seqCtx)
		if err != nil {
			return err
		}
		stats := runner.NewSequential(log).Run(seqRoot)
		seqStats = &stats
	}

	ctx, err := bbsearch.NewSearchContext(instance, cutoff, log)
	if err != nil {
		return err
	}
	root, err := bbsearch.NewRootSearchTask(ctx)
	if err != nil {
		return err
	}

	par := runner.New(runner.Config{NumThreads: numThreads}, log)
	stats := par.Run(root)

	printReport(cmd.OutOrStdout(), instance, ctx, stats, seqStats)
	return nil
}

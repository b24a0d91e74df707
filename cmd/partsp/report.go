package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/lvlath-labs/partsp/bbsearch"
	"github.com/lvlath-labs/partsp/runner"
	"github.com/lvlath-labs/partsp/tsplib"
)

// printReport renders the human-readable run summary: best tour cost,
// timing, task counts, and (when a sequential baseline was run) speedup
// and efficiency. Output is not machine-parsed.
func printReport(w io.Writer, instance *tsplib.Instance, ctx *bbsearch.SearchContext, stats runner.Stats, seq *runner.Stats) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	bold.Fprintln(w, "partsp result")
	fmt.Fprintf(w, "  nodes:            %d\n", instance.Size())
	green.Fprintf(w, "  best cost:        %d\n", ctx.BestCost())
	fmt.Fprintf(w, "  best tour:        %v\n", ctx.Witness())
	cyan.Fprintf(w, "  threads:          %d\n", stats.Threads)
	fmt.Fprintf(w, "  tasks created:    %d\n", stats.TasksCreated)
	fmt.Fprintf(w, "  tasks processed:  %d\n", stats.TasksProcessed)
	fmt.Fprintf(w, "  duration:         %s\n", time.Duration(stats.DurationNanos))

	if seq == nil {
		return
	}
	fmt.Fprintf(w, "  sequential dur:   %s\n", time.Duration(seq.DurationNanos))
	if stats.DurationNanos > 0 {
		speedup := float64(seq.DurationNanos) / float64(stats.DurationNanos)
		efficiency := speedup / float64(stats.Threads) * 100
		green.Fprintf(w, "  speedup:          %.2fx\n", speedup)
		green.Fprintf(w, "  efficiency:       %.1f%%\n", efficiency)
	}
}

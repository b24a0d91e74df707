package runner_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/partsp/bbsearch"
	"github.com/lvlath-labs/partsp/runner"
)

// gridOracle mirrors bbsearch's package-local test fixture: a small
// in-memory DistanceOracle over 2D integer points.
type gridOracle struct{ pts [][2]float64 }

func (g gridOracle) Size() int { return len(g.pts) }

func (g gridOracle) Distance(a, b int) int {
	dx := g.pts[a][0] - g.pts[b][0]
	dy := g.pts[a][1] - g.pts[b][1]
	return int(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

func square() gridOracle {
	return gridOracle{pts: [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}}
}

func sixCityKnown() gridOracle {
	return gridOracle{pts: [][2]float64{{0, 0}, {1, 5}, {2, 2}, {5, 5}, {6, 1}, {3, 0}}}
}

func tenCity() gridOracle {
	return gridOracle{pts: [][2]float64{
		{0, 0}, {2, 4}, {5, 1}, {8, 8}, {3, 6},
		{7, 2}, {1, 9}, {9, 3}, {4, 0}, {6, 6},
	}}
}

func TestRunner_Square4City(t *testing.T) {
	// 4-city square, run through the real parallel Runner.
	ctx, err := bbsearch.NewSearchContext(square(), 0, nil)
	require.NoError(t, err)
	root, err := bbsearch.NewRootSearchTask(ctx)
	require.NoError(t, err)

	r := runner.New(runner.Config{NumThreads: 4}, nil)
	stats := r.Run(root)

	assert.Equal(t, 40, ctx.BestCost())
	assert.Equal(t, 4, stats.Threads)
	assert.Positive(t, stats.TasksCreated)
}

func TestRunner_ThreadCountIndependence(t *testing.T) {
	// 1, 4, and 16 threads must all yield the same best_cost.
	var costs []int
	for _, threads := range []int{1, 4, 16} {
		ctx, err := bbsearch.NewSearchContext(sixCityKnown(), 0, nil)
		require.NoError(t, err)
		root, err := bbsearch.NewRootSearchTask(ctx)
		require.NoError(t, err)

		r := runner.New(runner.Config{NumThreads: threads}, nil)
		r.Run(root)
		costs = append(costs, ctx.BestCost())
	}
	require.Equal(t, costs[0], costs[1])
	require.Equal(t, costs[1], costs[2])
}

func TestRunner_CutoffSweepTaskCountMonotonicallyDecreasing(t *testing.T) {
	// Identical best_cost across cutoffs, with tasks_created decreasing
	// as cutoff grows (coarser splitting).
	var costs []int
	var created []int64
	for _, cutoff := range []int{0, 2, 5} {
		ctx, err := bbsearch.NewSearchContext(tenCity(), cutoff, nil)
		require.NoError(t, err)
		root, err := bbsearch.NewRootSearchTask(ctx)
		require.NoError(t, err)

		r := runner.New(runner.Config{NumThreads: 4}, nil)
		stats := r.Run(root)
		costs = append(costs, ctx.BestCost())
		created = append(created, stats.TasksCreated)
	}

	require.Equal(t, costs[0], costs[1])
	require.Equal(t, costs[1], costs[2])
	assert.GreaterOrEqual(t, created[0], created[1])
	assert.GreaterOrEqual(t, created[1], created[2])
}

func TestRunner_CutoffAtGraphSizeDegeneratesToInlineSearch(t *testing.T) {
	// Boundary: cutoff >= graph_size means split always returns 0, so
	// exactly one task is ever created regardless of thread count.
	ctx, err := bbsearch.NewSearchContext(square(), ctxNodeCount(square()), nil)
	require.NoError(t, err)
	root, err := bbsearch.NewRootSearchTask(ctx)
	require.NoError(t, err)

	r := runner.New(runner.Config{NumThreads: 8}, nil)
	stats := r.Run(root)

	assert.Equal(t, int64(1), stats.TasksCreated)
	assert.Equal(t, int64(1), stats.TasksProcessed)
	assert.Equal(t, 40, ctx.BestCost())
}

func ctxNodeCount(o gridOracle) int { return o.Size() }

func TestRunner_MatchesSequentialBestCost(t *testing.T) {
	// Boundary: num_threads == 1 is equivalent to the sequential runner
	// modulo counter bookkeeping.
	seqCtx, err := bbsearch.NewSearchContext(sixCityKnown(), 0, nil)
	require.NoError(t, err)
	seqRoot, err := bbsearch.NewRootSearchTask(seqCtx)
	require.NoError(t, err)
	seq := runner.NewSequential(nil)
	seq.Run(seqRoot)

	parCtx, err := bbsearch.NewSearchContext(sixCityKnown(), 0, nil)
	require.NoError(t, err)
	parRoot, err := bbsearch.NewRootSearchTask(parCtx)
	require.NoError(t, err)
	par := runner.New(runner.Config{NumThreads: 1}, nil)
	par.Run(parRoot)

	assert.Equal(t, seqCtx.BestCost(), parCtx.BestCost())
}

func TestRunner_RepeatedRunsAreDeterministicInCost(t *testing.T) {
	r := runner.New(runner.Config{NumThreads: 4}, nil)

	ctx1, err := bbsearch.NewSearchContext(sixCityKnown(), 0, nil)
	require.NoError(t, err)
	root1, err := bbsearch.NewRootSearchTask(ctx1)
	require.NoError(t, err)
	r.Run(root1)

	ctx2, err := bbsearch.NewSearchContext(sixCityKnown(), 0, nil)
	require.NoError(t, err)
	root2, err := bbsearch.NewRootSearchTask(ctx2)
	require.NoError(t, err)
	r.Run(root2)

	assert.Equal(t, ctx1.BestCost(), ctx2.BestCost())
}

func TestRunner_EarlyTermination(t *testing.T) {
	// Stop() invoked from another goroutine shortly after Run starts
	// returns within a bounded delay, with all workers joined (Run's
	// return already guarantees the join; this test only bounds the
	// wall-clock delay).
	ctx, err := bbsearch.NewSearchContext(tenCity(), 0, nil)
	require.NoError(t, err)
	root, err := bbsearch.NewRootSearchTask(ctx)
	require.NoError(t, err)

	r := runner.New(runner.Config{NumThreads: 4}, nil)

	go func() {
		time.Sleep(2 * time.Millisecond)
		r.Stop()
	}()

	done := make(chan struct{})
	start := time.Now()
	go func() {
		r.Run(root)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return within the bounded delay after Stop")
	}
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRunner_DefaultThreadsFloorsAtFour(t *testing.T) {
	cfg := runner.Config{NumThreads: 0}
	ctx, err := bbsearch.NewSearchContext(square(), 0, nil)
	require.NoError(t, err)
	root, err := bbsearch.NewRootSearchTask(ctx)
	require.NoError(t, err)

	r := runner.New(cfg, nil)
	stats := r.Run(root)
	assert.GreaterOrEqual(t, stats.Threads, 4)
}

func TestSequentialRunner_Square4City(t *testing.T) {
	ctx, err := bbsearch.NewSearchContext(square(), 0, nil)
	require.NoError(t, err)
	root, err := bbsearch.NewRootSearchTask(ctx)
	require.NoError(t, err)

	r := runner.NewSequential(nil)
	stats := r.Run(root)

	assert.Equal(t, 40, ctx.BestCost())
	assert.Equal(t, 1, stats.Threads)
}

package bbsearch_test

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/partsp/bbsearch"
	"github.com/lvlath-labs/partsp/taskpool"
)

// drainConcurrently runs workers goroutines against a single shared
// taskpool.Pool rooted at ctx, using an outstanding-work counter to detect
// completion (the same termination signal the parallel runner uses)
// rather than treating one empty Pop as "done": other workers may still
// be about to push more children.
func drainConcurrently(t *testing.T, ctx *bbsearch.SearchContext, workers int) {
	t.Helper()

	pool := taskpool.New()
	root, err := bbsearch.NewRootSearchTask(ctx)
	require.NoError(t, err)

	var outstanding atomic.Int64
	outstanding.Store(1)
	pool.Push(root)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for outstanding.Load() > 0 {
				got, ok := pool.Pop()
				if !ok {
					continue
				}
				st := got.(*bbsearch.SearchTask)
				if n := st.Split(pool); n > 0 {
					outstanding.Add(int64(n))
				} else {
					st.Solve()
				}
				outstanding.Add(-1)
			}
		}()
	}
	wg.Wait()
}

func TestSearchContext_BestCostBeforeInitialBound(t *testing.T) {
	ctx, err := bbsearch.NewSearchContext(square(), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt64, ctx.BestCost())
}

func TestSearchContext_EnsureInitialBoundIsIdempotent(t *testing.T) {
	ctx, err := bbsearch.NewSearchContext(square(), 0, nil)
	require.NoError(t, err)

	ctx.EnsureInitialBound()
	first := ctx.BestCost()
	require.Less(t, first, math.MaxInt64)

	// A second call, even racing many goroutines, must never recompute or
	// re-widen the bound: exactly one winner installs it.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx.EnsureInitialBound()
		}()
	}
	wg.Wait()
	assert.Equal(t, first, ctx.BestCost())
}

func TestSearchContext_BestCostMonotonicallyNonIncreasing(t *testing.T) {
	// best_cost never increases. Run the real search concurrently through
	// the exported task.Pool contract and sample BestCost periodically
	// from a watcher goroutine; every sample must be <= the previous one.
	ctx, err := bbsearch.NewSearchContext(sixCityKnown(), 0, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	stopped := make(chan struct{})
	samples := make([]int, 0, 64)
	go func() {
		defer close(stopped)
		for {
			select {
			case <-done:
				return
			default:
				samples = append(samples, ctx.BestCost())
			}
		}
	}()

	drainConcurrently(t, ctx, 4)
	close(done)
	<-stopped

	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, samples[i], samples[i-1])
	}
}

func TestSearchContext_WitnessMatchesBestCostAtQuiescence(t *testing.T) {
	// At run exit, the witness tour's distance must equal best_cost.
	ctx, err := bbsearch.NewSearchContext(square(), 0, nil)
	require.NoError(t, err)

	pool := taskpool.New()
	root, err := bbsearch.NewRootSearchTask(ctx)
	require.NoError(t, err)
	pool.Push(root)

	for {
		got, ok := pool.Pop()
		if !ok {
			break
		}
		st := got.(*bbsearch.SearchTask)
		if n := st.Split(pool); n > 0 {
			continue
		}
		st.Solve()
	}

	witness := ctx.Witness()
	total := 0
	for i := 0; i < len(witness)-1; i++ {
		total += square().Distance(witness[i], witness[i+1])
	}
	assert.Equal(t, ctx.BestCost(), total)

	n := square().Size()
	require.Len(t, witness, n+1)
	require.Equal(t, bbsearch.FirstNode, witness[0])
	require.Equal(t, bbsearch.FirstNode, witness[n])
	want := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		want = append(want, i)
	}
	requireIsPermutation(t, witness[1:n], want)
}

package bbsearch

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lvlath-labs/partsp/internal/obslog"
)

// SearchContext holds the process-wide state shared by every SearchTask in
// one run: the (bestCost, bestWitness) incumbent pair, the one-shot
// initial-bound flag, and the cutoff threshold below which Split stops
// subdividing. Create one with NewSearchContext per independent search;
// running two searches concurrently just means constructing two contexts.
type SearchContext struct {
	oracle     DistanceOracle
	n          int
	cutoffSize int
	log        *logrus.Entry

	// bestCost is read on every pruning decision and must be cheap: a
	// relaxed atomic load. It only ever decreases once the initial bound
	// is installed.
	bestCost atomic.Int64

	// bestWitness is read only at the end of the run, so a mutex is an
	// acceptable cost.
	witnessMu   sync.Mutex
	bestWitness []int

	initialBoundSet atomic.Bool

	// improveLog rate-limits "new incumbent" Debug logging: a dense
	// sequence of improvements early in a search would otherwise storm
	// the log.
	improveLog *obslog.RateLimiter
}

// NewSearchContext validates the oracle against MaxGraph and builds a
// SearchContext with no incumbent yet installed (BestCost reports
// math.MaxInt64 until EnsureInitialBound runs). cutoffParameter is
// subtracted from the node count to get the cutoff size threshold; a
// parameter that would drive the threshold below 1 is clamped to 1, since
// a path of size 0 never occurs (FirstNode is always present).
func NewSearchContext(oracle DistanceOracle, cutoffParameter int, log *logrus.Entry) (*SearchContext, error) {
	n := oracle.Size()
	if n > MaxGraph {
		return nil, ErrGraphTooLarge
	}
	cutoffSize := n - cutoffParameter
	if cutoffSize < 1 {
		cutoffSize = 1
	}
	if log == nil {
		log = obslog.New("search")
	}

	ctx := &SearchContext{
		oracle:     oracle,
		n:          n,
		cutoffSize: cutoffSize,
		log:        log.WithField("component", "search"),
		improveLog: obslog.NewRateLimiter(8),
	}
	ctx.bestCost.Store(math.MaxInt64)
	return ctx, nil
}

// Oracle returns the distance oracle this context searches over.
func (c *SearchContext) Oracle() DistanceOracle { return c.oracle }

// N returns the node count.
func (c *SearchContext) N() int { return c.n }

// BestCost returns a relaxed snapshot of the current incumbent cost. Its
// monotonic non-increase makes a stale read safe: it can only ever be
// slightly less pruning-effective, never incorrect.
func (c *SearchContext) BestCost() int {
	return int(c.bestCost.Load())
}

// EnsureInitialBound computes and installs the canonical tour
// 0 -> 1 -> ... -> n-1 -> 0 as the initial incumbent, exactly once across
// the SearchContext's lifetime. Every SearchTask calls this at the start
// of Split; the atomic CompareAndSwap on initialBoundSet guarantees
// exactly one caller does the work.
func (c *SearchContext) EnsureInitialBound() {
	if !c.initialBoundSet.CompareAndSwap(false, true) {
		return
	}
	if c.n <= 0 {
		return
	}

	tour := make([]int, c.n+1)
	for i := 0; i < c.n; i++ {
		tour[i] = i
	}
	tour[c.n] = FirstNode

	total := 0
	for i := 0; i < c.n; i++ {
		total += c.oracle.Distance(tour[i], tour[i+1])
	}
	c.updateBest(total, tour)
}

// updateBest attempts to install candidateCost as the new incumbent while
// it is strictly less than the current one, via CAS. On success, the
// witness mutex is acquired and witness copied into bestWitness. A CAS
// failure just means a concurrent improvement won the race with an even
// tighter bound; the loop retries against that newer value, which is what
// makes the check-then-update pattern correct under best_cost's
// monotonic-non-increasing invariant.
func (c *SearchContext) updateBest(candidateCost int, witness []int) bool {
	for {
		cur := c.bestCost.Load()
		if int64(candidateCost) >= cur {
			return false
		}
		if c.bestCost.CompareAndSwap(cur, int64(candidateCost)) {
			c.witnessMu.Lock()
			c.bestWitness = append(c.bestWitness[:0], witness...)
			c.witnessMu.Unlock()
			if c.improveLog.Allow() {
				c.log.WithFields(logrus.Fields{
					"cost": candidateCost,
				}).Debug("new incumbent")
			}
			return true
		}
	}
}

// Witness returns an independent copy of the current best tour. Call only
// after the run has quiesced: best_witness's distance matches BestCost
// only at a quiescent moment, not mid-search.
func (c *SearchContext) Witness() []int {
	c.witnessMu.Lock()
	defer c.witnessMu.Unlock()
	out := make([]int, len(c.bestWitness))
	copy(out, c.bestWitness)
	return out
}

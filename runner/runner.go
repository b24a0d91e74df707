package runner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lvlath-labs/partsp/internal/obslog"
	"github.com/lvlath-labs/partsp/task"
	"github.com/lvlath-labs/partsp/taskpool"
)

// Runner owns a taskpool.Pool and a fixed set of worker goroutines
// implementing the split-or-solve worker loop. One Runner drives one Run
// to completion; call Run again on the same Runner for a second,
// independent search (counters and the pool are reset at the start of
// every Run).
type Runner struct {
	cfg Config
	log *logrus.Entry

	pool *taskpool.Pool

	mu   sync.Mutex
	cond *sync.Cond

	outstanding atomic.Int64
	created     atomic.Int64
	processed   atomic.Int64
	stopping    atomic.Bool
}

// New builds a Runner with the given configuration. A nil logger falls
// back to logrus's standard logger.
func New(cfg Config, log *logrus.Entry) *Runner {
	if log == nil {
		log = obslog.New("runner")
	}
	r := &Runner{
		cfg:  cfg,
		log:  log.WithField("component", "runner"),
		pool: taskpool.New(),
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// Run pushes root onto the pool, spawns Config.NumThreads workers, and
// blocks until the outstanding-work counter reaches zero or Stop is
// called. It returns the run's accumulated Stats.
func (r *Runner) Run(root task.Task) Stats {
	r.pool.Clear()
	r.outstanding.Store(1)
	r.created.Store(1)
	r.processed.Store(0)
	r.stopping.Store(false)

	threads := r.cfg.resolveThreads()
	r.log.WithFields(logrus.Fields{"threads": threads}).Info("run starting")

	start := time.Now()
	r.pool.Push(root)

	var wg sync.WaitGroup
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func(id int) {
			defer wg.Done()
			r.worker(id)
		}(i)
	}

	r.mu.Lock()
	r.cond.Broadcast()
	r.mu.Unlock()

	wg.Wait()
	elapsed := time.Since(start)

	stats := Stats{
		TasksCreated:   r.created.Load(),
		TasksProcessed: r.processed.Load(),
		Threads:        threads,
		DurationNanos:  elapsed.Nanoseconds(),
	}
	r.log.WithFields(logrus.Fields{
		"tasks_created":   stats.TasksCreated,
		"tasks_processed": stats.TasksProcessed,
		"duration":        elapsed,
	}).Info("run finished")
	return stats
}

// Stop requests cooperative cancellation: workers exit at the next loop
// check rather than running to quiescence. Run still blocks until every
// spawned worker has joined before returning.
func (r *Runner) Stop() {
	r.stopping.Store(true)
	r.mu.Lock()
	r.cond.Broadcast()
	r.mu.Unlock()
}

// worker pops one task at a time, splits or solves it, retires it, and
// wakes waiters proportional to whether termination was just reached.
func (r *Runner) worker(id int) {
	wlog := r.log.WithField("worker", id)
	wlog.Debug("worker started")
	for {
		if r.stopping.Load() {
			wlog.Debug("worker exit: stop requested")
			return
		}

		t, ok := r.pool.Pop()
		if !ok {
			wlog.Debug("worker idle")
			if r.waitForWork() {
				continue
			}
			wlog.Debug("worker exit: quiescent")
			return
		}

		if n := t.Split(r.pool); n > 0 {
			r.created.Add(int64(n))
			r.outstanding.Add(int64(n))
		} else {
			t.Solve()
			r.processed.Add(1)
		}

		remaining := r.outstanding.Add(-1)
		r.mu.Lock()
		if remaining == 0 {
			r.cond.Broadcast()
		} else {
			r.cond.Signal()
		}
		r.mu.Unlock()
	}
}

// waitForWork blocks on the condition variable until one of: a stop
// request, the pool becoming non-empty, or the outstanding counter
// reaching zero. It returns true when the caller should retry Pop, false
// when the run has quiesced and the worker should exit. The predicate is
// rechecked in a loop to tolerate spurious wakeups.
func (r *Runner) waitForWork() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		if r.stopping.Load() {
			return false
		}
		if r.outstanding.Load() == 0 {
			return false
		}
		if r.pool.Size() > 0 {
			return true
		}
		r.cond.Wait()
	}
}

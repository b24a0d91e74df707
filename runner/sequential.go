package runner

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lvlath-labs/partsp/internal/obslog"
	"github.com/lvlath-labs/partsp/task"
)

// referenceCapacity bounds the fixed-size reference stack used by
// SequentialRunner. It is generous relative to MaxGraph: children are
// pushed and drained depth-first in this single-threaded driver, so a
// search over n nodes has at most n(n-1)/2 tasks resident on the stack at
// once — 496 at n = 32.
const referenceCapacity = 4096

// referenceStack is a fixed-capacity LIFO used only by SequentialRunner,
// distinct from taskpool.Pool: it is not lock-free, not concurrent-safe,
// and exists purely as the single-threaded baseline. ErrPoolExhausted and
// ErrPoolFull apply only here; the lock-free pool never runs out of room.
type referenceStack struct {
	items [referenceCapacity]task.Task
	size  int
}

func (s *referenceStack) Push(t task.Task) {
	if s.size >= referenceCapacity {
		panic(ErrPoolFull)
	}
	s.items[s.size] = t
	s.size++
}

func (s *referenceStack) pop() (task.Task, error) {
	if s.size == 0 {
		return nil, ErrPoolExhausted
	}
	s.size--
	t := s.items[s.size]
	s.items[s.size] = nil
	return t, nil
}

var _ task.Pool = (*referenceStack)(nil)

// SequentialRunner drives the same split-or-solve protocol as Runner with
// no goroutines at all: one path through the tree at a time, using
// referenceStack instead of taskpool.Pool. It exists to baseline the
// parallel Runner's speedup and as a deterministic reference for tests
// that want no concurrency in the mix.
type SequentialRunner struct {
	log *logrus.Entry
}

// NewSequential builds a SequentialRunner. A nil logger falls back to
// logrus's standard logger.
func NewSequential(log *logrus.Entry) *SequentialRunner {
	if log == nil {
		log = obslog.New("runner")
	}
	return &SequentialRunner{log: log.WithField("component", "runner.sequential")}
}

// Run drains root to quiescence on the calling goroutine and returns
// Stats with Threads set to 1.
func (r *SequentialRunner) Run(root task.Task) Stats {
	stack := &referenceStack{}
	created := int64(1)
	processed := int64(0)

	start := time.Now()
	stack.Push(root)
	for {
		t, err := stack.pop()
		if err != nil {
			break
		}
		if n := t.Split(stack); n > 0 {
			created += int64(n)
		} else {
			t.Solve()
			processed++
		}
	}
	elapsed := time.Since(start)

	stats := Stats{
		TasksCreated:   created,
		TasksProcessed: processed,
		Threads:        1,
		DurationNanos:  elapsed.Nanoseconds(),
	}
	r.log.WithFields(logrus.Fields{
		"tasks_created":   stats.TasksCreated,
		"tasks_processed": stats.TasksProcessed,
		"duration":        elapsed,
	}).Info("sequential run finished")
	return stats
}

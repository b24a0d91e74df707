package runner

import "runtime"

// minThreads is the floor applied when Config.NumThreads selects hardware
// concurrency.
const minThreads = 4

// Config configures a Runner.
type Config struct {
	// NumThreads is the worker count. <= 0 selects runtime.NumCPU(),
	// floored at minThreads.
	NumThreads int
}

func (c Config) resolveThreads() int {
	if c.NumThreads > 0 {
		return c.NumThreads
	}
	n := runtime.NumCPU()
	if n < minThreads {
		return minThreads
	}
	return n
}

// Stats reports the three counters a completed Run accumulated, plus wall
// clock duration. TasksCreated counts the root plus every child ever
// pushed onto the pool. TasksProcessed counts only the leaf tasks handled
// by Solve — a task whose Split produced children is retired without
// incrementing TasksProcessed, since its work continues in those
// children. TasksCreated is therefore 1 plus the total count of children
// produced by every Split call, and after a run that reaches quiescence
// it equals TasksProcessed plus the number of tasks whose Split produced
// children.
type Stats struct {
	TasksCreated   int64
	TasksProcessed int64
	Threads        int
	DurationNanos  int64
}

package bbsearch

import (
	"fmt"
	"io"

	"github.com/lvlath-labs/partsp/task"
)

// checkPeriod is how often (in calls) Split's and Solve's periodic
// dominance check runs against the shared incumbent.
const checkPeriod = 16

// SearchTask is the task.Task that explores one branch of the TSP
// permutation tree. State is a Path plus a local counter that samples the
// shared incumbent every checkPeriod calls, cheaply, rather than on every
// single recursive step.
//
// SearchTask's zero value is not usable — every field is unexported, and
// the one field that matters, ctx, being nil is treated as
// ErrConstructionForbidden: a default-constructed SearchTask panics with
// that sentinel the moment Split, Solve or Write runs, since none of
// them can report an error through their task.Task signatures (Merge is
// a no-op and performs no check). Panics are reserved for exactly this kind of programmer
// error, never for a bad TSP instance.
type SearchTask struct {
	ctx    *SearchContext
	path   Path
	checks int
}

var _ task.Task = (*SearchTask)(nil)

// NewSearchTask builds a SearchTask over path, sharing ctx. Used both for
// the root task (path from NewPath()) and, internally, for children
// produced by Split.
func NewSearchTask(ctx *SearchContext, path Path) (*SearchTask, error) {
	if ctx == nil {
		return nil, ErrConstructionForbidden
	}
	return &SearchTask{ctx: ctx, path: path}, nil
}

// NewRootSearchTask builds the root SearchTask for a fresh search: a
// SearchTask whose path contains only FirstNode.
func NewRootSearchTask(ctx *SearchContext) (*SearchTask, error) {
	return NewSearchTask(ctx, NewPath())
}

func (t *SearchTask) requireConstructed() {
	if t.ctx == nil {
		panic(ErrConstructionForbidden)
	}
}

// dominated runs the periodic sampling check: every checkPeriod calls,
// compare the path's running distance against the shared incumbent. It
// always increments the local counter, so both Split and Solve calling it
// share one 1-in-checkPeriod cadence per task.
func (t *SearchTask) dominated() bool {
	t.checks++
	if t.checks%checkPeriod != 0 {
		return false
	}
	return t.path.Distance() >= t.ctx.BestCost()
}

// Split explores one level of the permutation tree:
//  1. Ensure the initial incumbent exists (idempotent, first caller wins).
//  2. If path.size >= cutoffSize, delegate to Solve (return 0).
//  3. Periodic dominance check.
//  4. For each unvisited i whose edge keeps the lower-bound estimate below
//     the incumbent, push a child task extending the path by i.
//
// Split never calls Solve itself; the runner does that when Split returns 0.
func (t *SearchTask) Split(pool task.Pool) int {
	t.requireConstructed()
	t.ctx.EnsureInitialBound()

	if t.path.Size() >= t.ctx.cutoffSize {
		return 0
	}
	if t.dominated() {
		return 0
	}

	n := t.ctx.n
	best := t.ctx.BestCost()
	tail := t.path.Tail()
	count := 0
	for i := 0; i < n; i++ {
		if t.path.Contains(i) {
			continue
		}
		edge := t.ctx.oracle.Distance(tail, i)
		if t.path.Distance()+edge >= best {
			continue
		}
		child, err := NewSearchTask(t.ctx, t.path)
		if err != nil {
			// Unreachable: t.ctx is non-nil by requireConstructed above.
			panic(err)
		}
		if err := child.path.Push(t.ctx.oracle, i); err != nil {
			// The oracle bound was already checked by NewSearchContext;
			// this can only fire on a programmer error extending a full
			// path, so surface it loudly rather than silently drop work.
			panic(err)
		}
		pool.Push(child)
		count++
	}
	return count
}

// Solve recursively exhausts the subtree below this task's path inline,
// with no further task creation, updating the shared incumbent whenever a
// complete better tour is found. The recursion is stack-bound and does
// not yield partway through.
func (t *SearchTask) Solve() {
	t.requireConstructed()
	t.recurse()
}

func (t *SearchTask) recurse() {
	if t.dominated() {
		return
	}

	n := t.ctx.n
	if t.path.Size() == n {
		// FirstNode already occupies nodes[0]; closing the tour only adds
		// its distance back to the start, never a real Push/Pop, since
		// FirstNode is already a path member and Pop would clear that
		// membership bit out from under the rest of the recursion.
		total := t.path.Distance() + t.ctx.oracle.Distance(t.path.Tail(), FirstNode)
		if total < t.ctx.BestCost() {
			t.ctx.updateBest(total, append(t.path.Nodes(), FirstNode))
		}
		return
	}

	tail := t.path.Tail()
	best := t.ctx.BestCost()
	for i := 0; i < n; i++ {
		if t.path.Contains(i) {
			continue
		}
		edge := t.ctx.oracle.Distance(tail, i)
		if t.path.Distance()+edge >= best {
			continue
		}
		if err := t.path.Push(t.ctx.oracle, i); err != nil {
			continue
		}
		t.recurse()
		_ = t.path.Pop()
		// Refresh the local view: a sibling subtree, or another worker
		// entirely, may have improved the incumbent while we recursed.
		best = t.ctx.BestCost()
		tail = t.path.Tail()
	}
}

// Merge is a strict no-op: results flow through SearchContext's shared
// incumbent, never through parent/child aggregation. The runner in this
// repo never calls Merge (see runner/doc.go); it is implemented to
// satisfy task.Task and to document the Open Question decision recorded
// in DESIGN.md against the variant that clears the pool here.
func (t *SearchTask) Merge(task.Pool) {}

// Write renders a human-readable dump of the task's current path and
// running distance.
func (t *SearchTask) Write(sink io.Writer) error {
	t.requireConstructed()
	_, err := fmt.Fprintf(sink, "path=%v distance=%d\n", t.path.Nodes(), t.path.Distance())
	return err
}

package taskpool

import (
	"sync/atomic"

	"github.com/lvlath-labs/partsp/task"
)

// node is one link in the Treiber stack.
type node struct {
	t    task.Task
	next *node
}

// Pool is a lock-free, ABA-safe LIFO stack of task.Task handles.
// The zero value is ready to use.
type Pool struct {
	head atomic.Pointer[node]
	size atomic.Int64
}

// Ensure Pool satisfies the seam task.Split/task.Merge depend on.
var _ task.Pool = (*Pool)(nil)

// New returns an empty Pool. Equivalent to new(Pool); provided for
// symmetry with the rest of this repo's constructors.
func New() *Pool {
	return &Pool{}
}

// Push transfers ownership of t to the pool.
//
// Ordering: the successful CAS uses release semantics (the default for
// atomic.Pointer.CompareAndSwap on all supported platforms), publishing
// n's fields — in particular n.t — to whichever goroutine's Pop observes
// the new head.
//
// Complexity: O(1) expected; retries only under concurrent contention on
// the head pointer.
func (p *Pool) Push(t task.Task) {
	n := &node{t: t}
	for {
		old := p.head.Load()
		n.next = old
		if p.head.CompareAndSwap(old, n) {
			p.size.Add(1)
			return
		}
	}
}

// Pop removes and returns the most recently pushed task. The second
// return value is false, with a nil Task, if the pool was empty — Pop
// never blocks.
//
// ABA note: old is held in a local variable for the duration of the CAS
// attempt, which keeps it (and everything it points to) alive under Go's
// garbage collector; no other goroutine can cause old's address to be
// reused for a different logical node while this local reference exists.
// The classic Treiber-stack ABA hazard — a freed node's memory recycled by
// a manual allocator mid-CAS — therefore cannot occur. See doc.go.
//
// Complexity: O(1) expected.
func (p *Pool) Pop() (task.Task, bool) {
	for {
		old := p.head.Load()
		if old == nil {
			return nil, false
		}
		next := old.next
		if p.head.CompareAndSwap(old, next) {
			p.size.Add(-1)
			return old.t, true
		}
	}
}

// Clear atomically detaches the entire chain in one swap and drops it,
// letting the garbage collector reclaim every node and task reference.
// The size counter is adjusted by the number of nodes detached; because
// Size is advisory-only (see doc.go), no attempt is made to reconcile it
// against concurrent pushes racing with Clear.
//
// Complexity: O(n) to walk and count the detached chain.
func (p *Pool) Clear() {
	old := p.head.Swap(nil)

	var n int64
	for cur := old; cur != nil; cur = cur.next {
		n++
	}
	if n > 0 {
		p.size.Add(-n)
	}
}

// Size returns a relaxed, eventually-consistent snapshot of the number of
// tasks resident in the pool. Advisory only: never use it to decide
// whether the pool is empty for correctness purposes — use Pop's second
// return value instead.
//
// Complexity: O(1).
func (p *Pool) Size() int {
	if s := p.size.Load(); s > 0 {
		return int(s)
	}
	return 0
}

// At always fails: the lock-free pool supports only push/pop access.
//
// Complexity: O(1).
func (p *Pool) At(i int) (task.Task, error) {
	return nil, ErrUnsupportedAccess
}

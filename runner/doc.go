// Package runner drives a task.Pool to quiescence: a parallel Runner that
// spawns a fixed worker pool over a taskpool.Pool, and a SequentialRunner
// used as a single-threaded reference for baselining and for tests that
// want a deterministic drain with no goroutines at all.
//
// What:
//
//   - Runner.Run(root) pushes root, spawns NumThreads workers, and blocks
//     until the outstanding-work counter reaches zero.
//   - Runner.Stop() cooperatively cancels a run in progress from another
//     goroutine; Run still returns once every worker has joined.
//   - SequentialRunner.Run(root) is the same split-or-solve protocol
//     with no concurrency at all, one goroutine, one path through the
//     tree at a time.
//   - Neither runner calls Task.Merge: a task is either split or solved.
//
// Why an outstanding counter, not an idle-worker heuristic:
//
//   - A worker observing "the pool is empty and every other worker looks
//     idle" cannot distinguish quiescence from a narrow window between one
//     worker retiring a task and another about to push its children. The
//     outstanding counter is incremented by the child count before the
//     parent is ever retired, so the counter only reaches zero once no
//     task exists anywhere — in the pool, in a worker's hand, or about to
//     be pushed.
package runner

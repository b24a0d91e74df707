// Package task defines the polymorphic recursive-task contract shared by
// every worker pool and search algorithm built on top of it.
//
// What:
//
//   - Task: a divisible unit of work exposing Split/Solve/Merge/Write.
//   - Pool: the minimal seam a Task needs into whatever work pool is
//     holding it, without depending on that pool's concrete type.
//
// Why:
//
//   - Ownership is transferred on push: a pool owns any task it holds; a
//     worker that pops a task owns it until that task has either been
//     split (children pushed, parent released) or solved (released). No
//     task is ever referenced from two owners at once.
//   - Runners never call both Split and Solve on the same task: Split is
//     tried first; if it reports zero children, Solve runs instead.
//
// See taskpool for the lock-free pool implementation and bbsearch for the
// concrete Task used by the branch-and-bound TSP search.
package task

// Package bbsearch implements the branch-and-bound search task for the
// symmetric Euclidean Travelling Salesman Problem: the TSP path
// representation, the process-wide incumbent (SearchContext), and the
// SearchTask that produces and consumes work through the task.Task
// contract.
//
// What:
//
//   - Path: an ordered sequence of at most MaxGraph node indices with a
//     bitmap membership set, an incrementally maintained running
//     distance, and a fixed FirstNode that is always present at
//     position 0.
//   - SearchContext: the shared (best_cost, best_witness) incumbent pair,
//     CAS-updated on best_cost, mutex-guarded on best_witness, plus the
//     one-shot initial-bound flag and the cutoff threshold.
//   - SearchTask: a task.Task whose Split explores one level of the
//     permutation tree (pruned against the shared incumbent) and whose
//     Solve exhausts the remaining subtree inline.
//
// SearchContext separates fixed configuration and the shared incumbent
// from a single sequential engine's mutable state, so the same context
// can back many concurrently running SearchTasks. See DESIGN.md.
package bbsearch

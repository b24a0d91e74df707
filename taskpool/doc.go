// Package taskpool implements a lock-free, last-in-first-out pool of
// task.Task handles: a plain Treiber stack over an atomic.Pointer[node]
// head.
//
// What:
//
//   - Push/Pop are linearizable; Pop on an empty pool returns (nil, false)
//     without blocking.
//   - Size is a relaxed, eventually-consistent counter: advisory only,
//     never used for correctness.
//   - Clear atomically detaches the whole chain in one swap.
//   - At (indexed access) always fails with ErrUnsupportedAccess — this
//     pool is a stack, not a random-access container.
//
// Why a bare pointer CAS is safe here, with no ABA-mitigating tag:
//
//   - The classical Treiber-stack ABA hazard is a freed node's memory
//     being reused by an allocator while a stale reader still holds its
//     address, letting a CAS "succeed" against a head that looks the same
//     but is a different logical node. This pool never frees a node — Go's
//     garbage collector keeps any node reachable from a stale local
//     pointer alive, which removes the address-reuse half of the hazard
//     outright. See DESIGN.md for the fuller discussion of why hazard
//     pointers / epoch reclamation are not implemented here.
package taskpool

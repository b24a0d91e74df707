package taskpool

import "errors"

// Sentinel errors for the lock-free pool. Every message is prefixed with
// "taskpool: " for consistent grepping across logs, mirroring the
// teacher's matrix.errors.go convention.
var (
	// ErrUnsupportedAccess is returned by At: the lock-free pool is a
	// stack, not a random-access container, and never will be.
	ErrUnsupportedAccess = errors.New("taskpool: indexed access unsupported")
)

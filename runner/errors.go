package runner

import "errors"

var (
	// ErrPoolExhausted is returned by SequentialRunner's fixed-capacity
	// reference pool when Pop is called with nothing queued.
	ErrPoolExhausted = errors.New("runner: pop on exhausted reference pool")

	// ErrPoolFull is the panic value raised by SequentialRunner's
	// fixed-capacity reference pool when Push is called at capacity: the
	// task.Pool interface's Push has no error return, so a full reference
	// stack (a programmer error, never reachable at MaxGraph scale) can
	// only surface by panicking with this sentinel.
	ErrPoolFull = errors.New("runner: push on full reference pool")
)

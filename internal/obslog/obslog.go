// Package obslog centralizes the logrus wiring shared by runner and
// bbsearch: New builds the fallback logger their constructors use when the
// caller passes none, and each constructor then scopes it with a
// "component" field (runner, runner.sequential, search). The pool and the
// search's hot paths never log.
package obslog

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// New returns a logrus.Entry scoped to component, built on the shared
// standard logger. Pass this to constructors that accept an optional
// *logrus.Entry when the caller has none of its own.
func New(component string) *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger()).WithField("component", component)
}

// RateLimiter allows every Nth call through, dropping the rest. It is
// safe for concurrent use. Used to keep dense sequences of log-worthy
// events — e.g. a burst of incumbent improvements early in a search —
// from storming the log at Debug level.
type RateLimiter struct {
	every int64
	n     atomic.Int64
}

// NewRateLimiter builds a RateLimiter that allows one call in every
// `every` calls. every <= 0 is treated as 1 (allow every call).
func NewRateLimiter(every int) *RateLimiter {
	if every < 1 {
		every = 1
	}
	return &RateLimiter{every: int64(every)}
}

// Allow reports whether the caller should log this event.
func (r *RateLimiter) Allow() bool {
	return r.n.Add(1)%r.every == 0
}

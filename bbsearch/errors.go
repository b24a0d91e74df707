package bbsearch

import "errors"

// Sentinel errors for the branch-and-bound search task. Each message is
// prefixed with "bbsearch: " for consistent grepping across logs. No
// algorithm here panics on user-triggered error conditions;
// ErrConstructionForbidden is the one exception, reserved for a
// programmer error (see search_task.go).
var (
	// ErrGraphTooLarge is returned when the instance's node count exceeds
	// MaxGraph, the membership bitmap's capacity.
	ErrGraphTooLarge = errors.New("bbsearch: graph exceeds MaxGraph nodes")

	// ErrNodeOutOfRange is returned by Path.Push when given an index
	// outside [0, graph size).
	ErrNodeOutOfRange = errors.New("bbsearch: node index out of range")

	// ErrEmptyPath is returned by Path.Pop on a path of size <= 1: the
	// designated starting node is never removed.
	ErrEmptyPath = errors.New("bbsearch: pop on a path of size <= 1")

	// ErrConstructionForbidden signals a SearchTask without a
	// SearchContext. NewSearchTask returns it when given a nil context; a
	// default-constructed SearchTask raises it as a panic value (see
	// search_task.go): panics are reserved for programmer errors, never
	// user-input errors.
	ErrConstructionForbidden = errors.New("bbsearch: search task constructed without a SearchContext")
)
